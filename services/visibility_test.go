package services

import (
	"testing"

	"opsdesk/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asha() model.ActorContext {
	return model.ActorContext{EmployeeID: "e1", Name: "Asha", Department: model.DepartmentVideo}
}

func TestVisibilityUnderClientDeactivation(t *testing.T) {
	task := model.Task{TaskID: "t1", ClientID: "4", ClientName: "Acme", AssignedTo: "Asha", Department: model.DepartmentVideo}

	t.Run("task is visible while the client is active", func(t *testing.T) {
		idx := NewActiveClientIndex([]model.Client{{ClientID: "4", ClientName: "Acme", Status: "active"}})
		visible := VisibleTasks(asha(), []model.Task{task}, idx)
		assert.Len(t, visible, 1)
	})

	t.Run("deactivating the client hides the task even from its assignee", func(t *testing.T) {
		idx := NewActiveClientIndex([]model.Client{{ClientID: "4", ClientName: "Acme", Status: "inactive"}})
		visible := VisibleTasks(asha(), []model.Task{task}, idx)
		assert.Empty(t, visible)
	})

	t.Run("a client active in any of the three sources keeps the task visible", func(t *testing.T) {
		idx := NewActiveClientIndex(
			[]model.Client{{ClientID: "4", ClientName: "Acme", Status: "inactive"}},
			[]model.Client{},
		).AddStrategyClients([]model.StrategyHeadClient{{ClientID: "4", ClientName: "Acme", Status: "active"}})
		visible := VisibleTasks(asha(), []model.Task{task}, idx)
		assert.Len(t, visible, 1)
	})

	t.Run("orphaned tasks with no client reference stay eligible", func(t *testing.T) {
		orphan := model.Task{TaskID: "t2", AssignedTo: "Asha", Department: model.DepartmentVideo}
		idx := NewActiveClientIndex(nil)
		visible := VisibleTasks(asha(), []model.Task{orphan}, idx)
		assert.Len(t, visible, 1)
	})
}

func TestVisibilityAcrossDepartmentHandoff(t *testing.T) {
	// Asha (video) submitted the task; it now belongs to social-media.
	submitted := model.Task{
		TaskID:             "t1",
		ClientName:         "Acme",
		AssignedTo:         "Priya",
		SubmittedBy:        "Asha",
		Department:         model.DepartmentSocialMedia,
		OriginalDepartment: model.DepartmentVideo,
	}
	idx := NewActiveClientIndex([]model.Client{{ClientName: "Acme", Status: "active"}})

	visible := VisibleTasks(asha(), []model.Task{submitted}, idx)
	require.Len(t, visible, 1, "submitter must keep seeing the task after the handoff")
	assert.Equal(t, "t1", visible[0].TaskID)

	// The submittedBy match is exact, not case-insensitive.
	lower := submitted
	lower.SubmittedBy = "asha"
	visible = VisibleTasks(asha(), []model.Task{lower}, idx)
	assert.Empty(t, visible)
}

func TestVisibilityAssignedNameMatching(t *testing.T) {
	idx := NewActiveClientIndex(nil)

	t.Run("assignedTo match is case-insensitive and trimmed", func(t *testing.T) {
		task := model.Task{TaskID: "t1", AssignedTo: "  ASHA ", Department: model.DepartmentVideo}
		visible := VisibleTasks(asha(), []model.Task{task}, idx)
		assert.Len(t, visible, 1)
	})

	t.Run("actor without a department sees matching tasks from any department", func(t *testing.T) {
		noDept := model.ActorContext{Name: "Asha"}
		task := model.Task{TaskID: "t1", AssignedTo: "Asha", Department: model.DepartmentGraphics}
		visible := VisibleTasks(noDept, []model.Task{task}, idx)
		assert.Len(t, visible, 1)
	})

	t.Run("department clause matches current or original department", func(t *testing.T) {
		task := model.Task{
			TaskID:             "t1",
			AssignedTo:         "Asha",
			Department:         model.DepartmentSocialMedia,
			OriginalDepartment: model.DepartmentVideo,
		}
		visible := VisibleTasks(asha(), []model.Task{task}, idx)
		assert.Len(t, visible, 1)

		task.OriginalDepartment = model.DepartmentGraphics
		visible = VisibleTasks(asha(), []model.Task{task}, idx)
		assert.Empty(t, visible)
	})
}

func TestDeadlineSortStability(t *testing.T) {
	tasks := []model.Task{
		{TaskID: "a", AssignedTo: "Asha"},
		{TaskID: "b", AssignedTo: "Asha", Deadline: "2024-03-01"},
		{TaskID: "c", AssignedTo: "Asha", Deadline: "2024-01-15"},
		{TaskID: "d", AssignedTo: "Asha"},
	}

	visible := VisibleTasks(model.ActorContext{Name: "Asha"}, tasks, NewActiveClientIndex(nil))
	require.Len(t, visible, 4)
	assert.Equal(t, "c", visible[0].TaskID)
	assert.Equal(t, "b", visible[1].TaskID)
	// The two undated tasks keep their original relative order.
	assert.Equal(t, "a", visible[2].TaskID)
	assert.Equal(t, "d", visible[3].TaskID)
}

// Mirrors the dashboard scenario end to end: ordering, a start-work
// transition, then client deactivation wiping the list.
func TestDashboardScenario(t *testing.T) {
	taskA := model.Task{TaskID: "A", TaskName: "Spring promo", ClientName: "Acme", AssignedTo: "Asha",
		Department: model.DepartmentVideo, Status: model.StatusAssigned, Deadline: "2024-02-10"}
	taskB := model.Task{TaskID: "B", TaskName: "Teaser cut", ClientName: "Acme", AssignedTo: "Asha",
		Department: model.DepartmentVideo, Status: model.StatusInProgress, Deadline: "2024-02-01"}
	activeIdx := NewActiveClientIndex([]model.Client{{ClientName: "Acme", Status: "active"}})

	visible := VisibleTasks(asha(), []model.Task{taskA, taskB}, activeIdx)
	require.Len(t, visible, 2)
	assert.Equal(t, "B", visible[0].TaskID, "earlier deadline first")
	assert.Equal(t, "A", visible[1].TaskID)

	patch, err := ApplyTransition(taskA, ActionStartWork, TransitionInput{Actor: asha(), Now: testNow})
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, patch["status"])
	taskA.Status = model.StatusInProgress

	visible = VisibleTasks(asha(), []model.Task{taskA, taskB}, activeIdx)
	require.Len(t, visible, 2)
	assert.Equal(t, "A", visible[1].TaskID, "deadline unchanged, position unchanged")

	inactiveIdx := NewActiveClientIndex([]model.Client{{ClientName: "Acme", Status: "inactive"}})
	visible = VisibleTasks(asha(), []model.Task{taskA, taskB}, inactiveIdx)
	assert.Empty(t, visible)
}
