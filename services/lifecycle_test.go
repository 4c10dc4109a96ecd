package services

import (
	"errors"
	"testing"
	"time"

	"opsdesk/common"
	"opsdesk/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC)

func testActor() model.ActorContext {
	return model.ActorContext{EmployeeID: "e1", Name: "Asha", Department: model.DepartmentVideo, Role: model.RoleEmployee}
}

func TestStartWork(t *testing.T) {
	in := TransitionInput{Actor: testActor(), Now: testNow}

	t.Run("should start work from every assigned-like status", func(t *testing.T) {
		for _, status := range []string{
			model.StatusAssigned,
			model.StatusAssignedToDepartment,
			model.StatusPending,
			model.StatusApproved,
		} {
			patch, err := ApplyTransition(model.Task{Status: status}, ActionStartWork, in)
			require.NoError(t, err, "from %q", status)
			assert.Equal(t, model.StatusInProgress, patch["status"])
			assert.Equal(t, testNow, patch["startedat"])
			assert.Equal(t, testNow, patch["lastupdated"])
		}
	})

	t.Run("should pass an existing revision count through unchanged", func(t *testing.T) {
		task := model.Task{Status: model.StatusAssigned, RevisionCount: 3}
		patch, err := ApplyTransition(task, ActionStartWork, in)
		require.NoError(t, err)
		_, touched := patch["revisioncount"]
		assert.False(t, touched)
		_, touched = patch["lastrevisionat"]
		assert.False(t, touched)
	})

	t.Run("should reject starting a task already in progress", func(t *testing.T) {
		_, err := ApplyTransition(model.Task{Status: model.StatusInProgress}, ActionStartWork, in)
		assert.True(t, errors.Is(err, common.ErrTransitionNotAllowed))
	})
}

func TestStartRevision(t *testing.T) {
	in := TransitionInput{Actor: testActor(), Now: testNow}

	t.Run("should only start from revision-required", func(t *testing.T) {
		patch, err := ApplyTransition(model.Task{Status: model.StatusRevisionRequired}, ActionStartRevision, in)
		require.NoError(t, err)
		assert.Equal(t, model.StatusInProgress, patch["status"])
		assert.Equal(t, testNow, patch["revisionstartedat"])

		_, err = ApplyTransition(model.Task{Status: model.StatusAssigned}, ActionStartRevision, in)
		assert.True(t, errors.Is(err, common.ErrTransitionNotAllowed))
	})

	t.Run("should leave the revision message in place", func(t *testing.T) {
		message := "make the logo bigger"
		task := model.Task{Status: model.StatusRevisionRequired, RevisionMessage: &message}
		patch, err := ApplyTransition(task, ActionStartRevision, in)
		require.NoError(t, err)
		_, touched := patch["revisionmessage"]
		assert.False(t, touched)
	})
}

func TestMarkComplete(t *testing.T) {
	in := TransitionInput{Actor: testActor(), Now: testNow}

	patch, err := ApplyTransition(model.Task{Status: model.StatusInProgress, RevisionCount: 2}, ActionMarkComplete, in)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, patch["status"])
	assert.Equal(t, testNow, patch["completedat"])
	_, touched := patch["revisioncount"]
	assert.False(t, touched)

	_, err = ApplyTransition(model.Task{Status: model.StatusCompleted}, ActionMarkComplete, in)
	assert.True(t, errors.Is(err, common.ErrTransitionNotAllowed))
}

func TestSendForApproval(t *testing.T) {
	t.Run("should require a social-media target", func(t *testing.T) {
		in := TransitionInput{Actor: testActor(), Now: testNow}
		_, err := ApplyTransition(model.Task{Status: model.StatusCompleted}, ActionSendForApproval, in)
		var validationErr *common.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})

	t.Run("should hand the task to social-media and clear the revision message", func(t *testing.T) {
		in := TransitionInput{Actor: testActor(), Now: testNow, ApprovalTarget: "Priya"}
		task := model.Task{Status: model.StatusCompleted, Department: model.DepartmentVideo}
		patch, err := ApplyTransition(task, ActionSendForApproval, in)
		require.NoError(t, err)
		assert.Equal(t, model.StatusPendingClientApproval, patch["status"])
		assert.Equal(t, model.DepartmentSocialMedia, patch["department"])
		assert.Equal(t, "Priya", patch["socialmediaassignedto"])
		assert.Equal(t, "Asha", patch["submittedby"])
		assert.Equal(t, testNow, patch["submittedat"])
		assert.Nil(t, patch["revisionmessage"])
	})

	t.Run("should seed originalDepartment only when the task has none", func(t *testing.T) {
		in := TransitionInput{Actor: testActor(), Now: testNow, ApprovalTarget: "Priya"}

		fresh := model.Task{Status: model.StatusCompleted, Department: model.DepartmentVideo}
		patch, err := ApplyTransition(fresh, ActionSendForApproval, in)
		require.NoError(t, err)
		assert.Equal(t, model.DepartmentVideo, patch["originaldepartment"])

		handedOff := model.Task{
			Status:             model.StatusCompleted,
			Department:         model.DepartmentSocialMedia,
			OriginalDepartment: model.DepartmentGraphics,
		}
		patch, err = ApplyTransition(handedOff, ActionSendForApproval, in)
		require.NoError(t, err)
		_, touched := patch["originaldepartment"]
		assert.False(t, touched, "existing originalDepartment must be preserved")
	})
}

func TestRequestRevision(t *testing.T) {
	t.Run("should increment the revision counter by exactly one", func(t *testing.T) {
		in := TransitionInput{Actor: testActor(), Now: testNow, RevisionMessage: "wrong aspect ratio"}
		task := model.Task{Status: model.StatusPendingClientApproval, RevisionCount: 3}
		patch, err := ApplyTransition(task, ActionRequestRevision, in)
		require.NoError(t, err)
		assert.Equal(t, model.StatusRevisionRequired, patch["status"])
		assert.Equal(t, 4, patch["revisioncount"])
		assert.Equal(t, "wrong aspect ratio", patch["revisionmessage"])
		assert.Equal(t, testNow, patch["lastrevisionat"])
	})

	t.Run("should require a message", func(t *testing.T) {
		in := TransitionInput{Actor: testActor(), Now: testNow}
		_, err := ApplyTransition(model.Task{Status: model.StatusPendingClientApproval}, ActionRequestRevision, in)
		var validationErr *common.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})
}

func TestApproveAndPost(t *testing.T) {
	in := TransitionInput{Actor: testActor(), Now: testNow}

	patch, err := ApplyTransition(model.Task{Status: model.StatusPendingClientApproval}, ActionApprove, in)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, patch["status"])
	assert.Equal(t, testNow, patch["approvedat"])

	patch, err = ApplyTransition(model.Task{Status: model.StatusApproved}, ActionMarkPosted, in)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPosted, patch["status"])
	assert.Equal(t, testNow, patch["postedat"])

	_, err = ApplyTransition(model.Task{Status: model.StatusAssigned}, ActionMarkPosted, in)
	assert.True(t, errors.Is(err, common.ErrTransitionNotAllowed))
}

func TestOverrideStatus(t *testing.T) {
	head := model.ActorContext{EmployeeID: "h1", Name: "Dev", Role: model.RoleHead}

	t.Run("should reject non-head actors", func(t *testing.T) {
		_, err := OverrideStatus(model.Task{Status: model.StatusAssigned}, model.StatusPosted, testActor(), testNow)
		assert.True(t, errors.Is(err, common.ErrPermissionDenied))
	})

	t.Run("should allow any-to-any for heads", func(t *testing.T) {
		patch, err := OverrideStatus(model.Task{Status: model.StatusAssigned}, model.StatusPosted, head, testNow)
		require.NoError(t, err)
		assert.Equal(t, model.StatusPosted, patch["status"])
	})

	t.Run("should stamp the status-specific timestamp", func(t *testing.T) {
		patch, err := OverrideStatus(model.Task{Status: model.StatusAssigned}, model.StatusCompleted, head, testNow)
		require.NoError(t, err)
		assert.Equal(t, testNow, patch["completedat"])

		patch, err = OverrideStatus(model.Task{Status: model.StatusAssigned}, model.StatusInProgress, head, testNow)
		require.NoError(t, err)
		assert.Equal(t, testNow, patch["startedat"])
	})

	t.Run("should reject unknown statuses", func(t *testing.T) {
		_, err := OverrideStatus(model.Task{Status: model.StatusAssigned}, "archived", head, testNow)
		var validationErr *common.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})
}
