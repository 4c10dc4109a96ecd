package services

import (
	"sort"
	"strings"

	"opsdesk/model"
)

// ActiveClientIndex is the set of identifiers of every non-deactivated
// client, built once per snapshot across all three client-bearing
// collections and passed into the visibility filter.
type ActiveClientIndex struct {
	keys map[string]struct{}
}

// NewActiveClientIndex unions clientId and clientName from every record whose
// status is not inactive/disabled. Strategy-stage mirrors are folded in via
// AddStrategyClients.
func NewActiveClientIndex(groups ...[]model.Client) ActiveClientIndex {
	idx := ActiveClientIndex{keys: map[string]struct{}{}}
	for _, clients := range groups {
		for _, c := range clients {
			if clientDeactivated(c.Status) {
				continue
			}
			idx.add(c.ClientID)
			idx.add(c.ClientName)
		}
	}
	return idx
}

// AddStrategyClients folds a strategy-head mirror collection into the index.
func (idx ActiveClientIndex) AddStrategyClients(clients []model.StrategyHeadClient) ActiveClientIndex {
	for _, c := range clients {
		if clientDeactivated(c.Status) {
			continue
		}
		idx.add(c.ClientID)
		idx.add(c.ClientName)
	}
	return idx
}

func (idx ActiveClientIndex) add(key string) {
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	idx.keys[key] = struct{}{}
}

// Allows reports whether the task's client is still active. Tasks carrying no
// client reference at all are legacy records and stay eligible by default;
// tasks of a deactivated client are hidden unconditionally, even from the
// employee who owns them.
func (idx ActiveClientIndex) Allows(t model.Task) bool {
	id := strings.TrimSpace(t.ClientID)
	name := strings.TrimSpace(t.ClientName)
	if id == "" && name == "" {
		return true
	}
	if _, ok := idx.keys[id]; ok {
		return true
	}
	if _, ok := idx.keys[name]; ok {
		return true
	}
	return false
}

func clientDeactivated(status string) bool {
	switch strings.ToLower(status) {
	case "inactive", "disabled":
		return true
	}
	return false
}

// VisibleTasks computes the task list the actor may see and act on:
// client must be active (or absent), the task must be assigned to the actor
// or have been submitted by them, and the task's current or original
// department must match the actor's. The result is sorted ascending by
// deadline with undated tasks last, stable otherwise.
//
// The submittedBy clause is what lets a task follow its worker through a
// cross-department handoff: after send-for-approval moves the task to
// social-media, the original worker still sees it as a submitted item.
func VisibleTasks(actor model.ActorContext, tasks []model.Task, idx ActiveClientIndex) []model.Task {
	actorName := strings.ToLower(strings.TrimSpace(actor.Name))

	visible := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !idx.Allows(t) {
			continue
		}
		assignedMatch := strings.ToLower(strings.TrimSpace(t.AssignedTo)) == actorName
		submittedMatch := t.SubmittedBy != "" && t.SubmittedBy == actor.Name
		if !assignedMatch && !submittedMatch {
			continue
		}
		if actor.Department != "" &&
			t.Department != actor.Department &&
			t.OriginalDepartment != actor.Department {
			continue
		}
		visible = append(visible, t)
	}

	SortByDeadline(visible)
	return visible
}

// SortByDeadline orders tasks ascending by their calendar-date deadline.
// Deadlines are ISO YYYY-MM-DD strings, so lexicographic order is date
// order; tasks with no deadline sort last, keeping their relative order.
func SortByDeadline(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		di, dj := tasks[i].Deadline, tasks[j].Deadline
		if di == "" {
			return false
		}
		if dj == "" {
			return true
		}
		return di < dj
	})
}
