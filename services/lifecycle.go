package services

import (
	"fmt"
	"opsdesk/common"
	"opsdesk/model"
	"time"
)

// Action names a lifecycle transition an actor can invoke on a task.
type Action string

const (
	ActionStartWork       Action = "start-work"
	ActionStartRevision   Action = "start-revision"
	ActionMarkComplete    Action = "mark-complete"
	ActionSendForApproval Action = "send-for-approval"
	ActionApprove         Action = "approve"
	ActionRequestRevision Action = "request-revision"
	ActionMarkPosted      Action = "mark-posted"
)

type transitionRule struct {
	from []string
	to   string
}

// transitionTable is the single source of truth for allowed transitions.
// Every screen calls ApplyTransition instead of re-deriving allowed actions
// from raw status comparisons.
var transitionTable = map[Action]transitionRule{
	ActionStartWork:       {from: []string{model.StatusAssigned, model.StatusApproved}, to: model.StatusInProgress},
	ActionStartRevision:   {from: []string{model.StatusRevisionRequired}, to: model.StatusInProgress},
	ActionMarkComplete:    {from: []string{model.StatusInProgress}, to: model.StatusCompleted},
	ActionSendForApproval: {from: []string{model.StatusCompleted}, to: model.StatusPendingClientApproval},
	ActionApprove:         {from: []string{model.StatusPendingClientApproval}, to: model.StatusApproved},
	ActionRequestRevision: {from: []string{model.StatusPendingClientApproval}, to: model.StatusRevisionRequired},
	ActionMarkPosted:      {from: []string{model.StatusApproved}, to: model.StatusPosted},
}

// TransitionInput carries the per-action parameters of a transition.
type TransitionInput struct {
	Actor model.ActorContext
	Now   time.Time

	// ApprovalTarget is the social-media employee picked for send-for-approval.
	ApprovalTarget string
	// RevisionMessage is the client's change request for request-revision.
	RevisionMessage string
}

// normalizeStatus folds the legacy alias statuses into "assigned" for the
// purpose of allowed actions. Records keep whatever value they carry.
func normalizeStatus(status string) string {
	switch status {
	case model.StatusAssignedToDepartment, model.StatusPending, "":
		return model.StatusAssigned
	}
	return status
}

// ApplyTransition checks the precondition for action against the task's
// current status and returns the field patch to merge into the record. The
// patch never touches revisionCount except for request-revision, which
// increments it by exactly one; the counter is monotonic.
func ApplyTransition(task model.Task, action Action, in TransitionInput) (map[string]interface{}, error) {
	rule, ok := transitionTable[action]
	if !ok {
		return nil, fmt.Errorf("unknown action %q", action)
	}

	current := normalizeStatus(task.Status)
	allowed := false
	for _, from := range rule.from {
		if current == from {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("%w: cannot %s a task in status %q", common.ErrTransitionNotAllowed, action, task.Status)
	}

	patch := map[string]interface{}{
		"status":      rule.to,
		"lastupdated": in.Now,
	}

	switch action {
	case ActionStartWork:
		patch["startedat"] = in.Now
	case ActionStartRevision:
		// revisionMessage stays in place so the worker can still read it.
		patch["revisionstartedat"] = in.Now
	case ActionMarkComplete:
		patch["completedat"] = in.Now
	case ActionSendForApproval:
		if in.ApprovalTarget == "" {
			return nil, common.Validation("A social-media employee must be selected before sending for approval")
		}
		patch["submittedat"] = in.Now
		patch["submittedby"] = in.Actor.Name
		patch["socialmediaassignedto"] = in.ApprovalTarget
		patch["department"] = model.DepartmentSocialMedia
		patch["revisionmessage"] = nil
		if task.OriginalDepartment == "" {
			patch["originaldepartment"] = task.Department
		}
	case ActionApprove:
		patch["approvedat"] = in.Now
	case ActionRequestRevision:
		if in.RevisionMessage == "" {
			return nil, common.Validation("A revision message is required when requesting changes")
		}
		patch["lastrevisionat"] = in.Now
		patch["revisionmessage"] = in.RevisionMessage
		patch["revisioncount"] = task.RevisionCount + 1
	case ActionMarkPosted:
		patch["postedat"] = in.Now
	}

	return patch, nil
}

// OverrideStatus is the head-only escape hatch that sets any status without
// precondition checks. It stamps the status-specific timestamp where one
// exists and is audit-logged on every use.
func OverrideStatus(task model.Task, newStatus string, actor model.ActorContext, now time.Time) (map[string]interface{}, error) {
	if !actor.IsHead() {
		return nil, common.ErrPermissionDenied
	}
	if !KnownStatus(newStatus) {
		return nil, common.Validation(fmt.Sprintf("unknown status %q", newStatus))
	}

	patch := map[string]interface{}{
		"status":      newStatus,
		"lastupdated": now,
	}
	switch newStatus {
	case model.StatusInProgress:
		patch["startedat"] = now
	case model.StatusCompleted:
		patch["completedat"] = now
	case model.StatusPendingClientApproval:
		patch["submittedat"] = now
	}

	common.Log.WithFields(map[string]interface{}{
		"taskId": task.TaskID,
		"actor":  actor.Name,
		"from":   task.Status,
		"to":     newStatus,
	}).Warn("status override applied")

	return patch, nil
}

// KnownStatus reports whether s is one of the recognized task statuses.
func KnownStatus(s string) bool {
	switch s {
	case model.StatusAssigned, model.StatusAssignedToDepartment, model.StatusPending,
		model.StatusInProgress, model.StatusCompleted, model.StatusPendingClientApproval,
		model.StatusApproved, model.StatusRevisionRequired, model.StatusPosted:
		return true
	}
	return false
}
