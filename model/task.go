package model

import "time"

// Task statuses. The two alias values appear in records written by older
// department screens and are treated as "assigned" when deciding allowed actions.
const (
	StatusAssigned              = "assigned"
	StatusAssignedToDepartment  = "assigned-to-department" // legacy alias of assigned
	StatusPending               = "pending"                // legacy alias of assigned
	StatusInProgress            = "in-progress"
	StatusCompleted             = "completed"
	StatusPendingClientApproval = "pending-client-approval"
	StatusApproved              = "approved"
	StatusRevisionRequired      = "revision-required"
	StatusPosted                = "posted"
)

// Departments.
const (
	DepartmentProduction  = "production"
	DepartmentVideo       = "video"
	DepartmentGraphics    = "graphics"
	DepartmentSocialMedia = "social-media"
	DepartmentStrategy    = "strategy"
)

type Task struct {
	TaskID                string     `firestore:"-" json:"taskId"`
	TaskName              string     `firestore:"taskname,omitempty" json:"taskName"`
	ClientID              string     `firestore:"clientid,omitempty" json:"clientId"`
	ClientName            string     `firestore:"clientname,omitempty" json:"clientName"`
	Department            string     `firestore:"department,omitempty" json:"department"`
	OriginalDepartment    string     `firestore:"originaldepartment,omitempty" json:"originalDepartment"`
	AssignedTo            string     `firestore:"assignedto,omitempty" json:"assignedTo"`
	AssignedBy            string     `firestore:"assignedby,omitempty" json:"assignedBy"`
	SocialMediaAssignedTo string     `firestore:"socialmediaassignedto,omitempty" json:"socialMediaAssignedTo"`
	Status                string     `firestore:"status,omitempty" json:"status"`
	Deadline              string     `firestore:"deadline,omitempty" json:"deadline"` // calendar date, YYYY-MM-DD
	StartedAt             *time.Time `firestore:"startedat,omitempty" json:"startedAt,omitempty"`
	CompletedAt           *time.Time `firestore:"completedat,omitempty" json:"completedAt,omitempty"`
	SubmittedAt           *time.Time `firestore:"submittedat,omitempty" json:"submittedAt,omitempty"`
	ApprovedAt            *time.Time `firestore:"approvedat,omitempty" json:"approvedAt,omitempty"`
	PostedAt              *time.Time `firestore:"postedat,omitempty" json:"postedAt,omitempty"`
	RevisionStartedAt     *time.Time `firestore:"revisionstartedat,omitempty" json:"revisionStartedAt,omitempty"`
	LastRevisionAt        *time.Time `firestore:"lastrevisionat,omitempty" json:"lastRevisionAt,omitempty"`
	LastUpdated           time.Time  `firestore:"lastupdated,omitempty" json:"lastUpdated"`
	RevisionCount         int        `firestore:"revisioncount" json:"revisionCount"`
	RevisionMessage       *string    `firestore:"revisionmessage" json:"revisionMessage"`
	Content               string     `firestore:"content,omitempty" json:"content"`
	SpecialNotes          string     `firestore:"specialnotes,omitempty" json:"specialNotes"`
	ReferenceLink         string     `firestore:"referencelink,omitempty" json:"referenceLink"`
	SubmittedBy           string     `firestore:"submittedby,omitempty" json:"submittedBy"`
	CreatedAt             time.Time  `firestore:"createdat,omitempty" json:"createdAt"`
}
