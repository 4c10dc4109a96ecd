package dto

type CreateTaskRequest struct {
	TaskName      string `json:"taskName" binding:"required"`
	ClientID      string `json:"clientId"`
	ClientName    string `json:"clientName"`
	Department    string `json:"department" binding:"required,oneof=production video graphics social-media strategy"`
	AssignedTo    string `json:"assignedTo" binding:"required"`
	Deadline      string `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
	Content       string `json:"content"`
	SpecialNotes  string `json:"specialNotes"`
	ReferenceLink string `json:"referenceLink"`
}

type SendForApprovalRequest struct {
	SocialMediaAssignedTo string `json:"socialMediaAssignedTo" binding:"required"`
}

type RequestRevisionRequest struct {
	RevisionMessage string `json:"revisionMessage" binding:"required"`
}

type OverrideStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
