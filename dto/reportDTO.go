package dto

type ReportRequest struct {
	Department string `form:"department" binding:"omitempty,oneof=production video graphics social-media strategy"`
	Status     string `form:"status"`
}
