package dto

type CreateEmployeeRequest struct {
	EmployeeName string `json:"employeeName" binding:"required"`
	Department   string `json:"department" binding:"required,oneof=production video graphics social-media strategy"`
	Role         string `json:"role" binding:"required,oneof=employee head"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
}

type UpdateEmployeeRequest struct {
	EmployeeName string `json:"employeeName"`
	Department   string `json:"department" binding:"omitempty,oneof=production video graphics social-media strategy"`
	Role         string `json:"role" binding:"omitempty,oneof=employee head"`
}

type EmployeeResponse struct {
	DocID        string `json:"docId"`
	EmployeeName string `json:"employeeName"`
	Department   string `json:"department"`
	Role         string `json:"role"`
	Email        string `json:"email"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}
