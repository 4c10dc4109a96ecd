package dto

type SigninRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

type SignoutRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
}
