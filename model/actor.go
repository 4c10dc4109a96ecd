package model

// ActorContext identifies the employee on whose behalf visibility and
// lifecycle transitions are computed. It is populated once at sign-in and
// threaded explicitly; nothing reads it from ambient session storage.
type ActorContext struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

func (a ActorContext) IsHead() bool {
	return a.Role == RoleHead
}
