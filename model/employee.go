package model

import "time"

// Employee roles.
const (
	RoleEmployee = "employee"
	RoleHead     = "head"
)

// Employee account statuses.
const (
	EmployeeActive   = "active"
	EmployeeInactive = "inactive"
	EmployeeDisabled = "disabled"
)

// Employee is the Store record for a staff account. Credentials live in the
// external auth service only; FirebaseUID is the link between the two.
type Employee struct {
	DocID        string    `firestore:"-" json:"docId"`
	EmployeeName string    `firestore:"employeename,omitempty" json:"employeeName"`
	Department   string    `firestore:"department,omitempty" json:"department"`
	Role         string    `firestore:"role,omitempty" json:"role"`
	Email        string    `firestore:"email,omitempty" json:"email"`
	Status       string    `firestore:"status,omitempty" json:"status"`
	Deleted      bool      `firestore:"deleted" json:"deleted"`
	FirebaseUID  string    `firestore:"firebaseuid,omitempty" json:"firebaseUid"`
	CreatedAt    time.Time `firestore:"createdat,omitempty" json:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedat,omitempty" json:"updatedAt"`
}
