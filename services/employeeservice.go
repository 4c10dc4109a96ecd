package services

import (
	"context"
	"strings"
	"time"

	"opsdesk/common"
	"opsdesk/model"

	"firebase.google.com/go/auth"
)

// EmployeeExists does the creation-time uniqueness check: a linear scan of
// all employee records for the given email. The Store itself enforces
// nothing.
func EmployeeExists(ctx context.Context, store *Store, email string) (bool, error) {
	docs, err := store.ReadOnce(ctx, CollectionEmployees)
	if err != nil {
		return false, err
	}
	for _, e := range DecodeEmployees(docs) {
		if !e.Deleted && strings.EqualFold(e.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

// FindEmployeeByUID looks up the employee record referencing the given auth
// identity.
func FindEmployeeByUID(ctx context.Context, store *Store, uid string) (*model.Employee, error) {
	docs, err := store.ReadOnce(ctx, CollectionEmployees)
	if err != nil {
		return nil, err
	}
	for _, e := range DecodeEmployees(docs) {
		if e.FirebaseUID == uid {
			found := e
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

// FindEmployeeByDocID reads one employee record by its Store key.
func FindEmployeeByDocID(ctx context.Context, store *Store, docID string) (*model.Employee, error) {
	doc, err := store.ReadDoc(ctx, CollectionEmployees, docID)
	if err != nil {
		return nil, err
	}
	var e model.Employee
	if err := doc.DataTo(&e); err != nil {
		return nil, err
	}
	e.DocID = doc.Ref.ID
	return &e, nil
}

// ActiveEmployeesByDepartment lists non-deleted active employees of one
// department; feeds the send-for-approval target picker.
func ActiveEmployeesByDepartment(ctx context.Context, store *Store, department string) ([]model.Employee, error) {
	docs, err := store.ReadOnce(ctx, CollectionEmployees)
	if err != nil {
		return nil, err
	}
	active := []model.Employee{}
	for _, e := range DecodeEmployees(docs) {
		if e.Deleted || e.Status != model.EmployeeActive {
			continue
		}
		if department == "" || e.Department == department {
			active = append(active, e)
		}
	}
	return active, nil
}

// CreateEmployee runs the two-step account creation: an auth identity first,
// then the Store record referencing it. The admin SDK never signs the new
// identity into the caller's session, so the session-capture hazard of the
// old flow cannot occur. If the Store write fails after the auth identity
// exists, the identity is deleted best-effort so it is not left orphaned.
func CreateEmployee(ctx context.Context, store *Store, authClient *auth.Client, name, department, role, email, password string) (*model.Employee, error) {
	exists, err := EmployeeExists(ctx, store, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.Validation("An employee with this email already exists")
	}

	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(name)
	authUser, err := authClient.CreateUser(ctx, params)
	if err != nil {
		return nil, classifyAuthErr(err)
	}

	now := time.Now()
	employee := model.Employee{
		EmployeeName: name,
		Department:   department,
		Role:         role,
		Email:        email,
		Status:       model.EmployeeActive,
		FirebaseUID:  authUser.UID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	docID, err := store.Append(ctx, CollectionEmployees, employee)
	if err != nil {
		// Avoid an orphaned auth identity with no Store record.
		if delErr := authClient.DeleteUser(ctx, authUser.UID); delErr != nil {
			common.Log.WithError(delErr).WithField("uid", authUser.UID).Error("failed to clean up auth account after store write failure")
		}
		return nil, err
	}
	employee.DocID = docID
	return &employee, nil
}

func classifyAuthErr(err error) error {
	if auth.IsEmailAlreadyExists(err) {
		return common.AuthRejected("This email is already registered with the auth service", err)
	}
	return common.AuthRejected("The auth service rejected the account: "+err.Error(), err)
}
