package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bindingValidator mirrors gin's binding setup, which validates "binding"
// tags with validator/v10.
func bindingValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

func TestCreateEmployeeRequestBinding(t *testing.T) {
	v := bindingValidator()
	valid := CreateEmployeeRequest{
		EmployeeName: "Asha",
		Department:   "video",
		Role:         "employee",
		Email:        "asha@example.com",
		Password:     "secret1",
	}
	require.NoError(t, v.Struct(valid))

	t.Run("should reject a malformed email", func(t *testing.T) {
		req := valid
		req.Email = "not-an-email"
		assert.Error(t, v.Struct(req))
	})

	t.Run("should reject a password shorter than 6 characters", func(t *testing.T) {
		req := valid
		req.Password = "short"
		assert.Error(t, v.Struct(req))
	})

	t.Run("should reject an unknown department", func(t *testing.T) {
		req := valid
		req.Department = "finance"
		assert.Error(t, v.Struct(req))
	})
}
