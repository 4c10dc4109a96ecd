package employee

import (
	"testing"
	"time"

	"opsdesk/common"
	"opsdesk/dto"
	"opsdesk/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEmployeeUpdate(t *testing.T) {
	now := time.Date(2024, 2, 5, 9, 0, 0, 0, time.UTC)

	t.Run("collects only the provided fields", func(t *testing.T) {
		fields, err := buildEmployeeUpdate(dto.UpdateEmployeeRequest{
			EmployeeName: "  Asha Rao  ",
			Department:   model.DepartmentVideo,
		}, now)
		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{
			"updatedat":    now,
			"employeename": "Asha Rao",
			"department":   model.DepartmentVideo,
		}, fields)
	})

	t.Run("rejects an empty update", func(t *testing.T) {
		_, err := buildEmployeeUpdate(dto.UpdateEmployeeRequest{}, now)
		var verr *common.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("rejects an out-of-range name", func(t *testing.T) {
		_, err := buildEmployeeUpdate(dto.UpdateEmployeeRequest{EmployeeName: "A"}, now)
		var verr *common.ValidationError
		require.ErrorAs(t, err, &verr)
	})
}
