package employee

import (
	"net/http"
	"strings"
	"time"

	"opsdesk/common"
	"opsdesk/dto"
	"opsdesk/middleware"
	"opsdesk/model"
	"opsdesk/services"

	firebaseauth "firebase.google.com/go/auth"
	"github.com/gin-gonic/gin"
)

func EmployeeController(router *gin.Engine, store *services.Store, authClient *firebaseauth.Client) {
	routes := router.Group("/employee", middleware.AccessTokenMiddleware(), middleware.HeadMiddleware())
	{
		routes.POST("", func(c *gin.Context) {
			CreateEmployee(c, store, authClient)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateEmployee(c, store)
		})
		routes.PUT("/:id/deactivate", func(c *gin.Context) {
			DeactivateEmployee(c, store)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteEmployee(c, store)
		})
	}

	router.GET("/employees", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		ListEmployees(c, store)
	})
}

func CreateEmployee(c *gin.Context, store *services.Store, authClient *firebaseauth.Client) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := services.CreateEmployee(c.Request.Context(), store, authClient,
		strings.TrimSpace(req.EmployeeName), req.Department, req.Role, req.Email, req.Password)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Employee created successfully",
		"docId":   created.DocID,
	})
}

// ListEmployees returns active, non-deleted employees, optionally narrowed to
// one department. Feeds the assignment and approval-target pickers.
func ListEmployees(c *gin.Context, store *services.Store) {
	department := c.Query("department")

	employees, err := services.ActiveEmployeesByDepartment(c.Request.Context(), store, department)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	responses := make([]dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, dto.EmployeeResponse{
			DocID:        e.DocID,
			EmployeeName: e.EmployeeName,
			Department:   e.Department,
			Role:         e.Role,
			Email:        e.Email,
			Status:       e.Status,
			CreatedAt:    e.CreatedAt.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, responses)
}

// buildEmployeeUpdate collects the provided fields into an update map,
// rejecting requests that carry no data or an out-of-range name.
func buildEmployeeUpdate(req dto.UpdateEmployeeRequest, now time.Time) (map[string]interface{}, error) {
	fields := map[string]interface{}{"updatedat": now}
	if req.EmployeeName != "" {
		name := strings.TrimSpace(req.EmployeeName)
		if len(name) < 2 || len(name) > 100 {
			return nil, common.Validation("Name must be between 2 and 100 characters")
		}
		fields["employeename"] = name
	}
	if req.Department != "" {
		fields["department"] = req.Department
	}
	if req.Role != "" {
		fields["role"] = req.Role
	}
	if len(fields) == 1 {
		return nil, common.Validation("No data to update")
	}
	return fields, nil
}

func UpdateEmployee(c *gin.Context, store *services.Store) {
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields, err := buildEmployeeUpdate(req, time.Now())
	if err != nil {
		common.RespondError(c, err)
		return
	}

	if err := store.UpdateTx(c.Request.Context(), services.CollectionEmployees, c.Param("id"), fields); err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee updated successfully"})
}

func DeactivateEmployee(c *gin.Context, store *services.Store) {
	err := store.Patch(c.Request.Context(), services.CollectionEmployees, c.Param("id"), map[string]interface{}{
		"status":    model.EmployeeInactive,
		"updatedat": time.Now(),
	})
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deactivated"})
}

// DeleteEmployee soft-deletes the Store record; the auth identity stays so
// the firebaseUid reference remains resolvable in audit history.
func DeleteEmployee(c *gin.Context, store *services.Store) {
	err := store.Patch(c.Request.Context(), services.CollectionEmployees, c.Param("id"), map[string]interface{}{
		"deleted":   true,
		"status":    model.EmployeeDisabled,
		"updatedat": time.Now(),
	})
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}
