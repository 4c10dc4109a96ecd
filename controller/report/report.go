package report

import (
	"net/http"

	"opsdesk/common"
	"opsdesk/dto"
	"opsdesk/middleware"
	"opsdesk/services"

	"github.com/gin-gonic/gin"
)

func ReportController(router *gin.Engine, store *services.Store) {
	router.GET("/report/tasks", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		TaskReport(c, store)
	})
}

// TaskReport returns the deterministic row set handed to the PDF/Excel
// rendering collaborator: task rows grouped by client, filtered by the
// optional department/status query parameters.
func TaskReport(c *gin.Context, store *services.Store) {
	var req dto.ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != "" && !services.KnownStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status filter"})
		return
	}

	ctx := c.Request.Context()
	taskDocs, err := store.ReadOnce(ctx, services.CollectionTasks)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	clientDocs, err := store.ReadOnce(ctx, services.CollectionClients)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	groups := services.BuildReport(
		services.DecodeTasks(taskDocs),
		services.DecodeClients(clientDocs),
		req.Department,
		req.Status,
	)
	c.JSON(http.StatusOK, groups)
}
