package task

import (
	"net/http"
	"time"

	"opsdesk/common"
	"opsdesk/dto"
	"opsdesk/middleware"
	"opsdesk/model"
	"opsdesk/services"

	"github.com/gin-gonic/gin"
)

func TaskController(router *gin.Engine, store *services.Store) {
	routes := router.Group("/task", middleware.AccessTokenMiddleware())
	{
		routes.POST("", func(c *gin.Context) {
			CreateTask(c, store)
		})
		routes.POST("/:id/start", transitionHandler(store, services.ActionStartWork))
		routes.POST("/:id/start-revision", transitionHandler(store, services.ActionStartRevision))
		routes.POST("/:id/complete", transitionHandler(store, services.ActionMarkComplete))
		routes.POST("/:id/approve", transitionHandler(store, services.ActionApprove))
		routes.POST("/:id/post", transitionHandler(store, services.ActionMarkPosted))
		routes.POST("/:id/send-for-approval", func(c *gin.Context) {
			SendForApproval(c, store)
		})
		routes.POST("/:id/request-revision", func(c *gin.Context) {
			RequestRevision(c, store)
		})
		routes.PUT("/:id/status", middleware.HeadMiddleware(), func(c *gin.Context) {
			OverrideStatus(c, store)
		})
	}

	router.GET("/tasks", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		ListVisibleTasks(c, store)
	})
	router.GET("/tasks/stream", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		StreamVisibleTasks(c, store)
	})
}

func CreateTask(c *gin.Context, store *services.Store) {
	actor := middleware.ActorFromContext(c)

	var taskReq dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&taskReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	now := time.Now()
	newTask := model.Task{
		TaskName:           taskReq.TaskName,
		ClientID:           taskReq.ClientID,
		ClientName:         taskReq.ClientName,
		Department:         taskReq.Department,
		OriginalDepartment: taskReq.Department,
		AssignedTo:         taskReq.AssignedTo,
		AssignedBy:         actor.Name,
		Status:             model.StatusAssigned,
		Deadline:           taskReq.Deadline,
		Content:            taskReq.Content,
		SpecialNotes:       taskReq.SpecialNotes,
		ReferenceLink:      taskReq.ReferenceLink,
		LastUpdated:        now,
		CreatedAt:          now,
	}

	ctx := c.Request.Context()
	taskID, err := store.Append(ctx, services.CollectionTasks, newTask)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"taskId":  taskID,
	})
}

// applyAndPatch loads the task, runs the transition table, and awaits the
// Store write so the caller gets an explicit success or failure.
func applyAndPatch(c *gin.Context, store *services.Store, action services.Action, in services.TransitionInput) {
	ctx := c.Request.Context()
	taskID := c.Param("id")

	doc, err := store.ReadDoc(ctx, services.CollectionTasks, taskID)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	var task model.Task
	if err := doc.DataTo(&task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse task data"})
		return
	}
	task.TaskID = doc.Ref.ID

	patch, err := services.ApplyTransition(task, action, in)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	if err := store.Patch(ctx, services.CollectionTasks, taskID, patch); err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task updated",
		"taskId":  taskID,
		"status":  patch["status"],
	})
}

func transitionHandler(store *services.Store, action services.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := services.TransitionInput{
			Actor: middleware.ActorFromContext(c),
			Now:   time.Now(),
		}
		applyAndPatch(c, store, action, in)
	}
}

// SendForApproval hands the task to social-media for client approval. The
// target must be an active social-media employee.
func SendForApproval(c *gin.Context, store *services.Store) {
	var req dto.SendForApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A social-media assignee is required"})
		return
	}

	ctx := c.Request.Context()
	candidates, err := services.ActiveEmployeesByDepartment(ctx, store, model.DepartmentSocialMedia)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	valid := false
	for _, e := range candidates {
		if e.EmployeeName == req.SocialMediaAssignedTo {
			valid = true
			break
		}
	}
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Assignee is not an active social-media employee"})
		return
	}

	in := services.TransitionInput{
		Actor:          middleware.ActorFromContext(c),
		Now:            time.Now(),
		ApprovalTarget: req.SocialMediaAssignedTo,
	}
	applyAndPatch(c, store, services.ActionSendForApproval, in)
}

// RequestRevision records the client's change request and bumps the
// monotonic revision counter.
func RequestRevision(c *gin.Context, store *services.Store) {
	var req dto.RequestRevisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A revision message is required"})
		return
	}

	in := services.TransitionInput{
		Actor:           middleware.ActorFromContext(c),
		Now:             time.Now(),
		RevisionMessage: req.RevisionMessage,
	}
	applyAndPatch(c, store, services.ActionRequestRevision, in)
}

// OverrideStatus is the head-only any-to-any status set; every use is
// audit-logged by the lifecycle engine.
func OverrideStatus(c *gin.Context, store *services.Store) {
	var req dto.OverrideStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A status is required"})
		return
	}

	ctx := c.Request.Context()
	taskID := c.Param("id")
	doc, err := store.ReadDoc(ctx, services.CollectionTasks, taskID)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	var task model.Task
	if err := doc.DataTo(&task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse task data"})
		return
	}
	task.TaskID = doc.Ref.ID

	patch, err := services.OverrideStatus(task, req.Status, middleware.ActorFromContext(c), time.Now())
	if err != nil {
		common.RespondError(c, err)
		return
	}
	if err := store.Patch(ctx, services.CollectionTasks, taskID, patch); err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Status overridden",
		"taskId":  taskID,
		"status":  req.Status,
	})
}
