package client

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

func ClientController(router *gin.Engine, store *services.Store) {
	routes := router.Group("/client", middleware.AccessTokenMiddleware())
	{
		routes.POST("", func(c *gin.Context) {
			CreateClient(c, store)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateClient(c, store)
		})
		routes.PUT("/:id/status", func(c *gin.Context) {
			SetClientStatus(c, store)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteClient(c, store)
		})
		routes.POST("/:id/forward", func(c *gin.Context) {
			ForwardClient(c, store)
		})
	}

	router.GET("/clients", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		ListClients(c, store)
	})
}

func CreateClient(c *gin.Context, store *services.Store) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := services.CreateClient(c.Request.Context(), store, model.Client{
		ClientName:       req.ClientName,
		ContactNumber:    req.ContactNumber,
		Email:            req.Email,
		ProductionNotes:  req.ProductionNotes,
		VideoNotes:       req.VideoNotes,
		GraphicsNotes:    req.GraphicsNotes,
		SocialMediaNotes: req.SocialMediaNotes,
		StrategyNotes:    req.StrategyNotes,
	})
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Client created successfully",
		"docId":    created.DocID,
		"clientId": created.ClientID,
	})
}

// ListClients returns every client that has not been soft-deleted.
func ListClients(c *gin.Context, store *services.Store) {
	docs, err := store.ReadOnce(c.Request.Context(), services.CollectionClients)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	clients := []model.Client{}
	for _, cl := range services.DecodeClients(docs) {
		if cl.Deleted {
			continue
		}
		clients = append(clients, cl)
	}
	c.JSON(http.StatusOK, clients)
}

func UpdateClient(c *gin.Context, store *services.Store) {
	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := map[string]interface{}{"updatedat": time.Now()}
	if req.ContactNumber != "" {
		fields["contactnumber"] = req.ContactNumber
	}
	if req.Email != "" {
		fields["email"] = req.Email
	}
	if req.ProductionNotes != "" {
		fields["productionnotes"] = req.ProductionNotes
	}
	if req.VideoNotes != "" {
		fields["videonotes"] = req.VideoNotes
	}
	if req.GraphicsNotes != "" {
		fields["graphicsnotes"] = req.GraphicsNotes
	}
	if req.SocialMediaNotes != "" {
		fields["socialmedianotes"] = req.SocialMediaNotes
	}
	if req.StrategyNotes != "" {
		fields["strategynotes"] = req.StrategyNotes
	}
	if len(fields) == 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data to update"})
		return
	}

	if err := store.Patch(c.Request.Context(), services.CollectionClients, c.Param("id"), fields); err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client updated successfully"})
}

// SetClientStatus toggles a client between active and inactive. Deactivating
// hides all of the client's tasks from every dashboard on the next snapshot.
func SetClientStatus(c *gin.Context, store *services.Store) {
	var req dto.SetClientStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := store.Patch(c.Request.Context(), services.CollectionClients, c.Param("id"), map[string]interface{}{
		"status":    req.Status,
		"updatedat": time.Now(),
	})
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client status updated", "status": req.Status})
}

// DeleteClient soft-deletes; client records are never physically removed and
// their clientId is never reused.
func DeleteClient(c *gin.Context, store *services.Store) {
	err := store.Patch(c.Request.Context(), services.CollectionClients, c.Param("id"), map[string]interface{}{
		"deleted":   true,
		"updatedat": time.Now(),
	})
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}

func ForwardClient(c *gin.Context, store *services.Store) {
	actor := middleware.ActorFromContext(c)

	forwarded, err := services.ForwardToStrategyHead(c.Request.Context(), store, c.Param("id"), actor)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Client sent to strategy head",
		"docId":     forwarded.DocID,
		"stage":     forwarded.Stage,
		"taskCount": forwarded.TaskCount,
	})
}
