package task

import (
	"io"
	"net/http"

	"opsdesk/common"
	"opsdesk/middleware"
	"opsdesk/model"
	"opsdesk/services"

	"github.com/gin-gonic/gin"
)

// ListVisibleTasks returns the calling actor's task list: a point-in-time
// read of tasks plus all three client-bearing collections, passed through
// the visibility filter.
func ListVisibleTasks(c *gin.Context, store *services.Store) {
	actor := middleware.ActorFromContext(c)
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
	strategyDocs, err := store.ReadOnce(ctx, services.CollectionStrategyClients)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	strategyHeadDocs, err := store.ReadOnce(ctx, services.CollectionStrategyHeadClients)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	index := services.NewActiveClientIndex(
		services.DecodeClients(clientDocs),
		services.DecodeClients(strategyDocs),
	).AddStrategyClients(services.DecodeStrategyHeadClients(strategyHeadDocs))

	visible := services.VisibleTasks(actor, services.DecodeTasks(taskDocs), index)
	c.JSON(http.StatusOK, visible)
}

// StreamVisibleTasks mirrors the dashboard's live view over SSE: it holds a
// subscription on every relevant collection and re-emits the actor's visible
// list whenever any of them changes. Snapshots across collections are not
// ordered relative to each other; a recomputation may transiently pair a
// task with a stale client list.
func StreamVisibleTasks(c *gin.Context, store *services.Store) {
	actor := middleware.ActorFromContext(c)
	ctx := c.Request.Context()

	taskCh, cancelTasks, err := store.Subscribe(ctx, services.CollectionTasks)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	defer cancelTasks()
	clientCh, cancelClients, err := store.Subscribe(ctx, services.CollectionClients)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	defer cancelClients()
	strategyCh, cancelStrategy, err := store.Subscribe(ctx, services.CollectionStrategyClients)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	defer cancelStrategy()
	strategyHeadCh, cancelStrategyHead, err := store.Subscribe(ctx, services.CollectionStrategyHeadClients)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	defer cancelStrategyHead()

	var tasks []model.Task
	var clients, strategyClients []model.Client
	var strategyHeadClients []model.StrategyHeadClient

	c.Stream(func(w io.Writer) bool {
		select {
		case docs, ok := <-taskCh:
			if !ok {
				return false
			}
			tasks = services.DecodeTasks(docs)
		case docs, ok := <-clientCh:
			if !ok {
				return false
			}
			clients = services.DecodeClients(docs)
		case docs, ok := <-strategyCh:
			if !ok {
				return false
			}
			strategyClients = services.DecodeClients(docs)
		case docs, ok := <-strategyHeadCh:
			if !ok {
				return false
			}
			strategyHeadClients = services.DecodeStrategyHeadClients(docs)
		case <-ctx.Done():
			return false
		}

		index := services.NewActiveClientIndex(clients, strategyClients).
			AddStrategyClients(strategyHeadClients)
		c.SSEvent("tasks", services.VisibleTasks(actor, tasks, index))
		return true
	})
}
