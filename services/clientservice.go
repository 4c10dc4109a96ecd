package services

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"opsdesk/common"
	"opsdesk/model"
)

var clientIDDigits = regexp.MustCompile(`\d+`)

// NextClientID assigns the next human-facing client sequence number: the
// largest numeric value found in any existing id (non-numeric prefixes are
// ignored), plus one. Ids are never reused, even after deactivation.
func NextClientID(existing []string) string {
	max := 0
	for _, id := range existing {
		digits := clientIDDigits.FindString(id)
		if digits == "" {
			continue
		}
		n, err := strconv.Atoi(digits)
		if err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}

// CanForwardClient is the idempotence guard for forward-to-next-stage: a
// client already marked as sent is rejected instead of duplicated.
func CanForwardClient(c model.Client) error {
	if c.SentToStrategyHead {
		return common.ErrAlreadyForwarded
	}
	return nil
}

// CountClientTasks counts the tasks bound to the given client by id or name.
func CountClientTasks(tasks []model.Task, c model.Client) int {
	count := 0
	for _, t := range tasks {
		if (t.ClientID != "" && t.ClientID == c.ClientID) ||
			(t.ClientName != "" && t.ClientName == c.ClientName) {
			count++
		}
	}
	return count
}

// CreateClient validates the request, assigns the next clientId from a
// point-in-time scan of all existing ids, and appends the record.
func CreateClient(ctx context.Context, store *Store, req model.Client) (*model.Client, error) {
	docs, err := store.ReadOnce(ctx, CollectionClients)
	if err != nil {
		return nil, err
	}
	existing := DecodeClients(docs)

	ids := make([]string, 0, len(existing))
	for _, c := range existing {
		ids = append(ids, c.ClientID)
		if !c.Deleted && strings.EqualFold(strings.TrimSpace(c.ClientName), strings.TrimSpace(req.ClientName)) {
			return nil, common.Validation("A client with this name already exists")
		}
	}

	now := time.Now()
	req.ClientID = NextClientID(ids)
	req.Status = "active"
	req.CreatedAt = now
	req.UpdatedAt = now

	docID, err := store.Append(ctx, CollectionClients, req)
	if err != nil {
		return nil, err
	}
	req.DocID = docID
	return &req, nil
}

var (
	forwardAppendFunc = func(ctx context.Context, store *Store, record model.StrategyHeadClient) (string, error) {
		return store.Append(ctx, CollectionStrategyHeadClients, record)
	}
	forwardMarkSentFunc = func(ctx context.Context, store *Store, clientDocID string) error {
		return store.Patch(ctx, CollectionClients, clientDocID, map[string]interface{}{
			"senttostrategyhead": true,
			"updatedat":          time.Now(),
		})
	}
	forwardRollbackFunc = func(ctx context.Context, store *Store, docID string) error {
		return store.Delete(ctx, CollectionStrategyHeadClients, docID)
	}
)

// ForwardToStrategyHead performs the one-way idempotent copy of a client into
// strategyHeadClients, stamping workflow-stage metadata and marking the
// source as forwarded. A second call reports already-forwarded.
func ForwardToStrategyHead(ctx context.Context, store *Store, clientDocID string, actor model.ActorContext) (*model.StrategyHeadClient, error) {
	doc, err := store.ReadDoc(ctx, CollectionClients, clientDocID)
	if err != nil {
		return nil, err
	}
	var client model.Client
	if err := doc.DataTo(&client); err != nil {
		return nil, err
	}
	client.DocID = doc.Ref.ID

	taskDocs, err := store.ReadOnce(ctx, CollectionTasks)
	if err != nil {
		return nil, err
	}
	return forwardClient(ctx, store, client, DecodeTasks(taskDocs), actor)
}

// forwardClient appends the copy first, then marks the source. A failed mark
// rolls the copy back so a retried forward cannot leave two copies behind.
func forwardClient(ctx context.Context, store *Store, client model.Client, tasks []model.Task, actor model.ActorContext) (*model.StrategyHeadClient, error) {
	if err := CanForwardClient(client); err != nil {
		return nil, err
	}

	forwarded := model.StrategyHeadClient{
		ClientID:        client.ClientID,
		ClientName:      client.ClientName,
		ContactNumber:   client.ContactNumber,
		Email:           client.Email,
		Status:          client.Status,
		StrategyNotes:   client.StrategyNotes,
		Stage:           "pending-strategy",
		TaskCount:       CountClientTasks(tasks, client),
		SentAt:          time.Now(),
		SentBy:          actor.Name,
		SourceClientDoc: client.DocID,
	}

	docID, err := forwardAppendFunc(ctx, store, forwarded)
	if err != nil {
		return nil, err
	}
	forwarded.DocID = docID

	if err := forwardMarkSentFunc(ctx, store, client.DocID); err != nil {
		if rbErr := forwardRollbackFunc(ctx, store, docID); rbErr != nil {
			common.Log.WithError(rbErr).WithField("doc", docID).Error("failed to roll back forwarded client copy")
		}
		return nil, err
	}
	return &forwarded, nil
}
