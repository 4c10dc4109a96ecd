package services

import (
	"context"
	"opsdesk/common"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection names in the Store.
const (
	CollectionEmployees           = "employees"
	CollectionClients             = "clients"
	CollectionTasks               = "tasks"
	CollectionStrategyClients     = "strategyClients"
	CollectionStrategyHeadClients = "strategyHeadClients"
	CollectionRefreshTokens       = "refreshTokens"
)

// Store wraps the Firestore client behind the subscribe/append/patch/readOnce
// contract every screen talks through. Collections are untyped trees; no
// schema validation happens here.
type Store struct {
	client *firestore.Client
}

func NewStore(client *firestore.Client) *Store {
	return &Store{client: client}
}

// Subscribe delivers the full collection immediately, then again on every
// change to any record in it. The stream never ends on its own; the caller
// must call the returned cancel func to stop receiving updates.
func (s *Store) Subscribe(ctx context.Context, collection string) (<-chan []*firestore.DocumentSnapshot, context.CancelFunc, error) {
	if s.client == nil {
		return nil, nil, common.ErrStoreUnavailable
	}

	ctx, cancel := context.WithCancel(ctx)
	out := make(chan []*firestore.DocumentSnapshot)
	iter := s.client.Collection(collection).Snapshots(ctx)

	go func() {
		defer close(out)
		defer iter.Stop()
		for {
			snap, err := iter.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					common.Log.WithError(err).WithField("collection", collection).Error("subscription terminated")
				}
				return
			}
			docs, err := snap.Documents.GetAll()
			if err != nil {
				common.Log.WithError(err).WithField("collection", collection).Error("failed to read snapshot documents")
				continue
			}
			select {
			case out <- docs:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, cancel, nil
}

// Append writes record under a fresh opaque id and returns it.
func (s *Store) Append(ctx context.Context, collection string, record interface{}) (string, error) {
	if s.client == nil {
		return "", common.ErrStoreUnavailable
	}
	id := uuid.New().String()
	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, record); err != nil {
		return "", classifyStoreErr(err)
	}
	return id, nil
}

// Patch merges fields into an existing record. Field names and types are not
// validated; that is entirely the caller's job.
func (s *Store) Patch(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	if s.client == nil {
		return common.ErrStoreUnavailable
	}
	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, fields, firestore.MergeAll); err != nil {
		return classifyStoreErr(err)
	}
	return nil
}

// UpdateTx applies a field update to an existing record inside a transaction:
// the record is read and updated atomically, and a missing record fails with
// not-found instead of being created.
func (s *Store) UpdateTx(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	if s.client == nil {
		return common.ErrStoreUnavailable
	}
	docRef := s.client.Collection(collection).Doc(id)
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return common.ErrNotFound
			}
			return err
		}
		if !doc.Exists() {
			return common.ErrNotFound
		}
		updates := make([]firestore.Update, 0, len(fields))
		for field, value := range fields {
			updates = append(updates, firestore.Update{Path: field, Value: value})
		}
		return tx.Update(docRef, updates)
	})
	if err != nil {
		return classifyStoreErr(err)
	}
	return nil
}

// Delete removes a record. Used to roll back the first write of a two-write
// sequence when the second write fails.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	if s.client == nil {
		return common.ErrStoreUnavailable
	}
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return classifyStoreErr(err)
	}
	return nil
}

// ReadOnce is a single point-in-time read of a whole collection, used where
// an immediate consistency check is needed before a write.
func (s *Store) ReadOnce(ctx context.Context, collection string) ([]*firestore.DocumentSnapshot, error) {
	if s.client == nil {
		return nil, common.ErrStoreUnavailable
	}
	docs, err := s.client.Collection(collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, classifyStoreErr(err)
	}
	return docs, nil
}

// ReadDoc reads a single record by id.
func (s *Store) ReadDoc(ctx context.Context, collection, id string) (*firestore.DocumentSnapshot, error) {
	if s.client == nil {
		return nil, common.ErrStoreUnavailable
	}
	doc, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, common.ErrNotFound
		}
		return nil, classifyStoreErr(err)
	}
	return doc, nil
}

func classifyStoreErr(err error) error {
	switch status.Code(err) {
	case codes.PermissionDenied:
		return common.ErrPermissionDenied
	case codes.Unavailable:
		return common.ErrStoreUnavailable
	}
	return err
}
