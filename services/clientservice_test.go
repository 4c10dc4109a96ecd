package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"opsdesk/common"
	"opsdesk/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextClientID(t *testing.T) {
	t.Run("should take the max numeric value plus one, ignoring prefixes", func(t *testing.T) {
		assert.Equal(t, "8", NextClientID([]string{"1", "3", "CLI7"}))
	})

	t.Run("should start at 1 with no existing clients", func(t *testing.T) {
		assert.Equal(t, "1", NextClientID(nil))
	})

	t.Run("should ignore ids with no digits at all", func(t *testing.T) {
		assert.Equal(t, "3", NextClientID([]string{"draft", "2", "n/a"}))
	})

	t.Run("should never reuse the id of a deactivated client", func(t *testing.T) {
		// Deactivated clients stay in the scan, so their ids stay reserved.
		assert.Equal(t, "6", NextClientID([]string{"5", "2"}))
	})
}

func TestCanForwardClient(t *testing.T) {
	t.Run("should allow the first forward", func(t *testing.T) {
		assert.NoError(t, CanForwardClient(model.Client{ClientID: "4"}))
	})

	t.Run("should report already-forwarded on a second attempt", func(t *testing.T) {
		err := CanForwardClient(model.Client{ClientID: "4", SentToStrategyHead: true})
		assert.True(t, errors.Is(err, common.ErrAlreadyForwarded))
	})
}

func TestForwardRollsBackCopyWhenMarkingSourceFails(t *testing.T) {
	origAppend, origMark, origRollback := forwardAppendFunc, forwardMarkSentFunc, forwardRollbackFunc
	defer func() {
		forwardAppendFunc, forwardMarkSentFunc, forwardRollbackFunc = origAppend, origMark, origRollback
	}()

	destination := map[string]model.StrategyHeadClient{}
	appends := 0
	forwardAppendFunc = func(ctx context.Context, store *Store, record model.StrategyHeadClient) (string, error) {
		appends++
		id := fmt.Sprintf("doc-%d", appends)
		destination[id] = record
		return id, nil
	}
	client := model.Client{DocID: "c1", ClientID: "4", ClientName: "Acme"}
	markFails := true
	forwardMarkSentFunc = func(ctx context.Context, store *Store, clientDocID string) error {
		if markFails {
			return common.ErrStoreUnavailable
		}
		client.SentToStrategyHead = true
		return nil
	}
	forwardRollbackFunc = func(ctx context.Context, store *Store, docID string) error {
		delete(destination, docID)
		return nil
	}
	actor := model.ActorContext{Name: "Devika"}

	_, err := forwardClient(context.Background(), nil, client, nil, actor)
	require.Error(t, err)
	assert.Empty(t, destination, "a failed forward must not leave a copy behind")

	// The retry after the outage is the only forward that sticks.
	markFails = false
	forwarded, err := forwardClient(context.Background(), nil, client, nil, actor)
	require.NoError(t, err)
	require.Len(t, destination, 1)
	assert.Equal(t, "c1", destination[forwarded.DocID].SourceClientDoc)

	_, err = forwardClient(context.Background(), nil, client, nil, actor)
	assert.True(t, errors.Is(err, common.ErrAlreadyForwarded))
	assert.Len(t, destination, 1)
}

func TestCountClientTasks(t *testing.T) {
	client := model.Client{ClientID: "4", ClientName: "Acme"}
	tasks := []model.Task{
		{TaskID: "t1", ClientID: "4"},
		{TaskID: "t2", ClientName: "Acme"},
		{TaskID: "t3", ClientID: "9", ClientName: "Globex"},
		{TaskID: "t4"},
	}
	assert.Equal(t, 2, CountClientTasks(tasks, client))
}
