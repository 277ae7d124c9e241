package live

import (
	"testing"

	"sales-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishReachesSubscriber(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe(nil)
	defer cancel()

	snapshot := []*models.Sale{{ID: "s1"}, {ID: "s2"}}
	h.Publish(snapshot)

	got := <-ch
	require.Len(t, got, 2)
	assert.Equal(t, "s1", got[0].ID)
}

func TestHubPredicateFiltersSnapshot(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe(SellerOnly("u1"))
	defer cancel()

	h.Publish([]*models.Sale{
		{ID: "a", SellerID: "u1"},
		{ID: "b", SellerID: "u2"},
		{ID: "c", SellerID: "u1"},
	})

	got := <-ch
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestHubPublishNeverBlocks(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe(nil)
	defer cancel()

	// Nobody drains the channel; repeated publishes must not block and the
	// subscriber must end up with the newest snapshot.
	h.Publish([]*models.Sale{{ID: "old"}})
	h.Publish([]*models.Sale{{ID: "new"}})

	got := <-ch
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].ID)
}

func TestHubCancelDetachesSubscriber(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe(nil)

	assert.Equal(t, 1, h.SubscriberCount())
	cancel()
	cancel() // second cancel is a no-op
	assert.Equal(t, 0, h.SubscriberCount())

	_, open := <-ch
	assert.False(t, open)

	// Publishing after cancel must not panic.
	h.Publish([]*models.Sale{{ID: "x"}})
}
