// Package live pushes sales snapshots to connected clients so history views
// update without polling.
package live

import (
	"sync"

	"sales-backend/internal/models"
)

// Predicate narrows a subscription to the records a client may see. A nil
// predicate receives the full snapshot.
type Predicate func(*models.Sale) bool

// SellerOnly restricts a feed to one seller's records.
func SellerOnly(sellerID string) Predicate {
	return func(s *models.Sale) bool {
		return s.SellerID == sellerID
	}
}

type subscriber struct {
	ch   chan []*models.Sale
	pred Predicate
}

// Hub fans sales snapshots out to subscribers. Publish never blocks: a
// subscriber that has not drained its previous snapshot is skipped after the
// stale one is dropped, so every listener converges on the latest state.
type Hub struct {
	mu   sync.Mutex
	subs map[*subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*subscriber]struct{})}
}

// Subscribe registers a listener. The returned cancel function detaches it
// and closes the channel; calling cancel more than once is safe.
func (h *Hub) Subscribe(pred Predicate) (<-chan []*models.Sale, func()) {
	sub := &subscriber{
		ch:   make(chan []*models.Sale, 1),
		pred: pred,
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, sub)
			h.mu.Unlock()
			close(sub.ch)
		})
	}
	return sub.ch, cancel
}

// Publish delivers the current snapshot to every subscriber, filtered through
// each subscriber's predicate.
func (h *Hub) Publish(sales []*models.Sale) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs {
		view := sales
		if sub.pred != nil {
			view = filter(sales, sub.pred)
		}

		// Replace a pending stale snapshot with the fresh one.
		select {
		case <-sub.ch:
		default:
		}
		select {
		case sub.ch <- view:
		default:
		}
	}
}

// SubscriberCount reports attached listeners, for metrics.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func filter(sales []*models.Sale, pred Predicate) []*models.Sale {
	out := make([]*models.Sale, 0, len(sales))
	for _, s := range sales {
		if pred(s) {
			out = append(out, s)
		}
	}
	return out
}
