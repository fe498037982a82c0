package storage

import (
	"sync"
	"time"

	"kotibus/models"
)

// OrderStore is the order sink: a JSON array on disk, rewritten in full
// on each append. Appends are serialized by the store mutex and flushed
// through an atomic rename, so concurrent checkouts cannot lose or
// corrupt previously persisted orders.
type OrderStore interface {
	// Append assigns an id and creation time to order and persists it.
	// When order.RequestID matches an already persisted order, the
	// original order id is returned with duplicate set and nothing is
	// written.
	Append(order models.Order) (id int64, duplicate bool, err error)

	// All returns every persisted order, oldest first.
	All() ([]models.Order, error)
}

type fileOrderStore struct {
	path   string
	mu     sync.Mutex
	lastID int64
}

// NewFileOrderStore opens (or creates) the order log at path.
func NewFileOrderStore(path string) OrderStore {
	return &fileOrderStore{path: path}
}

func (s *fileOrderStore) Append(order models.Order) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []models.Order
	if err := readJSONFile(s.path, &orders); err != nil {
		return 0, false, err
	}

	if order.RequestID != "" {
		for _, existing := range orders {
			if existing.RequestID == order.RequestID {
				return existing.ID, true, nil
			}
		}
	}

	// Timestamp-derived id, bumped under the lock so two checkouts in
	// the same millisecond still get distinct ids.
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	order.ID = id
	order.CreatedAt = time.Now()
	orders = append(orders, order)

	if err := writeJSONFile(s.path, orders); err != nil {
		return 0, false, err
	}
	return id, false, nil
}

func (s *fileOrderStore) All() ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []models.Order
	if err := readJSONFile(s.path, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
