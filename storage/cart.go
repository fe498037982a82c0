package storage

import (
	"sync"

	"kotibus/models"
)

// CartStore manages one cart per session. Every mutation rewrites the
// whole persisted state; the file is the sole source of truth.
type CartStore interface {
	// Get returns the session's cart. The second return reports whether
	// a cart has ever been persisted for the session, so an emptied cart
	// stays distinct from one that never existed.
	Get(sessionID string) (models.Cart, bool)

	// AddItem merges item into the cart keyed by (product id, size):
	// an existing line has its quantity incremented, otherwise the item
	// is appended as a new line.
	AddItem(sessionID string, item models.CartItem) (models.Cart, error)

	// UpdateQuantity applies delta to the line at index, clamping the
	// result at 1. Returns ErrNotFound for an out-of-range index.
	UpdateQuantity(sessionID string, index, delta int) (models.Cart, error)

	// RemoveItem deletes the line at index and returns the removed item.
	// Returns ErrNotFound for an out-of-range index.
	RemoveItem(sessionID string, index int) (models.Cart, models.CartItem, error)

	// Clear empties the session's cart.
	Clear(sessionID string) error
}

type fileCartStore struct {
	path  string
	mu    sync.Mutex
	carts map[string]models.Cart
}

// NewFileCartStore opens (or creates) the cart file at path.
func NewFileCartStore(path string) (CartStore, error) {
	s := &fileCartStore{
		path:  path,
		carts: make(map[string]models.Cart),
	}
	if err := readJSONFile(path, &s.carts); err != nil {
		return nil, err
	}
	return s, nil
}

func cloneItems(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}

// workingCopy returns a detached copy of the session's cart, safe to
// mutate before it has been persisted.
func (s *fileCartStore) workingCopy(sessionID string) models.Cart {
	return models.Cart{
		SessionID: sessionID,
		Items:     cloneItems(s.carts[sessionID].Items),
	}
}

func (s *fileCartStore) Get(sessionID string) (models.Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.carts[sessionID]; !ok {
		return models.Cart{SessionID: sessionID, Items: []models.CartItem{}}, false
	}
	return s.workingCopy(sessionID), true
}

func (s *fileCartStore) AddItem(sessionID string, item models.CartItem) (models.Cart, error) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.workingCopy(sessionID)
	if i := cart.FindItem(item.ProductID, item.Size); i >= 0 {
		cart.Items[i].Quantity += item.Quantity
	} else {
		cart.Items = append(cart.Items, item)
	}

	return s.persist(sessionID, cart)
}

func (s *fileCartStore) UpdateQuantity(sessionID string, index, delta int) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.carts[sessionID]
	if !ok || index < 0 || index >= len(existing.Items) {
		return models.Cart{}, ErrNotFound
	}

	cart := s.workingCopy(sessionID)
	if next := cart.Items[index].Quantity + delta; next >= 1 {
		cart.Items[index].Quantity = next
	}

	return s.persist(sessionID, cart)
}

func (s *fileCartStore) RemoveItem(sessionID string, index int) (models.Cart, models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.carts[sessionID]
	if !ok || index < 0 || index >= len(existing.Items) {
		return models.Cart{}, models.CartItem{}, ErrNotFound
	}

	cart := s.workingCopy(sessionID)
	removed := cart.Items[index]
	cart.Items = append(cart.Items[:index], cart.Items[index+1:]...)

	cart, err := s.persist(sessionID, cart)
	return cart, removed, err
}

func (s *fileCartStore) Clear(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.persist(sessionID, models.Cart{
		SessionID: sessionID,
		Items:     []models.CartItem{},
	})
	return err
}

// persist stages the cart, rewrites the whole cart file, and rolls the
// staged entry back if the write fails, so in-memory state never gets
// ahead of the file. Callers hold s.mu and pass a detached cart.
func (s *fileCartStore) persist(sessionID string, cart models.Cart) (models.Cart, error) {
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}

	prev, existed := s.carts[sessionID]
	s.carts[sessionID] = cart

	if err := writeJSONFile(s.path, s.carts); err != nil {
		if existed {
			s.carts[sessionID] = prev
		} else {
			delete(s.carts, sessionID)
		}
		return models.Cart{}, err
	}
	return cart, nil
}
