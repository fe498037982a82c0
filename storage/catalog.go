package storage

import (
	"encoding/json"
	"os"

	"kotibus/models"
)

// CatalogStore is the read-only product catalog. It is loaded once from a
// static JSON resource and never mutated afterwards.
type CatalogStore interface {
	// All returns every product in catalog order.
	All() []models.Product

	// ByCategory returns the products in the given category.
	ByCategory(category string) []models.Product

	// ByID returns the product with the given id, or ErrNotFound.
	ByID(id int) (*models.Product, error)
}

type catalogStore struct {
	products []models.Product
	byID     map[int]*models.Product
}

// NewCatalogStore loads the product catalog from the JSON file at path.
func NewCatalogStore(path string) (CatalogStore, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, err
	}

	s := &catalogStore{
		products: products,
		byID:     make(map[int]*models.Product, len(products)),
	}
	for i := range s.products {
		s.byID[s.products[i].ID] = &s.products[i]
	}
	return s, nil
}

func (s *catalogStore) All() []models.Product {
	return s.products
}

func (s *catalogStore) ByCategory(category string) []models.Product {
	filtered := []models.Product{}
	for _, p := range s.products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (s *catalogStore) ByID(id int) (*models.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}
