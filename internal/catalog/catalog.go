// Package catalog holds the mutable list of sellable products. The
// catalogue is seeded in code at startup and never persisted.
package catalog

import (
	"sync"

	"apex-store/internal/model"

	"github.com/rs/zerolog"
)

// Store is the product catalogue. All mutations against a missing id are
// silent no-ops, and Add performs no duplicate-id check: a duplicate simply
// shadows the earlier entry in id-indexed lookups. Id uniqueness is the
// caller's job.
type Store struct {
	mu       sync.Mutex
	products []model.Product
	logger   zerolog.Logger
}

// NewStore creates a catalogue seeded with the given products.
func NewStore(products []model.Product, logger zerolog.Logger) *Store {
	seeded := make([]model.Product, len(products))
	for i, p := range products {
		seeded[i] = p.Clone()
	}

	return &Store{
		products: seeded,
		logger:   logger.With().Str("store", "catalog").Logger(),
	}
}

// Add appends a product unconditionally.
func (s *Store) Add(p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, p.Clone())

	s.logger.Debug().Int("product_id", p.ID).Str("name", p.Name).Msg("product added")
}

// Update replaces the entry whose id matches. Nothing happens when no entry
// matches.
func (s *Store) Update(p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p.Clone()
			s.logger.Debug().Int("product_id", p.ID).Msg("product updated")
			return
		}
	}
}

// Delete removes the entry whose id matches. Nothing happens when no entry
// matches.
func (s *Store) Delete(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.logger.Debug().Int("product_id", id).Msg("product deleted")
			return
		}
	}
}

// List returns a copy of the current catalogue in insertion order.
func (s *Store) List() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}

	return out
}

// Get returns the first product whose id matches.
func (s *Store) Get(id int) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return p.Clone(), true
		}
	}

	return model.Product{}, false
}

// Len returns the number of catalogue entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.products)
}
