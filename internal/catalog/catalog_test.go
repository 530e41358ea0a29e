package catalog

import (
	"testing"

	"apex-store/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SeededFromFixedList(t *testing.T) {
	s := NewStore(Seed(), zerolog.Nop())

	assert.Equal(t, 6, s.Len())

	p, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Apex Runner Elite", p.Name)
	assert.Equal(t, 189.0, p.Price)
}

func TestCategories_CoverSeedProducts(t *testing.T) {
	require.NotEmpty(t, Categories)
	assert.Equal(t, "All", Categories[0], "the catch-all category comes first")

	known := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		known[c] = true
	}

	for _, p := range Seed() {
		assert.True(t, known[p.Category], "seed product %q has unlisted category %q", p.Name, p.Category)
	}
}

func TestStore_Add_NoDuplicateCheck(t *testing.T) {
	s := NewStore(nil, zerolog.Nop())

	s.Add(model.Product{ID: 1, Name: "First"})
	s.Add(model.Product{ID: 1, Name: "Shadowed"})

	assert.Equal(t, 2, s.Len(), "duplicate ids are appended, not rejected")

	// Id-indexed lookup sees the earlier entry
	p, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "First", p.Name)
}

func TestStore_Update(t *testing.T) {
	s := NewStore(nil, zerolog.Nop())
	s.Add(model.Product{ID: 1, Name: "Original", Price: 10})

	s.Update(model.Product{ID: 1, Name: "Renamed", Price: 12})

	p, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Renamed", p.Name)
	assert.Equal(t, 12.0, p.Price)
}

func TestStore_Update_MissingIDIsNoOp(t *testing.T) {
	s := NewStore(nil, zerolog.Nop())
	s.Add(model.Product{ID: 1, Name: "Original"})

	s.Update(model.Product{ID: 99, Name: "Nowhere"})

	assert.Equal(t, 1, s.Len())
	p, _ := s.Get(1)
	assert.Equal(t, "Original", p.Name)
}

func TestStore_Delete(t *testing.T) {
	s := NewStore(nil, zerolog.Nop())
	s.Add(model.Product{ID: 1})
	s.Add(model.Product{ID: 2})

	s.Delete(1)

	assert.Equal(t, 1, s.Len())
	_, ok := s.Get(1)
	assert.False(t, ok)

	// Deleting an absent id changes nothing
	s.Delete(99)
	assert.Equal(t, 1, s.Len())
}

func TestStore_ListReturnsCopy(t *testing.T) {
	s := NewStore(Seed(), zerolog.Nop())

	listed := s.List()
	listed[0].Name = "mutated"
	listed[0].Features[0] = "mutated"

	p, _ := s.Get(listed[0].ID)
	assert.NotEqual(t, "mutated", p.Name)
	assert.NotEqual(t, "mutated", p.Features[0])
}
