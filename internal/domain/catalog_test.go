package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubServiceResolve_FallsBackToDefaults(t *testing.T) {
	item := ClothingItem{ID: "shirt", Name: "Shirt", StandardPrice: 40, ExpressPrice: 60, Active: true}
	sub := SubService{ID: "wash-fold", Items: map[string]ItemOverride{}}

	got := sub.Resolve(item)

	assert.False(t, got.Overridden)
	assert.Equal(t, 40.0, got.StandardPrice)
	assert.Equal(t, 60.0, got.ExpressPrice)
	assert.True(t, got.Active)
}

func TestSubServiceResolve_OverrideWins(t *testing.T) {
	inactive := false
	price := 55.0
	item := ClothingItem{ID: "shirt", StandardPrice: 40, ExpressPrice: 60, Active: true}
	sub := SubService{Items: map[string]ItemOverride{
		"shirt": {Active: &inactive, StandardPrice: &price},
	}}

	got := sub.Resolve(item)

	assert.True(t, got.Overridden)
	assert.False(t, got.Active)
	assert.Equal(t, 55.0, got.StandardPrice)
	assert.Equal(t, 60.0, got.ExpressPrice, "express falls back to the catalog default")
}

func TestStudioCode(t *testing.T) {
	assert.Equal(t, "STU10001", StudioCode(1))
	assert.Equal(t, "STU10012", StudioCode(12))
}
