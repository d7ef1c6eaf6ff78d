package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anita-beauty-backend/config"
	"anita-beauty-backend/models"
	"anita-beauty-backend/store"
)

func strPtr(s string) *string { return &s }

func TestDeactivateExpired(t *testing.T) {
	config.InitLogger()
	mem := store.NewMemory()
	ctx := context.Background()

	promos := map[string]models.Promotion{
		"expired":     {ID: "expired", Title: "Régi akció", Active: true, ValidUntil: strPtr("2020.01.01")},
		"future":      {ID: "future", Title: "Élő akció", Active: true, ValidUntil: strPtr("2999.12.31")},
		"dateless":    {ID: "dateless", Title: "Határidő nélkül", Active: true},
		"unparseable": {ID: "unparseable", Title: "Furcsa dátum", Active: true, ValidUntil: strPtr("hamarosan")},
	}
	for _, p := range promos {
		p.CreatedAt = models.Now()
		require.NoError(t, mem.Insert(ctx, store.Promotions, p))
	}

	NewPromoExpiryService(mem).DeactivateExpired(ctx)

	var after []models.Promotion
	require.NoError(t, mem.FindAll(ctx, store.Promotions, nil, store.ShortListCap, &after))
	require.Len(t, after, 4)

	activeByID := map[string]bool{}
	for _, p := range after {
		activeByID[p.ID] = p.Active
	}
	assert.False(t, activeByID["expired"])
	assert.True(t, activeByID["future"])
	assert.True(t, activeByID["dateless"])
	assert.True(t, activeByID["unparseable"], "unparseable dates are left alone")
}
