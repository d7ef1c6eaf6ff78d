package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"anita-beauty-backend/config"
	"anita-beauty-backend/models"
	"anita-beauty-backend/store"
	"anita-beauty-backend/utils"
)

// PromoExpiryService deactivates promotions once their valid_until date
// has passed, so the public listing never shows stale offers.
type PromoExpiryService struct {
	store store.Store
	cron  *cron.Cron
}

func NewPromoExpiryService(st store.Store) *PromoExpiryService {
	return &PromoExpiryService{store: st}
}

// Start runs one sweep immediately and then every day at 6 AM.
func (s *PromoExpiryService) Start() {
	s.DeactivateExpired(context.Background())

	s.cron = cron.New()
	s.cron.AddFunc("0 6 * * *", func() {
		s.DeactivateExpired(context.Background())
	})
	s.cron.Start()
	config.Log.Info("promotion expiry scheduler started")
}

func (s *PromoExpiryService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// DeactivateExpired flips active to false on every active promotion whose
// valid_until date is over. Promotions without a date, or with one the
// parser does not recognize, are left alone.
func (s *PromoExpiryService) DeactivateExpired(ctx context.Context) {
	promos := []models.Promotion{}
	if err := s.store.FindAll(ctx, store.Promotions, map[string]any{"active": true}, store.ShortListCap, &promos); err != nil {
		config.Log.WithError(err).Error("failed to load promotions for expiry sweep")
		return
	}

	now := time.Now().UTC()
	for _, promo := range promos {
		if promo.ValidUntil == nil || *promo.ValidUntil == "" {
			continue
		}
		until, err := utils.ParseValidUntil(*promo.ValidUntil)
		if err != nil {
			continue
		}
		// valid_until names the last valid day
		if now.Before(until.AddDate(0, 0, 1)) {
			continue
		}

		patch := map[string]any{"active": false}
		if _, err := s.store.UpdateOne(ctx, store.Promotions, map[string]any{"id": promo.ID}, patch, false); err != nil {
			config.Log.WithError(err).WithField("id", promo.ID).Warn("failed to deactivate expired promotion")
			continue
		}
		config.Log.WithField("id", promo.ID).WithField("title", promo.Title).Info("promotion expired")
	}
}
