package service

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"chargeshare/backend/services/marketplace-service/internal/models"
	"chargeshare/backend/services/marketplace-service/internal/proximity"
	"chargeshare/backend/services/marketplace-service/internal/redisstore"
)

// ChargerService serves the nearby-listing surface. It owns no listing state:
// each coordinate is answered by deterministic generation, fronted by the
// redis cache so a panning client sees a stable set.
type ChargerService struct {
	cache  *redisstore.ListingCache
	logger *zap.Logger
}

// NewChargerService builds service.
func NewChargerService(cache *redisstore.ListingCache, logger *zap.Logger) *ChargerService {
	return &ChargerService{cache: cache, logger: logger}
}

// Near returns the listing set around a coordinate, nearest first.
func (s *ChargerService) Near(ctx context.Context, lat, lng float64) ([]models.Charger, error) {
	if s.cache != nil {
		chargers, err := s.cache.Get(ctx, lat, lng)
		if err == nil {
			return chargers, nil
		}
		if err != redis.Nil {
			s.logger.Warn("listing cache read failed", zap.Error(err))
		}
	}

	chargers := proximity.Generate(lat, lng)

	if s.cache != nil {
		if err := s.cache.Save(ctx, lat, lng, chargers); err != nil {
			s.logger.Warn("listing cache write failed", zap.Error(err))
		}
	}
	return chargers, nil
}

// Search returns the listing set narrowed by filters.
func (s *ChargerService) Search(ctx context.Context, lat, lng float64, filters models.SearchFilters) ([]models.Charger, error) {
	chargers, err := s.Near(ctx, lat, lng)
	if err != nil {
		return nil, err
	}
	return proximity.Filter(chargers, filters), nil
}

// Find returns one listing from the set around a coordinate.
func (s *ChargerService) Find(ctx context.Context, lat, lng float64, id string) (*models.Charger, error) {
	chargers, err := s.Near(ctx, lat, lng)
	if err != nil {
		return nil, err
	}
	for i := range chargers {
		if chargers[i].ID == id {
			return &chargers[i], nil
		}
	}
	return nil, ErrChargerNotFound
}
