package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"chargeshare/backend/services/marketplace-service/internal/models"
)

// FavoritesStore keeps each user's bookmarked chargers in a redis hash, the
// service-side analogue of the web client's local key-value storage.
type FavoritesStore struct {
	client *redis.Client
}

// NewFavoritesStore returns redis-backed store.
func NewFavoritesStore(client *redis.Client) *FavoritesStore {
	return &FavoritesStore{client: client}
}

func (s *FavoritesStore) key(userID int64) string {
	return fmt.Sprintf("favorites:%d", userID)
}

// Add bookmarks a charger. Re-adding overwrites the stored entry.
func (s *FavoritesStore) Add(ctx context.Context, userID int64, fav models.Favorite) error {
	data, err := json.Marshal(fav)
	if err != nil {
		return err
	}
	return s.client.HSet(ctx, s.key(userID), fav.ChargerID, data).Err()
}

// Remove drops a bookmark. Removing a missing entry is not an error.
func (s *FavoritesStore) Remove(ctx context.Context, userID int64, chargerID string) error {
	return s.client.HDel(ctx, s.key(userID), chargerID).Err()
}

// Has reports whether the charger is bookmarked.
func (s *FavoritesStore) Has(ctx context.Context, userID int64, chargerID string) (bool, error) {
	return s.client.HExists(ctx, s.key(userID), chargerID).Result()
}

// List returns all bookmarks for a user, oldest first.
func (s *FavoritesStore) List(ctx context.Context, userID int64) ([]models.Favorite, error) {
	entries, err := s.client.HGetAll(ctx, s.key(userID)).Result()
	if err != nil {
		return nil, err
	}

	favorites := make([]models.Favorite, 0, len(entries))
	for _, raw := range entries {
		var fav models.Favorite
		if err := json.Unmarshal([]byte(raw), &fav); err != nil {
			return nil, err
		}
		favorites = append(favorites, fav)
	}
	sort.Slice(favorites, func(i, j int) bool {
		return favorites[i].CreatedAt.Before(favorites[j].CreatedAt)
	})
	return favorites, nil
}
