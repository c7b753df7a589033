package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"whisperchat_server/models"
)

// FeedService owns the reel list. Every change goes through ToggleFlag and
// replaces the list as a whole.
type FeedService struct {
	mu    sync.Mutex
	items []models.FeedItem
}

// NewFeedService loads the reels from seeds
func NewFeedService(ctx context.Context, seeds SeedSource) (*FeedService, error) {
	items, err := seeds.LoadFeed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to seed feed: %w", err)
	}
	log.Printf("🎬 Seeded %d reels", len(items))
	return &FeedService{items: items}, nil
}

// ListFeed returns a snapshot of the reels
func (s *FeedService) ListFeed(ctx context.Context) []models.FeedItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.FeedItem, len(s.items))
	copy(out, s.items)
	return out
}

// Toggle flips flag on the reel with the given id and returns the updated reel
func (s *FeedService) Toggle(ctx context.Context, id string, flag models.FeedFlag) (models.FeedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, item := range s.items {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		log.Printf("❌ Reel %s not found", id)
		return models.FeedItem{}, fmt.Errorf("reel %s: %w", id, ErrNotFound)
	}

	s.items = ToggleFlag(s.items, id, flag)
	updated := s.items[idx]
	log.Printf("💖 Toggled %s on reel %s: liked=%v saved=%v likes=%d", flag, id, updated.IsLiked, updated.IsSaved, updated.Likes)
	return updated, nil
}

// SavedItems returns the reels currently marked as saved
func (s *FeedService) SavedItems(ctx context.Context) []models.FeedItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	var saved []models.FeedItem
	for _, item := range s.items {
		if item.IsSaved {
			saved = append(saved, item)
		}
	}
	return saved
}
