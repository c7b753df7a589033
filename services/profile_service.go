package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"whisperchat_server/models"
	"whisperchat_server/utils"
)

// ProfileService serves the profile header and its three grid tabs
type ProfileService struct {
	Feed *FeedService

	mu      sync.RWMutex
	profile models.UserProfile
	posts   []models.Post
}

// NewProfileService loads the profile and posts grid from seeds
func NewProfileService(ctx context.Context, seeds SeedSource, feed *FeedService) (*ProfileService, error) {
	profile, posts, err := seeds.LoadProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to seed profile: %w", err)
	}
	log.Printf("👤 Seeded profile %s with %d posts", profile.UserHandle, len(posts))
	return &ProfileService{Feed: feed, profile: profile, posts: posts}, nil
}

// GetProfile returns the header with its stats labels
func (s *ProfileService) GetProfile(ctx context.Context) models.ProfileView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.ProfileView{
		UserProfile:    s.profile,
		PostCount:      len(s.posts),
		PostsLabel:     utils.CompactCount(len(s.posts)),
		FollowersLabel: utils.CompactCount(s.profile.Followers),
		FollowingLabel: utils.CompactCount(s.profile.Following),
	}
}

// ListTab returns the grid for one profile tab. Saved entries come from the
// reels currently saved in the feed.
func (s *ProfileService) ListTab(ctx context.Context, tab string) ([]models.Post, error) {
	switch tab {
	case models.TabPosts:
		s.mu.RLock()
		defer s.mu.RUnlock()
		out := make([]models.Post, len(s.posts))
		copy(out, s.posts)
		return out, nil

	case models.TabSaved:
		saved := []models.Post{}
		if s.Feed == nil {
			return saved, nil
		}
		for _, reel := range s.Feed.SavedItems(ctx) {
			saved = append(saved, models.Post{
				ID:       reel.ID,
				ImageURL: reel.VideoURL,
				Caption:  reel.Caption,
			})
		}
		return saved, nil

	case models.TabTagged:
		return []models.Post{}, nil
	}
	return nil, fmt.Errorf("%w: unknown profile tab %q", ErrInvalidInput, tab)
}

// AddPost puts a freshly published post at the top of the grid
func (s *ProfileService) AddPost(ctx context.Context, post models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = append([]models.Post{post}, s.posts...)
}
