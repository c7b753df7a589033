package services

import (
	"context"
	"sync"
	"testing"

	"whisperchat_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFeed(t *testing.T) *FeedService {
	t.Helper()
	feed, err := NewFeedService(context.Background(), defaultSeeds())
	require.NoError(t, err)
	return feed
}

func TestFeedServiceToggle(t *testing.T) {
	ctx := context.Background()
	feed := newTestFeed(t)

	updated, err := feed.Toggle(ctx, "2", models.FlagLiked)
	require.NoError(t, err)
	assert.Equal(t, 2566, updated.Likes)
	assert.False(t, updated.IsLiked)

	items := feed.ListFeed(ctx)
	assert.Equal(t, updated, items[1])
	assert.Equal(t, 1243, items[0].Likes)
	assert.Equal(t, 956, items[2].Likes)
}

func TestFeedServiceToggleUnknown(t *testing.T) {
	_, err := newTestFeed(t).Toggle(context.Background(), "99", models.FlagSaved)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFeedServiceListIsSnapshot(t *testing.T) {
	ctx := context.Background()
	feed := newTestFeed(t)

	items := feed.ListFeed(ctx)
	items[0].Likes = 0

	assert.Equal(t, 1243, feed.ListFeed(ctx)[0].Likes)
}

func TestFeedServiceSavedItems(t *testing.T) {
	ctx := context.Background()
	feed := newTestFeed(t)

	saved := feed.SavedItems(ctx)
	require.Len(t, saved, 1)
	assert.Equal(t, "2", saved[0].ID)

	_, err := feed.Toggle(ctx, "3", models.FlagSaved)
	require.NoError(t, err)
	assert.Len(t, feed.SavedItems(ctx), 2)
}

func TestFeedServiceConcurrentToggles(t *testing.T) {
	ctx := context.Background()
	feed := newTestFeed(t)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = feed.Toggle(ctx, "1", models.FlagLiked)
		}()
	}
	wg.Wait()

	// An even number of toggles lands back on the seeded state
	items := feed.ListFeed(ctx)
	assert.Equal(t, 1243, items[0].Likes)
	assert.False(t, items[0].IsLiked)
}
