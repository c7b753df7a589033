package services

import (
	"context"
	"testing"
	"time"

	"whisperchat_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProfile(t *testing.T) (*ProfileService, *FeedService) {
	t.Helper()
	feed := newTestFeed(t)
	profile, err := NewProfileService(context.Background(), defaultSeeds(), feed)
	require.NoError(t, err)
	return profile, feed
}

func TestProfileServiceGetProfile(t *testing.T) {
	profile, _ := newTestProfile(t)

	view := profile.GetProfile(context.Background())
	assert.Equal(t, "Jordan Lee", view.Name)
	assert.Equal(t, 9, view.PostCount)
	assert.Equal(t, "9", view.PostsLabel)
	assert.Equal(t, "1.2K", view.FollowersLabel)
	assert.Equal(t, "850", view.FollowingLabel)
}

func TestProfileServiceTabs(t *testing.T) {
	ctx := context.Background()
	profile, feed := newTestProfile(t)

	posts, err := profile.ListTab(ctx, models.TabPosts)
	require.NoError(t, err)
	assert.Len(t, posts, 9)

	saved, err := profile.ListTab(ctx, models.TabSaved)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "2", saved[0].ID)

	_, err = feed.Toggle(ctx, "2", models.FlagSaved)
	require.NoError(t, err)
	saved, err = profile.ListTab(ctx, models.TabSaved)
	require.NoError(t, err)
	assert.Empty(t, saved)

	tagged, err := profile.ListTab(ctx, models.TabTagged)
	require.NoError(t, err)
	assert.NotNil(t, tagged)
	assert.Empty(t, tagged)

	_, err = profile.ListTab(ctx, "reels")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPostServicePublish(t *testing.T) {
	ctx := context.Background()
	profile, _ := newTestProfile(t)
	posts := &PostService{Profile: profile, Now: func() time.Time { return fixedNow }}

	post, err := posts.Publish(ctx, models.PostDraft{
		Caption: "  Sunset run  ",
		Images:  []string{"a.jpg", "b.jpg"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "Sunset run", post.Caption)
	assert.Equal(t, "a.jpg", post.ImageURL)
	assert.Equal(t, fixedNow, post.CreatedAt)

	grid, err := profile.ListTab(ctx, models.TabPosts)
	require.NoError(t, err)
	require.Len(t, grid, 10)
	assert.Equal(t, post.ID, grid[0].ID)
	assert.Equal(t, 10, profile.GetProfile(ctx).PostCount)
}

func TestPostServicePublishValidation(t *testing.T) {
	profile, _ := newTestProfile(t)
	posts := &PostService{Profile: profile}

	_, err := posts.Publish(context.Background(), models.PostDraft{Caption: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = posts.Publish(context.Background(), models.PostDraft{Images: []string{""}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	post, err := posts.Publish(context.Background(), models.PostDraft{Caption: "text only"})
	require.NoError(t, err)
	assert.Empty(t, post.ImageURL)
}

func TestRemoveImageAt(t *testing.T) {
	images := []string{"a", "b", "c"}

	assert.Equal(t, []string{"a", "c"}, RemoveImageAt(images, 1))
	assert.Equal(t, []string{"a", "b", "c"}, RemoveImageAt(images, 7))
	assert.Equal(t, []string{"a", "b", "c"}, RemoveImageAt(images, -1))
	assert.Equal(t, []string{"a", "b", "c"}, images)
}
