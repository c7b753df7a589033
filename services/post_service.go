package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"whisperchat_server/models"

	"github.com/google/uuid"
)

// PostService publishes composer drafts to the profile grid
type PostService struct {
	Profile *ProfileService
	Now     func() time.Time
}

// Publish validates a draft and adds it to the top of the profile grid
func (s *PostService) Publish(ctx context.Context, draft models.PostDraft) (models.Post, error) {
	caption := strings.TrimSpace(draft.Caption)
	if caption == "" && len(draft.Images) == 0 {
		return models.Post{}, fmt.Errorf("%w: a post needs a caption or at least one image", ErrInvalidInput)
	}
	for i, img := range draft.Images {
		if strings.TrimSpace(img) == "" {
			return models.Post{}, fmt.Errorf("%w: image %d is empty", ErrInvalidInput, i)
		}
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	post := models.Post{
		ID:        uuid.New().String(),
		Caption:   caption,
		Images:    append([]string(nil), draft.Images...),
		CreatedAt: now(),
	}
	if len(post.Images) > 0 {
		post.ImageURL = post.Images[0]
	}

	log.Printf("📝 Posting with caption: %q", post.Caption)
	log.Printf("🖼️ Selected images: %v", post.Images)
	if draft.Location != "" || len(draft.Tags) > 0 {
		log.Printf("📍 Location: %q, tags: %v", draft.Location, draft.Tags)
	}

	s.Profile.AddPost(ctx, post)
	return post, nil
}

// RemoveImageAt returns images without the entry at index. An out of range
// index returns an unchanged copy.
func RemoveImageAt(images []string, index int) []string {
	out := make([]string, 0, len(images))
	for i, img := range images {
		if i != index {
			out = append(out, img)
		}
	}
	return out
}
