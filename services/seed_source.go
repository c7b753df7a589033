package services

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"time"

	"whisperchat_server/models"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed seed/default.yaml
var defaultSeed []byte

// SeedSource supplies the mock data each screen starts from
type SeedSource interface {
	LoadConversations(ctx context.Context) ([]models.ConversationSummary, error)
	LoadFeed(ctx context.Context) ([]models.FeedItem, error)
	LoadProfile(ctx context.Context) (models.UserProfile, []models.Post, error)
}

type seedConversation struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Avatar      string `yaml:"avatar"`
	LastMessage string `yaml:"lastMessage"`
	Offset      string `yaml:"offset"`
	UnreadCount int    `yaml:"unreadCount"`
	Status      string `yaml:"status"`
	IsRead      bool   `yaml:"isRead"`
}

type seedReel struct {
	ID         string `yaml:"id"`
	Username   string `yaml:"username"`
	UserAvatar string `yaml:"userAvatar"`
	VideoURL   string `yaml:"videoUrl"`
	Caption    string `yaml:"caption"`
	Likes      int    `yaml:"likes"`
	Comments   int    `yaml:"comments"`
	IsLiked    bool   `yaml:"isLiked"`
	IsSaved    bool   `yaml:"isSaved"`
}

type seedProfile struct {
	UserHandle string `yaml:"userhandle"`
	Name       string `yaml:"name"`
	UserName   string `yaml:"username"`
	Avatar     string `yaml:"avatar"`
	Bio        string `yaml:"bio"`
	Followers  int    `yaml:"followers"`
	Following  int    `yaml:"following"`
}

type seedPost struct {
	ID       string   `yaml:"id"`
	ImageURL string   `yaml:"imageUrl"`
	Caption  string   `yaml:"caption"`
	Images   []string `yaml:"images"`
}

type seedFile struct {
	Conversations []seedConversation `yaml:"conversations"`
	Reels         []seedReel         `yaml:"reels"`
	Profile       seedProfile        `yaml:"profile"`
	Posts         []seedPost         `yaml:"posts"`
}

// FileSeedSource reads seed data from a YAML file. With an empty Path the
// seed compiled into the binary is used.
type FileSeedSource struct {
	Fs   afero.Fs
	Path string
	Now  func() time.Time
}

// NewFileSeedSource creates a file seed source on the OS filesystem
func NewFileSeedSource(path string) *FileSeedSource {
	return &FileSeedSource{Fs: afero.NewOsFs(), Path: path, Now: time.Now}
}

func (s *FileSeedSource) read() (*seedFile, error) {
	data := defaultSeed
	if s.Path != "" {
		log.Printf("📂 Reading seed file %s", s.Path)
		b, err := afero.ReadFile(s.Fs, s.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file '%s': %w", s.Path, err)
		}
		data = b
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	return &seed, nil
}

func (s *FileSeedSource) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// LoadConversations returns the seeded chat list, timestamps resolved against now
func (s *FileSeedSource) LoadConversations(ctx context.Context) ([]models.ConversationSummary, error) {
	seed, err := s.read()
	if err != nil {
		return nil, err
	}

	now := s.now()
	seen := make(map[string]bool, len(seed.Conversations))
	conversations := make([]models.ConversationSummary, 0, len(seed.Conversations))
	for _, c := range seed.Conversations {
		if c.ID == "" || seen[c.ID] {
			return nil, fmt.Errorf("%w: conversation id %q is empty or duplicated", ErrInvalidInput, c.ID)
		}
		seen[c.ID] = true

		if !models.ValidStatus(c.Status) {
			return nil, fmt.Errorf("%w: conversation %s has unknown status %q", ErrInvalidInput, c.ID, c.Status)
		}
		if c.UnreadCount < 0 {
			return nil, fmt.Errorf("%w: conversation %s has negative unread count", ErrInvalidInput, c.ID)
		}

		var offset time.Duration
		if c.Offset != "" {
			offset, err = time.ParseDuration(c.Offset)
			if err != nil {
				return nil, fmt.Errorf("%w: conversation %s offset: %v", ErrInvalidInput, c.ID, err)
			}
		}

		summary := models.ConversationSummary{
			ID:          c.ID,
			Name:        c.Name,
			LastMessage: c.LastMessage,
			Timestamp:   now.Add(offset),
			UnreadCount: c.UnreadCount,
			Status:      c.Status,
			IsRead:      c.IsRead,
		}
		if c.Avatar != "" {
			avatar := c.Avatar
			summary.Avatar = &avatar
		}
		conversations = append(conversations, summary)
	}
	return conversations, nil
}

// LoadFeed returns the seeded reels
func (s *FileSeedSource) LoadFeed(ctx context.Context) ([]models.FeedItem, error) {
	seed, err := s.read()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(seed.Reels))
	items := make([]models.FeedItem, 0, len(seed.Reels))
	for _, r := range seed.Reels {
		if r.ID == "" || seen[r.ID] {
			return nil, fmt.Errorf("%w: reel id %q is empty or duplicated", ErrInvalidInput, r.ID)
		}
		seen[r.ID] = true
		if r.Likes < 0 || r.Comments < 0 {
			return nil, fmt.Errorf("%w: reel %s has a negative counter", ErrInvalidInput, r.ID)
		}
		items = append(items, models.FeedItem{
			ID:         r.ID,
			Username:   r.Username,
			UserAvatar: r.UserAvatar,
			VideoURL:   r.VideoURL,
			Caption:    r.Caption,
			Likes:      r.Likes,
			Comments:   r.Comments,
			IsLiked:    r.IsLiked,
			IsSaved:    r.IsSaved,
		})
	}
	return items, nil
}

// LoadProfile returns the profile header and the posts grid
func (s *FileSeedSource) LoadProfile(ctx context.Context) (models.UserProfile, []models.Post, error) {
	seed, err := s.read()
	if err != nil {
		return models.UserProfile{}, nil, err
	}

	p := seed.Profile
	profile := models.UserProfile{
		UserHandle: p.UserHandle,
		Name:       p.Name,
		UserName:   p.UserName,
		Avatar:     p.Avatar,
		Bio:        p.Bio,
		Followers:  p.Followers,
		Following:  p.Following,
	}

	now := s.now()
	posts := make([]models.Post, 0, len(seed.Posts))
	for _, sp := range seed.Posts {
		post := models.Post{
			ID:        sp.ID,
			ImageURL:  sp.ImageURL,
			Caption:   sp.Caption,
			Images:    sp.Images,
			CreatedAt: now,
		}
		if post.ImageURL == "" && len(post.Images) > 0 {
			post.ImageURL = post.Images[0]
		}
		posts = append(posts, post)
	}
	return profile, posts, nil
}
