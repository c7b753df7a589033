package services

import (
	"context"
	"fmt"
	"log"
	"sort"

	"whisperchat_server/models"
	"whisperchat_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoSeedSource loads the mock data from DynamoDB tables. It never writes.
type DynamoSeedSource struct {
	Dynamo        *DynamoService
	ProfileHandle string
}

// LoadConversations scans the Conversations table, newest first
func (s *DynamoSeedSource) LoadConversations(ctx context.Context) ([]models.ConversationSummary, error) {
	items, err := s.Dynamo.ScanAll(ctx, models.ConversationsTable)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversations: %w", err)
	}

	var conversations []models.ConversationSummary
	for _, item := range keyed(items) {
		var c models.ConversationSummary
		if err := attributevalue.UnmarshalMap(item, &c); err != nil {
			log.Printf("⚠️ Skipping malformed conversation %s: %v", utils.ExtractString(item, "id"), err)
			continue
		}
		if !models.ValidStatus(c.Status) {
			c.Status = models.StatusOffline
		}
		if c.UnreadCount < 0 {
			c.UnreadCount = 0
		}
		conversations = append(conversations, c)
	}

	// ✅ Scan order is arbitrary, the chat list shows the newest thread first
	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].Timestamp.After(conversations[j].Timestamp)
	})
	return conversations, nil
}

// LoadFeed scans the Reels table ordered by id
func (s *DynamoSeedSource) LoadFeed(ctx context.Context) ([]models.FeedItem, error) {
	items, err := s.Dynamo.ScanAll(ctx, models.ReelsTable)
	if err != nil {
		return nil, fmt.Errorf("failed to load reels: %w", err)
	}

	var reels []models.FeedItem
	if err := attributevalue.UnmarshalListOfMaps(keyed(items), &reels); err != nil {
		return nil, fmt.Errorf("failed to parse reels: %w", err)
	}
	for i := range reels {
		if reels[i].Likes < 0 {
			reels[i].Likes = 0
		}
		if reels[i].Comments < 0 {
			reels[i].Comments = 0
		}
	}

	sort.SliceStable(reels, func(i, j int) bool { return reels[i].ID < reels[j].ID })
	return reels, nil
}

// LoadProfile fetches the profile header by handle and scans the Posts table
func (s *DynamoSeedSource) LoadProfile(ctx context.Context) (models.UserProfile, []models.Post, error) {
	key := map[string]types.AttributeValue{
		"userhandle": &types.AttributeValueMemberS{Value: s.ProfileHandle},
	}
	item, err := s.Dynamo.GetItem(ctx, models.UserProfilesTable, key)
	if err != nil {
		return models.UserProfile{}, nil, fmt.Errorf("failed to load profile %s: %w", s.ProfileHandle, err)
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return models.UserProfile{}, nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	items, err := s.Dynamo.ScanAll(ctx, models.PostsTable)
	if err != nil {
		return models.UserProfile{}, nil, fmt.Errorf("failed to load posts: %w", err)
	}

	posts := make([]models.Post, 0, len(items))
	for _, item := range keyed(items) {
		var post models.Post
		if err := attributevalue.UnmarshalMap(item, &post); err != nil {
			log.Printf("⚠️ Skipping malformed post %s: %v", utils.ExtractString(item, "id"), err)
			continue
		}
		if post.ImageURL == "" {
			post.ImageURL = utils.ExtractFirstString(item, "images")
		}
		posts = append(posts, post)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return profile, posts, nil
}

// keyed drops items without an id attribute
func keyed(items []map[string]types.AttributeValue) []map[string]types.AttributeValue {
	out := make([]map[string]types.AttributeValue, 0, len(items))
	for _, item := range items {
		if utils.ExtractString(item, "id") == "" {
			log.Printf("⚠️ Skipping item without id")
			continue
		}
		out = append(out, item)
	}
	return out
}
