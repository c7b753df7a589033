package services

import (
	"context"
	"fmt"
	"log"

	"whisperchat_server/models"
)

// ChatService serves the chat list. The seeded conversations are read-only:
// searching produces a derived view and never changes the list.
type ChatService struct {
	conversations []models.ConversationSummary
}

// NewChatService loads the chat list from seeds
func NewChatService(ctx context.Context, seeds SeedSource) (*ChatService, error) {
	conversations, err := seeds.LoadConversations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to seed conversations: %w", err)
	}
	log.Printf("💬 Seeded %d conversations", len(conversations))
	return &ChatService{conversations: conversations}, nil
}

// ListConversations returns the conversations matching query in list order
func (s *ChatService) ListConversations(ctx context.Context, query string) ([]models.ConversationSummary, error) {
	result := FilterConversations(s.conversations, query)
	log.Printf("🔍 Search %q matched %d of %d conversations", query, len(result), len(s.conversations))
	return result, nil
}

// GetConversation returns a single conversation by id
func (s *ChatService) GetConversation(ctx context.Context, id string) (models.ConversationSummary, error) {
	for _, c := range s.conversations {
		if c.ID == id {
			return c, nil
		}
	}
	return models.ConversationSummary{}, fmt.Errorf("conversation %s: %w", id, ErrNotFound)
}
