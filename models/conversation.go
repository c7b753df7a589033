package models

import "time"

// ConversationSummary describes one chat thread for the chat list
type ConversationSummary struct {
	ID          string    `dynamodbav:"id" json:"id"`                             // Partition Key
	Name        string    `dynamodbav:"name" json:"name"`                         // Display name of the other party
	Avatar      *string   `dynamodbav:"avatar,omitempty" json:"avatar,omitempty"` // Optional avatar URI
	LastMessage string    `dynamodbav:"lastMessage" json:"lastMessage"`
	Timestamp   time.Time `dynamodbav:"timestamp" json:"timestamp"`
	UnreadCount int       `dynamodbav:"unreadCount" json:"unreadCount"`
	Status      string    `dynamodbav:"status" json:"status"` // online, offline, away, busy
	IsRead      bool      `dynamodbav:"isRead" json:"isRead"`
}

// ConversationView is a ConversationSummary with its display time label
type ConversationView struct {
	ConversationSummary
	TimeLabel string `json:"timeLabel"`
}

// ConversationsTable is the DynamoDB table holding seeded conversations
const ConversationsTable = "Conversations"

// ValidStatus reports whether s is a known presence status
func ValidStatus(s string) bool {
	switch s {
	case StatusOnline, StatusOffline, StatusAway, StatusBusy:
		return true
	}
	return false
}
