package services

import (
	"strings"

	"whisperchat_server/models"
)

// FilterConversations returns the conversations whose name or last message
// contains query, ignoring case. Order is preserved and items is not modified.
// The query is used as-is: whitespace is matched literally.
func FilterConversations(items []models.ConversationSummary, query string) []models.ConversationSummary {
	result := make([]models.ConversationSummary, 0, len(items))
	if query == "" {
		return append(result, items...)
	}

	needle := strings.ToLower(query)
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.Contains(strings.ToLower(item.LastMessage), needle) {
			result = append(result, item)
		}
	}
	return result
}
