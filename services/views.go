package services

import (
	"time"

	"whisperchat_server/models"
	"whisperchat_server/utils"
)

// ConversationViews attaches the relative time label to each conversation
func ConversationViews(items []models.ConversationSummary, now time.Time) []models.ConversationView {
	views := make([]models.ConversationView, 0, len(items))
	for _, item := range items {
		views = append(views, ConversationViewOf(item, now))
	}
	return views
}

// ConversationViewOf attaches the relative time label to one conversation
func ConversationViewOf(item models.ConversationSummary, now time.Time) models.ConversationView {
	return models.ConversationView{
		ConversationSummary: item,
		TimeLabel:           FormatRelative(item.Timestamp, now),
	}
}

// FeedViews attaches compact counter labels to each reel
func FeedViews(items []models.FeedItem) []models.FeedItemView {
	views := make([]models.FeedItemView, 0, len(items))
	for _, item := range items {
		views = append(views, FeedViewOf(item))
	}
	return views
}

func FeedViewOf(item models.FeedItem) models.FeedItemView {
	return models.FeedItemView{
		FeedItem:      item,
		LikesLabel:    utils.CompactCount(item.Likes),
		CommentsLabel: utils.CompactCount(item.Comments),
	}
}
