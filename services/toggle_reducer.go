package services

import "whisperchat_server/models"

// ToggleFlag returns a copy of items in which the item with targetID has flag
// inverted. Toggling liked also moves the like counter by one; the counter
// never drops below zero. An unknown targetID or flag yields an unchanged copy.
func ToggleFlag(items []models.FeedItem, targetID string, flag models.FeedFlag) []models.FeedItem {
	result := make([]models.FeedItem, len(items))
	copy(result, items)

	for i := range result {
		if result[i].ID != targetID {
			continue
		}
		switch flag {
		case models.FlagLiked:
			result[i].IsLiked = !result[i].IsLiked
			if result[i].IsLiked {
				result[i].Likes++
			} else if result[i].Likes > 0 {
				result[i].Likes--
			}
		case models.FlagSaved:
			result[i].IsSaved = !result[i].IsSaved
		}
		break
	}
	return result
}
