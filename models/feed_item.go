package models

import "fmt"

// FeedItem is one reel in the short-video feed
type FeedItem struct {
	ID         string `dynamodbav:"id" json:"id"` // Partition Key
	Username   string `dynamodbav:"username" json:"username"`
	UserAvatar string `dynamodbav:"userAvatar" json:"userAvatar"`
	VideoURL   string `dynamodbav:"videoUrl" json:"videoUrl"`
	Caption    string `dynamodbav:"caption" json:"caption"`
	Likes      int    `dynamodbav:"likes" json:"likes"`
	Comments   int    `dynamodbav:"comments" json:"comments"`
	IsLiked    bool   `dynamodbav:"isLiked" json:"isLiked"`
	IsSaved    bool   `dynamodbav:"isSaved" json:"isSaved"`
}

// FeedItemView adds the compact counter labels rendered on a reel card
type FeedItemView struct {
	FeedItem
	LikesLabel    string `json:"likesLabel"`
	CommentsLabel string `json:"commentsLabel"`
}

// FeedFlag names a boolean flag on a FeedItem that a user can toggle
type FeedFlag string

const (
	FlagLiked FeedFlag = "liked"
	FlagSaved FeedFlag = "saved"
)

// ParseFeedFlag validates a flag name coming from a request
func ParseFeedFlag(s string) (FeedFlag, error) {
	switch FeedFlag(s) {
	case FlagLiked, FlagSaved:
		return FeedFlag(s), nil
	}
	return "", fmt.Errorf("unknown feed flag %q", s)
}

// ReelsTable is the DynamoDB table holding seeded reels
const ReelsTable = "Reels"
