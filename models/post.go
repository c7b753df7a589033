package models

import "time"

// Post is an entry in the profile grid
type Post struct {
	ID        string    `dynamodbav:"id" json:"id"`
	ImageURL  string    `dynamodbav:"imageUrl" json:"imageUrl"` // Grid thumbnail, first image of the post
	Caption   string    `dynamodbav:"caption,omitempty" json:"caption,omitempty"`
	Images    []string  `dynamodbav:"images,omitempty" json:"images,omitempty"`
	CreatedAt time.Time `dynamodbav:"createdAt" json:"createdAt"`
}

// PostDraft is what the composer submits
type PostDraft struct {
	Caption  string   `json:"caption"`
	Images   []string `json:"images"`
	Location string   `json:"location,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// PostsTable is the DynamoDB table holding the profile grid
const PostsTable = "Posts"
