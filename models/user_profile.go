package models

// UserProfile is the header shown on the profile screen
type UserProfile struct {
	UserHandle string `dynamodbav:"userhandle" json:"userhandle"` // Partition Key
	Name       string `dynamodbav:"name" json:"name"`
	UserName   string `dynamodbav:"username" json:"username"`
	Avatar     string `dynamodbav:"avatar" json:"avatar"`
	Bio        string `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	Followers  int    `dynamodbav:"followers" json:"followers"`
	Following  int    `dynamodbav:"following" json:"following"`
}

// ProfileView is the profile header with its rendered stats
type ProfileView struct {
	UserProfile
	PostCount      int    `json:"postCount"`
	PostsLabel     string `json:"postsLabel"`
	FollowersLabel string `json:"followersLabel"`
	FollowingLabel string `json:"followingLabel"`
}

// UserProfilesTable is the DynamoDB table for the profile header
const UserProfilesTable = "Users"
