package services

import (
	"context"
	"strconv"
	"testing"
	"time"

	"whisperchat_server/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo serves scans from in-memory tables, pageSize items at a time
type fakeDynamo struct {
	tables   map[string][]map[string]types.AttributeValue
	profiles map[string]map[string]types.AttributeValue
	pageSize int
	scans    int
}

func (f *fakeDynamo) Scan(ctx context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scans++
	items := f.tables[aws.ToString(in.TableName)]

	start := 0
	if v, ok := in.ExclusiveStartKey["offset"].(*types.AttributeValueMemberN); ok {
		start, _ = strconv.Atoi(v.Value)
	}
	end := len(items)
	if f.pageSize > 0 && start+f.pageSize < end {
		end = start + f.pageSize
	}

	out := &dynamodb.ScanOutput{Items: items[start:end]}
	if end < len(items) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"offset": &types.AttributeValueMemberN{Value: strconv.Itoa(end)},
		}
	}
	return out, nil
}

func (f *fakeDynamo) GetItem(ctx context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	handle := in.Key["userhandle"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.profiles[handle]}, nil
}

func mustMarshal(t *testing.T, v interface{}) map[string]types.AttributeValue {
	t.Helper()
	item, err := attributevalue.MarshalMap(v)
	require.NoError(t, err)
	return item
}

func TestDynamoSeedSourceConversations(t *testing.T) {
	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	fake := &fakeDynamo{
		pageSize: 2,
		tables: map[string][]map[string]types.AttributeValue{
			models.ConversationsTable: {
				mustMarshal(t, models.ConversationSummary{ID: "old", Name: "Old", Timestamp: base.Add(-48 * time.Hour), Status: models.StatusAway}),
				mustMarshal(t, models.ConversationSummary{ID: "new", Name: "New", Timestamp: base, Status: "mystery"}),
				{"name": &types.AttributeValueMemberS{Value: "no id"}},
				mustMarshal(t, models.ConversationSummary{ID: "mid", Name: "Mid", Timestamp: base.Add(-time.Hour), Status: models.StatusBusy, UnreadCount: -3}),
			},
		},
	}
	seeds := &DynamoSeedSource{Dynamo: &DynamoService{Client: fake}}

	conversations, err := seeds.LoadConversations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, fake.scans)

	require.Len(t, conversations, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, ids(conversations))
	assert.Equal(t, models.StatusOffline, conversations[0].Status)
	assert.Equal(t, 0, conversations[1].UnreadCount)
	assert.True(t, conversations[0].Timestamp.Equal(base))
}

func TestDynamoSeedSourceFeedAndProfile(t *testing.T) {
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	fake := &fakeDynamo{
		tables: map[string][]map[string]types.AttributeValue{
			models.ReelsTable: {
				mustMarshal(t, models.FeedItem{ID: "2", Likes: 10}),
				mustMarshal(t, models.FeedItem{ID: "1", Likes: -1}),
			},
			models.PostsTable: {
				mustMarshal(t, models.Post{ID: "p1", Images: []string{"a.jpg"}, CreatedAt: created}),
				mustMarshal(t, models.Post{ID: "p2", ImageURL: "b.jpg", CreatedAt: created.Add(time.Hour)}),
			},
		},
		profiles: map[string]map[string]types.AttributeValue{
			"jordan.lee": mustMarshal(t, models.UserProfile{UserHandle: "jordan.lee", Name: "Jordan Lee", Followers: 12}),
		},
	}
	seeds := &DynamoSeedSource{Dynamo: &DynamoService{Client: fake}, ProfileHandle: "jordan.lee"}

	reels, err := seeds.LoadFeed(context.Background())
	require.NoError(t, err)
	require.Len(t, reels, 2)
	assert.Equal(t, "1", reels[0].ID)
	assert.Equal(t, 0, reels[0].Likes)

	profile, posts, err := seeds.LoadProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jordan Lee", profile.Name)
	require.Len(t, posts, 2)
	assert.Equal(t, "p2", posts[0].ID)
	assert.Equal(t, "a.jpg", posts[1].ImageURL)
}

func TestDynamoSeedSourceMissingProfile(t *testing.T) {
	seeds := &DynamoSeedSource{Dynamo: &DynamoService{Client: &fakeDynamo{}}, ProfileHandle: "ghost"}
	_, _, err := seeds.LoadProfile(context.Background())
	assert.Error(t, err)
}
