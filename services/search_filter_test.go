package services

import (
	"strings"
	"testing"

	"whisperchat_server/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatFixture() []models.ConversationSummary {
	return []models.ConversationSummary{
		{ID: "1", Name: "Sarah Johnson", LastMessage: "Hey, how are you doing?", Status: models.StatusOnline},
		{ID: "2", Name: "Mike Chen", LastMessage: "I just sent you the files", Status: models.StatusBusy},
		{ID: "3", Name: "Bob", LastMessage: "ok", Status: models.StatusAway},
	}
}

func ids(items []models.ConversationSummary) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestFilterConversations(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query returns everything", "", []string{"1", "2", "3"}},
		{"matches name ignoring case", "sarah", []string{"1"}},
		{"matches last message", "files", []string{"2"}},
		{"upper case query", "MIKE", []string{"2"}},
		{"matches across both fields", "o", []string{"1", "2", "3"}},
		{"whitespace is literal", " ", []string{"1", "2"}},
		{"no match", "zebra", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterConversations(chatFixture(), tt.query)
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("FilterConversations(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestFilterConversationsEmptyList(t *testing.T) {
	got := FilterConversations(nil, "sarah")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterConversationsDoesNotMutateInput(t *testing.T) {
	input := chatFixture()
	before := chatFixture()

	got := FilterConversations(input, "")
	require.Len(t, got, len(input))
	got[0].Name = "changed"

	if diff := cmp.Diff(before, input); diff != "" {
		t.Errorf("input was modified (-want +got):\n%s", diff)
	}
}

func TestFilterConversationsIsOrderedSubsequence(t *testing.T) {
	input := chatFixture()
	for _, q := range []string{"", "a", "e", "you", "JOHN", "?", "xyz"} {
		got := FilterConversations(input, q)

		pos := 0
		for _, item := range got {
			for pos < len(input) && input[pos].ID != item.ID {
				pos++
			}
			require.Less(t, pos, len(input), "query %q returned %s out of order", q, item.ID)
			pos++

			lq := strings.ToLower(q)
			assert.True(t,
				strings.Contains(strings.ToLower(item.Name), lq) || strings.Contains(strings.ToLower(item.LastMessage), lq),
				"query %q returned non-matching item %s", q, item.ID)
		}
	}
}
