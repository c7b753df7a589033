package utils

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ExtractString safely extracts a string from a DynamoDB attribute map
func ExtractString(item map[string]types.AttributeValue, field string) string {
	if attr, ok := item[field]; ok {
		if v, ok := attr.(*types.AttributeValueMemberS); ok {
			return v.Value
		}
	}
	return ""
}

// ExtractInt safely extracts a number attribute as int, 0 when absent or malformed
func ExtractInt(item map[string]types.AttributeValue, field string) int {
	if attr, ok := item[field]; ok {
		if v, ok := attr.(*types.AttributeValueMemberN); ok {
			n, err := strconv.Atoi(v.Value)
			if err == nil {
				return n
			}
		}
	}
	return 0
}

// ExtractFirstString extracts the first string of a list attribute such as "images"
func ExtractFirstString(item map[string]types.AttributeValue, field string) string {
	if attr, ok := item[field]; ok {
		if list, ok := attr.(*types.AttributeValueMemberL); ok && len(list.Value) > 0 {
			if s, ok := list.Value[0].(*types.AttributeValueMemberS); ok {
				return s.Value
			}
		}
	}
	return ""
}
