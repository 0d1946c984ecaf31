package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MaxTransactItems is the DynamoDB limit of actions per TransactWriteItems call.
const MaxTransactItems = 100

// dueDateLayout is fixed-width so due_date sorts lexicographically.
const dueDateLayout = "2006-01-02T15:04:05Z"

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// upsertAction turns a marshaled item into an Update action that sets every
// present attribute and leaves absent ones untouched.
func upsertAction(table string, key map[string]types.AttributeValue, av map[string]types.AttributeValue) types.TransactWriteItem {
	attrs := make([]string, 0, len(av))
	for name := range av {
		if _, isKey := key[name]; !isKey {
			attrs = append(attrs, name)
		}
	}
	sort.Strings(attrs)

	names := make(map[string]string, len(attrs))
	values := make(map[string]types.AttributeValue, len(attrs))
	expr := "SET "
	for i, name := range attrs {
		n, v := fmt.Sprintf("#a%d", i), fmt.Sprintf(":v%d", i)
		names[n] = name
		values[v] = av[name]
		if i > 0 {
			expr += ", "
		}
		expr += n + " = " + v
	}

	update := &types.Update{
		TableName: aws.String(table),
		Key:       key,
	}
	if len(attrs) > 0 {
		update.UpdateExpression = aws.String(expr)
		update.ExpressionAttributeNames = names
		update.ExpressionAttributeValues = values
	}
	return types.TransactWriteItem{Update: update}
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
