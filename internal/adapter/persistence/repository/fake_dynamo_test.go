package repository

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeDynamo struct {
	mu sync.Mutex

	transacts [][]types.TransactWriteItem
	queries   []*dynamodb.QueryInput
	scans     []*dynamodb.ScanInput

	getItem   map[string]types.AttributeValue
	queryFn   func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	scanPages []*dynamodb.ScanOutput
	err       error
}

func (f *fakeDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.getItem}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	f.queries = append(f.queries, in)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if f.queryFn == nil {
		return &dynamodb.QueryOutput{}, nil
	}
	return f.queryFn(in)
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scans = append(f.scans, in)
	if f.err != nil {
		return nil, f.err
	}
	idx := len(f.scans) - 1
	if idx >= len(f.scanPages) {
		return &dynamodb.ScanOutput{}, nil
	}
	return f.scanPages[idx], nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.transacts = append(f.transacts, in.TransactItems)
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

// setAttributes resolves an Update action back to attribute name -> value.
func setAttributes(u *types.Update) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(u.ExpressionAttributeNames))
	for placeholder, name := range u.ExpressionAttributeNames {
		value := ":v" + placeholder[2:]
		out[name] = u.ExpressionAttributeValues[value]
	}
	return out
}

func stringValue(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}
