// Package storetest provides an in-memory DynamoDB stand-in implementing the
// narrow client interface the store consumes.  It honors PutItem, GetItem,
// SET-only UpdateItem expressions, DeleteItem and single-page Scan, which is
// exactly the surface the application exercises.
package storetest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Fake is safe for concurrent use.
type Fake struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue
}

func New() *Fake {
	return &Fake{items: map[string]map[string]types.AttributeValue{}}
}

func keyString(key map[string]types.AttributeValue) string {
	parts := make([]string, 0, len(key))
	for _, name := range []string{"Home", "1"} {
		if av, ok := key[name].(*types.AttributeValueMemberS); ok {
			parts = append(parts, av.Value)
		}
	}
	return strings.Join(parts, "|")
}

func copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}

func (f *Fake) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[keyString(params.Item)] = copyItem(params.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *Fake) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[keyString(params.Key)]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: copyItem(item)}, nil
}

// UpdateItem applies a "SET #a = :b, ..." expression.  A missing key creates
// a partial item holding only the key and updated attributes, matching the
// real service.
func (f *Fake) UpdateItem(_ context.Context, params *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	expr := ""
	if params.UpdateExpression != nil {
		expr = *params.UpdateExpression
	}
	if !strings.HasPrefix(expr, "SET ") {
		return nil, fmt.Errorf("fake: unsupported update expression %q", expr)
	}

	k := keyString(params.Key)
	item, ok := f.items[k]
	if !ok {
		item = copyItem(params.Key)
	}
	for _, clause := range strings.Split(strings.TrimPrefix(expr, "SET "), ", ") {
		sides := strings.SplitN(clause, " = ", 2)
		if len(sides) != 2 {
			return nil, fmt.Errorf("fake: bad SET clause %q", clause)
		}
		name, ok := params.ExpressionAttributeNames[sides[0]]
		if !ok {
			return nil, fmt.Errorf("fake: unresolved name %q", sides[0])
		}
		value, ok := params.ExpressionAttributeValues[sides[1]]
		if !ok {
			return nil, fmt.Errorf("fake: unresolved value %q", sides[1])
		}
		item[name] = value
	}
	f.items[k] = item
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *Fake) DeleteItem(_ context.Context, params *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, keyString(params.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *Fake) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := &dynamodb.ScanOutput{}
	for _, item := range f.items {
		out.Items = append(out.Items, copyItem(item))
	}
	return out, nil
}
