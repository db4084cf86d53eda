// Package store wraps the single DynamoDB table that backs every entity
// type.  Items are keyed by a fixed partition attribute ("Home") holding the
// entity-type literal and a sort attribute ("1") holding a generated UUID.
package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Attribute names of the composite key.  The table was provisioned with
// these literal names and every item in it uses them.
const (
	PartitionAttr = "Home"
	SortAttr      = "1"
)

// Item is a raw DynamoDB attribute map.
type Item = map[string]types.AttributeValue

// DynamoAPI is the subset of the DynamoDB client used by Store.  Tests
// substitute an in-memory fake.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Store performs raw item operations against one table.
type Store struct {
	client DynamoAPI
	table  string
}

// New returns a Store over the given client and table name.
func New(client DynamoAPI, table string) *Store {
	return &Store{client: client, table: table}
}

// NewClient builds a DynamoDB client from explicit credentials.  When the
// key pair is empty the default AWS credential chain is used instead, which
// covers instance roles and local profiles.
func NewClient(ctx context.Context, region, accessKey, secretKey string) (*dynamodb.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if accessKey != "" && secretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg), nil
}

// Key builds the composite key for an entity type and id.
func Key(entityType, id string) Item {
	return Item{
		PartitionAttr: &types.AttributeValueMemberS{Value: entityType},
		SortAttr:      &types.AttributeValueMemberS{Value: id},
	}
}

// Put inserts or fully overwrites the item at its key.  Last write wins;
// there is no conditional check.
func (s *Store) Put(ctx context.Context, item Item) error {
	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put item: %w", err)
	}
	return nil
}

// Get returns the item at (entityType, id), or nil when absent.
func (s *Store) Get(ctx context.Context, entityType, id string) (Item, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       Key(entityType, id),
	})
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if out.Item == nil || len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}

// Update applies a SET expression over the named attributes, leaving all
// others untouched.  DynamoDB creates a partial item when the key does not
// exist, so callers that must guarantee not-found semantics perform an
// explicit Get first.
func (s *Store) Update(ctx context.Context, entityType, id string, changes Item) error {
	if len(changes) == 0 {
		return nil
	}

	// Deterministic clause order keeps the expression stable for tests.
	fields := make([]string, 0, len(changes))
	for f := range changes {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	clauses := make([]string, 0, len(fields))
	names := make(map[string]string, len(fields))
	values := make(Item, len(fields))
	for i, f := range fields {
		nameKey := fmt.Sprintf("#f%d", i)
		valueKey := fmt.Sprintf(":v%d", i)
		names[nameKey] = f
		values[valueKey] = changes[f]
		clauses = append(clauses, nameKey+" = "+valueKey)
	}

	_, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.table),
		Key:                       Key(entityType, id),
		UpdateExpression:          aws.String("SET " + strings.Join(clauses, ", ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete removes the item if present.  Deleting a missing key is not an
// error.
func (s *Store) Delete(ctx context.Context, entityType, id string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key:       Key(entityType, id),
	})
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// ScanAll reads every item in the table, following pagination.  Callers
// filter client-side on the partition attribute; the table has no secondary
// indexes so list and find-by-field operations all go through here.
func (s *Store) ScanAll(ctx context.Context) ([]Item, error) {
	var items []Item
	var startKey Item
	for {
		out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(s.table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		items = append(items, out.Items...)
		if out.LastEvaluatedKey == nil || len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// ScanType returns all items tagged with the given entity type.
func (s *Store) ScanType(ctx context.Context, entityType string) ([]Item, error) {
	all, err := s.ScanAll(ctx)
	if err != nil {
		return nil, err
	}
	var items []Item
	for _, it := range all {
		if GetS(it, PartitionAttr) == entityType {
			items = append(items, it)
		}
	}
	return items, nil
}
