// Package metadata implements the DynamoDB store for image metadata records.
package metadata

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/dmitrijs2005/pixelprompt/internal/common"
	"github.com/dmitrijs2005/pixelprompt/internal/models"
)

// API is the subset of the DynamoDB client used by the store.
type API interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Store persists and retrieves ImageRecords in a single DynamoDB table
// keyed by (userId, timestamp).
type Store struct {
	client API
	table  string
}

// NewStore wraps an existing DynamoDB client.
func NewStore(client API, table string) *Store {
	return &Store{client: client, table: table}
}

// NewStoreFromRegion builds a DynamoDB client for the given region.
func NewStoreFromRegion(ctx context.Context, region, table string) (*Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewStore(dynamodb.NewFromConfig(cfg), table), nil
}

// Put writes a record once. Records are immutable after creation, so no
// conditional update logic is needed: concurrent pipeline entries always
// carry distinct (userId, timestamp) keys.
func (s *Store) Put(ctx context.Context, rec *models.ImageRecord) error {
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal record: %v", common.ErrInternal, err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.table,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to put record: %v", common.ErrUpstream, err)
	}
	return nil
}

// ListByUser returns up to limit records for the given user. Results come
// back in the table's native sort-key order; callers that need freshness
// order must re-sort numerically by timestamp.
func (s *Store) ListByUser(ctx context.Context, userID string, limit int32) ([]models.ImageRecord, error) {
	out, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              &s.table,
		KeyConditionExpression: aws.String("userId = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		Limit: &limit,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query records: %v", common.ErrUpstream, err)
	}

	var records []models.ImageRecord
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &records); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal records: %v", common.ErrInternal, err)
	}
	return records, nil
}
