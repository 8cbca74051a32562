package dynamorepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/mrled/suns/palin/internal/model"
)

// DynamoAPI is the subset of the DynamoDB client used by the repository
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoRepository is a DynamoDB implementation of CheckRepository
type DynamoRepository struct {
	client    DynamoAPI
	tableName string
}

// NewDynamoRepository creates a new DynamoDB-backed repository
func NewDynamoRepository(client DynamoAPI, tableName string) *DynamoRepository {
	return &DynamoRepository{
		client:    client,
		tableName: tableName,
	}
}

func itemKey(fold, text string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: fold},
		"sk": &types.AttributeValueMemberS{Value: sortKey(text)},
	}
}

// Store upserts a check record.
// Rev is incremented server side so concurrent writers never reuse a revision.
func (r *DynamoRepository) Store(ctx context.Context, record *model.CheckRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	values, err := attributevalue.MarshalMap(map[string]any{
		":p":   record.IsPalindrome,
		":t":   record.CheckTime,
		":one": 1,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal check record: %w", err)
	}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       itemKey(record.Fold, record.Text),
		UpdateExpression:          aws.String("SET IsPalindrome = :p, CheckTime = :t ADD Rev :one"),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return fmt.Errorf("failed to store check record: %w", err)
	}

	var dto DynamoDTO
	if err := attributevalue.UnmarshalMap(out.Attributes, &dto); err != nil {
		return fmt.Errorf("failed to unmarshal stored check record: %w", err)
	}
	record.Rev = dto.Rev

	return nil
}

// Get retrieves a check record by fold and text from DynamoDB
func (r *DynamoRepository) Get(ctx context.Context, fold, text string) (*model.CheckRecord, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       itemKey(fold, text),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get check record: %w", err)
	}

	if result.Item == nil {
		return nil, model.ErrNotFound
	}

	var dto DynamoDTO
	if err := attributevalue.UnmarshalMap(result.Item, &dto); err != nil {
		return nil, fmt.Errorf("failed to unmarshal check record: %w", err)
	}

	return dto.ToDomain(), nil
}

// List retrieves all check records from DynamoDB, following scan pagination
func (r *DynamoRepository) List(ctx context.Context) ([]*model.CheckRecord, error) {
	var dtos []*DynamoDTO

	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan check records: %w", err)
		}

		var pageDTOs []*DynamoDTO
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageDTOs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal check records: %w", err)
		}
		dtos = append(dtos, pageDTOs...)
	}

	return ToDomainList(dtos), nil
}

// Delete removes a check record by fold and text from DynamoDB
func (r *DynamoRepository) Delete(ctx context.Context, fold, text string) error {
	// The condition makes a missing item an error, matching MemoryRepository.Delete
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 itemKey(fold, text),
		ConditionExpression: aws.String("attribute_exists(pk) AND attribute_exists(sk)"),
	})
	if err != nil {
		var ccfe *types.ConditionalCheckFailedException
		if errors.As(err, &ccfe) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to delete check record: %w", err)
	}

	return nil
}
