package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWorksTableName = "works"
	worksNameIndex        = "name-index"
)

type workItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	Unit        string `dynamodbav:"unit"`
	BaseRate    string `dynamodbav:"base_rate"`
	Currency    string `dynamodbav:"currency"`
	IsActive    bool   `dynamodbav:"is_active"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// WorkDynamoRepository persists works-catalog entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: name-index (PK: name), backs the unique-name lookup

type WorkDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkRepository = (*WorkDynamoRepository)(nil)

func NewWorkDynamoRepository(ddb *dynamodb.Client) *WorkDynamoRepository {
	return &WorkDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORKS_TABLE", defaultWorksTableName),
	}
}

func (r *WorkDynamoRepository) Create(ctx context.Context, w entities.Work) (entities.Work, error) {
	av, err := attributevalue.MarshalMap(toWorkItem(w))
	if err != nil {
		return entities.Work{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Work{}, err
	}
	return w, nil
}

func (r *WorkDynamoRepository) GetByID(ctx context.Context, id string) (entities.Work, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Work{}, err
	}
	if len(out.Item) == 0 {
		return entities.Work{}, nil
	}

	var it workItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Work{}, err
	}
	return fromWorkItem(it), nil
}

func (r *WorkDynamoRepository) GetByName(ctx context.Context, name string) (entities.Work, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(worksNameIndex),
		KeyConditionExpression: aws.String("#name = :name"),
		ExpressionAttributeNames: map[string]string{
			"#name": "name",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name": &types.AttributeValueMemberS{Value: name},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Work{}, err
	}
	if len(out.Items) == 0 {
		return entities.Work{}, nil
	}

	var it workItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Work{}, err
	}
	return fromWorkItem(it), nil
}

func (r *WorkDynamoRepository) List(ctx context.Context) ([]entities.Work, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Work, 0, len(out.Items))
	for _, raw := range out.Items {
		var it workItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromWorkItem(it))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (r *WorkDynamoRepository) Update(ctx context.Context, w entities.Work) (entities.Work, error) {
	av, err := attributevalue.MarshalMap(toWorkItem(w))
	if err != nil {
		return entities.Work{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Work{}, nil
		}
		return entities.Work{}, err
	}
	return w, nil
}

func (r *WorkDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toWorkItem(w entities.Work) workItem {
	return workItem{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Unit:        w.Unit,
		BaseRate:    floatToString(w.BaseRate),
		Currency:    w.Currency,
		IsActive:    w.IsActive,
		CreatedAt:   w.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   w.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromWorkItem(it workItem) entities.Work {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Work{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Unit:        it.Unit,
		BaseRate:    stringToFloat(it.BaseRate),
		Currency:    it.Currency,
		IsActive:    it.IsActive,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
