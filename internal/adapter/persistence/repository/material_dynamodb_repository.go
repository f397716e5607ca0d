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
	defaultMaterialsTableName = "materials"
	materialsNameIndex        = "name-index"
)

type materialItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Unit         string `dynamodbav:"unit"`
	PricePerUnit string `dynamodbav:"price_per_unit"`
	Currency     string `dynamodbav:"currency"`
	Supplier     string `dynamodbav:"supplier,omitempty"`
	IsActive     bool   `dynamodbav:"is_active"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// MaterialDynamoRepository persists materials-catalog entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: name-index (PK: name), backs the unique-name lookup

type MaterialDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMaterialRepository = (*MaterialDynamoRepository)(nil)

func NewMaterialDynamoRepository(ddb *dynamodb.Client) *MaterialDynamoRepository {
	return &MaterialDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MATERIALS_TABLE", defaultMaterialsTableName),
	}
}

func (r *MaterialDynamoRepository) Create(ctx context.Context, mat entities.Material) (entities.Material, error) {
	av, err := attributevalue.MarshalMap(toMaterialItem(mat))
	if err != nil {
		return entities.Material{}, err
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
		return entities.Material{}, err
	}
	return mat, nil
}

func (r *MaterialDynamoRepository) GetByID(ctx context.Context, id string) (entities.Material, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Material{}, err
	}
	if len(out.Item) == 0 {
		return entities.Material{}, nil
	}

	var it materialItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Material{}, err
	}
	return fromMaterialItem(it), nil
}

func (r *MaterialDynamoRepository) GetByName(ctx context.Context, name string) (entities.Material, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(materialsNameIndex),
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
		return entities.Material{}, err
	}
	if len(out.Items) == 0 {
		return entities.Material{}, nil
	}

	var it materialItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Material{}, err
	}
	return fromMaterialItem(it), nil
}

func (r *MaterialDynamoRepository) List(ctx context.Context) ([]entities.Material, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Material, 0, len(out.Items))
	for _, raw := range out.Items {
		var it materialItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromMaterialItem(it))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (r *MaterialDynamoRepository) Update(ctx context.Context, mat entities.Material) (entities.Material, error) {
	av, err := attributevalue.MarshalMap(toMaterialItem(mat))
	if err != nil {
		return entities.Material{}, err
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
			return entities.Material{}, nil
		}
		return entities.Material{}, err
	}
	return mat, nil
}

func (r *MaterialDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toMaterialItem(m entities.Material) materialItem {
	return materialItem{
		ID:           m.ID,
		Name:         m.Name,
		Unit:         m.Unit,
		PricePerUnit: floatToString(m.PricePerUnit),
		Currency:     m.Currency,
		Supplier:     m.Supplier,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    m.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromMaterialItem(it materialItem) entities.Material {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Material{
		ID:           it.ID,
		Name:         it.Name,
		Unit:         it.Unit,
		PricePerUnit: stringToFloat(it.PricePerUnit),
		Currency:     it.Currency,
		Supplier:     it.Supplier,
		IsActive:     it.IsActive,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
