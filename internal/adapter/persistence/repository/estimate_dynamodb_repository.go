package repository

import (
	"context"
	"time"

	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName = "estimates"
	estimatesProjectIDIndex   = "project_id-index"
)

type estimateLineItem struct {
	ID        string `dynamodbav:"id"`
	LineType  string `dynamodbav:"line_type"`
	RefID     string `dynamodbav:"ref_id"`
	Name      string `dynamodbav:"name"`
	Unit      string `dynamodbav:"unit"`
	Quantity  string `dynamodbav:"quantity"`
	UnitPrice string `dynamodbav:"unit_price"`
	Currency  string `dynamodbav:"currency"`
	Subtotal  string `dynamodbav:"subtotal"`
}

type estimateItem struct {
	ID        string `dynamodbav:"id"`
	ProjectID string `dynamodbav:"project_id"`
	Title     string `dynamodbav:"title"`
	Currency  string `dynamodbav:"currency"`

	CoefficientComplexity string `dynamodbav:"coefficient_complexity"`
	CoefficientUrgency    string `dynamodbav:"coefficient_urgency"`
	CoefficientFloor      string `dynamodbav:"coefficient_floor"`
	DiscountPercent       string `dynamodbav:"discount_percent"`
	MarkupPercent         string `dynamodbav:"markup_percent"`

	CreatedAt string             `dynamodbav:"created_at"`
	Lines     []estimateLineItem `dynamodbav:"lines"`
}

// EstimateDynamoRepository persists Estimate aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id, SK: created_at)
//
// Lines live inside the estimate item, so one conditional PutItem writes the
// whole aggregate. That is what backs the all-or-nothing creation contract.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it := toEstimateItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Estimate, error) {
	// created_at is the GSI sort key; ScanIndexForward=false gives newest
	// first.
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimatesProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Estimate, 0, len(out.Items))
	for _, raw := range out.Items {
		var it estimateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromEstimateItem(it))
	}
	return items, nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	lines := make([]estimateLineItem, 0, len(e.Lines))
	for _, l := range e.Lines {
		lines = append(lines, estimateLineItem{
			ID:        l.ID,
			LineType:  string(l.LineType),
			RefID:     l.RefID,
			Name:      l.Name,
			Unit:      l.Unit,
			Quantity:  floatToString(l.Quantity),
			UnitPrice: floatToString(l.UnitPrice),
			Currency:  l.Currency,
			Subtotal:  floatToString(l.Subtotal),
		})
	}

	return estimateItem{
		ID:        e.ID,
		ProjectID: e.ProjectID,
		Title:     e.Title,
		Currency:  e.Currency,

		CoefficientComplexity: floatToString(e.CoefficientComplexity),
		CoefficientUrgency:    floatToString(e.CoefficientUrgency),
		CoefficientFloor:      floatToString(e.CoefficientFloor),
		DiscountPercent:       floatToString(e.DiscountPercent),
		MarkupPercent:         floatToString(e.MarkupPercent),

		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
		Lines:     lines,
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)

	lines := make([]entities.EstimateLine, 0, len(it.Lines))
	for _, l := range it.Lines {
		lines = append(lines, entities.EstimateLine{
			ID:        l.ID,
			LineType:  entities.LineType(l.LineType),
			RefID:     l.RefID,
			Name:      l.Name,
			Unit:      l.Unit,
			Quantity:  stringToFloat(l.Quantity),
			UnitPrice: stringToFloat(l.UnitPrice),
			Currency:  l.Currency,
			Subtotal:  stringToFloat(l.Subtotal),
		})
	}

	return entities.Estimate{
		ID:        it.ID,
		ProjectID: it.ProjectID,
		Title:     it.Title,
		Currency:  it.Currency,

		CoefficientComplexity: stringToFloat(it.CoefficientComplexity),
		CoefficientUrgency:    stringToFloat(it.CoefficientUrgency),
		CoefficientFloor:      stringToFloat(it.CoefficientFloor),
		DiscountPercent:       stringToFloat(it.DiscountPercent),
		MarkupPercent:         stringToFloat(it.MarkupPercent),

		CreatedAt: createdAt,
		Lines:     lines,
	}
}
