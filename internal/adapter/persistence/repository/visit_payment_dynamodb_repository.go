package repository

import (
	"context"
	"detailing_crm/internal/domain/entities"
	"detailing_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsVisitIDIndex = "visit_id-index"

type visitPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	VisitID            string                 `dynamodbav:"visit_id"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	Amount             string                 `dynamodbav:"amount"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// VisitPaymentDynamoRepository persists VisitPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: visit_id-index (PK: visit_id)
type VisitPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IVisitPaymentRepository = (*VisitPaymentDynamoRepository)(nil)

func NewVisitPaymentDynamoRepository(ddb DynamoAPI, tableName string) *VisitPaymentDynamoRepository {
	return &VisitPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *VisitPaymentDynamoRepository) Create(ctx context.Context, p entities.VisitPayment) (entities.VisitPayment, error) {
	av, err := attributevalue.MarshalMap(toVisitPaymentItem(p))
	if err != nil {
		return entities.VisitPayment{}, err
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
		return entities.VisitPayment{}, err
	}
	return p, nil
}

func (r *VisitPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.VisitPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.VisitPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.VisitPayment{}, nil
	}

	var it visitPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.VisitPayment{}, err
	}
	return fromVisitPaymentItem(it), nil
}

func (r *VisitPaymentDynamoRepository) ListByVisitID(ctx context.Context, visitID string) ([]entities.VisitPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsVisitIDIndex),
		KeyConditionExpression: aws.String("visit_id = :vid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":vid": &types.AttributeValueMemberS{Value: visitID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.VisitPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it visitPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromVisitPaymentItem(it))
	}
	return items, nil
}

func toVisitPaymentItem(p entities.VisitPayment) visitPaymentItem {
	return visitPaymentItem{
		ID:                 p.ID,
		VisitID:            p.VisitID,
		Date:               formatTime(p.Date),
		Status:             string(p.Status),
		Amount:             decimalToString(p.Amount),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromVisitPaymentItem(it visitPaymentItem) entities.VisitPayment {
	p := entities.VisitPayment{
		ID:              it.ID,
		VisitID:         it.VisitID,
		Date:            parseTime(it.Date),
		Status:          entities.PaymentStatus(it.Status),
		Amount:          decimalFromString(it.Amount),
		ProviderPayload: it.ProviderPayload,
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = []byte(it.ProviderPayloadRaw)
	}
	return p
}
