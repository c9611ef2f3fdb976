package repository

import (
	"context"
	"detailing_crm/internal/domain/entities"
	"detailing_crm/internal/domain/pricing"
	"detailing_crm/internal/usecase/interfaces"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type priceItem struct {
	Net   string `dynamodbav:"net"`
	Gross string `dynamodbav:"gross"`
	Tax   string `dynamodbav:"tax"`
}

type serviceItem struct {
	ID            string    `dynamodbav:"id"`
	Name          string    `dynamodbav:"name"`
	Quantity      int       `dynamodbav:"quantity"`
	BasePrice     priceItem `dynamodbav:"base_price"`
	DiscountType  string    `dynamodbav:"discount_type"`
	DiscountValue string    `dynamodbav:"discount_value"`
	FinalPrice    priceItem `dynamodbav:"final_price"`
	Note          string    `dynamodbav:"note,omitempty"`
}

type visitItem struct {
	ID        string        `dynamodbav:"id"`
	ClientID  string        `dynamodbav:"client_id"`
	VehicleID string        `dynamodbav:"vehicle_id,omitempty"`
	Status    string        `dynamodbav:"status"`
	Services  []serviceItem `dynamodbav:"services"`
	CreatedAt string        `dynamodbav:"created_at"`
	UpdatedAt string        `dynamodbav:"updated_at"`
}

// VisitDynamoRepository persists Visit entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Services are embedded in the visit item so a whole visit is read and
// written in one request.
type VisitDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IVisitRepository = (*VisitDynamoRepository)(nil)

func NewVisitDynamoRepository(ddb DynamoAPI, tableName string) *VisitDynamoRepository {
	return &VisitDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *VisitDynamoRepository) Create(ctx context.Context, v entities.Visit) (entities.Visit, error) {
	return r.put(ctx, v, "attribute_not_exists(#id)")
}

func (r *VisitDynamoRepository) Save(ctx context.Context, v entities.Visit) (entities.Visit, error) {
	v.UpdatedAt = time.Now().UTC()
	saved, err := r.put(ctx, v, "attribute_exists(#id)")
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Visit{}, nil
		}
		return entities.Visit{}, err
	}
	return saved, nil
}

func (r *VisitDynamoRepository) put(ctx context.Context, v entities.Visit, condition string) (entities.Visit, error) {
	av, err := attributevalue.MarshalMap(toVisitItem(v))
	if err != nil {
		return entities.Visit{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Visit{}, err
	}
	return v, nil
}

func (r *VisitDynamoRepository) GetByID(ctx context.Context, id string) (entities.Visit, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Visit{}, err
	}
	if len(out.Item) == 0 {
		return entities.Visit{}, nil
	}

	var it visitItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Visit{}, err
	}
	return fromVisitItem(it), nil
}

func (r *VisitDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.VisitStatus) (entities.Visit, error) {
	now := formatTime(time.Now())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Visit{}, nil
		}
		return entities.Visit{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Visit{}, nil
	}
	var it visitItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Visit{}, err
	}
	return fromVisitItem(it), nil
}

func toVisitItem(v entities.Visit) visitItem {
	services := make([]serviceItem, 0, len(v.Services))
	for _, s := range v.Services {
		services = append(services, serviceItem{
			ID:            s.ID,
			Name:          s.Name,
			Quantity:      s.Quantity,
			BasePrice:     toPriceItem(s.BasePrice),
			DiscountType:  string(s.Discount.Type),
			DiscountValue: decimalToString(s.Discount.Value),
			FinalPrice:    toPriceItem(s.FinalPrice),
			Note:          s.Note,
		})
	}
	return visitItem{
		ID:        v.ID,
		ClientID:  v.ClientID,
		VehicleID: v.VehicleID,
		Status:    string(v.Status),
		Services:  services,
		CreatedAt: formatTime(v.CreatedAt),
		UpdatedAt: formatTime(v.UpdatedAt),
	}
}

// fromVisitItem keeps the stored final prices as they are; they were computed
// when the service was last edited.
func fromVisitItem(it visitItem) entities.Visit {
	services := make([]pricing.LineItem, 0, len(it.Services))
	for _, s := range it.Services {
		services = append(services, pricing.LineItem{
			ID:         s.ID,
			Name:       s.Name,
			Quantity:   s.Quantity,
			BasePrice:  fromPriceItem(s.BasePrice),
			Discount:   pricing.DiscountSpec{Type: pricing.ParseDiscountType(s.DiscountType), Value: decimalFromString(s.DiscountValue)},
			FinalPrice: fromPriceItem(s.FinalPrice),
			Note:       s.Note,
		})
	}
	return entities.Visit{
		ID:        it.ID,
		ClientID:  it.ClientID,
		VehicleID: it.VehicleID,
		Status:    entities.VisitStatus(it.Status),
		Services:  services,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}

func toPriceItem(p pricing.Price) priceItem {
	return priceItem{
		Net:   decimalToString(p.NetAmount),
		Gross: decimalToString(p.GrossAmount),
		Tax:   decimalToString(p.TaxAmount),
	}
}

func fromPriceItem(it priceItem) pricing.Price {
	return pricing.Price{
		NetAmount:   decimalFromString(it.Net),
		GrossAmount: decimalFromString(it.Gross),
		TaxAmount:   decimalFromString(it.Tax),
	}
}
