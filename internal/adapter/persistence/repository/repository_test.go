package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"detailing_crm/internal/domain/entities"
	"detailing_crm/internal/domain/pricing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo stores put items by the value of keyAttr.
type fakeDynamo struct {
	keyAttr string
	items   map[string]map[string]types.AttributeValue

	puts    []*dynamodb.PutItemInput
	updates []*dynamodb.UpdateItemInput
	queries []*dynamodb.QueryInput

	putErr    error
	updateErr error
	updateOut *dynamodb.UpdateItemOutput
	queryOut  *dynamodb.QueryOutput
}

func newFakeDynamo(keyAttr string) *fakeDynamo {
	return &fakeDynamo{keyAttr: keyAttr, items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) key(m map[string]types.AttributeValue) string {
	if s, ok := m[f.keyAttr].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	if f.putErr != nil {
		return nil, f.putErr
	}
	k := f.key(in.Item)
	_, exists := f.items[k]
	switch aws.ToString(in.ConditionExpression) {
	case "attribute_not_exists(#id)":
		if exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
		}
	case "attribute_exists(#id)":
		if !exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
		}
	}
	f.items[k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.items[f.key(in.Key)]}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	return f.queryOut, nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleVisit() entities.Visit {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return entities.Visit{
		ID:        "visit-1",
		ClientID:  "client-1",
		VehicleID: "car-1",
		Status:    entities.VisitStatusPending,
		Services: []pricing.LineItem{
			pricing.NewLineItem("wash", "Hand wash", 1, pricing.RecomputeOnBasePriceChange(dec("99.99")),
				pricing.DiscountSpec{Type: pricing.DiscountPercentage, Value: dec("12.5")}, "front only"),
			pricing.NewLineItem("custom-1", "Clay bar", 2, pricing.RecomputeOnBasePriceChange(dec("40")), pricing.NoDiscount(), ""),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestVisitDynamoRepository_CreateAndGet(t *testing.T) {
	ddb := newFakeDynamo("id")
	repo := NewVisitDynamoRepository(ddb, "visits")
	v := sampleVisit()

	_, err := repo.Create(context.Background(), v)
	require.NoError(t, err)
	require.Len(t, ddb.puts, 1)
	assert.Equal(t, "visits", aws.ToString(ddb.puts[0].TableName))

	got, err := repo.GetByID(context.Background(), "visit-1")
	require.NoError(t, err)
	assert.Equal(t, v.ClientID, got.ClientID)
	assert.Equal(t, v.Status, got.Status)
	assert.True(t, v.CreatedAt.Equal(got.CreatedAt))
	require.Len(t, got.Services, 2)
	for i := range v.Services {
		assert.Equal(t, v.Services[i].ID, got.Services[i].ID)
		assert.True(t, v.Services[i].BasePrice.Equal(got.Services[i].BasePrice), "base price %d", i)
		assert.True(t, v.Services[i].FinalPrice.Equal(got.Services[i].FinalPrice), "final price %d", i)
		assert.Equal(t, v.Services[i].Discount.Type, got.Services[i].Discount.Type)
		assert.True(t, v.Services[i].Discount.Value.Equal(got.Services[i].Discount.Value))
	}
	assert.Equal(t, "front only", got.Services[0].Note)
	// Unrounded base prices survive storage exactly.
	assert.Equal(t, "122.9877", got.Services[0].BasePrice.GrossAmount.String())

	_, err = repo.Create(context.Background(), v)
	var cfe *types.ConditionalCheckFailedException
	assert.True(t, errors.As(err, &cfe), "duplicate create must fail")
}

func TestVisitDynamoRepository_GetByID_NotFound(t *testing.T) {
	repo := NewVisitDynamoRepository(newFakeDynamo("id"), "visits")
	got, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestVisitDynamoRepository_Save(t *testing.T) {
	t.Run("missing visit returns zero", func(t *testing.T) {
		repo := NewVisitDynamoRepository(newFakeDynamo("id"), "visits")
		got, err := repo.Save(context.Background(), sampleVisit())
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("replaces services and bumps updated_at", func(t *testing.T) {
		ddb := newFakeDynamo("id")
		repo := NewVisitDynamoRepository(ddb, "visits")
		v := sampleVisit()
		_, err := repo.Create(context.Background(), v)
		require.NoError(t, err)

		v.Services = v.Services[:1]
		saved, err := repo.Save(context.Background(), v)
		require.NoError(t, err)
		assert.True(t, saved.UpdatedAt.After(v.UpdatedAt))

		got, err := repo.GetByID(context.Background(), "visit-1")
		require.NoError(t, err)
		assert.Len(t, got.Services, 1)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		ddb := newFakeDynamo("id")
		ddb.putErr = errors.New("throttled")
		repo := NewVisitDynamoRepository(ddb, "visits")
		_, err := repo.Save(context.Background(), sampleVisit())
		assert.EqualError(t, err, "throttled")
	})
}

func TestVisitDynamoRepository_UpdateStatusByID(t *testing.T) {
	t.Run("returns updated visit", func(t *testing.T) {
		ddb := newFakeDynamo("id")
		v := sampleVisit()
		v.Status = entities.VisitStatusApproved
		attrs, err := attributevalue.MarshalMap(toVisitItem(v))
		require.NoError(t, err)
		ddb.updateOut = &dynamodb.UpdateItemOutput{Attributes: attrs}

		repo := NewVisitDynamoRepository(ddb, "visits")
		got, err := repo.UpdateStatusByID(context.Background(), "visit-1", entities.VisitStatusApproved)
		require.NoError(t, err)
		assert.Equal(t, entities.VisitStatusApproved, got.Status)

		require.Len(t, ddb.updates, 1)
		status := ddb.updates[0].ExpressionAttributeValues[":status"].(*types.AttributeValueMemberS)
		assert.Equal(t, "approved", status.Value)
		assert.Equal(t, "id", ddb.updates[0].ExpressionAttributeNames["#id"])
	})

	t.Run("condition failure means not found", func(t *testing.T) {
		ddb := newFakeDynamo("id")
		ddb.updateErr = &types.ConditionalCheckFailedException{Message: aws.String("missing")}
		repo := NewVisitDynamoRepository(ddb, "visits")
		got, err := repo.UpdateStatusByID(context.Background(), "visit-1", entities.VisitStatusApproved)
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})
}

func TestVisitPaymentDynamoRepository(t *testing.T) {
	ddb := newFakeDynamo("id")
	repo := NewVisitPaymentDynamoRepository(ddb, "visit_payments")
	p := entities.VisitPayment{
		ID:                 "pay-1",
		VisitID:            "visit-1",
		Date:               time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Status:             entities.PaymentStatusApproved,
		Amount:             dec("135.30"),
		ProviderPayloadRaw: json.RawMessage(`{"id":1}`),
		ProviderPayload:    map[string]interface{}{"status": "approved"},
	}

	_, err := repo.Create(context.Background(), p)
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), "pay-1")
	require.NoError(t, err)
	assert.Equal(t, "visit-1", got.VisitID)
	assert.True(t, got.Amount.Equal(dec("135.3")))
	assert.Equal(t, "approved", got.ProviderPayload["status"])
	assert.JSONEq(t, `{"id":1}`, string(got.ProviderPayloadRaw))

	ddb.queryOut = &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{ddb.items["pay-1"]}}
	list, err := repo.ListByVisitID(context.Background(), "visit-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "pay-1", list[0].ID)
	assert.Equal(t, paymentsVisitIDIndex, aws.ToString(ddb.queries[0].IndexName))
}

func TestSignatureSessionDynamoRepository(t *testing.T) {
	ddb := newFakeDynamo("session_id")
	repo := NewSignatureSessionDynamoRepository(ddb, "signature_sessions")
	signedAt := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	s := entities.SignatureSession{
		SessionID:         "s-1",
		ProtocolID:        42,
		TabletID:          "tablet-1",
		Status:            entities.SignatureStatusPending,
		ExpiresAt:         time.Date(2026, 3, 1, 12, 45, 0, 0, time.UTC),
		UpdatedAt:         time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		SignedDocumentURL: "",
	}

	_, err := repo.Save(context.Background(), s)
	require.NoError(t, err)

	// Save upserts.
	s.Status = entities.SignatureStatusCompleted
	s.SignedAt = &signedAt
	s.SignedDocumentURL = "https://docs/s-1.pdf"
	s.UpdatedAt = signedAt
	_, err = repo.Save(context.Background(), s)
	require.NoError(t, err)
	assert.Nil(t, ddb.puts[1].ConditionExpression)

	got, err := repo.GetByID(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Equal(t, entities.SignatureStatusCompleted, got.Status)
	require.NotNil(t, got.SignedAt)
	assert.True(t, got.SignedAt.Equal(signedAt))
	assert.Equal(t, int64(42), got.ProtocolID)

	older, err := attributevalue.MarshalMap(toSignatureSessionItem(entities.SignatureSession{
		SessionID: "s-0", ProtocolID: 42, Status: entities.SignatureStatusExpired, UpdatedAt: signedAt.Add(-time.Hour),
	}))
	require.NoError(t, err)
	ddb.queryOut = &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{older, ddb.items["s-1"]}}

	list, err := repo.ListByProtocolID(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "s-1", list[0].SessionID)
	assert.Equal(t, "s-0", list[1].SessionID)
	assert.Nil(t, list[1].SignedAt)

	pid := ddb.queries[0].ExpressionAttributeValues[":pid"].(*types.AttributeValueMemberN)
	assert.Equal(t, "42", pid.Value)
}
