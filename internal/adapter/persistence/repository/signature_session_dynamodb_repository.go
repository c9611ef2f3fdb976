package repository

import (
	"context"
	"detailing_crm/internal/domain/entities"
	"detailing_crm/internal/usecase/interfaces"
	"sort"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const sessionsProtocolIDIndex = "protocol_id-index"

type signatureSessionItem struct {
	SessionID         string `dynamodbav:"session_id"`
	ProtocolID        int64  `dynamodbav:"protocol_id"`
	TabletID          string `dynamodbav:"tablet_id"`
	Status            string `dynamodbav:"status"`
	ExpiresAt         string `dynamodbav:"expires_at,omitempty"`
	SignedAt          string `dynamodbav:"signed_at,omitempty"`
	SignedDocumentURL string `dynamodbav:"signed_document_url,omitempty"`
	SignatureImageURL string `dynamodbav:"signature_image_url,omitempty"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// SignatureSessionDynamoRepository keeps the last observed state of every
// signature session.
//
// Table requirements:
//   - PK: session_id (string)
//   - GSI: protocol_id-index (PK: protocol_id, number)
type SignatureSessionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISignatureSessionRepository = (*SignatureSessionDynamoRepository)(nil)

func NewSignatureSessionDynamoRepository(ddb DynamoAPI, tableName string) *SignatureSessionDynamoRepository {
	return &SignatureSessionDynamoRepository{ddb: ddb, tableName: tableName}
}

// Save overwrites whatever is stored under the session id.
func (r *SignatureSessionDynamoRepository) Save(ctx context.Context, s entities.SignatureSession) (entities.SignatureSession, error) {
	av, err := attributevalue.MarshalMap(toSignatureSessionItem(s))
	if err != nil {
		return entities.SignatureSession{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.SignatureSession{}, err
	}
	return s, nil
}

func (r *SignatureSessionDynamoRepository) GetByID(ctx context.Context, sessionID string) (entities.SignatureSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SignatureSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.SignatureSession{}, nil
	}

	var it signatureSessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SignatureSession{}, err
	}
	return fromSignatureSessionItem(it), nil
}

// ListByProtocolID returns the protocol's sessions, most recently updated
// first.
func (r *SignatureSessionDynamoRepository) ListByProtocolID(ctx context.Context, protocolID int64) ([]entities.SignatureSession, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(sessionsProtocolIDIndex),
		KeyConditionExpression: aws.String("protocol_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberN{Value: strconv.FormatInt(protocolID, 10)},
		},
	})
	if err != nil {
		return nil, err
	}

	sessions := make([]entities.SignatureSession, 0, len(out.Items))
	for _, raw := range out.Items {
		var it signatureSessionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		sessions = append(sessions, fromSignatureSessionItem(it))
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].UpdatedAt.After(sessions[j].UpdatedAt)
	})
	return sessions, nil
}

func toSignatureSessionItem(s entities.SignatureSession) signatureSessionItem {
	return signatureSessionItem{
		SessionID:         s.SessionID,
		ProtocolID:        s.ProtocolID,
		TabletID:          s.TabletID,
		Status:            string(s.Status),
		ExpiresAt:         formatTime(s.ExpiresAt),
		SignedAt:          formatTimePtr(s.SignedAt),
		SignedDocumentURL: s.SignedDocumentURL,
		SignatureImageURL: s.SignatureImageURL,
		UpdatedAt:         formatTime(s.UpdatedAt),
	}
}

func fromSignatureSessionItem(it signatureSessionItem) entities.SignatureSession {
	return entities.SignatureSession{
		SessionID:         it.SessionID,
		ProtocolID:        it.ProtocolID,
		TabletID:          it.TabletID,
		Status:            entities.SignatureStatus(it.Status),
		ExpiresAt:         parseTime(it.ExpiresAt),
		SignedAt:          parseTimePtr(it.SignedAt),
		SignedDocumentURL: it.SignedDocumentURL,
		SignatureImageURL: it.SignatureImageURL,
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
