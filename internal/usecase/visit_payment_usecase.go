package usecase

import (
	"context"
	"detailing_crm/internal/config"
	"detailing_crm/internal/domain/entities"
	"detailing_crm/internal/usecase/interfaces"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrVisitPaymentNotFound           = errors.New("visit payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidPaymentVisitID          = errors.New("invalid visit_id")
	ErrInvalidProviderPayload         = errors.New("invalid payment provider payload")
	ErrVisitNotApproved               = errors.New("visit not approved")
	ErrNothingToCharge                = errors.New("visit total is zero")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// sandboxPayerEmail is the fallback payer Mercado Pago documents for test
// access tokens.
const sandboxPayerEmail = "test_user_br@testuser.com"

// IVisitPaymentUseCase charges an approved visit.
//
// The amount is always the gross total of the visit services as stored; the
// caller only supplies the provider specific part of the payload (payment
// method, payer, token).
type IVisitPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, visitID string, providerPayload json.RawMessage) (entities.VisitPayment, error)
	GetByID(ctx context.Context, id string) (entities.VisitPayment, error)
	ListByVisitID(ctx context.Context, visitID string) ([]entities.VisitPayment, error)
}

type VisitPaymentUseCase struct {
	repo      interfaces.IVisitPaymentRepository
	visitRepo interfaces.IVisitRepository
	gateway   interfaces.IPaymentGateway
	cfg       config.PaymentsConfig
	logger    *zap.Logger
}

var _ IVisitPaymentUseCase = (*VisitPaymentUseCase)(nil)

func NewVisitPaymentUseCase(repo interfaces.IVisitPaymentRepository, visitRepo interfaces.IVisitRepository, gateway interfaces.IPaymentGateway, cfg config.PaymentsConfig, logger *zap.Logger) *VisitPaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VisitPaymentUseCase{
		repo:      repo,
		visitRepo: visitRepo,
		gateway:   gateway,
		cfg:       cfg,
		logger:    logger.Named("payment"),
	}
}

func (u *VisitPaymentUseCase) CreateAndApprove(ctx context.Context, visitID string, providerPayload json.RawMessage) (entities.VisitPayment, error) {
	visitID = strings.TrimSpace(visitID)
	log := u.logger.With(zap.String("visit_id", visitID))
	log.Debug("create-and-approve start", zap.Int("payload_len", len(providerPayload)), zap.Bool("mock", u.cfg.Mock))

	if visitID == "" {
		return entities.VisitPayment{}, ErrInvalidPaymentVisitID
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		if !u.cfg.Mock {
			log.Info("invalid provider payload")
			return entities.VisitPayment{}, ErrInvalidProviderPayload
		}
		providerPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !u.cfg.Mock {
		return entities.VisitPayment{}, ErrPaymentGatewayNotConfigured
	}
	if u.visitRepo == nil {
		return entities.VisitPayment{}, errors.New("visit repository not configured")
	}

	visit, err := u.visitRepo.GetByID(ctx, visitID)
	if err != nil {
		log.Error("failed loading visit", zap.Error(err))
		return entities.VisitPayment{}, err
	}
	if visit.ID == "" {
		return entities.VisitPayment{}, ErrVisitNotFound
	}
	if visit.Status != entities.VisitStatusApproved {
		log.Info("visit not approved", zap.String("status", string(visit.Status)))
		return entities.VisitPayment{}, ErrVisitNotApproved
	}

	amount := visit.Totals().TotalFinalGross
	if !amount.IsPositive() && !u.cfg.Mock {
		return entities.VisitPayment{}, ErrNothingToCharge
	}

	reqMap := map[string]any{}
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil {
		// Valid JSON that is not an object, e.g. an array.
		return entities.VisitPayment{}, ErrInvalidProviderPayload
	}
	if !u.cfg.Mock {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Info("missing payment_method_id")
			return entities.VisitPayment{}, ErrInvalidProviderPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Info("missing or invalid payer")
			return entities.VisitPayment{}, ErrInvalidProviderPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = visitID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Visit %s", visitID)
	}
	// The stored visit is the source of truth for the amount.
	reqMap["transaction_amount"] = amount.InexactFloat64()

	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.VisitPayment{}, err
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if u.cfg.Mock {
		log.Info("mock mode enabled; skipping payment gateway")
		providerPaymentID, providerStatus, providerResp, err = mockProviderResponse(reqMap)
		if err != nil {
			return entities.VisitPayment{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Warn("payment gateway failed", zap.Error(err))
			return entities.VisitPayment{}, mapGatewayError(err)
		}
	}
	log.Info("payment gateway answered", zap.String("provider_payment_id", providerPaymentID), zap.String("provider_status", providerStatus))

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("provider response unmarshal failed", zap.Error(err))
	}

	p := entities.VisitPayment{
		ID:                 providerPaymentID,
		VisitID:            visitID,
		Date:               time.Now().UTC(),
		Status:             paymentStatusOf(providerStatus),
		Amount:             amount,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("payment repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.VisitPayment{}, err
	}
	log.Info("create-and-approve success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

func (u *VisitPaymentUseCase) GetByID(ctx context.Context, id string) (entities.VisitPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.VisitPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.VisitPayment{}, err
	}
	if p.ID == "" {
		return entities.VisitPayment{}, ErrVisitPaymentNotFound
	}
	return p, nil
}

func (u *VisitPaymentUseCase) ListByVisitID(ctx context.Context, visitID string) ([]entities.VisitPayment, error) {
	visitID = strings.TrimSpace(visitID)
	if visitID == "" {
		return nil, ErrInvalidPaymentVisitID
	}
	return u.repo.ListByVisitID(ctx, visitID)
}

func mockProviderResponse(reqMap map[string]any) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)

	resp := make(map[string]any, len(reqMap)+5)
	for k, v := range reqMap {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func paymentStatusOf(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, `"code":2002`):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayCustomerNotFound, err)
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, `"code":2034`):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayInvalidUsers, err)
	case strings.Contains(msg, `"error":"unauthorized"`) || strings.Contains(msg, `"status":401`):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, `"error":"bad_request"`) || strings.Contains(msg, `"status":400`):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayBadRequest, err)
	default:
		return err
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *VisitPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	if v, ok := m["payer"]; !ok || v == nil {
		m["payer"] = map[string]any{}
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Sandbox accepts either payer.id or payer.email; only fill the email
	// when both are missing.
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	switch {
	case u.cfg.TestPayerEmail != "":
		payer["email"] = u.cfg.TestPayerEmail
	case u.cfg.Sandbox():
		payer["email"] = sandboxPayerEmail
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email,
// which is what Mercado Pago expects for test users.
func (u *VisitPaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !u.cfg.Sandbox() || u.cfg.TestPayerUserID == "" || u.cfg.TestPayerEmail == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != u.cfg.TestPayerUserID {
		return
	}

	payer["email"] = u.cfg.TestPayerEmail
	delete(payer, "id")
	u.logger.Debug("mapped sandbox payer user id to email")
}
