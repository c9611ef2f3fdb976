package handlers

import (
	request "detailing_crm/internal/adapter/http/dto/request"
	response "detailing_crm/internal/adapter/http/dto/response"
	"detailing_crm/internal/usecase"
	"detailing_crm/pkg"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VisitPaymentHandler handles HTTP requests for visit payments.
type VisitPaymentHandler struct {
	usecase  usecase.IVisitPaymentUseCase
	logger   *zap.Logger
	mockMode bool
}

func NewVisitPaymentHandler(uc usecase.IVisitPaymentUseCase, logger *zap.Logger, mockMode bool) *VisitPaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VisitPaymentHandler{usecase: uc, logger: logger.Named("payment.handler"), mockMode: mockMode}
}

// CreatePayment charges the visit in the path.
//
// @Summary Charge an approved visit
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Visit ID"
// @Param payload body request.VisitPaymentCreateRequest true "Provider payload"
// @Success 200 {object} response.VisitPaymentResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/visits/{id}/payments [post]
func (h *VisitPaymentHandler) CreatePayment(c *gin.Context) {
	visitID := c.Param("id")
	log := h.logger.With(zap.String("visit_id", visitID))

	payload, err := readProviderPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Info("invalid payload", zap.Error(err))
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.Debug("payload invalid in mock mode; using empty payload", zap.Error(err))
		payload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), visitID, payload)
	if err != nil {
		log.Warn("create failed", zap.Error(err))
		appErr := mapVisitPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info("create success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromVisitPayment(created))
}

// ListPayments returns every payment of a visit.
//
// @Summary List the payments of a visit
// @Tags payments
// @Produce json
// @Param id path string true "Visit ID"
// @Success 200 {array} response.VisitPaymentResponse
// @Router /v1/visits/{id}/payments [get]
func (h *VisitPaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByVisitID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapVisitPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVisitPayments(payments))
}

// GetLatestPayment returns the most recent payment of a visit.
//
// @Summary Get the latest payment of a visit
// @Tags payments
// @Produce json
// @Param id path string true "Visit ID"
// @Success 200 {object} response.VisitPaymentResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/visits/{id}/payments/latest [get]
func (h *VisitPaymentHandler) GetLatestPayment(c *gin.Context) {
	visitID := c.Param("id")

	payments, err := h.usecase.ListByVisitID(c.Request.Context(), visitID)
	if err != nil {
		appErr := mapVisitPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromVisitPayment(latest))
}

// @Summary Get a payment
// @Tags payments
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Success 200 {object} response.VisitPaymentResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/payments/{payment_id} [get]
func (h *VisitPaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapVisitPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVisitPayment(p))
}

// readProviderPayload accepts either {"provider_payload": {...}} or the bare
// provider payload. An empty body becomes {}.
func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if _, ok := envelope["provider_payload"]; ok {
			var req request.VisitPaymentCreateRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				return nil, err
			}
			wrapped := strings.TrimSpace(string(req.ProviderPayload))
			if wrapped == "" || wrapped == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return req.ProviderPayload, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapVisitPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentVisitID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrVisitNotFound):
		return pkg.NewDomainErrorSimple("VISIT_NOT_FOUND", "Visit not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVisitNotApproved):
		return pkg.NewDomainErrorSimple("VISIT_NOT_APPROVED", "Visit not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToCharge):
		return pkg.NewDomainErrorSimple("NOTHING_TO_CHARGE", "Visit total is zero", http.StatusConflict)
	case errors.Is(err, usecase.ErrVisitPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
