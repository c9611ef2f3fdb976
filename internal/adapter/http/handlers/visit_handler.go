package handlers

import (
	"context"
	request "detailing_crm/internal/adapter/http/dto/request"
	response "detailing_crm/internal/adapter/http/dto/response"
	"detailing_crm/internal/domain/entities"
	"detailing_crm/internal/domain/pricing"
	"detailing_crm/internal/usecase"
	"detailing_crm/pkg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidVisitPayload = pkg.NewDomainErrorSimple("INVALID_VISIT_INPUT", "Invalid visit payload", http.StatusBadRequest)
	errInvalidDiscountType = pkg.NewDomainErrorSimple("INVALID_DISCOUNT_TYPE", "Discount type must be PERCENTAGE, AMOUNT or FIXED_PRICE", http.StatusBadRequest)
)

// VisitHandler handles HTTP requests for visits and the services on them.
type VisitHandler struct {
	usecase usecase.IVisitUseCase
}

func NewVisitHandler(uc usecase.IVisitUseCase) *VisitHandler {
	return &VisitHandler{usecase: uc}
}

// CreateVisit creates a pending visit with an optional initial service list.
//
// @Summary Create a visit
// @Tags visits
// @Accept json
// @Produce json
// @Param payload body request.VisitCreateRequest true "Visit"
// @Success 201 {object} response.VisitResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /v1/visits [post]
func (h *VisitHandler) CreateVisit(c *gin.Context) {
	var payload request.VisitCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVisitPayload.HTTPStatus, errInvalidVisitPayload.ToHTTPError())
		return
	}

	items, err := payload.ToLineItems()
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	visit, err := h.usecase.CreateVisit(c.Request.Context(), payload.ClientID, payload.VehicleID, items)
	if err != nil {
		appErr := mapVisitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromVisit(visit))
}

// @Summary Get a visit
// @Tags visits
// @Produce json
// @Param id path string true "Visit ID"
// @Success 200 {object} response.VisitResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/visits/{id} [get]
func (h *VisitHandler) GetVisit(c *gin.Context) {
	h.respondVisit(c, http.StatusOK, func(ctx context.Context) (entities.Visit, error) {
		return h.usecase.GetByID(ctx, c.Param("id"))
	})
}

// @Summary Approve a visit
// @Tags visits
// @Produce json
// @Param id path string true "Visit ID"
// @Success 200 {object} response.VisitResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/visits/{id}/approve [patch]
func (h *VisitHandler) ApproveVisit(c *gin.Context) {
	h.patchVisitStatus(c, h.usecase.ApproveByID)
}

// @Summary Reject a visit
// @Tags visits
// @Produce json
// @Param id path string true "Visit ID"
// @Success 200 {object} response.VisitResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/visits/{id}/reject [patch]
func (h *VisitHandler) RejectVisit(c *gin.Context) {
	h.patchVisitStatus(c, h.usecase.RejectByID)
}

// @Summary Cancel a visit
// @Tags visits
// @Produce json
// @Param id path string true "Visit ID"
// @Success 200 {object} response.VisitResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/visits/{id}/cancel [patch]
func (h *VisitHandler) CancelVisit(c *gin.Context) {
	h.patchVisitStatus(c, h.usecase.CancelByID)
}

func (h *VisitHandler) patchVisitStatus(c *gin.Context, updater func(ctx context.Context, id string) (entities.Visit, error)) {
	h.respondVisit(c, http.StatusOK, func(ctx context.Context) (entities.Visit, error) {
		return updater(ctx, c.Param("id"))
	})
}

// AddService appends a service. Services sent without an id are treated as
// free text and get a generated one.
//
// @Summary Add a service to a visit
// @Tags visits
// @Accept json
// @Produce json
// @Param id path string true "Visit ID"
// @Param payload body request.ServiceRequest true "Service"
// @Success 201 {object} response.VisitResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/visits/{id}/services [post]
func (h *VisitHandler) AddService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVisitPayload.HTTPStatus, errInvalidVisitPayload.ToHTTPError())
		return
	}
	item, err := payload.ToLineItem()
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.respondVisit(c, http.StatusCreated, func(ctx context.Context) (entities.Visit, error) {
		return h.usecase.AddService(ctx, c.Param("id"), item)
	})
}

// @Summary Remove a service from a visit
// @Tags visits
// @Produce json
// @Param id path string true "Visit ID"
// @Param service_id path string true "Service ID"
// @Success 200 {object} response.VisitResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/visits/{id}/services/{service_id} [delete]
func (h *VisitHandler) RemoveService(c *gin.Context) {
	h.respondVisit(c, http.StatusOK, func(ctx context.Context) (entities.Visit, error) {
		return h.usecase.RemoveService(ctx, c.Param("id"), c.Param("service_id"))
	})
}

// @Summary Change the base net price of a service
// @Tags visits
// @Accept json
// @Produce json
// @Param id path string true "Visit ID"
// @Param service_id path string true "Service ID"
// @Param payload body request.BasePriceRequest true "Net amount"
// @Success 200 {object} response.VisitResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/visits/{id}/services/{service_id}/base-price [patch]
func (h *VisitHandler) UpdateBasePrice(c *gin.Context) {
	var payload request.BasePriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVisitPayload.HTTPStatus, errInvalidVisitPayload.ToHTTPError())
		return
	}
	h.respondVisit(c, http.StatusOK, func(ctx context.Context) (entities.Visit, error) {
		return h.usecase.UpdateBasePrice(ctx, c.Param("id"), c.Param("service_id"), *payload.NetAmount)
	})
}

// @Summary Change the discount type of a service
// @Tags visits
// @Accept json
// @Produce json
// @Param id path string true "Visit ID"
// @Param service_id path string true "Service ID"
// @Param payload body request.DiscountTypeRequest true "Discount type"
// @Success 200 {object} response.VisitResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/visits/{id}/services/{service_id}/discount-type [patch]
func (h *VisitHandler) UpdateDiscountType(c *gin.Context) {
	var payload request.DiscountTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVisitPayload.HTTPStatus, errInvalidVisitPayload.ToHTTPError())
		return
	}
	t, err := request.ResolveDiscountType(payload.Type)
	if err != nil {
		c.JSON(errInvalidDiscountType.HTTPStatus, errInvalidDiscountType.ToHTTPError())
		return
	}
	h.respondVisit(c, http.StatusOK, func(ctx context.Context) (entities.Visit, error) {
		return h.usecase.UpdateDiscountType(ctx, c.Param("id"), c.Param("service_id"), t)
	})
}

// @Summary Change the discount value of a service
// @Tags visits
// @Accept json
// @Produce json
// @Param id path string true "Visit ID"
// @Param service_id path string true "Service ID"
// @Param payload body request.DiscountValueRequest true "Discount value"
// @Success 200 {object} response.VisitResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/visits/{id}/services/{service_id}/discount-value [patch]
func (h *VisitHandler) UpdateDiscountValue(c *gin.Context) {
	var payload request.DiscountValueRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVisitPayload.HTTPStatus, errInvalidVisitPayload.ToHTTPError())
		return
	}
	h.respondVisit(c, http.StatusOK, func(ctx context.Context) (entities.Visit, error) {
		return h.usecase.UpdateDiscountValue(ctx, c.Param("id"), c.Param("service_id"), *payload.Value)
	})
}

// @Summary Change the note of a service
// @Tags visits
// @Accept json
// @Produce json
// @Param id path string true "Visit ID"
// @Param service_id path string true "Service ID"
// @Param payload body request.NoteRequest true "Note"
// @Success 200 {object} response.VisitResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/visits/{id}/services/{service_id}/note [patch]
func (h *VisitHandler) UpdateNote(c *gin.Context) {
	var payload request.NoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVisitPayload.HTTPStatus, errInvalidVisitPayload.ToHTTPError())
		return
	}
	h.respondVisit(c, http.StatusOK, func(ctx context.Context) (entities.Visit, error) {
		return h.usecase.UpdateNote(ctx, c.Param("id"), c.Param("service_id"), payload.Note)
	})
}

// @Summary Get visit totals
// @Tags visits
// @Produce json
// @Param id path string true "Visit ID"
// @Success 200 {object} response.TotalsResponse
// @Router /v1/visits/{id}/totals [get]
func (h *VisitHandler) GetTotals(c *gin.Context) {
	totals, err := h.usecase.Totals(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapVisitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTotals(totals))
}

func (h *VisitHandler) respondVisit(c *gin.Context, status int, fn func(ctx context.Context) (entities.Visit, error)) {
	visit, err := fn(c.Request.Context())
	if err != nil {
		appErr := mapVisitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(status, response.FromVisit(visit))
}

func mapRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrUnknownDiscountType):
		return errInvalidDiscountType
	case errors.Is(err, pricing.ErrDuplicateLineItem):
		return pkg.NewDomainErrorSimple("SERVICE_ALREADY_EXISTS", "Service already on the list", http.StatusConflict)
	default:
		return errInvalidVisitPayload
	}
}

func mapVisitError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVisitID), errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidServiceName),
		errors.Is(err, usecase.ErrInvalidBasePrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVisitNotFound):
		return pkg.NewDomainErrorSimple("VISIT_NOT_FOUND", "Visit not found", http.StatusNotFound)
	case errors.Is(err, pricing.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found on this visit", http.StatusNotFound)
	case errors.Is(err, pricing.ErrDuplicateLineItem):
		return pkg.NewDomainErrorSimple("SERVICE_ALREADY_EXISTS", "Service already on the list", http.StatusConflict)
	case errors.Is(err, usecase.ErrVisitNotEditable):
		return pkg.NewDomainErrorSimple("VISIT_NOT_EDITABLE", "Services can only change while the visit is pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidVisitTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Visit cannot move to that status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
