package handlers

import (
	request "detailing_crm/internal/adapter/http/dto/request"
	response "detailing_crm/internal/adapter/http/dto/response"
	"detailing_crm/internal/domain/entities"
	"detailing_crm/internal/usecase"
	"detailing_crm/pkg"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidSignaturePayload = pkg.NewDomainErrorSimple("INVALID_SIGNATURE_INPUT", "Invalid signature payload", http.StatusBadRequest)

// SignatureHandler exposes the tablet signature workflow.
type SignatureHandler struct {
	usecase usecase.ISignatureUseCase
	logger  *zap.Logger
}

func NewSignatureHandler(uc usecase.ISignatureUseCase, logger *zap.Logger) *SignatureHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SignatureHandler{usecase: uc, logger: logger.Named("signature.handler")}
}

// RequestSignature sends a protocol to a tablet and starts watching the
// session.
//
// @Summary Request a tablet signature
// @Tags signatures
// @Accept json
// @Produce json
// @Param payload body request.SignatureCreateRequest true "Signature request"
// @Success 201 {object} response.SignatureSessionResponse
// @Failure 409 {object} pkg.HTTPError
// @Failure 502 {object} pkg.HTTPError
// @Router /v1/signatures [post]
func (h *SignatureHandler) RequestSignature(c *gin.Context) {
	var payload request.SignatureCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSignaturePayload.HTTPStatus, errInvalidSignaturePayload.ToHTTPError())
		return
	}

	session, err := h.usecase.RequestSignature(c.Request.Context(), payload.ToEntity())
	if err != nil {
		h.logger.Warn("request failed", zap.Int64("protocol_id", payload.ProtocolID), zap.String("tablet_id", payload.TabletID), zap.Error(err))
		appErr := mapSignatureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSignatureSession(session))
}

// @Summary Get a signature session
// @Tags signatures
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.SignatureSessionResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/signatures/{id} [get]
func (h *SignatureHandler) GetSession(c *gin.Context) {
	session, err := h.usecase.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSignatureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSignatureSession(session))
}

// @Summary List the signature sessions of a protocol
// @Tags signatures
// @Produce json
// @Param protocol_id path integer true "Protocol ID"
// @Success 200 {array} response.SignatureSessionResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /v1/protocols/{protocol_id}/signatures [get]
func (h *SignatureHandler) ListByProtocol(c *gin.Context) {
	protocolID, err := strconv.ParseInt(c.Param("protocol_id"), 10, 64)
	if err != nil {
		appErr := mapSignatureError(usecase.ErrInvalidProtocolID)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	sessions, err := h.usecase.ListByProtocolID(c.Request.Context(), protocolID)
	if err != nil {
		appErr := mapSignatureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSignatureSessions(sessions))
}

// CancelSignature cancels the session on the tablet. The body is optional.
//
// @Summary Cancel a signature session
// @Tags signatures
// @Accept json
// @Param id path string true "Session ID"
// @Param payload body request.SignatureCancelRequest false "Reason"
// @Success 204
// @Failure 409 {object} pkg.HTTPError
// @Failure 502 {object} pkg.HTTPError
// @Router /v1/signatures/{id}/cancel [post]
func (h *SignatureHandler) CancelSignature(c *gin.Context) {
	var payload request.SignatureCancelRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidSignaturePayload.HTTPStatus, errInvalidSignaturePayload.ToHTTPError())
			return
		}
	}

	if err := h.usecase.CancelSignature(c.Request.Context(), c.Param("id"), payload.Reason); err != nil {
		h.logger.Warn("cancel failed", zap.String("session_id", c.Param("id")), zap.Error(err))
		appErr := mapSignatureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// DownloadSignedDocument streams the signed protocol PDF as an attachment.
//
// @Summary Download the signed protocol
// @Tags signatures
// @Produce application/pdf
// @Param id path string true "Session ID"
// @Success 200 {file} file
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/signatures/{id}/document [get]
func (h *SignatureHandler) DownloadSignedDocument(c *gin.Context) {
	doc, err := h.usecase.DownloadSignedDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSignatureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}

func mapSignatureError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidSignatureRequest), errors.Is(err, usecase.ErrInvalidSignatureSessionID), errors.Is(err, usecase.ErrInvalidProtocolID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSignatureSessionNotFound):
		return pkg.NewDomainErrorSimple("SIGNATURE_SESSION_NOT_FOUND", "Signature session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTabletBusy):
		return pkg.NewDomainErrorSimple("TABLET_BUSY", "The tablet is already showing a document for signature", http.StatusConflict)
	case errors.Is(err, usecase.ErrSignatureSessionTerminal):
		return pkg.NewDomainErrorSimple("SIGNATURE_SESSION_FINISHED", "The signature session has already finished", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoActiveSignature):
		return pkg.NewDomainErrorSimple("SIGNATURE_SESSION_NOT_ACTIVE", "The signature session is not being tracked", http.StatusConflict)
	case errors.Is(err, usecase.ErrSignatureNotCompleted):
		return pkg.NewDomainErrorSimple("SIGNATURE_NOT_COMPLETED", "The document has not been signed yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrSignatureRequestFailed):
		return pkg.NewDomainError("SIGNATURE_REQUEST_FAILED", "Could not send the document to the tablet", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrSignatureCancelFailed):
		return pkg.NewDomainError("SIGNATURE_CANCEL_FAILED", "Could not cancel the signature on the tablet", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrSignatureDownloadFailed):
		return pkg.NewDomainError("SIGNATURE_DOWNLOAD_FAILED", "Could not download the signed document", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrSignatureStatusFailed):
		return pkg.NewDomainError("SIGNATURE_STATUS_FAILED", "Could not check the signature status", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
