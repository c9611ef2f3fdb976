package handlers

import (
	request "detailing_crm/internal/adapter/http/dto/request"
	response "detailing_crm/internal/adapter/http/dto/response"
	"detailing_crm/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// PricingHandler prices service lists that are not stored on a visit.
type PricingHandler struct{}

func NewPricingHandler() *PricingHandler {
	return &PricingHandler{}
}

// Quote returns the final price of every service and the list totals.
//
// @Summary Price a list of services
// @Tags pricing
// @Accept json
// @Produce json
// @Param payload body request.QuoteRequest true "Services"
// @Success 200 {object} response.QuoteResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /v1/pricing/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	items, err := payload.ToLineItems()
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(items))
}
