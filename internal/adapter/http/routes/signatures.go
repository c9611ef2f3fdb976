package routes

import (
	"detailing_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addSignatureRoutes(rg *gin.RouterGroup, h *handlers.SignatureHandler) {
	signatures := rg.Group(PathSignatures)
	{
		signatures.POST("", h.RequestSignature)
		signatures.GET("/:id", h.GetSession)
		signatures.POST("/:id/cancel", h.CancelSignature)
		signatures.GET("/:id/document", h.DownloadSignedDocument)
	}

	rg.GET(PathProtocols+"/:protocol_id"+PathSignatures, h.ListByProtocol)
}

func addPricingRoutes(rg *gin.RouterGroup, h *handlers.PricingHandler) {
	rg.POST(PathPricing+"/quote", h.Quote)
}
