package routes

import (
	"detailing_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addVisitRoutes(rg *gin.RouterGroup, visitHandler *handlers.VisitHandler, paymentHandler *handlers.VisitPaymentHandler) {
	visits := rg.Group(PathVisits)
	{
		visits.POST("", visitHandler.CreateVisit)
		visits.GET("/:id", visitHandler.GetVisit)
		visits.PATCH("/:id/approve", visitHandler.ApproveVisit)
		visits.PATCH("/:id/reject", visitHandler.RejectVisit)
		visits.PATCH("/:id/cancel", visitHandler.CancelVisit)
		visits.GET("/:id/totals", visitHandler.GetTotals)

		visits.POST("/:id/services", visitHandler.AddService)
		visits.DELETE("/:id/services/:service_id", visitHandler.RemoveService)
		visits.PATCH("/:id/services/:service_id/base-price", visitHandler.UpdateBasePrice)
		visits.PATCH("/:id/services/:service_id/discount-type", visitHandler.UpdateDiscountType)
		visits.PATCH("/:id/services/:service_id/discount-value", visitHandler.UpdateDiscountValue)
		visits.PATCH("/:id/services/:service_id/note", visitHandler.UpdateNote)
	}

	if paymentHandler == nil {
		return
	}
	visits.POST("/:id"+PathPayments, paymentHandler.CreatePayment)
	visits.GET("/:id"+PathPayments, paymentHandler.ListPayments)
	visits.GET("/:id"+PathPayments+"/latest", paymentHandler.GetLatestPayment)

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:payment_id", paymentHandler.GetPayment)
	}
}
