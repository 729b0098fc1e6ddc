package handler

import (
	"homegate/internal/gateway/service"
	"homegate/internal/gateway/validator"
	"homegate/pkg/cache"
	"homegate/pkg/client"
	"homegate/pkg/logger"
	"homegate/pkg/middleware"
	"homegate/pkg/model"
	"homegate/pkg/session"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	sessions  *session.Store
	guard     *middleware.Guard
	api       *client.API
	bookings  *service.Bookings
	payments  *service.Payments
	dashboard *service.Dashboard
	forms     *validator.FormValidator
	cache     *cache.Store
	log       *logger.Logger
}

func New(
	sessions *session.Store,
	guard *middleware.Guard,
	api *client.API,
	bookings *service.Bookings,
	payments *service.Payments,
	dashboard *service.Dashboard,
	forms *validator.FormValidator,
	cacheStore *cache.Store,
	log *logger.Logger,
) *Handler {
	return &Handler{
		sessions:  sessions,
		guard:     guard,
		api:       api,
		bookings:  bookings,
		payments:  payments,
		dashboard: dashboard,
		forms:     forms,
		cache:     cacheStore,
		log:       log,
	}
}

var agentOrAdmin = []model.Role{model.RoleAgent, model.RoleAdmin}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)

	// session
	router.POST("/login", h.Login)
	router.POST("/signup", h.Signup)
	router.POST("/logout", h.Logout)
	router.GET("/me", h.guard.RequireAuth(h.Me))

	// public browsing
	router.GET("/properties", h.ListProperties)
	router.GET("/properties/:id", h.GetProperty)
	router.GET("/properties/:id/reviews", h.ListReviews)
	router.GET("/properties/:id/review-stats", h.ReviewStats)

	// listing management
	router.POST("/properties", h.guard.RequireAnyRole(agentOrAdmin, h.CreateProperty))
	router.PATCH("/properties/:id", h.guard.RequireAnyRole(agentOrAdmin, h.UpdateProperty))
	router.DELETE("/properties/:id", h.guard.RequireAnyRole(agentOrAdmin, h.DeleteProperty))

	// dashboards
	router.GET("/dashboard", h.guard.RequireAuth(h.DashboardSummary))
	router.GET("/dashboard/bookings", h.guard.RequireAuth(h.ListBookings))
	router.GET("/dashboard/rentals", h.guard.RequireAuth(h.ListRentals))
	router.GET("/dashboard/purchases", h.guard.RequireAuth(h.ListPurchases))

	// booking workflow
	router.POST("/bookings", h.guard.RequireRole(model.RoleUser, h.CreateBooking))
	router.GET("/bookings/:id", h.guard.RequireAuth(h.GetBooking))
	router.POST("/bookings/:id/cancel", h.guard.RequireAuth(h.CancelBooking))
	router.POST("/bookings/:id/confirm", h.guard.RequireAnyRole(agentOrAdmin, h.ConfirmBooking))
	router.POST("/bookings/:id/reject", h.guard.RequireAnyRole(agentOrAdmin, h.RejectBooking))
	router.POST("/bookings/:id/confirm-payment", h.guard.RequireAnyRole(agentOrAdmin, h.ConfirmBookingPayment))

	// payment sub-flow
	router.POST("/bookings/:id/pay", h.guard.RequireRole(model.RoleUser, h.PayNow))
	router.GET("/payments/verify/:reference", h.guard.RequireAuth(h.VerifyPayment))
	router.GET("/payments/history", h.guard.RequireAuth(h.PaymentHistory))

	// engagement
	router.GET("/wishlist", h.guard.RequireAuth(h.ListWishlist))
	router.POST("/wishlist/toggle", h.guard.RequireAuth(h.ToggleWishlist))
	router.GET("/wishlist/check/:propertyId", h.guard.RequireAuth(h.CheckWishlist))
	router.POST("/reviews", h.guard.RequireAuth(h.CreateReview))
	router.GET("/notifications", h.guard.RequireAuth(h.ListNotifications))
	router.POST("/notifications/:id/read", h.guard.RequireAuth(h.MarkNotificationRead))

	// agent applications
	router.POST("/agent-applications", h.guard.RequireRole(model.RoleUser, h.ApplyForAgent))
	router.GET("/admin/agent-applications", h.guard.RequireRole(model.RoleAdmin, h.PendingAgentApplications))
	router.POST("/admin/agent-applications/:id/approve", h.guard.RequireRole(model.RoleAdmin, h.ApproveAgentApplication))
	router.POST("/admin/agent-applications/:id/reject", h.guard.RequireRole(model.RoleAdmin, h.RejectAgentApplication))
}
