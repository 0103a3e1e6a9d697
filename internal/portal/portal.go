package portal

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/travel-tour/portal/internal/admin"
	"github.com/travel-tour/portal/internal/anomaly"
	"github.com/travel-tour/portal/internal/bookings"
	"github.com/travel-tour/portal/internal/checkout"
	"github.com/travel-tour/portal/internal/identity"
	portalMiddleware "github.com/travel-tour/portal/internal/portal/middleware"
	"github.com/travel-tour/portal/internal/schema"
)

type BookingsLoader interface {
	LoadGroupedBookings(ctx context.Context, credentials schema.Credentials, logger *zerolog.Logger) bookings.Result
}

type Dependencies struct {
	Loader   BookingsLoader
	Renderer *admin.Renderer

	Payments checkout.PaymentInitiator
	Store    checkout.PendingStore
	Guard    checkout.Guard
	Reporter anomaly.Reporter
	// Verifies bearer tokens locally when set, the booking api checks them otherwise
	Verifier *identity.Verifier

	CurrencySymbol string
	SessionTtl     time.Duration
	SecureCookies  bool
}

func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	if deps.Reporter == nil {
		deps.Reporter = anomaly.Nop()
	}

	adminHandlers := &adminHandlers{
		loader:   deps.Loader,
		renderer: deps.Renderer,
	}

	adminGroup := router.Group(
		"/admin/bookings",
		portalMiddleware.InjectCredentials,
		portalMiddleware.RequireCredentials(deps.Verifier),
	)
	adminGroup.GET("", portalMiddleware.TapLogger("adminBookingsPage"), adminHandlers.page)
	adminGroup.GET("/table", portalMiddleware.TapLogger("adminBookingsTable"), adminHandlers.table)

	checkoutHandlers := &checkoutHandlers{
		payments:       deps.Payments,
		store:          deps.Store,
		guard:          deps.Guard,
		reporter:       deps.Reporter,
		verifier:       deps.Verifier,
		currencySymbol: deps.CurrencySymbol,
	}

	bookingGroup := router.Group(
		"/bookings",
		portalMiddleware.InjectCredentials,
		portalMiddleware.Session(deps.SessionTtl, deps.SecureCookies),
	)

	bookingGroup.GET("/resume",
		portalMiddleware.TapLogger("resumeBooking"),
		checkoutHandlers.resume,
	)

	bookingGroup.POST("/:bookingId/review",
		portalMiddleware.TapLogger("reviewBooking"),
		portalMiddleware.PrepareParams(ConfirmationParams{}),
		checkoutHandlers.review,
	)

	bookingGroup.POST("/:bookingId/confirm",
		portalMiddleware.TapLogger("confirmBooking"),
		portalMiddleware.PrepareParams(ConfirmationParams{}),
		checkoutHandlers.confirm,
	)

	bookingGroup.POST("/:bookingId/dismiss",
		portalMiddleware.TapLogger("dismissBooking"),
		portalMiddleware.PrepareParams(ConfirmationParams{}),
		checkoutHandlers.dismiss,
	)
}
