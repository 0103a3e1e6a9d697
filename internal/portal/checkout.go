package portal

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/travel-tour/portal/internal/anomaly"
	"github.com/travel-tour/portal/internal/checkout"
	"github.com/travel-tour/portal/internal/identity"
	portalMiddleware "github.com/travel-tour/portal/internal/portal/middleware"
	"github.com/travel-tour/portal/internal/schema"
	"github.com/travel-tour/portal/internal/tools/responding"
)

const homePath = "/"

type checkoutHandlers struct {
	payments       checkout.PaymentInitiator
	store          checkout.PendingStore
	guard          checkout.Guard
	reporter       anomaly.Reporter
	verifier       *identity.Verifier
	currencySymbol string
}

// redirectNavigator keeps the target so the handler can answer with a redirect.
type redirectNavigator struct {
	url string
}

func (n *redirectNavigator) Navigate(url string) {
	n.url = url
}

type Alert struct {
	Title   string
	Message string
}

type alertNotifier struct {
	alert *Alert
}

func (n *alertNotifier) Alert(title string, message string) {
	n.alert = &Alert{Title: title, Message: message}
}

type confirmationView struct {
	BookingID string
	Summary   checkout.Summary
	Params    ConfirmationParams
	Alert     *Alert
}

type resumeView struct {
	Found bool
	Link  string
	State checkout.PendingBookingState
}

func (h *checkoutHandlers) open(
	ctx *gin.Context,
	navigator checkout.Navigator,
	notifier checkout.Notifier,
) (*checkout.Modal, *ConfirmationParams, bool) {
	logger := ctx.MustGet(responding.LoggerKey).(*zerolog.Logger)

	params, ok := ctx.MustGet(portalMiddleware.ParamsKey).(*ConfirmationParams)
	if !ok {
		responding.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
		return nil, nil, false
	}

	details, err := params.details(ctx.Param("bookingId"))
	if err != nil {
		responding.HandleError(ctx, http.StatusBadRequest, "Invalid booking date", err)
		return nil, nil, false
	}

	credentials := portalMiddleware.Credentials(ctx)

	modal := checkout.Open(details, params.Passenger, params.FromValue, checkout.Dependencies{
		Payments:    h.payments,
		Store:       h.store,
		Guard:       h.guard,
		Reporter:    h.reporter,
		Navigator:   navigator,
		Notifier:    notifier,
		Credentials: credentials,
		Owner:       checkout.Owner(h.verifier, credentials, portalMiddleware.SessionID(ctx)),
		Logger:      logger,
	})

	return modal, params, true
}

func (h *checkoutHandlers) view(modal *checkout.Modal, params *ConfirmationParams, alert *Alert) confirmationView {
	return confirmationView{
		BookingID: modal.Details().BookingID,
		Summary:   modal.Summary(h.currencySymbol),
		Params:    *params,
		Alert:     alert,
	}
}

func (h *checkoutHandlers) review(ctx *gin.Context) {
	modal, params, ok := h.open(ctx, &redirectNavigator{}, &alertNotifier{})
	if !ok {
		return
	}

	ctx.HTML(http.StatusOK, "confirmation.tmpl", h.view(modal, params, nil))
}

func (h *checkoutHandlers) confirm(ctx *gin.Context) {
	navigator := &redirectNavigator{}
	notifier := &alertNotifier{}

	modal, params, ok := h.open(ctx, navigator, notifier)
	if !ok {
		return
	}

	err := modal.Confirm(ctx.Request.Context())

	if navigator.url != "" {
		ctx.Redirect(http.StatusSeeOther, navigator.url)
		return
	}

	if err != nil {
		status := http.StatusBadGateway

		var responseError *schema.ResponseError
		if errors.As(err, &responseError) && responseError.IsTimeout() {
			status = http.StatusGatewayTimeout
		}

		ctx.HTML(status, "confirmation.tmpl", h.view(modal, params, notifier.alert))
		return
	}

	// closed without a payment link
	ctx.Redirect(http.StatusSeeOther, homePath)
}

func (h *checkoutHandlers) dismiss(ctx *gin.Context) {
	modal, _, ok := h.open(ctx, &redirectNavigator{}, &alertNotifier{})
	if !ok {
		return
	}

	modal.Dismiss()

	ctx.MustGet(responding.LoggerKey).(*zerolog.Logger).Debug().
		Str("state", modal.State().String()).
		Msg("Booking confirmation dismissed")

	ctx.Redirect(http.StatusSeeOther, homePath)
}

func (h *checkoutHandlers) resume(ctx *gin.Context) {
	owner := checkout.Owner(h.verifier, portalMiddleware.Credentials(ctx), portalMiddleware.SessionID(ctx))

	state, found, err := h.store.Take(ctx.Request.Context(), owner)
	if err != nil {
		responding.HandleError(ctx, http.StatusInternalServerError, "Failed reading pending booking", err)
		return
	}

	if !found {
		ctx.HTML(http.StatusNotFound, "resume.tmpl", resumeView{})
		return
	}

	link, err := checkout.ResumeLink(state)
	if err != nil {
		responding.HandleError(ctx, http.StatusInternalServerError, "Failed building resume link", err)
		return
	}

	ctx.HTML(http.StatusOK, "resume.tmpl", resumeView{
		Found: true,
		Link:  link,
		State: state,
	})
}
