package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/oapi-codegen/runtime/types"
	"github.com/rs/zerolog"
	"github.com/travel-tour/portal/internal/anomaly"
	"github.com/travel-tour/portal/internal/payment"
	"github.com/travel-tour/portal/internal/paymentguard"
	"github.com/travel-tour/portal/internal/schema"
)

const AlertTitle = "Error initiating payment"

var (
	ErrNotReviewing      = errors.New("booking confirmation is not in review")
	ErrPaymentInitiation = errors.New("payment initiation failed")
)

type State int

const (
	Reviewing State = iota
	Redirecting
	Closed
)

func (s State) String() string {
	switch s {
	case Reviewing:
		return "reviewing"
	case Redirecting:
		return "redirecting"
	case Closed:
		return "closed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// BookingDetails of a finalized booking, as shown in the confirmation summary.
type BookingDetails struct {
	Name           string
	Price          float64
	Date           types.Date
	NumberOfPeople int
	TotalPrice     float64
	BookingID      string
}

// PendingBookingState is kept across the payment redirect so the booking context can
// be rebuilt when the user comes back.
type PendingBookingState struct {
	Passenger int    `json:"passenger" url:"passenger"`
	FromValue string `json:"fromValue" url:"from"`
}

type PaymentInitiator interface {
	InitiatePayment(
		ctx context.Context,
		bookingID string,
		request payment.Request,
		credentials schema.Credentials,
		logger *zerolog.Logger,
	) (payment.Response, error)
}

type PendingStore interface {
	Save(ctx context.Context, owner string, state PendingBookingState) error
	Take(ctx context.Context, owner string) (PendingBookingState, bool, error)
}

type Guard interface {
	Do(
		ctx context.Context,
		log *zerolog.Logger,
		key string,
		requester func() (*paymentguard.Result, error),
	) (*paymentguard.Result, error)
}

type Navigator interface {
	Navigate(url string)
}

type Notifier interface {
	Alert(title string, message string)
}

// Dependencies of a modal. Credentials and Owner are resolved by the caller at the
// request boundary.
type Dependencies struct {
	Payments    PaymentInitiator
	Store       PendingStore
	Guard       Guard
	Reporter    anomaly.Reporter
	Navigator   Navigator
	Notifier    Notifier
	Credentials schema.Credentials
	Owner       string
	Logger      *zerolog.Logger
}

type Modal struct {
	details   BookingDetails
	passenger int
	fromValue string
	deps      Dependencies

	mu    sync.Mutex
	state State
}

func Open(details BookingDetails, passenger int, fromValue string, deps Dependencies) *Modal {
	if deps.Reporter == nil {
		deps.Reporter = anomaly.Nop()
	}

	if deps.Logger == nil {
		nop := zerolog.Nop()
		deps.Logger = &nop
	}

	return &Modal{
		details:   details,
		passenger: passenger,
		fromValue: fromValue,
		deps:      deps,
		state:     Reviewing,
	}
}

func (m *Modal) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Modal) Details() BookingDetails {
	return m.details
}

// Dismiss closes a modal under review. It has no other effect.
func (m *Modal) Dismiss() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == Reviewing {
		m.state = Closed
	}
}

// Confirm initiates the payment of the booking and sends the browser to the payment
// page. A failure leaves the modal in review so the user can try again.
func (m *Modal) Confirm(ctx context.Context) error {
	m.mu.Lock()
	if m.state != Reviewing {
		m.mu.Unlock()
		return ErrNotReviewing
	}
	// the call is in flight, a second confirm is refused
	m.state = Redirecting
	m.mu.Unlock()

	link, err := m.initiate(ctx)
	if err != nil {
		m.fail(err)
		return fmt.Errorf("%w: %w", ErrPaymentInitiation, err)
	}

	if link == "" {
		m.deps.Reporter.Report(ctx, anomaly.New(
			anomaly.MissingPaymentLink,
			m.details.BookingID,
			"payment initiated without a payment link",
		))
		m.setState(Closed)
		return nil
	}

	state := PendingBookingState{
		Passenger: m.passenger,
		FromValue: m.fromValue,
	}

	if err := m.deps.Store.Save(ctx, m.deps.Owner, state); err != nil {
		m.fail(err)
		return fmt.Errorf("%w: %w", ErrPaymentInitiation, err)
	}

	m.setState(Closed)
	m.deps.Navigator.Navigate(link)

	return nil
}

func (m *Modal) initiate(ctx context.Context) (string, error) {
	requester := func() (*paymentguard.Result, error) {
		response, err := m.deps.Payments.InitiatePayment(
			ctx,
			m.details.BookingID,
			payment.Request{
				Passenger:  m.passenger,
				TotalPrice: m.details.TotalPrice,
			},
			m.deps.Credentials,
			m.deps.Logger,
		)
		if err != nil {
			return nil, err
		}

		return &paymentguard.Result{PaymentLinkURL: response.PaymentLinkURL}, nil
	}

	var (
		result *paymentguard.Result
		err    error
	)

	if m.deps.Guard != nil {
		key := paymentguard.Key(
			Caller(m.deps.Credentials, m.deps.Owner),
			m.details.BookingID,
			m.passenger,
			m.details.TotalPrice,
		)
		result, err = m.deps.Guard.Do(ctx, m.deps.Logger, key, requester)
	} else {
		result, err = requester()
	}

	if err != nil {
		return "", err
	}

	return result.PaymentLinkURL, nil
}

func (m *Modal) fail(err error) {
	m.deps.Logger.Err(err).
		Str("bookingId", m.details.BookingID).
		Msg("Error initiating payment")

	m.setState(Reviewing)
	m.deps.Notifier.Alert(AlertTitle, alertMessage(err))
}

func (m *Modal) setState(state State) {
	m.mu.Lock()
	m.state = state
	m.mu.Unlock()
}

// alertMessage prefers the message the booking api sent back.
func alertMessage(err error) string {
	var responseError *schema.ResponseError
	if errors.As(err, &responseError) {
		return responseError.Message
	}
	return err.Error()
}
