package schema

type Key string

const (
	RequestingTypeKey Key = "requestingType"
)

type RequestName string

const (
	AdminBookings     RequestName = "adminBookings"
	PaymentInitiation RequestName = "paymentInitiation"
)

const (
	CorrelationIdKey Key = "correlationId"
)
