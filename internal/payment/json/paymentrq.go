package json

type PaymentRQ struct {
	Passenger  int     `json:"passenger"`
	TotalPrice float64 `json:"totalPrice"`
}

type PaymentRS struct {
	PaymentLinkURL *string `json:"payment_link_url,omitempty"`
}
