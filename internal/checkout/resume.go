package checkout

import (
	"github.com/google/go-querystring/query"
)

// ResumeLink points back to the home page with the booking context of the state.
func ResumeLink(state PendingBookingState) (string, error) {
	values, err := query.Values(state)
	if err != nil {
		return "", err
	}

	return "/?" + values.Encode(), nil
}
