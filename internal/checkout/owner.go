package checkout

import (
	"github.com/google/uuid"
	"github.com/travel-tour/portal/internal/identity"
	"github.com/travel-tour/portal/internal/schema"
)

// Owner names whose pending booking state this is: the user of a verified bearer
// token, otherwise the server issued browser session.
func Owner(verifier *identity.Verifier, credentials schema.Credentials, sessionID string) string {
	if verifier.Enabled() {
		if subject := verifier.Subject(credentials.Token); subject != "" {
			return "user:" + subject
		}
	}

	if sessionID != "" {
		return "session:" + sessionID
	}

	return ""
}

var callerNamespace = uuid.MustParse("5b0cbcb4-6f51-4f2e-9a55-2f4d5e1c9a01")

// Caller names who submits a payment, derived from the bearer token so no two tokens
// share a stored payment result. Requests without a token fall back to the owner.
func Caller(credentials schema.Credentials, owner string) string {
	if credentials.Token != "" {
		return "token:" + uuid.NewSHA1(callerNamespace, []byte(credentials.Token)).String()
	}

	return owner
}
