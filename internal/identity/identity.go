package identity

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrMissingToken  = errors.New("missing bearer token")
	ErrInvalidToken  = errors.New("invalid bearer token")
	ErrMissingSecret = errors.New("no token secret configured")
)

// claims that may carry the user id, in order of preference
var subjectClaims = []string{"sub", "id", "_id", "userId"}

// Verifier checks HMAC signed bearer tokens issued by the booking api. A nil Verifier
// verifies nothing.
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewVerifier returns nil for an empty secret.
func NewVerifier(secret string) *Verifier {
	if secret == "" {
		return nil
	}

	return &Verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"})),
	}
}

func (v *Verifier) Enabled() bool {
	return v != nil
}

// Verify checks the signature and the expiry of the token.
func (v *Verifier) Verify(token string) (jwt.MapClaims, error) {
	if v == nil {
		return nil, ErrMissingSecret
	}

	if token == "" {
		return nil, ErrMissingToken
	}

	claims := jwt.MapClaims{}
	_, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return claims, nil
}

// Subject returns the user a verified token was issued for, or an empty string.
func (v *Verifier) Subject(token string) string {
	claims, err := v.Verify(token)
	if err != nil {
		return ""
	}

	for _, name := range subjectClaims {
		switch value := claims[name].(type) {
		case string:
			if value != "" {
				return value
			}
		case float64:
			return fmt.Sprintf("%.0f", value)
		}
	}

	return ""
}
