package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/travel-tour/portal/internal/identity"
	"github.com/travel-tour/portal/internal/schema"
	"github.com/travel-tour/portal/internal/tools/responding"
)

const (
	CredentialsKey string = "credentials"
	SessionKey     string = "sessionId"

	TokenCookie   = "token"
	SessionCookie = "portal_session"
)

// InjectCredentials reads the bearer token once, from the token cookie or the
// Authorization header, and keeps it for the handlers.
func InjectCredentials(c *gin.Context) {
	token, err := c.Cookie(TokenCookie)
	if err != nil || token == "" {
		token = bearerToken(c.GetHeader("Authorization"))
	}

	c.Set(CredentialsKey, schema.Credentials{Token: token})
}

// RequireCredentials refuses requests without a bearer token. With a verifier the
// token must also carry a valid signature.
func RequireCredentials(verifier *identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		credentials := Credentials(c)

		if credentials.IsZero() {
			responding.HandleError(c, http.StatusUnauthorized, "Missing credentials", identity.ErrMissingToken)
			return
		}

		if verifier.Enabled() {
			if _, err := verifier.Verify(credentials.Token); err != nil {
				responding.HandleError(c, http.StatusUnauthorized, "Invalid credentials", err)
				return
			}
		}
	}
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// Session makes sure the browser carries a session id cookie.
func Session(maxAge time.Duration, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if _, parseErr := uuid.Parse(sessionID); err != nil || parseErr != nil {
			sessionID = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, sessionID, int(maxAge.Seconds()), "/", "", secure, true)
		}

		c.Set(SessionKey, sessionID)
	}
}

func Credentials(c *gin.Context) schema.Credentials {
	credentials, _ := c.Get(CredentialsKey)
	value, _ := credentials.(schema.Credentials)
	return value
}

func SessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}
