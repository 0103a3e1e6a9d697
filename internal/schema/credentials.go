package schema

// Credentials carry the bearer token of the caller. They are resolved once at the
// request boundary and passed down explicitly.
type Credentials struct {
	Token string
}

func (c Credentials) IsZero() bool {
	return c.Token == ""
}

func (c Credentials) AuthorizationHeader() string {
	return "Bearer " + c.Token
}
