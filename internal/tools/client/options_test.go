package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		options, err := NewOptions(WithBaseURL("https://api.example.com/"))

		assert.NoError(t, err)
		assert.Equal(t, "travel-portal", options.Name())
		assert.Equal(t, "travel-portal-client", options.UserAgent())
		assert.Equal(t, "https://api.example.com", options.BaseURL())
		assert.Equal(t, DefaultTimeout, options.Timeout())
	})

	t.Run("should override defaults", func(t *testing.T) {
		options, err := NewOptions(
			WithBaseURL("http://localhost:5000"),
			WithTimeout(time.Second),
			WithName("admin"),
		)

		assert.NoError(t, err)
		assert.Equal(t, "admin", options.Name())
		assert.Equal(t, time.Second, options.Timeout())
	})

	t.Run("should fail without a base url", func(t *testing.T) {
		options, err := NewOptions()

		assert.Nil(t, options)
		assert.ErrorIs(t, err, ErrMissingBaseURL)
	})

	t.Run("should fail with an invalid base url", func(t *testing.T) {
		options, err := NewOptions(WithBaseURL("not a url"))

		assert.Nil(t, options)
		assert.Error(t, err)
	})
}
