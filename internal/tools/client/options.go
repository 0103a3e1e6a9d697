package client

import (
	"errors"
	"net/url"
	"strings"
	"time"
)

const DefaultTimeout = 3 * time.Second

var ErrMissingBaseURL = errors.New("booking api base url is missing")

type OptionFunc func(o *Options)

type Options struct {
	// Name of the caller service, used for logging and the user agent
	name string

	// BaseURL - full URL to the booking API (including protocol)
	baseURL string

	// Timeout - if not set, then default timeout is used
	timeout time.Duration
}

func WithName(name string) OptionFunc {
	return func(o *Options) {
		o.name = name
	}
}

func WithBaseURL(baseURL string) OptionFunc {
	return func(o *Options) {
		o.baseURL = baseURL
	}
}

func WithTimeout(timeout time.Duration) OptionFunc {
	return func(o *Options) {
		o.timeout = timeout
	}
}

func NewOptions(optionFuncs ...OptionFunc) (*Options, error) {
	options := &Options{
		name: "travel-portal",
	}

	for _, optionFunc := range optionFuncs {
		optionFunc(options)
	}

	if options.baseURL == "" {
		return nil, ErrMissingBaseURL
	}

	if _, err := url.ParseRequestURI(options.baseURL); err != nil {
		return nil, err
	}

	return options, nil
}

func (o *Options) Name() string {
	return o.name
}

func (o *Options) UserAgent() string {
	return o.name + "-client"
}

// BaseURL without the trailing slash, so paths can be appended directly
func (o *Options) BaseURL() string {
	return strings.TrimRight(o.baseURL, "/")
}

func (o *Options) Timeout() time.Duration {
	if o.timeout != 0 {
		return o.timeout
	}
	return DefaultTimeout
}
