package instantanswer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"resty.dev/v3"
)

const (
	DefaultBaseURL   = "https://api.duckduckgo.com"
	DefaultUserAgent = "ddg/0.1"
	DefaultTimeout   = 30 * time.Second
)

type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

type Client struct {
	httpClient *resty.Client
}

func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	client := resty.New()
	client.SetBaseURL(config.BaseURL)
	client.SetHeader("User-Agent", config.UserAgent)
	client.SetTimeout(config.Timeout)

	return &Client{
		httpClient: client,
	}
}

func (client Client) Close() error {
	return client.httpClient.Close()
}

type QueryOptions struct {
	// SafeSearch suppresses adult content in the results.
	SafeSearch bool
	// AllowHTML keeps HTML markup in the returned text fields.
	AllowHTML bool
	// Meanings includes disambiguations in the results.
	Meanings bool
	// Params are passed to the API as extra URL parameters.
	Params map[string]string
}

// Query issues one GET against the Instant Answer endpoint. A network
// failure or a non-2xx status surfaces as a *TransportError and a body
// that is not valid JSON as a *DecodeError. Sparse responses decode to
// zero values without an error.
func (client *Client) Query(ctx context.Context, q string, opts QueryOptions) (Response, error) {
	params := map[string]string{
		"q":           q,
		"o":           "json",
		"no_redirect": "1",
		"kp":          boolParam(opts.SafeSearch, "1", "-1"),
		"no_html":     boolParam(opts.AllowHTML, "0", "1"),
		"d":           boolParam(opts.Meanings, "0", "1"),
	}
	for key, value := range opts.Params {
		params[key] = value
	}

	var response Response
	res, err := client.httpClient.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/")
	if err != nil {
		return response, &TransportError{Err: fmt.Errorf("httpClient.Get > %w", err)}
	}
	if res.IsError() {
		return response, &TransportError{StatusCode: res.StatusCode()}
	}

	body := res.Bytes()
	if err := json.Unmarshal(body, &response); err != nil {
		return response, &DecodeError{Body: body, Err: err}
	}

	slog.Default().Debug("instant answer response",
		"query", q,
		"kind", response.Kind,
	)
	return response, nil
}

func boolParam(on bool, yes, no string) string {
	if on {
		return yes
	}
	return no
}

var _ Querier = (*Client)(nil)
