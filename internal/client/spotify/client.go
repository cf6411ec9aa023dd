package spotify

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/oshokin/spotify-preview/internal/config"
	"github.com/oshokin/spotify-preview/internal/logger"
	http_transport "github.com/oshokin/spotify-preview/internal/transport/http"
	"github.com/oshokin/spotify-preview/internal/utils"
)

// Client defines the interface for fetching public Spotify embed pages.
type Client interface {
	// FetchEmbedPage retrieves the embed page document for the specified track ID.
	FetchEmbedPage(ctx context.Context, trackID string) (string, error)
}

// ClientImpl implements the Client interface against the Spotify web player.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// baseURL is the base URL for embed page requests.
	baseURL string
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
	// maxResponseSize limits how many bytes of the embed page are read.
	maxResponseSize int64
}

// NewClient creates and returns a new instance of ClientImpl.
// It initializes the HTTP client with the provided configuration.
func NewClient(cfg *config.Config) (Client, error) {
	baseURL, err := url.Parse(cfg.SpotifyBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid host URL: %w", err)
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = http_transport.DefaultUserAgent
	}

	timeout := cfg.ParsedRequestTimeout
	if timeout <= 0 {
		timeout = http_transport.DefaultTimeout
	}

	maxResponseSize := cfg.ParsedMaxResponseSize
	if maxResponseSize <= 0 {
		maxResponseSize = defaultMaxResponseSize
	}

	// Initialize the HTTP client with custom transport and timeout.
	httpClient := &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewLogTransport(http.DefaultTransport, 0),
			utils.NewSimpleUserAgentProvider(userAgent)),
		Timeout: timeout,
	}

	client := &ClientImpl{
		cfg:             cfg,
		baseURL:         baseURL.String(),
		httpClient:      httpClient,
		maxResponseSize: maxResponseSize,
	}

	return client, nil
}

// FetchEmbedPage retrieves the embed page document for the specified track ID.
// A non-success HTTP status and any transport or read failure are reported as *APIError.
func (c *ClientImpl) FetchEmbedPage(ctx context.Context, trackID string) (string, error) {
	route, err := url.JoinPath(c.baseURL, embedTrackURIPath, trackID)
	if err != nil {
		return "", err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, route, http.NoBody)
	if err != nil {
		return "", err
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", &APIError{Err: err}
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	// Success is the whole 2xx range, the embed endpoint is not strict about 200.
	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return "", &APIError{
			StatusCode: response.StatusCode,
			Err:        ErrUnexpectedHTTPStatus,
		}
	}

	body, err := io.ReadAll(io.LimitReader(response.Body, c.maxResponseSize))
	if err != nil {
		return "", &APIError{Err: err}
	}

	logger.Debugf(ctx, "Fetched embed page for track %s (%d bytes)", trackID, len(body))

	return string(body), nil
}
