package github

import (
	"fmt"
	"net/http"
	"time"

	gh "github.com/google/go-github/v66/github"
	"github.com/hashicorp/go-retryablehttp"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/rios0rios0/githubfs/internal/domain/entities"
)

// ClientOptions tunes the HTTP stack underneath the GitHub client.
type ClientOptions struct {
	// BaseURL points at a GitHub Enterprise API; empty means api.github.com.
	BaseURL string
	// MaxRetries is how often a request failing with a connection error or 5xx is retried.
	MaxRetries int
	// Timeout bounds a single attempt; zero disables it.
	Timeout time.Duration
	// RetryWaitMin and RetryWaitMax bound the backoff; zero keeps the library defaults.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// NewClient builds a go-github client whose transport retries transient
// failures and authenticates with the given credentials.
func NewClient(credentials entities.Credentials, opts ClientOptions) (*gh.Client, error) {
	if err := credentials.Validate(); err != nil {
		return nil, err
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = opts.MaxRetries
	retryClient.Logger = &leveledLogger{entry: logger.WithField("component", "http")}
	// hand the last response to go-github so it can build a typed ErrorResponse
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = opts.Timeout
	if opts.RetryWaitMin > 0 {
		retryClient.RetryWaitMin = opts.RetryWaitMin
	}
	if opts.RetryWaitMax > 0 {
		retryClient.RetryWaitMax = opts.RetryWaitMax
	}

	httpClient := retryClient.StandardClient()
	httpClient.Transport = authTransport(credentials, httpClient.Transport)

	client := gh.NewClient(httpClient)
	if opts.BaseURL == "" {
		return client, nil
	}

	enterprise, err := client.WithEnterpriseURLs(opts.BaseURL, opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to configure base URL %q: %w", opts.BaseURL, err)
	}
	return enterprise, nil
}

func authTransport(credentials entities.Credentials, base http.RoundTripper) http.RoundTripper {
	switch credentials.Method {
	case entities.AuthMethodToken:
		return &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: credentials.Login}),
			Base:   base,
		}
	case entities.AuthMethodBasic:
		return &gh.BasicAuthTransport{
			Username:  credentials.Login,
			Password:  credentials.Secret,
			Transport: base,
		}
	default:
		return base
	}
}

// leveledLogger routes go-retryablehttp output into logrus.
type leveledLogger struct {
	entry *logger.Entry
}

var _ retryablehttp.LeveledLogger = (*leveledLogger)(nil)

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.with(keysAndValues).Error(msg)
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.with(keysAndValues).Info(msg)
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.with(keysAndValues).Debug(msg)
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.with(keysAndValues).Warn(msg)
}

func (l *leveledLogger) with(keysAndValues []interface{}) *logger.Entry {
	fields := make(logger.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return l.entry.WithFields(fields)
}
