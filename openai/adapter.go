package openai

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/m43i/go-openai/core"
)

const (
	defaultBaseURL     = "https://api.openai.com/v1"
	defaultHTTPTimeout = 5 * time.Minute
)

// Adapter calls the OpenAI HTTP API for one model.
type Adapter struct {
	APIKey       string
	Model        string
	BaseURL      string
	Organization string
	Project      string
	HTTPClient   *http.Client
	Logger       *slog.Logger
}

var _ core.EmbeddingAdapter = (*Adapter)(nil)
var _ core.ImageAdapter = (*Adapter)(nil)
var _ core.TranscriptionAdapter = (*Adapter)(nil)
var _ core.TranslationAdapter = (*Adapter)(nil)

type Option func(*Adapter)

// New creates an OpenAI adapter.
//
// Preferred usage is to use core and add this adapter there.
//
// An empty apiKey falls back to OPENAI_API_KEY. OPENAI_ORG_ID and
// OPENAI_BASE_URL are read from the environment as defaults as well.
func New(apiKey, model string, opts ...Option) *Adapter {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		apiKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	}

	baseURL := strings.TrimSpace(os.Getenv("OPENAI_BASE_URL"))
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	adapter := &Adapter{
		APIKey:       apiKey,
		Model:        strings.TrimSpace(model),
		BaseURL:      baseURL,
		Organization: strings.TrimSpace(os.Getenv("OPENAI_ORG_ID")),
		HTTPClient:   &http.Client{Timeout: defaultHTTPTimeout},
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(adapter)
	}

	return adapter
}

// WithAPIKey sets the API key used by the adapter.
func WithAPIKey(apiKey string) Option {
	return func(adapter *Adapter) {
		if strings.TrimSpace(apiKey) == "" {
			return
		}
		adapter.APIKey = strings.TrimSpace(apiKey)
	}
}

// WithBaseURL sets the API base URL used by the adapter.
func WithBaseURL(baseURL string) Option {
	return func(adapter *Adapter) {
		if strings.TrimSpace(baseURL) == "" {
			return
		}
		adapter.BaseURL = strings.TrimSpace(baseURL)
	}
}

// WithEndpointURL sets the API base URL used by the adapter.
//
// It is an alias for WithBaseURL.
func WithEndpointURL(endpointURL string) Option {
	return WithBaseURL(endpointURL)
}

// WithOrganization sends the OpenAI-Organization header on every request.
func WithOrganization(organization string) Option {
	return func(adapter *Adapter) {
		adapter.Organization = strings.TrimSpace(organization)
	}
}

// WithProject sends the OpenAI-Project header on every request.
func WithProject(project string) Option {
	return func(adapter *Adapter) {
		adapter.Project = strings.TrimSpace(project)
	}
}

// WithHTTPClient sets the HTTP client used by the adapter.
func WithHTTPClient(client *http.Client) Option {
	return func(adapter *Adapter) {
		if client == nil {
			return
		}
		adapter.HTTPClient = client
	}
}

// WithTimeout sets the timeout on the adapter HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(adapter *Adapter) {
		if timeout <= 0 {
			return
		}
		if adapter.HTTPClient == nil {
			adapter.HTTPClient = &http.Client{}
		}
		adapter.HTTPClient.Timeout = timeout
	}
}

// WithLogger sets the logger used for per-request debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(adapter *Adapter) {
		if logger == nil {
			return
		}
		adapter.Logger = logger
	}
}

func (a *Adapter) validate() error {
	if a == nil {
		return errors.New("openai: adapter is nil")
	}

	if strings.TrimSpace(a.APIKey) == "" {
		a.APIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	}
	if strings.TrimSpace(a.APIKey) == "" {
		return errors.New("openai: API key is required (set OPENAI_API_KEY or use openai.WithAPIKey)")
	}

	if strings.TrimSpace(a.Model) == "" {
		return errors.New("openai: model is required")
	}

	return nil
}

func (a *Adapter) client() *http.Client {
	if a.HTTPClient != nil {
		return a.HTTPClient
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func (a *Adapter) baseURL() string {
	if strings.TrimSpace(a.BaseURL) == "" {
		return defaultBaseURL
	}
	return a.BaseURL
}

func (a *Adapter) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.New(slog.DiscardHandler)
}
