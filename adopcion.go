package adopcion

import (
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://adopcion-api.onrender.com"
	// DefaultTimeout is the client-side request timeout. Generous because
	// the free-tier backend can take several seconds to cold-start.
	DefaultTimeout = 15 * time.Second
)

// Client is the single HTTP gateway to the Adopción Responsable API.
//
// Use New to create a client:
//
//	client := adopcion.New(adopcion.WithTokenSource(store.Token))
//	animals, err := client.Animals.List(ctx, adopcion.AnimalFilters{Especie: adopcion.EspeciePerro})
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokenSource    func() string
	notifier       Notifier
	onAuthRejected func()
	userAgent      string

	// Services
	Auth         *AuthService
	Animals      *AnimalsService
	Requests     *RequestsService
	Organization *OrganizationService
	SuperAdmin   *SuperAdminService
	Contact      *ContactService
	CasosExito   *CasosExitoService
	Upload       *UploadService
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
	}
}

// WithTokenSource sets the function consulted before every request for
// the current bearer token. An empty return means unauthenticated and no
// Authorization header is sent.
func WithTokenSource(source func() string) Option {
	return func(c *Client) {
		c.tokenSource = source
	}
}

// WithNotifier sets the receiver of user-facing failure notices.
func WithNotifier(n Notifier) Option {
	return func(c *Client) {
		c.notifier = n
	}
}

// WithAuthRejectedHandler sets the hook invoked when any response (other
// than the login call itself) comes back 401. The client only signals;
// the session controller owns the store and performs the actual logout.
func WithAuthRejectedHandler(fn func()) Option {
	return func(c *Client) {
		c.onAuthRejected = fn
	}
}

// New creates a new API client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		notifier:  NopNotifier{},
		userAgent: clientUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Initialize services
	c.Auth = &AuthService{client: c}
	c.Animals = &AnimalsService{client: c}
	c.Requests = &RequestsService{client: c}
	c.Organization = &OrganizationService{client: c}
	c.SuperAdmin = &SuperAdminService{client: c}
	c.Contact = &ContactService{client: c}
	c.CasosExito = &CasosExitoService{client: c}
	c.Upload = &UploadService{client: c}

	return c
}

// BaseURL returns the current base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}
