package rest

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/opst/foodfab/cmd/food/config/profiles"
	"github.com/opst/foodfab/pkg/api/types/ids"
	"github.com/opst/foodfab/pkg/api/types/orders"
	"github.com/opst/foodfab/pkg/api/types/restaurants"
	"github.com/opst/foodfab/pkg/api/types/users"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

type FoodClient interface {
	// Health checks the backend is reachable and serving.
	Health(ctx context.Context) error

	// GetRestaurants lists all restaurants.
	GetRestaurants(ctx context.Context) ([]restaurants.Detail, error)

	// GetRestaurant gets a restaurant by id.
	GetRestaurant(ctx context.Context, restaurantId ids.ID) (*restaurants.Detail, error)

	// CreateRestaurant registers a new restaurant.
	//
	// Returns
	//
	// - *restaurants.Detail: the restaurant created, with id assigned by the backend.
	//
	// - error
	CreateRestaurant(ctx context.Context, spec restaurants.Spec) (*restaurants.Detail, error)

	// UpdateRestaurant overwrites the restaurant with spec.
	UpdateRestaurant(ctx context.Context, restaurantId ids.ID, spec restaurants.Spec) error

	DeleteRestaurant(ctx context.Context, restaurantId ids.ID) error

	// GetMenu lists menu items of a restaurant.
	GetMenu(ctx context.Context, restaurantId ids.ID) ([]restaurants.MenuItem, error)

	AddMenuItem(ctx context.Context, restaurantId ids.ID, spec restaurants.MenuItemSpec) (*restaurants.MenuItem, error)

	// Register signs up a new user.
	//
	// If the backend responds without body, the returned user is built from reg.
	Register(ctx context.Context, reg users.Registration) (*users.User, error)

	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, cred users.Credentials) (*users.LoginResponse, error)

	// CreateOrder places an order.
	//
	// Returns
	//
	// - *orders.Detail: the order created. Its Id identifies it for later requests.
	//
	// - error
	CreateOrder(ctx context.Context, draft orders.Draft) (*orders.Detail, error)

	GetOrder(ctx context.Context, orderId ids.ID) (*orders.Detail, error)

	// GetCustomerOrders lists orders placed by the customer.
	GetCustomerOrders(ctx context.Context, customerId ids.ID) ([]orders.Detail, error)

	// GetOrders lists orders visible to the signed-in user.
	GetOrders(ctx context.Context) ([]orders.Detail, error)

	CancelOrder(ctx context.Context, orderId ids.ID) error

	UpdateOrderStatus(ctx context.Context, orderId ids.ID, status orders.Status) error

	AdminUsers(ctx context.Context) ([]users.User, error)
	AdminDeleteUser(ctx context.Context, userId ids.ID) error
	AdminRestaurants(ctx context.Context) ([]restaurants.Detail, error)
	AdminDeleteRestaurant(ctx context.Context, restaurantId ids.ID) error
	AdminOrders(ctx context.Context) ([]orders.Detail, error)
}

type client struct {
	httpclient *http.Client
	api        string

	token   func() string
	limiter *rate.Limiter
	log     zerolog.Logger
}

type Option func(*client) *client

// WithTokenSource sets the bearer token provider.
//
// The provider is called for every request. Empty token means anonymous.
func WithTokenSource(token func() string) Option {
	return func(c *client) *client {
		c.token = token
		return c
	}
}

// WithLogger sets the logger tracing requests at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *client) *client {
		c.log = logger
		return c
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) *client {
		c.httpclient = hc
		return c
	}
}

func NewClient(prof *profiles.FoodProfile, options ...Option) (FoodClient, error) {
	if err := prof.Verify(); err != nil {
		return nil, err
	}

	c := &client{
		httpclient: new(http.Client),
		api:        strings.TrimSuffix(prof.ApiRoot, "/"),
		token:      func() string { return "" },
		log:        zerolog.Nop(),
	}
	for _, opt := range options {
		c = opt(c)
	}

	if prof.Cert.CA != "" {
		hc, err := trustCa(c.httpclient, []string{prof.Cert.CA})
		if err != nil {
			return nil, err
		}
		c.httpclient = hc
	}

	if rl := prof.RateLimit; rl != nil && 0 < rl.PerSecond {
		c.limiter = rate.NewLimiter(rate.Limit(rl.PerSecond), max(rl.Burst, 1))
	}

	return c, nil
}

// apipath joins path segments to the api root. Each segment is escaped.
func (c *client) apipath(path ...string) string {
	elems := []string{c.api}
	for _, p := range path {
		p = strings.TrimPrefix(strings.TrimSuffix(p, "/"), "/")
		if p == "" {
			continue
		}
		elems = append(elems, url.PathEscape(p))
	}
	return strings.Join(elems, "/")
}

func trustCa(hc *http.Client, cacerts []string) (*http.Client, error) {
	if len(cacerts) <= 0 {
		return hc, nil
	}

	if hc.Transport == nil {
		hc.Transport = http.DefaultTransport
	}

	tran, ok := hc.Transport.(*http.Transport)
	if !ok {
		return nil, fmt.Errorf("failed to add ca cert")
	}
	tran = tran.Clone()

	tcc := tran.TLSClientConfig.Clone()
	if tcc == nil {
		tcc = &tls.Config{}
	}

	rootcas := tcc.RootCAs
	if rootcas == nil {
		rootcas = x509.NewCertPool()
		tcc.RootCAs = rootcas
	}
	for _, ca := range cacerts {
		bin, err := base64.StdEncoding.DecodeString(ca)
		if err != nil {
			return nil, err
		}

		if !rootcas.AppendCertsFromPEM(bin) {
			return nil, fmt.Errorf("failed to add cert")
		}
	}

	tran.TLSClientConfig = tcc
	hc.Transport = tran
	return hc, nil
}
