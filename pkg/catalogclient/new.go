package catalogclient

import (
	"errors"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

const (
	defaultTimeout = 5 * time.Second
	breakerName    = "catalog"
	itemsPath      = "/api/v1/items"
)

var (
	ErrBaseURLRequired = errors.New("catalogclient: base url is required")
	ErrUnavailable     = errors.New("catalogclient: catalog unavailable")
)

// Config configures the client. OnStateChange, when set, observes breaker transitions.
type Config struct {
	BaseURL       string
	Timeout       time.Duration
	OnStateChange func(name string, from, to gobreaker.State)
}

type implClient struct {
	http    *resty.Client
	breaker *gobreaker.CircuitBreaker
}

// New creates a Client whose calls go through a circuit breaker.
func New(cfg Config) (Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    30 * time.Second,
		Timeout:     15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: cfg.OnStateChange,
	})

	return &implClient{
		http: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(cfg.Timeout).
			SetHeader("Accept", "application/json"),
		breaker: breaker,
	}, nil
}
