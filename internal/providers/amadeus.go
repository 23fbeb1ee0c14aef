package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dharmasatrya/flyback/internal/models"
	"github.com/dharmasatrya/flyback/internal/ratelimit"
)

const (
	AmadeusName           = "amadeus"
	DefaultAmadeusBaseURL = "https://test.api.amadeus.com"

	tokenPath        = "/v1/security/oauth2/token"
	flightOffersPath = "/v2/shopping/flight-offers"

	// Tokens are refreshed this long before the provider expires them.
	tokenExpiryMargin = 30 * time.Second
)

var ErrMissingCredentials = errors.New("amadeus client id or secret is empty")

type AmadeusConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
}

// AmadeusClient talks to the Amadeus self-service flight-offers API using
// the client-credentials grant.
type AmadeusClient struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	limiter      *ratelimit.Limiter
	now          func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

func NewAmadeusClient(cfg AmadeusConfig, limiter *ratelimit.Limiter) *AmadeusClient {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = DefaultAmadeusBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &AmadeusClient{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		clientID:     strings.TrimSpace(cfg.ClientID),
		clientSecret: strings.TrimSpace(cfg.ClientSecret),
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		limiter:      limiter,
		now:          time.Now,
	}
}

func (c *AmadeusClient) Name() string {
	return AmadeusName
}

func (c *AmadeusClient) FetchOffers(ctx context.Context, q models.LegQuery) (*OfferResponse, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	reqURL, err := c.buildOffersURL(q)
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx, AmadeusName); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("amadeus offers request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidateToken()
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("amadeus offers status: %s", resp.Status)
	}

	var payload OfferResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode amadeus offers: %w", err)
	}

	return &payload, nil
}

func (c *AmadeusClient) buildOffersURL(q models.LegQuery) (string, error) {
	u, err := url.Parse(c.baseURL + flightOffersPath)
	if err != nil {
		return "", fmt.Errorf("parse amadeus base url: %w", err)
	}

	v := u.Query()
	v.Set("originLocationCode", q.Origin)
	v.Set("destinationLocationCode", q.Destination)
	v.Set("departureDate", q.Date.String())
	v.Set("adults", strconv.Itoa(q.Passengers))
	u.RawQuery = v.Encode()
	return u.String(), nil
}

func (c *AmadeusClient) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.expiresAt) {
		return c.token, nil
	}
	if c.clientID == "" || c.clientSecret == "" {
		return "", ErrMissingCredentials
	}

	if err := c.limiter.Wait(ctx, AmadeusName); err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("amadeus token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("amadeus token status: %s", resp.Status)
	}

	var payload tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode amadeus token: %w", err)
	}
	if payload.AccessToken == "" {
		return "", errors.New("amadeus token response has no access_token")
	}

	c.token = payload.AccessToken
	c.expiresAt = c.now().Add(time.Duration(payload.ExpiresIn)*time.Second - tokenExpiryMargin)
	return c.token, nil
}

func (c *AmadeusClient) invalidateToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}
