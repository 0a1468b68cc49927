package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
	"wellsync/internal/models"
	"wellsync/internal/providers"
	"wellsync/internal/structures"

	json "github.com/goccy/go-json"
)

const DefaultWithingsBase = "https://wbsapi.withings.net/v2"

// measureTypes is the fixed set of type codes requested from the provider:
// weight, fat ratio, diastolic, systolic, body temp, skin temp, muscle mass.
const measureTypes = "1,6,9,10,71,73,76"

// withingsEnvelope wraps every Withings response; Status zero means success
// and Body carries the actual payload.
type withingsEnvelope struct {
	Status int             `json:"status"`
	Error  string          `json:"error"`
	Body   json.RawMessage `json:"body"`
}

// WithingsClient talks to the measurement source: the non-standard OAuth2
// token endpoint (requesttoken action) and the getmeas query endpoint.
type WithingsClient struct {
	base         string
	hc           *http.Client
	logger       providers.Logger
	clientID     string
	clientSecret string
	redirectURI  string
}

func NewWithingsClient(conf *structures.Config, logger providers.Logger) *WithingsClient {
	return &WithingsClient{
		base:         DefaultWithingsBase,
		hc:           http.DefaultClient,
		logger:       logger,
		clientID:     conf.Withings.ClientID,
		clientSecret: conf.Withings.ClientSecret,
		redirectURI:  conf.Withings.RedirectURI,
	}
}

// RequestToken performs the one-time authorization-code exchange.
func (c *WithingsClient) RequestToken(ctx context.Context, authCode string) (*models.TokenRecord, error) {
	params := url.Values{}
	params.Set("action", "requesttoken")
	params.Set("grant_type", "authorization_code")
	params.Set("code", authCode)
	params.Set("client_id", c.clientID)
	params.Set("client_secret", c.clientSecret)
	params.Set("redirect_uri", c.redirectURI)

	rec, err := c.tokenRequest(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	c.logger.Infof(providers.TypeSource, "Authentication successful")
	return rec, nil
}

// RefreshToken performs the refresh-token grant. It is attempted
// unconditionally on every run when a stored credential exists.
func (c *WithingsClient) RefreshToken(ctx context.Context, refreshToken string) (*models.TokenRecord, error) {
	params := url.Values{}
	params.Set("action", "requesttoken")
	params.Set("grant_type", "refresh_token")
	params.Set("refresh_token", refreshToken)
	params.Set("client_id", c.clientID)
	params.Set("client_secret", c.clientSecret)

	rec, err := c.tokenRequest(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("token refresh failed: %w", err)
	}
	c.logger.Infof(providers.TypeSource, "Token refreshed successfully")
	return rec, nil
}

func (c *WithingsClient) tokenRequest(ctx context.Context, params url.Values) (*models.TokenRecord, error) {
	body, err := c.call(ctx, http.MethodPost, "/oauth2", params, "")
	if err != nil {
		return nil, err
	}
	return models.DecodeTokenRecord(body)
}

// GetMeasurements queries all readings of the fixed type set at or after
// the watermark. The provider's grouping is returned unmodified.
func (c *WithingsClient) GetMeasurements(ctx context.Context, accessToken string, since time.Time) ([]models.MeasureGroup, error) {
	params := url.Values{}
	params.Set("action", "getmeas")
	params.Set("meastypes", measureTypes)
	params.Set("category", "1")
	params.Set("lastupdate", strconv.FormatInt(since.Unix(), 10))

	body, err := c.call(ctx, http.MethodGet, "/measure", params, accessToken)
	if err != nil {
		return nil, fmt.Errorf("fetching measurements failed: %w", err)
	}

	var mb models.MeasureBody
	if err := json.Unmarshal(body, &mb); err != nil {
		return nil, fmt.Errorf("fetching measurements failed: %w", err)
	}
	if mb.MeasureGroups == nil {
		return nil, fmt.Errorf("fetching measurements failed: response body has no measuregrps")
	}
	c.logger.Debugf(providers.TypeSource, "Fetched %d measure groups since %s", len(mb.MeasureGroups), since.Format(time.RFC3339))
	return mb.MeasureGroups, nil
}

// call issues one request with the given query parameters and unwraps the
// Withings envelope. A single attempt, no retry.
func (c *WithingsClient) call(ctx context.Context, method, path string, params url.Values, bearer string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected HTTP status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var env withingsEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("malformed response body: %w", err)
	}
	if env.Status != 0 {
		return nil, fmt.Errorf("provider status %d: %s", env.Status, env.Error)
	}
	return env.Body, nil
}
