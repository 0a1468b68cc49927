package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"wellsync/internal/models"
	"wellsync/internal/providers"
	"wellsync/internal/structures"

	json "github.com/goccy/go-json"
)

const DefaultIntervalsBase = "https://intervals.icu/api/v1"

// IntervalsClient pushes merged day records to the wellness sink. Writes are
// replace-by-id and therefore idempotent; the client performs no retries.
type IntervalsClient struct {
	base      string
	hc        *http.Client
	logger    providers.Logger
	apiKey    string
	athleteID string
}

func NewIntervalsClient(conf *structures.Config, logger providers.Logger) *IntervalsClient {
	return &IntervalsClient{
		base:      DefaultIntervalsBase,
		hc:        http.DefaultClient,
		logger:    logger,
		apiKey:    conf.Intervals.APIKey,
		athleteID: conf.Intervals.AthleteID,
	}
}

// UpdateWellness replaces the wellness record addressed by the day's id.
// Any non-2xx status or transport error is returned to the caller, which
// treats it as a per-day failure rather than a run-aborting one.
func (c *IntervalsClient) UpdateWellness(ctx context.Context, rec *models.DayRecord) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/athlete/%s/wellness/%s", c.base, c.athleteID, rec.Date)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	// Intervals.icu basic auth convention: literal API_KEY user, key as password.
	req.SetBasicAuth("API_KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, data)
	}

	c.logger.Debugf(providers.TypeSink, "Uploaded wellness record %s", rec.Date)
	return nil
}
