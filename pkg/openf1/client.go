package openf1

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

const DefaultBaseURL = "https://api.openf1.org/v1"

// Every remote call is a single best-effort GET bounded by this timeout.
const fetchTimeout = 30 * time.Second

// Client reads the OpenF1 resources for one session. Transport errors, bad
// statuses and malformed bodies all collapse to an empty result so the
// pipelines degrade to "no data for this sub-query" instead of aborting.
type Client struct {
	baseURL    string
	sessionKey int
	httpClient *http.Client
}

func NewClient(baseURL string, sessionKey int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		sessionKey: sessionKey,
		httpClient: &http.Client{Timeout: fetchTimeout},
	}
}

// Drivers returns the identity records for one driver number.
func (c *Client) Drivers(ctx context.Context, driverNumber int) []Driver {
	return fetchList[Driver](ctx, c, fmt.Sprintf("%s/drivers?session_key=%d&driver_number=%d", c.baseURL, c.sessionKey, driverNumber))
}

// Laps returns every lap record for one driver.
func (c *Client) Laps(ctx context.Context, driverNumber int) []Lap {
	return fetchList[Lap](ctx, c, fmt.Sprintf("%s/laps?session_key=%d&driver_number=%d", c.baseURL, c.sessionKey, driverNumber))
}

// Lap returns the record for one specific lap number.
func (c *Client) Lap(ctx context.Context, driverNumber, lapNumber int) []Lap {
	return fetchList[Lap](ctx, c, fmt.Sprintf("%s/laps?session_key=%d&driver_number=%d&lap_number=%d", c.baseURL, c.sessionKey, driverNumber, lapNumber))
}

// Stints returns the tire stints for one driver.
func (c *Client) Stints(ctx context.Context, driverNumber int) []Stint {
	return fetchList[Stint](ctx, c, fmt.Sprintf("%s/stints?session_key=%d&driver_number=%d", c.baseURL, c.sessionKey, driverNumber))
}

// CarData returns the car telemetry stream at or after dateStart.
func (c *Client) CarData(ctx context.Context, driverNumber int, dateStart string) []CarSample {
	return fetchList[CarSample](ctx, c, fmt.Sprintf("%s/car_data?session_key=%d&driver_number=%d&date>=%s", c.baseURL, c.sessionKey, driverNumber, url.QueryEscape(dateStart)))
}

func fetchList[T any](ctx context.Context, c *Client, rawURL string) []T {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		log.Printf("openf1: building request %s: %s", rawURL, err)
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("openf1: fetching %s: %s", rawURL, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Printf("openf1: fetching %s: status %s", rawURL, resp.Status)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("openf1: reading %s: %s", rawURL, err)
		return nil
	}

	var records []T
	if err := json.Unmarshal(body, &records); err != nil {
		log.Printf("openf1: decoding %s: %s", rawURL, err)
		return nil
	}

	return records
}
