package teamapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Client is the HTTP wrapper for the team calendar backend REST API. All
// requests are credentialed via the session cookie jar, mirroring the
// cookie-based browser session the backend expects.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a backend API client. rps caps outgoing requests per
// second; the "all members" availability fan-out issues one request per
// roster member, so the cap keeps the burst polite.
func NewClient(baseURL string, rps float64) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("backend base URL is empty")
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	if rps <= 0 {
		rps = 10
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), int(rps)),
	}, nil
}

// LoginURL returns the browser redirect target for Google login. The OAuth
// dance itself is owned by the backend.
func (c *Client) LoginURL() string {
	return c.baseURL + "/auth/google"
}

// Me fetches the current session user via GET /api/me. A nil user with a nil
// error means no active session.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var resp struct {
		User *User `json:"user"`
	}
	if err := c.getJSON(ctx, "/api/me", nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Logout ends the backend session via POST /logout.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/logout", nil)
	if err != nil {
		return fmt.Errorf("failed to build logout request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call logout: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("logout error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

// Members fetches the roster via GET /api/members.
func (c *Client) Members(ctx context.Context) ([]Member, error) {
	var members []Member
	if err := c.getJSON(ctx, "/api/members", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// Availability fetches one member's events for a date range via
// GET /api/availability/:memberId.
func (c *Client) Availability(ctx context.Context, memberID int, q AvailabilityQuery) ([]Event, error) {
	query := url.Values{}
	query.Set("timezone", q.Timezone)
	query.Set("start", q.Start.UTC().Format(time.RFC3339))
	query.Set("end", q.End.UTC().Format(time.RFC3339))

	var events []Event
	path := "/api/availability/" + strconv.Itoa(memberID)
	if err := c.getJSON(ctx, path, query, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// getJSON performs a credentialed GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("backend API %s error %d: %s", path, resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
