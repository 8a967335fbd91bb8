package untis

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"
)

// Client handles HTTP requests to the school's Untis-style web portal
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new portal client for the given server, e.g. "https://nessa.webuntis.com"
func NewClient(serverURL string) *Client {
	// The portal requires the session cookie to survive the login redirect chain
	jar, _ := cookiejar.New(nil)

	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
			Jar:     jar,
		},
	}
}

// do sends the prepared request with the headers the portal expects
func (c *Client) do(req *http.Request) (*http.Response, error) {
	// The portal blocks default Go user agents
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", req.URL, err)
	}

	return resp, nil
}

// getWithRetries attempts an HTTP GET request up to 3 times for 502/503/504 errors
func (c *Client) getWithRetries(reqURL string, session *Session) (*http.Response, error) {
	var lastErr error
	var resp *http.Response

	for attempt := 0; attempt < 3; attempt++ {
		req, err := http.NewRequest("GET", reqURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		if session != nil {
			req.AddCookie(session.Cookie)
			req.Header.Set("Tenant-Id", session.TenantID)
		}

		resp, lastErr = c.do(req)

		// If the request succeeded but gave a transient error code, also retry
		if lastErr == nil && (resp.StatusCode == 502 || resp.StatusCode == 503 || resp.StatusCode == 504) {
			resp.Body.Close()
			lastErr = fmt.Errorf("transient status code: %d", resp.StatusCode)
		} else if lastErr == nil {
			return resp, nil
		}

		if attempt < 2 {
			fmt.Printf("\r\033[K[Portal] Server busy, retrying... (Attempt %d/3)\n", attempt+1)
		}

		time.Sleep(time.Duration(attempt+1) * time.Second)
	}

	return nil, fmt.Errorf("failed after 3 attempts: %v", lastErr)
}
