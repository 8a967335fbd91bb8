package untis

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrInvalidCredentials is returned when the portal rejects the login form
var ErrInvalidCredentials = errors.New("invalid username or password")

// sessionCookieName is the cookie the portal issues on a successful login
const sessionCookieName = "JSESSIONID"

// Login authenticates against the portal's login form and returns the session.
// The login page embeds a CSRF token and the school's tenant id as hidden
// inputs, so we scrape those first before posting the credentials.
func (c *Client) Login(school, username, password string) (*Session, error) {
	loginURL := fmt.Sprintf("%s/login?school=%s", c.baseURL, url.QueryEscape(school))

	req, err := http.NewRequest("GET", loginURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch login page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d when fetching login page", resp.StatusCode)
	}

	csrfToken, tenantID, err := parseLoginForm(resp)
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("school", school)
	form.Set("j_username", username)
	form.Set("j_password", password)
	form.Set("csrf_token", csrfToken)

	postReq, err := http.NewRequest("POST", fmt.Sprintf("%s/j_spring_security_check", c.baseURL), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	postReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	postResp, err := c.do(postReq)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	defer postResp.Body.Close()

	if postResp.StatusCode != http.StatusOK && postResp.StatusCode != http.StatusFound {
		return nil, fmt.Errorf("unexpected status code %d during login", postResp.StatusCode)
	}

	for _, cookie := range postResp.Cookies() {
		if cookie.Name == sessionCookieName {
			return &Session{Cookie: cookie, TenantID: tenantID}, nil
		}
	}

	return nil, ErrInvalidCredentials
}

// parseLoginForm extracts the hidden CSRF token and tenant id from the login page
func parseLoginForm(resp *http.Response) (csrfToken, tenantID string, err error) {
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse login page: %w", err)
	}

	csrfToken, _ = doc.Find(`input[name="csrf_token"]`).Attr("value")
	tenantID, _ = doc.Find(`input[name="tenant_id"]`).Attr("value")

	if tenantID == "" {
		return "", "", fmt.Errorf("login page did not contain a tenant id, is the school name correct?")
	}

	return csrfToken, tenantID, nil
}
