package untis

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const mockLoginPage = `<html><body>
<form action="/j_spring_security_check" method="post">
	<input type="hidden" name="csrf_token" value="abc123token">
	<input type="hidden" name="tenant_id" value="4711">
	<input type="text" name="j_username">
	<input type="password" name="j_password">
</form>
</body></html>`

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			if r.URL.Query().Get("school") != "gym-musterstadt" {
				t.Errorf("expected school query parameter, got %q", r.URL.Query().Get("school"))
			}
			w.Write([]byte(mockLoginPage))
		case "/j_spring_security_check":
			if err := r.ParseForm(); err != nil {
				t.Fatalf("failed to parse login form: %v", err)
			}
			if r.PostForm.Get("csrf_token") != "abc123token" {
				t.Errorf("expected scraped csrf token to be posted back, got %q", r.PostForm.Get("csrf_token"))
			}
			if r.PostForm.Get("j_username") != "max" {
				t.Errorf("expected username max, got %q", r.PostForm.Get("j_username"))
			}
			http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: "session-xyz"})
			w.WriteHeader(http.StatusOK)
		default:
			t.Errorf("unexpected request path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)

	session, err := client.Login("gym-musterstadt", "max", "geheim")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if session.Cookie == nil || session.Cookie.Value != "session-xyz" {
		t.Errorf("expected session cookie session-xyz, got %+v", session.Cookie)
	}
	if session.TenantID != "4711" {
		t.Errorf("expected tenant id 4711, got %s", session.TenantID)
	}
}

func TestClient_Login_WrongPassword(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" {
			w.Write([]byte(mockLoginPage))
			return
		}
		// Portal re-renders the login page without a session cookie on bad credentials
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Login("gym-musterstadt", "max", "falsch")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
	}
}

func TestClient_Login_MissingTenant(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A typo in the school name leads to a generic page without the hidden inputs
		w.Write([]byte(`<html><body><p>Schule nicht gefunden</p></body></html>`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Login("tippfehler", "max", "geheim")
	if err == nil {
		t.Fatalf("expected an error for a login page without tenant id, got nil")
	}
}
