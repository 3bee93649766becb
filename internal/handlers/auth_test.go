package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/etsiinf/carpool-backend/internal/models"
	"github.com/gin-gonic/gin"
)

func postLogin(t *testing.T, r *gin.Engine, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]string{
		"email_address": email,
		"password":      password,
	})
	if err != nil {
		t.Fatalf("encode login body: %v", err)
	}
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, _ := newTestEnv(t)

	input := models.User{
		Name:         "Lucia",
		Password:     "hunter22",
		EmailAddress: "lucia@example.com",
	}
	if resp := doJSON(t, r, "POST", "/api/users", input); resp.Code != 200 {
		t.Fatalf("create user: got code %d (%s)", resp.Code, resp.Message)
	}

	w := postLogin(t, r, "lucia@example.com", "hunter22")
	if w.Code != 200 {
		t.Fatalf("login: got status %d, body %s", w.Code, w.Body.String())
	}
	var resp models.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected result shape: %T", resp.Result)
	}
	token, _ := result["token"].(string)
	if token == "" {
		t.Error("login: no token issued")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, _ := newTestEnv(t)

	input := models.User{
		Name:         "Lucia",
		Password:     "hunter22",
		EmailAddress: "lucia@example.com",
	}
	if resp := doJSON(t, r, "POST", "/api/users", input); resp.Code != 200 {
		t.Fatalf("create user: got code %d (%s)", resp.Code, resp.Message)
	}

	if w := postLogin(t, r, "lucia@example.com", "wrong"); w.Code != 401 {
		t.Errorf("wrong password: got status %d, want 401", w.Code)
	}
	if w := postLogin(t, r, "nobody@example.com", "hunter22"); w.Code != 401 {
		t.Errorf("unknown email: got status %d, want 401", w.Code)
	}
}
