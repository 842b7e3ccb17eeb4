package controllers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"idcard/controllers"
	"idcard/directory"
	"idcard/models"
	"idcard/routes"
	"idcard/utils"
)

type brokenDirectory struct {
	calls int
}

func (b *brokenDirectory) Authenticate(ctx context.Context, username, password string) (models.Profile, error) {
	b.calls++
	return models.Profile{}, errors.New("disk on fire")
}

func (b *brokenDirectory) Find(ctx context.Context, username string) (models.Profile, error) {
	b.calls++
	return models.Profile{}, errors.New("disk on fire")
}

func (b *brokenDirectory) List(ctx context.Context) ([]models.Profile, error) {
	b.calls++
	return nil, errors.New("disk on fire")
}

func newApp(t *testing.T, dir controllers.EmployeeDirectory) *fiber.App {
	t.Helper()
	app := fiber.New()
	registry := prometheus.NewRegistry()
	routes.RegisterRoutes(app, controllers.NewHandler(dir, zaptest.NewLogger(t)), promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return app
}

func demoApp(t *testing.T) *fiber.App {
	return newApp(t, directory.New(nil, zaptest.NewLogger(t)))
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	body := map[string]interface{}{}
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	}
	return resp, body
}

func loginRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func TestLoginWithDemoFallback(t *testing.T) {
	resp, body := do(t, demoApp(t), loginRequest(`{"username":"john.doe","password":"demo123"}`))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])

	employee, ok := body["employee"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "john.doe", employee["username"])
	assert.Equal(t, "EMP001", employee["employeeNo"])
	_, hasPassword := employee["password"]
	assert.False(t, hasPassword)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == utils.CookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
}

func TestLoginUsernameIsCaseInsensitive(t *testing.T) {
	resp, _ := do(t, demoApp(t), loginRequest(`{"username":"John.Doe","password":"demo123"}`))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = do(t, demoApp(t), loginRequest(`{"username":"john.doe","password":"DEMO123"}`))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginWrongPasswordIsGeneric(t *testing.T) {
	app := demoApp(t)

	resp, wrongPass := do(t, app, loginRequest(`{"username":"john.doe","password":"wrongpass"}`))
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, false, wrongPass["success"])

	resp, wrongUser := do(t, app, loginRequest(`{"username":"nobody","password":"demo123"}`))
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	assert.Equal(t, wrongPass["message"], wrongUser["message"])
	msg, _ := wrongPass["message"].(string)
	assert.NotContains(t, strings.ToLower(msg), "not found")
	assert.NotContains(t, strings.ToLower(msg), "incorrect password")
	assert.NotContains(t, wrongPass, "employee")
}

func TestLoginValidation(t *testing.T) {
	app := demoApp(t)
	for _, body := range []string{
		`{}`,
		`{"username":"john.doe"}`,
		`{"password":"demo123"}`,
		`{"username":"","password":"demo123"}`,
		`not json`,
	} {
		resp, payload := do(t, app, loginRequest(body))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		assert.Equal(t, false, payload["success"], body)
	}
}

func TestLoginInternalFailure(t *testing.T) {
	resp, body := do(t, newApp(t, &brokenDirectory{}), loginRequest(`{"username":"a","password":"b"}`))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestLoginInfo(t *testing.T) {
	resp, body := do(t, demoApp(t), httptest.NewRequest(http.MethodGet, "/login", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body["message"], "POST")

	creds, ok := body["demoCredentials"].([]interface{})
	require.True(t, ok)
	assert.Len(t, creds, 2)
}

func TestGetEmployeeByUsername(t *testing.T) {
	resp, body := do(t, demoApp(t), httptest.NewRequest(http.MethodGet, "/employees?username=JANE.SMITH", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "jane.smith", data["username"])
	_, hasPassword := data["password"]
	assert.False(t, hasPassword)
}

func TestGetEmployeeNotFound(t *testing.T) {
	resp, body := do(t, demoApp(t), httptest.NewRequest(http.MethodGet, "/employees?username=nobody", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestListEmployees(t *testing.T) {
	resp, body := do(t, demoApp(t), httptest.NewRequest(http.MethodGet, "/employees", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Found 2 employees", body["message"])

	data, ok := body["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, data, 2)
	for _, item := range data {
		_, hasPassword := item.(map[string]interface{})["password"]
		assert.False(t, hasPassword)
	}
}

func TestEmployeesInternalFailure(t *testing.T) {
	app := newApp(t, &brokenDirectory{})

	resp, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/employees", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/employees?username=x", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestHeadEmployeesIsLiveness(t *testing.T) {
	dir := &brokenDirectory{}
	resp, err := newApp(t, dir).Test(httptest.NewRequest(http.MethodHead, "/employees", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, raw)
	assert.Zero(t, dir.calls)
}

func TestMetricsEndpoint(t *testing.T) {
	resp, err := demoApp(t).Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
