package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"idcard/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotFound           = errors.New("employee not found")
)

// Client talks to the idcard HTTP API.
type Client struct {
	baseURL string
	timeout time.Duration
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), timeout: timeout}
}

type LoginResult struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message"`
	Employee models.Profile `json:"employee"`
	Token    string         `json:"token"`
}

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) Login(username, password string) (LoginResult, error) {
	a := fiber.Post(c.baseURL + "/login").JSON(models.LoginInput{Username: username, Password: password})

	var result LoginResult
	code, body, err := c.send(a, &result)
	if err != nil {
		return LoginResult{}, err
	}

	switch code {
	case fiber.StatusOK:
		return result, nil
	case fiber.StatusUnauthorized:
		return LoginResult{}, ErrInvalidCredentials
	}
	return LoginResult{}, statusError(code, result.Message, body)
}

func (c *Client) Employee(username string) (models.Profile, error) {
	a := fiber.Get(c.baseURL + "/employees?username=" + url.QueryEscape(username))

	var resp apiResponse
	code, body, err := c.send(a, &resp)
	if err != nil {
		return models.Profile{}, err
	}

	switch code {
	case fiber.StatusOK:
		var p models.Profile
		if err := json.Unmarshal(resp.Data, &p); err != nil {
			return models.Profile{}, fmt.Errorf("client: decode employee: %w", err)
		}
		return p, nil
	case fiber.StatusNotFound:
		return models.Profile{}, ErrNotFound
	}
	return models.Profile{}, statusError(code, resp.Message, body)
}

func (c *Client) Employees() ([]models.Profile, error) {
	a := fiber.Get(c.baseURL + "/employees")

	var resp apiResponse
	code, body, err := c.send(a, &resp)
	if err != nil {
		return nil, err
	}
	if code != fiber.StatusOK {
		return nil, statusError(code, resp.Message, body)
	}

	var profiles []models.Profile
	if err := json.Unmarshal(resp.Data, &profiles); err != nil {
		return nil, fmt.Errorf("client: decode employees: %w", err)
	}
	return profiles, nil
}

// Ping issues HEAD /employees.
func (c *Client) Ping() error {
	a := fiber.Head(c.baseURL + "/employees")
	if c.timeout > 0 {
		a.Timeout(c.timeout)
	}
	code, _, errs := a.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("client: ping: %w", errors.Join(errs...))
	}
	if code != fiber.StatusOK {
		return fmt.Errorf("client: ping: unexpected status %d", code)
	}
	return nil
}

func (c *Client) send(a *fiber.Agent, v interface{}) (int, []byte, error) {
	if c.timeout > 0 {
		a.Timeout(c.timeout)
	}
	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return 0, nil, fmt.Errorf("client: request failed: %w", errors.Join(errs...))
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, v); err != nil {
			return code, body, fmt.Errorf("client: decode response (status %d): %w", code, err)
		}
	}
	return code, body, nil
}

func statusError(code int, message string, body []byte) error {
	if message == "" {
		message = strings.TrimSpace(string(body))
	}
	return fmt.Errorf("client: unexpected status %d: %s", code, message)
}
