package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mwidmann/remindcal/internal/constants"
	"github.com/mwidmann/remindcal/internal/logger"
	"github.com/mwidmann/remindcal/internal/models"
)

// Client is the gateway to the reminder service. Every call resolves to one
// of three outcomes: a *TransportError (server unreachable or non-JSON
// body), an *APIError (the server said no), or a successful result. No call
// retries; failures surface immediately to the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the service at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: constants.DefaultRequestTimeout,
		},
	}
}

// ListAll fetches the user's full reminder set.
func (c *Client) ListAll(ctx context.Context, userID string) ([]models.Reminder, error) {
	const op = "list reminders"
	q := url.Values{"user_id": {userID}}
	body, err := c.get(ctx, op, "/get_reminders", q)
	if err != nil {
		return nil, err
	}
	var reminders []models.Reminder
	if err := decodeList(op, body, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

// ListForMonth fetches the per-day projection for one month. Month is
// 1-based on the wire.
func (c *Client) ListForMonth(ctx context.Context, userID string, year int, month int) ([]models.MonthEntry, error) {
	const op = "list month reminders"
	q := url.Values{
		"year":    {strconv.Itoa(year)},
		"month":   {strconv.Itoa(month)},
		"user_id": {userID},
	}
	body, err := c.get(ctx, op, "/get_reminders_for_month", q)
	if err != nil {
		return nil, err
	}
	var entries []models.MonthEntry
	if err := decodeList(op, body, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

type createRequest struct {
	FullNoteText string `json:"full_note_text"`
	UserID       string `json:"user_id"`
}

// Create submits a free-form note for the server to parse into one or more
// reminders. Empty input is rejected before any request is sent.
func (c *Client) Create(ctx context.Context, userID, noteText string) (models.Result, error) {
	const op = "add reminder"
	if strings.TrimSpace(noteText) == "" {
		return models.Result{}, ErrEmptyNote
	}
	return c.mutate(ctx, op, http.MethodPost, "/add_multiple_reminders", createRequest{
		FullNoteText: noteText,
		UserID:       userID,
	})
}

// Complete marks a reminder done.
func (c *Client) Complete(ctx context.Context, reminderID int64) (models.Result, error) {
	const op = "complete reminder"
	path := fmt.Sprintf("/complete_reminder/%d", reminderID)
	return c.mutate(ctx, op, http.MethodPost, path, nil)
}

// Delete removes a reminder. Confirmation is the caller's responsibility;
// the gateway sends the request as given.
func (c *Client) Delete(ctx context.Context, reminderID int64, userID string) (models.Result, error) {
	const op = "delete reminder"
	path := fmt.Sprintf("/delete_reminder/%d?%s", reminderID, url.Values{"user_id": {userID}}.Encode())
	return c.mutate(ctx, op, http.MethodDelete, path, nil)
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a demo account. The demo endpoints answer with
// {message} on success and {error} on failure instead of {success, message}.
func (c *Client) Register(ctx context.Context, username, email, password string) (models.Result, error) {
	const op = "register"
	return c.demoMutate(ctx, op, "/register", registerRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks demo credentials.
func (c *Client) Login(ctx context.Context, username, password string) (models.Result, error) {
	const op = "login"
	return c.demoMutate(ctx, op, "/login", loginRequest{
		Username: username,
		Password: password,
	})
}

// ListUsers fetches the demo user directory.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	const op = "list users"
	body, err := c.get(ctx, op, "/get_all_users", nil)
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := decodeList(op, body, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) get(ctx context.Context, op, path string, q url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	return c.do(op, req)
}

func (c *Client) mutate(ctx context.Context, op, method, path string, payload any) (models.Result, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return models.Result{}, &TransportError{Op: op, Err: err}
		}
		reqBody = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return models.Result{}, &TransportError{Op: op, Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	body, err := c.do(op, req)
	if err != nil {
		return models.Result{}, err
	}

	var result models.Result
	if err := json.Unmarshal(body, &result); err != nil {
		return models.Result{}, &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	if !result.Success {
		return models.Result{}, &APIError{Op: op, Message: result.Message}
	}
	return result, nil
}

// demoMessage is the register/login wire shape.
type demoMessage struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) demoMutate(ctx context.Context, op, path string, payload any) (models.Result, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return models.Result{}, &TransportError{Op: op, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return models.Result{}, &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	body, err := c.do(op, req)
	if err != nil {
		return models.Result{}, err
	}

	var msg demoMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return models.Result{}, &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	if msg.Error != "" {
		return models.Result{}, &APIError{Op: op, Message: msg.Error}
	}
	return models.Result{Success: true, Message: msg.Message}, nil
}

func (c *Client) do(op string, req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("request failed", "op", op, "error", err)
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}
	return body, nil
}

// decodeList decodes a JSON array response. An object body is always a
// failure on a list endpoint; when it carries the service's message or error
// text that wording is surfaced as an *APIError, otherwise it is a transport
// failure. Never an empty list.
func decodeList(op string, body []byte, out any) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var obj struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if err := json.Unmarshal(trimmed, &obj); err == nil {
			if obj.Error != "" {
				return &APIError{Op: op, Message: obj.Error}
			}
			if obj.Message != "" {
				return &APIError{Op: op, Message: obj.Message}
			}
		}
		return &TransportError{Op: op, Err: fmt.Errorf("unexpected object response")}
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
