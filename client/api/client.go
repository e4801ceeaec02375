// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"listly/models"
)

// DefaultTimeout bounds every outbound call. A request that exceeds it is a
// retryable transient failure, not a permanent one.
const DefaultTimeout = 10 * time.Second

// Client talks to the Listly server. The cookie jar carries the session
// cookie across calls, so one Client is one logged-in (or anonymous) user.
type Client struct {
	base string
	http *http.Client
}

func New(base string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Jar: jar, Timeout: DefaultTimeout},
	}, nil
}

// SetTimeout overrides the per-request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	c.http.Timeout = d
}

// IsTransient reports whether err is a retryable network-class failure.
func IsTransient(err error) bool {
	return errors.Is(err, models.ErrTransient)
}

// do issues one request and decodes the response into out (if non-nil).
// Failed requests come back as wrapped error kinds rebuilt from the status
// code; unreachable-server and timeout failures come back as ErrTransient.
func (c *Client) do(method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyNetErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errBody models.ErrorResponse
		message := http.StatusText(resp.StatusCode)
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Message != "" {
			message = errBody.Message
		}
		return fmt.Errorf("%s: %w", message, models.KindForStatus(resp.StatusCode))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func classifyNetErr(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return fmt.Errorf("request timed out: %w", models.ErrTransient)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("server unreachable: %w", models.ErrTransient)
	}
	return fmt.Errorf("request failed: %w: %v", models.ErrTransient, err)
}

// Register creates an account and starts a session.
func (c *Client) Register(name, username, password string) (models.Identity, error) {
	var resp models.UserResponse
	err := c.do("POST", "/register", models.RegisterRequest{
		Name:     name,
		Username: username,
		Password: password,
	}, &resp)
	return resp.User, err
}

// Login starts a session for existing credentials.
func (c *Client) Login(username, password string) (models.Identity, error) {
	var resp models.UserResponse
	err := c.do("POST", "/login", models.LoginRequest{
		Username: username,
		Password: password,
	}, &resp)
	return resp.User, err
}

// Logout ends the current session, if any.
func (c *Client) Logout() error {
	return c.do("GET", "/logout", nil, nil)
}

// Session returns the current identity, or nil when not logged in.
func (c *Client) Session() (*models.Identity, error) {
	var resp models.SessionResponse
	if err := c.do("GET", "/get-session", nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Session {
		return nil, nil
	}
	return resp.User, nil
}

func (c *Client) Lists() ([]models.List, error) {
	var resp models.ListsResponse
	err := c.do("GET", "/get-list", nil, &resp)
	return resp.Lists, err
}

func (c *Client) AddList(title string) (models.List, error) {
	var resp models.ListResponse
	err := c.do("POST", "/add-list", models.AddListRequest{ListTitle: title}, &resp)
	return resp.List, err
}

func (c *Client) RenameList(id, title string) (models.List, error) {
	var resp models.ListResponse
	err := c.do("POST", "/update-list/"+id, models.UpdateListRequest{ListTitle: title}, &resp)
	return resp.List, err
}

func (c *Client) DeleteList(id string) error {
	return c.do("POST", "/delete-list/"+id, nil, nil)
}

func (c *Client) Items(listID string) ([]models.Item, error) {
	var resp models.ItemsResponse
	err := c.do("GET", "/get-items/"+listID, nil, &resp)
	return resp.Items, err
}

func (c *Client) AddItem(listID, description string) (models.Item, error) {
	var resp models.ItemResponse
	err := c.do("POST", "/add-item", models.AddItemRequest{
		ListID:      listID,
		Description: description,
	}, &resp)
	return resp.Item, err
}

func (c *Client) UpdateItem(id string, patch models.ItemPatch) (models.Item, error) {
	var resp models.ItemResponse
	err := c.do("POST", "/update-item/"+id, models.UpdateItemRequest{
		Description: patch.Description,
		Status:      patch.Status,
	}, &resp)
	return resp.Item, err
}

func (c *Client) DeleteItem(id string) error {
	return c.do("POST", "/delete-item/"+id, nil, nil)
}
