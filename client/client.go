package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	apimodels "talent-engine-backend/models/api"
	authapimodels "talent-engine-backend/models/api/auth"
)

// ErrSessionExpired is returned when a request still gets 401 after the one
// allowed token refresh. Both tokens are cleared before it is returned.
var ErrSessionExpired = errors.New("Session expired. Please log in again.")

// APIError is a non-2xx response decoded from the service envelope.
type APIError struct {
	StatusCode int
	Message    string
	Fields     []apimodels.FieldError
}

func (e *APIError) Error() string {
	return e.Message
}

// FieldErrors exposes the field scoped payload for form controllers.
func (e *APIError) FieldErrors() []apimodels.FieldError {
	return e.Fields
}

// FieldMessage returns the message mapped to a form field, empty when the
// server did not scope the error to that field.
func (e *APIError) FieldMessage(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session

	refreshMu sync.Mutex
}

func New(baseURL string, session *Session) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		session: session,
	}
}

// NewWithHTTPClient is used by tests and callers that need their own
// transport.
func NewWithHTTPClient(baseURL string, session *Session, httpClient *http.Client) *Client {
	c := New(baseURL, session)
	c.httpClient = httpClient
	return c
}

func (c *Client) Session() *Session {
	return c.session
}

type envelope struct {
	Status   string                 `json:"status"`
	Message  string                 `json:"message"`
	Data     json.RawMessage        `json:"data"`
	Fields   []apimodels.FieldError `json:"fields"`
	RowCount int64                  `json:"row_count"`
}

// do sends one authenticated request. On a 401 it refreshes the access token
// at most once and replays the request once; a second 401 clears the session
// and returns ErrSessionExpired.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) (rowCount int64, err error) {
	access, generation := c.session.Snapshot()
	env, status, err := c.send(ctx, method, path, body, access)
	if err != nil {
		return 0, err
	}
	if status == http.StatusUnauthorized {
		if err = c.refreshOnce(ctx, generation); err != nil {
			return 0, err
		}
		access, _ = c.session.Snapshot()
		env, status, err = c.send(ctx, method, path, body, access)
		if err != nil {
			return 0, err
		}
		if status == http.StatusUnauthorized {
			c.session.Clear()
			return 0, ErrSessionExpired
		}
	}
	if status < 200 || status > 299 {
		return 0, &APIError{
			StatusCode: status,
			Message:    env.Message,
			Fields:     env.Fields,
		}
	}
	if out != nil && len(env.Data) != 0 {
		if err = json.Unmarshal(env.Data, out); err != nil {
			return 0, errors.Wrap(err, "response payload decode failed")
		}
	}
	return env.RowCount, nil
}

func (c *Client) send(ctx context.Context, method, path string, body interface{}, access string) (env envelope, status int, err error) {
	var reqBody io.Reader
	contentType := ""
	switch payload := body.(type) {
	case nil:
	case *multipartBody:
		reqBody = bytes.NewReader(payload.body)
		contentType = payload.contentType
	default:
		raw, mErr := json.Marshal(payload)
		if mErr != nil {
			return envelope{}, 0, errors.Wrap(mErr, "request payload encode failed")
		}
		reqBody = bytes.NewReader(raw)
		contentType = "application/json"
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return envelope{}, 0, errors.Wrap(err, "request build failed")
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return envelope{}, 0, errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return envelope{}, 0, errors.Wrap(err, "response read failed")
	}
	if len(raw) != 0 {
		// a non-JSON body (file download paths use doRaw) keeps an empty
		// envelope, the status code still drives the outcome
		_ = json.Unmarshal(raw, &env)
	}
	return env, resp.StatusCode, nil
}

// refreshOnce exchanges the refresh token for a new access token. Concurrent
// 401s collapse into a single refresh call: whoever enters the critical
// section after the generation moved just reuses the fresh token.
func (c *Client) refreshOnce(ctx context.Context, seenGeneration uint64) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()
	if _, generation := c.session.Snapshot(); generation != seenGeneration {
		return nil
	}
	refresh := c.session.RefreshToken()
	if refresh == "" {
		c.session.Clear()
		return ErrSessionExpired
	}
	payload := authapimodels.JWTRefreshRequest{Refresh: refresh}
	env, status, err := c.send(ctx, http.MethodPost, "/api/token/refresh/", payload, "")
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		c.session.Clear()
		log.WithField("status", status).Warn("token refresh rejected")
		return ErrSessionExpired
	}
	var resp authapimodels.JWTAccessResponse
	if err = json.Unmarshal(env.Data, &resp); err != nil || resp.Access == "" {
		c.session.Clear()
		return ErrSessionExpired
	}
	c.session.Advance(resp.Access)
	return nil
}

type multipartBody struct {
	body        []byte
	contentType string
}
