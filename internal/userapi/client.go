package userapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"userdeck/internal/domain"
)

// AppIDHeader is the authentication header expected by the service.
const AppIDHeader = "app-id"

const maxErrorBody = 64 << 10

// ErrEmptyResponse is returned when a 2xx response has no body to decode.
var ErrEmptyResponse = errors.New("empty response from server")

// ErrMalformedResponse is returned when a 2xx body cannot be decoded.
var ErrMalformedResponse = errors.New("malformed response from server")

// StatusError is a non-2xx response.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("user service %s %s: %s", strings.ToLower(e.Method), e.URL, e.Status)
}

// HTTP talks to the user service over HTTP.
type HTTP struct {
	Base  string
	AppID string
	HTTP  *http.Client
}

// NewHTTP returns a client rooted at base. A nil httpClient gets
// NewHTTPClient(30 * time.Second).
func NewHTTP(base, appID string, httpClient *http.Client) *HTTP {
	if httpClient == nil {
		httpClient = NewHTTPClient(30 * time.Second)
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), AppID: appID, HTTP: httpClient}
}

// NewHTTPClient builds a client whose connect, TLS handshake and
// response-header phases are each bounded by timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.DialContext = (&net.Dialer{Timeout: timeout, KeepAlive: 30 * time.Second}).DialContext
	tr.TLSHandshakeTimeout = timeout
	tr.ResponseHeaderTimeout = timeout
	return &http.Client{Transport: tr, Timeout: 3 * timeout}
}

func (c *HTTP) ListUsers(ctx context.Context, page, limit int) (domain.ListResponseDTO, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out domain.ListResponseDTO
	if err := c.do(ctx, http.MethodGet, "/user?"+q.Encode(), nil, &out); err != nil {
		return domain.ListResponseDTO{}, err
	}
	return out, nil
}

func (c *HTTP) GetUser(ctx context.Context, id string) (domain.UserFullDTO, error) {
	var out domain.UserFullDTO
	if err := c.do(ctx, http.MethodGet, "/user/"+url.PathEscape(id), nil, &out); err != nil {
		return domain.UserFullDTO{}, err
	}
	return out, nil
}

func (c *HTTP) CreateUser(ctx context.Context, user domain.UserCreateDTO) (domain.UserFullDTO, error) {
	var out domain.UserFullDTO
	if err := c.do(ctx, http.MethodPost, "/user/create", user, &out); err != nil {
		return domain.UserFullDTO{}, err
	}
	return out, nil
}

func (c *HTTP) UpdateUser(ctx context.Context, id string, user domain.UserUpdateDTO) (domain.UserFullDTO, error) {
	var out domain.UserFullDTO
	if err := c.do(ctx, http.MethodPut, "/user/"+url.PathEscape(id), user, &out); err != nil {
		return domain.UserFullDTO{}, err
	}
	return out, nil
}

func (c *HTTP) DeleteUser(ctx context.Context, id string) (domain.DeleteResponseDTO, error) {
	var out domain.DeleteResponseDTO
	if err := c.do(ctx, http.MethodDelete, "/user/"+url.PathEscape(id), nil, &out); err != nil {
		return domain.DeleteResponseDTO{}, err
	}
	return out, nil
}

func (c *HTTP) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}
	u := c.Base + path
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.AppID != "" {
		req.Header.Set(AppIDHeader, c.AppID)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("user service %s %s: %w", strings.ToLower(method), u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method:     method,
			URL:        u,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       b,
		}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyResponse
		}
		return fmt.Errorf("%w: decode %s %s: %v", ErrMalformedResponse, strings.ToLower(method), u, err)
	}
	return nil
}

// Compile-time assertion that HTTP implements domain.UserServiceClient.
var _ domain.UserServiceClient = (*HTTP)(nil)
