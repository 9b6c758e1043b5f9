package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// TokenSource supplies the current bearer credential; an empty string
// means the request goes out unauthenticated and the server decides.
type TokenSource interface {
	Token() string
}

// File is one upload item. Size is known up front so callers can
// validate caps before any bytes move.
type File struct {
	Name    string
	Size    int64
	Content io.Reader
}

// Client is the single choke-point for outbound calls to the grading
// backend. The base URL is fixed for the process lifetime.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      TokenSource
}

// Options configures a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	// Transport overrides the default transport; tests use this to
	// count or fake round trips.
	Transport http.RoundTripper
}

func New(opts Options, creds TokenSource) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(opts.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: opts.Transport,
		},
		creds: creds,
	}
}

type staticToken string

func (t staticToken) Token() string { return string(t) }

// WithToken returns a copy of the client bound to a fixed credential
// instead of the live session. Used when a call must carry a token the
// session no longer holds, e.g. the post-clear logout notification.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.creds = staticToken(token)
	return &cp
}

// wire mirrors the backend's response shape with the payload left raw
// so each call site can decode into its own type.
type wire struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// Get performs a GET against path and normalizes the response.
func Get[T any](c *Client, path string) Result[T] {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return Fail[T]("Invalid request")
	}
	return do[T](c, req)
}

// PostJSON performs a JSON POST against path.
func PostJSON[T any](c *Client, path string, body any) Result[T] {
	raw, err := json.Marshal(body)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to encode request body")
		return Fail[T]("Invalid request")
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return Fail[T]("Invalid request")
	}
	req.Header.Set("Content-Type", "application/json")
	return do[T](c, req)
}

// PostMultipart streams files as a multipart form under the "files"
// field. Callers validate count and size caps before calling; by the
// time a request is built the transfer is committed.
func PostMultipart[T any](c *Client, path string, files []File) Result[T] {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := mw.CreateFormFile("files", f.Name)
		if err != nil {
			return Fail[T]("Failed to encode upload")
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			log.Error().Err(err).Str("file", f.Name).Msg("Failed to read upload content")
			return Fail[T]("Failed to read upload")
		}
	}
	if err := mw.Close(); err != nil {
		return Fail[T]("Failed to encode upload")
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return Fail[T]("Invalid request")
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return do[T](c, req)
}

// do sends the request with the current credential attached and maps
// every transport-level outcome into the envelope. No error, panic or
// raw status escapes to the services layer.
func do[T any](c *Client, req *http.Request) Result[T] {
	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("Backend request failed")
		return Fail[T]("Backend is unreachable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error().Err(err).Str("url", req.URL.String()).Msg("Failed to read backend response")
		return Fail[T]("Backend returned an unreadable response")
	}

	var env wire
	if err := json.Unmarshal(body, &env); err != nil {
		log.Error().Err(err).Int("status", resp.StatusCode).Str("url", req.URL.String()).Msg("Malformed backend response")
		return Fail[T](fmt.Sprintf("Backend returned an unexpected response (status %d)", resp.StatusCode))
	}

	// A non-2xx status is a failure no matter what the body claims;
	// the envelope's error string is still the better message when the
	// backend supplied one.
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := env.Error
		if msg == "" {
			msg = fmt.Sprintf("Backend request failed (status %d)", resp.StatusCode)
		}
		return Fail[T](msg)
	}

	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = fmt.Sprintf("Backend request failed (status %d)", resp.StatusCode)
		}
		return Fail[T](msg)
	}
	if len(env.Data) == 0 {
		return Fail[T]("Backend response is missing data")
	}

	var data T
	if err := json.Unmarshal(env.Data, &data); err != nil {
		log.Error().Err(err).Str("url", req.URL.String()).Msg("Failed to decode backend payload")
		return Fail[T]("Backend returned an unexpected payload")
	}
	return OK(data)
}
