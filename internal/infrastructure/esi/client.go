// Package esi implements the outbound transport to the ESI HTTP+JSON API.
// Operations are named "<Category>.<method>" and return decoded JSON
// (object or array). "Not found" is distinguished from other failures.
package esi

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
	"time"

	"eveuniverse/internal/shared/config"
	"eveuniverse/internal/shared/constants"
	"eveuniverse/internal/shared/errors"
	"eveuniverse/internal/shared/logger"
)

// ESI answers with 420 once a client exhausts its error budget.
const statusErrorLimited = 420

// Params holds keyword-style parameters for an operation. Path parameters are
// matched by name; "ids" becomes the POST body for name resolution.
type Params map[string]any

// Transport exposes the remote API as named operations.
type Transport interface {
	Call(ctx context.Context, op Operation, params Params) (any, error)
}

// Client is the HTTP implementation of Transport.
type Client struct {
	httpClient *http.Client
	baseURL    string
	datasource string
	userAgent  string
	logger     logger.Interface
}

var _ Transport = (*Client)(nil)

// NewClient creates an ESI client from config.
func NewClient(cfg *config.ESIConfig, log logger.Interface) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		datasource: cfg.Datasource,
		userAgent:  cfg.UserAgent,
		logger:     log.Named("esi"),
	}
}

// Call performs the named operation and returns the decoded JSON result.
// Paged list endpoints are drained: all pages announced via X-Pages are
// fetched and concatenated.
func (c *Client) Call(ctx context.Context, op Operation, params Params) (any, error) {
	rt, ok := routes[op]
	if !ok {
		return nil, errors.NewTransportPermanentError("unknown esi operation", string(op))
	}

	reqURL, body, err := c.buildRequest(rt, params)
	if err != nil {
		return nil, err
	}

	result, pages, err := c.do(ctx, rt.method, reqURL, body)
	if err != nil {
		return nil, err
	}

	if rt.paged && pages > 1 {
		all, ok := result.([]any)
		if !ok {
			return result, nil
		}
		for page := 2; page <= pages; page++ {
			pageURL := withPage(reqURL, page)
			pageResult, _, err := c.do(ctx, rt.method, pageURL, nil)
			if err != nil {
				return nil, err
			}
			pageItems, ok := pageResult.([]any)
			if !ok {
				return nil, errors.NewTransportPermanentError(
					"unexpected payload shape on paged endpoint", string(op))
			}
			all = append(all, pageItems...)
		}
		result = all
	}

	return result, nil
}

func (c *Client) buildRequest(rt route, params Params) (string, []byte, error) {
	path := rt.path
	query := url.Values{}
	if c.datasource != "" {
		query.Set("datasource", c.datasource)
	}

	var body []byte
	for name, value := range params {
		placeholder := "{" + name + "}"
		switch {
		case strings.Contains(path, placeholder):
			path = strings.Replace(path, placeholder, fmt.Sprint(value), 1)
		case name == "ids" && rt.method == http.MethodPost:
			data, err := json.Marshal(value)
			if err != nil {
				return "", nil, errors.NewTransportPermanentError(
					"failed to encode request body", err.Error())
			}
			body = data
		default:
			query.Set(name, fmt.Sprint(value))
		}
	}

	if strings.Contains(path, "{") {
		return "", nil, errors.NewTransportPermanentError("missing path parameter", path)
	}

	reqURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}
	return reqURL, body, nil
}

func (c *Client) do(ctx context.Context, method, reqURL string, body []byte) (any, int, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, 0, errors.NewTransportPermanentError("failed to build request", err.Error())
	}
	req.Header.Set(constants.HeaderUserAgent, c.userAgent)
	if body != nil {
		req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network level failures (connection refused, timeout) are transient.
		return nil, 0, errors.NewTransportTransientError("esi request failed", err.Error())
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, errors.NewTransportTransientError("failed to read esi response", err.Error())
	}

	if err := statusError(resp.StatusCode, reqURL, data); err != nil {
		return nil, 0, err
	}

	var result any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, 0, errors.NewTransportPermanentError("invalid json from esi", err.Error())
	}

	pages := 1
	if raw := resp.Header.Get(constants.HeaderPages); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 1 {
			pages = n
		}
	}

	c.logger.Debugw("esi request completed", "method", method, "url", reqURL, "pages", pages)
	return result, pages, nil
}

func statusError(status int, reqURL string, body []byte) error {
	switch {
	case status < 400:
		return nil
	case status == http.StatusNotFound:
		return errors.NewNotFoundError("esi record not found", reqURL)
	// 420 is ESI's error-rate limit; back off and retry like an outage
	case status == statusErrorLimited,
		status == http.StatusBadGateway,
		status == http.StatusServiceUnavailable,
		status == http.StatusGatewayTimeout:
		return errors.NewTransportTransientError(
			fmt.Sprintf("esi returned %d", status), reqURL)
	default:
		return errors.NewTransportPermanentError(
			fmt.Sprintf("esi returned %d", status), string(body))
	}
}

func withPage(reqURL string, page int) string {
	sep := "?"
	if strings.Contains(reqURL, "?") {
		sep = "&"
	}
	return reqURL + sep + "page=" + strconv.Itoa(page)
}
