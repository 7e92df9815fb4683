package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxErrorBodyBytes = 2 * 1024 * 1024

// apiRequest describes one call to an endpoint.
type apiRequest struct {
	name        string
	path        string
	body        io.Reader
	contentType string
}

// do sends req and decodes a successful body into out. The transport metadata
// is assigned on out only after the body decoded cleanly.
//
// A status of 400 or above is returned as *APIError. A successful body that
// carries an "error" object is left on out for the caller to inspect.
func (a *Adapter) do(ctx context.Context, req apiRequest, out result) error {
	url := strings.TrimRight(a.baseURL(), "/") + req.path
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, req.body)
	if err != nil {
		return fmt.Errorf("openai: build %s request: %w", req.name, err)
	}

	clientRequestID := uuid.NewString()
	httpReq.Header.Set("Authorization", "Bearer "+a.APIKey)
	httpReq.Header.Set("Content-Type", req.contentType)
	httpReq.Header.Set(headerClientRequest, clientRequestID)
	if a.Organization != "" {
		httpReq.Header.Set(headerOrganizationIn, a.Organization)
	}
	if a.Project != "" {
		httpReq.Header.Set(headerProjectIn, a.Project)
	}

	started := time.Now()
	httpResp, err := a.client().Do(httpReq)
	if err != nil {
		return fmt.Errorf("openai: %s request failed: %w", req.name, err)
	}
	defer httpResp.Body.Close()

	meta := responseMetaFromHeader(httpResp.Header, time.Since(started))

	a.logger().LogAttrs(ctx, slog.LevelDebug, "openai request completed",
		slog.String("endpoint", req.name),
		slog.Int("status", httpResp.StatusCode),
		slog.String("request_id", meta.RequestID),
		slog.String("client_request_id", clientRequestID),
		slog.Duration("processing_time", meta.ProcessingTime),
	)

	if httpResp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(httpResp, meta)
	}

	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		return fmt.Errorf("openai: decode %s response: %w", req.name, err)
	}

	out.resultBase().setMeta(meta)
	return nil
}

func (a *Adapter) postJSON(ctx context.Context, name, path string, payload any, out result) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("openai: marshal %s request: %w", name, err)
	}

	return a.do(ctx, apiRequest{
		name:        name,
		path:        path,
		body:        bytes.NewReader(body),
		contentType: "application/json",
	}, out)
}

// decodeAPIError turns an error response into *APIError. When the body has no
// error object, or the object has no message, the raw body text is used as the
// message.
func decodeAPIError(resp *http.Response, meta ResponseMeta) error {
	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if readErr != nil {
		return fmt.Errorf("openai: API status %d and failed to read error body: %w", resp.StatusCode, readErr)
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}

	var envelope struct {
		Error *APIError `json:"error"`
	}
	apiErr := &APIError{}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		apiErr = envelope.Error
	}
	if apiErr.Message == "" {
		apiErr.Message = text
	}

	apiErr.StatusCode = resp.StatusCode
	apiErr.meta = meta
	return apiErr
}
