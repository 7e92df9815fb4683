package openai

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Header names exchanged with the API.
const (
	headerOrganization   = "Openai-Organization"
	headerProcessingMS   = "Openai-Processing-Ms"
	headerRequestID      = "X-Request-Id"
	headerOpenAIVersion  = "Openai-Version"
	headerClientRequest  = "X-Client-Request-Id"
	headerOrganizationIn = "OpenAI-Organization"
	headerProjectIn      = "OpenAI-Project"
)

// ResponseMeta is the out-of-band metadata of one API call. It comes from
// response headers and local timing, never from the JSON body.
type ResponseMeta struct {
	Organization   string
	ProcessingTime time.Duration
	RequestID      string
	OpenAIVersion  string
}

// ResultBase holds the metadata every endpoint returns. Concrete result types
// embed it.
//
// The JSON fields are populated when the body is decoded. The transport
// metadata is assigned once by the Adapter after a successful decode and is
// read-only afterwards.
type ResultBase struct {
	// CreatedUnixTime is the creation time in seconds since the Unix epoch,
	// nil when the endpoint does not report it.
	CreatedUnixTime *int64 `json:"created,omitempty"`

	// Model is the model that produced the result.
	Model string `json:"model,omitempty"`

	// Object is the response kind, e.g. "list", "file", "transcription".
	Object string `json:"object,omitempty"`

	// Error is set when the API reported a failure in the body.
	Error *APIError `json:"error,omitempty"`

	meta    ResponseMeta
	metaSet bool
}

// Created returns the creation time in UTC. The second value is false when
// the response carried no creation time.
func (r *ResultBase) Created() (time.Time, bool) {
	if r == nil || r.CreatedUnixTime == nil {
		return time.Time{}, false
	}
	return time.Unix(*r.CreatedUnixTime, 0).UTC(), true
}

// Organization is the organization the request was billed to.
func (r *ResultBase) Organization() string { return r.meta.Organization }

// ProcessingTime is the server-side processing time as reported by the API,
// or the measured round trip when the API did not report it.
func (r *ResultBase) ProcessingTime() time.Duration { return r.meta.ProcessingTime }

// RequestID is the x-request-id of the call. Quote it when contacting support.
func (r *ResultBase) RequestID() string { return r.meta.RequestID }

// OpenAIVersion is the API version that served the request.
func (r *ResultBase) OpenAIVersion() string { return r.meta.OpenAIVersion }

// Meta returns a copy of the transport metadata.
func (r *ResultBase) Meta() ResponseMeta { return r.meta }

// Err returns the API error carried in the body, or nil.
func (r *ResultBase) Err() error {
	if r == nil || r.Error == nil {
		return nil
	}
	return r.Error
}

func (r *ResultBase) resultBase() *ResultBase { return r }

// setMeta assigns the transport metadata. Only the first call has an effect.
func (r *ResultBase) setMeta(meta ResponseMeta) {
	if r.metaSet {
		return
	}
	r.meta = meta
	r.metaSet = true
}

// result is implemented by every type that embeds ResultBase.
type result interface {
	resultBase() *ResultBase
}

func responseMetaFromHeader(header http.Header, elapsed time.Duration) ResponseMeta {
	meta := ResponseMeta{
		Organization:   strings.TrimSpace(header.Get(headerOrganization)),
		RequestID:      strings.TrimSpace(header.Get(headerRequestID)),
		OpenAIVersion:  strings.TrimSpace(header.Get(headerOpenAIVersion)),
		ProcessingTime: elapsed,
	}

	if raw := strings.TrimSpace(header.Get(headerProcessingMS)); raw != "" {
		if ms, err := strconv.ParseFloat(raw, 64); err == nil && ms >= 0 {
			meta.ProcessingTime = time.Duration(ms * float64(time.Millisecond))
		}
	}

	return meta
}
