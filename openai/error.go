package openai

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// APIError is the error object returned in a response body.
//
// Metadata holds whatever JSON value the server sent under "metadata",
// compacted to a string. Its shape differs between providers, so it is never
// decoded into a fixed structure.
type APIError struct {
	Code     int    `json:"-"`
	CodeText string `json:"-"`
	Message  string `json:"message"`
	Type     string `json:"type,omitempty"`
	Param    string `json:"param,omitempty"`
	Metadata string `json:"-"`

	// StatusCode is the HTTP status of the response, zero when the error was
	// carried in a successful response body.
	StatusCode int `json:"-"`

	meta ResponseMeta
}

// errMetadataEncode is returned when an APIError is serialized. The library
// only reads this object from responses.
var errMetadataEncode = fmt.Errorf("openai: encode error metadata: %w", errors.ErrUnsupported)

func (e *APIError) Error() string {
	if e == nil {
		return "openai: <nil> API error"
	}

	var qualifiers []string
	if e.StatusCode != 0 {
		qualifiers = append(qualifiers, strconv.Itoa(e.StatusCode))
	}
	if e.Type != "" {
		qualifiers = append(qualifiers, e.Type)
	}
	switch {
	case e.CodeText != "":
		qualifiers = append(qualifiers, e.CodeText)
	case e.Code != 0:
		qualifiers = append(qualifiers, strconv.Itoa(e.Code))
	}

	message := e.Message
	if message == "" {
		message = "unknown error"
	}

	if len(qualifiers) == 0 {
		return "openai: API error: " + message
	}
	return fmt.Sprintf("openai: API error (%s): %s", strings.Join(qualifiers, ", "), message)
}

// UnmarshalJSON decodes the regular fields, then captures "metadata" and
// "code" from their raw values.
func (e *APIError) UnmarshalJSON(data []byte) error {
	type plain APIError
	var aux struct {
		*plain
		Code     json.RawMessage `json:"code"`
		Metadata json.RawMessage `json:"metadata"`
	}
	aux.plain = (*plain)(e)

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	code, codeText, err := decodeErrorCode(aux.Code)
	if err != nil {
		return fmt.Errorf("openai: decode error code: %w", err)
	}
	e.Code = code
	e.CodeText = codeText

	metadata, err := compactMetadata(aux.Metadata)
	if err != nil {
		return fmt.Errorf("openai: decode error metadata: %w", err)
	}
	e.Metadata = metadata

	return nil
}

// Meta returns the transport metadata of the failed call. It is empty when
// the error was carried in a successful response body.
func (e *APIError) Meta() ResponseMeta {
	if e == nil {
		return ResponseMeta{}
	}
	return e.meta
}

// MarshalJSON always fails: metadata cannot be written back. The value
// receiver makes this hold for addressable and non-addressable values alike.
func (e APIError) MarshalJSON() ([]byte, error) {
	return nil, errMetadataEncode
}

// compactMetadata returns raw in compact form with key order preserved. An
// absent value yields the empty string.
func compactMetadata(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// decodeErrorCode accepts numeric codes and the string codes OpenAI itself
// sends, e.g. "invalid_api_key".
func decodeErrorCode(raw json.RawMessage) (int, string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, "", nil
	}

	if raw[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, "", err
		}
		if n, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
			return n, "", nil
		}
		return 0, text, nil
	}

	var number json.Number
	if err := json.Unmarshal(raw, &number); err != nil {
		return 0, "", err
	}
	if n, err := strconv.Atoi(number.String()); err == nil {
		return n, "", nil
	}

	// Exponent forms such as 4e2 are accepted when they are whole and fit an int.
	f, err := number.Float64()
	if err != nil {
		return 0, "", fmt.Errorf("code %s is out of range", number)
	}
	if f != math.Trunc(f) {
		return 0, "", fmt.Errorf("code %s is not a whole number", number)
	}
	if f < math.MinInt || f >= math.MaxInt {
		return 0, "", fmt.Errorf("code %s is out of range", number)
	}
	return int(f), "", nil
}
