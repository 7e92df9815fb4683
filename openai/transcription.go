package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/m43i/go-openai/core"
)

const (
	transcriptionsPath = "/audio/transcriptions"
	translationsPath   = "/audio/translations"

	responseFormatKey     = "response_format"
	responseFormatVerbose = "verbose_json"
)

// audioForm is the multipart payload shared by transcription and translation.
type audioForm struct {
	kind     string
	audio    []byte
	filename string
	language string
	options  map[string]any
	rules    modelOptionRules
}

// Transcribe converts audio to text using the configured OpenAI model.
//
// An error object in the response body is returned as the error.
func (a *Adapter) Transcribe(ctx context.Context, params *core.TranscriptionParams) (*core.TranscriptionResult, error) {
	response, err := a.TranscribeVerbose(ctx, params)
	if err != nil {
		return nil, err
	}
	if err := response.Err(); err != nil {
		return nil, err
	}

	return toCoreTranscriptionResult(response), nil
}

// TranscribeVerbose converts audio to text and returns the full verbose_json
// result, including response metadata.
//
// The OpenAI transcription API requires multipart/form-data. Audio bytes and
// filename are sent as the "file" field; all other parameters are sent as
// form fields alongside it. response_format defaults to verbose_json.
func (a *Adapter) TranscribeVerbose(ctx context.Context, params *core.TranscriptionParams) (*AudioResultVerbose, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}

	body, contentType, err := buildTranscriptionForm(a.Model, params)
	if err != nil {
		return nil, err
	}

	var response AudioResultVerbose
	if err := a.do(ctx, apiRequest{
		name:        "transcription",
		path:        transcriptionsPath,
		body:        body,
		contentType: contentType,
	}, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// Translate converts audio in any supported language to English text.
//
// An error object in the response body is returned as the error.
func (a *Adapter) Translate(ctx context.Context, params *core.TranslationParams) (*core.TranscriptionResult, error) {
	response, err := a.TranslateVerbose(ctx, params)
	if err != nil {
		return nil, err
	}
	if err := response.Err(); err != nil {
		return nil, err
	}

	return toCoreTranscriptionResult(response), nil
}

// TranslateVerbose translates audio to English and returns the full
// verbose_json result, including response metadata.
func (a *Adapter) TranslateVerbose(ctx context.Context, params *core.TranslationParams) (*AudioResultVerbose, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}

	body, contentType, err := buildTranslationForm(a.Model, params)
	if err != nil {
		return nil, err
	}

	var response AudioResultVerbose
	if err := a.do(ctx, apiRequest{
		name:        "translation",
		path:        translationsPath,
		body:        body,
		contentType: contentType,
	}, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func buildTranscriptionForm(model string, params *core.TranscriptionParams) (*bytes.Buffer, string, error) {
	if params == nil {
		return nil, "", errors.New("openai: transcription params are required")
	}

	return buildAudioForm(model, audioForm{
		kind:     "transcription",
		audio:    params.Audio,
		filename: params.Filename,
		language: params.Language,
		options:  params.ModelOptions,
		rules:    transcriptionOptionRules,
	})
}

func buildTranslationForm(model string, params *core.TranslationParams) (*bytes.Buffer, string, error) {
	if params == nil {
		return nil, "", errors.New("openai: translation params are required")
	}

	return buildAudioForm(model, audioForm{
		kind:     "translation",
		audio:    params.Audio,
		filename: params.Filename,
		options:  params.ModelOptions,
		rules:    translationOptionRules,
	})
}

func buildAudioForm(model string, form audioForm) (*bytes.Buffer, string, error) {
	if len(form.audio) == 0 {
		return nil, "", fmt.Errorf("openai: %s audio data is required", form.kind)
	}

	filename := strings.TrimSpace(form.filename)
	if filename == "" {
		return nil, "", fmt.Errorf("openai: %s filename is required", form.kind)
	}

	model = strings.TrimSpace(model)
	if model == "" {
		return nil, "", errors.New("openai: model is required")
	}

	modelOptions, err := form.rules.normalize(form.options)
	if err != nil {
		return nil, "", err
	}
	if err := ensureJSONResponseFormat(modelOptions); err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("model", model); err != nil {
		return nil, "", fmt.Errorf("openai: write model field: %w", err)
	}

	language := strings.TrimSpace(form.language)
	if language != "" {
		if err := writer.WriteField("language", language); err != nil {
			return nil, "", fmt.Errorf("openai: write language field: %w", err)
		}
	}

	for key, value := range modelOptions {
		stringValue, err := modelOptionToString(value)
		if err != nil {
			return nil, "", fmt.Errorf("openai: model option %q: %w", key, err)
		}
		if err := writer.WriteField(key, stringValue); err != nil {
			return nil, "", fmt.Errorf("openai: write model option %q: %w", key, err)
		}
	}

	filePart, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", fmt.Errorf("openai: create file form field: %w", err)
	}
	if _, err := filePart.Write(form.audio); err != nil {
		return nil, "", fmt.Errorf("openai: write audio data: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("openai: close multipart writer: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}

// ensureJSONResponseFormat defaults response_format to verbose_json. The
// plain-text formats (text, srt, vtt) cannot be decoded into a result.
func ensureJSONResponseFormat(modelOptions map[string]any) error {
	value, ok := modelOptions[responseFormatKey]
	if !ok {
		modelOptions[responseFormatKey] = responseFormatVerbose
		return nil
	}

	format, _ := value.(string)
	switch strings.TrimSpace(format) {
	case "json", responseFormatVerbose:
		return nil
	default:
		return fmt.Errorf("openai: unsupported response_format %v; use json or verbose_json", value)
	}
}

func modelOptionToString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case float64:
		return fmt.Sprintf("%g", v), nil
	case float32:
		return fmt.Sprintf("%g", v), nil
	case int:
		return fmt.Sprintf("%d", v), nil
	case int64:
		return fmt.Sprintf("%d", v), nil
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	case []string:
		return strings.Join(v, ","), nil
	default:
		b, err := json.Marshal(value)
		if err != nil {
			return "", fmt.Errorf("cannot convert value of type %T to string: %w", value, err)
		}
		return string(b), nil
	}
}

func toCoreTranscriptionResult(resp *AudioResultVerbose) *core.TranscriptionResult {
	if resp == nil {
		return &core.TranscriptionResult{}
	}

	result := &core.TranscriptionResult{
		Text:      resp.Text,
		Language:  resp.Language,
		Duration:  resp.Duration,
		RequestID: resp.RequestID(),
	}

	if len(resp.Segments) > 0 {
		result.Segments = make([]core.TranscriptionSegment, 0, len(resp.Segments))
		for _, seg := range resp.Segments {
			coreSegment := core.TranscriptionSegment{
				ID:    seg.ID,
				Start: seg.Start,
				End:   seg.End,
				Text:  seg.Text,
			}

			if len(seg.Words) > 0 {
				coreSegment.Words = toCoreTranscriptionWords(seg.Words)
			}

			result.Segments = append(result.Segments, coreSegment)
		}
	}

	// Word granularity without segment granularity puts words at the top level.
	if len(resp.Words) > 0 && len(result.Segments) == 0 {
		result.Segments = []core.TranscriptionSegment{
			{
				Start: 0,
				End:   resp.Duration,
				Text:  resp.Text,
				Words: toCoreTranscriptionWords(resp.Words),
			},
		}
	}

	return result
}

func toCoreTranscriptionWords(words []Word) []core.TranscriptionWord {
	out := make([]core.TranscriptionWord, 0, len(words))
	for _, w := range words {
		out = append(out, core.TranscriptionWord{
			Word:  w.Word,
			Start: w.Start,
			End:   w.End,
		})
	}
	return out
}
