package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type audioAdapterStub struct {
	transcribeFn func(context.Context, *TranscriptionParams) (*TranscriptionResult, error)
	translateFn  func(context.Context, *TranslationParams) (*TranscriptionResult, error)
}

func (s audioAdapterStub) Transcribe(ctx context.Context, params *TranscriptionParams) (*TranscriptionResult, error) {
	return s.transcribeFn(ctx, params)
}

func (s audioAdapterStub) Translate(ctx context.Context, params *TranslationParams) (*TranscriptionResult, error) {
	return s.translateFn(ctx, params)
}

type embeddingAdapterStub struct {
	embedFn     func(context.Context, *EmbedParams) (*EmbedResult, error)
	embedManyFn func(context.Context, *EmbedManyParams) (*EmbedManyResult, error)
}

func (s embeddingAdapterStub) Embed(ctx context.Context, params *EmbedParams) (*EmbedResult, error) {
	return s.embedFn(ctx, params)
}

func (s embeddingAdapterStub) EmbedMany(ctx context.Context, params *EmbedManyParams) (*EmbedManyResult, error) {
	return s.embedManyFn(ctx, params)
}

type imageAdapterStub struct {
	generateImageFn func(context.Context, *ImageParams) (*ImageResult, error)
}

func (s imageAdapterStub) GenerateImage(ctx context.Context, params *ImageParams) (*ImageResult, error) {
	return s.generateImageFn(ctx, params)
}

func TestTranscribe(t *testing.T) {
	expected := &TranscriptionResult{Text: "hello", Segments: []TranscriptionSegment{{ID: 0, End: 1.5, Text: "hello"}}}
	adapter := audioAdapterStub{
		transcribeFn: func(_ context.Context, params *TranscriptionParams) (*TranscriptionResult, error) {
			require.NotNil(t, params)
			require.Equal(t, "clip.wav", params.Filename)
			require.Equal(t, "en", params.Language)
			return expected, nil
		},
		translateFn: func(context.Context, *TranslationParams) (*TranscriptionResult, error) {
			require.Fail(t, "translate should not be called")
			return nil, nil
		},
	}

	result, err := Transcribe(context.Background(), adapter, &TranscriptionParams{
		Audio:    []byte("x"),
		Filename: "clip.wav",
		Language: "en",
	})
	require.NoError(t, err)
	require.Same(t, expected, result)
}

func TestTranslatePropagatesError(t *testing.T) {
	sentinel := errors.New("upstream failed")
	adapter := audioAdapterStub{
		transcribeFn: func(context.Context, *TranscriptionParams) (*TranscriptionResult, error) {
			require.Fail(t, "transcribe should not be called")
			return nil, nil
		},
		translateFn: func(context.Context, *TranslationParams) (*TranscriptionResult, error) {
			return nil, sentinel
		},
	}

	_, err := Translate(context.Background(), adapter, &TranslationParams{Audio: []byte("x"), Filename: "clip.wav"})
	require.ErrorIs(t, err, sentinel)
}

func TestEmbedMany(t *testing.T) {
	expected := &EmbedManyResult{Embeddings: [][]float64{{1, 2}, {3, 4}}}
	adapter := embeddingAdapterStub{
		embedFn: func(context.Context, *EmbedParams) (*EmbedResult, error) {
			require.Fail(t, "embed should not be called")
			return nil, nil
		},
		embedManyFn: func(_ context.Context, params *EmbedManyParams) (*EmbedManyResult, error) {
			require.NotNil(t, params)
			require.Len(t, params.Inputs, 2)
			return expected, nil
		},
	}

	result, err := EmbedMany(context.Background(), adapter, &EmbedManyParams{Inputs: []string{"a", "b"}})
	require.NoError(t, err)
	require.Same(t, expected, result)

	single := &EmbedResult{Embedding: []float64{1}}
	adapter.embedFn = func(context.Context, *EmbedParams) (*EmbedResult, error) { return single, nil }
	got, err := Embed(context.Background(), adapter, &EmbedParams{Input: "a"})
	require.NoError(t, err)
	require.Same(t, single, got)
}

func TestGenerateImage(t *testing.T) {
	expected := &ImageResult{RequestID: "req_1", Images: []GeneratedImage{{URL: "https://example.com/image.png"}}}
	adapter := imageAdapterStub{
		generateImageFn: func(_ context.Context, params *ImageParams) (*ImageResult, error) {
			require.NotNil(t, params)
			require.Equal(t, "a scenic valley", params.Prompt)
			return expected, nil
		},
	}

	result, err := GenerateImage(context.Background(), adapter, &ImageParams{Prompt: "a scenic valley"})
	require.NoError(t, err)
	require.Same(t, expected, result)
}
