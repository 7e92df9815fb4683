package core

import "context"

// Embed creates a single embedding vector through the provided adapter.
//
// Preferred usage is to use core and add a provider adapter there; this
// helper exists for direct adapter calls.
func Embed(ctx context.Context, adapter EmbeddingAdapter, params *EmbedParams) (*EmbedResult, error) {
	return adapter.Embed(ctx, params)
}

// EmbedMany creates embedding vectors for multiple inputs through the provided adapter.
//
// Preferred usage is to use core and add a provider adapter there; this
// helper exists for direct adapter calls.
func EmbedMany(ctx context.Context, adapter EmbeddingAdapter, params *EmbedManyParams) (*EmbedManyResult, error) {
	return adapter.EmbedMany(ctx, params)
}

// GenerateImage creates images through the provided adapter.
//
// Preferred usage is to use core and add a provider adapter there; this
// helper exists for direct adapter calls.
func GenerateImage(ctx context.Context, adapter ImageAdapter, params *ImageParams) (*ImageResult, error) {
	return adapter.GenerateImage(ctx, params)
}

// Transcribe converts audio to text through the provided adapter.
//
// Preferred usage is to use core and add a provider adapter there; this
// helper exists for direct adapter calls.
func Transcribe(ctx context.Context, adapter TranscriptionAdapter, params *TranscriptionParams) (*TranscriptionResult, error) {
	return adapter.Transcribe(ctx, params)
}

// Translate converts audio to English text through the provided adapter.
func Translate(ctx context.Context, adapter TranslationAdapter, params *TranslationParams) (*TranscriptionResult, error) {
	return adapter.Translate(ctx, params)
}
