package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m43i/go-openai/core"
)

const embeddingsPath = "/embeddings"

// Embed creates one embedding vector for params.Input.
func (a *Adapter) Embed(ctx context.Context, params *core.EmbedParams) (*core.EmbedResult, error) {
	if params == nil {
		return nil, errors.New("openai: embed params are required")
	}

	input := strings.TrimSpace(params.Input)
	if input == "" {
		return nil, errors.New("openai: embed input is required")
	}

	vectors, usage, err := a.embedInputs(ctx, []string{input}, params.Dimensions)
	if err != nil {
		return nil, err
	}

	return &core.EmbedResult{Embedding: vectors[0], Usage: usage}, nil
}

// EmbedMany creates embedding vectors for params.Inputs, in input order.
func (a *Adapter) EmbedMany(ctx context.Context, params *core.EmbedManyParams) (*core.EmbedManyResult, error) {
	if params == nil {
		return nil, errors.New("openai: embed many params are required")
	}

	vectors, usage, err := a.embedInputs(ctx, params.Inputs, params.Dimensions)
	if err != nil {
		return nil, err
	}

	return &core.EmbedManyResult{Embeddings: vectors, Usage: usage}, nil
}

// CreateEmbeddings calls the embeddings endpoint for inputs and returns the
// raw result with response metadata. An error object in a successful body is
// left on the result.
func (a *Adapter) CreateEmbeddings(ctx context.Context, inputs []string, dimensions *int64) (*EmbeddingsResult, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}

	request, err := newEmbeddingRequest(a.Model, inputs, dimensions)
	if err != nil {
		return nil, err
	}

	var response EmbeddingsResult
	if err := a.postJSON(ctx, "embeddings", embeddingsPath, &request, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// Vectors returns the embeddings ordered by their index field.
func (r *EmbeddingsResult) Vectors() ([][]float64, error) {
	return orderedEmbeddingVectors(r.Data, len(r.Data))
}

// Similarity returns the cosine similarity of the embeddings at indexes i and j.
func (r *EmbeddingsResult) Similarity(i, j int) (float64, error) {
	vectors, err := r.Vectors()
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= len(vectors) || j < 0 || j >= len(vectors) {
		return 0, fmt.Errorf("openai: embedding index out of range (have %d vectors)", len(vectors))
	}

	return core.CosineSimilarity(vectors[i], vectors[j])
}

// embedInputs backs Embed and EmbedMany: a body error becomes the returned
// error and vectors come back in input order.
func (a *Adapter) embedInputs(ctx context.Context, inputs []string, dimensions *int64) ([][]float64, *core.Usage, error) {
	response, err := a.CreateEmbeddings(ctx, inputs, dimensions)
	if err != nil {
		return nil, nil, err
	}
	if err := response.Err(); err != nil {
		return nil, nil, err
	}

	vectors, err := orderedEmbeddingVectors(response.Data, len(inputs))
	if err != nil {
		return nil, nil, err
	}

	return vectors, toCoreEmbeddingUsage(response.Usage), nil
}

// newEmbeddingRequest sends a single input as a string and several as an array.
func newEmbeddingRequest(model string, inputs []string, dimensions *int64) (embeddingRequest, error) {
	if len(inputs) == 0 {
		return embeddingRequest{}, errors.New("openai: embed many inputs are required")
	}
	if dimensions != nil && *dimensions <= 0 {
		return embeddingRequest{}, errors.New("openai: embed dimensions must be greater than zero")
	}

	trimmed := make([]string, len(inputs))
	for i, input := range inputs {
		trimmed[i] = strings.TrimSpace(input)
		if trimmed[i] == "" {
			return embeddingRequest{}, fmt.Errorf("openai: embed many input at index %d is empty", i)
		}
	}

	request := embeddingRequest{Model: model, Input: trimmed, Dimensions: dimensions}
	if len(trimmed) == 1 {
		request.Input = trimmed[0]
	}
	return request, nil
}

func orderedEmbeddingVectors(data []EmbeddingVector, expectedCount int) ([][]float64, error) {
	if len(data) == 0 {
		return nil, errors.New("openai: embeddings response did not include any vectors")
	}

	out := make([][]float64, expectedCount)
	for _, vector := range data {
		switch {
		case vector.Index < 0 || vector.Index >= expectedCount:
			return nil, fmt.Errorf("openai: embeddings response index %d out of range", vector.Index)
		case out[vector.Index] != nil:
			return nil, fmt.Errorf("openai: embeddings response contains duplicate index %d", vector.Index)
		}
		out[vector.Index] = append(make([]float64, 0, len(vector.Embedding)), vector.Embedding...)
	}

	for i, vector := range out {
		if vector == nil {
			return nil, fmt.Errorf("openai: embeddings response is missing index %d", i)
		}
	}

	return out, nil
}

func toCoreEmbeddingUsage(in *EmbeddingUsage) *core.Usage {
	if in == nil {
		return nil
	}

	usage := &core.Usage{PromptTokens: in.PromptTokens, TotalTokens: in.TotalTokens}
	if usage.TotalTokens == 0 {
		usage.TotalTokens = in.PromptTokens
	}
	return usage
}
