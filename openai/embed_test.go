package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m43i/go-openai/core"
)

func decodeJSONPayload(t *testing.T, r *http.Request) map[string]any {
	t.Helper()

	var payload map[string]any
	require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
	return payload
}

func TestEmbed(t *testing.T) {
	t.Parallel()

	var payload map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/embeddings", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		payload = decodeJSONPayload(t, r)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"index":0,"embedding":[0.1,0.2,0.3]}],"usage":{"prompt_tokens":3}}`))
	}))
	defer server.Close()

	adapter := New("test-key", "text-embedding-3-small", WithBaseURL(server.URL), WithHTTPClient(server.Client()))

	result, err := adapter.Embed(context.Background(), &core.EmbedParams{Input: "  hello world "})
	require.NoError(t, err)
	require.Equal(t, "text-embedding-3-small", payload["model"])
	require.Equal(t, "hello world", payload["input"])
	require.NotContains(t, payload, "dimensions")

	require.Equal(t, []float64{0.1, 0.2, 0.3}, result.Embedding)
	require.Equal(t, &core.Usage{PromptTokens: 3, TotalTokens: 3}, result.Usage)
}

func TestEmbedManyOrdersByIndex(t *testing.T) {
	t.Parallel()

	var payload map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload = decodeJSONPayload(t, r)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"index":1,"embedding":[2.1,2.2]},{"index":0,"embedding":[1.1,1.2]}],"usage":{"prompt_tokens":4,"total_tokens":4}}`))
	}))
	defer server.Close()

	dimensions := int64(2)
	adapter := New("test-key", "text-embedding-3-small", WithBaseURL(server.URL), WithHTTPClient(server.Client()))

	result, err := adapter.EmbedMany(context.Background(), &core.EmbedManyParams{
		Inputs:     []string{"first", "second"},
		Dimensions: &dimensions,
	})
	require.NoError(t, err)
	require.Equal(t, []any{"first", "second"}, payload["input"])
	require.Equal(t, float64(2), payload["dimensions"])
	require.Equal(t, [][]float64{{1.1, 1.2}, {2.1, 2.2}}, result.Embeddings)
}

func TestEmbedValidatesInput(t *testing.T) {
	t.Parallel()

	adapter := New("test-key", "text-embedding-3-small")
	zero := int64(0)

	tests := []struct {
		name string
		call func() error
		want string
	}{
		{"blank input", func() error {
			_, err := adapter.Embed(context.Background(), &core.EmbedParams{Input: "   "})
			return err
		}, "embed input is required"},
		{"no inputs", func() error {
			_, err := adapter.EmbedMany(context.Background(), &core.EmbedManyParams{})
			return err
		}, "embed many inputs are required"},
		{"blank element", func() error {
			_, err := adapter.EmbedMany(context.Background(), &core.EmbedManyParams{Inputs: []string{"a", " "}})
			return err
		}, "input at index 1 is empty"},
		{"zero dimensions", func() error {
			_, err := adapter.Embed(context.Background(), &core.EmbedParams{Input: "a", Dimensions: &zero})
			return err
		}, "dimensions must be greater than zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestEmbedManyRejectsBadIndexes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want string
	}{
		{"duplicate", `[{"index":0,"embedding":[1]},{"index":0,"embedding":[2]}]`, "duplicate index 0"},
		{"missing", `[{"index":0,"embedding":[1]}]`, "missing index 1"},
		{"out of range", `[{"index":0,"embedding":[1]},{"index":5,"embedding":[2]}]`, "index 5 out of range"},
		{"empty", `[]`, "did not include any vectors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"object":"list","data":` + tt.data + `}`))
			}))
			defer server.Close()

			adapter := New("test-key", "text-embedding-3-small", WithBaseURL(server.URL), WithHTTPClient(server.Client()))

			_, err := adapter.EmbedMany(context.Background(), &core.EmbedManyParams{Inputs: []string{"a", "b"}})
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCreateEmbeddingsKeepsEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("x-request-id", "req_embed")
		w.Header().Set("openai-version", "2020-10-01")
		_, _ = w.Write([]byte(`{"object":"list","model":"text-embedding-3-small","data":[{"object":"embedding","index":0,"embedding":[0.5]}],"usage":{"prompt_tokens":1,"total_tokens":1}}`))
	}))
	defer server.Close()

	adapter := New("test-key", "text-embedding-3-small", WithBaseURL(server.URL), WithHTTPClient(server.Client()))

	result, err := adapter.CreateEmbeddings(context.Background(), []string{"hello"}, nil)
	require.NoError(t, err)
	require.Equal(t, "list", result.Object)
	require.Equal(t, "text-embedding-3-small", result.Model)
	require.Equal(t, "req_embed", result.RequestID())
	require.Equal(t, "2020-10-01", result.OpenAIVersion())
	require.Len(t, result.Data, 1)
	require.Equal(t, "embedding", result.Data[0].Object)

	_, ok := result.Created()
	require.False(t, ok, "embeddings responses carry no creation time")
}

func TestEmbeddingsResultSimilarity(t *testing.T) {
	t.Parallel()

	result := &EmbeddingsResult{Data: []EmbeddingVector{
		{Index: 2, Embedding: []float64{0, 1}},
		{Index: 0, Embedding: []float64{1, 0}},
		{Index: 1, Embedding: []float64{2, 0}},
	}}

	vectors, err := result.Vectors()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0}, {2, 0}, {0, 1}}, vectors)

	score, err := result.Similarity(0, 1)
	require.NoError(t, err)
	require.InDelta(t, 1.0, score, 1e-12)

	score, err = result.Similarity(0, 2)
	require.NoError(t, err)
	require.InDelta(t, 0.0, score, 1e-12)

	_, err = result.Similarity(0, 3)
	require.ErrorContains(t, err, "embedding index out of range")

	_, err = (&EmbeddingsResult{}).Vectors()
	require.ErrorContains(t, err, "did not include any vectors")
}

func TestEmbedReturnsBodyError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"model not allowed","metadata":["a","b"]}}`))
	}))
	defer server.Close()

	adapter := New("test-key", "text-embedding-3-small", WithBaseURL(server.URL), WithHTTPClient(server.Client()))

	_, err := adapter.Embed(context.Background(), &core.EmbedParams{Input: "hello"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 403, apiErr.Code)
	require.Equal(t, `["a","b"]`, apiErr.Metadata)
	require.Zero(t, apiErr.StatusCode)
}
