package openai

type embeddingRequest struct {
	Model      string `json:"model"`
	Input      any    `json:"input"`
	Dimensions *int64 `json:"dimensions,omitempty"`
}

// EmbeddingsResult is the response of the embeddings endpoint.
type EmbeddingsResult struct {
	ResultBase

	Data  []EmbeddingVector `json:"data"`
	Usage *EmbeddingUsage   `json:"usage,omitempty"`
}

type EmbeddingVector struct {
	Object    string    `json:"object,omitempty"`
	Embedding []float64 `json:"embedding"`
	Index     int       `json:"index"`
}

type EmbeddingUsage struct {
	PromptTokens int64 `json:"prompt_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}
