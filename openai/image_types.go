package openai

// ImageGenerationResult is the response of the image generation endpoint.
type ImageGenerationResult struct {
	ResultBase

	ID    string                `json:"id,omitempty"`
	Data  []ImageData           `json:"data"`
	Usage *ImageGenerationUsage `json:"usage,omitempty"`
}

type ImageData struct {
	B64JSON       string `json:"b64_json,omitempty"`
	URL           string `json:"url,omitempty"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

type ImageGenerationUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}
