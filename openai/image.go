package openai

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/m43i/go-openai/core"
)

const imageGenerationsPath = "/images/generations"

var imageGenerationCounter uint64

// GenerateImage creates images with the configured OpenAI image model. An
// error object in the response body is returned as the error.
func (a *Adapter) GenerateImage(ctx context.Context, params *core.ImageParams) (*core.ImageResult, error) {
	response, err := a.CreateImage(ctx, params)
	if err != nil {
		return nil, err
	}
	if err := response.Err(); err != nil {
		return nil, err
	}

	return toCoreImageResult(response, a.Model)
}

// CreateImage calls the image generation endpoint and returns the raw result
// with response metadata. An error object in a successful body is left on the
// result.
func (a *Adapter) CreateImage(ctx context.Context, params *core.ImageParams) (*ImageGenerationResult, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}

	request, err := imageGenerationRequest(a.Model, params)
	if err != nil {
		return nil, err
	}

	var response ImageGenerationResult
	if err := a.postJSON(ctx, "image generation", imageGenerationsPath, request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// toCoreImageResult falls back to fallbackModel when the body names no model.
func toCoreImageResult(response *ImageGenerationResult, fallbackModel string) (*core.ImageResult, error) {
	if len(response.Data) == 0 {
		return nil, errors.New("openai: image generation response did not include any images")
	}

	out := &core.ImageResult{
		ID:        imageGenerationID(response),
		Model:     cmp.Or(strings.TrimSpace(response.Model), strings.TrimSpace(fallbackModel)),
		RequestID: response.RequestID(),
		Images:    make([]core.GeneratedImage, len(response.Data)),
		Usage:     toCoreImageUsage(response.Usage),
	}
	for i, image := range response.Data {
		out.Images[i] = core.GeneratedImage{
			B64JSON:       strings.TrimSpace(image.B64JSON),
			URL:           strings.TrimSpace(image.URL),
			RevisedPrompt: strings.TrimSpace(image.RevisedPrompt),
		}
	}
	return out, nil
}

func imageGenerationRequest(model string, params *core.ImageParams) (map[string]any, error) {
	if params == nil {
		return nil, errors.New("openai: image params are required")
	}

	model = strings.TrimSpace(model)
	if model == "" {
		return nil, errors.New("openai: model is required")
	}

	prompt := strings.TrimSpace(params.Prompt)
	if prompt == "" {
		return nil, errors.New("openai: image prompt is required")
	}

	n := int64(1)
	if params.NumberOfImages != nil {
		n = *params.NumberOfImages
	}
	if n < 1 {
		return nil, fmt.Errorf("openai: number of images must be at least 1; requested: %d", n)
	}

	// Options go in first so the top-level fields always win.
	request, err := imageOptionRules.normalize(params.ModelOptions)
	if err != nil {
		return nil, err
	}

	request["model"] = model
	request["prompt"] = prompt
	request["n"] = n
	if size := strings.TrimSpace(params.Size); size != "" {
		request["size"] = size
	}

	return request, nil
}

func imageGenerationID(response *ImageGenerationResult) string {
	if response != nil {
		if id := strings.TrimSpace(response.ID); id != "" {
			return id
		}
		if created, ok := response.Created(); ok && created.Unix() > 0 {
			return fmt.Sprintf("img_%d", created.Unix())
		}
	}

	counter := atomic.AddUint64(&imageGenerationCounter, 1)
	return fmt.Sprintf("img_%d_%d", time.Now().UnixNano(), counter)
}

func toCoreImageUsage(in *ImageGenerationUsage) *core.ImageUsage {
	if in == nil {
		return nil
	}

	usage := &core.ImageUsage{InputTokens: in.InputTokens, OutputTokens: in.OutputTokens, TotalTokens: in.TotalTokens}
	if usage.TotalTokens == 0 {
		usage.TotalTokens = in.InputTokens + in.OutputTokens
	}
	return usage
}
