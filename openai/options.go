package openai

import (
	"fmt"
	"strings"
)

// modelOptionRules describes how one endpoint accepts pass-through options.
type modelOptionRules struct {
	kind     string
	reserved map[string]struct{}
	aliases  map[string]string
}

var transcriptionOptionRules = modelOptionRules{
	kind:     "transcription",
	reserved: map[string]struct{}{"model": {}, "file": {}, "language": {}},
	aliases: map[string]string{
		"responseFormat":         responseFormatKey,
		"timestampGranularities": "timestamp_granularities[]",
	},
}

var translationOptionRules = modelOptionRules{
	kind:     "translation",
	reserved: map[string]struct{}{"model": {}, "file": {}},
	aliases:  map[string]string{"responseFormat": responseFormatKey},
}

var imageOptionRules = modelOptionRules{
	kind:     "image",
	reserved: map[string]struct{}{"model": {}, "prompt": {}, "n": {}, "size": {}},
	aliases: map[string]string{
		"outputFormat":      "output_format",
		"outputCompression": "output_compression",
		"responseFormat":    responseFormatKey,
		"partialImages":     "partial_images",
	},
}

// normalize maps camelCase aliases to wire names and rejects keys that
// collide with top-level parameters or with each other. The result is never nil.
func (r modelOptionRules) normalize(options map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(options)+1)
	for key, value := range options {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		wireKey := key
		if alias, ok := r.aliases[key]; ok {
			wireKey = alias
		}

		if _, reserved := r.reserved[wireKey]; reserved {
			return nil, fmt.Errorf("openai: model option %q conflicts with top-level %s parameters", key, r.kind)
		}
		if _, duplicate := out[wireKey]; duplicate {
			return nil, fmt.Errorf("openai: duplicate %s model option key %q", r.kind, wireKey)
		}

		out[wireKey] = value
	}

	return out, nil
}
