package openai

// AudioResultVerbose is the verbose_json output of the transcription and
// translation endpoints.
type AudioResultVerbose struct {
	ResultBase

	Duration float64   `json:"duration"`
	Language string    `json:"language"`
	Segments []Segment `json:"segments"`
	Task     string    `json:"task"`
	Text     string    `json:"text"`

	// Words is set when word timestamps were requested.
	Words []Word `json:"words,omitempty"`
}

// Segment is one chronological piece of a transcript.
type Segment struct {
	ID               int     `json:"id"`
	Seek             int     `json:"seek"`
	Start            float64 `json:"start"`
	End              float64 `json:"end"`
	Text             string  `json:"text"`
	Tokens           []int   `json:"tokens"`
	Temperature      float64 `json:"temperature"`
	AvgLogProb       float64 `json:"avg_logprob"`
	CompressionRatio float64 `json:"compression_ratio"`
	NoSpeechProb     float64 `json:"no_speech_prob"`
	Words            []Word  `json:"words,omitempty"`
}

// Word is a single word with its timing in seconds.
type Word struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}
