package bedrock

// GenerationInput carries the prompt and generation parameters for one
// model invocation. Values are forwarded as-is; the service rejects
// anything it considers out of range.
type GenerationInput struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
	TopP        float64
}

// Result is the decoded model output.
type Result struct {
	GeneratedText        string
	PromptTokenCount     int
	GenerationTokenCount int
	StopReason           string
}

// llamaRequest is the native InvokeModel body for Meta Llama instruction
// models. Note the field is max_gen_len, not max_tokens.
// https://docs.aws.amazon.com/bedrock/latest/userguide/model-parameters-meta.html
type llamaRequest struct {
	Prompt      string  `json:"prompt"`
	MaxGenLen   int     `json:"max_gen_len"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

// llamaResponse is the native InvokeModel response body for Llama models.
type llamaResponse struct {
	Generation           string `json:"generation"`
	PromptTokenCount     int    `json:"prompt_token_count"`
	GenerationTokenCount int    `json:"generation_token_count"`
	StopReason           string `json:"stop_reason"`
}

func convertInput(in GenerationInput) llamaRequest {
	return llamaRequest{
		Prompt:      in.Prompt,
		MaxGenLen:   in.MaxTokens,
		Temperature: in.Temperature,
		TopP:        in.TopP,
	}
}
