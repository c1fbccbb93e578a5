package handler

// invocationPayload represents the expected JSON structure of an invocation
// payload. Pointer fields so an absent key can be told apart from a zero.
type invocationPayload struct {
	Prompt      *string  `json:"prompt"`
	MaxTokens   *int     `json:"max_tokens"`
	Temperature *float64 `json:"temperature"`
	TopP        *float64 `json:"top_p"`
}

// InvocationRequest is a fully normalized invocation: every field carries
// either the supplied value or its default. It lives for exactly one call.
type InvocationRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
	TopP        float64
}

// Parameters echoes the generation parameters actually used.
type Parameters struct {
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

// ResponseBody is the structured payload inside the response envelope.
// Success and failure populate disjoint field sets.
type ResponseBody struct {
	Success       bool        `json:"success"`
	GeneratedText string      `json:"generated_text,omitempty"`
	ModelID       string      `json:"model_id,omitempty"`
	InputPrompt   string      `json:"input_prompt,omitempty"`
	Parameters    *Parameters `json:"parameters,omitempty"`
	Error         string      `json:"error,omitempty"`
	Message       string      `json:"message,omitempty"`
}

// InvocationResponse is the envelope every invocation resolves to, success
// or not.
type InvocationResponse struct {
	StatusCode int          `json:"statusCode"`
	Body       ResponseBody `json:"body"`
}
