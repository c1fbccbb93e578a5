package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"promptfn/bedrock"
)

// DefaultPrompt stands in when a payload carries no prompt at all.
const DefaultPrompt = "Hello, how are you?"

// Defaults are the generation parameters applied to fields the payload
// leaves out.
type Defaults struct {
	MaxTokens   int
	Temperature float64
	TopP        float64
}

// Handler turns one raw invocation payload into one response envelope.
// It holds no per-call state and is safe for concurrent use.
type Handler struct {
	invoker  bedrock.Invoker
	defaults Defaults
}

// New creates a Handler around the given upstream invoker.
func New(invoker bedrock.Invoker, defaults Defaults) *Handler {
	return &Handler{
		invoker:  invoker,
		defaults: defaults,
	}
}

// Handle runs one invocation: decode, normalize, invoke upstream, map the
// outcome. Every call returns a well-formed envelope; no error and no panic
// crosses this boundary.
func (h *Handler) Handle(ctx context.Context, raw []byte) (resp InvocationResponse) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Unexpected panic: %v", r)
			resp = failureResponse(http.StatusInternalServerError, "Unexpected error", fmt.Sprint(r))
		}
	}()

	req, err := h.decode(raw)
	if err != nil {
		log.Errorf("JSON parsing error: %v", err)
		return failureResponse(http.StatusBadRequest, "Invalid JSON format", err.Error())
	}

	log.Infof("Processing request with prompt: %s...", truncate(req.Prompt, 100))

	result, err := h.invoker.Invoke(ctx, bedrock.GenerationInput{
		Prompt:      req.Prompt,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		TopP:        req.TopP,
	})
	if err != nil {
		var upstream *bedrock.UpstreamError
		if errors.As(err, &upstream) {
			log.Errorf("AWS Client Error: %s - %s", upstream.Code, upstream.Message)
			return failureResponse(http.StatusInternalServerError, "AWS Error: "+upstream.Code, upstream.Message)
		}
		log.Errorf("Unexpected error: %v", err)
		return failureResponse(http.StatusInternalServerError, "Unexpected error", err.Error())
	}

	log.Infoln("Successfully generated response")

	return InvocationResponse{
		StatusCode: http.StatusOK,
		Body: ResponseBody{
			Success:       true,
			GeneratedText: result.GeneratedText,
			ModelID:       h.invoker.ModelID(),
			InputPrompt:   req.Prompt,
			Parameters: &Parameters{
				MaxTokens:   req.MaxTokens,
				Temperature: req.Temperature,
				TopP:        req.TopP,
			},
		},
	}
}

// decode parses the raw payload and applies defaults. A JSON string payload
// is unwrapped once and parsed again, matching the double-encoded events
// the function historically received. Supplied values are not bounds
// checked; out-of-range parameters are forwarded for the upstream to judge.
func (h *Handler) decode(raw []byte) (InvocationRequest, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return InvocationRequest{}, err
		}
		trimmed = []byte(inner)
	}

	var payload invocationPayload
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return InvocationRequest{}, err
	}

	req := InvocationRequest{
		Prompt:      DefaultPrompt,
		MaxTokens:   h.defaults.MaxTokens,
		Temperature: h.defaults.Temperature,
		TopP:        h.defaults.TopP,
	}
	if payload.Prompt != nil {
		req.Prompt = *payload.Prompt
	}
	if payload.MaxTokens != nil {
		req.MaxTokens = *payload.MaxTokens
	}
	if payload.Temperature != nil {
		req.Temperature = *payload.Temperature
	}
	if payload.TopP != nil {
		req.TopP = *payload.TopP
	}

	return req, nil
}

func failureResponse(status int, kind, message string) InvocationResponse {
	return InvocationResponse{
		StatusCode: status,
		Body: ResponseBody{
			Success: false,
			Error:   kind,
			Message: message,
		},
	}
}

// truncate shortens s to at most n runes. Counting runes rather than bytes
// keeps a multibyte character from being split at the boundary.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
