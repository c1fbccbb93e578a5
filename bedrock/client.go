package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/smithy-go"
)

// Invoker is the upstream inference API boundary. The real implementation
// talks to Bedrock; tests substitute a stub.
type Invoker interface {
	// Invoke sends one generation request and blocks until the model
	// finishes or ctx is done.
	Invoke(ctx context.Context, in GenerationInput) (*Result, error)

	// ModelID reports the model identifier requests are sent to.
	ModelID() string
}

// UpstreamError is a service-level failure reported by Bedrock itself
// (access denied, throttling, validation rejection) as opposed to a
// transport or decoding failure on our side.
type UpstreamError struct {
	Code    string
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var _ Invoker = (*Client)(nil)

// Client invokes a single Bedrock model via the synchronous InvokeModel API.
type Client struct {
	runtime *bedrockruntime.Client
	modelID string
}

// Options configures a Client. Region and ModelID are required; the access
// key pair is optional and falls back to the SDK's default credential chain.
type Options struct {
	Region    string
	ModelID   string
	AccessKey string
	SecretKey string
}

// NewClient builds the Bedrock runtime client once, at cold start. The
// returned Client is safe for concurrent use.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &Client{
		runtime: bedrockruntime.NewFromConfig(awsCfg),
		modelID: opts.ModelID,
	}, nil
}

// ModelID returns the configured model identifier.
func (c *Client) ModelID() string {
	return c.modelID
}

// Invoke marshals the Llama native request body, calls InvokeModel, and
// decodes the generation out of the response. There is no retry and no
// client-side deadline; cancellation rides ctx.
func (c *Client) Invoke(ctx context.Context, in GenerationInput) (*Result, error) {
	body, err := json.Marshal(convertInput(in))
	if err != nil {
		return nil, fmt.Errorf("encoding model request: %w", err)
	}

	out, err := c.runtime.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.modelID),
		Body:        body,
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
	})
	if err != nil {
		return nil, classifyInvokeError(err)
	}

	var resp llamaResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return nil, fmt.Errorf("decoding model response: %w", err)
	}

	return &Result{
		GeneratedText:        resp.Generation,
		PromptTokenCount:     resp.PromptTokenCount,
		GenerationTokenCount: resp.GenerationTokenCount,
		StopReason:           resp.StopReason,
	}, nil
}

// classifyInvokeError unwraps a service-level failure into an UpstreamError
// so callers can tell it apart from transport problems. Anything the SDK
// does not report as an API error passes through unchanged.
func classifyInvokeError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamError{
			Code:    apiErr.ErrorCode(),
			Message: apiErr.ErrorMessage(),
		}
	}
	return err
}
