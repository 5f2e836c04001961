package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"scamgame/internal/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"
)

const (
	DefaultModel = "gemini-2.5-flash"
	tracerName   = "scamgame/internal/gemini"
)

// ErrAPIKeyMissing is returned by every call on a client built without a key.
var ErrAPIKeyMissing = errors.New("AI_STUDIO_API_KEY not set")

type Request struct {
	SystemPrompt   string
	UserPrompt     string
	ResponseSchema any
	// Temperature is left to the provider default when nil.
	Temperature     *float32
	MaxOutputTokens int32
}

type Usage struct {
	PromptTokens     int32 `json:"prompt_tokens"`
	CandidateTokens  int32 `json:"candidate_tokens"`
	TotalTokens      int32 `json:"total_tokens"`
	CachedTokenCount int32 `json:"cached_token_count"`
}

type Response struct {
	Text  string
	Usage *Usage
	Model string
}

type Config struct {
	APIKey string
	Model  string
}

// Client is created once at startup and shared read-only by all requests.
type Client struct {
	genai  *genai.Client
	model  string
	tracer trace.Tracer
}

// New builds a Client. An empty API key is not an error here: the client is
// returned unconfigured and each Generate call fails with ErrAPIKeyMissing.
func New(ctx context.Context, cfg Config) (*Client, error) {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	c := &Client{model: model, tracer: otel.Tracer(tracerName)}
	if cfg.APIKey == "" {
		return c, nil
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("new genai client: %w", err)
	}
	c.genai = gc
	return c, nil
}

// ModelName returns the resolved Gemini model name.
func (c *Client) ModelName() string {
	return c.model
}

// Configured reports whether the client holds an API key.
func (c *Client) Configured() bool {
	return c.genai != nil
}

func buildConfig(req Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature:     req.Temperature,
		MaxOutputTokens: req.MaxOutputTokens,
	}
	if req.SystemPrompt != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemPrompt}},
		}
	}
	if req.ResponseSchema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseJsonSchema = req.ResponseSchema
	}
	return cfg
}

func extractUsage(meta *genai.GenerateContentResponseUsageMetadata) *Usage {
	if meta == nil {
		return nil
	}
	return &Usage{
		PromptTokens:     meta.PromptTokenCount,
		CandidateTokens:  meta.CandidatesTokenCount,
		TotalTokens:      meta.TotalTokenCount,
		CachedTokenCount: meta.CachedContentTokenCount,
	}
}

// Generate opens a fresh chat with no history, sends req.UserPrompt as its
// only message and returns the raw reply text. It never retries.
func (c *Client) Generate(ctx context.Context, req Request) (Response, error) {
	ctx, span := c.tracer.Start(ctx, "gemini.generate", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("gen_ai.operation.name", "chat"),
		attribute.String("gen_ai.system", "gemini"),
		attribute.String("gen_ai.request.model", c.model),
	)

	resp, err := c.generate(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Response{}, err
	}
	if resp.Usage != nil {
		span.SetAttributes(
			attribute.Int("gen_ai.usage.input_tokens", int(resp.Usage.PromptTokens)),
			attribute.Int("gen_ai.usage.output_tokens", int(resp.Usage.CandidateTokens)),
		)
	}
	return resp, nil
}

func (c *Client) generate(ctx context.Context, req Request) (Response, error) {
	if c.genai == nil {
		return Response{}, ErrAPIKeyMissing
	}

	start := time.Now()
	chat, err := c.genai.Chats.Create(ctx, c.model, buildConfig(req), nil)
	if err != nil {
		return Response{}, fmt.Errorf("create chat: %w", err)
	}
	result, err := chat.SendMessage(ctx, genai.Part{Text: req.UserPrompt})
	metrics.ObserveProviderCall(time.Since(start), err)
	if err != nil {
		return Response{}, fmt.Errorf("send message: %w", err)
	}

	usage := extractUsage(result.UsageMetadata)
	if usage != nil {
		metrics.AddTokens(usage.PromptTokens, usage.CandidateTokens)
	}
	return Response{
		Text:  result.Text(),
		Usage: usage,
		Model: c.model,
	}, nil
}
