package scenario

import (
	"context"
	"strings"

	"scamgame/internal/gemini"
	"scamgame/internal/metrics"

	"go.uber.org/zap"
)

// Provider is the outbound model call. *gemini.Client satisfies it.
type Provider interface {
	Generate(ctx context.Context, req gemini.Request) (gemini.Response, error)
}

type Options struct {
	// Temperature overrides the provider default when set.
	Temperature *float32
}

// Service runs prompt assembly, the model call and response validation for
// one request at a time. It holds no per-request state and is safe for
// concurrent use.
type Service struct {
	provider Provider
	log      *zap.Logger
	opts     Options
}

func NewService(provider Provider, log *zap.Logger, opts Options) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{provider: provider, log: log, opts: opts}
}

// Generate produces one validated scenario for prompt. Failures are always
// *Error values; exactly one provider call is made unless the prompt is empty.
func (s *Service) Generate(ctx context.Context, prompt string) (Scenario, error) {
	sc, gerr := s.generate(ctx, prompt)
	if gerr != nil {
		metrics.IncGenerateOutcome(gerr.Kind.outcome())
		return Scenario{}, gerr
	}
	metrics.IncGenerateOutcome(metrics.OutcomeSuccess)
	metrics.IncGeneratedTruth(sc.IsScam)
	return sc, nil
}

func (s *Service) generate(ctx context.Context, prompt string) (Scenario, *Error) {
	if strings.TrimSpace(prompt) == "" {
		return Scenario{}, missingInputError()
	}

	resp, err := s.provider.Generate(ctx, gemini.Request{
		UserPrompt:     assembleMessage(prompt),
		ResponseSchema: ResponseSchema(),
		Temperature:    s.opts.Temperature,
	})
	if err != nil {
		s.log.Error("provider call failed", zap.Error(err))
		return Scenario{}, providerError(err)
	}
	s.log.Debug("raw model response",
		zap.String("model", resp.Model),
		zap.String("prompt_version", PromptVersion),
		zap.String("text", resp.Text),
	)

	sc, verr := Validate(resp.Text)
	if verr != nil {
		s.log.Warn("model response rejected",
			zap.Stringer("kind", verr.Kind),
			zap.String("details", verr.Details()),
			zap.String("raw", resp.Text),
		)
		return Scenario{}, verr
	}
	return sc, nil
}
