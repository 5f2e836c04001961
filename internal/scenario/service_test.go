package scenario

import (
	"context"
	"errors"
	"testing"

	"scamgame/internal/gemini"
	"scamgame/internal/metrics"
	"scamgame/internal/mocks"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func outcomeCount(t *testing.T, outcome string) float64 {
	t.Helper()
	return testutil.ToFloat64(metrics.GenerateRequests().WithLabelValues(outcome))
}

func TestServiceGenerate_Success(t *testing.T) {
	provider := mocks.NewProvider(t)
	temp := float32(0.9)
	prompt := "a scenario about a grandmother's inheritance"

	provider.On("Generate", mock.Anything, mock.MatchedBy(func(req gemini.Request) bool {
		return req.UserPrompt == SystemInstruction+"\n\n"+prompt &&
			req.SystemPrompt == "" &&
			req.ResponseSchema != nil &&
			req.Temperature != nil && *req.Temperature == temp
	})).Return(gemini.Response{Text: validReply, Model: "test-model"}, nil).Once()

	before := outcomeCount(t, metrics.OutcomeSuccess)
	svc := NewService(provider, zap.NewNop(), Options{Temperature: &temp})
	sc, err := svc.Generate(context.Background(), prompt)
	require.NoError(t, err)
	assert.True(t, sc.IsScam)
	assert.Len(t, sc.Explanation, 3)
	assert.Equal(t, before+1, outcomeCount(t, metrics.OutcomeSuccess))
}

func TestServiceGenerate_MissingInputSkipsProvider(t *testing.T) {
	for _, prompt := range []string{"", "   ", "\n\t"} {
		provider := mocks.NewProvider(t)
		svc := NewService(provider, nil, Options{})

		_, err := svc.Generate(context.Background(), prompt)
		var gerr *Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, MissingInput, gerr.Kind)
		assert.Equal(t, "Prompt is required", gerr.Message)
		provider.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	}
}

func TestServiceGenerate_ProviderFailure(t *testing.T) {
	provider := mocks.NewProvider(t)
	boom := errors.New("quota exceeded")
	provider.On("Generate", mock.Anything, mock.Anything).
		Return(gemini.Response{}, boom).Once()

	svc := NewService(provider, nil, Options{})
	_, err := svc.Generate(context.Background(), "anything")

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, ProviderCallFailure, gerr.Kind)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "quota exceeded", gerr.Details())
}

func TestServiceGenerate_MissingAPIKeyIsProviderFailure(t *testing.T) {
	client, err := gemini.New(context.Background(), gemini.Config{})
	require.NoError(t, err)

	svc := NewService(client, nil, Options{})
	_, err = svc.Generate(context.Background(), "anything")

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, ProviderCallFailure, gerr.Kind)
	assert.ErrorIs(t, err, gemini.ErrAPIKeyMissing)
}

func TestServiceGenerate_RejectedOutputIsLogged(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind Kind
	}{
		{name: "malformed", text: "not json", kind: MalformedOutput},
		{name: "schema", text: `{"scenario":"...","decision_point":"...","is_scam":"yes","explanation":["a"]}`, kind: SchemaViolation},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			provider := mocks.NewProvider(t)
			provider.On("Generate", mock.Anything, mock.Anything).
				Return(gemini.Response{Text: tc.text}, nil).Once()

			core, logs := observer.New(zap.WarnLevel)
			svc := NewService(provider, zap.New(core), Options{})
			_, err := svc.Generate(context.Background(), "anything")

			var gerr *Error
			require.ErrorAs(t, err, &gerr)
			assert.Equal(t, tc.kind, gerr.Kind)

			entries := logs.FilterMessage("model response rejected").All()
			require.Len(t, entries, 1)
			assert.Equal(t, tc.text, entries[0].ContextMap()["raw"])
		})
	}
}
