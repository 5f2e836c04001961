package scenario

import (
	"context"
	"errors"
	"net/http"

	"scamgame/internal/config"
	"scamgame/internal/httputil"

	"github.com/gin-gonic/gin"
)

// GenerateRequest is the JSON body for POST /api/ai-generate. Prompt is a
// pointer so an absent field and a JSON null both read as missing.
type GenerateRequest struct {
	Prompt *string `json:"prompt"`
}

type HandlerOptions struct {
	// Diagnostics adds raw model output and error chains to 500 bodies.
	Diagnostics bool
}

// Handler handles POST /api/ai-generate.
func Handler(svc *Service, opts HandlerOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GenerateRequest
		if !httputil.BindJSON(c, config.MaxPromptBodyBytes, &req) {
			return
		}
		prompt := ""
		if req.Prompt != nil {
			prompt = *req.Prompt
		}

		// An issued provider call runs to completion even if the client goes away.
		ctx := context.WithoutCancel(c.Request.Context())
		sc, err := svc.Generate(ctx, prompt)
		if err != nil {
			var gerr *Error
			if !errors.As(err, &gerr) {
				gerr = providerError(err)
			}
			_ = c.Error(gerr)
			c.JSON(gerr.Kind.HTTPStatus(), errorBody(gerr, opts.Diagnostics))
			return
		}
		c.JSON(http.StatusOK, sc)
	}
}

func errorBody(e *Error, diagnostics bool) gin.H {
	body := gin.H{"error": e.Message}
	switch e.Kind {
	case MalformedOutput:
		if diagnostics {
			body["rawResponse"] = e.Raw
			body["parseError"] = e.Details()
		}
	case SchemaViolation:
		body["expected"] = ExpectedShape()
		if diagnostics {
			body["data"] = e.Data
			body["details"] = e.Details()
		}
	case ProviderCallFailure:
		if diagnostics {
			body["details"] = e.Details()
			body["stack"] = e.Chain()
		}
	}
	return body
}
