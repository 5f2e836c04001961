package httputil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestIsBodyTooLarge(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "max bytes error", err: &http.MaxBytesError{Limit: 1}, want: true},
		{name: "http too large string", err: errors.New("http: request body too large"), want: true},
		{name: "other error", err: errors.New("boom"), want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsBodyTooLarge(tc.err); got != tc.want {
				t.Fatalf("IsBodyTooLarge(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestBindJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name     string
		body     string
		limit    int64
		wantOK   bool
		wantCode int
	}{
		{name: "valid", body: `{"name":"x"}`, limit: 1024, wantOK: true, wantCode: http.StatusOK},
		{name: "invalid json", body: `{"name":`, limit: 1024, wantCode: http.StatusBadRequest},
		{name: "wrong type", body: `{"name":5}`, limit: 1024, wantCode: http.StatusBadRequest},
		{name: "too large", body: `{"name":"` + strings.Repeat("a", 100) + `"}`, limit: 16, wantCode: http.StatusRequestEntityTooLarge},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var p payload
			ok := BindJSON(c, tc.limit, &p)
			if ok != tc.wantOK {
				t.Fatalf("BindJSON ok = %v, want %v", ok, tc.wantOK)
			}
			if ok {
				if p.Name != "x" {
					t.Fatalf("expected name x, got %q", p.Name)
				}
				return
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("expected status %d, got %d", tc.wantCode, rec.Code)
			}
		})
	}
}
