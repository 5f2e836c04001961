package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupRouter(key string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AccessKey(key))
	r.GET("/api/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return r
}

func TestAccessKey(t *testing.T) {
	tests := []struct {
		name   string
		expect string
		header string
		want   int
	}{
		{name: "disabled", expect: "", header: "", want: http.StatusOK},
		{name: "match", expect: "k3y", header: "k3y", want: http.StatusOK},
		{name: "missing", expect: "k3y", header: "", want: http.StatusUnauthorized},
		{name: "wrong", expect: "k3y", header: "nope", want: http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouter(tc.expect)
			req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
			if tc.header != "" {
				req.Header.Set(AccessKeyHeader, tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("expected status %d, got %d", tc.want, w.Code)
			}
		})
	}
}
