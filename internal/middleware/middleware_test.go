package middleware

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"shop-catalog-api/internal/auth"
)

func basicHeader(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+"="+pass))
}

func TestBasicAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	authorizer := auth.NewAuthorizer(map[string]string{"admin": "secret"})

	router := gin.New()
	router.GET("/import/:fileName", BasicAuth(authorizer), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"principal": c.GetString("principal")})
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{
			name:       "valid credentials",
			header:     basicHeader("admin", "secret"),
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong password",
			header:     basicHeader("admin", "nope"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "bearer token",
			header:     "Bearer abc123",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/import/products.csv", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusUnauthorized && w.Header().Get("WWW-Authenticate") == "" {
				t.Error("expected WWW-Authenticate header on 401")
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID())
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("generates an ID when none supplied", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		if w.Header().Get(RequestIDHeader) == "" {
			t.Error("expected a generated request ID header")
		}
	})

	t.Run("echoes a caller supplied ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(RequestIDHeader, "upstream-42")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get(RequestIDHeader); got != "upstream-42" {
			t.Errorf("request ID = %q, want upstream-42", got)
		}
	})
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimiter(1, 1))
	router.GET("/products", func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/products", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", first.Code)
	}

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/products", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", second.Code)
	}
}
