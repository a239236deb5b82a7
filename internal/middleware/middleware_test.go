package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Alish-p/transport-rewrite-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims() jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    "billing",
		Subject:   "user-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
}

func authRouter(issuer string) *gin.Engine {
	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(testSecret, issuer), func(c *gin.Context) {
		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, userID)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noSubject := validClaims()
	noSubject.Subject = ""

	tests := []struct {
		name       string
		issuer     string
		header     string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid token exposes user id",
			issuer:     "billing",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims()),
			wantStatus: http.StatusOK,
			wantBody:   "user-42",
		},
		{
			name:       "issuer check disabled when empty",
			issuer:     "",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims()),
			wantStatus: http.StatusOK,
			wantBody:   "user-42",
		},
		{
			name:       "missing header",
			issuer:     "billing",
			header:     "",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Authorization header required",
		},
		{
			name:       "wrong scheme",
			issuer:     "billing",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Bearer {token}",
		},
		{
			name:       "expired token",
			issuer:     "billing",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired),
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Token has expired",
		},
		{
			name:       "wrong secret",
			issuer:     "billing",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("another-secret"), validClaims()),
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid token",
		},
		{
			name:       "unsigned token",
			issuer:     "billing",
			header:     "Bearer " + signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, validClaims()),
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid token",
		},
		{
			name:       "issuer mismatch",
			issuer:     "someone-else",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims()),
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid token",
		},
		{
			name:       "token without subject",
			issuer:     "billing",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noSubject),
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid token claims",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			authRouter(tt.issuer).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestStructuredLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.GET("/ping", func(c *gin.Context) {
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("inside handler")
		c.String(http.StatusOK, "pong")
	})

	t.Run("propagates caller request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get(middleware.RequestIDHeader))
		assert.Contains(t, buf.String(), `"msg":"inside handler"`)
		assert.Contains(t, buf.String(), `"request_id":"req-123"`)
		assert.Contains(t, buf.String(), `"msg":"Request completed"`)
		assert.Contains(t, buf.String(), `"status":200`)
	})

	t.Run("generates request id when absent", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Len(t, w.Header().Get(middleware.RequestIDHeader), 36)
	})
}

func TestGetLoggerFromCtx_DefaultsWhenMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Same(t, slog.Default(), middleware.GetLoggerFromCtx(req.Context()))
}

func TestRateLimit(t *testing.T) {
	limiterInstance, err := middleware.NewRateLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.RateLimit(limiterInstance))
	r.GET("/limited", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		if i == 0 {
			assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
			assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// A different client has its own budget.
	req := httptest.NewRequest(http.MethodGet, "/limited", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewRateLimiter_InvalidFormat(t *testing.T) {
	_, err := middleware.NewRateLimiter("lots")
	assert.Error(t, err)
}

func TestCORS(t *testing.T) {
	t.Run("allowed origin gets headers", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.CORS([]string{"http://localhost:3000"}))
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("no origins configured is a pass-through", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.CORS(nil))
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "http://evil.example")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
