package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"smartmeet/config"
	"smartmeet/internal/model"
	"smartmeet/pkg/response"
	"smartmeet/pkg/scope"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                  {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Info(ctx context.Context, args ...any)                   {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Warn(ctx context.Context, args ...any)                   {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Error(ctx context.Context, args ...any)                  {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (noopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Panic(ctx context.Context, args ...any)                  {}
func (noopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newTestRouter(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", mw.Auth(), func(c *gin.Context) {
		sc := GetScope(c)
		response.OK(c, gin.H{"user_id": sc.UserID, "email": sc.Email})
	})
	return r
}

func TestAuth(t *testing.T) {
	jwt := scope.NewManager("test-secret", 0)
	mw := New(noopLogger{}, jwt, &config.Config{})
	router := newTestRouter(mw)

	t.Run("valid token", func(t *testing.T) {
		token, err := jwt.CreateToken("u-1", "ada@example.com")
		if err != nil {
			t.Fatalf("create token: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
		}
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("malformed token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("token from another secret", func(t *testing.T) {
		other := scope.NewManager("other-secret", 0)
		token, err := other.CreateToken("u-1", "ada@example.com")
		if err != nil {
			t.Fatalf("create token: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

func TestGetScopeUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if sc := GetScope(c); sc != (model.Scope{}) {
		t.Errorf("expected zero scope, got %+v", sc)
	}
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.RateLimit.RequestsPerMin = 60
	cfg.RateLimit.Burst = 2

	mw := New(noopLogger{}, scope.NewManager("test-secret", 0), cfg)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/limited", mw.RateLimit(), func(c *gin.Context) {
		response.OK(c, nil)
	})

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.Header.Set("X-Real-IP", ip)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	// Burst of 2 allows two immediate requests, the third is throttled.
	if code := do("10.0.0.1"); code != http.StatusOK {
		t.Fatalf("first request: %d", code)
	}
	if code := do("10.0.0.1"); code != http.StatusOK {
		t.Fatalf("second request: %d", code)
	}
	if code := do("10.0.0.1"); code != http.StatusTooManyRequests {
		t.Errorf("third request = %d, want 429", code)
	}

	// Separate clients get their own budget.
	if code := do("10.0.0.2"); code != http.StatusOK {
		t.Errorf("other client request = %d, want 200", code)
	}
}
