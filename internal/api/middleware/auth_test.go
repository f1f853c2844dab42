package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"dept-registry/backend/config"
	"dept-registry/backend/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthTestRouter(jwtMgr *jwt.Manager) *gin.Engine {
	r := gin.New()
	r.GET("/protected", JWTAuth(jwtMgr, nil), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint("user_id")})
	})
	return r
}

func testJWTManager(ttl time.Duration) *jwt.Manager {
	return jwt.NewManager(&config.AuthConfig{
		JWTSecret:      "test-secret-key-for-unit-testing-2026",
		AccessTokenTTL: ttl,
	})
}

func doGet(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_ValidToken(t *testing.T) {
	jwtMgr := testJWTManager(time.Hour)
	r := newAuthTestRouter(jwtMgr)

	token, err := jwtMgr.GenerateAccessToken(1, "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken 失败: %v", err)
	}

	w := doGet(r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Errorf("有效 Token 应放行，期望200，实际=%d", w.Code)
	}
}

// 缺失、格式错误、过期、篡改的 Token 必须表现一致（均为401），不区分原因
func TestJWTAuth_UniformUnauthorized(t *testing.T) {
	jwtMgr := testJWTManager(time.Hour)
	r := newAuthTestRouter(jwtMgr)

	expired, err := testJWTManager(-time.Minute).GenerateAccessToken(1, "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken 失败: %v", err)
	}
	valid, err := jwtMgr.GenerateAccessToken(1, "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken 失败: %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"缺少认证头", ""},
		{"格式错误", "Token abc"},
		{"非法Token", "Bearer not-a-jwt"},
		{"已过期", "Bearer " + expired},
		{"被篡改", "Bearer " + valid[:len(valid)-2] + "xx"},
	}

	var firstBody string
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doGet(r, tc.header)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("期望401，实际=%d", w.Code)
			}
			if firstBody == "" {
				firstBody = w.Body.String()
			} else if w.Body.String() != firstBody {
				t.Error("所有未认证场景的响应体必须一致，避免泄露失败原因")
			}
		})
	}
}
