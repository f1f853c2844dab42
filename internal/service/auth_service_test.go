package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"dept-registry/backend/config"
	"dept-registry/backend/internal/dto"
	"dept-registry/backend/internal/model"
	"dept-registry/backend/internal/repository"
	"dept-registry/backend/pkg/jwt"
)

// ── 测试辅助 ──

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-key-for-unit-testing-2026",
			AccessTokenTTL: time.Hour,
		},
		Admin: config.AdminConfig{
			Username: "admin",
			Password: "password",
		},
	}
}

func setupTestAuthService(t *testing.T) (AuthService, *mockUserRepo) {
	t.Helper()

	userRepo := newMockUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("生成测试密码散列失败: %v", err)
	}
	userRepo.users["admin"] = &model.User{ID: 1, Username: "admin", PasswordHash: string(hash)}

	cfg := testConfig()
	repo := &repository.Repository{User: userRepo, Department: newMockDeptRepo()}
	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := NewAuthService(cfg, repo, jwtMgr, nil, zap.NewNop())
	return svc, userRepo
}

// ── Login 测试 ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "password",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if result.AccessToken == "" {
		t.Error("AccessToken 不应为空")
	}
	if result.ExpiresIn != 3600 {
		t.Errorf("期望ExpiresIn=3600，实际=%d", result.ExpiresIn)
	}
	if result.User.Username != "admin" {
		t.Errorf("期望Username=admin，实际=%s", result.User.Username)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "nope",
		Password: "x",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

// 用户不存在与密码错误必须返回同一错误，避免用户名探测
func TestAuthService_Login_NoUserExistenceOracle(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	_, errWrongPassword := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "admin", Password: "wrong",
	})
	_, errUnknownUser := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "nope", Password: "x",
	})

	if !errors.Is(errWrongPassword, ErrInvalidCredentials) || !errors.Is(errUnknownUser, ErrInvalidCredentials) {
		t.Fatalf("两种失败都应为 ErrInvalidCredentials: %v / %v", errWrongPassword, errUnknownUser)
	}
	if errWrongPassword.Error() != errUnknownUser.Error() {
		t.Error("两种失败的错误信息必须完全一致")
	}
}

// ── Logout 测试 ──

func TestAuthService_Logout_NilRedisDegrades(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	// Redis 不可用时登出不报错（降级策略）
	if err := svc.Logout(context.Background(), "some-jti", time.Now().Add(time.Hour)); err != nil {
		t.Errorf("Redis 为 nil 时 Logout 不应报错: %v", err)
	}
}
