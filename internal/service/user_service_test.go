package service

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"dept-registry/backend/internal/model"
	"dept-registry/backend/internal/repository"
)

func setupTestUserService() (UserService, *mockUserRepo) {
	userRepo := newMockUserRepo()
	repo := &repository.Repository{User: userRepo, Department: newMockDeptRepo()}
	svc := NewUserService(testConfig(), repo, zap.NewNop())
	return svc, userRepo
}

func TestUserService_EnsureDefaultAdmin_Creates(t *testing.T) {
	svc, userRepo := setupTestUserService()

	if err := svc.EnsureDefaultAdmin(context.Background()); err != nil {
		t.Fatalf("EnsureDefaultAdmin 应成功: %v", err)
	}

	user, ok := userRepo.users["admin"]
	if !ok {
		t.Fatal("应创建 admin 用户")
	}
	// 种子密码应以 bcrypt 散列存储且可校验
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password")); err != nil {
		t.Errorf("种子密码散列校验失败: %v", err)
	}
}

func TestUserService_EnsureDefaultAdmin_Idempotent(t *testing.T) {
	svc, userRepo := setupTestUserService()

	existing := &model.User{ID: 7, Username: "admin", PasswordHash: "existing-hash"}
	userRepo.users["admin"] = existing

	if err := svc.EnsureDefaultAdmin(context.Background()); err != nil {
		t.Fatalf("EnsureDefaultAdmin 应成功: %v", err)
	}

	// 已存在的账号不应被覆盖
	if userRepo.users["admin"].PasswordHash != "existing-hash" {
		t.Error("已存在的 admin 不应被重新创建或改写")
	}
}
