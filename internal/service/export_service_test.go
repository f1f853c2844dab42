package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"dept-registry/backend/internal/dto"
	"dept-registry/backend/internal/repository"
)

func setupTestExportService() (ExportService, DepartmentService) {
	deptRepo := newMockDeptRepo()
	repo := &repository.Repository{User: newMockUserRepo(), Department: deptRepo}
	logger := zap.NewNop()
	return NewExportService(repo, logger), NewDepartmentService(repo, logger)
}

func TestExportService_ExportDepartments_Empty(t *testing.T) {
	exportSvc, _ := setupTestExportService()

	_, _, err := exportSvc.ExportDepartments(context.Background())
	if !errors.Is(err, ErrExportNoDepartments) {
		t.Errorf("期望 ErrExportNoDepartments，实际: %v", err)
	}
}

func TestExportService_ExportDepartments_Success(t *testing.T) {
	exportSvc, deptSvc := setupTestExportService()

	if _, err := deptSvc.Create(context.Background(), &dto.CreateDepartmentRequest{
		Name:           "Finance",
		SubDepartments: []dto.CreateSubDepartmentInput{{Name: "Payroll"}},
	}); err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	buf, filename, err := exportSvc.ExportDepartments(context.Background())
	if err != nil {
		t.Fatalf("ExportDepartments 应成功: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("导出内容不应为空")
	}
	if !strings.HasPrefix(filename, "departments_") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("文件名格式不符: %s", filename)
	}
	// xlsx 本质是 zip，以 PK 开头
	if buf.Len() < 2 || buf.Bytes()[0] != 'P' || buf.Bytes()[1] != 'K' {
		t.Error("导出内容应为有效的 xlsx（zip）文件")
	}
}
