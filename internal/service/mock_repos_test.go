package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"dept-registry/backend/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[string]*model.User // username → user
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.ID == 0 {
		user.ID = m.nextID
		m.nextID++
	}
	m.users[user.Username] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if u, ok := m.users[username]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock DepartmentRepository ──

type mockDeptRepo struct {
	departments map[uint]*model.Department
	nextID      uint
	nextSubID   uint
}

func newMockDeptRepo() *mockDeptRepo {
	return &mockDeptRepo{
		departments: make(map[uint]*model.Department),
		nextID:      1,
		nextSubID:   1,
	}
}

func (m *mockDeptRepo) Create(_ context.Context, dept *model.Department) error {
	if dept.ID == 0 {
		dept.ID = m.nextID
		m.nextID++
	}
	for i := range dept.SubDepartments {
		if dept.SubDepartments[i].ID == 0 {
			dept.SubDepartments[i].ID = m.nextSubID
			m.nextSubID++
		}
		dept.SubDepartments[i].DepartmentID = dept.ID
	}
	m.departments[dept.ID] = dept
	return nil
}

func (m *mockDeptRepo) GetByID(_ context.Context, id uint) (*model.Department, error) {
	if d, ok := m.departments[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDeptRepo) sortedAll() []model.Department {
	all := make([]model.Department, 0, len(m.departments))
	for _, d := range m.departments {
		all = append(all, *d)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

func (m *mockDeptRepo) List(_ context.Context, offset, limit int) ([]model.Department, int64, error) {
	all := m.sortedAll()
	total := int64(len(all))

	if offset >= len(all) {
		return []model.Department{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockDeptRepo) ListAll(_ context.Context) ([]model.Department, error) {
	return m.sortedAll(), nil
}

func (m *mockDeptRepo) Update(_ context.Context, dept *model.Department) error {
	m.departments[dept.ID] = dept
	return nil
}

func (m *mockDeptRepo) Delete(_ context.Context, id uint) (bool, error) {
	if _, ok := m.departments[id]; !ok {
		return false, nil
	}
	delete(m.departments, id)
	return true, nil
}

func (m *mockDeptRepo) CountSubDepartments(_ context.Context, departmentID uint) (int64, error) {
	if d, ok := m.departments[departmentID]; ok {
		return int64(len(d.SubDepartments)), nil
	}
	return 0, nil
}
