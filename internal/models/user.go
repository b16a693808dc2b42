package models

import (
	"time"
)

// 用户角色
const (
	RoleAdmin  = "admin"
	RolePlayer = "player"
)

// User 用户基础信息表
type User struct {
	BaseModel
	Username    string     `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Nickname    string     `gorm:"size:100" json:"nickname"`
	Role        string     `gorm:"size:10;default:'player'" json:"role"` // admin, player
	Status      string     `gorm:"size:20;default:'active'" json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	// 关联
	Auth UserAuth `gorm:"foreignKey:UserID" json:"-"`
}

// UserAuth 用户认证信息表
type UserAuth struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAdmin 判断是否为管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
