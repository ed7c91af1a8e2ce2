package models

import "time"

// UserRole ユーザー権限
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleBuyer    UserRole = "buyer"
	RoleSupplier UserRole = "supplier"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleBuyer, RoleSupplier:
		return true
	}
	return false
}

// User ユーザー
type User struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Email          string    `gorm:"column:email;size:255;uniqueIndex:idx_email;not null" json:"email"`
	HashedPassword string    `gorm:"column:hashed_password;size:255;not null" json:"-"`
	Name           string    `gorm:"column:name;size:100;not null" json:"name"`
	Role           UserRole  `gorm:"column:role;size:20;not null;default:'supplier'" json:"role"`
	IsActive       bool      `gorm:"column:is_active;default:true" json:"is_active"`
	OrganizationID uint64    `gorm:"column:organization_id;index:idx_organization_id" json:"organization_id"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
