package models

import "time"

// OrganizationType 組織タイプ
type OrganizationType string

const (
	OrgBuyer    OrganizationType = "buyer"
	OrgSupplier OrganizationType = "supplier"
)

// Organization 組織
type Organization struct {
	ID          uint64           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name        string           `gorm:"column:name;size:200;not null" json:"name"`
	Type        OrganizationType `gorm:"column:type;size:20;not null" json:"type"`
	Industry    string           `gorm:"column:industry;size:100" json:"industry"`
	Description string           `gorm:"column:description;size:1000" json:"description"`
	Website     string           `gorm:"column:website;size:255" json:"website"`
	CreatedAt   time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Organization) TableName() string {
	return "organizations"
}
