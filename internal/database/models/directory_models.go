package models

import "time"

// Company holds the four percentage adjustments applied to a base salary.
// Companies are immutable after creation.
type Company struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	TA        string     `gorm:"type:decimal(5,2);not null" json:"ta"`
	DA        string     `gorm:"type:decimal(5,2);not null" json:"da"`
	HRA       string     `gorm:"type:decimal(5,2);not null" json:"hra"`
	PF        string     `gorm:"type:decimal(5,2);not null" json:"pf"`
	CreatedAt *time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// User is a directory entry. Salary holds the net value computed at creation
// and is never recomputed afterwards.
type User struct {
	ID         int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string     `gorm:"not null" json:"name"`
	Email      string     `gorm:"uniqueIndex;not null" json:"email"`
	ProfilePic string     `json:"profile_pic"`
	Salary     string     `gorm:"type:decimal(18,2);not null" json:"salary"`
	CompanyID  int64      `gorm:"index;not null" json:"company_id"`
	Company    Company    `gorm:"foreignKey:CompanyID" json:"company"`
	CreatedAt  *time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  *time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
