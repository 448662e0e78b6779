package models

import (
	"time"
)

// User is a consumer account with a personal point balance, distinct from the
// owner wallets. The id comes from the auth provider.
type User struct {
	ID        string    `gorm:"primaryKey;size:128" json:"id"`
	Nickname  string    `gorm:"column:nickname;size:100" json:"nickname"`
	Email     string    `gorm:"column:email;size:255" json:"email"`
	Points    int64     `gorm:"column:points;not null;default:0" json:"points"`
	Blocked   bool      `gorm:"column:blocked;default:false" json:"blocked"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
