package models

import (
	"time"
)

// Order statuses.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// DefaultProductPrefix marks synthetic product ids that have no stock record
// behind them; cancellation skips restocking for these.
const DefaultProductPrefix = "default_"

// Order is a point-funded product order placed by a consumer. Cancellation
// refunds PointCost to the user exactly once; restoring a cancelled order
// re-debits it.
type Order struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Reference    string    `gorm:"column:reference;size:64;uniqueIndex" json:"reference"`
	UserId       string    `gorm:"column:user_id;size:128;index" json:"user_id"`
	UserNickname string    `gorm:"column:user_nickname;size:100" json:"user_nickname"`
	ProductId    string    `gorm:"column:product_id;size:128" json:"product_id"`
	ProductName  string    `gorm:"column:product_name;size:255" json:"product_name"`
	PointCost    int64     `gorm:"column:point_cost;not null;default:0" json:"point_cost"`
	Status       string    `gorm:"column:status;size:20;not null;default:pending;index" json:"status"`
	Note         string    `gorm:"column:note;type:text" json:"note"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}
