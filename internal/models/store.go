package models

import (
	"time"
)

// Sponsor review state mirrored onto the store from its latest application.
const (
	SponsorStatusNone     = "none"
	SponsorStatusPending  = "pending"
	SponsorStatusApproved = "approved"
	SponsorStatusRejected = "rejected"
)

// Store holds the sponsor and bonus fields of an owner's store. Sponsor
// activation is time-boxed: PriorityLevel stays set after expiry, so callers
// must check SponsorActive rather than the raw fields.
type Store struct {
	ID                  int        `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerId             string     `gorm:"column:owner_id;size:128;index" json:"owner_id"`
	OwnerEmail          string     `gorm:"column:owner_email;size:255" json:"owner_email"`
	Name                string     `gorm:"column:name;size:255;not null" json:"name"`
	Category            string     `gorm:"column:category;size:100" json:"category"`
	PriorityLevel       int        `gorm:"column:priority_level;default:0" json:"priority_level"`
	PriorityWeight      int        `gorm:"column:priority_weight;default:0" json:"priority_weight"`
	IsSponsored         bool       `gorm:"column:is_sponsored;default:false" json:"is_sponsored"`
	SponsorStatus       string     `gorm:"column:sponsor_status;size:20;default:none" json:"sponsor_status"`
	SponsorActivatedAt  *time.Time `gorm:"column:sponsor_activated_at" json:"sponsor_activated_at"`
	SponsorExpiresAt    *time.Time `gorm:"column:sponsor_expires_at" json:"sponsor_expires_at"`
	SponsorBonusPoints  int64      `gorm:"column:sponsor_bonus_points;default:0" json:"sponsor_bonus_points"`
	BonusMultiplier     float64    `gorm:"column:bonus_multiplier;default:1.5" json:"bonus_multiplier"`
	BonusPointsPerVisit int64      `gorm:"column:bonus_points_per_visit;default:0" json:"bonus_points_per_visit"`
	BonusPointsActive   bool       `gorm:"column:bonus_points_active;default:false" json:"bonus_points_active"`
	CreatedAt           time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Store) TableName() string {
	return "owner_stores"
}

// SponsorActive reports whether the store's paid sponsor tier is live at the
// given time. SponsorExpiresAt is the single source of truth for expiry; no
// background job flips the stored fields.
func (s *Store) SponsorActive(now time.Time) bool {
	return s.SponsorActivatedAt != nil &&
		s.PriorityLevel > 0 &&
		s.SponsorExpiresAt != nil &&
		s.SponsorExpiresAt.After(now)
}
