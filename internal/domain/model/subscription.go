package model

import "time"

// Subscription is a package definition sold by the gym. Description doubles
// as the join key for authorization rows, which carry no package id.
type Subscription struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	IdWinC      int64  `gorm:"column:id_winc;unique;not null;index" json:"id_winc"`
	Description string `gorm:"size:255;not null" json:"description"`
	Enabled     bool   `gorm:"not null;default:true" json:"enabled"`
	// ValidAsSubscription excludes definitions (day passes, trials) that
	// must not take part in sale matching.
	ValidAsSubscription bool      `gorm:"not null;default:true" json:"valid_as_subscription"`
	CreatedAt           time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt           time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Subscription) TableName() string {
	return "subscriptions"
}
