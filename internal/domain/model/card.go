package model

import "time"

// Card is a training program assigned to a customer. Only one card per
// customer is enabled at a time; creating a new one disables the previous.
type Card struct {
	ID                     int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerId             int64     `gorm:"not null;index" json:"customer_id"`
	CustomerSubscriptionId int64     `gorm:"not null;index" json:"customer_subscription_id"`
	TrainingOperatorId     int64     `gorm:"not null" json:"training_operator_id"`
	DateStart              time.Time `gorm:"not null" json:"date_start"`
	DateEnd                time.Time `gorm:"not null" json:"date_end"`
	DurationWeek           int       `gorm:"not null" json:"duration_week"`
	Enabled                bool      `gorm:"not null;default:true" json:"enabled"`
	Rescheduled            bool      `gorm:"not null;default:false" json:"rescheduled"`
	CreatedAt              time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt              time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Card) TableName() string {
	return "cards"
}
