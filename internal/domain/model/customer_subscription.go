package model

import "time"

// CustomerSubscription links a customer to a purchased package. IdWinC holds
// the upstream sale id; SubscriptionId is resolved by description matching.
type CustomerSubscription struct {
	ID             int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	IdWinC         int64      `gorm:"column:id_winc;unique;not null;index" json:"id_winc"`
	CustomerId     int64      `gorm:"not null;index" json:"customer_id"`
	SubscriptionId int64      `gorm:"not null;index" json:"subscription_id"`
	SaleDate       *time.Time `json:"sale_date,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Renewed        bool       `gorm:"not null;default:false" json:"renewed"`
	CreatedAt      time.Time  `gorm:"default:now()" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (CustomerSubscription) TableName() string {
	return "customer_subscriptions"
}
