package model

import "time"

// SessionPTType defines a sellable personal training package size.
type SessionPTType struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Description  string `gorm:"size:100;not null" json:"description"`
	TotalSession int    `gorm:"not null" json:"total_session"`
}

// TableName specifies the table name for GORM
func (SessionPTType) TableName() string {
	return "session_pt_types"
}

// CustomerPT is a personal training package bought by a customer.
type CustomerPT struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerId      int64     `gorm:"not null;index" json:"customer_id"`
	SessionPTTypeId int64     `gorm:"not null" json:"session_pt_type_id"`
	DateStart       time.Time `gorm:"not null" json:"date_start"`
	Completed       bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt       time.Time `gorm:"default:now()" json:"created_at"`

	Type *SessionPTType `gorm:"foreignKey:SessionPTTypeId" json:"type,omitempty"`
}

// TableName specifies the table name for GORM
func (CustomerPT) TableName() string {
	return "customer_pts"
}

// CustomerPTHistory records sessions added to a package after purchase.
type CustomerPTHistory struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerPTId       int64     `gorm:"not null;index" json:"customer_pt_id"`
	TrainingOperatorId int64     `gorm:"not null" json:"training_operator_id"`
	DateStart          time.Time `gorm:"not null" json:"date_start"`
	SessionAdded       int       `gorm:"not null" json:"session_added"`
}

// TableName specifies the table name for GORM
func (CustomerPTHistory) TableName() string {
	return "customer_pt_histories"
}

// SessionPT is a single performed personal training session.
type SessionPT struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerPTId       int64     `gorm:"not null;index" json:"customer_pt_id"`
	TrainingOperatorId int64     `gorm:"not null" json:"training_operator_id"`
	DateStart          time.Time `gorm:"not null" json:"date_start"`
}

// TableName specifies the table name for GORM
func (SessionPT) TableName() string {
	return "session_pts"
}
