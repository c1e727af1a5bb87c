package model

import "time"

// Customer mirrors a gym member from the wellness API. TrainingOperatorId is
// owned locally: once a customer exists, re-syncs never overwrite it.
type Customer struct {
	ID                         int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	IdWinC                     int64      `gorm:"column:id_winc;unique;not null;index" json:"id_winc"`
	Name                       string     `gorm:"size:255;not null" json:"name"`
	BirthDate                  *time.Time `json:"birth_date,omitempty"`
	MedicalCertificateValidity *time.Time `json:"medical_certificate_validity,omitempty"`
	LastAccessDate             *time.Time `json:"last_access_date,omitempty"`
	TrainingOperatorId         int64      `gorm:"not null;default:1;index" json:"training_operator_id"`
	Enabled                    bool       `gorm:"not null;default:true" json:"enabled"`
	CreatedAt                  time.Time  `gorm:"default:now()" json:"created_at"`
	UpdatedAt                  time.Time  `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Customer) TableName() string {
	return "customers"
}
