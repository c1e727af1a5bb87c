package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// RoleList stores the consultant roles as a comma separated column.
type RoleList []string

// Consultant roles
const (
	RoleSecretary  = "SGR"
	RoleConsultant = "IST"
	RoleAdmin      = "ADM"
)

// Value implements driver.Valuer interface
func (r RoleList) Value() (driver.Value, error) {
	if len(r) == 0 {
		return nil, nil
	}
	return strings.Join(r, ","), nil
}

// Scan implements sql.Scanner interface
func (r *RoleList) Scan(src interface{}) error {
	if src == nil {
		*r = nil
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = strings.Split(v, ",")
	case []byte:
		*r = strings.Split(string(v), ",")
	default:
		return fmt.Errorf("unsupported role list type %T", src)
	}
	return nil
}

// Consultant mirrors an operator of the wellness system. Rows are owned by
// the user sync job; Email and Roles are maintained locally.
type Consultant struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	IdWinC    int64     `gorm:"column:id_winc;unique;not null;index" json:"id_winc"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Surname   string    `gorm:"size:100" json:"surname"`
	Email     *string   `gorm:"size:255" json:"email,omitempty"`
	Roles     RoleList  `gorm:"column:roles;size:50" json:"roles,omitempty"`
	Enabled   bool      `gorm:"not null;default:false" json:"enabled"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Consultant) TableName() string {
	return "users"
}
