package model

import "time"

// IntegrationModel is the GORM-specific struct for the 'integrations' table.
// Config is a JSON document; SecretID is nullable so integrations can outlive
// their credential.
type IntegrationModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	UserID      int64  `gorm:"not null;index"`
	ServiceType string `gorm:"type:varchar(50);not null;index"`
	SecretID    *int64 `gorm:"index"`
	Config      string `gorm:"type:jsonb;not null;default:'{}'"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (IntegrationModel) TableName() string {
	return "integrations"
}
