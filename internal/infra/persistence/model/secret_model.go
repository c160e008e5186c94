package model

import "time"

// SecretModel is the GORM-specific struct for the 'secrets' table.
// EncryptedValue always holds a Fernet token, never plaintext.
type SecretModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	UserID         int64  `gorm:"not null;index"`
	Name           string `gorm:"type:varchar(255);not null"`
	ServiceType    string `gorm:"type:varchar(50);not null;index"`
	EncryptedValue string `gorm:"type:text;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (SecretModel) TableName() string {
	return "secrets"
}
