package models

import (
	"time"

	"gorm.io/datatypes"
)

// User mirrors an identity-provider account. It is written only by the
// identity webhook; likes reference ExternalID without a foreign key.
type User struct {
	ExternalID string         `json:"externalId" gorm:"column:external_id;primaryKey;size:191"`
	Attributes datatypes.JSON `json:"attributes" gorm:"type:jsonb"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
