package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Типы уведомлений.
const (
	NotificationTypeSystem      = "system"
	NotificationTypeApplication = "application"
	NotificationTypeInvitation  = "invitation"
)

// Notification — запись внутреннего ящика уведомлений. Создаётся только как
// побочный эффект перехода другой сущности; после создания меняется только
// флаг IsRead.
type Notification struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	NotificationType string `gorm:"type:varchar(50);not null" json:"notification_type"`
	Title            string `gorm:"type:varchar(200);not null" json:"title"`
	Message          string `gorm:"type:text;not null" json:"message"`

	RelatedID   *uuid.UUID `gorm:"type:uuid" json:"related_id,omitempty"`
	RelatedType string     `gorm:"type:varchar(50)" json:"related_type,omitempty"`

	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func (n *Notification) TableName() string {
	return "notifications"
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
