package consumers

import (
	"log"

	"owner-wallet-service/internal/models"

	"gorm.io/gorm"
)

type NotificationProcessor struct {
	DB *gorm.DB
}

func NewNotificationProcessor(db *gorm.DB) *NotificationProcessor {
	return &NotificationProcessor{DB: db}
}

type NotificationDTO struct {
	UserId  string `json:"userId"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// ProcessNotification writes the user-facing message record. Returning the
// error lets asynq retry; the triggering mutation already committed either
// way.
func (p *NotificationProcessor) ProcessNotification(data NotificationDTO) error {
	notification := models.Notification{
		UserId:  data.UserId,
		Title:   data.Title,
		Message: data.Message,
	}
	if err := p.DB.Create(&notification).Error; err != nil {
		log.Printf("Failed to store notification for %s: %v", data.UserId, err)
		return err
	}
	return nil
}
