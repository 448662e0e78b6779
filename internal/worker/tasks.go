package worker

import (
	"encoding/json"

	"owner-wallet-service/internal/consumers"

	"github.com/hibiken/asynq"
)

// Task Types
const (
	TypeNotification = "notification:deliver"
)

func NewNotificationTask(payload consumers.NotificationDTO) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotification, data), nil
}
