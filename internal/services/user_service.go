package services

import (
	"errors"
	"fmt"
	"log"

	"owner-wallet-service/internal/consumers"
	"owner-wallet-service/internal/models"
	"owner-wallet-service/internal/worker"
	"owner-wallet-service/pkg/common"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

// UserService covers the admin-side user operations: point grants and
// deductions with a history trail, blocking, and notifications. Notifications
// ride the queue fire-and-forget; enqueue failures are logged and never fail
// the operation that triggered them.
type UserService struct {
	DB    *gorm.DB
	Queue *asynq.Client
}

func NewUserService(db *gorm.DB, queue *asynq.Client) *UserService {
	return &UserService{DB: db, Queue: queue}
}

type AdjustPointsDTO struct {
	UserId string
	Amount int64
	Reason string
}

// AdjustPoints applies a signed admin adjustment to a user's personal points.
// A deduction that would go below zero is refused with nothing written.
func (s *UserService) AdjustPoints(data AdjustPointsDTO) (int64, error) {
	if data.Amount == 0 {
		return 0, common.ErrInvalidAmount
	}

	var newBalance int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.User{}).Where("id = ?", data.UserId)
		if data.Amount < 0 {
			query = query.Where("points >= ?", -data.Amount)
		}
		res := query.UpdateColumn("points", gorm.Expr("points + ?", data.Amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var user models.User
			if err := tx.Where("id = ?", data.UserId).First(&user).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return common.ErrNotFound
				}
				return err
			}
			return common.ErrInsufficientBalance
		}

		historyType := models.PointTypeAdminGive
		description := data.Reason
		if description == "" {
			description = "Admin grant"
		}
		if data.Amount < 0 {
			historyType = models.PointTypeAdminDeduct
			if data.Reason == "" {
				description = "Admin deduction"
			}
		}

		history := models.PointHistory{
			UserId:      data.UserId,
			Type:        historyType,
			Amount:      data.Amount,
			Description: description,
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		var user models.User
		if err := tx.Where("id = ?", data.UserId).First(&user).Error; err != nil {
			return err
		}
		newBalance = user.Points
		return nil
	})
	if err != nil {
		return 0, err
	}

	title := "Points granted"
	if data.Amount < 0 {
		title = "Points deducted"
	}
	reason := data.Reason
	if reason == "" {
		reason = "Admin"
	}
	s.enqueueNotification(data.UserId, title, fmt.Sprintf("%s: %+dP", reason, data.Amount))

	return newBalance, nil
}

func (s *UserService) SetBlocked(userId string, blocked bool) error {
	res := s.DB.Model(&models.User{}).
		Where("id = ?", userId).
		Update("blocked", blocked)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

// Notify sends an ad hoc admin message to a user through the queue.
func (s *UserService) Notify(userId, title, message string) error {
	var user models.User
	if err := s.DB.Where("id = ?", userId).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrNotFound
		}
		return err
	}
	s.enqueueNotification(userId, title, message)
	return nil
}

func (s *UserService) enqueueNotification(userId, title, message string) {
	if s.Queue == nil {
		log.Printf("Notification queue not configured, skipping: %s -> %s", title, userId)
		return
	}

	task, err := worker.NewNotificationTask(consumers.NotificationDTO{UserId: userId, Title: title, Message: message})
	if err != nil {
		log.Printf("Failed to build notification task: %v", err)
		return
	}
	if _, err := s.Queue.Enqueue(task); err != nil {
		log.Printf("Failed to enqueue notification for %s: %v", userId, err)
	}
}

type ListUsersDTO struct {
	Search string
	Page   int
	Limit  int
}

func (s *UserService) ListUsers(data ListUsersDTO) (common.PaginationResult, error) {
	limit := data.Limit
	if limit <= 0 {
		limit = 50
	}
	page := data.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	query := s.DB.Model(&models.User{})
	if data.Search != "" {
		like := "%" + data.Search + "%"
		query = query.Where("nickname LIKE ? OR email LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return common.PaginationResult{}, err
	}

	var users []models.User
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return common.PaginationResult{}, err
	}

	return common.PaginateResponse(users, total, page, limit, "Users fetched"), nil
}

func (s *UserService) GetPointHistory(userId string, page, limit int) (common.PaginationResult, error) {
	if limit <= 0 {
		limit = 50
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	query := s.DB.Model(&models.PointHistory{}).Where("user_id = ?", userId)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return common.PaginationResult{}, err
	}

	var history []models.PointHistory
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&history).Error; err != nil {
		return common.PaginationResult{}, err
	}

	return common.PaginateResponse(history, total, page, limit, "Point history fetched"), nil
}
