package services

import (
	"errors"

	"owner-wallet-service/internal/models"

	"gorm.io/gorm"
)

// Defaults used when no config row has been saved yet, matching what the
// consoles fell back to.
const (
	DefaultFeeRate         = 0.20
	DefaultMinChargePoints = 1000
)

type ConfigService struct {
	DB *gorm.DB
}

func NewConfigService(db *gorm.DB) *ConfigService {
	return &ConfigService{DB: db}
}

// Get returns the app config, seeding the defaults row on first read.
func (s *ConfigService) Get() (models.AppConfig, error) {
	var cfg models.AppConfig
	err := s.DB.First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cfg = models.AppConfig{
			FeeRate:         DefaultFeeRate,
			MinChargePoints: DefaultMinChargePoints,
		}
		err = s.DB.Create(&cfg).Error
	}
	return cfg, err
}

type UpdateConfigDTO struct {
	FeeRate         *float64
	MinChargePoints *int64
	BankName        *string
	BankAccount     *string
	BankHolder      *string
}

func (s *ConfigService) Update(data UpdateConfigDTO) (models.AppConfig, error) {
	cfg, err := s.Get()
	if err != nil {
		return cfg, err
	}

	if data.FeeRate != nil {
		cfg.FeeRate = *data.FeeRate
	}
	if data.MinChargePoints != nil {
		cfg.MinChargePoints = *data.MinChargePoints
	}
	if data.BankName != nil {
		cfg.BankName = *data.BankName
	}
	if data.BankAccount != nil {
		cfg.BankAccount = *data.BankAccount
	}
	if data.BankHolder != nil {
		cfg.BankHolder = *data.BankHolder
	}

	err = s.DB.Save(&cfg).Error
	return cfg, err
}
