package services

import (
	"errors"
	"time"

	"github.com/praxishq/praxis/internal/config"
	"github.com/praxishq/praxis/internal/models"
	"github.com/praxishq/praxis/internal/utils"
	"github.com/praxishq/praxis/pkg/logger"
	"gorm.io/gorm"
)

type AuthService struct {
	db     *gorm.DB
	jwtCfg *config.JWTConfig
}

func NewAuthService(db *gorm.DB, jwtCfg *config.JWTConfig) *AuthService {
	return &AuthService{db: db, jwtCfg: jwtCfg}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	var user models.User
	if err := s.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		return nil, errors.New("invalid username or password")
	}

	if !user.IsActive {
		return nil, errors.New("account is disabled")
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		return nil, errors.New("invalid username or password")
	}

	now := time.Now()
	user.LastLogin = &now
	s.db.Model(&user).Update("last_login", now)

	token, err := utils.GenerateToken(user.ID, user.Username, user.Role, s.jwtCfg.ExpireHour)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, User: &user}, nil
}

func (s *AuthService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateAdminIfNotExists seeds the default admin account on first boot.
func (s *AuthService) CreateAdminIfNotExists() error {
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", "admin").Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword("admin123")
	if err != nil {
		return err
	}

	admin := models.User{
		Username: "admin",
		Password: hash,
		Role:     "admin",
		IsActive: true,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return err
	}

	logger.Warnf("default admin account created (admin/admin123), change the password")
	return nil
}
