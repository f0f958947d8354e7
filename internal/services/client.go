package services

import (
	"github.com/praxishq/praxis/internal/models"
	"github.com/praxishq/praxis/pkg/response"
	"gorm.io/gorm"
)

type ClientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{db: db}
}

type ClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
	Notes   string `json:"notes"`
}

func (s *ClientService) List() ([]models.Client, error) {
	var clients []models.Client
	err := s.db.Order("name").Find(&clients).Error
	return clients, err
}

func (s *ClientService) GetByID(id uint) (*models.Client, error) {
	var client models.Client
	if err := s.db.First(&client, id).Error; err != nil {
		return nil, response.NewNotFound("client not found")
	}
	return &client, nil
}

func (s *ClientService) Create(req *ClientRequest) (*models.Client, error) {
	client := models.Client{
		Name:    req.Name,
		Contact: req.Contact,
		Notes:   req.Notes,
	}
	if err := s.db.Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) Update(id uint, req *ClientRequest) (*models.Client, error) {
	client, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	client.Name = req.Name
	client.Contact = req.Contact
	client.Notes = req.Notes

	if err := s.db.Save(client).Error; err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.db.Delete(&models.Client{}, id).Error
}
