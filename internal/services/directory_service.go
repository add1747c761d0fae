package services

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/models"
	"gorm.io/gorm"
)

// DirectoryService is the plain CRUD surface for the network directory:
// franchises, relationship managers and banks.
type DirectoryService struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

// FranchiseInput is the create/update payload for a franchise.
type FranchiseInput struct {
	Name  string `json:"name" validate:"required"`
	City  string `json:"city"`
	State string `json:"state"`
	Phone string `json:"phone"`
	Email string `json:"email" validate:"omitempty,email"`
}

func (s *DirectoryService) CreateFranchise(ctx context.Context, input FranchiseInput) (*models.Franchise, error) {
	if err := s.Validate.Struct(input); err != nil {
		return nil, err
	}
	f := models.Franchise{
		ID:     uuid.New().String(),
		Name:   input.Name,
		City:   input.City,
		State:  input.State,
		Phone:  input.Phone,
		Email:  input.Email,
		Active: true,
	}
	if err := s.DB.WithContext(ctx).Create(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *DirectoryService) ListFranchises(ctx context.Context, search string) ([]models.Franchise, error) {
	q := s.DB.WithContext(ctx).Model(&models.Franchise{}).Where("active = ?", true)
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	var out []models.Franchise
	err := q.Order("name").Find(&out).Error
	return out, err
}

func (s *DirectoryService) GetFranchise(ctx context.Context, id string) (*models.Franchise, error) {
	var f models.Franchise
	if err := s.DB.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (s *DirectoryService) UpdateFranchise(ctx context.Context, id string, input FranchiseInput) (*models.Franchise, error) {
	if err := s.Validate.Struct(input); err != nil {
		return nil, err
	}
	f, err := s.GetFranchise(ctx, id)
	if err != nil {
		return nil, err
	}
	f.Name = input.Name
	f.City = input.City
	f.State = input.State
	f.Phone = input.Phone
	f.Email = input.Email
	if err := s.DB.WithContext(ctx).Save(f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

// DeleteFranchise deactivates the outlet. Rows are never hard-deleted:
// agents and leads still reference them.
func (s *DirectoryService) DeleteFranchise(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Model(&models.Franchise{}).Where("id = ?", id).Update("active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RelationshipManagerInput is the create/update payload for a manager.
type RelationshipManagerInput struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"omitempty,email"`
	Phone  string `json:"phone"`
	Region string `json:"region"`
}

func (s *DirectoryService) CreateRelationshipManager(ctx context.Context, input RelationshipManagerInput) (*models.RelationshipManager, error) {
	if err := s.Validate.Struct(input); err != nil {
		return nil, err
	}
	rm := models.RelationshipManager{
		ID:     uuid.New().String(),
		Name:   input.Name,
		Email:  input.Email,
		Phone:  input.Phone,
		Region: input.Region,
		Active: true,
	}
	if err := s.DB.WithContext(ctx).Create(&rm).Error; err != nil {
		return nil, err
	}
	return &rm, nil
}

func (s *DirectoryService) ListRelationshipManagers(ctx context.Context, search string) ([]models.RelationshipManager, error) {
	q := s.DB.WithContext(ctx).Model(&models.RelationshipManager{}).Where("active = ?", true)
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	var out []models.RelationshipManager
	err := q.Order("name").Find(&out).Error
	return out, err
}

func (s *DirectoryService) GetRelationshipManager(ctx context.Context, id string) (*models.RelationshipManager, error) {
	var rm models.RelationshipManager
	if err := s.DB.WithContext(ctx).First(&rm, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rm, nil
}

func (s *DirectoryService) UpdateRelationshipManager(ctx context.Context, id string, input RelationshipManagerInput) (*models.RelationshipManager, error) {
	if err := s.Validate.Struct(input); err != nil {
		return nil, err
	}
	rm, err := s.GetRelationshipManager(ctx, id)
	if err != nil {
		return nil, err
	}
	rm.Name = input.Name
	rm.Email = input.Email
	rm.Phone = input.Phone
	rm.Region = input.Region
	if err := s.DB.WithContext(ctx).Save(rm).Error; err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *DirectoryService) DeleteRelationshipManager(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Model(&models.RelationshipManager{}).Where("id = ?", id).Update("active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// BankInput is the create/update payload for a bank.
type BankInput struct {
	Name string `json:"name" validate:"required"`
	IFSC string `json:"ifsc"`
}

func (s *DirectoryService) CreateBank(ctx context.Context, input BankInput) (*models.Bank, error) {
	if err := s.Validate.Struct(input); err != nil {
		return nil, err
	}
	b := models.Bank{
		ID:     uuid.New().String(),
		Name:   input.Name,
		IFSC:   input.IFSC,
		Active: true,
	}
	if err := s.DB.WithContext(ctx).Create(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *DirectoryService) ListBanks(ctx context.Context) ([]models.Bank, error) {
	var out []models.Bank
	err := s.DB.WithContext(ctx).Model(&models.Bank{}).Where("active = ?", true).Order("name").Find(&out).Error
	return out, err
}

func (s *DirectoryService) UpdateBank(ctx context.Context, id string, input BankInput) (*models.Bank, error) {
	if err := s.Validate.Struct(input); err != nil {
		return nil, err
	}
	var b models.Bank
	if err := s.DB.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	b.Name = input.Name
	b.IFSC = input.IFSC
	if err := s.DB.WithContext(ctx).Save(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *DirectoryService) DeleteBank(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Model(&models.Bank{}).Where("id = ?", id).Update("active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
