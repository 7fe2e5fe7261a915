package services

import (
	"context"
	"errors"
	"strings"

	"pharmacy-admin-service/internal/domain/models"

	"gorm.io/gorm"
)

// InterfaceAreaService area catalogue operations
type InterfaceAreaService interface {
	ListAreas(ctx context.Context) ([]models.Area, error)
	ListAreasByCity(ctx context.Context, cityID uint) ([]models.Area, error)
	CountAreas(ctx context.Context) (int64, error)
	GetAreaByID(ctx context.Context, id uint) (*models.Area, error)
	CreateArea(ctx context.Context, name string, cityID uint) (*models.Area, error)
	UpdateArea(ctx context.Context, id uint, name string, cityID uint) (*models.Area, error)
	DeleteArea(ctx context.Context, id uint) error
}

// AreaService implements InterfaceAreaService on GORM.
type AreaService struct {
	DB *gorm.DB
}

// NewAreaService creates an area service
func NewAreaService(db *gorm.DB) InterfaceAreaService {
	return &AreaService{DB: db}
}

// 1 ListAreas returns every area with its city
func (s *AreaService) ListAreas(ctx context.Context) ([]models.Area, error) {
	var areas []models.Area
	if err := s.DB.WithContext(ctx).Preload("City").Order("id ASC").Find(&areas).Error; err != nil {
		return nil, storageError("list areas", err)
	}
	return areas, nil
}

// 2 ListAreasByCity returns the areas of one city
func (s *AreaService) ListAreasByCity(ctx context.Context, cityID uint) ([]models.Area, error) {
	var areas []models.Area
	err := s.DB.WithContext(ctx).Where("city_id = ?", cityID).Order("id ASC").Find(&areas).Error
	if err != nil {
		return nil, storageError("list areas by city", err)
	}
	return areas, nil
}

// 3 CountAreas returns the number of areas
func (s *AreaService) CountAreas(ctx context.Context) (int64, error) {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Area{}).Count(&count).Error; err != nil {
		return 0, storageError("count areas", err)
	}
	return count, nil
}

// 4 GetAreaByID loads an area with its city
func (s *AreaService) GetAreaByID(ctx context.Context, id uint) (*models.Area, error) {
	var area models.Area
	if err := s.DB.WithContext(ctx).Preload("City").First(&area, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAreaNotFound
		}
		return nil, storageError("get area", err)
	}
	return &area, nil
}

// 5 CreateArea inserts an area under an existing city
func (s *AreaService) CreateArea(ctx context.Context, name string, cityID uint) (*models.Area, error) {
	name = strings.TrimSpace(name)
	if !models.ValidName(name) {
		return nil, ErrInvalidName
	}

	area := &models.Area{Name: name, CityID: cityID}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findCity(tx, cityID); err != nil {
			return err
		}
		if err := tx.Create(area).Error; err != nil {
			return areaWriteError("create area", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return area, nil
}

// 6 UpdateArea renames an area and may move it to another city
func (s *AreaService) UpdateArea(ctx context.Context, id uint, name string, cityID uint) (*models.Area, error) {
	name = strings.TrimSpace(name)
	if !models.ValidName(name) {
		return nil, ErrInvalidName
	}

	var area models.Area
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&area, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAreaNotFound
			}
			return storageError("get area", err)
		}
		if _, err := findCity(tx, cityID); err != nil {
			return err
		}
		area.Name = name
		area.CityID = cityID
		area.City = nil
		if err := tx.Save(&area).Error; err != nil {
			return areaWriteError("update area", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &area, nil
}

// 7 DeleteArea removes a single area
func (s *AreaService) DeleteArea(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Area{}, id)
	if res.Error != nil {
		return storageError("delete area", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrAreaNotFound
	}
	return nil
}

func areaWriteError(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrCityNotFound
	case errors.Is(err, models.ErrInvalidName):
		return ErrInvalidName
	default:
		return storageError(op, err)
	}
}
