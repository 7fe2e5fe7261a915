package services

import (
	"context"
	"errors"
	"strings"

	"pharmacy-admin-service/internal/domain/models"

	"gorm.io/gorm"
)

// InterfaceCityService city catalogue operations
type InterfaceCityService interface {
	ListCities(ctx context.Context) ([]models.City, error)
	CountCities(ctx context.Context) (int64, error)
	GetCityByID(ctx context.Context, id uint) (*models.City, error)
	CreateCity(ctx context.Context, name string) (*models.City, error)
	UpdateCity(ctx context.Context, id uint, name string) (*models.City, error)
	DeleteCity(ctx context.Context, id uint) (int64, error)
}

// CityService implements InterfaceCityService on GORM.
type CityService struct {
	DB *gorm.DB
}

// NewCityService creates a city service
func NewCityService(db *gorm.DB) InterfaceCityService {
	return &CityService{DB: db}
}

// 1 ListCities returns every city ordered by id
func (s *CityService) ListCities(ctx context.Context) ([]models.City, error) {
	var cities []models.City
	if err := s.DB.WithContext(ctx).Order("id ASC").Find(&cities).Error; err != nil {
		return nil, storageError("list cities", err)
	}
	return cities, nil
}

// 2 CountCities returns the number of cities
func (s *CityService) CountCities(ctx context.Context) (int64, error) {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.City{}).Count(&count).Error; err != nil {
		return 0, storageError("count cities", err)
	}
	return count, nil
}

// 3 GetCityByID loads a single city
func (s *CityService) GetCityByID(ctx context.Context, id uint) (*models.City, error) {
	return findCity(s.DB.WithContext(ctx), id)
}

// 4 CreateCity inserts a city with a unique, 3 to 20 character name
func (s *CityService) CreateCity(ctx context.Context, name string) (*models.City, error) {
	name = strings.TrimSpace(name)
	if !models.ValidName(name) {
		return nil, ErrInvalidName
	}

	city := &models.City{Name: name}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureCityNameFree(tx, name, 0); err != nil {
			return err
		}
		if err := tx.Create(city).Error; err != nil {
			return cityWriteError("create city", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return city, nil
}

// 5 UpdateCity renames a city
func (s *CityService) UpdateCity(ctx context.Context, id uint, name string) (*models.City, error) {
	name = strings.TrimSpace(name)
	if !models.ValidName(name) {
		return nil, ErrInvalidName
	}

	var city *models.City
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := findCity(tx, id)
		if err != nil {
			return err
		}
		if err := ensureCityNameFree(tx, name, id); err != nil {
			return err
		}
		found.Name = name
		if err := tx.Save(found).Error; err != nil {
			return cityWriteError("update city", err)
		}
		city = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return city, nil
}

// 6 DeleteCity removes a city and every area that belongs to it.
// It returns the number of areas removed alongside the city.
func (s *CityService) DeleteCity(ctx context.Context, id uint) (int64, error) {
	var removedAreas int64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findCity(tx, id); err != nil {
			return err
		}

		res := tx.Where("city_id = ?", id).Delete(&models.Area{})
		if res.Error != nil {
			return storageError("delete city areas", res.Error)
		}
		removedAreas = res.RowsAffected

		res = tx.Delete(&models.City{}, id)
		if res.Error != nil {
			return storageError("delete city", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrCityNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removedAreas, nil
}

func findCity(db *gorm.DB, id uint) (*models.City, error) {
	var city models.City
	if err := db.First(&city, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCityNotFound
		}
		return nil, storageError("get city", err)
	}
	return &city, nil
}

// exceptID excludes the city being renamed
func ensureCityNameFree(db *gorm.DB, name string, exceptID uint) error {
	q := db.Model(&models.City{}).Where("name = ?", name)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return storageError("count cities by name", err)
	}
	if count > 0 {
		return ErrCityNameTaken
	}
	return nil
}

func cityWriteError(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrCityNameTaken
	case errors.Is(err, models.ErrInvalidName):
		return ErrInvalidName
	default:
		return storageError(op, err)
	}
}
