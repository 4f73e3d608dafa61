package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/CrisOrc/prueba-tecnica-Konecta/models"
	"github.com/CrisOrc/prueba-tecnica-Konecta/services"
)

// RequestRepository persists request tickets in Postgres.
type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(ctx context.Context, request *models.Request) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *RequestRepository) FindByID(ctx context.Context, id uint) (*models.Request, error) {
	var request models.Request
	err := r.db.WithContext(ctx).First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *RequestRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Request{}, id).Error
}

func (r *RequestRepository) List(ctx context.Context, filter services.RequestFilter, page services.Pagination) ([]models.Request, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Request{})

	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.AdminID != nil {
		query = query.Where("admin_id = ?", *filter.AdminID)
	}
	if filter.Start != nil && filter.End != nil {
		query = query.Where("created_at BETWEEN ? AND ?", *filter.Start, *filter.End)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []models.Request
	err := query.Preload("Employee").Preload("Employee.User").Preload("Admin").
		Order("id desc").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}
