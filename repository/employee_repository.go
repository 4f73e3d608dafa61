package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/CrisOrc/prueba-tecnica-Konecta/models"
	"github.com/CrisOrc/prueba-tecnica-Konecta/services"
)

// EmployeeRepository persists employees in Postgres.
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// CreateWithUser creates the user and its employee row in one transaction,
// so a failed employee insert rolls the user back.
func (r *EmployeeRepository) CreateWithUser(ctx context.Context, user *models.User, employee *models.Employee) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		employee.UserID = user.ID
		if err := tx.Create(employee).Error; err != nil {
			return err
		}
		employee.User = *user
		return nil
	})
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id uint) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).Preload("User").First(&employee, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepository) FindByUserID(ctx context.Context, userID uint) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

// DeleteWithUser removes the employee row first and then its owning user,
// inside one transaction so no orphaned user is observable.
func (r *EmployeeRepository) DeleteWithUser(ctx context.Context, employee *models.Employee) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Employee{}, employee.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, employee.UserID).Error
	})
}

func (r *EmployeeRepository) List(ctx context.Context, filter services.EmployeeFilter, page services.Pagination) ([]models.Employee, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Employee{}).
		Joins("JOIN users ON users.id = employees.user_id")

	if filter.Name != "" {
		query = query.Where("users.name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.MinSalary != nil && filter.MaxSalary != nil {
		query = query.Where("employees.salary BETWEEN ? AND ?", *filter.MinSalary, *filter.MaxSalary)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var employees []models.Employee
	err := query.Preload("User").
		Order("employees.id desc").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&employees).Error
	if err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}
