package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/CrisOrc/prueba-tecnica-Konecta/models"
	"github.com/CrisOrc/prueba-tecnica-Konecta/pkg/password"
)

// EmployeePage is one page of an employee listing.
type EmployeePage struct {
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
	Limit      int               `json:"limit"`
	Employees  []models.Employee `json:"employees"`
}

// EmployeeService manages employee records and their backing users.
type EmployeeService struct {
	employees EmployeeRepository
	users     UserRepository
	hasher    *password.Hasher
	logger    *zap.Logger
}

func NewEmployeeService(employees EmployeeRepository, users UserRepository, hasher *password.Hasher, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{
		employees: employees,
		users:     users,
		hasher:    hasher,
		logger:    logger,
	}
}

// List returns employees matching the filter, most recent first.
func (s *EmployeeService) List(ctx context.Context, filter EmployeeFilter, page Pagination) (*EmployeePage, error) {
	if page.Page < 1 {
		page.Page = 1
	}
	if page.Limit < 1 {
		page.Limit = 10
	}

	employees, total, err := s.employees.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return &EmployeePage{
		Total:      total,
		Page:       page.Page,
		TotalPages: int(math.Ceil(float64(total) / float64(page.Limit))),
		Limit:      page.Limit,
		Employees:  employees,
	}, nil
}

// Create registers a new user and its employee record as a single unit.
func (s *EmployeeService) Create(ctx context.Context, name, email, plaintext string, role models.Role, hireDate time.Time, salary float64) (*models.Employee, error) {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     role,
	}
	employee := &models.Employee{
		HireDate: hireDate,
		Salary:   salary,
	}
	if err := s.employees.CreateWithUser(ctx, user, employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	s.logger.Info("employee created",
		zap.Uint("employeeId", employee.ID),
		zap.Uint("userId", user.ID),
	)
	return employee, nil
}

// Update changes the hire date and salary of an existing employee.
func (s *EmployeeService) Update(ctx context.Context, id uint, hireDate time.Time, salary float64) (*models.Employee, error) {
	employee, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up employee: %w", err)
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}

	employee.HireDate = hireDate
	employee.Salary = salary
	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	s.logger.Info("employee updated", zap.Uint("employeeId", employee.ID))
	return employee, nil
}

// Delete removes the employee and then its owning user. An Employee must
// never outlive its User reference, so the two deletes run as one unit.
func (s *EmployeeService) Delete(ctx context.Context, id uint) error {
	employee, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to look up employee: %w", err)
	}
	if employee == nil {
		return ErrEmployeeNotFound
	}

	if err := s.employees.DeleteWithUser(ctx, employee); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	s.logger.Info("employee deleted",
		zap.Uint("employeeId", employee.ID),
		zap.Uint("userId", employee.UserID),
	)
	return nil
}
