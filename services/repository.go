package services

import (
	"context"
	"time"

	"github.com/CrisOrc/prueba-tecnica-Konecta/models"
)

// Pagination is the 1-based page/limit contract shared by all listings.
type Pagination struct {
	Page  int
	Limit int
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// EmployeeFilter narrows an employee listing. Name matches a case-insensitive
// substring of the owning user's name; the salary range only applies when
// both bounds are present.
type EmployeeFilter struct {
	Name      string
	MinSalary *float64
	MaxSalary *float64
}

// RequestFilter narrows a request listing. The createdAt range only applies
// when both bounds are present; End is inclusive.
type RequestFilter struct {
	EmployeeID *uint
	AdminID    *uint
	Start      *time.Time
	End        *time.Time
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]models.User, error)
}

type EmployeeRepository interface {
	// CreateWithUser persists the user and its employee row as one unit.
	CreateWithUser(ctx context.Context, user *models.User, employee *models.Employee) error
	FindByID(ctx context.Context, id uint) (*models.Employee, error)
	FindByUserID(ctx context.Context, userID uint) (*models.Employee, error)
	Update(ctx context.Context, employee *models.Employee) error
	// DeleteWithUser removes the employee row and then its owning user as
	// one unit.
	DeleteWithUser(ctx context.Context, employee *models.Employee) error
	List(ctx context.Context, filter EmployeeFilter, page Pagination) ([]models.Employee, int64, error)
}

type RequestRepository interface {
	Create(ctx context.Context, request *models.Request) error
	FindByID(ctx context.Context, id uint) (*models.Request, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter RequestFilter, page Pagination) ([]models.Request, int64, error)
}
