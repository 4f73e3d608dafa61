package services

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/CrisOrc/prueba-tecnica-Konecta/models"
)

// RequestPage is one page of a request listing.
type RequestPage struct {
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
	Limit      int              `json:"limit"`
	Requests   []models.Request `json:"requests"`
}

// RequestService manages request tickets.
type RequestService struct {
	requests  RequestRepository
	employees EmployeeRepository
	users     UserRepository
	logger    *zap.Logger
}

func NewRequestService(requests RequestRepository, employees EmployeeRepository, users UserRepository, logger *zap.Logger) *RequestService {
	return &RequestService{
		requests:  requests,
		employees: employees,
		users:     users,
		logger:    logger,
	}
}

// GenerateCode produces a display code of the form REQ-#### with a random
// 4-digit suffix. Codes are not unique: two requests can draw the same
// suffix, which callers accept.
func GenerateCode() string {
	return fmt.Sprintf("REQ-%d", 1000+rand.Intn(9000))
}

// Create records a new request on behalf of the authenticated user. An
// EMPLOYEE must have an employee record, which becomes the creator
// reference; an ADMIN is referenced directly. Exactly one of the two
// creator fields ends up set.
func (s *RequestService) Create(ctx context.Context, description, summary string, userID uint) (*models.Request, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	request := &models.Request{
		Code:        GenerateCode(),
		Description: description,
		Summary:     summary,
	}

	switch user.Role {
	case models.RoleEmployee:
		employee, err := s.employees.FindByUserID(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up employee record: %w", err)
		}
		if employee == nil {
			return nil, ErrEmployeeRecordNotFound
		}
		request.EmployeeID = &employee.ID
	case models.RoleAdmin:
		request.AdminID = &user.ID
	default:
		return nil, ErrRoleForbidden
	}

	if err := s.requests.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	s.logger.Info("request created",
		zap.Uint("requestId", request.ID),
		zap.String("code", request.Code),
		zap.Uint("userId", user.ID),
	)
	return request, nil
}

// List returns requests matching the filter, most recent first.
func (s *RequestService) List(ctx context.Context, filter RequestFilter, page Pagination) (*RequestPage, error) {
	if page.Page < 1 {
		page.Page = 1
	}
	if page.Limit < 1 {
		page.Limit = 10
	}

	requests, total, err := s.requests.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	return &RequestPage{
		Total:      total,
		Page:       page.Page,
		TotalPages: int(math.Ceil(float64(total) / float64(page.Limit))),
		Limit:      page.Limit,
		Requests:   requests,
	}, nil
}

// Delete removes a request by id.
func (s *RequestService) Delete(ctx context.Context, id uint) error {
	request, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to look up request: %w", err)
	}
	if request == nil {
		return ErrRequestNotFound
	}

	if err := s.requests.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete request: %w", err)
	}

	s.logger.Info("request deleted", zap.Uint("requestId", id))
	return nil
}
