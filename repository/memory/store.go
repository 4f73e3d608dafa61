// Package memory provides in-memory implementations of the repository
// interfaces, used by the test suites in place of Postgres.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/CrisOrc/prueba-tecnica-Konecta/models"
	"github.com/CrisOrc/prueba-tecnica-Konecta/services"
)

// Store holds all entities behind a single mutex so cross-entity operations
// (user+employee create/delete) stay consistent.
type Store struct {
	mu             sync.Mutex
	users          map[uint]models.User
	employees      map[uint]models.Employee
	requests       map[uint]models.Request
	nextUserID     uint
	nextEmployeeID uint
	nextRequestID  uint
}

func NewStore() *Store {
	return &Store{
		users:          make(map[uint]models.User),
		employees:      make(map[uint]models.Employee),
		requests:       make(map[uint]models.Request),
		nextUserID:     1,
		nextEmployeeID: 1,
		nextRequestID:  1,
	}
}

func (s *Store) Users() *UserStore         { return &UserStore{s: s} }
func (s *Store) Employees() *EmployeeStore { return &EmployeeStore{s: s} }
func (s *Store) Requests() *RequestStore   { return &RequestStore{s: s} }

// UserStore implements services.UserRepository.
type UserStore struct {
	s *Store
}

func (u *UserStore) Create(_ context.Context, user *models.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	return u.s.createUserLocked(user)
}

func (s *Store) createUserLocked(user *models.User) error {
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return fmt.Errorf("duplicate email %q", user.Email)
		}
	}
	user.ID = s.nextUserID
	s.nextUserID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
		user.UpdatedAt = user.CreatedAt
	}
	s.users[user.ID] = *user
	return nil
}

func (u *UserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	for _, user := range u.s.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (u *UserStore) FindByID(_ context.Context, id uint) (*models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	user, ok := u.s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (u *UserStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	for _, user := range u.s.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (u *UserStore) List(_ context.Context) ([]models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	users := make([]models.User, 0, len(u.s.users))
	for _, user := range u.s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// EmployeeStore implements services.EmployeeRepository.
type EmployeeStore struct {
	s *Store
}

func (e *EmployeeStore) CreateWithUser(_ context.Context, user *models.User, employee *models.Employee) error {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	if err := e.s.createUserLocked(user); err != nil {
		return err
	}
	employee.ID = e.s.nextEmployeeID
	e.s.nextEmployeeID++
	employee.UserID = user.ID
	employee.User = *user
	e.s.employees[employee.ID] = *employee
	return nil
}

func (e *EmployeeStore) FindByID(_ context.Context, id uint) (*models.Employee, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	employee, ok := e.s.employees[id]
	if !ok {
		return nil, nil
	}
	employee.User = e.s.users[employee.UserID]
	return &employee, nil
}

func (e *EmployeeStore) FindByUserID(_ context.Context, userID uint) (*models.Employee, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	for _, employee := range e.s.employees {
		if employee.UserID == userID {
			found := employee
			return &found, nil
		}
	}
	return nil, nil
}

func (e *EmployeeStore) Update(_ context.Context, employee *models.Employee) error {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	if _, ok := e.s.employees[employee.ID]; !ok {
		return fmt.Errorf("employee %d does not exist", employee.ID)
	}
	e.s.employees[employee.ID] = *employee
	return nil
}

func (e *EmployeeStore) DeleteWithUser(_ context.Context, employee *models.Employee) error {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	delete(e.s.employees, employee.ID)
	delete(e.s.users, employee.UserID)
	return nil
}

func (e *EmployeeStore) List(_ context.Context, filter services.EmployeeFilter, page services.Pagination) ([]models.Employee, int64, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	var matched []models.Employee
	for _, employee := range e.s.employees {
		user := e.s.users[employee.UserID]
		if filter.Name != "" && !strings.Contains(strings.ToLower(user.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.MinSalary != nil && filter.MaxSalary != nil {
			if employee.Salary < *filter.MinSalary || employee.Salary > *filter.MaxSalary {
				continue
			}
		}
		employee.User = user
		matched = append(matched, employee)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := int64(len(matched))
	return paginate(matched, page), total, nil
}

// RequestStore implements services.RequestRepository.
type RequestStore struct {
	s *Store
}

func (r *RequestStore) Create(_ context.Context, request *models.Request) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	request.ID = r.s.nextRequestID
	r.s.nextRequestID++
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now()
	}
	r.s.requests[request.ID] = *request
	return nil
}

func (r *RequestStore) FindByID(_ context.Context, id uint) (*models.Request, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	request, ok := r.s.requests[id]
	if !ok {
		return nil, nil
	}
	return &request, nil
}

func (r *RequestStore) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.requests, id)
	return nil
}

func (r *RequestStore) List(_ context.Context, filter services.RequestFilter, page services.Pagination) ([]models.Request, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var matched []models.Request
	for _, request := range r.s.requests {
		if filter.EmployeeID != nil && (request.EmployeeID == nil || *request.EmployeeID != *filter.EmployeeID) {
			continue
		}
		if filter.AdminID != nil && (request.AdminID == nil || *request.AdminID != *filter.AdminID) {
			continue
		}
		if filter.Start != nil && filter.End != nil {
			if request.CreatedAt.Before(*filter.Start) || request.CreatedAt.After(*filter.End) {
				continue
			}
		}
		matched = append(matched, request)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := int64(len(matched))
	return paginate(matched, page), total, nil
}

func paginate[T any](items []T, page services.Pagination) []T {
	start := page.Offset()
	if start >= len(items) {
		return nil
	}
	end := start + page.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
