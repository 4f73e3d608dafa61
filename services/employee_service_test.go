package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/CrisOrc/prueba-tecnica-Konecta/models"
	"github.com/CrisOrc/prueba-tecnica-Konecta/services"
)

func hireDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func seedEmployee(t *testing.T, svc *services.EmployeeService, name, email string, salary float64) *models.Employee {
	t.Helper()
	employee, err := svc.Create(context.Background(), name, email, "abcdef", models.RoleEmployee, hireDate(t, "2024-01-15"), salary)
	require.NoError(t, err)
	return employee
}

func TestCreateEmployeeLinksUser(t *testing.T) {
	store := newStoreWithServices(t)
	employee := seedEmployee(t, store.employees, "Jane", "jane@x.com", 40000)

	require.NotZero(t, employee.ID)
	require.NotZero(t, employee.UserID)
	require.Equal(t, employee.UserID, employee.User.ID)
	require.Equal(t, "Jane", employee.User.Name)

	user, err := store.store.Users().FindByID(context.Background(), employee.UserID)
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, models.RoleEmployee, user.Role)
}

func TestCreateEmployeeDuplicateEmail(t *testing.T) {
	store := newStoreWithServices(t)
	seedEmployee(t, store.employees, "Jane", "jane@x.com", 40000)

	_, err := store.employees.Create(context.Background(), "Other", "jane@x.com", "abcdef", models.RoleEmployee, hireDate(t, "2024-02-01"), 30000)
	require.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestListEmployeesSalaryRangeInclusive(t *testing.T) {
	store := newStoreWithServices(t)
	seedEmployee(t, store.employees, "Low", "low@x.com", 29999)
	edgeLow := seedEmployee(t, store.employees, "EdgeLow", "edgelow@x.com", 30000)
	mid := seedEmployee(t, store.employees, "Mid", "mid@x.com", 40000)
	edgeHigh := seedEmployee(t, store.employees, "EdgeHigh", "edgehigh@x.com", 50000)
	seedEmployee(t, store.employees, "High", "high@x.com", 50001)

	min, max := 30000.0, 50000.0
	page, err := store.employees.List(context.Background(), services.EmployeeFilter{MinSalary: &min, MaxSalary: &max}, services.Pagination{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 3, page.Total)

	ids := make([]uint, 0, len(page.Employees))
	for _, e := range page.Employees {
		ids = append(ids, e.ID)
	}
	// Ordered by descending id.
	require.Equal(t, []uint{edgeHigh.ID, mid.ID, edgeLow.ID}, ids)
}

func TestListEmployeesSingleBoundAppliesNoSalaryFilter(t *testing.T) {
	store := newStoreWithServices(t)
	seedEmployee(t, store.employees, "Low", "low@x.com", 1000)
	seedEmployee(t, store.employees, "High", "high@x.com", 99999)

	min := 50000.0
	page, err := store.employees.List(context.Background(), services.EmployeeFilter{MinSalary: &min}, services.Pagination{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 2, page.Total)
}

func TestListEmployeesNameFilterCaseInsensitive(t *testing.T) {
	store := newStoreWithServices(t)
	seedEmployee(t, store.employees, "Jane Doe", "jane@x.com", 40000)
	seedEmployee(t, store.employees, "John Smith", "john@x.com", 40000)

	page, err := store.employees.List(context.Background(), services.EmployeeFilter{Name: "jane"}, services.Pagination{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, page.Total)
	require.Equal(t, "Jane Doe", page.Employees[0].User.Name)
}

func TestListEmployeesPagination(t *testing.T) {
	store := newStoreWithServices(t)
	for i := 0; i < 5; i++ {
		seedEmployee(t, store.employees, "Emp", string(rune('a'+i))+"@x.com", 40000)
	}

	page, err := store.employees.List(context.Background(), services.EmployeeFilter{}, services.Pagination{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.EqualValues(t, 5, page.Total)
	require.Equal(t, 2, page.Page)
	require.Equal(t, 3, page.TotalPages)
	require.Equal(t, 2, page.Limit)
	require.Len(t, page.Employees, 2)
}

func TestUpdateEmployee(t *testing.T) {
	store := newStoreWithServices(t)
	employee := seedEmployee(t, store.employees, "Jane", "jane@x.com", 40000)

	updated, err := store.employees.Update(context.Background(), employee.ID, hireDate(t, "2025-03-01"), 45000)
	require.NoError(t, err)
	require.Equal(t, 45000.0, updated.Salary)
	require.Equal(t, hireDate(t, "2025-03-01"), updated.HireDate)
}

func TestUpdateEmployeeNotFound(t *testing.T) {
	store := newStoreWithServices(t)

	_, err := store.employees.Update(context.Background(), 999, hireDate(t, "2025-03-01"), 45000)
	require.ErrorIs(t, err, services.ErrEmployeeNotFound)
}

func TestDeleteEmployeeRemovesUser(t *testing.T) {
	store := newStoreWithServices(t)
	employee := seedEmployee(t, store.employees, "Jane", "jane@x.com", 40000)

	require.NoError(t, store.employees.Delete(context.Background(), employee.ID))

	gone, err := store.store.Employees().FindByID(context.Background(), employee.ID)
	require.NoError(t, err)
	require.Nil(t, gone)

	user, err := store.store.Users().FindByID(context.Background(), employee.UserID)
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestDeleteEmployeeNotFound(t *testing.T) {
	store := newStoreWithServices(t)

	err := store.employees.Delete(context.Background(), 999)
	require.ErrorIs(t, err, services.ErrEmployeeNotFound)
}
