package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/CrisOrc/prueba-tecnica-Konecta/config"
	"github.com/CrisOrc/prueba-tecnica-Konecta/controllers"
	"github.com/CrisOrc/prueba-tecnica-Konecta/models"
	"github.com/CrisOrc/prueba-tecnica-Konecta/pkg/password"
	"github.com/CrisOrc/prueba-tecnica-Konecta/pkg/token"
	"github.com/CrisOrc/prueba-tecnica-Konecta/repository/memory"
	"github.com/CrisOrc/prueba-tecnica-Konecta/services"
)

const testSecret = "test-secret"

type env struct {
	router *gin.Engine
	store  *memory.Store
	tokens *token.Manager
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Env:               "development",
		JWTSecret:         testSecret,
		JWTExpiration:     time.Hour,
		RateLimitRequests: 1000,
		RateLimitWindow:   15 * time.Minute,
	}

	store := memory.NewStore()
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTExpiration)
	hasher := password.NewHasher()
	logger := zap.NewNop()

	authService := services.NewAuthService(store.Users(), tokens, hasher, logger)
	employeeService := services.NewEmployeeService(store.Employees(), store.Users(), hasher, logger)
	requestService := services.NewRequestService(store.Requests(), store.Employees(), store.Users(), logger)

	router := controllers.SetupRouter(
		cfg,
		tokens,
		controllers.NewAuthController(authService, logger),
		controllers.NewEmployeeController(employeeService, logger),
		controllers.NewRequestController(requestService, logger),
		controllers.NewUserController(store.Users(), logger),
	)

	return &env{router: router, store: store, tokens: tokens}
}

func (e *env) do(method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *env) register(t *testing.T, name, email, pass string, role models.Role) {
	t.Helper()
	res := e.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"name": name, "email": email, "password": pass, "role": role,
	})
	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())
}

func (e *env) login(t *testing.T, email, pass string) string {
	t.Helper()
	res := e.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": email, "password": pass})
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestRegisterLoginAndProtectedRoute(t *testing.T) {
	e := newEnv(t)

	e.register(t, "T", "t@x.com", "abcdef", models.RoleUser)
	tok := e.login(t, "t@x.com", "abcdef")

	res := e.do(http.MethodGet, "/api/test/protected", tok, nil)
	require.Equal(t, http.StatusOK, res.Code)
	require.JSONEq(t, `{"message":"Protected API"}`, res.Body.String())

	res = e.do(http.MethodGet, "/api/test/protected", "", nil)
	require.Equal(t, http.StatusForbidden, res.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	e := newEnv(t)
	e.register(t, "T", "t@x.com", "abcdef", models.RoleUser)

	res := e.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Other", "email": "t@x.com", "password": "different", "role": models.RoleAdmin,
	})
	require.Equal(t, http.StatusBadRequest, res.Code)
}

func TestRegisterRejectsInvalidBody(t *testing.T) {
	e := newEnv(t)

	cases := []gin.H{
		{"name": "T", "email": "not-an-email", "password": "abcdef", "role": "USER"},
		{"name": "T", "email": "t@x.com", "password": "short", "role": "USER"},
		{"name": "T", "email": "t@x.com", "password": "abcdef", "role": "SUPERUSER"},
		{"email": "t@x.com", "password": "abcdef", "role": "USER"},
	}
	for _, body := range cases {
		res := e.do(http.MethodPost, "/api/auth/register", "", body)
		require.Equal(t, http.StatusBadRequest, res.Code, res.Body.String())
	}
}

func TestLoginFailures(t *testing.T) {
	e := newEnv(t)
	e.register(t, "T", "t@x.com", "abcdef", models.RoleUser)

	res := e.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "nobody@x.com", "password": "abcdef"})
	require.Equal(t, http.StatusNotFound, res.Code)

	res = e.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "t@x.com", "password": "wrong!"})
	require.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestExpiredAndInvalidTokens(t *testing.T) {
	e := newEnv(t)
	e.register(t, "T", "t@x.com", "abcdef", models.RoleUser)

	expired := token.NewManager(testSecret, -time.Minute)
	tok, err := expired.Generate(&models.User{ID: 1, Name: "T", Role: models.RoleUser})
	require.NoError(t, err)

	res := e.do(http.MethodGet, "/api/test/protected", tok, nil)
	require.Equal(t, http.StatusUnauthorized, res.Code)

	res = e.do(http.MethodGet, "/api/test/protected", "garbage", nil)
	require.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestEmployeeRoutesRequireAdmin(t *testing.T) {
	e := newEnv(t)
	e.register(t, "Admin", "admin@x.com", "abcdef", models.RoleAdmin)
	e.register(t, "Plain", "plain@x.com", "abcdef", models.RoleUser)
	adminTok := e.login(t, "admin@x.com", "abcdef")
	plainTok := e.login(t, "plain@x.com", "abcdef")

	body := gin.H{
		"name": "Jane", "email": "jane@x.com", "password": "abcdef",
		"role": "EMPLOYEE", "hireDate": "2024-01-15", "salary": 40000,
	}

	res := e.do(http.MethodPost, "/api/employee", plainTok, body)
	require.Equal(t, http.StatusForbidden, res.Code)

	res = e.do(http.MethodPost, "/api/employee", adminTok, body)
	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())

	// Any authenticated user can read the listing.
	res = e.do(http.MethodGet, "/api/employee", plainTok, nil)
	require.Equal(t, http.StatusOK, res.Code)

	var page struct {
		Total      int64 `json:"total"`
		Page       int   `json:"page"`
		TotalPages int   `json:"totalPages"`
		Limit      int   `json:"limit"`
		Employees  []struct {
			ID   uint `json:"id"`
			User struct {
				Name string `json:"name"`
			} `json:"user"`
		} `json:"employees"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &page))
	require.EqualValues(t, 1, page.Total)
	require.Equal(t, 1, page.Page)
	require.Equal(t, 10, page.Limit)
	require.Equal(t, "Jane", page.Employees[0].User.Name)
}

func TestEmployeeUpdateAndDelete(t *testing.T) {
	e := newEnv(t)
	e.register(t, "Admin", "admin@x.com", "abcdef", models.RoleAdmin)
	adminTok := e.login(t, "admin@x.com", "abcdef")

	res := e.do(http.MethodPost, "/api/employee", adminTok, gin.H{
		"name": "Jane", "email": "jane@x.com", "password": "abcdef",
		"role": "EMPLOYEE", "hireDate": "2024-01-15", "salary": 40000,
	})
	require.Equal(t, http.StatusCreated, res.Code)

	var created struct {
		Employee struct {
			ID uint `json:"id"`
		} `json:"employee"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &created))

	res = e.do(http.MethodPut, fmt.Sprintf("/api/employee/%d", created.Employee.ID), adminTok, gin.H{
		"hireDate": "2025-03-01", "salary": 45000,
	})
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())

	res = e.do(http.MethodPut, "/api/employee/999", adminTok, gin.H{
		"hireDate": "2025-03-01", "salary": 45000,
	})
	require.Equal(t, http.StatusNotFound, res.Code)

	res = e.do(http.MethodDelete, fmt.Sprintf("/api/employee/%d", created.Employee.ID), adminTok, nil)
	require.Equal(t, http.StatusOK, res.Code)

	res = e.do(http.MethodDelete, fmt.Sprintf("/api/employee/%d", created.Employee.ID), adminTok, nil)
	require.Equal(t, http.StatusNotFound, res.Code)
}

func TestRequestLifecycle(t *testing.T) {
	e := newEnv(t)
	e.register(t, "Admin", "admin@x.com", "abcdef", models.RoleAdmin)
	adminTok := e.login(t, "admin@x.com", "abcdef")

	res := e.do(http.MethodPost, "/api/employee", adminTok, gin.H{
		"name": "Jane", "email": "jane@x.com", "password": "abcdef",
		"role": "EMPLOYEE", "hireDate": "2024-01-15", "salary": 40000,
	})
	require.Equal(t, http.StatusCreated, res.Code)
	employeeTok := e.login(t, "jane@x.com", "abcdef")

	res = e.do(http.MethodPost, "/api/request", employeeTok, gin.H{
		"description": "New laptop", "summary": "hardware",
	})
	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())

	var created struct {
		Request struct {
			ID         uint   `json:"id"`
			Code       string `json:"code"`
			EmployeeID *uint  `json:"employeeId"`
			AdminID    *uint  `json:"adminId"`
		} `json:"request"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &created))
	require.Regexp(t, `^REQ-\d{4}$`, created.Request.Code)
	require.NotNil(t, created.Request.EmployeeID)
	require.Nil(t, created.Request.AdminID)

	res = e.do(http.MethodGet, "/api/request?page=1&limit=10", employeeTok, nil)
	require.Equal(t, http.StatusOK, res.Code)

	// Only admins may delete.
	res = e.do(http.MethodDelete, fmt.Sprintf("/api/request/%d", created.Request.ID), employeeTok, nil)
	require.Equal(t, http.StatusForbidden, res.Code)

	res = e.do(http.MethodDelete, fmt.Sprintf("/api/request/%d", created.Request.ID), adminTok, nil)
	require.Equal(t, http.StatusOK, res.Code)

	res = e.do(http.MethodDelete, fmt.Sprintf("/api/request/%d", created.Request.ID), adminTok, nil)
	require.Equal(t, http.StatusNotFound, res.Code)
}

func TestRequestCreateAsAdminSetsAdminID(t *testing.T) {
	e := newEnv(t)
	e.register(t, "Admin", "admin@x.com", "abcdef", models.RoleAdmin)
	adminTok := e.login(t, "admin@x.com", "abcdef")

	res := e.do(http.MethodPost, "/api/request", adminTok, gin.H{"description": "Budget review"})
	require.Equal(t, http.StatusCreated, res.Code)

	var created struct {
		Request struct {
			EmployeeID *uint `json:"employeeId"`
			AdminID    *uint `json:"adminId"`
		} `json:"request"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &created))
	require.Nil(t, created.Request.EmployeeID)
	require.NotNil(t, created.Request.AdminID)
}

func TestRequestRoutesForbiddenForPlainUsers(t *testing.T) {
	e := newEnv(t)
	e.register(t, "Plain", "plain@x.com", "abcdef", models.RoleUser)
	plainTok := e.login(t, "plain@x.com", "abcdef")

	res := e.do(http.MethodGet, "/api/request", plainTok, nil)
	require.Equal(t, http.StatusForbidden, res.Code)

	res = e.do(http.MethodPost, "/api/request", plainTok, gin.H{"description": "Anything"})
	require.Equal(t, http.StatusForbidden, res.Code)
}

func TestUserListingOmitsPasswords(t *testing.T) {
	e := newEnv(t)
	e.register(t, "T", "t@x.com", "abcdef", models.RoleUser)

	res := e.do(http.MethodGet, "/api/users", "", nil)
	require.Equal(t, http.StatusOK, res.Code)
	require.Contains(t, res.Body.String(), "t@x.com")
	require.NotContains(t, res.Body.String(), "password")
	require.NotContains(t, res.Body.String(), "$2a$")
}

func TestPublicTestRoute(t *testing.T) {
	e := newEnv(t)

	res := e.do(http.MethodGet, "/api/test", "", nil)
	require.Equal(t, http.StatusOK, res.Code)
	require.JSONEq(t, `{"message":"Test API"}`, res.Body.String())
}
