package services

import "errors"

var (
	ErrEmailTaken             = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrRequestNotFound        = errors.New("request not found")
	ErrEmployeeRecordNotFound = errors.New("employee record not found")
	ErrRoleForbidden          = errors.New("role not allowed to create requests")
)
