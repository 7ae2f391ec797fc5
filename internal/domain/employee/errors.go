package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeCodeExists   = errors.New("employee code already exists")
	ErrEmailExists          = errors.New("email already registered")
	ErrBiometricIDExists    = errors.New("biometric id already registered")
	ErrEmployeeNotActive    = errors.New("employee is not active")
	ErrUnknownBiometricID   = errors.New("no employee registered for this biometric id")
	ErrShiftNotFoundForName = errors.New("referenced shift does not exist")
)
