package services

import "errors"

var (
	ErrNotFound               = errors.New("record not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrWrongPassword          = errors.New("wrong password")
	ErrAdminExists            = errors.New("admin user already exists")
	ErrDuplicateOrderNumber   = errors.New("order number already exists")
	ErrOrderNumberTaken       = errors.New("supplied order number already in use")
	ErrDuplicateAccountNumber = errors.New("account number already exists")
	ErrInvalidOrderStatus     = errors.New("invalid order status")
)
