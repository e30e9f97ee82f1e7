package finance

import "errors"

// Domain errors. The HTTP layer maps these onto status codes; the
// repository and usecase layers wrap them with context via %w so
// handlers can test with errors.Is.
var (
	ErrMissingFields          = errors.New("username, email and password are required")
	ErrUsernameTaken          = errors.New("username already exists")
	ErrEmailTaken             = errors.New("email already exists")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserNotFound           = errors.New("user not found")
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrForbidden              = errors.New("transaction does not belong to the caller")
	ErrInvalidTransactionType = errors.New("transaction type must be Income or Expense")
)
