// internal/services/errors.go
package services

import "errors"

// Expected failures returned by the services. Handlers map these onto HTTP
// statuses; anything else is treated as an internal failure.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrUnauthenticated   = errors.New("authentication required")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInsufficientStock = errors.New("insufficient stock")

	ErrProductNotFound  = errors.New("product not found")
	ErrCartItemNotFound = errors.New("product is not in the cart")
	ErrOrderNotFound    = errors.New("order not found")
	ErrEmailTaken       = errors.New("a user with this email already exists")
	ErrInvalidStatus    = errors.New("invalid order status")
)

// IsExpected reports whether err belongs to the documented failure taxonomy,
// as opposed to an unexpected persistence failure.
func IsExpected(err error) bool {
	for _, e := range []error{
		ErrInvalidArgument, ErrUnauthenticated, ErrNotFound, ErrConflict,
		ErrInsufficientStock, ErrProductNotFound, ErrCartItemNotFound,
		ErrOrderNotFound, ErrEmailTaken, ErrInvalidStatus,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
