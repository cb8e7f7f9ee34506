package repo

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// ErrUserNotFound is returned when no user matches the given username.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateSKU is returned when a product with the same SKU already exists.
var ErrDuplicateSKU = errors.New("sku already exists")

// ErrDuplicateUsername is returned when the username is already taken.
var ErrDuplicateUsername = errors.New("username already exists")

// ErrProductHasMovements is returned when deleting a product that still has
// purchases or sales referencing it. Movement history is never orphaned.
var ErrProductHasMovements = errors.New("product has recorded movements")

// ErrStoreUnavailable is returned when the backing store cannot be reached.
var ErrStoreUnavailable = errors.New("store unavailable")

// InsufficientStockError is returned when a sale would drive stock negative.
// Available carries the stock quantity at the time the sale was refused.
type InsufficientStockError struct {
	Available int
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: %d available", e.Available)
}

// storeErr maps connection-class failures to ErrStoreUnavailable so callers
// can distinguish an unreachable store from a deterministic failure.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08" {
		// class 08: connection exceptions
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return err
}

// isUniqueViolation reports whether err is a Postgres unique constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
