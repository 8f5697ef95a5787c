package helper

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Error netral yang dikembalikan semua repository (gorm maupun mongo).
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

// --- PG error mapping (pgx/libpq) ---
// MapPGError menerjemahkan error gorm/postgres ke ErrNotFound / ErrDuplicate.
// Error lain dikembalikan apa adanya.
func MapPGError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}

	// pgx
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) && pgxErr.Code == "23505" {
		return fmt.Errorf("%w: %s", ErrDuplicate, pgxErr.ConstraintName)
	}
	// lib/pq
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == "23505" {
		return fmt.Errorf("%w: %s", ErrDuplicate, pqErr.Constraint)
	}
	return err
}

// MapMongoError: padanan MapPGError untuk mongo-driver.
func MapMongoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	default:
		return err
	}
}

// FromStoreError: error repository → *fiber.Error.
// ErrNotFound → 404, ErrDuplicate → 409, sisanya dianggap store tidak tersedia (503).
func FromStoreError(err error, notFoundMsg, conflictMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		if notFoundMsg == "" {
			notFoundMsg = "Not found"
		}
		return fiber.NewError(fiber.StatusNotFound, notFoundMsg)
	case errors.Is(err, ErrDuplicate):
		if conflictMsg == "" {
			conflictMsg = "Duplicate data"
		}
		return fiber.NewError(fiber.StatusConflict, conflictMsg)
	default:
		log.Printf("[ERROR] store: %v", err)
		return fiber.NewError(fiber.StatusServiceUnavailable, "Database unavailable")
	}
}
