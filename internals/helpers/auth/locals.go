package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Key Locals yang diisi middleware AuthJWT
const (
	LocUserID = "user_id"
	LocRole   = "userRole"
)

// GetUserIDFromToken ambil user_id dari Locals. 401 kalau belum login.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	switch t := c.Locals(LocUserID).(type) {
	case uuid.UUID:
		if t != uuid.Nil {
			return t, nil
		}
	case string:
		if id, err := uuid.Parse(strings.TrimSpace(t)); err == nil && id != uuid.Nil {
			return id, nil
		}
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Missing Authorization token")
}

// GetRoleFromToken ambil role dari Locals ("" kalau tidak ada).
func GetRoleFromToken(c *fiber.Ctx) string {
	if r, ok := c.Locals(LocRole).(string); ok {
		return r
	}
	return ""
}

// SetIdentity dipanggil middleware sesudah token lolos verifikasi.
func SetIdentity(c *fiber.Ctx, userID uuid.UUID, role string) {
	c.Locals(LocUserID, userID)
	c.Locals(LocRole, role)
}
