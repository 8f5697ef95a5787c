// internals/middlewares/auth/claim_utils.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ======== Extractors ======== */

// extractBearerToken ambil token dari "Authorization: Bearer <token>".
// Header kosong atau skema selain Bearer dianggap tidak membawa token.
func extractBearerToken(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		return ""
	}

	// Robust split: toleransi spasi ganda & case-insensitive
	fields := strings.Fields(auth)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return ""
	}

	// Sanitasi: buang kutip di kiri/kanan
	return strings.Trim(strings.TrimSpace(fields[1]), "\"'")
}
