// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// Origin dev yang selalu diizinkan di luar production
var devOrigins = []string{
	"http://localhost:3000",
	"http://localhost:3001",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:3001",
}

// AllowedOrigins: origin dari config + origin dev (kecuali production), tanpa duplikat.
func AllowedOrigins(configured []string, production bool) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(configured)+len(devOrigins))
	add := func(o string) {
		o = strings.TrimSpace(o)
		if o != "" && !seen[o] {
			seen[o] = true
			out = append(out, o)
		}
	}
	if !production {
		for _, o := range devOrigins {
			add(o)
		}
	}
	for _, o := range configured {
		add(o)
	}
	return out
}

// CorsMiddleware membuat middleware CORS
func CorsMiddleware(configured []string, production bool) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(AllowedOrigins(configured, production), ","),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowCredentials: true,
	})
}
