package helper

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ✅ Khusus error validasi (validator.v10)
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	return JsonValidationError(c, FieldErrors(ve))
}

// InvalidBody: body bukan JSON atau tipe field salah (mis. "score":"8").
// Dilaporkan sebagai error validasi pada field "body".
func InvalidBody(c *fiber.Ctx) error {
	return JsonValidationError(c, map[string][]string{
		"body": {"request body must be valid JSON with correctly typed fields"},
	})
}

// FieldErrors mengubah validator.ValidationErrors jadi map field → pesan.
// Nama field diambil dari tag json (lihat RegisterJSONTagName).
func FieldErrors(ve validator.ValidationErrors) map[string][]string {
	out := make(map[string][]string, len(ve))
	for _, fe := range ve {
		out[fe.Field()] = append(out[fe.Field()], messageFor(fe))
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "invalid email format"
	case "min":
		if fe.Kind().String() == "string" {
			return fe.Field() + " must be at least " + fe.Param() + " characters"
		}
		return fe.Field() + " must be >= " + fe.Param()
	case "max":
		return fe.Field() + " must be <= " + fe.Param()
	case "len":
		return fe.Field() + " must have exactly " + fe.Param() + " items"
	case "gte":
		return fe.Field() + " must be >= " + fe.Param()
	case "lte":
		return fe.Field() + " must be <= " + fe.Param()
	case "notblank":
		return fe.Field() + " must not be blank"
	default:
		return fe.Field() + " is invalid (" + fe.Tag() + ")"
	}
}

// NewValidator menyiapkan validator yang melaporkan nama field sesuai tag json
// dan mengenal tag "notblank" (string yang tidak kosong setelah trim).
func NewValidator() *validator.Validate {
	v := validator.New()
	RegisterJSONTagName(v)
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

func RegisterJSONTagName(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
}
