package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/PixelFarm_Go/internal/save"
)

const maxCatalogIDLen = 32

// requestValidator reports field errors under their JSON names so clients
// can map them straight back onto the body they sent.
var requestValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("slot", validateSlot)
	_ = v.RegisterValidation("catalogid", validateCatalogID)
	return v
})

func validateRequest(req any) error {
	return requestValidator().Struct(req)
}

func validateCatalogIDValue(id string) error {
	return requestValidator().Var(id, "catalogid")
}

// fieldErrors turns a validator failure into field -> message
func fieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"error": "Invalid request format"}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "slot":
		return "Slot names may only use letters, digits, '-' and '_'"
	case "catalogid":
		return "Invalid catalog id"
	case "min":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	}
	return "Invalid value"
}

// validateSlot allows an empty slot, which means the default one
func validateSlot(fl validator.FieldLevel) bool {
	slot := fl.Field().String()
	return slot == "" || save.ValidateSlot(slot) == nil
}

// validateCatalogID accepts ids like WHEAT or r_bread
func validateCatalogID(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	if id == "" || len(id) > maxCatalogIDLen {
		return false
	}
	return strings.IndexFunc(id, func(r rune) bool {
		return !(r == '_' || r >= '0' && r <= '9' || r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z')
	}) < 0
}
