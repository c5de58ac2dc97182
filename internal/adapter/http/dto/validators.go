package dto

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"ruleteo/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidators(v)
	}
}

// RegisterValidators installs the custom rules and the decimal type
// conversion on v. gin's default engine is configured at package init.
func RegisterValidators(v *validator.Validate) {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	_ = v.RegisterValidation("bank", validateBank)
}

// decimalValue lets numeric tags (gte, lte, gt) compare decimal fields.
// Values outside domain.WithinMoneyBounds become NaN, which fails every
// numeric comparison, and are never converted.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		if !domain.WithinMoneyBounds(d) {
			return math.NaN()
		}
		f, _ := d.Float64()
		return f
	}
	return nil
}

// validateBank accepts only the supported issuers.
func validateBank(fl validator.FieldLevel) bool {
	return domain.Bank(fl.Field().String()).Valid()
}

// ParseDate accepts either a calendar date (YYYY-MM-DD, local midnight) or
// an RFC 3339 timestamp. An empty string yields the zero time.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.ParseInLocation(DateLayout, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is neither YYYY-MM-DD nor RFC 3339", s)
	}
	return t, nil
}

// SanitizeStruct trims surrounding whitespace from every exported string
// field (including *string) of a struct pointer. Values are otherwise kept
// as typed; escaping belongs to whatever renders them.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String()))
			}
		}
	}
}

func sanitize(s string) string {
	return strings.TrimSpace(s)
}
