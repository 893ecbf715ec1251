package respond

import (
	"reflect"
	"strings"
	"sync"

	"vinyl-api/internal/domain/market"
	"vinyl-api/internal/domain/users"
	"vinyl-api/internal/types"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

var registerOnce sync.Once

// RegisterValidators teaches gin's validator about decimals and Optional
// patch fields, adds the "notblank" rule, and makes it report fields by their
// JSON name. An unset Optional validates as absent, so "omitempty,..." rules
// only apply to values the client sent. omitempty also skips a set zero value,
// so the store rejects those.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonName)
		_ = v.RegisterValidation("notblank", validators.NotBlank)
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			return decimalValue(field.Interface().(decimal.Decimal))
		}, decimal.Decimal{})

		registerOptional(v, func(s string) any { return s })
		registerOptional(v, func(n int) any { return n })
		registerOptional(v, func(b bool) any { return b })
		registerOptional(v, decimalValue)
		registerOptional(v, func(r users.Role) any { return string(r) })
		registerOptional(v, func(t users.AddressType) any { return string(t) })
		registerOptional(v, func(s market.ListingStatus) any { return string(s) })
	})
}

func registerOptional[T any](v *validator.Validate, conv func(T) any) {
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		o, ok := field.Interface().(types.Optional[T])
		if !ok || !o.Set {
			return nil
		}
		return conv(o.Value)
	}, types.Optional[T]{})
}

func decimalValue(d decimal.Decimal) any {
	f, _ := d.Float64()
	return f
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
