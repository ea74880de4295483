package bind

import (
	"reflect"

	"storefront/internal/core/flexdate"
	"storefront/internal/core/password"
	"storefront/internal/core/price"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// formatFieldTypes maps the decode error of a typed field to the field type raising it
var formatFieldTypes = map[reflect.Type]reflect.Type{
	reflect.TypeFor[*price.Error]():    reflect.TypeFor[price.Amount](),
	reflect.TypeFor[*flexdate.Error](): reflect.TypeFor[flexdate.Date](),
}

// registerStorefront teaches the validator the domain types and tags:
//
//	price.Amount validates as its decimal text, nil when unset (so required works)
//	flexdate.Date validates as time.Time, nil when zero
//	money            positive with at most two decimal places
//	strong_password  password.Check passes
//	currency_code    ISO 4217 code known to x/text
func registerStorefront(v *validator.Validate, trans ut.Translator) {
	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		a, ok := f.Interface().(price.Amount)
		if !ok || !a.IsSet() {
			return nil
		}
		return a.Decimal.String()
	}, price.Amount{})

	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		d, ok := f.Interface().(flexdate.Date)
		if !ok || d.IsZero() {
			return nil
		}
		return d.Time
	}, flexdate.Date{})

	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.IsPositive() && d.Exponent() >= -2
	})
	translate(v, trans, "money", "{0} must be a positive amount with at most 2 decimal places")

	_ = v.RegisterValidation("strong_password", func(fl validator.FieldLevel) bool {
		return password.Strong(fl.Field().String())
	})
	_ = v.RegisterTranslation("strong_password", trans,
		func(t ut.Translator) error { return t.Add("strong_password", "{0} must contain {1}", true) },
		func(t ut.Translator, fe validator.FieldError) string {
			pw, _ := fe.Value().(string)
			msg, _ := t.T("strong_password", fe.Field(), password.Describe(password.Check(pw)))
			return msg
		},
	)

	_ = v.RegisterValidation("currency_code", func(fl validator.FieldLevel) bool {
		_, err := currency.ParseISO(fl.Field().String())
		return err == nil
	})
	translate(v, trans, "currency_code", "{0} must be an ISO 4217 currency code")
}
