package constants

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Nigerian MSISDN: +234 or leading 0, then a 7/8/9 prefix and 9 more digits.
var ngPhonePattern = regexp.MustCompile(`^(\+234|0)[789][01][0-9]{8}$`)

func registerDomainRules(v *validator.Validate) {
	must(v.RegisterValidation("ng_phone", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		return ngPhonePattern.MatchString(s)
	}))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
