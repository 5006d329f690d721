package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var hasLetter = regexp.MustCompile(`[A-Za-z]`)
var hasDigit = regexp.MustCompile(`\d`)

// IsPassword 是一个自定义的校验函数：至少 6 位且同时包含字母和数字
func IsPassword(fl validator.FieldLevel) bool {
	pwd := fl.Field().String()
	if len(pwd) < 6 {
		return false
	}
	return hasLetter.MatchString(pwd) && hasDigit.MatchString(pwd)
}
