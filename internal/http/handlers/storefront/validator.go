package storefront

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const personNameMaxRunes = 100

var personNamePattern = regexp.MustCompile(`^[\p{L}\p{M}][\p{L}\p{M}' .\-]*$`)

// RegisterValidators 向 gin 校验引擎注册店面表单规则
func RegisterValidators() error {
	engine, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	return engine.RegisterValidation("personname", validatePersonName)
}

// validatePersonName 字母开头，只含字母、空格、撇号、点与连字符
func validatePersonName(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return false
	}
	if utf8.RuneCountInString(value) > personNameMaxRunes {
		return false
	}
	return personNamePattern.MatchString(value)
}
