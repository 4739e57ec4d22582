package model

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var configFlags = map[string]string{
	"ReadabilityDelay": "--delay",
	"CloudLimit":       "--cloud-limit",
	"CharLimit":        "--char-limit",
	"Workers":          "--workers",
	"Format":           "--format",
}

// Validate checks config ranges and reports the offending flag.
func (c Config) Validate() error {
	validate := validator.New()
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	flag := configFlags[fe.Field()]
	if flag == "" {
		flag = fe.Field()
	}
	switch fe.Tag() {
	case "gte":
		return fmt.Errorf("%s must be >= %s", flag, fe.Param())
	case "lte":
		return fmt.Errorf("%s must be <= %s", flag, fe.Param())
	case "oneof":
		return fmt.Errorf("%s must be one of: %s", flag, fe.Param())
	default:
		return fmt.Errorf("%s is invalid", flag)
	}
}
