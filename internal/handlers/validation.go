package handlers

import (
	"errors"
	"sync"

	"github.com/SscSPs/erp_records_backend/internal/utils/binkey"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	validatorsOnce sync.Once
	validatorsErr  error
)

// RegisterValidators installs the custom binding tags on gin's validator.
// It is safe to call more than once.
func RegisterValidators() error {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			validatorsErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		validatorsErr = v.RegisterValidation("canonical_id", canonicalID)
	})
	return validatorsErr
}

// canonicalID accepts the 36-character hyphenated identifier form.
func canonicalID(fl validator.FieldLevel) bool {
	_, err := binkey.Parse(fl.Field().String())
	return err == nil
}

func mustRegisterValidators() {
	if err := RegisterValidators(); err != nil {
		panic(err)
	}
}
