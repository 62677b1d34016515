package validation

import (
	"errors"
	"sync/atomic"
	"time"

	"shareit/internal/pkg/clock"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const TagNotPast = "notpast"

var now atomic.Pointer[clock.Clock]

// Register installs the custom binding tags on gin's validator. notpast
// accepts a time strictly after clk.Now(). Calling it again swaps the clock.
func Register(clk clock.Clock) error {
	now.Store(&clk)

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return v.RegisterValidation(TagNotPast, notPast)
}

func notPast(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	clk := now.Load()
	if clk == nil {
		return false
	}
	return t.After((*clk).Now())
}
