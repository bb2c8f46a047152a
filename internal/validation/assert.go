package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertErrors checks that err carries a translated error for the field key.
func AssertErrors(t *testing.T, err error, key, detail string, v *Validator) {
	t.Helper()
	AssertValidationErrs(t, v.ParseValidationErrors(err), key, detail)
}

func AssertValidationErrs(t *testing.T, errs ValidationErrors, key string, detail string) {
	t.Helper()

	for _, ve := range errs {
		if ve.Field == key {
			assert.Equal(t, detail, ve.Detail)
			return
		}
	}
	assert.Failf(t, "missing validation error", "no error for field %s in %v", key, errs)
}
