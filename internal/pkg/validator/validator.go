// Package validator wraps go-playground/validator with the tags this service
// needs and a standardized error format.
//
// Structs are validated through `validate:"..."` tags. On top of the built-in
// rules the package registers:
//
//   - txid: a 64 character hexadecimal transaction identifier.
//   - maxbytes=N: a string whose UTF-8 encoding is at most N bytes. The
//     built-in max counts runes.
package validator

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error in the chain returned by Validate
// when at least one rule is violated.
var ErrValidationFailed = errors.New("struct validation failed")

// validator is the package-wide instance, built on import.
var validator *gvalidator.Validate

// errStringFormat describes a single field violation.
//
// Example: "'TxID': value 'zz' does not meet the requirements for the 'txid' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// txidHexLength is the length of a hex-encoded 32 byte transaction id.
const txidHexLength = 64

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	if err := validator.RegisterValidation("txid", isTxID); err != nil {
		panic(err)
	}

	if err := validator.RegisterValidation("maxbytes", hasMaxBytes); err != nil {
		panic(err)
	}
}

// hasMaxBytes reports whether the field's byte length is within the tag
// parameter.
func hasMaxBytes(fl gvalidator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		panic(fmt.Sprintf("maxbytes: bad parameter %q", fl.Param()))
	}

	return len(fl.Field().String()) <= limit
}

// isTxID reports whether the field is a hex-encoded transaction id.
func isTxID(fl gvalidator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != txidHexLength {
		return false
	}

	_, err := hex.DecodeString(s)
	return err == nil
}

// formatError turns validator.ValidationErrors into ErrValidationFailed joined
// with one message per failing field. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its validation tags.
//
//	if err := validator.Validate(req); errors.Is(err, validator.ErrValidationFailed) {
//	    // report the field errors to the user
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
