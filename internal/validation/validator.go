// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Violation is one rule a submitted field broke.
type Violation struct {
	Field string // struct field name, e.g. "Lat"
	Tag   string // failed rule, e.g. "finite"
	Param string // rule argument, e.g. "0" for gt=0
}

func (v Violation) String() string {
	switch v.Tag {
	case "required":
		return v.Field + " is required"
	case "finite":
		return v.Field + " must be a finite number"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", v.Field, v.Param)
	default:
		return fmt.Sprintf("%s failed %s validation", v.Field, v.Tag)
	}
}

// SubmissionError lists every violation found in one submission, in struct
// field order.
type SubmissionError struct {
	Violations []Violation
}

func (e *SubmissionError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.String()
	}
	return strings.Join(msgs, "; ")
}

// GetValidator returns the shared validator with the finite tag registered.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("finite", isFinite) //nolint:errcheck // fails only on an empty tag or nil func
	})
	return validate
}

// isFinite rejects NaN and infinite floats; other kinds pass.
func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field()
	if k := f.Kind(); k != reflect.Float32 && k != reflect.Float64 {
		return true
	}
	return !math.IsNaN(f.Float()) && !math.IsInf(f.Float(), 0)
}

// ValidateStruct checks s against its validate tags. It returns nil when s is
// valid. Compare the result with nil before storing it in an error variable.
func ValidateStruct(s any) *SubmissionError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &SubmissionError{Violations: []Violation{{Field: "submission", Tag: err.Error()}}}
	}

	out := &SubmissionError{Violations: make([]Violation, len(fieldErrs))}
	for i, fe := range fieldErrs {
		out.Violations[i] = Violation{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()}
	}
	return out
}
