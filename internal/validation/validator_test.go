// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

package validation

import (
	"math"
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

type point struct {
	Lat float64 `validate:"finite"`
	Lng float64 `validate:"finite"`
}

type submission struct {
	TopicID int64  `validate:"gt=0"`
	Name    string `validate:"required"`
	Where   *point `validate:"required"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name       string
		input      submission
		wantFields []string
	}{
		{
			name:  "valid",
			input: submission{TopicID: 1, Name: "Cafe", Where: &point{Lat: 37.5, Lng: 127}},
		},
		{
			name:       "missing name",
			input:      submission{TopicID: 1, Where: &point{}},
			wantFields: []string{"Name"},
		},
		{
			name:       "zero topic and nil coordinate",
			input:      submission{Name: "Cafe"},
			wantFields: []string{"TopicID", "Where"},
		},
		{
			name:       "nan latitude",
			input:      submission{TopicID: 1, Name: "Cafe", Where: &point{Lat: math.NaN()}},
			wantFields: []string{"Lat"},
		},
		{
			name:       "infinite longitude",
			input:      submission{TopicID: 1, Name: "Cafe", Where: &point{Lng: math.Inf(1)}},
			wantFields: []string{"Lng"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.input)
			if len(tt.wantFields) == 0 {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatalf("ValidateStruct() = nil, want errors on %v", tt.wantFields)
			}
			got := make([]string, len(verr.Violations))
			for i, v := range verr.Violations {
				got[i] = v.Field
			}
			if strings.Join(got, ",") != strings.Join(tt.wantFields, ",") {
				t.Errorf("violations on %v, want %v", got, tt.wantFields)
			}
		})
	}
}

func TestValidateStruct_Messages(t *testing.T) {
	verr := ValidateStruct(&submission{Where: &point{Lat: math.NaN()}})
	if verr == nil {
		t.Fatal("expected validation error")
	}

	want := "TopicID must be greater than 0; Name is required; Lat must be a finite number"
	if verr.Error() != want {
		t.Errorf("Error() = %q, want %q", verr.Error(), want)
	}
	if v := verr.Violations[0]; v.Tag != "gt" || v.Param != "0" {
		t.Errorf("first violation = %+v, want gt=0", v)
	}
}

func TestValidateStruct_NotAStruct(t *testing.T) {
	verr := ValidateStruct(42)
	if verr == nil || len(verr.Violations) != 1 || verr.Violations[0].Field != "submission" {
		t.Errorf("ValidateStruct(42) = %+v, want one submission violation", verr)
	}
}
