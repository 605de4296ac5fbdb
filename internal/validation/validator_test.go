// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

package validation

import (
	"strings"
	"testing"
)

type reportParams struct {
	Country   string `validate:"required,len=3,alpha,uppercase"`
	StartYear int    `validate:"min=1946,max=2024"`
	EndYear   int    `validate:"min=1946,max=2024"`
}

func TestValidateStructPasses(t *testing.T) {
	req := reportParams{Country: "FRA", StartYear: 2010, EndYear: 2015}
	if verr := ValidateStruct(&req); verr != nil {
		t.Errorf("expected valid struct, got: %v", verr)
	}
}

func TestValidateStructFailures(t *testing.T) {
	tests := []struct {
		name      string
		req       reportParams
		wantField string
	}{
		{
			name:      "missing country",
			req:       reportParams{StartYear: 2010, EndYear: 2015},
			wantField: "Country",
		},
		{
			name:      "lowercase country",
			req:       reportParams{Country: "fra", StartYear: 2010, EndYear: 2015},
			wantField: "Country",
		},
		{
			name:      "country too long",
			req:       reportParams{Country: "FRAN", StartYear: 2010, EndYear: 2015},
			wantField: "Country",
		},
		{
			name:      "year below minimum",
			req:       reportParams{Country: "FRA", StartYear: 1900, EndYear: 2015},
			wantField: "StartYear",
		},
		{
			name:      "year above maximum",
			req:       reportParams{Country: "FRA", StartYear: 2010, EndYear: 2030},
			wantField: "EndYear",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.req)
			if verr == nil {
				t.Fatal("expected validation error, got nil")
			}
			found := false
			for _, fe := range verr.Errors() {
				if fe.Field() == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected failure on field %s, got: %v", tt.wantField, verr)
			}
		})
	}
}

func TestToAPIErrorSingle(t *testing.T) {
	req := reportParams{Country: "FRA", StartYear: 1900, EndYear: 2015}
	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("expected validation error")
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR, got %s", apiErr.Code)
	}
	if !strings.Contains(apiErr.Message, "StartYear") {
		t.Errorf("expected field name in message, got %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "StartYear" {
		t.Errorf("expected field detail, got %v", apiErr.Details)
	}
}

func TestToAPIErrorMultiple(t *testing.T) {
	req := reportParams{Country: "fr", StartYear: 1900, EndYear: 2030}
	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if len(verr.Errors()) < 2 {
		t.Fatalf("expected multiple failures, got %d", len(verr.Errors()))
	}

	apiErr := verr.ToAPIError()
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Errorf("expected fields detail for multiple errors, got %v", apiErr.Details)
	}
}

func TestGetValidatorSingleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("expected the same validator instance")
	}
}
