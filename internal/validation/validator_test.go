// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package validation

import (
	"strings"
	"testing"
)

type subscriptionRequest struct {
	Callback string `validate:"required,url"`
	Query    string `validate:"omitempty,max=512"`
}

func TestValidateStructPasses(t *testing.T) {
	req := subscriptionRequest{Callback: "https://listener.example.com/events"}
	if err := ValidateStruct(&req); err != nil {
		t.Errorf("expected valid struct, got %v", err)
	}
}

func TestValidateStructRequired(t *testing.T) {
	err := ValidateStruct(&subscriptionRequest{})
	if err == nil {
		t.Fatal("expected validation error for missing callback")
	}

	errs := err.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if errs[0].Field != "Callback" || errs[0].Tag != "required" {
		t.Errorf("unexpected field error %+v", errs[0])
	}
	if !strings.Contains(err.Error(), "Callback is required") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestValidateStructURL(t *testing.T) {
	err := ValidateStruct(&subscriptionRequest{Callback: "not a url"})
	if err == nil {
		t.Fatal("expected validation error for malformed callback")
	}
	if !strings.Contains(err.Error(), "must be a valid URL") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestValidateStructMultipleErrors(t *testing.T) {
	err := ValidateStruct(&subscriptionRequest{Callback: "nope", Query: strings.Repeat("q", 600)})
	if err == nil {
		t.Fatal("expected validation errors")
	}
	if len(err.Errors()) != 2 {
		t.Errorf("expected 2 errors, got %d", len(err.Errors()))
	}
}
