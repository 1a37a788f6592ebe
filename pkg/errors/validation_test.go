package errors

import (
	"strings"
	"testing"
)

func TestValidateOrder(t *testing.T) {
	tests := []struct {
		order   string
		wantErr bool
	}{
		{OrderHeap, false},
		{OrderLex, false},
		{"", true},
		{"lexical", true},
		{"HEAP", true},
	}

	for _, tt := range tests {
		err := ValidateOrder(tt.order)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateOrder(%q) error = %v, wantErr %v", tt.order, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidOrder) {
			t.Errorf("ValidateOrder(%q) code = %v, want %v", tt.order, GetCode(err), ErrCodeInvalidOrder)
		}
	}
}

func TestValidateElements(t *testing.T) {
	tests := []struct {
		name     string
		elements []string
		wantCode Code
	}{
		{
			name:     "valid",
			elements: []string{"a", "b", "c"},
		},
		{
			name:     "empty sequence is valid",
			elements: nil,
		},
		{
			name:     "max length accepted",
			elements: make([]string, MaxElements),
		},
		{
			name:     "too many elements",
			elements: make([]string, MaxElements+1),
			wantCode: ErrCodeSequenceTooLong,
		},
		{
			name:     "element too long",
			elements: []string{strings.Repeat("x", 257)},
			wantCode: ErrCodeInvalidElements,
		},
		{
			name:     "null byte",
			elements: []string{"a\x00b"},
			wantCode: ErrCodeInvalidElements,
		},
		{
			name:     "control character",
			elements: []string{"a\nb"},
			wantCode: ErrCodeInvalidElements,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateElements(tt.elements)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("ValidateElements() = %v, want nil", err)
				}
				return
			}
			if !Is(err, tt.wantCode) {
				t.Errorf("ValidateElements() code = %v, want %v", GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestValidateBatchSize(t *testing.T) {
	if err := ValidateBatchSize(1); err != nil {
		t.Errorf("ValidateBatchSize(1) = %v, want nil", err)
	}
	if err := ValidateBatchSize(10000); err != nil {
		t.Errorf("ValidateBatchSize(10000) = %v, want nil", err)
	}
	if err := ValidateBatchSize(0); err == nil {
		t.Error("ValidateBatchSize(0) should fail")
	}
	if err := ValidateBatchSize(10001); err == nil {
		t.Error("ValidateBatchSize(10001) should fail")
	}
}

func TestValidateCountInput(t *testing.T) {
	if err := ValidateCountInput(0); err != nil {
		t.Errorf("ValidateCountInput(0) = %v, want nil", err)
	}
	if err := ValidateCountInput(10000); err != nil {
		t.Errorf("ValidateCountInput(10000) = %v, want nil", err)
	}
	if err := ValidateCountInput(-1); err == nil {
		t.Error("ValidateCountInput(-1) should fail")
	}
	if err := ValidateCountInput(10001); err == nil {
		t.Error("ValidateCountInput(10001) should fail")
	}
}
