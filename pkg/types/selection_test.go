package types

import (
	"errors"
	"testing"
)

func TestSelectionValidate(t *testing.T) {
	tests := []struct {
		name    string
		sel     Selection
		wantErr error
	}{
		{
			name:    "template source is valid",
			sel:     TemplateSelection("0193e1b2-0000-7000-8000-000000000001", "12mm"),
			wantErr: nil,
		},
		{
			name:    "custom source is valid",
			sel:     CustomSelection("color", ""),
			wantErr: nil,
		},
		{
			name:    "empty value is valid",
			sel:     Selection{FieldName: "notes"},
			wantErr: nil,
		},
		{
			name:    "neither source returns ErrInvalidSelection",
			sel:     Selection{Value: "orphan value"},
			wantErr: ErrInvalidSelection,
		},
		{
			name:    "both sources returns ErrInvalidSelection",
			sel:     Selection{TemplateID: "some-id", FieldName: "thickness"},
			wantErr: ErrInvalidSelection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sel.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestMeasurementCustom(t *testing.T) {
	m := &Measurement{FieldName: "color"}
	if !m.Custom() {
		t.Fatal("measurement without a template should be custom")
	}
	m.TemplateID = "0193e1b2-0000-7000-8000-000000000001"
	if m.Custom() {
		t.Fatal("measurement with a template should not be custom")
	}
}

func TestAdminClaimValid(t *testing.T) {
	if (AdminClaim{}).Valid() {
		t.Fatal("zero claim should not be valid")
	}
	if !(AdminClaim{Subject: "admin"}).Valid() {
		t.Fatal("claim with a subject should be valid")
	}
}
