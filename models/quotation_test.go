package models

import (
	"testing"
	"time"

	"gorm.io/datatypes"
)

func TestJobCode(t *testing.T) {
	tests := []struct {
		product  ProductType
		expected string
	}{
		{ProductGearMotor, "GEA"},
		{ProductConveyorAutomation, "AUT"},
		{ProductStructure, "STC"},
		{ProductType("Something Else"), "XXX"},
	}

	for _, tt := range tests {
		if code := tt.product.JobCode(); code != tt.expected {
			t.Errorf("JobCode(%q) = %q, expected %q", tt.product, code, tt.expected)
		}
	}
}

func TestNewJobNumber(t *testing.T) {
	submitted := time.Date(2025, 8, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		product  ProductType
		queue    int64
		expected string
	}{
		{ProductGearMotor, 3, "SASGEA150825003"},
		{ProductStructure, 1, "SASSTC150825001"},
		{ProductConveyorAutomation, 120, "SASAUT150825120"},
	}

	for _, tt := range tests {
		if got := NewJobNumber(tt.product, submitted, tt.queue); got != tt.expected {
			t.Errorf("NewJobNumber(%q, %d) = %q, expected %q", tt.product, tt.queue, got, tt.expected)
		}
	}
}

func TestAttachmentURL(t *testing.T) {
	q := Quotation{
		Attachments: datatypes.JSONMap{
			RolePDF:        "https://storage.googleapis.com/bucket/pdf/SASGEA150825001.pdf",
			RoleMotorImage: 42, // wrong type, must not panic
		},
	}

	if url := q.AttachmentURL(RolePDF); url == "" {
		t.Error("expected pdf attachment URL, got empty string")
	}
	if url := q.AttachmentURL(RoleMotorImage); url != "" {
		t.Errorf("expected empty URL for non-string value, got %q", url)
	}
	if url := q.AttachmentURL(RoleExtraFile); url != "" {
		t.Errorf("expected empty URL for absent role, got %q", url)
	}

	var empty Quotation
	if url := empty.AttachmentURL(RolePDF); url != "" {
		t.Errorf("expected empty URL on nil attachments, got %q", url)
	}
}
