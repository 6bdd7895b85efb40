package handlers

import (
	"testing"

	"sas-quotation/models"
)

func TestResolveRecipients(t *testing.T) {
	const fallback = "noreply@synergy-as.com"

	tests := []struct {
		name    string
		product models.ProductType
		firstTo string
		toCount int
		ccCount int
	}{
		{"gear motor", models.ProductGearMotor, "Somyot@synergy-as.com", 1, 4},
		{"conveyor and automation", models.ProductConveyorAutomation, "matinee@synergy-as.com", 3, 4},
		{"structure", models.ProductStructure, "design_pp@hotmail.com", 6, 10},
		{"unknown category falls back", models.ProductType("Pump"), fallback, 1, 0},
		{"empty category falls back", models.ProductType(""), fallback, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			to, cc := ResolveRecipients(tt.product, fallback)
			if len(to) != tt.toCount {
				t.Errorf("len(to) = %d, expected %d", len(to), tt.toCount)
			}
			if len(cc) != tt.ccCount {
				t.Errorf("len(cc) = %d, expected %d", len(cc), tt.ccCount)
			}
			if len(to) > 0 && to[0] != tt.firstTo {
				t.Errorf("to[0] = %q, expected %q", to[0], tt.firstTo)
			}
		})
	}
}
