package punch

import "testing"

func TestTerminalPunchRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     TerminalPunchRequest
		wantErr bool
	}{
		{"valid clock in", TerminalPunchRequest{BiometricID: 42, Kind: "clock_in"}, false},
		{"valid break end", TerminalPunchRequest{BiometricID: 1, Kind: "break_end"}, false},
		{"missing biometric id", TerminalPunchRequest{Kind: "clock_in"}, true},
		{"negative biometric id", TerminalPunchRequest{BiometricID: -5, Kind: "clock_in"}, true},
		{"unknown kind", TerminalPunchRequest{BiometricID: 42, Kind: "lunch"}, true},
		{"empty kind", TerminalPunchRequest{BiometricID: 42}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAdjustPunchRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     AdjustPunchRequest
		wantErr bool
	}{
		{
			"valid adjustment",
			AdjustPunchRequest{
				EmployeeCode:  "EMP001",
				Timestamp:     "2024-01-15T08:30:00-03:00",
				Kind:          "clock_in",
				Justification: "Forgot badge at home",
			},
			false,
		},
		{
			"missing justification",
			AdjustPunchRequest{
				EmployeeCode: "EMP001",
				Timestamp:    "2024-01-15T08:30:00-03:00",
				Kind:         "clock_in",
			},
			true,
		},
		{
			"missing employee code",
			AdjustPunchRequest{
				Timestamp:     "2024-01-15T08:30:00-03:00",
				Kind:          "clock_in",
				Justification: "Forgot badge",
			},
			true,
		},
		{
			"date only timestamp",
			AdjustPunchRequest{
				EmployeeCode:  "EMP001",
				Timestamp:     "2024-01-15",
				Kind:          "clock_in",
				Justification: "Forgot badge",
			},
			true,
		},
		{
			"unknown kind",
			AdjustPunchRequest{
				EmployeeCode:  "EMP001",
				Timestamp:     "2024-01-15T08:30:00-03:00",
				Kind:          "overtime",
				Justification: "Forgot badge",
			},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPunchFilterValidateDefaults(t *testing.T) {
	filter := PunchFilter{
		EmployeeCode: "EMP001",
		StartDate:    "2024-01-01",
		EndDate:      "2024-01-31",
	}

	if err := filter.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
	if filter.Page != 1 {
		t.Errorf("Page = %d, want 1", filter.Page)
	}
	if filter.Limit != 50 {
		t.Errorf("Limit = %d, want 50", filter.Limit)
	}
}

func TestPunchFilterValidateRejectsReversedRange(t *testing.T) {
	filter := PunchFilter{
		EmployeeCode: "EMP001",
		StartDate:    "2024-01-31",
		EndDate:      "2024-01-01",
	}

	if err := filter.Validate(); err == nil {
		t.Error("Validate() expected error for reversed date range")
	}
}
