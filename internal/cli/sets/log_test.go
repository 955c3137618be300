package sets

import "testing"

func TestFormValidators(t *testing.T) {
	tests := []struct {
		name     string
		validate func(string) error
		input    string
		wantErr  string
	}{
		{"weight accepts decimal", validateNumber(0, 0), "102.5", ""},
		{"weight rejects text", validateNumber(0, 0), "heavy", "enter a number"},
		{"weight rejects NaN", validateNumber(0, 0), "NaN", "enter a number"},
		{"weight rejects infinity", validateNumber(0, 0), "Inf", "enter a number"},
		{"weight rejects negative", validateNumber(0, 0), "-5", "must be at least 0"},
		{"reps accepts zero", validateInt(0, 0), "0", ""},
		{"reps rejects negative", validateInt(0, 0), "-1", "must be at least 0"},
		{"reps rejects decimal", validateInt(0, 0), "2.5", "enter a whole number"},
		{"effort within band", validateInt(0, 10), "7", ""},
		{"effort above band", validateInt(0, 10), "11", "must be between 0 and 10"},
		{"effort below band", validateInt(0, 10), "-1", "must be between 0 and 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validate(tt.input)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("expected %q, got %v", tt.wantErr, err)
			}
		})
	}
}
