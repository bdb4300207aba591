package cli

import "testing"

func TestRunConvert(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		unit    string
		scale   string
		wantErr bool
	}{
		{"feet and inches to cm", "3 ft 6 in", "cm", "", false},
		{"meters to feet", "4.56 m", "ft", "", false},
		{"scaled to printed size", "4 m", "mm", "HO", false},
		{"custom ratio scale", "4 m", "mm", "1:87", false},
		{"unknown unit", "3 m", "bogons", "", true},
		{"unparseable spec", "lots of wood", "m", "", true},
		{"unknown scale", "3 m", "cm", "gigantic", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runConvert(tt.spec, tt.unit, tt.scale)
			if (err != nil) != tt.wantErr {
				t.Errorf("runConvert() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
