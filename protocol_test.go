package thermocycler

import (
	"errors"
	"testing"
)

func TestClassifyResponse(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		prefix  string
		class   responseClass
		wantErr error
	}{
		{"bare ack", "M107 OK\n", "M107 OK", responseAck, nil},
		{"data line", "M141 T:95.0 C:36.2 OK\n", "M141", responseData, nil},
		{"device error", "ERR bad state\n", "M141", responseErr, ErrDevice},
		{"device error beats prefix check", "ERR M141 busy\n", "M141", responseErr, ErrDevice},
		{"wrong prefix", "M105 T:1.0 C:2.0 OK\n", "M141", responseErr, ErrProtocol},
		{"missing OK suffix on ack", "M106 NOTOK\n", "M106 OK", responseErr, ErrProtocol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class, err := classifyResponse(tt.line, tt.prefix)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("classifyResponse(%q, %q) error = %v, want %v", tt.line, tt.prefix, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("classifyResponse(%q, %q) unexpected error: %v", tt.line, tt.prefix, err)
			}
			if class != tt.class {
				t.Errorf("classifyResponse(%q, %q) class = %d, want %d", tt.line, tt.prefix, class, tt.class)
			}
		})
	}
}

func TestMatchFields(t *testing.T) {
	fields, err := matchFields(lidTempRe, "M141 T:95.0 C:36.2 OK\n")
	if err != nil {
		t.Fatalf("matchFields failed: %v", err)
	}
	if fields["target"] != 95.0 {
		t.Errorf("target = %v, want 95.0", fields["target"])
	}
	if fields["temp"] != 36.2 {
		t.Errorf("temp = %v, want 36.2", fields["temp"])
	}
}

func TestMatchFieldsRejectsDeviations(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"missing OK", "M141 T:95.0 C:36.2\n"},
		{"missing newline", "M141 T:95.0 C:36.2 OK"},
		{"swapped fields", "M141 C:36.2 T:95.0 OK\n"},
		{"missing field", "M141 T:95.0 OK\n"},
		{"extra spacing", "M141 T:95.0  C:36.2 OK\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := matchFields(lidTempRe, tt.line); !errors.Is(err, ErrParse) {
				t.Errorf("matchFields(%q) error = %v, want ErrParse", tt.line, err)
			}
		})
	}
}

func TestValidatePower(t *testing.T) {
	tests := []struct {
		power   float64
		wantErr bool
	}{
		{0.0, false},
		{0.5, false},
		{1.0, false},
		{-0.0001, true},
		{1.0001, true},
		{-1.0, true},
		{2.0, true},
	}

	for _, tt := range tests {
		err := validatePower(tt.power)
		if (err != nil) != tt.wantErr {
			t.Errorf("validatePower(%v) error = %v, wantErr %v", tt.power, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrValidation) {
			t.Errorf("validatePower(%v) error = %v, want ErrValidation", tt.power, err)
		}
	}
}

func TestPeltierDirectionCodes(t *testing.T) {
	tests := []struct {
		dir     PeltierDirection
		code    string
		wantErr bool
	}{
		{DirectionHeat, "H", false},
		{DirectionCool, "C", false},
		{PeltierDirection(2), "", true},
		{PeltierDirection(-1), "", true},
	}

	for _, tt := range tests {
		code, err := tt.dir.code()
		if (err != nil) != tt.wantErr {
			t.Errorf("PeltierDirection(%d).code() error = %v, wantErr %v", int(tt.dir), err, tt.wantErr)
		}
		if code != tt.code {
			t.Errorf("PeltierDirection(%d).code() = %q, want %q", int(tt.dir), code, tt.code)
		}
	}
}

func TestPeltierSelectionCodes(t *testing.T) {
	tests := []struct {
		sel  PeltierSelection
		code string
	}{
		{PeltierLeft, "L"},
		{PeltierRight, "R"},
		{PeltierCenter, "C"},
		{PeltierAll, "A"},
	}

	for _, tt := range tests {
		code, err := tt.sel.code()
		if err != nil {
			t.Errorf("PeltierSelection(%s).code() failed: %v", tt.sel, err)
		}
		if code != tt.code {
			t.Errorf("PeltierSelection(%s).code() = %q, want %q", tt.sel, code, tt.code)
		}
	}

	if _, err := PeltierSelection(9).code(); !errors.Is(err, ErrValidation) {
		t.Errorf("PeltierSelection(9).code() error = %v, want ErrValidation", err)
	}
}

func TestSealParamCodes(t *testing.T) {
	tests := []struct {
		param SealParam
		code  string
	}{
		{SealVelocity, "V"},
		{SealAcceleration, "A"},
		{SealStallguardThreshold, "T"},
		{SealStallguardMinVelocity, "M"},
		{SealRunCurrent, "R"},
		{SealHoldCurrent, "H"},
	}

	for _, tt := range tests {
		t.Run(tt.param.String(), func(t *testing.T) {
			code, err := tt.param.code()
			if err != nil {
				t.Fatalf("code() failed: %v", err)
			}
			if code != tt.code {
				t.Errorf("code() = %q, want %q", code, tt.code)
			}
		})
	}

	if _, err := SealParam(42).code(); !errors.Is(err, ErrValidation) {
		t.Errorf("SealParam(42).code() error = %v, want ErrValidation", err)
	}
}

func TestParseSealParam(t *testing.T) {
	tests := []struct {
		name    string
		want    SealParam
		wantErr bool
	}{
		{"velocity", SealVelocity, false},
		{"acceleration", SealAcceleration, false},
		{"stallguard-threshold", SealStallguardThreshold, false},
		{"stallguard-min-velocity", SealStallguardMinVelocity, false},
		{"run-current", SealRunCurrent, false},
		{"hold-current", SealHoldCurrent, false},
		{"RUN-CURRENT", SealRunCurrent, false},
		{"bogus", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseSealParam(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSealParam(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseSealParam(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.5, "0.5"},
		{1, "1"},
		{95.0, "95"},
		{36.2, "36.2"},
		{-10.25, "-10.25"},
	}

	for _, tt := range tests {
		if got := formatFloat(tt.in); got != tt.want {
			t.Errorf("formatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
