package thermocycler

import "testing"

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.BaudRate != 115200 {
		t.Errorf("BaudRate = %d, want 115200", config.BaudRate)
	}
	if config.ReadTimeoutTenths != 0 {
		t.Errorf("ReadTimeoutTenths = %d, want 0 (blocking)", config.ReadTimeoutTenths)
	}
	if config.WriteMode != WriteModeBuffered {
		t.Errorf("WriteMode = %d, want WriteModeBuffered", config.WriteMode)
	}
}

func TestWithBaudRate(t *testing.T) {
	tests := []struct {
		name    string
		rate    int
		wantErr bool
	}{
		{"115200 (device default)", 115200, false},
		{"9600 (valid)", 9600, false},
		{"921600 (valid)", 921600, false},
		{"12345 (invalid)", 12345, true},
		{"0 (invalid)", 0, true},
		{"-9600 (invalid)", -9600, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			opt := WithBaudRate(tt.rate)
			err := opt(&config)
			if (err != nil) != tt.wantErr {
				t.Errorf("WithBaudRate(%d) error = %v, wantErr %v", tt.rate, err, tt.wantErr)
			}
			if err == nil && config.BaudRate != tt.rate {
				t.Errorf("BaudRate = %d, want %d", config.BaudRate, tt.rate)
			}
		})
	}
}

func TestWithReadTimeout(t *testing.T) {
	tests := []struct {
		name    string
		tenths  int
		wantErr bool
	}{
		{"0 (blocking)", 0, false},
		{"25 (2.5s)", 25, false},
		{"255 (max)", 255, false},
		{"256 (exceeds max)", 256, true},
		{"-1 (negative)", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			opt := WithReadTimeout(tt.tenths)
			err := opt(&config)
			if (err != nil) != tt.wantErr {
				t.Errorf("WithReadTimeout(%d) error = %v, wantErr %v", tt.tenths, err, tt.wantErr)
			}
			if err == nil && config.ReadTimeoutTenths != tt.tenths {
				t.Errorf("ReadTimeoutTenths = %d, want %d", config.ReadTimeoutTenths, tt.tenths)
			}
		})
	}
}

func TestWithSyncWrite(t *testing.T) {
	config := DefaultConfig()
	if err := WithSyncWrite()(&config); err != nil {
		t.Fatalf("WithSyncWrite failed: %v", err)
	}
	if config.WriteMode != WriteModeSynced {
		t.Errorf("WriteMode = %d, want WriteModeSynced", config.WriteMode)
	}
}
