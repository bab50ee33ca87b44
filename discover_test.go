package thermocycler

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestListPorts(t *testing.T) {
	ports, err := ListPorts()
	if err != nil {
		t.Fatalf("ListPorts failed: %v", err)
	}

	for _, port := range ports {
		if !strings.HasPrefix(port, "/dev/") {
			t.Errorf("Port path doesn't start with /dev/: %s", port)
		}
		if !isCharacterDevice(port) {
			t.Errorf("Port is not a character device: %s", port)
		}
	}

	for i := 1; i < len(ports); i++ {
		if ports[i-1] > ports[i] {
			t.Errorf("Ports are not sorted: %s > %s", ports[i-1], ports[i])
		}
	}
}

func TestIsCharacterDevice(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"/dev/null", true},
		{"/dev/zero", true},
		{"/tmp", false},
		{"/nonexistent", false},
	}

	for _, test := range tests {
		result := isCharacterDevice(test.path)
		if result != test.expected {
			t.Errorf("isCharacterDevice(%s) = %v, expected %v", test.path, result, test.expected)
		}
	}
}

func TestPortFiltering(t *testing.T) {
	tests := []struct {
		name        string
		shouldMatch bool
	}{
		{"ttyACM0", true},
		{"ttyACM12", true},
		{"ttyUSB0", true},
		{"ttyUSB1", true},
		{"ttyS0", false},   // On-board UART, never the thermocycler
		{"tty1", false},    // Virtual terminal
		{"console", false}, // Console
		{"ptmx", false},    // Pseudo-terminal
		{"ptyp0", false},   // Pseudo-terminal
		{"random", false},  // Not a serial device
	}

	for _, tt := range tests {
		matched := matchesPortPattern(tt.name) && !matchesExcludePattern(tt.name)
		if matched != tt.shouldMatch {
			t.Errorf("Device %s: expected match=%v, got match=%v", tt.name, tt.shouldMatch, matched)
		}
	}
}

func TestGetPortDescription(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"ttyACM0", "USB CDC/ACM Device"},
		{"ttyUSB0", "USB Serial Port"},
		{"unknown", "Serial Port"},
	}

	for _, test := range tests {
		result := getPortDescription(test.name)
		if result != test.expected {
			t.Errorf("getPortDescription(%s) = %s, expected %s", test.name, result, test.expected)
		}
	}
}

func TestGetPortInfo(t *testing.T) {
	// /dev/null always exists and is a character device
	info, err := GetPortInfo("/dev/null")
	if err != nil {
		t.Fatalf("GetPortInfo failed for /dev/null: %v", err)
	}

	if info.Name != "null" {
		t.Errorf("Expected name 'null', got '%s'", info.Name)
	}
	if info.Path != "/dev/null" {
		t.Errorf("Expected path '/dev/null', got '%s'", info.Path)
	}
	if info.Description == "" {
		t.Error("Description should not be empty")
	}

	_, err = GetPortInfo("/dev/nonexistent")
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("Expected ErrDeviceNotFound, got %v", err)
	}
}

func TestMatchesFilter(t *testing.T) {
	tests := []struct {
		name   string
		info   PortInfo
		filter string
		want   bool
	}{
		{
			"product match",
			PortInfo{Description: "Opentrons Thermocycler"},
			"thermocycler",
			true,
		},
		{
			"case-insensitive",
			PortInfo{Description: "THERMOCYCLER GEN2"},
			"Thermocycler",
			true,
		},
		{
			"serial number match",
			PortInfo{Description: "USB CDC/ACM Device", SerialNumber: "TC2-20240117-A1"},
			"tc2-2024",
			true,
		},
		{
			"no match",
			PortInfo{Description: "USB Serial Port", SerialNumber: "FT123456"},
			"thermocycler",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchesFilter(&tt.info, tt.filter); got != tt.want {
				t.Errorf("matchesFilter(%+v, %q) = %v, want %v", tt.info, tt.filter, got, tt.want)
			}
		})
	}
}

// TestFindNoDevice expects discovery to fail with ErrDiscovery when no
// connected port matches an implausible filter.
func TestFindNoDevice(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping discovery test in short mode")
	}

	_, err := Find("no-such-bench-device-xyzzy")
	if err == nil {
		t.Skip("a device matched the sentinel filter; bench hardware attached?")
	}
	if !errors.Is(err, ErrDiscovery) {
		t.Errorf("Find error = %v, want ErrDiscovery", err)
	}
}

// TestListPortsIntegration logs what is attached; requires actual system.
func TestListPortsIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ports, err := ListPorts()
	if err != nil {
		t.Fatalf("ListPorts failed: %v", err)
	}

	t.Logf("Found %d serial ports:", len(ports))
	for i, port := range ports {
		info, err := GetPortInfo(port)
		if err != nil {
			t.Logf("  %d. %s (error getting info: %v)", i+1, port, err)
		} else {
			t.Logf("  %d. %s (%s)", i+1, port, info.Description)
		}
	}

	for _, port := range ports {
		stat, err := os.Stat(port)
		if err != nil {
			t.Errorf("Cannot stat port %s: %v", port, err)
			continue
		}
		if stat.Mode()&os.ModeCharDevice == 0 {
			t.Errorf("Port %s is not a character device", port)
		}
	}
}
