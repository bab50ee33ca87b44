package thermocycler

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// The thermocycler enumerates as a USB CDC/ACM device, but bench
// setups sometimes sit behind USB serial adapters, so both families
// are scanned.
var portPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^ttyACM\d+$`), // USB CDC/ACM devices
	regexp.MustCompile(`^ttyUSB\d+$`), // USB serial adapters
}

// Exclude patterns for virtual terminals and other non-serial devices
var excludePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^tty\d+$`),
	regexp.MustCompile(`^console$`),
	regexp.MustCompile(`^ptmx$`),
	regexp.MustCompile(`^pty.*$`),
}

// ListPorts returns the USB serial ports present on the system,
// sorted for consistent ordering.
func ListPorts() ([]string, error) {
	var ports []string

	devDir := "/dev"
	entries, err := os.ReadDir(devDir)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		name := entry.Name()

		if matchesExcludePattern(name) {
			continue
		}
		if !matchesPortPattern(name) {
			continue
		}

		fullPath := filepath.Join(devDir, name)
		if isCharacterDevice(fullPath) {
			ports = append(ports, fullPath)
		}
	}

	sort.Strings(ports)

	return ports, nil
}

func matchesPortPattern(name string) bool {
	for _, pattern := range portPatterns {
		if pattern.MatchString(name) {
			return true
		}
	}
	return false
}

func matchesExcludePattern(name string) bool {
	for _, pattern := range excludePatterns {
		if pattern.MatchString(name) {
			return true
		}
	}
	return false
}

// isCharacterDevice checks if the given path is a character device
func isCharacterDevice(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	mode := info.Mode()
	return mode&os.ModeCharDevice != 0
}

// PortInfo describes a serial port and, for USB devices, the metadata
// exposed through sysfs.
type PortInfo struct {
	Name         string
	Path         string
	Description  string
	VendorID     string
	ProductID    string
	SerialNumber string
	BusNumber    string
	DeviceNumber string
}

// GetPortInfo returns detailed information about a specific port
func GetPortInfo(portPath string) (*PortInfo, error) {
	if !isCharacterDevice(portPath) {
		return nil, ErrDeviceNotFound
	}

	name := filepath.Base(portPath)

	info := &PortInfo{
		Name:        name,
		Path:        portPath,
		Description: getPortDescription(name),
	}

	if strings.HasPrefix(name, "ttyUSB") || strings.HasPrefix(name, "ttyACM") {
		enrichUSBInfo(info)
	}

	return info, nil
}

// getPortDescription provides a human-readable fallback description;
// enrichUSBInfo replaces it with the USB product string when available.
func getPortDescription(name string) string {
	switch {
	case strings.HasPrefix(name, "ttyACM"):
		return "USB CDC/ACM Device"
	case strings.HasPrefix(name, "ttyUSB"):
		return "USB Serial Port"
	default:
		return "Serial Port"
	}
}

// enrichUSBInfo reads USB device attributes from sysfs. The tty's
// device link points at the USB interface; the attributes live on an
// ancestor, so walk upward until a directory carrying idVendor is
// found.
func enrichUSBInfo(info *PortInfo) {
	devLink := filepath.Join("/sys/class/tty", info.Name, "device")
	dir, err := filepath.EvalSymlinks(devLink)
	if err != nil {
		return
	}

	for depth := 0; depth < 4; depth++ {
		if _, err := os.Stat(filepath.Join(dir, "idVendor")); err == nil {
			info.VendorID = readSysfsAttr(dir, "idVendor")
			info.ProductID = readSysfsAttr(dir, "idProduct")
			info.SerialNumber = readSysfsAttr(dir, "serial")
			info.BusNumber = readSysfsAttr(dir, "busnum")
			info.DeviceNumber = readSysfsAttr(dir, "devnum")
			if product := readSysfsAttr(dir, "product"); product != "" {
				info.Description = product
			}
			return
		}
		dir = filepath.Dir(dir)
	}
}

func readSysfsAttr(dir, attr string) string {
	data, err := os.ReadFile(filepath.Join(dir, attr))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// DefaultFilter matches the product string the thermocycler firmware
// reports over USB.
const DefaultFilter = "thermocycler"

// Find returns the first serial port whose USB description matches the
// filter, case-insensitively. An empty filter uses DefaultFilter.
// Returns ErrDiscovery when no port matches.
//
// Find is a convenience for session startup; the Client itself never
// depends on it, so hosts with their own enumeration can inject any
// channel they like.
func Find(filter string) (string, error) {
	if filter == "" {
		filter = DefaultFilter
	}

	ports, err := ListPorts()
	if err != nil {
		return "", err
	}

	for _, portPath := range ports {
		info, err := GetPortInfo(portPath)
		if err != nil {
			continue
		}
		if matchesFilter(info, filter) {
			return portPath, nil
		}
	}

	return "", fmt.Errorf("%w: filter %q", ErrDiscovery, filter)
}

// matchesFilter checks the filter against the description and serial
// number, mirroring how operators identify the device on the bench.
func matchesFilter(info *PortInfo, filter string) bool {
	f := strings.ToLower(filter)
	if strings.Contains(strings.ToLower(info.Description), f) {
		return true
	}
	if info.SerialNumber != "" && strings.Contains(strings.ToLower(info.SerialNumber), f) {
		return true
	}
	return false
}
