package thermocycler

import "errors"

// Predefined error types for robust error handling
var (
	// Protocol errors
	ErrValidation = errors.New("parameter outside legal range")
	ErrDevice     = errors.New("device reported error")
	ErrProtocol   = errors.New("unexpected response")
	ErrParse      = errors.New("malformed response")
	ErrDiscovery  = errors.New("no matching device found")

	// Serial port errors
	ErrDeviceNotFound  = errors.New("serial device not found")
	ErrInvalidBaudRate = errors.New("invalid baud rate")
	ErrInvalidConfig   = errors.New("invalid serial configuration")
	ErrPortClosed      = errors.New("serial port is closed")

	// USB-related errors
	ErrUSBInfoNotAvailable  = errors.New("USB device information not available")
	ErrUSBResetNotAvailable = errors.New("usbreset utility not available")
)
