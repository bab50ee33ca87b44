package thermocycler

import (
	"bufio"
	"fmt"
	"io"
)

// Client implements the device's one-shot command/response protocol
// over an open line-oriented channel. Each operation writes exactly one
// newline-terminated ASCII command and blocks reading exactly one
// response line back; there is no pipelining, buffering beyond one
// line, or retrying.
//
// Client is not safe for concurrent use.
type Client struct {
	rw io.ReadWriter
	r  *bufio.Reader
}

// NewClient wraps an open channel to the device. The channel is
// typically a Port from Open, but any duplex byte stream works, which
// keeps the protocol logic independent of host serial plumbing.
func NewClient(rw io.ReadWriter) *Client {
	return &Client{
		rw: rw,
		r:  bufio.NewReader(rw),
	}
}

// PlateReadings carries one decoded M105.D telemetry snapshot.
// Right, Left and Center are front/back pair averages.
type PlateReadings struct {
	Heatsink float64
	Right    float64
	Left     float64
	Center   float64
}

// exchange performs one write/read cycle and validates the response
// line against the expected success prefix. The returned line still
// carries its trailing newline for field extraction.
func (c *Client) exchange(cmd, prefix string) (string, error) {
	if _, err := io.WriteString(c.rw, cmd); err != nil {
		return "", fmt.Errorf("write failed: %w", err)
	}
	line, err := c.r.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read failed: %w", err)
	}
	if _, err := classifyResponse(line, prefix); err != nil {
		return "", err
	}
	return line, nil
}

// LidTemperature queries the lid heater and returns the current
// temperature in degrees C. The target field is decoded but not
// returned.
func (c *Client) LidTemperature() (float64, error) {
	line, err := c.exchange("M141\n", "M141")
	if err != nil {
		return 0, err
	}
	fields, err := matchFields(lidTempRe, line)
	if err != nil {
		return 0, err
	}
	return fields["temp"], nil
}

// PlateTemperatures queries the per-location thermistors and returns
// the heatsink temperature plus averaged right, left and center plate
// temperatures in degrees C.
func (c *Client) PlateTemperatures() (PlateReadings, error) {
	line, err := c.exchange("M105.D\n", "M105.D")
	if err != nil {
		return PlateReadings{}, err
	}
	fields, err := matchFields(plateDebugRe, line)
	if err != nil {
		return PlateReadings{}, err
	}
	return PlateReadings{
		Heatsink: fields["HST"],
		Right:    (fields["FRT"] + fields["BRT"]) / 2.0,
		Left:     (fields["FLT"] + fields["BLT"]) / 2.0,
		Center:   (fields["FCT"] + fields["BCT"]) / 2.0,
	}, nil
}

// PlateTemperature returns just the base temperature of the plate in
// degrees C.
func (c *Client) PlateTemperature() (float64, error) {
	line, err := c.exchange("M105\n", "M105")
	if err != nil {
		return 0, err
	}
	fields, err := matchFields(plateTempRe, line)
	if err != nil {
		return 0, err
	}
	return fields["temp"], nil
}

// SetPeltierDebug drives the selected peltier bank directly at the
// given normalized power. Bypasses thermal control entirely; be
// careful.
func (c *Client) SetPeltierDebug(power float64, direction PeltierDirection, selection PeltierSelection) error {
	if err := validatePower(power); err != nil {
		return err
	}
	d, err := direction.code()
	if err != nil {
		return err
	}
	s, err := selection.code()
	if err != nil {
		return err
	}
	cmd := fmt.Sprintf("M104.D %s P%s %s\n", s, formatFloat(power), d)
	_, err = c.exchange(cmd, "M104.D OK")
	return err
}

// SetFansManual sets the heatsink fan duty cycle. Loud.
func (c *Client) SetFansManual(power float64) error {
	if err := validatePower(power); err != nil {
		return err
	}
	cmd := fmt.Sprintf("M106 S%s\n", formatFloat(power))
	_, err := c.exchange(cmd, "M106 OK")
	return err
}

// SetFansAutomatic returns fan control to the firmware.
func (c *Client) SetFansAutomatic() error {
	_, err := c.exchange("M107\n", "M107 OK")
	return err
}

// SetHeaterDebug drives the lid heater directly at the given
// normalized power.
func (c *Client) SetHeaterDebug(power float64) error {
	if err := validatePower(power); err != nil {
		return err
	}
	cmd := fmt.Sprintf("M140.D S%s\n", formatFloat(power))
	_, err := c.exchange(cmd, "M140.D OK")
	return err
}

// SetLidTemperature sets the lid heater target in degrees C.
func (c *Client) SetLidTemperature(temperature float64) error {
	cmd := fmt.Sprintf("M140 S%s\n", formatFloat(temperature))
	_, err := c.exchange(cmd, "M140 OK")
	return err
}

// DeactivateLid turns the lid heater off.
func (c *Client) DeactivateLid() error {
	_, err := c.exchange("M108\n", "M108 OK")
	return err
}

// SetHeaterPID sets the lid heater PID constants.
func (c *Client) SetHeaterPID(p, i, d float64) error {
	cmd := fmt.Sprintf("M301 SH P%s I%s D%s\n", formatFloat(p), formatFloat(i), formatFloat(d))
	_, err := c.exchange(cmd, "M301 OK")
	return err
}

// SetPlateTemperature sets the plate target in degrees C.
func (c *Client) SetPlateTemperature(temperature float64) error {
	cmd := fmt.Sprintf("M104 S%s\n", formatFloat(temperature))
	_, err := c.exchange(cmd, "M104 OK")
	return err
}

// DeactivatePlate turns the plate peltiers off.
func (c *Client) DeactivatePlate() error {
	_, err := c.exchange("M14\n", "M14 OK")
	return err
}

// SetPeltierPID sets the plate peltier PID constants.
func (c *Client) SetPeltierPID(p, i, d float64) error {
	cmd := fmt.Sprintf("M301 SP P%s I%s D%s\n", formatFloat(p), formatFloat(i), formatFloat(d))
	_, err := c.exchange(cmd, "M301 OK")
	return err
}

// MoveLidAngle moves the lid hinge motor by the given angle in
// degrees.
func (c *Client) MoveLidAngle(angle float64) error {
	cmd := fmt.Sprintf("M240.D %s\n", formatFloat(angle))
	_, err := c.exchange(cmd, "M240.D OK")
	return err
}

// SetSolenoid engages or disengages the lid solenoid.
func (c *Client) SetSolenoid(engaged bool) error {
	value := 0
	if engaged {
		value = 1
	}
	cmd := fmt.Sprintf("G28.D %d\n", value)
	_, err := c.exchange(cmd, "G28.D OK")
	return err
}

// MoveSealSteps moves the seal motor by a signed step count.
func (c *Client) MoveSealSteps(steps int) error {
	cmd := fmt.Sprintf("M241.D %d\n", steps)
	_, err := c.exchange(cmd, "M241.D OK")
	return err
}

// SetSealParam sets one seal stepper driver parameter.
func (c *Client) SetSealParam(param SealParam, value int) error {
	code, err := param.code()
	if err != nil {
		return err
	}
	cmd := fmt.Sprintf("M243.D %s %d\n", code, value)
	_, err = c.exchange(cmd, "M243.D OK")
	return err
}
