package thermocycler

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// errMarker is the reserved leading token of a firmware failure line.
// Error classification always runs before any prefix or field check.
const errMarker = "ERR"

// PeltierDirection selects heating or cooling for raw peltier drive.
type PeltierDirection int

const (
	DirectionHeat PeltierDirection = iota
	DirectionCool
)

// code returns the one-character wire encoding of the direction.
func (d PeltierDirection) code() (string, error) {
	switch d {
	case DirectionHeat:
		return "H", nil
	case DirectionCool:
		return "C", nil
	default:
		return "", fmt.Errorf("%w: peltier direction %d", ErrValidation, int(d))
	}
}

func (d PeltierDirection) String() string {
	switch d {
	case DirectionHeat:
		return "heat"
	case DirectionCool:
		return "cool"
	default:
		return "unknown"
	}
}

// PeltierSelection selects which peltier bank a raw drive command targets.
type PeltierSelection int

const (
	PeltierLeft PeltierSelection = iota
	PeltierRight
	PeltierCenter
	PeltierAll
)

func (s PeltierSelection) code() (string, error) {
	switch s {
	case PeltierLeft:
		return "L", nil
	case PeltierRight:
		return "R", nil
	case PeltierCenter:
		return "C", nil
	case PeltierAll:
		return "A", nil
	default:
		return "", fmt.Errorf("%w: peltier selection %d", ErrValidation, int(s))
	}
}

func (s PeltierSelection) String() string {
	switch s {
	case PeltierLeft:
		return "left"
	case PeltierRight:
		return "right"
	case PeltierCenter:
		return "center"
	case PeltierAll:
		return "all"
	default:
		return "unknown"
	}
}

// SealParam identifies a tunable parameter of the seal stepper driver.
type SealParam int

const (
	SealVelocity SealParam = iota
	SealAcceleration
	SealStallguardThreshold
	SealStallguardMinVelocity
	SealRunCurrent
	SealHoldCurrent
)

func (p SealParam) code() (string, error) {
	switch p {
	case SealVelocity:
		return "V", nil
	case SealAcceleration:
		return "A", nil
	case SealStallguardThreshold:
		return "T", nil
	case SealStallguardMinVelocity:
		return "M", nil
	case SealRunCurrent:
		return "R", nil
	case SealHoldCurrent:
		return "H", nil
	default:
		return "", fmt.Errorf("%w: seal parameter %d", ErrValidation, int(p))
	}
}

func (p SealParam) String() string {
	switch p {
	case SealVelocity:
		return "velocity"
	case SealAcceleration:
		return "acceleration"
	case SealStallguardThreshold:
		return "stallguard-threshold"
	case SealStallguardMinVelocity:
		return "stallguard-min-velocity"
	case SealRunCurrent:
		return "run-current"
	case SealHoldCurrent:
		return "hold-current"
	default:
		return "unknown"
	}
}

// ParseSealParam maps a human-readable name to its SealParam value.
func ParseSealParam(name string) (SealParam, error) {
	switch strings.ToLower(name) {
	case "velocity":
		return SealVelocity, nil
	case "acceleration":
		return SealAcceleration, nil
	case "stallguard-threshold":
		return SealStallguardThreshold, nil
	case "stallguard-min-velocity":
		return SealStallguardMinVelocity, nil
	case "run-current":
		return SealRunCurrent, nil
	case "hold-current":
		return SealHoldCurrent, nil
	default:
		return 0, fmt.Errorf("%w: seal parameter %q", ErrValidation, name)
	}
}

// responseClass is the shape of one response line: a firmware failure,
// a bare acknowledgement, or an acknowledgement carrying KEY:value
// data fields.
type responseClass int

const (
	responseErr responseClass = iota
	responseAck
	responseData
)

// classifyResponse validates one raw response line against the
// expected success prefix and reports its shape. The error-marker
// check always runs first; the raw line is preserved in the returned
// error for diagnosis.
func classifyResponse(line, prefix string) (responseClass, error) {
	if strings.HasPrefix(line, errMarker) {
		return responseErr, fmt.Errorf("%w: %q", ErrDevice, strings.TrimRight(line, "\n"))
	}
	if !strings.HasPrefix(line, prefix) {
		return responseErr, fmt.Errorf("%w: %q (expected prefix %q)", ErrProtocol, strings.TrimRight(line, "\n"), prefix)
	}
	if strings.Contains(line, ":") {
		return responseData, nil
	}
	return responseAck, nil
}

// Anchored patterns for the query response grammars. Field order,
// spacing and the trailing OK token are all mandatory; any deviation
// is a parse failure, never a partial decode.
var (
	lidTempRe    = regexp.MustCompile(`^M141 T:(?P<target>.+) C:(?P<temp>.+) OK\n`)
	plateTempRe  = regexp.MustCompile(`^M105 T:(?P<target>.+) C:(?P<temp>.+) OK\n`)
	plateDebugRe = regexp.MustCompile(`^M105\.D HST:(?P<HST>.+) FRT:(?P<FRT>.+) FLT:(?P<FLT>.+) FCT:(?P<FCT>.+) BRT:(?P<BRT>.+) BLT:(?P<BLT>.+) BCT:(?P<BCT>.+) HSA.* OK\n`)
)

// matchFields applies an anchored query pattern and returns the named
// capture groups decoded as floats.
func matchFields(re *regexp.Regexp, line string) (map[string]float64, error) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrParse, strings.TrimRight(line, "\n"))
	}
	fields := make(map[string]float64)
	for i, name := range re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		v, err := strconv.ParseFloat(m[i], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: field %s in %q", ErrParse, name, strings.TrimRight(line, "\n"))
		}
		fields[name] = v
	}
	return fields, nil
}

// validatePower checks a normalized PWM duty cycle.
func validatePower(power float64) error {
	if power < 0.0 || power > 1.0 {
		return fmt.Errorf("%w: power %v not in [0.0, 1.0]", ErrValidation, power)
	}
	return nil
}

// formatFloat renders a float in its minimal decimal form, the way the
// firmware's number parser expects it.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
