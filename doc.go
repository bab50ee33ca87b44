// Package thermocycler provides a serial bench-test client for
// thermocycler firmware speaking its G-code style text protocol.
//
// The client drives the device's actuators (peltiers, lid heater, fans,
// hinge motor, seal motor, solenoid) and reads back temperature
// telemetry during bench testing. Every operation is one strictly
// synchronous exchange: a single ASCII command line is written to the
// port and a single response line is read back, validated and, for
// queries, decoded into numeric readings.
//
// # Basic Usage
//
// Open a port and issue commands:
//
//	port, err := thermocycler.Open("/dev/ttyACM0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	client := thermocycler.NewClient(port)
//	temp, err := client.LidTemperature()
//	err = client.SetLidTemperature(105.0)
//	err = client.SetFansManual(0.35)
//
// # Device Discovery
//
// Find a connected thermocycler by its USB product description:
//
//	path, err := thermocycler.Find("thermocycler")
//	if err != nil {
//	    log.Fatal(err) // errors.Is(err, thermocycler.ErrDiscovery)
//	}
//	port, err := thermocycler.Open(path)
//
// # Telemetry
//
//	temps, err := client.PlateTemperatures()
//	fmt.Printf("heatsink=%.1f left=%.1f center=%.1f right=%.1f\n",
//	    temps.Heatsink, temps.Left, temps.Center, temps.Right)
//
// # Error Handling
//
// Failures are reported as wrapped sentinel errors:
//
//	var (
//	    ErrValidation // parameter outside its legal domain, nothing written
//	    ErrDevice     // firmware replied with an ERR line
//	    ErrProtocol   // response did not carry the expected prefix
//	    ErrParse      // response matched the prefix but not the field grammar
//	    ErrDiscovery  // no matching device found
//	)
//
// Use errors.Is() for error type checking:
//
//	if errors.Is(err, thermocycler.ErrDevice) {
//	    // firmware rejected the command
//	}
//
// The client never retries; every failure is terminal for that call and
// the test driver decides whether to retry, skip or abort.
//
// # Concurrency
//
// The protocol allows exactly one exchange in flight. A Client is not
// safe for concurrent use; serialize access externally if more than one
// goroutine must talk to the device.
//
// # Default Configuration
//
//   - BaudRate: 115200
//   - DataBits: 8
//   - StopBits: 1
//   - Parity: None
//   - ReadTimeout: none (reads block until a full line arrives)
package thermocycler
