package errcode

// Code is a stable, log-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK                 Code = "ok"
	AlreadyInitialized Code = "already_initialized"
	InvalidParams      Code = "invalid_params"
	Timeout            Code = "timeout"

	UnknownPeripheral Code = "unknown_peripheral"
	PeripheralInUse   Code = "peripheral_in_use"
	ClockGated        Code = "clock_gated"

	Nack            Code = "nack"
	ArbitrationLost Code = "arbitration_lost"
	BusFault        Code = "bus_fault"

	Error Code = "error" // generic fallback
)

// E keeps an operation name and a cause alongside a Code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Wrap returns an *E for op, or nil if c is OK.
func Wrap(c Code, op, msg string) error {
	if c == OK {
		return nil
	}
	return &E{C: c, Op: op, Msg: msg}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
