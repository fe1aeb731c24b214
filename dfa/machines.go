package dfa

import (
	"fmt"
	"strings"
)

// Bit is a binary input symbol.
type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)

// String returns "0" or "1".
func (b Bit) String() string {
	if b {
		return "1"
	}

	return "0"
}

// Bits converts a string of '0' and '1' to Bits; any other rune yields
// ErrBadInput.
func Bits(s string) ([]Bit, error) {
	out := make([]Bit, 0, len(s))
	for i, r := range s {
		switch r {
		case '0':
			out = append(out, Zero)
		case '1':
			out = append(out, One)
		default:
			return nil, fmt.Errorf("%w: bit %q at offset %d", ErrBadInput, r, i)
		}
	}

	return out, nil
}

// BinaryState is a state of BinaryString.
type BinaryState uint8

// String returns "q0".."q4".
func (s BinaryState) String() string { return fmt.Sprintf("q%d", uint8(s)) }

// BinaryString returns the DFA for 1 0 0 0* 1 1*: a one, at least two
// zeros, then at least one one.
//
//	q0 -1-> q1 -0-> q2 -0-> q3 -1-> q4
//	q3 loops on 0, q4 loops on 1; final {q4}
func BinaryString() *DFA[BinaryState, Bit] {
	d, err := New[BinaryState, Bit](0, []BinaryState{4},
		Transition[BinaryState, Bit]{From: 0, Input: One, To: 1},
		Transition[BinaryState, Bit]{From: 1, Input: Zero, To: 2},
		Transition[BinaryState, Bit]{From: 2, Input: Zero, To: 3},
		Transition[BinaryState, Bit]{From: 3, Input: Zero, To: 3},
		Transition[BinaryState, Bit]{From: 3, Input: One, To: 4},
		Transition[BinaryState, Bit]{From: 4, Input: One, To: 4},
	)
	if err != nil {
		panic(err)
	}

	return d
}

// DoorState is the state of the magic door.
type DoorState uint8

const (
	Closed DoorState = iota
	Open
)

// String returns "Closed" or "Open".
func (s DoorState) String() string {
	if s == Open {
		return "Open"
	}

	return "Closed"
}

// DoorInput is what the door's sensors report.
type DoorInput uint8

const (
	Front DoorInput = iota
	Back
	Both
	Neither
)

// String returns the sensor reading's name.
func (in DoorInput) String() string {
	switch in {
	case Front:
		return "Front"
	case Back:
		return "Back"
	case Both:
		return "Both"
	case Neither:
		return "Neither"
	default:
		return fmt.Sprintf("DoorInput(%d)", uint8(in))
	}
}

// DoorInputs parses a comma-separated list of sensor readings such as
// "front,back,both,neither". Names are case-insensitive; blanks are skipped.
// An unknown name yields ErrBadInput.
func DoorInputs(s string) ([]DoorInput, error) {
	var out []DoorInput
	for i, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		in, ok := doorInputNames[strings.ToLower(f)]
		if !ok {
			return nil, fmt.Errorf("%w: door reading %q at field %d", ErrBadInput, f, i)
		}
		out = append(out, in)
	}

	return out, nil
}

var doorInputNames = map[string]DoorInput{
	"front":   Front,
	"back":    Back,
	"both":    Both,
	"neither": Neither,
}

// MagicDoor returns the automatic door: someone in front only opens it,
// every other reading closes it. It starts Closed.
func MagicDoor() *Reactive[DoorState, DoorInput] {
	r, _ := NewReactive(Closed, func(_ DoorState, in DoorInput) DoorState {
		if in == Front {
			return Open
		}
		return Closed
	})

	return r
}
