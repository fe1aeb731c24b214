// Package config loads the settings of the pushy command from YAML files
// and validates them.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Machines that the command can run.
const (
	MachinePDA  = "pda"
	MachineDFA  = "dfa"
	MachineDoor = "door"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds every setting of a run. Zero fields in a file keep the
// defaults.
type Config struct {
	// Machine is one of "pda", "dfa" or "door".
	Machine string `yaml:"machine"`
	// Variant selects the palindrome recognizer when Machine is "pda".
	Variant string `yaml:"variant"`
	// Input is the input word; its alphabet depends on Machine. Empty
	// means the machine's demo input, see FillInput.
	Input string `yaml:"input"`
	// Trace prints every frontier or state.
	Trace bool `yaml:"trace"`
	// Dedup removes duplicate PDA configurations per round.
	Dedup bool `yaml:"dedup"`
	// MaxEpsilonRounds bounds the PDA epsilon phase; 0 means no limit.
	MaxEpsilonRounds int `yaml:"max_epsilon_rounds"`
	// Format is "text" or "yaml".
	Format string `yaml:"format"`
}

// demoInputs are the inputs of the classic demonstration programs.
var demoInputs = map[string]string{
	MachinePDA:  "0010101111010100",
	MachineDFA:  "1000011",
	MachineDoor: "front,front,both,back,neither",
}

// Default returns the configuration of the classic demonstration: the
// bottom-up recognizer with trace. Input is left empty so that FillInput
// can pick the demo input of whichever machine ends up selected.
func Default() Config {
	return Config{
		Machine: MachinePDA,
		Variant: "bottom-up",
		Trace:   true,
		Format:  FormatText,
	}
}

// DemoInput returns the demo input of machine, or "" for an unknown one.
func DemoInput(machine string) string { return demoInputs[machine] }

// FillInput sets Input to the demo input of Machine when Input is empty.
func (c *Config) FillInput() {
	if c.Input == "" {
		c.Input = DemoInput(c.Machine)
	}
}

// Load reads a YAML file, expanding ${ENV} references first.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse([]byte(os.ExpandEnv(string(raw))))
}

// Parse decodes YAML over Default() and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks enumerated fields and ranges.
func (c Config) Validate() error {
	switch c.Machine {
	case MachinePDA, MachineDFA, MachineDoor:
	default:
		return fmt.Errorf("%w: machine %q (want pda, dfa or door)", ErrInvalid, c.Machine)
	}
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("%w: format %q (want text or yaml)", ErrInvalid, c.Format)
	}
	if c.MaxEpsilonRounds < 0 {
		return fmt.Errorf("%w: max_epsilon_rounds %d is negative", ErrInvalid, c.MaxEpsilonRounds)
	}

	return nil
}
