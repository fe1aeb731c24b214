// Package report collects what a run of the pushy command observed and
// renders it as text or YAML.
package report

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pushy/pda"
)

// PhaseStep marks frames recorded from finite-state machines.
const PhaseStep = "step"

// Frame is one observation: a PDA frontier, or the state of a finite
// machine after reading Symbol.
type Frame struct {
	Phase          string   `yaml:"phase"`
	Round          int      `yaml:"round"`
	Symbol         string   `yaml:"symbol,omitempty"`
	Configurations []string `yaml:"configurations,flow"`
}

// Run is the record of one invocation.
type Run struct {
	ID            string  `yaml:"id"`
	Machine       string  `yaml:"machine"`
	Variant       string  `yaml:"variant,omitempty"`
	Input         string  `yaml:"input"`
	Verdict       string  `yaml:"verdict,omitempty"`
	StartState    string  `yaml:"start_state,omitempty"`
	FinalState    string  `yaml:"final_state,omitempty"`
	Consumed      int     `yaml:"consumed"`
	EpsilonRounds int     `yaml:"epsilon_rounds,omitempty"`
	Peak          int     `yaml:"peak,omitempty"`
	Trace         []Frame `yaml:"trace,omitempty"`
}

// New starts a record with a fresh random ID.
func New(machine, variant, input string) *Run {
	return &Run{
		ID:      uuid.NewString(),
		Machine: machine,
		Variant: variant,
		Input:   input,
	}
}

// Observe appends a PDA frontier. Its signature fits pda.WithOnStep.
func (r *Run) Observe(s pda.Snapshot) error {
	r.Trace = append(r.Trace, Frame{
		Phase:          s.Phase.String(),
		Round:          s.Round,
		Symbol:         s.Symbol,
		Configurations: append([]string(nil), s.Configurations...),
	})

	return nil
}

// ObserveState appends the state of a finite machine after one symbol.
// A stuck machine is recorded as "STUCK".
func (r *Run) ObserveState(index int, symbol, state string, stuck bool) {
	if stuck {
		state = "STUCK"
	}
	r.Trace = append(r.Trace, Frame{
		Phase:          PhaseStep,
		Round:          index,
		Symbol:         symbol,
		Configurations: []string{state},
	})
}

// Finish copies the outcome of a PDA run.
func (r *Run) Finish(rep pda.Report) {
	r.Verdict = rep.Verdict.String()
	r.Consumed = rep.Consumed
	r.EpsilonRounds = rep.EpsilonRounds
	r.Peak = rep.Peak
}

// Accepted reports whether the run ended with an ACCEPTED verdict.
func (r *Run) Accepted() bool { return r.Verdict == pda.Accepted.String() }

// WriteText prints the start state of a finite machine, the trace (if
// recorded) and the verdict in the style of the classic demonstration
// programs.
func WriteText(w io.Writer, r *Run) error {
	if r.StartState != "" {
		if _, err := fmt.Fprintln(w, "The start state is:", r.StartState); err != nil {
			return err
		}
	}
	for _, f := range r.Trace {
		var err error
		if f.Phase == PhaseStep {
			_, err = fmt.Fprintf(w, "The input is: %s\nThe state is now: %s\n", f.Symbol, f.Configurations[0])
		} else {
			_, err = fmt.Fprintln(w, f.Configurations)
		}
		if err != nil {
			return err
		}
	}

	var err error
	switch {
	case r.Verdict == pda.Accepted.String():
		_, err = fmt.Fprintln(w, "The input is accepted")
	case r.Verdict == pda.Rejected.String():
		_, err = fmt.Fprintln(w, "The input is not accepted")
	case r.FinalState != "":
		_, err = fmt.Fprintln(w, "The final state is:", r.FinalState)
	}

	return err
}

// WriteYAML emits the whole record as a YAML document.
func WriteYAML(w io.Writer, r *Run) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("report: encode: %w", err)
	}

	return enc.Close()
}
