// Command pushy runs the bundled automata on one input and prints the trace
// and verdict.
//
//	pushy -machine pda -variant grammar -input 0110
//	pushy -machine dfa -input 1000011
//	pushy -machine door -input front,both,back
//	pushy -config pushy.yaml -format yaml
//
// Without -input (and without an input in the config file) every machine
// runs on the input of its classic demonstration.
//
// Exit status is 0 when the input is accepted (or the door run finished),
// 1 when it is rejected and 2 on any error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/pushy/dfa"
	"github.com/katalvlaran/pushy/internal/config"
	"github.com/katalvlaran/pushy/internal/report"
	"github.com/katalvlaran/pushy/palindrome"
	"github.com/katalvlaran/pushy/pda"
)

const (
	exitAccepted = 0
	exitRejected = 1
	exitError    = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pushy", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configFile = fs.String("config", "", "YAML config file; flags override its values")
		machine    = fs.String("machine", "", "machine to run [pda|dfa|door]")
		variant    = fs.String("variant", "", "palindrome recognizer [bottom-up|grammar|simple]")
		input      = fs.String("input", "", "input word")
		trace      = fs.Bool("trace", true, "print every frontier or state")
		dedup      = fs.Bool("dedup", false, "drop duplicate PDA configurations per round")
		maxRounds  = fs.Int("max-epsilon-rounds", 0, "bound on PDA epsilon rounds, 0 for none")
		format     = fs.String("format", "", "output format [text|yaml]")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitAccepted
		}
		return exitError
	}

	conf := config.Default()
	if *configFile != "" {
		c, err := config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(stderr, "Could not load config: %v\n", err)
			return exitError
		}
		conf = c
	}
	inputSet := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "machine":
			conf.Machine = *machine
		case "variant":
			conf.Variant = *variant
		case "input":
			conf.Input = *input
			inputSet = true
		case "trace":
			conf.Trace = *trace
		case "dedup":
			conf.Dedup = *dedup
		case "max-epsilon-rounds":
			conf.MaxEpsilonRounds = *maxRounds
		case "format":
			conf.Format = *format
		}
	})
	if err := conf.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	if !inputSet {
		conf.FillInput()
	}

	rec, err := execute(ctx, conf)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	if conf.Format == config.FormatYAML {
		err = report.WriteYAML(stdout, rec)
	} else {
		err = report.WriteText(stdout, rec)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	if rec.Verdict == pda.Rejected.String() {
		return exitRejected
	}

	return exitAccepted
}

// execute runs the configured machine and records what it saw.
func execute(ctx context.Context, conf config.Config) (*report.Run, error) {
	switch conf.Machine {
	case config.MachineDFA:
		return runBinary(conf)
	case config.MachineDoor:
		return runDoor(conf)
	default:
		return runPalindrome(ctx, conf)
	}
}

func runPalindrome(ctx context.Context, conf config.Config) (*report.Run, error) {
	v, err := palindrome.ParseVariant(conf.Variant)
	if err != nil {
		return nil, err
	}
	in, err := palindrome.Parse(conf.Input)
	if err != nil {
		return nil, err
	}

	rec := report.New(conf.Machine, v.String(), conf.Input)
	opts := []pda.Option{
		pda.WithContext(ctx),
		pda.WithMaxEpsilonRounds(conf.MaxEpsilonRounds),
	}
	if conf.Dedup {
		opts = append(opts, pda.WithDedup())
	}
	if conf.Trace {
		opts = append(opts, pda.WithOnStep(rec.Observe))
	}
	rep, err := palindrome.Recognize(v, in, opts...)
	if err != nil {
		return nil, err
	}
	rec.Finish(rep)

	return rec, nil
}

func runBinary(conf config.Config) (*report.Run, error) {
	in, err := dfa.Bits(conf.Input)
	if err != nil {
		return nil, err
	}

	d := dfa.BinaryString()
	rec := report.New(conf.Machine, "", conf.Input)
	rec.StartState = d.Start().String()
	var opts []dfa.Option[dfa.BinaryState, dfa.Bit]
	if conf.Trace {
		opts = append(opts, dfa.WithOnStep(func(s dfa.Step[dfa.BinaryState, dfa.Bit]) {
			rec.ObserveState(s.Index, s.Input.String(), s.State.String(), s.Stuck)
		}))
	}
	out := d.Run(in, opts...)
	rec.Consumed = out.Steps
	rec.Verdict = pda.Rejected.String()
	if out.Accepted {
		rec.Verdict = pda.Accepted.String()
	}
	if !out.Stuck {
		rec.FinalState = out.State.String()
	}

	return rec, nil
}

func runDoor(conf config.Config) (*report.Run, error) {
	in, err := dfa.DoorInputs(conf.Input)
	if err != nil {
		return nil, err
	}

	door := dfa.MagicDoor()
	rec := report.New(conf.Machine, "", conf.Input)
	rec.StartState = door.Start().String()
	var opts []dfa.Option[dfa.DoorState, dfa.DoorInput]
	if conf.Trace {
		opts = append(opts, dfa.WithOnStep(func(s dfa.Step[dfa.DoorState, dfa.DoorInput]) {
			rec.ObserveState(s.Index, s.Input.String(), s.State.String(), false)
		}))
	}
	states := door.Run(in, opts...)
	rec.Consumed = len(states)
	rec.FinalState = rec.StartState
	if n := len(states); n > 0 {
		rec.FinalState = states[n-1].String()
	}

	return rec, nil
}
