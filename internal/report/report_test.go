package report_test

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pushy/internal/report"
	"github.com/katalvlaran/pushy/palindrome"
	"github.com/katalvlaran/pushy/pda"
)

func recognize(t *testing.T, input string) *report.Run {
	t.Helper()
	in, err := palindrome.Parse(input)
	require.NoError(t, err)

	r := report.New("pda", "bottom-up", input)
	rep, err := palindrome.Recognize(palindrome.BottomUpVariant, in, pda.WithOnStep(r.Observe))
	require.NoError(t, err)
	r.Finish(rep)

	return r
}

func TestNew_AssignsUniqueIDs(t *testing.T) {
	a := report.New("pda", "", "0")
	b := report.New("pda", "", "0")
	_, err := uuid.Parse(a.ID)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestWriteText_PDA(t *testing.T) {
	r := recognize(t, "11")
	assert.True(t, r.Accepted())

	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, r))
	assert.Equal(t, `[(q0, [EOS])]
[(q1, [EOS 1]) (q2, [EOS])]
[(q1, [EOS 1 1]) (q2, [EOS]) (q2, [EOS 1])]
[(q3, [])]
The input is accepted
`, buf.String())
}

func TestWriteText_Rejected(t *testing.T) {
	r := report.New("pda", "simple", "01")
	r.Finish(pda.Report{Verdict: pda.Rejected, Consumed: 2})
	assert.False(t, r.Accepted())

	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, r))
	assert.Equal(t, "The input is not accepted\n", buf.String())
}

func TestWriteText_FiniteMachine(t *testing.T) {
	r := report.New("door", "", "front,both")
	r.StartState = "Closed"
	r.ObserveState(0, "Front", "Open", false)
	r.ObserveState(1, "Both", "Closed", false)
	r.FinalState = "Closed"

	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, r))
	assert.Equal(t, `The start state is: Closed
The input is: Front
The state is now: Open
The input is: Both
The state is now: Closed
The final state is: Closed
`, buf.String())
}

func TestObserveState_Stuck(t *testing.T) {
	r := report.New("dfa", "", "0")
	r.ObserveState(0, "0", "q0", true)
	require.Len(t, r.Trace, 1)
	assert.Equal(t, []string{"STUCK"}, r.Trace[0].Configurations)
	assert.Equal(t, report.PhaseStep, r.Trace[0].Phase)
}

func TestWriteYAML_RoundTrips(t *testing.T) {
	r := recognize(t, "0")

	var buf bytes.Buffer
	require.NoError(t, report.WriteYAML(&buf, r))

	var back report.Run
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, *r, back)
	assert.Contains(t, buf.String(), "verdict: ACCEPTED")
	assert.Contains(t, buf.String(), "id: "+r.ID)
}
