package wfq_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	wfq "wfqsched"
)

func runTrace(t *testing.T, input string) []string {
	t.Helper()
	sched := wfq.NewScheduler(strings.NewReader(input), wfq.DefaultConfig())
	var out strings.Builder
	err := sched.RunToCompletion(&out)
	assert.NoError(t, err)
	trimmed := strings.TrimRight(out.String(), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func TestEmptyInputProducesNoOutput(t *testing.T) {
	lines := runTrace(t, "")
	assert.Empty(t, lines)
}

func TestSingleFlowDefaultWeight(t *testing.T) {
	input := "0 1.1.1.1 10 2.2.2.2 20 100\n0 1.1.1.1 10 2.2.2.2 20 100\n"
	expected := []string{
		"0: 0 1.1.1.1 10 2.2.2.2 20 100",
		"100: 0 1.1.1.1 10 2.2.2.2 20 100",
	}
	assert.Equal(t, expected, runTrace(t, input))
}

func TestTwoFlowsEqualWeightTieBreakByFirstAppearance(t *testing.T) {
	input := "0 1.1.1.1 10 2.2.2.2 20 100\n0 3.3.3.3 30 4.4.4.4 40 100\n"
	expected := []string{
		"0: 0 1.1.1.1 10 2.2.2.2 20 100",
		"100: 0 3.3.3.3 30 4.4.4.4 40 100",
	}
	assert.Equal(t, expected, runTrace(t, input))
}

// Weighted fairness, 2:1. Finish tags computed by the Parekh-Gallager
// recurrence are flow-A {50, 100, 150}, flow-C {100, 200, 300}; at any
// point only the current head of each channel's FIFO competes on the
// ready heap, so C's first packet (F=100) is selected ahead of A's third
// packet (F=150).
func TestWeightedFairnessTwoToOne(t *testing.T) {
	input := strings.Join([]string{
		"0 A a B b 100 2.00",
		"0 C c D d 100 1.00",
		"0 A a B b 100",
		"0 C c D d 100",
		"0 A a B b 100",
		"0 C c D d 100",
	}, "\n") + "\n"

	expected := []string{
		"0: 0 A a B b 100 2.00",
		"100: 0 A a B b 100",
		"200: 0 C c D d 100 1.00",
		"300: 0 A a B b 100",
		"400: 0 C c D d 100",
		"500: 0 C c D d 100",
	}
	assert.Equal(t, expected, runTrace(t, input))
}

func TestIdleGapThenBurst(t *testing.T) {
	input := "0 A a B b 10\n100 C c D d 10\n"
	expected := []string{
		"0: 0 A a B b 10",
		"100: 100 C c D d 10",
	}
	assert.Equal(t, expected, runTrace(t, input))
}

func TestWeightUpdateOnTheFly(t *testing.T) {
	input := "0 A a B b 100\n0 B b A a 100\n200 A a B b 100 4.00\n"
	expected := []string{
		"0: 0 A a B b 100",
		"100: 0 B b A a 100",
		"200: 200 A a B b 100 4.00",
	}
	assert.Equal(t, expected, runTrace(t, input))
}

func TestPerFlowFIFOIsPreserved(t *testing.T) {
	input := strings.Join([]string{
		"0 A a B b 10",
		"0 A a B b 20",
		"0 A a B b 30",
	}, "\n") + "\n"

	lines := runTrace(t, input)
	assert.Equal(t, []string{
		"0: 0 A a B b 10",
		"10: 0 A a B b 20",
		"30: 0 A a B b 30",
	}, lines)
}

func TestZeroLengthPacketStillEmitsWithoutAdvancingTau(t *testing.T) {
	input := "0 A a B b 0\n0 A a B b 10\n"
	expected := []string{
		"0: 0 A a B b 0",
		"0: 0 A a B b 10",
	}
	assert.Equal(t, expected, runTrace(t, input))
}

func TestMultipleArrivalsSameTimeSameChannelQueueInOrder(t *testing.T) {
	input := strings.Join([]string{
		"0 A a B b 10",
		"0 A a B b 10",
		"0 A a B b 10",
		"0 A a B b 10",
	}, "\n") + "\n"

	lines := runTrace(t, input)
	assert.Len(t, lines, 4)
	for _, line := range lines {
		assert.Contains(t, line, "A a B b 10")
	}
}

func TestMalformedLineIsFatal(t *testing.T) {
	sched := wfq.NewScheduler(strings.NewReader("not a valid line\n"), wfq.DefaultConfig())
	var out strings.Builder
	err := sched.RunToCompletion(&out)
	assert.Error(t, err)
	var mle *wfq.MalformedLineError
	assert.ErrorAs(t, err, &mle)
}

func TestTauIsNonDecreasing(t *testing.T) {
	input := strings.Join([]string{
		"0 A a B b 100 3.00",
		"0 C c D d 100 1.00",
		"50 A a B b 50",
		"120 C c D d 75",
		"500 E e F f 20",
	}, "\n") + "\n"

	sched := wfq.NewScheduler(strings.NewReader(input), wfq.DefaultConfig())
	var out strings.Builder
	err := sched.RunToCompletion(&out)
	assert.NoError(t, err)

	lastTau := uint64(0)
	for _, line := range strings.Split(strings.TrimRight(out.String(), "\n"), "\n") {
		idx := strings.Index(line, ":")
		assert.GreaterOrEqual(t, idx, 0)
		tau, err := strconv.ParseUint(line[:idx], 10, 64)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, tau, lastTau)
		lastTau = tau
	}
}
