package wfq_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	wfq "wfqsched"
)

func TestFairnessReportSharesAreCloseUnderEqualWeight(t *testing.T) {
	input := strings.Join([]string{
		"0 A a B b 100",
		"0 C c D d 100",
		"0 A a B b 100",
		"0 C c D d 100",
	}, "\n") + "\n"

	sched := wfq.NewScheduler(strings.NewReader(input), wfq.DefaultConfig())
	var out strings.Builder
	assert.NoError(t, sched.RunToCompletion(&out))

	report := wfq.BuildFairnessReport(sched.Channels(), sched.BytesServed())
	assert.Len(t, report.Channels, 2)
	assert.InDelta(t, 0, report.StdDev, 1e-9)
}

func TestFairnessReportIsEmptyWithNoChannels(t *testing.T) {
	report := wfq.BuildFairnessReport(nil, nil)
	assert.Empty(t, report.Channels)
	assert.Zero(t, report.Mean)
}
