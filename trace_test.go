package wfq_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	wfq "wfqsched"
)

func TestInactiveTraceRecordsNothing(t *testing.T) {
	trace := wfq.NewRunTrace(false)
	assert.False(t, trace.Active())

	dir := t.TempDir()
	path := filepath.Join(dir, "trace.yaml")
	assert.NoError(t, trace.WriteToFile(path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestActiveTraceRecordsOnePerEmittedPacket(t *testing.T) {
	trace := wfq.NewRunTrace(true)
	sched := wfq.NewScheduler(strings.NewReader("0 A a B b 10\n0 C c D d 10\n"), wfq.DefaultConfig())
	sched.SetTrace(trace)

	var out strings.Builder
	assert.NoError(t, sched.RunToCompletion(&out))
	assert.Len(t, trace.Records, 2)

	dir := t.TempDir()
	path := filepath.Join(dir, "trace.json")
	assert.NoError(t, trace.WriteToFile(path))
	contents, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(contents), "channelidx")
}
