package cli

import (
	"io"
	"testing"

	"github.com/matzehuels/permute/pkg/permute"
)

func TestBenchEnginesAgree(t *testing.T) {
	const n = 5
	want := permute.Factorial(n)

	for _, engine := range benchEngines(n) {
		if got := engine.run(); got != want {
			t.Errorf("engine %s visited %d arrangements, want %d", engine.name, got, want)
		}
	}
}

func TestBenchEnginesSingleElement(t *testing.T) {
	for _, engine := range benchEngines(1) {
		if got := engine.run(); got != 1 {
			t.Errorf("engine %s visited %d arrangements, want 1", engine.name, got)
		}
	}
}

func TestRunBenchRejectsBadInput(t *testing.T) {
	c := New(io.Discard, LogInfo)

	if err := c.runBench(0, 1, true); err == nil {
		t.Error("runBench(n=0) should fail")
	}
	if err := c.runBench(maxBenchN+1, 1, true); err == nil {
		t.Error("runBench(n too large) should fail")
	}
	if err := c.runBench(3, 0, true); err == nil {
		t.Error("runBench(rounds=0) should fail")
	}
}

func TestRunBenchJSON(t *testing.T) {
	c := New(io.Discard, LogInfo)

	// JSON output goes to stdout; only the error path is asserted here.
	if err := c.runBench(3, 1, true); err != nil {
		t.Errorf("runBench() error: %v", err)
	}
}
