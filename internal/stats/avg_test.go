package stats

import "testing"

func TestAvgUnseen(t *testing.T) {
	var a Avg
	if got := a.Value(); got != "-" {
		t.Errorf("Value() = %q, want -", got)
	}
	if got := a.Min(); got != "-" {
		t.Errorf("Min() = %q, want -", got)
	}
	if got := a.Max(); got != "-" {
		t.Errorf("Max() = %q, want -", got)
	}
}

func TestAvgUpdate(t *testing.T) {
	var a Avg
	a.Update(1, 10)
	a.Update(1, 30)
	a.Update(1, 20)

	if got := a.Value(); got != "20" {
		t.Errorf("Value() = %q, want 20", got)
	}
	if got := a.Min(); got != "10" {
		t.Errorf("Min() = %q, want 10", got)
	}
	if got := a.Max(); got != "30" {
		t.Errorf("Max() = %q, want 30", got)
	}
}

func TestAvgZeroNumerator(t *testing.T) {
	var a Avg
	a.Update(5, 0)
	if got := a.Value(); got != "0" {
		t.Errorf("Value() = %q, want 0", got)
	}
}

func TestAvgZeroDenominator(t *testing.T) {
	// Throughput gauge callers floor duration at 1ms, but Value() must
	// still handle sumD==0 defensively.
	a := Avg{sumD: 0, sumN: 5, seen: true, min: 5, max: 5}
	if got := a.Value(); got == "" || got == "-" || got == "0" {
		t.Errorf("Value() = %q, want max-finite representation", got)
	}
}

func TestAvgTracksPerSampleRatioNotRunningMean(t *testing.T) {
	var a Avg
	a.Update(2, 100) // ratio 50
	a.Update(1, 10)  // ratio 10
	if got := a.Min(); got != "10" {
		t.Errorf("Min() = %q, want 10 (min of per-sample ratios)", got)
	}
	if got := a.Max(); got != "50" {
		t.Errorf("Max() = %q, want 50 (max of per-sample ratios)", got)
	}
}
