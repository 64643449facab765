package analysis

import (
	"reflect"
	"testing"
)

func TestThinShellReportsThinAreas(t *testing.T) {
	// Two opposed 1x1 plates 0.5 apart: every thickness sample lands well
	// below the 1 mm minimum.
	data, err := Analyze(shellPoints(1, 0.5, 5))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	th := data.Thickness
	if th.Synthetic {
		t.Fatal("expected real samples on the shell, got the synthetic fallback")
	}
	if th.SampleCount == 0 {
		t.Fatal("expected thickness samples")
	}
	if th.MinThickness < 0.5 {
		t.Errorf("MinThickness below the plate separation: %v", th.MinThickness)
	}
	if th.MinThickness >= 1.0 {
		t.Errorf("MinThickness: expected below 1, got %v", th.MinThickness)
	}
	if th.ThinAreas == 0 {
		t.Error("ThinAreas: expected thin samples on a 0.5 mm shell")
	}
	if th.MaxThickness < th.MinThickness || th.MeanThickness < th.MinThickness || th.MeanThickness > th.MaxThickness {
		t.Errorf("inconsistent aggregate: min %v mean %v max %v", th.MinThickness, th.MeanThickness, th.MaxThickness)
	}
}

func TestThicknessSyntheticFallback(t *testing.T) {
	// A single flat plate has no opposed surface anywhere, so the sampler
	// must fall back to one synthetic sample.
	data, err := Analyze(platePoints(0, 10, 3, true))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	th := data.Thickness
	if !th.Synthetic {
		t.Fatal("expected the synthetic fallback sample")
	}
	if th.SampleCount != 1 {
		t.Errorf("SampleCount: expected 1, got %d", th.SampleCount)
	}
}

func TestThicknessSeedReproducibility(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 7

	first, err := AnalyzeWithOptions(shellPoints(1, 0.5, 5), opts)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	second, err := AnalyzeWithOptions(shellPoints(1, 0.5, 5), opts)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if !reflect.DeepEqual(first.Thickness, second.Thickness) {
		t.Errorf("same seed produced different thickness results: %+v vs %+v",
			first.Thickness, second.Thickness)
	}
}
