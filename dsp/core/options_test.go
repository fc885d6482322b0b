package core

import (
	"errors"
	"testing"
)

func TestApplyProcessorOptionsDefaults(t *testing.T) {
	cfg, err := ApplyProcessorOptions()
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultProcessorConfig() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestApplyProcessorOptions(t *testing.T) {
	cfg, err := ApplyProcessorOptions(nil, WithSampleRate(96000), WithAnalysisLength(4096))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SampleRate != 96000 || cfg.AnalysisLength != 4096 {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestApplyProcessorOptionsErrors(t *testing.T) {
	_, err := ApplyProcessorOptions(WithSampleRate(-1))
	if !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("err = %v, want ErrInvalidSampleRate", err)
	}

	for _, n := range []int{0, -8, 1000} {
		if _, err := ApplyProcessorOptions(WithAnalysisLength(n)); err == nil {
			t.Fatalf("length %d: expected error", n)
		}
	}
}
