package core

import "testing"

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(1250))
	if cfg.SampleRate != 1250 {
		t.Fatalf("sample rate = %v, want 1250", cfg.SampleRate)
	}
	if cfg.Nyquist() != 625 {
		t.Fatalf("nyquist = %v, want 625", cfg.Nyquist())
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), nil, WithSampleRate(-3))
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}
