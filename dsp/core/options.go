package core

import "fmt"

// ProcessorConfig holds settings shared by every engine a host creates at
// one rate.
type ProcessorConfig struct {
	SampleRate float64
	// AnalysisLength is the number of samples rendered when measuring an
	// engine offline. It is a power of two so it can feed an FFT directly.
	AnalysisLength int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig) error

// DefaultProcessorConfig returns the settings used when no option is given.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate:     48000,
		AnalysisLength: 1 << 15,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) error {
		if err := ValidateSampleRate(sampleRate); err != nil {
			return err
		}
		cfg.SampleRate = sampleRate
		return nil
	}
}

// WithAnalysisLength sets the offline measurement length.
func WithAnalysisLength(n int) ProcessorOption {
	return func(cfg *ProcessorConfig) error {
		if n <= 0 || n&(n-1) != 0 {
			return fmt.Errorf("analysis length must be a positive power of two: %d", n)
		}
		cfg.AnalysisLength = n
		return nil
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) (ProcessorConfig, error) {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return ProcessorConfig{}, err
		}
	}
	return cfg, nil
}
