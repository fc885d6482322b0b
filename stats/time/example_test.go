package time_test

import (
	"fmt"

	timestats "github.com/cwbudde/algo-pedal/stats/time"
)

func ExampleCalculate() {
	s := timestats.Calculate([]float32{1, -1, 1, -1})
	fmt.Printf("rms=%.1f peak=%.1f crest=%.1f dB\n", s.RMS, s.Peak, s.CrestFactor_dB)

	// Output:
	// rms=1.0 peak=1.0 crest=0.0 dB
}
