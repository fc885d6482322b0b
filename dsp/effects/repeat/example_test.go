package repeat_test

import (
	"fmt"

	"github.com/cwbudde/algo-pedal/dsp/effects/repeat"
)

func ExampleRepeat_ProcessSample() {
	// At 1 kHz one sample is one millisecond; 50 Hz spaces taps 20 ms apart.
	r, err := repeat.New(1000)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for i := range 64 {
		x := float32(0)
		if i == 0 {
			x = 1
		}
		if y := r.ProcessSample(x, 50, 3, 0.5, 0); y != 0 {
			fmt.Printf("%d: %.3f\n", i, y)
		}
	}
	// Output:
	// 0: 1.000
	// 21: 0.500
	// 41: 0.250
}
