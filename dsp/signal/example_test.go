package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-pedal/dsp/core"
	"github.com/cwbudde/algo-pedal/dsp/signal"
)

func ExampleGenerator_BinFrequency() {
	g, err := signal.NewGenerator([]core.ProcessorOption{
		core.WithSampleRate(48000),
		core.WithAnalysisLength(4096),
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.4f\n", g.BinFrequency(1000))

	// Output:
	// 996.0938
}
