package repeat

import (
	"math"

	"github.com/cwbudde/algo-pedal/dsp/delay"
)

// MaxRepeats is the largest number of taps in one tap set, the dry tap
// included.
const MaxRepeats = 32

// TapParams describes one tap set.
type TapParams struct {
	Repeats  int
	TimeMs   float32
	Feedback float32
	Skew     float32
}

// same reports whether p and q select the same taps. Feedback 0 and -0
// differ since they order the taps differently.
func (p TapParams) same(q TapParams) bool {
	return p == q && math.Signbit(float64(p.Feedback)) == math.Signbit(float64(q.Feedback))
}

// FeedbackGain returns the gain of tap index out of repeats. A positive
// feedback f gives |f|^index, so taps fade out (|f| < 1) or swell
// (|f| > 1); a negative feedback, -0 included, reverses the order to
// |f|^(repeats-index-1).
// |f| == 1 gives unity on every tap.
func FeedbackGain(index int, feedback float32, repeats int) float32 {
	abs := math.Abs(float64(feedback))
	if abs == 1 {
		return 1
	}

	exponent := index
	if math.Signbit(float64(feedback)) {
		exponent = repeats - index - 1
	}

	return float32(math.Pow(abs, float64(exponent)))
}

// tapSet holds the derived gains and read times of one TapParams value.
type tapSet struct {
	params TapParams
	gains  [MaxRepeats]float32
	times  [MaxRepeats]float32

	// Running state of delayTime.
	prevTime float32
	term     float32
	factor   float32
}

// configure derives gains and times for p. Repeats must already be
// clamped to [1, MaxRepeats].
func (s *tapSet) configure(p TapParams) {
	s.params = p
	for i := range p.Repeats {
		s.gains[i] = FeedbackGain(i, p.Feedback, p.Repeats)
		s.times[i] = s.delayTime(i, p.TimeMs, p.Skew)
	}
}

// delayTime returns the read time of tap index. Taps must be visited in
// order starting at 0: with skew s each gap is 2^s times the previous
// one, so tap k lies at T * sum_{i<k} 2^(s*i).
func (s *tapSet) delayTime(index int, timeMs, skew float32) float32 {
	switch {
	case index == 0:
		s.prevTime = 0
		s.term = 0
		s.factor = float32(math.Exp2(float64(skew)))
		return 0
	case skew == 0:
		return timeMs * float32(index)
	case index == 1:
		s.term = timeMs
	default:
		s.term *= s.factor
	}

	s.prevTime += s.term
	return s.prevTime
}

// read sums the taps for the current input. Tap 0 is the dry input; the
// others read the delay line, which does not yet contain x.
func (s *tapSet) read(x float32, line *delay.Line) float32 {
	y := x * s.gains[0]
	for i := 1; i < s.params.Repeats; i++ {
		y += line.Read(s.times[i], delay.Linear) * s.gains[i]
	}
	return y
}
