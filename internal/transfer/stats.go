package transfer

import (
	"math"

	"github.com/anthonynsimon/bild/parallel"
)

// logEpsilon is the floor applied to working values before the natural
// logarithm. The 8-bit working domain permits exact zeros, and the floor
// keeps the log finite. Applied identically everywhere so matching and
// round-trip behavior stay reproducible.
const logEpsilon = 1e-4

// ChannelStats holds the per-channel mean and population standard
// deviation of a working-space image, computed in the log domain.
type ChannelStats struct {
	Mean   [3]float64
	StdDev [3]float64
}

// logTransform replaces every channel value with its natural logarithm
// in place, flooring non-positive values to logEpsilon first.
func logTransform(pl *planes) {
	for c := 0; c < 3; c++ {
		ch := pl.ch[c]
		parallel.Line(pl.height, func(start, end int) {
			for i := start * pl.width; i < end*pl.width; i++ {
				v := ch[i]
				if v < logEpsilon {
					v = logEpsilon
				}
				ch[i] = math.Log(v)
			}
		})
	}
}

// expTransform is the inverse of logTransform, returning the planes to
// the linear working domain in place.
func expTransform(pl *planes) {
	for c := 0; c < 3; c++ {
		ch := pl.ch[c]
		parallel.Line(pl.height, func(start, end int) {
			for i := start * pl.width; i < end*pl.width; i++ {
				ch[i] = math.Exp(ch[i])
			}
		})
	}
}

// computeStats computes the mean and population standard deviation of
// each channel. The reduction is a fixed-order sequential pass per
// channel so repeated runs produce identical results.
func computeStats(pl *planes) ChannelStats {
	var stats ChannelStats
	n := float64(pl.pixels())
	for c := 0; c < 3; c++ {
		ch := pl.ch[c]

		var sum float64
		for _, v := range ch {
			sum += v
		}
		mean := sum / n

		var sqsum float64
		for _, v := range ch {
			d := v - mean
			sqsum += d * d
		}

		stats.Mean[c] = mean
		stats.StdDev[c] = math.Sqrt(sqsum / n)
	}
	return stats
}
