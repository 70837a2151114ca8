package transfer

import "github.com/anthonynsimon/bild/parallel"

// matchScale returns the spread-rescaling factor for one channel.
//
// When the destination channel is constant its standard deviation is
// zero and the ratio is undefined; the defined behavior is a scale of
// 1.0, so matching degrades to pure recentering onto the source mean.
func matchScale(srcStd, dstStd float64) float64 {
	if dstStd == 0 {
		return 1.0
	}
	return srcStd / dstStd
}

// clampRate constrains a blend rate to [0,1].
func clampRate(rate float64) float64 {
	if rate < 0 {
		return 0
	}
	if rate > 1 {
		return 1
	}
	return rate
}

// matchBlendChannel writes, for every pixel of one log-domain channel,
// the statistical match blended with the original value:
//
//	matched = scale*(x - dstMean) + srcMean
//	out     = x*(1-rate) + matched*rate
//
// The statistics passed in are for this channel only. out must not
// alias dst.
func matchBlendChannel(out, dst []float64, width, height int, srcMean, srcStd, dstMean, dstStd, rate float64) {
	scale := matchScale(srcStd, dstStd)
	rate = clampRate(rate)
	parallel.Line(height, func(start, end int) {
		for i := start * width; i < end*width; i++ {
			x := dst[i]
			matched := scale*(x-dstMean) + srcMean
			out[i] = x*(1-rate) + matched*rate
		}
	})
}
