package transfer

import "fmt"

// Engine runs the transfer pipeline for one reference/target image pair.
//
// The working-space log-domain planes of both images and their channel
// statistics depend only on the active space, not on the blend rates, so
// the engine caches them per space: a rate-only recompute reuses the
// cached planes and statistics and redoes just the match, blend, and
// output stages. Changing the space rebuilds everything.
type Engine struct {
	ref    *Pixmap
	target *Pixmap

	// cache for the active space
	space       Space
	haveSpace   bool
	refLog      *planes
	targetLog   *planes
	refStats    ChannelStats
	targetStats ChannelStats
}

// NewEngine validates the image pair and constructs an engine.
// Both images must be non-empty; their dimensions may differ, since the
// transfer couples them only through channel statistics.
func NewEngine(ref, target *Pixmap) (*Engine, error) {
	if ref == nil || target == nil {
		return nil, fmt.Errorf("reference and target images are required")
	}
	for _, pm := range []*Pixmap{ref, target} {
		if pm.pixels() == 0 {
			return nil, fmt.Errorf("empty image %dx%d", pm.Width, pm.Height)
		}
		if len(pm.Pix) != pm.pixels()*3 {
			return nil, fmt.Errorf("pixel buffer length %d does not match %dx%d image",
				len(pm.Pix), pm.Width, pm.Height)
		}
	}
	return &Engine{ref: ref, target: target}, nil
}

// prepare populates the per-space cache: forward conversion and log
// transform of both images plus their statistics.
func (e *Engine) prepare(space Space) {
	if e.haveSpace && e.space == space {
		return
	}

	e.refLog = space.forward(e.ref)
	e.targetLog = space.forward(e.target)
	logTransform(e.refLog)
	logTransform(e.targetLog)
	e.refStats = computeStats(e.refLog)
	e.targetStats = computeStats(e.targetLog)

	e.space = space
	e.haveSpace = true
}

// Recompute runs the full pipeline in the given space with the given
// per-channel blend rates and returns a freshly allocated output image
// with the target's dimensions. Previously returned outputs are never
// touched.
func (e *Engine) Recompute(space Space, rates [3]float64) (*Pixmap, error) {
	if !space.valid() {
		return nil, fmt.Errorf("invalid color space %d", int(space))
	}
	e.prepare(space)

	out := newPlanes(e.targetLog.width, e.targetLog.height)
	for c := 0; c < 3; c++ {
		matchBlendChannel(out.ch[c], e.targetLog.ch[c], out.width, out.height,
			e.refStats.Mean[c], e.refStats.StdDev[c],
			e.targetStats.Mean[c], e.targetStats.StdDev[c],
			rates[c])
	}

	expTransform(out)
	return space.backward(out), nil
}

// Stats returns the cached log-domain channel statistics of the
// reference and target images in the given space.
func (e *Engine) Stats(space Space) (ref, target ChannelStats, err error) {
	if !space.valid() {
		return ChannelStats{}, ChannelStats{}, fmt.Errorf("invalid color space %d", int(space))
	}
	e.prepare(space)
	return e.refStats, e.targetStats, nil
}
