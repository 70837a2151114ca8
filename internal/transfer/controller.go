package transfer

import "fmt"

// Controller owns the mode/rate state and drives the engine.
//
// It starts with no space selected; the first SetMode call activates a
// space and produces the first output. Every state change recomputes the
// output synchronously before returning, so Output always reflects the
// current mode and rates. Not safe for concurrent use.
type Controller struct {
	engine *Engine

	active bool
	space  Space
	rates  [3]float64 // blend rate per channel, 0..1
	output *Pixmap
}

// NewController builds a controller for a reference/target pair.
func NewController(ref, target *Pixmap) (*Controller, error) {
	engine, err := NewEngine(ref, target)
	if err != nil {
		return nil, err
	}
	return &Controller{engine: engine}, nil
}

// SetMode switches the working color space.
//
// Switching to the space that is already active is a no-op: rates keep
// their values and no recompute happens, so scrubbing over the current
// mode is free. Switching to a different space resets all three rates
// to 100% and recomputes with fresh statistics for both images.
func (c *Controller) SetMode(space Space) error {
	if !space.valid() {
		return fmt.Errorf("invalid color space %d", int(space))
	}
	if c.active && c.space == space {
		return nil
	}

	c.space = space
	c.rates = [3]float64{1, 1, 1}
	c.active = true
	return c.recompute()
}

// SetRate updates a single channel's blend rate from an integer percent
// and recomputes. The percent is clamped to 0-100; a channel index
// outside 0-2 or a call before any mode is set is rejected.
func (c *Controller) SetRate(channel, percent int) error {
	if !c.active {
		return fmt.Errorf("no color space selected")
	}
	if channel < 0 || channel > 2 {
		return fmt.Errorf("channel index %d out of range 0-2", channel)
	}

	c.rates[channel] = clampRate(float64(percent) / 100)
	return c.recompute()
}

func (c *Controller) recompute() error {
	out, err := c.engine.Recompute(c.space, c.rates)
	if err != nil {
		return err
	}
	c.output = out
	return nil
}

// Output returns the most recently computed output image, or nil before
// the first SetMode.
func (c *Controller) Output() *Pixmap {
	return c.output
}

// Space returns the active color space. The second result is false
// before the first SetMode.
func (c *Controller) Space() (Space, bool) {
	return c.space, c.active
}

// ChannelNames returns the display labels for the active space's
// channels.
func (c *Controller) ChannelNames() [3]string {
	if !c.active {
		return [3]string{}
	}
	return c.space.ChannelNames()
}

// RatePercents returns the current per-channel rates as integer
// percents.
func (c *Controller) RatePercents() [3]int {
	var p [3]int
	for i, r := range c.rates {
		p[i] = int(r*100 + 0.5)
	}
	return p
}

// Stats returns the log-domain channel statistics of both images in the
// active space.
func (c *Controller) Stats() (ref, target ChannelStats, err error) {
	if !c.active {
		return ChannelStats{}, ChannelStats{}, fmt.Errorf("no color space selected")
	}
	return c.engine.Stats(c.space)
}
