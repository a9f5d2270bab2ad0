package tiletap

// Countdown is a remaining-time clock measured in seconds.
// Remaining time never increases on its own and never drops below zero.
type Countdown struct {
	remaining float64
	frozen    bool
}

// Set restarts the countdown at duration seconds and unfreezes it.
// A negative duration leaves the countdown already done.
func (c *Countdown) Set(duration float64) {
	if duration < 0 {
		duration = 0
	}
	c.remaining = duration
	c.frozen = false
}

// Advance subtracts dt seconds. It does nothing once the countdown is done
// or while it is frozen.
func (c *Countdown) Advance(dt float64) {
	if c.IsDone() || c.frozen || dt <= 0 {
		return
	}
	c.remaining -= dt
	if c.remaining < 0 {
		c.remaining = 0
	}
}

// IsDone reports whether no time remains.
func (c *Countdown) IsDone() bool {
	return c.remaining <= 0
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() float64 {
	return c.remaining
}

// Freeze stops the countdown until Resume or Set.
func (c *Countdown) Freeze() {
	c.frozen = true
}

// Resume lets a frozen countdown run again.
func (c *Countdown) Resume() {
	c.frozen = false
}

// Frozen reports whether the countdown is frozen.
func (c *Countdown) Frozen() bool {
	return c.frozen
}
