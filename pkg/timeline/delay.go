package timeline

// Delay is a pure time filler: it commits nothing and exists only to
// occupy duration milliseconds on a timeline.
type Delay struct {
	*entityBase
}

func newDelay(durationMS int64) *Delay {
	d := &Delay{entityBase: newEntityBase("delay", 0, durationMS, 0)}
	d.setSelf(d)
	return d
}

func (d *Delay) base() *entityBase { return d.entityBase }

// DisplayFrame is the Entity default: just track done/release.
func (d *Delay) DisplayFrame(time, targetTime int64, forward bool) {
	d.defaultDisplayFrame(time, targetTime, forward)
}
