package audio

import "io"

// Bell is a Source that rings the terminal bell. A bell cannot be cut short,
// so Stop only clears the playing flag.
type Bell struct {
	out     io.Writer
	playing bool
	rings   int
}

// NewBell returns a Bell writing to out. A nil out keeps it silent.
func NewBell(out io.Writer) *Bell {
	return &Bell{out: out}
}

// Play rings the bell once and marks the track on.
func (b *Bell) Play() {
	b.playing = true
	b.rings++
	if b.out != nil {
		_, _ = io.WriteString(b.out, "\a")
	}
}

// Stop marks the track off.
func (b *Bell) Stop() {
	b.playing = false
}

// Playing reports whether the track is considered on.
func (b *Bell) Playing() bool {
	return b.playing
}

// Rings counts Play calls.
func (b *Bell) Rings() int {
	return b.rings
}
