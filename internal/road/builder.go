package road

import (
	"io"

	"github.com/charmbracelet/log"
)

// Handle identifies a visual block spawned in a Scene.
type Handle int

// Template describes the visual that is cloned for each solid tile.
type Template struct {
	Name string
}

// Scene owns the container that tile visuals are parented under.
type Scene interface {
	InstantiateTileVisual(tmpl *Template) Handle
	DestroyAllChildren()
	SetPosition(h Handle, x, y, z float64)
}

// Builder regenerates the road and its visual block registry together.
type Builder struct {
	scene    Scene
	template *Template
	rng      Rand
	blockY   float64
	logger   *log.Logger
}

// NewBuilder returns a Builder. scene and tmpl may be nil; the road is still
// generated but no blocks are spawned.
func NewBuilder(scene Scene, tmpl *Template, rng Rand, blockY float64, logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Builder{
		scene:    scene,
		template: tmpl,
		rng:      rng,
		blockY:   blockY,
		logger:   logger,
	}
}

// Build generates a new road of length tiles and replaces every previous block
// with one block per solid tile, placed at (index, blockY, 0).
func (b *Builder) Build(length int) Road {
	r := Generate(length, b.rng)

	if b.scene == nil {
		b.logger.Warn("no scene attached, road has no scenery", "length", length)
		return r
	}
	b.scene.DestroyAllChildren()

	if b.template == nil {
		b.logger.Warn("no tile template, road has no scenery", "length", length)
		return r
	}

	spawned := 0
	for i, t := range r {
		if t != Solid {
			continue
		}
		h := b.scene.InstantiateTileVisual(b.template)
		b.scene.SetPosition(h, float64(i), b.blockY, 0)
		spawned++
	}
	b.logger.Debug("road built", "length", len(r), "gaps", r.Gaps(), "blocks", spawned)
	return r
}
