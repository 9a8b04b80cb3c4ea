// Package tui runs the game in the terminal with Bubble Tea.
package tui

import "go-jump/internal/road"

type position struct {
	x, y, z float64
}

// Scene is the block container the road is built into. The renderer draws
// ground wherever a block sits.
type Scene struct {
	next   road.Handle
	blocks map[road.Handle]position
}

func NewScene() *Scene {
	return &Scene{blocks: map[road.Handle]position{}}
}

func (s *Scene) InstantiateTileVisual(*road.Template) road.Handle {
	s.next++
	s.blocks[s.next] = position{}
	return s.next
}

func (s *Scene) DestroyAllChildren() {
	s.blocks = map[road.Handle]position{}
}

func (s *Scene) SetPosition(h road.Handle, x, y, z float64) {
	if _, ok := s.blocks[h]; !ok {
		return
	}
	s.blocks[h] = position{x, y, z}
}

// Len is the number of live blocks.
func (s *Scene) Len() int {
	return len(s.blocks)
}

// Columns returns the set of integer x positions holding a block.
func (s *Scene) Columns() map[int]bool {
	cols := make(map[int]bool, len(s.blocks))
	for _, p := range s.blocks {
		cols[int(p.x)] = true
	}
	return cols
}

// HUD holds the start menu visibility and the step label.
type HUD struct {
	MenuVisible bool
	StepLabel   string
}

func (h *HUD) SetMenuVisible(visible bool) {
	h.MenuVisible = visible
}

func (h *HUD) SetStepLabel(text string) {
	h.StepLabel = text
}
