package entity

import (
	"slices"

	"github.com/vovakirdan/tui-brickgame/internal/core"
)

// Group is a named, ordered collection of blocks.
type Group struct {
	name   string
	blocks []*Block
	canvas Canvas
}

// Name returns the group name.
func (g *Group) Name() string {
	return g.name
}

// Blocks returns the live backing slice. Callers must not append to it.
func (g *Group) Blocks() []*Block {
	return g.blocks
}

// Len returns the number of blocks in the group.
func (g *Group) Len() int {
	return len(g.blocks)
}

// Spawn creates a shown block at p and appends it.
func (g *Group) Spawn(p core.Point, kind Kind) *Block {
	b := New(g.canvas, p, kind)
	g.blocks = append(g.blocks, b)
	return b
}

// Add appends existing blocks.
func (g *Group) Add(blocks ...*Block) {
	g.blocks = append(g.blocks, blocks...)
}

// Remove drops b from the group without touching its visibility.
func (g *Group) Remove(b *Block) bool {
	i := slices.Index(g.blocks, b)
	if i < 0 {
		return false
	}
	g.blocks = slices.Delete(g.blocks, i, i+1)
	return true
}

// Destroy hides b and removes it.
func (g *Group) Destroy(b *Block) bool {
	if !g.Remove(b) {
		return false
	}
	b.Hide()
	return true
}

// At returns the first block at p, or nil.
func (g *Group) At(p core.Point) *Block {
	for _, b := range g.blocks {
		if b.Pos == p {
			return b
		}
	}
	return nil
}

// Contains reports whether any block sits at p.
func (g *Group) Contains(p core.Point) bool {
	return g.At(p) != nil
}

// First returns the oldest block, or nil.
func (g *Group) First() *Block {
	if len(g.blocks) == 0 {
		return nil
	}
	return g.blocks[0]
}

// Last returns the newest block, or nil.
func (g *Group) Last() *Block {
	if len(g.blocks) == 0 {
		return nil
	}
	return g.blocks[len(g.blocks)-1]
}

// Clear hides and removes every block.
func (g *Group) Clear() {
	for _, b := range g.blocks {
		b.Hide()
	}
	g.blocks = nil
}

// Release empties the group without hiding anything and returns what it held,
// so the blocks can be handed to another group.
func (g *Group) Release() []*Block {
	out := g.blocks
	g.blocks = nil
	return out
}

// World is the ordered mapping of group name to blocks owned by one game.
type World struct {
	canvas Canvas
	groups []*Group
	index  map[string]*Group
}

// NewWorld creates a world rendering through c with the given groups in order.
func NewWorld(c Canvas, names ...string) *World {
	w := &World{canvas: c, index: make(map[string]*Group)}
	for _, n := range names {
		w.Group(n)
	}
	return w
}

// Canvas returns the sprite service blocks in this world render through.
func (w *World) Canvas() Canvas {
	return w.canvas
}

// Group returns the named group, creating it at the end of the order if needed.
func (w *World) Group(name string) *Group {
	if g, ok := w.index[name]; ok {
		return g
	}
	g := &Group{name: name, canvas: w.canvas}
	w.groups = append(w.groups, g)
	w.index[name] = g
	return g
}

// Groups returns the groups in creation order.
func (w *World) Groups() []*Group {
	return w.groups
}

// Each calls fn for every block of every group, in group order.
func (w *World) Each(fn func(*Block)) {
	for _, g := range w.groups {
		for _, b := range g.blocks {
			fn(b)
		}
	}
}

// Len returns the total number of blocks.
func (w *World) Len() int {
	n := 0
	for _, g := range w.groups {
		n += len(g.blocks)
	}
	return n
}

// ClearAll hides and removes every block of every group.
func (w *World) ClearAll() {
	for _, g := range w.groups {
		g.Clear()
	}
}
