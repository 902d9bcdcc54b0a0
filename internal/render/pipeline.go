package render

import (
	"image/color"

	"InkPad/internal/geom"
	"InkPad/internal/state"
)

// Primitive is one drawable unit handed to the presentation layer: a smoothed
// curve plus the stroke appearance captured with it. Erase marks commands
// recorded with the eraser; the presentation layer decides what color an
// erase paints with (this package never resolves it, and it never emits any
// backdrop, so the scene composites onto a fully transparent background).
type Primitive struct {
	Path    geom.Path
	Color   color.NRGBA
	Width   float32
	Opacity float32
	Erase   bool
}

// Pipeline turns canvas state into an ordered primitive list. It memoizes
// the smoothed curve of committed commands, which is sound because committed
// commands are immutable; the in-progress command is smoothed from scratch
// on every call since its points are still growing.
type Pipeline struct {
	cache map[string]geom.Path
}

// NewPipeline creates a pipeline with an empty curve cache.
func NewPipeline() *Pipeline {
	return &Pipeline{cache: make(map[string]geom.Path)}
}

// Scene builds the primitive list for one frame: committed commands in log
// order (later strokes paint over earlier ones), then the in-progress
// command last so live ink is always topmost. Commands with fewer than two
// points smooth to an empty curve and are skipped, as are clear markers.
func (pl *Pipeline) Scene(c *state.Canvas) []Primitive {
	commands := c.Commands()

	// Drop cache entries for commands undone or cleared away since the
	// last frame.
	live := make(map[string]bool, len(commands))
	for _, cmd := range commands {
		live[cmd.ID] = true
	}
	for id := range pl.cache {
		if !live[id] {
			delete(pl.cache, id)
		}
	}

	out := make([]Primitive, 0, len(commands)+1)
	for _, cmd := range commands {
		path, ok := pl.cache[cmd.ID]
		if !ok {
			path = smoothCommand(cmd)
			pl.cache[cmd.ID] = path
		}
		if prim, ok := primitive(cmd, path); ok {
			out = append(out, prim)
		}
	}

	if cur, ok := c.InProgress(); ok {
		if prim, ok := primitive(&cur, smoothCommand(&cur)); ok {
			out = append(out, prim)
		}
	}
	return out
}

func smoothCommand(cmd *state.Command) geom.Path {
	if cmd.Kind == state.KindClear {
		return geom.Path{}
	}
	return geom.SmoothSimplified(cmd.Points)
}

func primitive(cmd *state.Command, path geom.Path) (Primitive, bool) {
	if path.Empty() {
		return Primitive{}, false
	}
	return Primitive{
		Path:    path,
		Color:   cmd.Style.Color,
		Width:   cmd.Style.Width,
		Opacity: cmd.Style.Opacity,
		Erase:   cmd.Kind == state.KindErase,
	}, true
}
