package state

import (
	"sync"

	"InkPad/internal/geom"
)

// Zoom limits, matching what stays usable on a desktop surface.
const (
	minScale = 0.3
	maxScale = 3.0
)

// Canvas owns the whole drawing state: the committed command log, the single
// in-progress command, the view transform, and the surface dimensions. All
// pointer handling goes through it, one gesture at a time. Methods never
// fail; malformed event sequences (a move with no gesture active, undo on an
// empty log) degrade to no-ops so input jitter can never wedge drawing.
//
// A RWMutex guards the state because fyne may paint from a different
// goroutine than the one delivering events. Committed commands are immutable,
// so read snapshots can share them without copying; only the in-progress
// command is copied out.
type Canvas struct {
	mu         sync.RWMutex
	log        Log
	inProgress *Command
	view       ViewTransform
	width      float32
	height     float32
}

// NewCanvas creates an idle canvas with an identity view transform.
func NewCanvas() *Canvas {
	return &Canvas{view: ViewTransform{Scale: 1}}
}

// PointerDown starts a gesture at a canvas-local point, snapshotting the
// tool settings at this instant. If a gesture is somehow already active
// (overlapping pointers, missed pointer-up), the in-flight stroke is
// committed first and a fresh one starts; partial ink is never dropped.
func (c *Canvas) PointerDown(pt geom.Point, ts ToolSettings) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inProgress != nil {
		c.log.Append(c.inProgress)
	}
	c.inProgress = newCommand(pt, ts)
}

// PointerMove extends the active gesture. No-op while idle.
func (c *Canvas) PointerMove(pt geom.Point) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inProgress == nil {
		return
	}
	c.inProgress.Points = append(c.inProgress.Points, pt)
}

// PointerUp commits the active gesture to the end of the log. No-op while
// idle.
func (c *Canvas) PointerUp() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inProgress == nil {
		return
	}
	c.log.Append(c.inProgress)
	c.inProgress = nil
}

// PointerCancel has the same effect as PointerUp: a cancelled gesture still
// commits the partial stroke it captured.
func (c *Canvas) PointerCancel() {
	c.PointerUp()
}

// Undo removes the most recent committed command, if any. An active gesture
// is untouched.
func (c *Canvas) Undo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.log.Undo()
}

// Clear drops the whole history and abandons any active gesture.
func (c *Canvas) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log.Clear()
	c.inProgress = nil
}

// Drawing reports whether a gesture is active.
func (c *Canvas) Drawing() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inProgress != nil
}

// Commands returns a snapshot of the committed history in commit order.
func (c *Canvas) Commands() []*Command {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.log.Commands()
}

// Len returns the number of committed commands.
func (c *Canvas) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.log.Len()
}

// InProgress returns a copy of the active command, if any. The points slice
// is copied because it keeps growing while the gesture lasts; callers must
// re-read it every frame rather than hold on to the result.
func (c *Canvas) InProgress() (Command, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.inProgress == nil {
		return Command{}, false
	}
	cmd := *c.inProgress
	cmd.Points = make([]geom.Point, len(c.inProgress.Points))
	copy(cmd.Points, c.inProgress.Points)
	return cmd, true
}

// Pan shifts the view by a device-space delta.
func (c *Canvas) Pan(dx, dy float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.OffsetX += dx
	c.view.OffsetY += dy
}

// Zoom scales the view by factor, clamped to the usable range.
func (c *Canvas) Zoom(factor float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.view.Scale * factor
	if s < minScale {
		s = minScale
	}
	if s > maxScale {
		s = maxScale
	}
	c.view.Scale = s
}

// ResetView restores the identity transform.
func (c *Canvas) ResetView() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = ViewTransform{Scale: 1}
}

// View returns the current view transform.
func (c *Canvas) View() ViewTransform {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.view
}

// Resize records the surface dimensions reported by the host.
func (c *Canvas) Resize(w, h float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.width, c.height = w, h
}

// Size returns the last reported surface dimensions.
func (c *Canvas) Size() (w, h float32) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.width, c.height
}
