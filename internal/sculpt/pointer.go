package sculpt

import "github.com/tomiconicgit/TerrainCreator/pkg/math"

// Applier is what the pointer state machine drives on each drag sample.
// It matches Brush.Apply.
type Applier interface {
	Apply(hit math.Vec2, mode Mode, radiusTiles, step float32) error
}

// Committer is notified once per completed brush application so derived
// state (normals, overlay, marker) can be refreshed before the next frame.
type Committer interface {
	CommitStroke()
}

// Pointer is the Idle/Dragging state machine over sculpt input. The caller
// feeds it pointer events carrying local-space hit points already resolved
// by the external raycaster. Pointer-up must be delivered unconditionally,
// even when the pointer has left the canvas, or the machine sticks in
// Dragging.
type Pointer struct {
	brush     Applier
	committer Committer

	Mode        Mode
	RadiusTiles float32
	Step        float32

	dragging bool
	applying bool
}

// NewPointer creates a pointer machine with the given brush settings.
func NewPointer(brush Applier, committer Committer, mode Mode, radiusTiles, step float32) *Pointer {
	return &Pointer{
		brush:       brush,
		committer:   committer,
		Mode:        mode,
		RadiusTiles: radiusTiles,
		Step:        step,
	}
}

// Dragging reports whether a stroke is in progress.
func (p *Pointer) Dragging() bool {
	return p.dragging
}

// Down starts a stroke and applies the brush at the hit point.
func (p *Pointer) Down(hit math.Vec2) error {
	p.dragging = true
	return p.apply(hit)
}

// Move re-applies the brush at the new hit point while dragging. Moves while
// idle are ignored.
func (p *Pointer) Move(hit math.Vec2) error {
	if !p.dragging {
		return nil
	}
	return p.apply(hit)
}

// Up ends the stroke unconditionally.
func (p *Pointer) Up() {
	p.dragging = false
}

func (p *Pointer) apply(hit math.Vec2) error {
	// Re-entrancy guard: an application must not be triggered again from
	// within its own commit callback.
	if p.applying {
		return nil
	}
	p.applying = true
	defer func() { p.applying = false }()

	if err := p.brush.Apply(hit, p.Mode, p.RadiusTiles, p.Step); err != nil {
		return err
	}
	if p.committer != nil {
		p.committer.CommitStroke()
	}
	return nil
}
