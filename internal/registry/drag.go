package registry

import (
	"context"
	"sync"
)

// Reorderer applies a single move in the custom list.
type Reorderer interface {
	ReorderCustomSites(ctx context.Context, from, to int) bool
}

// DragState is a snapshot of the gesture for presentation.
// Dragged and Target are nil when unset.
type DragState struct {
	EditMode bool `json:"editMode"`
	Dragged  *int `json:"dragged"`
	Target   *int `json:"target"`
}

// Active reports whether a drag is in progress.
func (s DragState) Active() bool {
	return s.Dragged != nil
}

// DragController tracks the drag-to-reorder gesture over the custom list:
// idle, dragging(i) and dragging(i, j). Drags only start in edit mode.
type DragController struct {
	mu       sync.Mutex
	list     Reorderer
	editMode bool
	dragged  int
	target   int
}

// NewDragController returns an idle controller with edit mode off.
func NewDragController(list Reorderer) *DragController {
	return &DragController{list: list, dragged: -1, target: -1}
}

// SetEditMode toggles edit mode. An in-flight gesture is left as is.
func (d *DragController) SetEditMode(on bool) {
	d.mu.Lock()
	d.editMode = on
	d.mu.Unlock()
}

// ToggleEditMode flips edit mode and returns the new value.
func (d *DragController) ToggleEditMode() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.editMode = !d.editMode
	return d.editMode
}

// Start begins dragging the custom site at index. Ignored outside edit
// mode or for a negative index. Restarting replaces the dragged index
// and clears the target.
func (d *DragController) Start(index int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.editMode || index < 0 {
		return false
	}
	d.dragged = index
	d.target = -1
	return true
}

// Hover marks index as the drop target. Ignored when idle or when
// hovering the dragged card itself.
func (d *DragController) Hover(index int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.dragged < 0 || index < 0 || index == d.dragged {
		return false
	}
	d.target = index
	return true
}

// Leave clears the drop target once the pointer has left every card.
// The drag itself continues.
func (d *DragController) Leave() {
	d.mu.Lock()
	d.target = -1
	d.mu.Unlock()
}

// Drop commits the move when both indices are set and differ, then
// returns to idle in every case. It reports whether the list changed.
func (d *DragController) Drop(ctx context.Context) bool {
	d.mu.Lock()
	from, to := d.dragged, d.target
	d.dragged, d.target = -1, -1
	d.mu.Unlock()

	if from < 0 || to < 0 || from == to {
		return false
	}
	return d.list.ReorderCustomSites(ctx, from, to)
}

// Cancel abandons the gesture without touching the list.
func (d *DragController) Cancel() {
	d.mu.Lock()
	d.dragged, d.target = -1, -1
	d.mu.Unlock()
}

// State returns a snapshot of the controller.
func (d *DragController) State() DragState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return DragState{
		EditMode: d.editMode,
		Dragged:  index(d.dragged),
		Target:   index(d.target),
	}
}

func index(i int) *int {
	if i < 0 {
		return nil
	}
	return &i
}
