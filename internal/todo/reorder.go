package todo

// Drag tracks a pick-up-and-drop gesture on the task list.
//
// The drop index is a position in the rendered view, but it is applied to
// the full store order. Under the "all" filter with manual sort the two
// agree; otherwise the next render re-filters and re-sorts over the moved
// task, which is the expected behaviour.
type Drag struct {
	taskID int
	active bool
}

// Start picks up the task with the given id.
func (d *Drag) Start(taskID int) {
	d.taskID = taskID
	d.active = true
}

// Cancel drops nothing.
func (d *Drag) Cancel() {
	d.active = false
}

// Dragging returns the id being dragged, if any.
func (d *Drag) Dragging() (int, bool) {
	return d.taskID, d.active
}

// Drop ends the gesture by moving the dragged task to targetIndex in s.
// It reports whether the store changed; dropping with nothing picked up or
// onto the task's own position is a no-op.
func (d *Drag) Drop(s *Store, targetIndex int) bool {
	if !d.active {
		return false
	}
	d.active = false
	return s.Reorder(d.taskID, targetIndex)
}
