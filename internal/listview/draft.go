package listview

import "context"

// The draft is write-only local state mirroring a create payload. It never
// aliases a fetched item: the list and the form hold no shared reference.

// SetDraft replaces the in-progress draft.
func (v *View[T, D]) SetDraft(d D) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.draft = d
}

// Draft returns the in-progress draft.
func (v *View[T, D]) Draft() D {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.draft
}

// ResetDraft restores the draft to its zero value.
func (v *View[T, D]) ResetDraft() {
	v.mu.Lock()
	defer v.mu.Unlock()
	var zero D
	v.draft = zero
}

// SubmitDraft submits the current draft through Create. On success the draft
// resets to its defaults; on any failure (validation included) it is kept
// intact so nothing the user typed is lost.
func (v *View[T, D]) SubmitDraft(ctx context.Context) error {
	if err := v.Create(ctx, v.Draft()); err != nil {
		return err
	}
	v.ResetDraft()
	return nil
}
