package repository

import "errors"

var (
	// ErrFrameNotInProject signals that a frame exists but belongs to a
	// different project than the one addressed by the caller. Reported as an
	// ownership problem, distinct from not-found.
	ErrFrameNotInProject = errors.New("frame does not belong to the project")

	// ErrPositionConflict is a position_order uniqueness violation that
	// survived the internal retry; the caller may retry the request.
	ErrPositionConflict = errors.New("frame position conflict, retry the operation")

	// ErrReorderSetMismatch rejects a reorder whose id list does not exactly
	// match the project's current frame set.
	ErrReorderSetMismatch = errors.New("reorder list does not match the project's frames")
)
