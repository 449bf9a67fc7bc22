package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/almrmi/serramenti/internal/constant"
	"github.com/almrmi/serramenti/internal/model"
	"github.com/almrmi/serramenti/pkg/frame"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FrameRepository is the consistency boundary for a project's frame
// collection: every write that touches position_order goes through here, and
// surface_area is recomputed on every write that touches a dimension.
type FrameRepository struct {
	*baseRepository
	// appendLocks serializes the max-position read-then-write per project.
	// The unique index on (project_id, position_order) backs this up across
	// processes; see Create.
	appendLocks sync.Map
}

func newFrameRepository(br *baseRepository) *FrameRepository {
	return &FrameRepository{baseRepository: br}
}

func (fr *FrameRepository) projectLock(projectID string) *sync.Mutex {
	lock, _ := fr.appendLocks.LoadOrStore(projectID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// presetConfig loads the geometry config of the preset matching the given
// code. A missing preset is not an error: validation falls back to generic
// bounds, mirroring how unknown codes fall back to a single panel.
func (fr *FrameRepository) presetConfig(ctx context.Context, db *gorm.DB, code string) (*frame.PresetConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var preset model.FramePreset
	if err := db.WithContext(ctx).Model(&model.FramePreset{}).
		Where("code = ?", code).
		First(&preset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return preset.Config()
}

// Create appends a frame to its project with position = max + 1 (0 for an
// empty project). The per-project lock serializes concurrent appends in this
// process; if another process still wins the position, the unique index
// trips and the append is retried once with a fresh max read before giving
// up with ErrPositionConflict.
func (fr *FrameRepository) Create(ctx context.Context, tx *gorm.DB, f *model.Frame) (*model.Frame, error) {
	fr.logger.Debugf("Create frame in project %s with type %s", f.ProjectID, f.FrameType)

	db := fr.getDB(tx)

	cfg, err := fr.presetConfig(ctx, db, f.FrameType)
	if err != nil {
		return nil, err
	}
	if err := frame.ValidateDimensions(f.Width, f.Height, cfg); err != nil {
		return nil, err
	}

	f.RecomputeSurfaceArea()

	lock := fr.projectLock(f.ProjectID)
	lock.Lock()
	defer lock.Unlock()

	for attempt := 0; attempt < 2; attempt++ {
		err = fr.append(ctx, db, f)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		fr.logger.Debugf("Append position conflict on project %s, attempt %d", f.ProjectID, attempt+1)
		f.ID = ""
	}

	return nil, ErrPositionConflict
}

func (fr *FrameRepository) append(ctx context.Context, db *gorm.DB, f *model.Frame) error {
	return fr.withTx(db, func(tx *gorm.DB) error {
		qctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		var maxPosition int
		if err := tx.WithContext(qctx).Model(&model.Frame{}).
			Where("project_id = ?", f.ProjectID).
			Select("COALESCE(MAX(position_order), -1)").
			Scan(&maxPosition).Error; err != nil {
			return err
		}

		f.PositionOrder = maxPosition + 1
		return tx.WithContext(qctx).Create(f).Error
	})
}

// GetByIDInProject loads a frame and checks it belongs to the project.
// A frame living in another project yields ErrFrameNotInProject so the
// caller can answer with a forbidden rather than a not-found.
func (fr *FrameRepository) GetByIDInProject(ctx context.Context, tx *gorm.DB, frameID, projectID string) (*model.Frame, error) {
	fr.logger.Debugf("Get frame %s in project %s", frameID, projectID)

	db := fr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var f model.Frame
	if err := db.WithContext(ctx).Model(&model.Frame{}).
		Where("id = ?", frameID).
		First(&f).Error; err != nil {
		return nil, err
	}

	if f.ProjectID != projectID {
		return nil, ErrFrameNotInProject
	}

	return &f, nil
}

// FrameUpdate carries a partial frame update. Nil fields are left unchanged;
// a provided position moves the frame within the sequence.
type FrameUpdate struct {
	FrameType     *string
	OpeningType   *string
	Width         *int
	Height        *int
	PositionOrder *int
	Configuration datatypes.JSON
}

// Update applies a partial update. surface_area is recomputed whenever the
// patch touches width or height, never left stale. A position change is a
// remove-and-insert over the whole sequence, applied atomically.
func (fr *FrameRepository) Update(ctx context.Context, tx *gorm.DB, projectID, frameID string, update FrameUpdate) (*model.Frame, error) {
	fr.logger.Debugf("Update frame %s in project %s", frameID, projectID)

	db := fr.getDB(tx)

	f, err := fr.GetByIDInProject(ctx, db, frameID, projectID)
	if err != nil {
		return nil, err
	}

	if update.FrameType != nil {
		f.FrameType = *update.FrameType
	}
	if update.OpeningType != nil {
		f.OpeningType = update.OpeningType
	}

	dimensionsTouched := update.Width != nil || update.Height != nil
	if update.Width != nil {
		f.Width = update.Width
	}
	if update.Height != nil {
		f.Height = update.Height
	}
	if update.Configuration != nil {
		f.Configuration = update.Configuration
	}

	cfg, err := fr.presetConfig(ctx, db, f.FrameType)
	if err != nil {
		return nil, err
	}
	if err := frame.ValidateDimensions(f.Width, f.Height, cfg); err != nil {
		return nil, err
	}

	if dimensionsTouched {
		f.RecomputeSurfaceArea()
	}

	err = fr.withTx(db, func(tx *gorm.DB) error {
		qctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		if err := tx.WithContext(qctx).Model(&model.Frame{}).
			Where("id = ?", f.ID).
			Select("FrameType", "OpeningType", "Width", "Height", "SurfaceArea", "Configuration").
			Updates(f).Error; err != nil {
			return err
		}

		if update.PositionOrder != nil {
			return fr.moveWithinTx(qctx, tx, projectID, frameID, *update.PositionOrder)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return fr.GetByIDInProject(ctx, db, frameID, projectID)
}

// moveWithinTx moves one frame to targetPosition, shifting the others while
// keeping their relative order. Runs inside the caller's transaction.
func (fr *FrameRepository) moveWithinTx(ctx context.Context, tx *gorm.DB, projectID, frameID string, targetPosition int) error {
	ids, err := fr.orderedFrameIDs(ctx, tx, projectID)
	if err != nil {
		return err
	}

	currentIndex := -1
	for i, id := range ids {
		if id == frameID {
			currentIndex = i
			break
		}
	}
	if currentIndex == -1 {
		return ErrFrameNotInProject
	}

	if targetPosition < 0 {
		targetPosition = 0
	}
	if targetPosition > len(ids)-1 {
		targetPosition = len(ids) - 1
	}

	reordered := make([]string, 0, len(ids))
	reordered = append(reordered, ids[:currentIndex]...)
	reordered = append(reordered, ids[currentIndex+1:]...)
	reordered = append(reordered[:targetPosition], append([]string{frameID}, reordered[targetPosition:]...)...)

	return fr.writeOrder(ctx, tx, projectID, reordered)
}

// Delete removes the frame and renumbers the remaining frames of the project
// to a dense 0..n-1 sequence, preserving their relative order. The rewrite is
// unconditional over the whole sequence so no gap survives interleaved
// deletes.
func (fr *FrameRepository) Delete(ctx context.Context, tx *gorm.DB, projectID, frameID string) error {
	fr.logger.Debugf("Delete frame %s in project %s", frameID, projectID)

	db := fr.getDB(tx)

	if _, err := fr.GetByIDInProject(ctx, db, frameID, projectID); err != nil {
		return err
	}

	return fr.withTx(db, func(tx *gorm.DB) error {
		qctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		if err := tx.WithContext(qctx).Delete(&model.Frame{}, "id = ?", frameID).Error; err != nil {
			return err
		}

		ids, err := fr.orderedFrameIDs(qctx, tx, projectID)
		if err != nil {
			return err
		}

		// Ascending rewrite: every frame moves to a position at or below its
		// old one, so the unique index never trips.
		for i, id := range ids {
			if err := tx.WithContext(qctx).Model(&model.Frame{}).
				Where("id = ? AND position_order <> ?", id, i).
				Update("position_order", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Reorder assigns position i to the i-th id of orderedIDs. The supplied set
// must exactly match the project's current frames; any mismatch rejects the
// whole call before a single position is written.
func (fr *FrameRepository) Reorder(ctx context.Context, tx *gorm.DB, projectID string, orderedIDs []string) error {
	fr.logger.Debugf("Reorder %d frames in project %s", len(orderedIDs), projectID)

	db := fr.getDB(tx)

	return fr.withTx(db, func(tx *gorm.DB) error {
		qctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		currentIDs, err := fr.orderedFrameIDs(qctx, tx, projectID)
		if err != nil {
			return err
		}

		if err := matchFrameSet(currentIDs, orderedIDs); err != nil {
			return err
		}

		return fr.writeOrder(qctx, tx, projectID, orderedIDs)
	})
}

// writeOrder rewrites the full position sequence inside a transaction. The
// first pass parks every position in the negative range so the second pass
// can assign 0..n-1 without transiently violating the unique index.
func (fr *FrameRepository) writeOrder(ctx context.Context, tx *gorm.DB, projectID string, orderedIDs []string) error {
	if err := tx.WithContext(ctx).Model(&model.Frame{}).
		Where("project_id = ?", projectID).
		Update("position_order", gorm.Expr("-position_order - 1")).Error; err != nil {
		return err
	}

	for i, id := range orderedIDs {
		if err := tx.WithContext(ctx).Model(&model.Frame{}).
			Where("id = ? AND project_id = ?", id, projectID).
			Update("position_order", i).Error; err != nil {
			return err
		}
	}

	return nil
}

func (fr *FrameRepository) orderedFrameIDs(ctx context.Context, tx *gorm.DB, projectID string) ([]string, error) {
	var ids []string
	if err := tx.WithContext(ctx).Model(&model.Frame{}).
		Where("project_id = ?", projectID).
		Order("position_order ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func matchFrameSet(currentIDs, suppliedIDs []string) error {
	if len(suppliedIDs) != len(currentIDs) {
		return fmt.Errorf("%w: got %d ids, project has %d frames", ErrReorderSetMismatch, len(suppliedIDs), len(currentIDs))
	}

	current := make(map[string]bool, len(currentIDs))
	for _, id := range currentIDs {
		current[id] = true
	}

	seen := make(map[string]bool, len(suppliedIDs))
	for _, id := range suppliedIDs {
		if !current[id] {
			return fmt.Errorf("%w: id %s is not a frame of the project", ErrReorderSetMismatch, id)
		}
		if seen[id] {
			return fmt.Errorf("%w: id %s appears more than once", ErrReorderSetMismatch, id)
		}
		seen[id] = true
	}

	return nil
}
