package video

import (
	"context"

	"github.com/Taichi-iskw/webvideo/internal/model"
)

// DefaultVideoImageID is the videoimage row assigned to videos created through Create
const DefaultVideoImageID int64 = 1

// Repository defines operations for Video persistence.
//
// Batch operations run one statement per record without an enclosing
// transaction: the first failing record aborts the loop and every record
// before it stays committed.
//
// The video table is unique on (name, hash). Create, CreateBatch, Update and
// SaveBatch fail with a nested CONFLICT error when a record repeats an
// existing natural key.
type Repository interface {
	// GetByID retrieves a video by its ID, failing with NOT_FOUND when absent
	GetByID(ctx context.Context, id int64) (*model.Video, error)

	// GetByNameAndHash retrieves a video with its image URL by natural key.
	// It returns nil and no error when nothing matches.
	GetByNameAndHash(ctx context.Context, name, hash string) (*model.Video, error)

	// ListAll retrieves at most one video per distinct name, joined with its image
	ListAll(ctx context.Context) ([]*model.Video, error)

	// Create inserts a video bound to DefaultVideoImageID.
	// A duplicate id or (name, hash) fails with CONFLICT.
	Create(ctx context.Context, video *model.Video) error

	// CreateBatch inserts videos one by one. A duplicate (name, hash) stops the
	// batch with CONFLICT; earlier videos stay inserted.
	CreateBatch(ctx context.Context, videos []*model.Video) error

	// Update rewrites every column of the video identified by video.ID
	Update(ctx context.Context, video *model.Video) error

	// SaveBatch updates videos one by one
	SaveBatch(ctx context.Context, videos []*model.Video) error

	// Delete deletes a video by its ID
	Delete(ctx context.Context, id int64) error

	// DeleteBatch deletes videos one by one
	DeleteBatch(ctx context.Context, videos []*model.Video) error

	// DeleteAll removes every video. Failures are logged, never returned.
	DeleteAll(ctx context.Context)
}
