package videoimage

import (
	"context"

	"github.com/Taichi-iskw/webvideo/internal/model"
)

// Repository defines operations for VideoImage persistence
type Repository interface {
	// Create creates a new video image record
	Create(ctx context.Context, image *model.VideoImage) error

	// GetByID retrieves a video image by its ID
	GetByID(ctx context.Context, id int64) (*model.VideoImage, error)

	// List retrieves every video image ordered by ID
	List(ctx context.Context) ([]*model.VideoImage, error)

	// DeleteAll removes every video image
	DeleteAll(ctx context.Context) error
}
