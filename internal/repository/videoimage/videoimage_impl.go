package videoimage

import (
	"context"
	"errors"

	apperrors "github.com/Taichi-iskw/webvideo/internal/errors"
	"github.com/Taichi-iskw/webvideo/internal/model"
	"github.com/Taichi-iskw/webvideo/internal/repository/common"
	"github.com/jackc/pgx/v5"
)

// videoImageRepository implements Repository using PostgreSQL
type videoImageRepository struct {
	pool common.Pool
}

// NewRepository creates a new instance of Repository
func NewRepository(pool common.Pool) Repository {
	return &videoImageRepository{
		pool: pool,
	}
}

// Create creates a new video image record
func (r *videoImageRepository) Create(ctx context.Context, image *model.VideoImage) error {
	sql := "INSERT INTO videoimage (videoimageid, imageurl) VALUES ($1, $2)"
	_, err := r.pool.Exec(ctx, sql, image.ID, image.ImageURL)
	if err != nil {
		return common.HandlePostgreSQLError(err, "failed to create video image")
	}
	return nil
}

// GetByID retrieves a video image by its ID
func (r *videoImageRepository) GetByID(ctx context.Context, id int64) (*model.VideoImage, error) {
	sql := "SELECT videoimageid, imageurl FROM videoimage WHERE videoimageid = $1"
	row := r.pool.QueryRow(ctx, sql, id)

	var image model.VideoImage
	err := row.Scan(&image.ID, &image.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(err, apperrors.CodeNotFound, "video image does not exist")
		}
		return nil, common.HandlePostgreSQLError(err, "failed to get video image")
	}

	return &image, nil
}

// List retrieves every video image ordered by ID
func (r *videoImageRepository) List(ctx context.Context) ([]*model.VideoImage, error) {
	sql := "SELECT videoimageid, imageurl FROM videoimage ORDER BY videoimageid"
	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, common.HandlePostgreSQLError(err, "failed to list video images")
	}
	defer rows.Close()

	images := []*model.VideoImage{}
	for rows.Next() {
		var image model.VideoImage
		if err := rows.Scan(&image.ID, &image.ImageURL); err != nil {
			return nil, common.HandlePostgreSQLError(err, "failed to scan video image row")
		}
		images = append(images, &image)
	}

	if err := rows.Err(); err != nil {
		return nil, common.HandlePostgreSQLError(err, "failed to iterate video image rows")
	}

	return images, nil
}

// DeleteAll removes every video image
func (r *videoImageRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, "DELETE FROM videoimage"); err != nil {
		return common.HandlePostgreSQLError(err, "failed to delete video images")
	}
	return nil
}
