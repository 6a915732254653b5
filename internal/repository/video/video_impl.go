package video

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/Taichi-iskw/webvideo/internal/errors"
	"github.com/Taichi-iskw/webvideo/internal/model"
	"github.com/Taichi-iskw/webvideo/internal/repository/common"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const (
	getByIDSQL = "SELECT " + videoColumns + " FROM video WHERE id = $1"

	getByNameAndHashSQL = "SELECT " + joinedVideoColumns + " FROM video v" +
		" JOIN videoimage vi ON v.videoimageid = vi.videoimageid" +
		" WHERE v.name = $1 AND v.hash = $2"

	// DISTINCT ON keeps the lowest id per name
	listAllSQL = "SELECT DISTINCT ON (v.name) " + joinedVideoColumns + " FROM video v" +
		" JOIN videoimage vi ON v.videoimageid = vi.videoimageid" +
		" ORDER BY v.name, v.id"

	insertSQL = "INSERT INTO video (" + videoColumns + ") VALUES ($1, $2, $3, $4, $5, $6, $7, $8)"

	updateSQL = "UPDATE video SET videofolderid = $2, name = $3, type = $4, url = $5, file = $6, hash = $7, videoimageid = $8 WHERE id = $1"

	deleteSQL = "DELETE FROM video WHERE id = $1"

	deleteAllSQL = "DELETE FROM video"
)

// videoRepository implements Repository using PostgreSQL
type videoRepository struct {
	pool   common.Pool
	logger zerolog.Logger
}

// NewRepository creates a new instance of Repository
func NewRepository(pool common.Pool, logger zerolog.Logger) Repository {
	return &videoRepository{
		pool:   pool,
		logger: logger.With().Str("component", "video_repository").Logger(),
	}
}

// GetByID retrieves a video by its ID
func (r *videoRepository) GetByID(ctx context.Context, id int64) (*model.Video, error) {
	video, err := scanVideo(r.pool.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(err, apperrors.CodeNotFound, "video does not exist")
		}
		return nil, common.HandlePostgreSQLError(err, "failed to get video")
	}
	return video, nil
}

// GetByNameAndHash retrieves a video by name and hash together with its image URL
func (r *videoRepository) GetByNameAndHash(ctx context.Context, name, hash string) (*model.Video, error) {
	video, err := scanJoinedVideo(r.pool.QueryRow(ctx, getByNameAndHashSQL, name, hash))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, common.HandlePostgreSQLError(err, "failed to get video by name and hash")
	}
	return video, nil
}

// ListAll retrieves one video per distinct name
func (r *videoRepository) ListAll(ctx context.Context) ([]*model.Video, error) {
	rows, err := r.pool.Query(ctx, listAllSQL)
	if err != nil {
		return nil, common.HandlePostgreSQLError(err, "failed to list videos")
	}
	defer rows.Close()

	videos := []*model.Video{}
	for rows.Next() {
		video, err := scanJoinedVideo(rows)
		if err != nil {
			return nil, common.HandlePostgreSQLError(err, "failed to scan video row")
		}
		videos = append(videos, video)
	}

	if err := rows.Err(); err != nil {
		return nil, common.HandlePostgreSQLError(err, "failed to iterate video rows")
	}

	return videos, nil
}

// Create inserts a new video record
func (r *videoRepository) Create(ctx context.Context, video *model.Video) error {
	if err := r.insert(ctx, video); err != nil {
		return common.HandlePostgreSQLError(err, "failed to create video")
	}
	return nil
}

// CreateBatch inserts videos sequentially, stopping at the first failure
func (r *videoRepository) CreateBatch(ctx context.Context, videos []*model.Video) error {
	for i, video := range videos {
		if err := r.insert(ctx, video); err != nil {
			return common.HandlePostgreSQLError(err, batchMessage("create", i, len(videos)))
		}
	}
	return nil
}

// Update rewrites every column of an existing video record
func (r *videoRepository) Update(ctx context.Context, video *model.Video) error {
	if err := r.update(ctx, video); err != nil {
		return common.HandlePostgreSQLError(err, "failed to update video")
	}
	return nil
}

// SaveBatch updates videos sequentially, stopping at the first failure
func (r *videoRepository) SaveBatch(ctx context.Context, videos []*model.Video) error {
	for i, video := range videos {
		if err := r.update(ctx, video); err != nil {
			return common.HandlePostgreSQLError(err, batchMessage("save", i, len(videos)))
		}
	}
	return nil
}

// Delete deletes a video by its ID
func (r *videoRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, deleteSQL, id); err != nil {
		return common.HandlePostgreSQLError(err, "failed to delete video")
	}
	return nil
}

// DeleteBatch deletes videos sequentially, stopping at the first failure
func (r *videoRepository) DeleteBatch(ctx context.Context, videos []*model.Video) error {
	for i, video := range videos {
		if _, err := r.pool.Exec(ctx, deleteSQL, video.ID); err != nil {
			return common.HandlePostgreSQLError(err, batchMessage("delete", i, len(videos)))
		}
	}
	return nil
}

// DeleteAll removes every video record on a best-effort basis
func (r *videoRepository) DeleteAll(ctx context.Context) {
	tag, err := r.pool.Exec(ctx, deleteAllSQL)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to delete all videos")
		return
	}
	r.logger.Debug().Int64("rows", tag.RowsAffected()).Msg("deleted all videos")
}

// insert binds the sentinel image ID instead of video.VideoImageID
func (r *videoRepository) insert(ctx context.Context, video *model.Video) error {
	args := append(videoArgs(video), DefaultVideoImageID)
	if _, err := r.pool.Exec(ctx, insertSQL, args...); err != nil {
		return err
	}
	video.VideoImageID = DefaultVideoImageID
	return nil
}

func (r *videoRepository) update(ctx context.Context, video *model.Video) error {
	args := append(videoArgs(video), video.VideoImageID)
	_, err := r.pool.Exec(ctx, updateSQL, args...)
	return err
}

func batchMessage(op string, index, total int) string {
	return fmt.Sprintf("failed to %s video %d of %d in batch", op, index+1, total)
}
