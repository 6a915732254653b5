package video

import (
	"github.com/Taichi-iskw/webvideo/internal/model"
	"github.com/jackc/pgx/v5"
)

const (
	videoColumns       = "id, videofolderid, name, type, url, file, hash, videoimageid"
	joinedVideoColumns = "v.id, v.videofolderid, v.name, v.type, v.url, v.file, v.hash, v.videoimageid, vi.imageurl"
)

// scanVideo maps a row selected with videoColumns
func scanVideo(row pgx.Row) (*model.Video, error) {
	var v model.Video
	err := row.Scan(&v.ID, &v.FolderID, &v.Name, &v.Type, &v.URL, &v.File, &v.Hash, &v.VideoImageID)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// scanJoinedVideo maps a row selected with joinedVideoColumns
func scanJoinedVideo(row pgx.Row) (*model.Video, error) {
	var v model.Video
	err := row.Scan(&v.ID, &v.FolderID, &v.Name, &v.Type, &v.URL, &v.File, &v.Hash, &v.VideoImageID, &v.ImageURL)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// videoArgs returns the statement arguments in column order id, videofolderid, name, type, url, file, hash
func videoArgs(v *model.Video) []any {
	return []any{v.ID, v.FolderID, v.Name, v.Type, v.URL, v.File, v.Hash}
}
