package model

// Video represents a single entry of the video catalog
type Video struct {
	ID       int64  `json:"id" db:"id"`
	FolderID int64  `json:"videofolderid" db:"videofolderid"`
	Name     string `json:"name" db:"name"`
	Type     string `json:"type" db:"type"`
	URL      string `json:"url" db:"url"`
	File     string `json:"file" db:"file"`
	// Hash is the content fingerprint; (Name, Hash) is the natural key
	Hash         string `json:"hash" db:"hash"`
	VideoImageID int64  `json:"videoimageid" db:"videoimageid"`
	// ImageURL is only populated by queries joining videoimage
	ImageURL string `json:"imageurl,omitempty" db:"imageurl"`
}

// VideoImage represents a preview image referenced by videos
type VideoImage struct {
	ID       int64  `json:"videoimageid" db:"videoimageid"`
	ImageURL string `json:"imageurl" db:"imageurl"`
}
