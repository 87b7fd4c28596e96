package backups

import "errors"

var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrInvalidSnapshot  = errors.New("invalid snapshot")
	ErrInternal         = errors.New("internal backups service error")
)
