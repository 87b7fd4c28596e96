package backup

import "errors"

var (
	// ErrSnapshotNotFound возвращается, когда снапшот с указанным именем не существует
	ErrSnapshotNotFound = errors.New("backup.manager: snapshot not found")

	// ErrInvalidSnapshotName возвращается для имен вне каталога бэкапов
	ErrInvalidSnapshotName = errors.New("backup.manager: invalid snapshot name")

	// ErrWriteSnapshot возвращается при ошибке записи снапшота
	ErrWriteSnapshot = errors.New("backup.manager: failed to write snapshot")

	// ErrReadSnapshot возвращается при ошибке чтения снапшота
	ErrReadSnapshot = errors.New("backup.manager: failed to read snapshot")
)
