package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/helenacolabronze/booking-service/internal/domain"
)

// Хранилище на плоских JSON файлах: один файл — один документ.
// Каждое чтение загружает документ целиком, каждая запись заменяет файл
// целиком. Отсутствующий или пустой файл читается как пустой документ.

// ScheduleStore файловое хранилище документа расписания
type ScheduleStore struct {
	path string
}

// NewScheduleStore создает файловое хранилище расписания
func NewScheduleStore(path string) *ScheduleStore {
	return &ScheduleStore{path: path}
}

// Load читает документ расписания целиком
func (s *ScheduleStore) Load(_ context.Context) (domain.ScheduleDocument, error) {
	doc := domain.ScheduleDocument{}
	if err := readDocument(s.path, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Store записывает документ расписания целиком
func (s *ScheduleStore) Store(_ context.Context, doc domain.ScheduleDocument) error {
	return writeDocument(s.path, doc)
}

// ReservationStore файловое хранилище документа бронирований
type ReservationStore struct {
	path string
}

// NewReservationStore создает файловое хранилище бронирований
func NewReservationStore(path string) *ReservationStore {
	return &ReservationStore{path: path}
}

// Load читает документ бронирований целиком
func (s *ReservationStore) Load(_ context.Context) (domain.ReservationsDocument, error) {
	doc := domain.ReservationsDocument{}
	if err := readDocument(s.path, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Store записывает документ бронирований целиком
func (s *ReservationStore) Store(_ context.Context, doc domain.ReservationsDocument) error {
	return writeDocument(s.path, doc)
}

// readDocument читает JSON документ из файла.
// Отсутствующий или пустой файл — не ошибка: dst остается пустым документом.
func readDocument(path string, dst interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: %s: %v", ErrReadDocument, path, err)
	}

	// Файлы, отредактированные вручную под Windows, могут начинаться с BOM
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecodeDocument, path, err)
	}
	return nil
}

// writeDocument записывает документ в файл с отступами, заменяя содержимое целиком
func writeDocument(path string, doc interface{}) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteDocument, path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: mkdir %s: %v", ErrWriteDocument, dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteDocument, path, err)
	}
	return nil
}
