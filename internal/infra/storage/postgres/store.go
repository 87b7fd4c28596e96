package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/helenacolabronze/booking-service/internal/domain"
	"github.com/helenacolabronze/booking-service/pkg/psqlbuilder"
)

// Хранилище документов в PostgreSQL: по одной строке на документ в таблице
// documents(name, body). Семантика та же, что у файлового бэкенда —
// документ читается и перезаписывается целиком, построчных обновлений нет.
//
// Схема:
//   CREATE TABLE documents (
//       name       TEXT PRIMARY KEY,
//       body       JSONB NOT NULL,
//       updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
//   );

const (
	documentsTable = "documents"

	scheduleDocumentName     = "schedule"
	reservationsDocumentName = "reservations"
)

// ScheduleStore хранилище документа расписания в PostgreSQL
type ScheduleStore struct {
	db DBExecutor
}

// NewScheduleStore создает хранилище расписания
func NewScheduleStore(db DBExecutor) *ScheduleStore {
	return &ScheduleStore{db: db}
}

// Load читает документ расписания целиком
func (s *ScheduleStore) Load(ctx context.Context) (domain.ScheduleDocument, error) {
	doc := domain.ScheduleDocument{}
	if err := loadDocument(ctx, s.db, scheduleDocumentName, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Store записывает документ расписания целиком
func (s *ScheduleStore) Store(ctx context.Context, doc domain.ScheduleDocument) error {
	return storeDocument(ctx, s.db, scheduleDocumentName, doc)
}

// ReservationStore хранилище документа бронирований в PostgreSQL
type ReservationStore struct {
	db DBExecutor
}

// NewReservationStore создает хранилище бронирований
func NewReservationStore(db DBExecutor) *ReservationStore {
	return &ReservationStore{db: db}
}

// Load читает документ бронирований целиком
func (s *ReservationStore) Load(ctx context.Context) (domain.ReservationsDocument, error) {
	doc := domain.ReservationsDocument{}
	if err := loadDocument(ctx, s.db, reservationsDocumentName, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Store записывает документ бронирований целиком
func (s *ReservationStore) Store(ctx context.Context, doc domain.ReservationsDocument) error {
	return storeDocument(ctx, s.db, reservationsDocumentName, doc)
}

// loadDocument читает тело документа по имени.
// Отсутствующая строка — не ошибка: dst остается пустым документом.
func loadDocument(ctx context.Context, db DBExecutor, name string, dst interface{}) error {
	query, args, err := psqlbuilder.Select("body").
		From(documentsTable).
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadDocument %s: %v", ErrBuildQuery, name, err)
	}

	var body []byte
	err = db.QueryRowContext(ctx, query, args...).Scan(&body)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: loadDocument %s: %v", ErrExecQuery, name, err)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: loadDocument %s: %v", ErrDecodeDocument, name, err)
	}
	return nil
}

// storeDocument перезаписывает тело документа по имени (upsert)
func storeDocument(ctx context.Context, db DBExecutor, name string, doc interface{}) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: storeDocument %s: %v", ErrEncodeDocument, name, err)
	}

	query, args, err := psqlbuilder.Insert(documentsTable).
		Columns("name", "body").
		Values(name, body).
		Suffix("ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: storeDocument %s: %v", ErrBuildQuery, name, err)
	}

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: storeDocument %s: %v", ErrExecQuery, name, err)
	}
	return nil
}
