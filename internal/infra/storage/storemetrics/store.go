package storemetrics

import (
	"context"
	"time"

	"github.com/helenacolabronze/booking-service/internal/domain"
	"github.com/helenacolabronze/booking-service/pkg/metrics"
)

// Декораторы хранилищ документов, снимающие prometheus метрики с каждой
// операции Load/Store. Оборачивают любой бэкенд (json, sheets, postgres),
// не меняя его семантику.

// ScheduleStore интерфейс хранилища расписания
type ScheduleStore interface {
	Load(ctx context.Context) (domain.ScheduleDocument, error)
	Store(ctx context.Context, doc domain.ScheduleDocument) error
}

// ReservationStore интерфейс хранилища бронирований
type ReservationStore interface {
	Load(ctx context.Context) (domain.ReservationsDocument, error)
	Store(ctx context.Context, doc domain.ReservationsDocument) error
}

// MeasuredScheduleStore хранилище расписания с метриками
type MeasuredScheduleStore struct {
	next    ScheduleStore
	metrics *metrics.Metrics
}

// WrapSchedule оборачивает хранилище расписания сбором метрик
func WrapSchedule(next ScheduleStore, m *metrics.Metrics) *MeasuredScheduleStore {
	return &MeasuredScheduleStore{next: next, metrics: m}
}

// Load читает документ, фиксируя длительность и результат
func (s *MeasuredScheduleStore) Load(ctx context.Context) (domain.ScheduleDocument, error) {
	start := time.Now()
	doc, err := s.next.Load(ctx)
	s.metrics.ObserveStoreOperation("schedule", "load", time.Since(start), err)
	return doc, err
}

// Store записывает документ, фиксируя длительность и результат
func (s *MeasuredScheduleStore) Store(ctx context.Context, doc domain.ScheduleDocument) error {
	start := time.Now()
	err := s.next.Store(ctx, doc)
	s.metrics.ObserveStoreOperation("schedule", "store", time.Since(start), err)
	return err
}

// MeasuredReservationStore хранилище бронирований с метриками
type MeasuredReservationStore struct {
	next    ReservationStore
	metrics *metrics.Metrics
}

// WrapReservations оборачивает хранилище бронирований сбором метрик
func WrapReservations(next ReservationStore, m *metrics.Metrics) *MeasuredReservationStore {
	return &MeasuredReservationStore{next: next, metrics: m}
}

// Load читает документ, фиксируя длительность и результат
func (s *MeasuredReservationStore) Load(ctx context.Context) (domain.ReservationsDocument, error) {
	start := time.Now()
	doc, err := s.next.Load(ctx)
	s.metrics.ObserveStoreOperation("reservations", "load", time.Since(start), err)
	return doc, err
}

// Store записывает документ, фиксируя длительность и результат
func (s *MeasuredReservationStore) Store(ctx context.Context, doc domain.ReservationsDocument) error {
	start := time.Now()
	err := s.next.Store(ctx, doc)
	s.metrics.ObserveStoreOperation("reservations", "store", time.Since(start), err)
	return err
}
