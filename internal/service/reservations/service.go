package reservations

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/helenacolabronze/booking-service/internal/domain"
	"github.com/helenacolabronze/booking-service/internal/service/reservations/models"
)

// Service сервис управления записями клиентов (админ-панель)
type Service struct {
	store     ReservationStore
	notifier  Notifier
	snapshots Snapshotter
	logger    Logger
}

// NewService создает новый экземпляр сервиса записей.
// notifier может быть nil, тогда рассылка напоминаний недоступна.
func NewService(
	store ReservationStore,
	notifier Notifier,
	snapshots Snapshotter,
	logger Logger,
) *Service {
	return &Service{
		store:     store,
		notifier:  notifier,
		snapshots: snapshots,
		logger:    logger,
	}
}

// ListByDate возвращает записи на дату в порядке их создания
func (s *Service) ListByDate(ctx context.Context, date string) (*models.DayReservationsResponse, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("ListReservations: failed to load reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
	}

	list := doc[date]
	if list == nil {
		list = []domain.Reservation{}
	}

	return &models.DayReservationsResponse{Date: date, Reservations: list}, nil
}

// Report агрегирует записи за период, границы включительно
func (s *Service) Report(ctx context.Context, startDate, endDate string) (*models.ReportResponse, error) {
	start, err := time.Parse(domain.DateFormat, startDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, startDate)
	}
	end, err := time.Parse(domain.DateFormat, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, endDate)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s is after %s", ErrInvalidDateRange, startDate, endDate)
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("Report: failed to load reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
	}

	report := &models.ReportResponse{
		StartDate: startDate,
		EndDate:   endDate,
		Days:      []models.ReportDay{},
	}

	dates := make([]string, 0, len(doc))
	for date := range doc {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		day, err := time.Parse(domain.DateFormat, date)
		if err != nil {
			s.logger.Warn("Report: skipping malformed date key %q", date)
			continue
		}
		if day.Before(start) || day.After(end) {
			continue
		}
		list := doc[date]
		if len(list) == 0 {
			continue
		}
		report.Days = append(report.Days, models.ReportDay{
			Date:         date,
			Count:        len(list),
			Reservations: list,
		})
		report.Total += len(list)
	}

	return report, nil
}

// CancelByPosition отменяет запись по её порядковому номеру в списке дня,
// нумерация с единицы. Освобожденный слот обратно в расписание не возвращается,
// администратор открывает его заново вручную.
func (s *Service) CancelByPosition(ctx context.Context, date string, position int) (*domain.Reservation, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("CancelReservation: failed to load reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
	}

	list := doc[date]
	if position < 1 || position > len(list) {
		return nil, fmt.Errorf("%w: position %d, day has %d reservations", ErrPositionOutOfRange, position, len(list))
	}

	cancelled := list[position-1]

	updated := make([]domain.Reservation, 0, len(list)-1)
	updated = append(updated, list[:position-1]...)
	updated = append(updated, list[position:]...)
	doc[date] = updated

	if err := s.store.Store(ctx, doc); err != nil {
		s.logger.Error("CancelReservation: failed to store reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to store reservations: %v", ErrInternal, err)
	}

	if err := s.snapshots.SnapshotAll(ctx); err != nil {
		s.logger.Warn("CancelReservation: snapshot failed: %v", err)
	}

	s.logger.Info("CancelReservation: date=%s, position=%d, slot=%s", date, position, cancelled.Slot)

	return &cancelled, nil
}

// ClearDay удаляет все записи на дату. Пустой день остается в документе
// пустым списком, чтобы было видно, что очистка была намеренной.
func (s *Service) ClearDay(ctx context.Context, date string) (int, error) {
	if err := validateDate(date); err != nil {
		return 0, err
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("ClearDay: failed to load reservations: %v", err)
		return 0, fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
	}

	removed := len(doc[date])
	doc[date] = []domain.Reservation{}

	if err := s.store.Store(ctx, doc); err != nil {
		s.logger.Error("ClearDay: failed to store reservations: %v", err)
		return 0, fmt.Errorf("%w: failed to store reservations: %v", ErrInternal, err)
	}

	if err := s.snapshots.SnapshotAll(ctx); err != nil {
		s.logger.Warn("ClearDay: snapshot failed: %v", err)
	}

	s.logger.Info("ClearDay: date=%s, removed=%d", date, removed)

	return removed, nil
}

// SendReminders рассылает напоминание каждому клиенту с записью на дату.
// Сбой одной отправки не прерывает остальные.
func (s *Service) SendReminders(ctx context.Context, date string) (*models.RemindersResponse, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	if s.notifier == nil {
		return nil, ErrNotifierDisabled
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("SendReminders: failed to load reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
	}

	resp := &models.RemindersResponse{Date: date}
	for _, r := range doc[date] {
		if _, err := s.notifier.SendReminder(ctx, r.ClientPhone, r.ClientName, date, r.Slot.String()); err != nil {
			s.logger.Warn("SendReminders: date=%s, phone=%s: %v", date, r.ClientPhone, err)
			resp.Failed++
			continue
		}
		resp.Sent++
	}

	s.logger.Info("SendReminders: date=%s, sent=%d, failed=%d", date, resp.Sent, resp.Failed)

	return resp, nil
}

func validateDate(date string) error {
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}
