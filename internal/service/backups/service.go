package backups

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/helenacolabronze/booking-service/internal/domain"
	"github.com/helenacolabronze/booking-service/internal/infra/storage/backup"
)

// Метки документов в именах снапшотов
const (
	labelSchedule     = "schedule"
	labelReservations = "reservations"
)

// Service снимает и восстанавливает снапшоты обоих документов
type Service struct {
	schedule     ScheduleStore
	reservations ReservationStore
	manager      SnapshotManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса бэкапов
func NewService(
	schedule ScheduleStore,
	reservations ReservationStore,
	manager SnapshotManager,
	logger Logger,
) *Service {
	return &Service{
		schedule:     schedule,
		reservations: reservations,
		manager:      manager,
		logger:       logger,
	}
}

// SnapshotAll снимает снапшоты расписания и записей. Вызывается после
// каждой админской мутации; ошибки здесь не должны ронять саму мутацию.
func (s *Service) SnapshotAll(ctx context.Context) error {
	scheduleDoc, err := s.schedule.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}
	if _, err := s.manager.Snapshot(labelSchedule, scheduleDoc); err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	reservationsDoc, err := s.reservations.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
	}
	if _, err := s.manager.Snapshot(labelReservations, reservationsDoc); err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return nil
}

// List возвращает доступные снапшоты, новые первыми
func (s *Service) List(_ context.Context) ([]backup.Snapshot, error) {
	snapshots, err := s.manager.List()
	if err != nil {
		s.logger.Error("ListBackups: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return snapshots, nil
}

// Restore перезаписывает живой документ содержимым снапшота.
// Какой документ восстанавливать, определяется меткой в имени файла.
func (s *Service) Restore(ctx context.Context, name string) error {
	data, err := s.manager.Read(name)
	if err != nil {
		switch {
		case errors.Is(err, backup.ErrSnapshotNotFound):
			return fmt.Errorf("%w: %s", ErrSnapshotNotFound, name)
		case errors.Is(err, backup.ErrInvalidSnapshotName):
			return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		default:
			s.logger.Error("RestoreBackup: read %s: %v", name, err)
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	snap, ok := parseLabel(name)
	if !ok {
		return fmt.Errorf("%w: %q has no recognizable document label", ErrInvalidSnapshot, name)
	}

	switch snap {
	case labelSchedule:
		var doc domain.ScheduleDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidSnapshot, name, err)
		}
		if err := s.schedule.Store(ctx, doc); err != nil {
			s.logger.Error("RestoreBackup: store schedule: %v", err)
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
	case labelReservations:
		var doc domain.ReservationsDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidSnapshot, name, err)
		}
		if err := s.reservations.Store(ctx, doc); err != nil {
			s.logger.Error("RestoreBackup: store reservations: %v", err)
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	s.logger.Info("RestoreBackup: restored %s", name)
	return nil
}

// parseLabel вытаскивает метку документа из имени снапшота
func parseLabel(name string) (string, bool) {
	for _, label := range []string{labelSchedule, labelReservations} {
		suffix := "_" + label + ".json"
		if len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix {
			return label, true
		}
	}
	return "", false
}
