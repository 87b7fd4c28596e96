package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/helenacolabronze/booking-service/internal/domain"
	"github.com/helenacolabronze/booking-service/internal/service/schedule/models"
	"github.com/helenacolabronze/booking-service/pkg/types"
)

// Service сервис управления расписанием (админ-панель).
// Конкурентного контракта нет: предполагается один доверенный оператор.
type Service struct {
	schedule     ScheduleStore
	reservations ReservationStore
	snapshots    Snapshotter
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	schedule ScheduleStore,
	reservations ReservationStore,
	snapshots Snapshotter,
	logger Logger,
) *Service {
	return &Service{
		schedule:     schedule,
		reservations: reservations,
		snapshots:    snapshots,
		logger:       logger,
	}
}

// Get возвращает конфигурацию дня. Для ненастроенной даты возвращает
// открытый день без слотов — как дефолт в админ-панели.
func (s *Service) Get(ctx context.Context, date string) (*models.DayScheduleResponse, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	doc, err := s.schedule.Load(ctx)
	if err != nil {
		s.logger.Error("GetDaySchedule: failed to load schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	cfg, configured := doc.DayConfigFor(date)

	reservations, err := s.reservations.Load(ctx)
	if err != nil {
		s.logger.Error("GetDaySchedule: failed to load reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
	}

	reserved := make([]string, 0, len(reservations[date]))
	for _, r := range reservations[date] {
		reserved = append(reserved, r.Slot.String())
	}

	return &models.DayScheduleResponse{
		Date:           date,
		Blocked:        cfg.Blocked,
		AvailableSlots: slotStrings(cfg.AvailableSlots),
		ReservedSlots:  reserved,
		Configured:     configured,
	}, nil
}

// Update безусловно перезаписывает конфигурацию дня целиком.
// Заблокированный день не предлагает слоты, список очищается.
func (s *Service) Update(ctx context.Context, date string, req *models.UpdateDayScheduleRequest) (*models.DayScheduleResponse, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	slots, err := parseSlots(req.AvailableSlots)
	if err != nil {
		s.logger.Warn("UpdateDaySchedule: date=%s: %v", date, err)
		return nil, err
	}

	if req.Blocked {
		slots = []types.TimeString{}
	}

	doc, err := s.schedule.Load(ctx)
	if err != nil {
		s.logger.Error("UpdateDaySchedule: failed to load schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	doc[date] = domain.DayConfig{Blocked: req.Blocked, AvailableSlots: slots}

	if err := s.schedule.Store(ctx, doc); err != nil {
		s.logger.Error("UpdateDaySchedule: failed to store schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to store schedule: %v", ErrInternal, err)
	}

	// Снапшот после успешной мутации; его ошибка не отменяет сохранение
	if err := s.snapshots.SnapshotAll(ctx); err != nil {
		s.logger.Warn("UpdateDaySchedule: snapshot failed: %v", err)
	}

	s.logger.Info("UpdateDaySchedule: date=%s, blocked=%v, slots=%d", date, req.Blocked, len(slots))

	return &models.DayScheduleResponse{
		Date:           date,
		Blocked:        req.Blocked,
		AvailableSlots: slotStrings(slots),
		ReservedSlots:  []string{},
		Configured:     true,
	}, nil
}

// parseSlots валидирует слоты по каталогу и убирает дубликаты, сохраняя порядок
func parseSlots(raw []string) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0, len(raw))
	seen := make(map[types.TimeString]struct{}, len(raw))

	for _, value := range raw {
		slot, err := types.NewTimeStringFromString(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSlot, value)
		}
		if !domain.IsCatalogSlot(slot) {
			return nil, fmt.Errorf("%w: %q is not in the slot catalog", ErrInvalidSlot, value)
		}
		if _, ok := seen[slot]; ok {
			continue
		}
		seen[slot] = struct{}{}
		slots = append(slots, slot)
	}
	return slots, nil
}

func validateDate(date string) error {
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}

func slotStrings(slots []types.TimeString) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}
