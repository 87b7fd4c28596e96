package get_available_slots

import (
	"context"
	"fmt"

	"github.com/helenacolabronze/booking-service/internal/domain"
	"github.com/helenacolabronze/booking-service/pkg/types"
)

// UseCase use case получения свободных слотов на дату.
//
// Читает оба документа без блокировки: результат используется только для
// отображения формы и может слегка устареть. Критическая секция создания
// бронирования в любом случае перечитывает авторитетное состояние.
type UseCase struct {
	reservations ReservationStore
	schedule     ScheduleStore
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservations ReservationStore,
	schedule ScheduleStore,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservations: reservations,
		schedule:     schedule,
		logger:       logger,
	}
}

// Execute возвращает свободные слоты: настроенные на дату минус занятые
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date := req.Date.Format(domain.DateFormat)

	schedule, err := uc.schedule.Load(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	dayConfig, configured := schedule.DayConfigFor(date)
	if dayConfig.Blocked {
		uc.logger.Info("GetAvailableSlots: date=%s is blocked", date)
		return &Response{Date: date, Blocked: true, Slots: []types.TimeString{}}, nil
	}
	if !configured || len(dayConfig.AvailableSlots) == 0 {
		return &Response{Date: date, Slots: []types.TimeString{}}, nil
	}

	reservations, err := uc.reservations.Load(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
	}

	// Свободные = настроенные минус занятые, в порядке конфигурации дня
	taken := reservations.ReservedSlots(date)
	free := make([]types.TimeString, 0, len(dayConfig.AvailableSlots))
	for _, slot := range dayConfig.AvailableSlots {
		if _, ok := taken[slot]; !ok {
			free = append(free, slot)
		}
	}

	uc.logger.Info("GetAvailableSlots: date=%s, configured=%d, free=%d",
		date, len(dayConfig.AvailableSlots), len(free))

	return &Response{Date: date, Slots: free}, nil
}
