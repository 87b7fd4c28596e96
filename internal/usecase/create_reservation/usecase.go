package create_reservation

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/helenacolabronze/booking-service/internal/domain"
)

// UseCase use case создания бронирования.
//
// Это единственная критическая секция сервиса: последовательность
// "перечитать документ — проверить слот — дописать — сохранить" выполняется
// под глобальным (в рамках процесса) мьютексом, чтобы два клиента,
// загрузившие один и тот же устаревший список свободных слотов, не смогли
// занять один слот дважды. Выигрывает тот, кто первым взял мьютекс и застал
// слот свободным; остальные получают ErrSlotTaken.
//
// Мьютекс не защищает от гонки двух отдельных процессов над одним внешним
// хранилищем — сервис рассчитан на один экземпляр.
type UseCase struct {
	mu sync.Mutex

	reservations ReservationStore
	schedule     ScheduleStore
	timeProvider TimeProvider
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
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	date := req.Date.Format(domain.DateFormat)

	uc.logger.Info("CreateReservation: date=%s, slot=%s, service=%q", date, req.Slot, req.Service)

	// 1. Валидация входных данных (вне мьютекса: чистые функции, I/O нет)
	phone, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Критическая секция: перечитать — проверить — дописать — сохранить
	uc.mu.Lock()
	defer uc.mu.Unlock()

	// 2.1. Перечитываем документ бронирований: авторитетно текущее состояние
	// хранилища, а не список слотов, который видел клиент при рендере
	reservations, err := uc.reservations.Load(ctx)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to load reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
	}

	if reservations.SlotTaken(date, req.Slot) {
		uc.logger.Warn("CreateReservation: slot conflict: date=%s, slot=%s", date, req.Slot)
		return nil, ErrSlotTaken
	}

	// 2.2. Проверяем, что дата открыта и слот всё еще предлагается
	schedule, err := uc.schedule.Load(ctx)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to load schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	dayConfig, configured := schedule.DayConfigFor(date)
	if dayConfig.Blocked {
		uc.logger.Warn("CreateReservation: date is blocked: date=%s", date)
		return nil, ErrDateBlocked
	}
	if !configured || !dayConfig.HasSlot(req.Slot) {
		uc.logger.Warn("CreateReservation: slot not offered: date=%s, slot=%s", date, req.Slot)
		return nil, ErrSlotNotOffered
	}

	// 2.3. Дописываем запись и сохраняем документ целиком
	record := domain.Reservation{
		ID:          uuid.NewString(),
		Slot:        req.Slot,
		ClientName:  req.ClientName,
		ClientPhone: phone,
		ClientEmail: req.ClientEmail,
		Service:     req.Service,
		CreatedAt:   uc.timeProvider.Now(),
	}

	reservations[date] = append(reservations[date], record)
	if err := uc.reservations.Store(ctx, reservations); err != nil {
		uc.logger.Error("CreateReservation: failed to store reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to store reservations: %v", ErrInternal, err)
	}

	// 2.4. Убираем слот из предлагаемых на эту дату, чтобы следующий рендер
	// его не показывал. Дублирует проверку по документу бронирований (п. 2.1),
	// которая и является авторитетной: ошибка здесь не отменяет бронирование.
	schedule[date] = dayConfig.WithoutSlot(req.Slot)
	if err := uc.schedule.Store(ctx, schedule); err != nil {
		uc.logger.Warn("CreateReservation: reservation committed, but failed to update schedule: %v", err)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%s, date=%s, slot=%s",
		record.ID, date, req.Slot)

	return &Response{
		ID:          record.ID,
		Date:        date,
		Slot:        record.Slot,
		ClientName:  record.ClientName,
		ClientPhone: record.ClientPhone,
		ClientEmail: record.ClientEmail,
		Service:     record.Service,
		CreatedAt:   record.CreatedAt,
	}, nil
}
