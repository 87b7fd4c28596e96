package models

// DayScheduleResponse конфигурация одного дня для админ-панели
type DayScheduleResponse struct {
	Date           string   // YYYY-MM-DD
	Blocked        bool     // день заблокирован для записи
	AvailableSlots []string // предлагаемые слоты в порядке конфигурации
	ReservedSlots  []string // уже занятые слоты (для контекста, только чтение)
	Configured     bool     // есть ли запись для этой даты в документе
}

// UpdateDayScheduleRequest запрос на перезапись конфигурации дня целиком
type UpdateDayScheduleRequest struct {
	Blocked        bool
	AvailableSlots []string
}
