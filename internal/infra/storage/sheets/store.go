package sheets

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"google.golang.org/api/sheets/v4"

	"github.com/helenacolabronze/booking-service/internal/domain"
	"github.com/helenacolabronze/booking-service/pkg/types"
)

// Хранилище документов в Google Sheets: по одной вкладке на документ,
// строка вкладки — одна запись документа. Сохранение полностью очищает
// вкладку и записывает заголовок и все строки заново, так что вкладка
// всегда является точным снимком документа.

// ScheduleStore хранилище документа расписания на вкладке таблицы.
// Колонки: data | bloqueado | horarios_disponiveis (через запятую).
type ScheduleStore struct {
	svc           *sheets.Service
	spreadsheetID string
	tab           string
}

// NewScheduleStore создает хранилище расписания на указанной вкладке
func NewScheduleStore(svc *sheets.Service, spreadsheetID, tab string) *ScheduleStore {
	return &ScheduleStore{svc: svc, spreadsheetID: spreadsheetID, tab: tab}
}

// Load читает документ расписания целиком
func (s *ScheduleStore) Load(ctx context.Context) (domain.ScheduleDocument, error) {
	rows, err := readRows(ctx, s.svc, s.spreadsheetID, s.tab)
	if err != nil {
		return nil, err
	}

	doc := domain.ScheduleDocument{}
	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("%w: tab %s row %d: expected at least 2 columns", ErrDecodeDocument, s.tab, i+2)
		}

		date := cell(row, 0)
		blocked := strings.EqualFold(cell(row, 1), "TRUE")

		slots := []types.TimeString{}
		if raw := cell(row, 2); raw != "" {
			for _, part := range strings.Split(raw, ",") {
				slots = append(slots, types.TimeString(strings.TrimSpace(part)))
			}
		}

		doc[date] = domain.DayConfig{Blocked: blocked, AvailableSlots: slots}
	}
	return doc, nil
}

// Store перезаписывает вкладку расписания целиком
func (s *ScheduleStore) Store(ctx context.Context, doc domain.ScheduleDocument) error {
	values := [][]interface{}{{"data", "bloqueado", "horarios_disponiveis"}}

	for _, date := range sortedKeys(doc) {
		cfg := doc[date]
		slots := make([]string, 0, len(cfg.AvailableSlots))
		for _, slot := range cfg.AvailableSlots {
			slots = append(slots, slot.String())
		}
		values = append(values, []interface{}{date, boolCell(cfg.Blocked), strings.Join(slots, ",")})
	}

	return writeRows(ctx, s.svc, s.spreadsheetID, s.tab, values)
}

// ReservationStore хранилище документа бронирований на вкладке таблицы.
// Колонки: data | id | horario | nome | whatsapp | email | servico | criado_em.
type ReservationStore struct {
	svc           *sheets.Service
	spreadsheetID string
	tab           string
}

// NewReservationStore создает хранилище бронирований на указанной вкладке
func NewReservationStore(svc *sheets.Service, spreadsheetID, tab string) *ReservationStore {
	return &ReservationStore{svc: svc, spreadsheetID: spreadsheetID, tab: tab}
}

// Load читает документ бронирований целиком
func (s *ReservationStore) Load(ctx context.Context) (domain.ReservationsDocument, error) {
	rows, err := readRows(ctx, s.svc, s.spreadsheetID, s.tab)
	if err != nil {
		return nil, err
	}

	doc := domain.ReservationsDocument{}
	for i, row := range rows {
		if len(row) < 8 {
			return nil, fmt.Errorf("%w: tab %s row %d: expected at least 8 columns", ErrDecodeDocument, s.tab, i+2)
		}

		date := cell(row, 0)
		createdAt, err := time.Parse(time.RFC3339, cell(row, 7))
		if err != nil {
			return nil, fmt.Errorf("%w: tab %s row %d: bad criado_em: %v", ErrDecodeDocument, s.tab, i+2, err)
		}

		doc[date] = append(doc[date], domain.Reservation{
			ID:          cell(row, 1),
			Slot:        types.TimeString(cell(row, 2)),
			ClientName:  cell(row, 3),
			ClientPhone: cell(row, 4),
			ClientEmail: cell(row, 5),
			Service:     cell(row, 6),
			CreatedAt:   createdAt,
		})
	}
	return doc, nil
}

// Store перезаписывает вкладку бронирований целиком
func (s *ReservationStore) Store(ctx context.Context, doc domain.ReservationsDocument) error {
	values := [][]interface{}{{"data", "id", "horario", "nome", "whatsapp", "email", "servico", "criado_em"}}

	for _, date := range sortedKeys(doc) {
		for _, r := range doc[date] {
			values = append(values, []interface{}{
				date,
				r.ID,
				r.Slot.String(),
				r.ClientName,
				r.ClientPhone,
				r.ClientEmail,
				r.Service,
				r.CreatedAt.Format(time.RFC3339),
			})
		}
	}

	return writeRows(ctx, s.svc, s.spreadsheetID, s.tab, values)
}

// readRows читает все строки вкладки, кроме заголовка
func readRows(ctx context.Context, svc *sheets.Service, spreadsheetID, tab string) ([][]interface{}, error) {
	resp, err := svc.Spreadsheets.Values.
		Get(spreadsheetID, tab).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: tab %s: %v", ErrReadDocument, tab, err)
	}

	if len(resp.Values) <= 1 {
		return nil, nil
	}
	return resp.Values[1:], nil
}

// writeRows очищает вкладку и записывает заголовок и строки заново
func writeRows(ctx context.Context, svc *sheets.Service, spreadsheetID, tab string, values [][]interface{}) error {
	_, err := svc.Spreadsheets.Values.
		Clear(spreadsheetID, tab, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: tab %s: clear: %v", ErrWriteDocument, tab, err)
	}

	_, err = svc.Spreadsheets.Values.
		Update(spreadsheetID, tab+"!A1", &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: tab %s: update: %v", ErrWriteDocument, tab, err)
	}
	return nil
}

func cell(row []interface{}, i int) string {
	if i >= len(row) {
		return ""
	}
	s, _ := row[i].(string)
	return strings.TrimSpace(s)
}

func boolCell(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Даты в формате ISO сортируются лексикографически
	sort.Strings(keys)
	return keys
}
