package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Временная метка в имени снапшота: 2025-06-01_14-30-05
const timestampLayout = "2006-01-02_15-04-05"

// Snapshot описание одного снапшота в каталоге бэкапов
type Snapshot struct {
	Name      string    // имя файла, напр. "2025-06-01_14-30-05_schedule.json"
	Label     string    // какой документ снят: "schedule" или "reservations"
	CreatedAt time.Time // из временной метки в имени
}

// Manager пишет и читает временные снапшоты документов.
// Снапшот — это JSON-копия целого документа с временной меткой в имени;
// восстановление перезаписывает живой документ содержимым снапшота.
type Manager struct {
	dir string
	now func() time.Time
}

// NewManager создает менеджер снапшотов в указанном каталоге
func NewManager(dir string) *Manager {
	return &Manager{dir: dir, now: time.Now}
}

// Snapshot записывает временный снимок документа и возвращает имя файла
func (m *Manager) Snapshot(label string, doc interface{}) (string, error) {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: mkdir %s: %v", ErrWriteSnapshot, m.dir, err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: marshal %s: %v", ErrWriteSnapshot, label, err)
	}

	name := fmt.Sprintf("%s_%s.json", m.now().Format(timestampLayout), label)
	if err := os.WriteFile(filepath.Join(m.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrWriteSnapshot, name, err)
	}
	return name, nil
}

// List возвращает снапшоты, новые первыми
func (m *Manager) List() ([]Snapshot, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Snapshot{}, nil
		}
		return nil, fmt.Errorf("%w: list %s: %v", ErrReadSnapshot, m.dir, err)
	}

	snapshots := make([]Snapshot, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		snap, ok := parseSnapshotName(entry.Name())
		if !ok {
			continue
		}
		snapshots = append(snapshots, snap)
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Name > snapshots[j].Name
	})
	return snapshots, nil
}

// Read возвращает содержимое снапшота по имени файла
func (m *Manager) Read(name string) ([]byte, error) {
	// Имя должно быть плоским именем файла из каталога бэкапов
	if name == "" || name != filepath.Base(name) || !strings.HasSuffix(name, ".json") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSnapshotName, name)
	}

	data, err := os.ReadFile(filepath.Join(m.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, name)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrReadSnapshot, name, err)
	}
	return data, nil
}

// parseSnapshotName разбирает "<timestamp>_<label>.json"
func parseSnapshotName(name string) (Snapshot, bool) {
	base, ok := strings.CutSuffix(name, ".json")
	if !ok {
		return Snapshot{}, false
	}

	if len(base) <= len(timestampLayout)+1 {
		return Snapshot{}, false
	}

	ts, err := time.Parse(timestampLayout, base[:len(timestampLayout)])
	if err != nil {
		return Snapshot{}, false
	}

	label := base[len(timestampLayout)+1:]
	if label == "" {
		return Snapshot{}, false
	}

	return Snapshot{Name: name, Label: label, CreatedAt: ts}, true
}
