package sync

import (
	"os"
	"sort"

	json "github.com/goccy/go-json"
)

// LedgerFile is the fixed ledger filename, relative to the working directory.
const LedgerFile = "synced_weights.json"

// Ledger is the persisted set of calendar dates already uploaded. It is
// loaded once at run start, mutated in memory as uploads succeed, and
// written back in full at run end.
type Ledger struct {
	days map[string]struct{}
}

// LoadLedger reads the ledger file. A missing file is the first run and
// yields an empty ledger.
func LoadLedger(path string) (*Ledger, error) {
	l := &Ledger{days: make(map[string]struct{})}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, err
	}

	var days []string
	if err := json.Unmarshal(data, &days); err != nil {
		return nil, err
	}
	for _, d := range days {
		l.days[d] = struct{}{}
	}
	return l, nil
}

func (l *Ledger) Contains(day string) bool {
	_, ok := l.days[day]
	return ok
}

func (l *Ledger) Add(day string) {
	l.days[day] = struct{}{}
}

func (l *Ledger) Len() int {
	return len(l.days)
}

// Days returns the ledger contents in ascending order.
func (l *Ledger) Days() []string {
	days := make([]string, 0, len(l.days))
	for d := range l.days {
		days = append(days, d)
	}
	sort.Strings(days)
	return days
}

// Save overwrites the full persisted set atomically. Called exactly once
// per run, after all upload attempts complete.
func (l *Ledger) Save(path string) error {
	data, err := json.MarshalIndent(l.Days(), "", "    ")
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}
