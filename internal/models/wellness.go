package models

import (
	json "github.com/goccy/go-json"
)

// DateFormat is the canonical calendar-day form used as the wellness record
// id and as the sync ledger key.
const DateFormat = "2006-01-02"

// DayRecord is one calendar day's merged wellness fields. At most one value
// per field per day; later readings overwrite earlier ones within a run.
type DayRecord struct {
	Date   string
	Fields map[string]float64
}

func NewDayRecord(date string) *DayRecord {
	return &DayRecord{
		Date:   date,
		Fields: make(map[string]float64),
	}
}

func (r *DayRecord) Set(field string, value float64) {
	r.Fields[field] = value
}

// MarshalJSON renders the flat wellness object the sink expects: the
// configured fields plus an "id" equal to the calendar date.
func (r *DayRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(r.Fields)+1)
	for k, v := range r.Fields {
		out[k] = v
	}
	out["id"] = r.Date
	return json.Marshal(out)
}
