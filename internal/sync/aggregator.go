package sync

import (
	"sort"
	"time"
	"wellsync/internal/models"
	"wellsync/internal/providers"
	"wellsync/internal/structures"
)

// Aggregator folds raw measure groups into one merged record per calendar
// day, applying the operator's field mapping and the 10^unit scaling.
type Aggregator struct {
	mapping map[int]string
	logger  providers.Logger
}

func NewAggregator(conf *structures.Config, logger providers.Logger) *Aggregator {
	mapping := make(map[int]string)
	set := func(code int, field string) {
		if field != "" {
			mapping[code] = field
		}
	}
	set(models.MeasureTypeWeight, conf.Fields.Weight)
	set(models.MeasureTypeFatRatio, conf.Fields.BodyFat)
	set(models.MeasureTypeDiastolic, conf.Fields.Diastolic)
	set(models.MeasureTypeSystolic, conf.Fields.Systolic)
	set(models.MeasureTypeMuscle, conf.Fields.Muscle)
	// Both temperature variants land in the same output field.
	set(models.MeasureTypeBodyTemp, conf.Fields.Temp)
	set(models.MeasureTypeSkinTemp, conf.Fields.Temp)

	return &Aggregator{mapping: mapping, logger: logger}
}

// Aggregate buckets readings by local calendar date and returns the day
// records in ascending date order. Later readings for the same field on the
// same day overwrite earlier ones; unmapped type codes are dropped.
func (a *Aggregator) Aggregate(groups []models.MeasureGroup) []*models.DayRecord {
	byDay := make(map[string]*models.DayRecord)

	for _, g := range groups {
		day := time.Unix(g.Date, 0).In(time.Local).Format(models.DateFormat)
		rec, ok := byDay[day]
		if !ok {
			rec = models.NewDayRecord(day)
			byDay[day] = rec
		}
		for _, m := range g.Measures {
			field, ok := a.mapping[m.Type]
			if !ok {
				a.logger.Debugf(providers.TypeSync, "Dropping measure type %d (no field configured)", m.Type)
				continue
			}
			rec.Set(field, m.Float())
		}
		a.logger.Debugf(providers.TypeSync, "Day %s: %v", day, rec.Fields)
	}

	days := make([]string, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Strings(days)

	out := make([]*models.DayRecord, 0, len(days))
	for _, d := range days {
		out = append(out, byDay[d])
	}
	return out
}
