package models

import "math"

// Withings measurement type codes captured by the sync. Skin and body
// temperature are distinct codes upstream but land in the same output field.
const (
	MeasureTypeWeight    = 1
	MeasureTypeFatRatio  = 6
	MeasureTypeDiastolic = 9
	MeasureTypeSystolic  = 10
	MeasureTypeBodyTemp  = 71
	MeasureTypeSkinTemp  = 73
	MeasureTypeMuscle    = 76
)

// Measure is one raw reading as delivered by the provider.
type Measure struct {
	Type  int `json:"type"`
	Value int `json:"value"`
	Unit  int `json:"unit"`
}

// Float returns the physical value, Value scaled by 10^Unit.
func (m Measure) Float() float64 {
	return float64(m.Value) * math.Pow(10, float64(m.Unit))
}

// MeasureGroup is one measurement session sharing a single Unix timestamp.
type MeasureGroup struct {
	Date     int64     `json:"date"`
	Measures []Measure `json:"measures"`
}

// MeasureBody is the payload of a successful getmeas call.
type MeasureBody struct {
	MeasureGroups []MeasureGroup `json:"measuregrps"`
}
