package entity

import "github.com/shopspring/decimal"

// OvertimeType identifies the pay-rate multiplier applied to an hour of
// overtime. The eight types follow the labor-law surcharge table the company
// settles payroll against.
type OvertimeType string

const (
	OvertimeDaytime              OvertimeType = "extra-diurna"
	OvertimeNighttime            OvertimeType = "extra-nocturna"
	OvertimeSundayDaytime        OvertimeType = "extra-dominical-diurna"
	OvertimeSundayNighttime      OvertimeType = "extra-dominical-nocturna"
	OvertimeNightSurcharge       OvertimeType = "recargo-nocturno"
	OvertimeSundaySurcharge      OvertimeType = "recargo-dominical-diurno"
	OvertimeSundayNightSurcharge OvertimeType = "recargo-dominical-nocturno"
	OvertimeHolidayOrdinary      OvertimeType = "hora-ordinaria-festiva"
)

var overtimeMultipliers = map[OvertimeType]decimal.Decimal{
	OvertimeDaytime:              decimal.NewFromFloat(1.25),
	OvertimeNighttime:            decimal.NewFromFloat(1.75),
	OvertimeSundayDaytime:        decimal.NewFromFloat(2.00),
	OvertimeSundayNighttime:      decimal.NewFromFloat(2.50),
	OvertimeNightSurcharge:       decimal.NewFromFloat(0.35),
	OvertimeSundaySurcharge:      decimal.NewFromFloat(1.75),
	OvertimeSundayNightSurcharge: decimal.NewFromFloat(2.10),
	OvertimeHolidayOrdinary:      decimal.NewFromFloat(1.75),
}

// Multiplier returns the pay-rate multiplier for the overtime type, or zero
// for an unknown type.
func (t OvertimeType) Multiplier() decimal.Decimal {
	return overtimeMultipliers[t]
}

// IsValid reports whether the overtime type is one of the known eight.
func (t OvertimeType) IsValid() bool {
	_, ok := overtimeMultipliers[t]
	return ok
}

// NewOvertimeRecord snapshots an overtime charge for an employee. The cost is
// computed once from the employee's current hourly rate and never revised.
func NewOvertimeRecord(employee *Employee, overtimeType OvertimeType, hours decimal.Decimal) OvertimeRecord {
	return OvertimeRecord{
		EmployeeID:   employee.ID,
		OvertimeType: overtimeType,
		Hours:        hours,
		Cost:         employee.HourlyRate.Mul(overtimeType.Multiplier()).Mul(hours),
	}
}
