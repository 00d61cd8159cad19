package models

import "time"

// Rental lifecycle statuses.
const (
	RentalOngoing  = "ongoing"
	RentalFinished = "finished"
)

// Rental records one contracted rental of a vehicle. DailyPrice is a snapshot
// taken at payment time; later fleet price changes do not touch it. A finished
// rental is never mutated again.
type Rental struct {
	ID             string  `json:"id"`
	VehicleID      string  `json:"vehicleId"`
	RenterID       string  `json:"renterId"`
	DaysContracted int     `json:"daysContracted"`
	DailyPrice     float64 `json:"dailyPrice"`
	StartOdometer  int     `json:"startOdometer"`
	BaseTotal      float64 `json:"baseTotal"`
	Deposit        float64 `json:"deposit"`
	Status         string  `json:"status"`

	StartedAt time.Time  `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`

	// Set by the return settlement.
	EndOdometer      int     `json:"endOdometer,omitempty"`
	ExtraDaysFee     float64 `json:"extraDaysFee,omitempty"`
	ExtraDistanceFee float64 `json:"extraDistanceFee,omitempty"`
	DamageFee        float64 `json:"damageFee,omitempty"`
	FinalTotal       float64 `json:"finalTotal,omitempty"`
	RefundAmount     float64 `json:"refundAmount,omitempty"`
	AmountDue        float64 `json:"amountDue,omitempty"`
}

// SettlementSummary is the fee breakdown computed when a vehicle comes back.
// RefundAmount and AmountDue are both non-negative; at most one of them is
// positive.
type SettlementSummary struct {
	RentalID         string  `json:"rentalId"`
	DaysContracted   int     `json:"daysContracted"`
	DaysUsed         int     `json:"daysUsed"`
	ExtraDays        int     `json:"extraDays"`
	ExtraDaysFee     float64 `json:"extraDaysFee"`
	TotalDistance    int     `json:"totalDistance"`
	ExtraDistance    int     `json:"extraDistance"`
	ExtraDistanceFee float64 `json:"extraDistanceFee"`
	DamageFee        float64 `json:"damageFee"`
	BaseTotal        float64 `json:"baseTotal"`
	Deposit          float64 `json:"deposit"`
	FinalTotal       float64 `json:"finalTotal"`
	RefundAmount     float64 `json:"refundAmount"`
	AmountDue        float64 `json:"amountDue"`
}
