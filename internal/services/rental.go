package services

import (
	"fmt"
	"math"
	"time"

	"kurumaya-backend/internal/models"
	"kurumaya-backend/internal/repository"
)

// Settlement constants. The allowance is the distance included in every
// rental before per-unit extra charges start.
const (
	DistanceAllowance = 300
	ExtraDistanceRate = 1.5
	DepositRate       = 0.5
)

// RentalService owns the rental lifecycle: reserve, pay, and the two return
// settlement operations. The renter identity is always an explicit argument;
// the service never reaches into ambient request state.
type RentalService struct {
	rentalRepo  *repository.RentalRepository
	vehicleRepo *repository.VehicleRepository

	// now is swapped out in tests to pin settlement math to a fixed clock.
	now func() time.Time
}

func NewRentalService(rentalRepo *repository.RentalRepository, vehicleRepo *repository.VehicleRepository) *RentalService {
	return &RentalService{
		rentalRepo:  rentalRepo,
		vehicleRepo: vehicleRepo,
		now:         time.Now,
	}
}

// SetClock overrides the service clock. Intended for tests.
func (s *RentalService) SetClock(now func() time.Time) {
	s.now = now
}

// Reserve holds an available vehicle for the renter. Only available vehicles
// can be reserved; anything else is a conflict.
func (s *RentalService) Reserve(vehicleID, renterID string) (models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.Transition(vehicleID, models.VehicleReserved, s.now(), models.VehicleAvailable)
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("reserve vehicle %s for renter %s: %w", vehicleID, renterID, err)
	}
	return vehicle, nil
}

type PayRequest struct {
	VehicleID     string `json:"vehicleId" validate:"required"`
	Days          int    `json:"days" validate:"required,min=1"`
	StartOdometer int    `json:"startOdometer" validate:"min=0"`
}

// Pay opens a rental against an available or reserved vehicle. The daily
// price is snapshotted into the rental so later fleet price edits never
// change what this renter owes.
func (s *RentalService) Pay(renterID string, req PayRequest) (models.Rental, error) {
	if req.Days < 1 {
		return models.Rental{}, models.ErrInvalidDays
	}
	if req.StartOdometer < 0 {
		return models.Rental{}, models.ErrInvalidOdometer
	}

	vehicle, err := s.vehicleRepo.FindByID(req.VehicleID)
	if err != nil {
		return models.Rental{}, err
	}

	baseTotal := vehicle.DailyPrice * float64(req.Days)
	rental := models.Rental{
		VehicleID:      vehicle.ID,
		RenterID:       renterID,
		DaysContracted: req.Days,
		DailyPrice:     vehicle.DailyPrice,
		StartOdometer:  req.StartOdometer,
		BaseTotal:      baseTotal,
		Deposit:        baseTotal * DepositRate,
		StartedAt:      s.now(),
	}

	// CreateRental re-checks the vehicle status under the store lock, so the
	// price read above going stale can only mean the price changed, never
	// that two renters both paid for the same vehicle.
	created, err := s.rentalRepo.Create(rental, models.VehicleAvailable, models.VehicleReserved)
	if err != nil {
		return models.Rental{}, fmt.Errorf("open rental on vehicle %s: %w", req.VehicleID, err)
	}
	return created, nil
}

type ReturnRequest struct {
	RentalID    string  `json:"rentalId" validate:"required"`
	EndOdometer int     `json:"endOdometer" validate:"min=0"`
	DamageValue float64 `json:"damageValue" validate:"min=0"`
}

// PreviewReturn computes the settlement the renter would get right now
// without touching any record. Repeating it with the same inputs gives the
// same answer modulo the clock.
func (s *RentalService) PreviewReturn(renterID string, req ReturnRequest) (models.SettlementSummary, error) {
	if err := validateReturn(req); err != nil {
		return models.SettlementSummary{}, err
	}

	rental, err := s.rentalRepo.FindByID(req.RentalID)
	if err != nil {
		return models.SettlementSummary{}, err
	}
	if rental.RenterID != renterID {
		return models.SettlementSummary{}, models.ErrNotRentalOwner
	}
	if rental.Status != models.RentalOngoing {
		return models.SettlementSummary{}, models.ErrRentalFinished
	}

	return settle(rental, req.EndOdometer, req.DamageValue, s.now()), nil
}

// ConfirmReturn settles the rental for good: the computed fees are persisted,
// the rental flips to finished and the vehicle goes back to available. The
// whole transition happens atomically in the store.
func (s *RentalService) ConfirmReturn(renterID string, req ReturnRequest) (models.SettlementSummary, error) {
	if err := validateReturn(req); err != nil {
		return models.SettlementSummary{}, err
	}

	endedAt := s.now()
	var summary models.SettlementSummary
	_, err := s.rentalRepo.Finish(req.RentalID, renterID, func(r *models.Rental) {
		summary = settle(*r, req.EndOdometer, req.DamageValue, endedAt)
		r.EndedAt = &endedAt
		r.EndOdometer = req.EndOdometer
		r.ExtraDaysFee = summary.ExtraDaysFee
		r.ExtraDistanceFee = summary.ExtraDistanceFee
		r.DamageFee = summary.DamageFee
		r.FinalTotal = summary.FinalTotal
		r.RefundAmount = summary.RefundAmount
		r.AmountDue = summary.AmountDue
	})
	if err != nil {
		return models.SettlementSummary{}, fmt.Errorf("confirm return of rental %s: %w", req.RentalID, err)
	}
	return summary, nil
}

// RentalHistoryEntry joins a past rental with its vehicle for display.
type RentalHistoryEntry struct {
	Rental  models.Rental  `json:"rental"`
	Vehicle models.Vehicle `json:"vehicle"`
}

// HistoryForRenter lists every rental the renter ever opened, oldest first.
func (s *RentalService) HistoryForRenter(renterID string) []RentalHistoryEntry {
	rentals := s.rentalRepo.FindByRenter(renterID)
	entries := make([]RentalHistoryEntry, 0, len(rentals))
	for _, r := range rentals {
		entry := RentalHistoryEntry{Rental: r}
		if v, err := s.vehicleRepo.FindByID(r.VehicleID); err == nil {
			entry.Vehicle = v
		}
		entries = append(entries, entry)
	}
	return entries
}

func validateReturn(req ReturnRequest) error {
	if req.EndOdometer < 0 {
		return models.ErrInvalidOdometer
	}
	if req.DamageValue < 0 {
		return models.ErrInvalidDamage
	}
	return nil
}

// settle computes the return breakdown. Days are counted with ceiling
// semantics: any started day bills as a whole day, and a rental never bills
// fewer than one day. The deposit absorbs additional costs; whatever it does
// not cover shows up as AmountDue, never as a negative refund.
func settle(r models.Rental, endOdometer int, damageValue float64, at time.Time) models.SettlementSummary {
	daysUsed := daysElapsed(r.StartedAt, at)

	extraDays := daysUsed - r.DaysContracted
	if extraDays < 0 {
		extraDays = 0
	}
	extraDaysFee := float64(extraDays) * r.DailyPrice

	totalDistance := endOdometer - r.StartOdometer
	if totalDistance < 0 {
		totalDistance = 0
	}
	extraDistance := totalDistance - DistanceAllowance
	if extraDistance < 0 {
		extraDistance = 0
	}
	extraDistanceFee := float64(extraDistance) * ExtraDistanceRate

	additionalCosts := extraDaysFee + extraDistanceFee + damageValue

	refund := r.Deposit - additionalCosts
	amountDue := 0.0
	if refund < 0 {
		amountDue = -refund
		refund = 0
	}

	return models.SettlementSummary{
		RentalID:         r.ID,
		DaysContracted:   r.DaysContracted,
		DaysUsed:         daysUsed,
		ExtraDays:        extraDays,
		ExtraDaysFee:     extraDaysFee,
		TotalDistance:    totalDistance,
		ExtraDistance:    extraDistance,
		ExtraDistanceFee: extraDistanceFee,
		DamageFee:        damageValue,
		BaseTotal:        r.BaseTotal,
		Deposit:          r.Deposit,
		FinalTotal:       r.BaseTotal + additionalCosts,
		RefundAmount:     refund,
		AmountDue:        amountDue,
	}
}

// daysElapsed counts whole days between start and end, rounding any partial
// day up, with a floor of one day.
func daysElapsed(start, end time.Time) int {
	elapsed := end.Sub(start)
	if elapsed <= 0 {
		return 1
	}
	days := int(math.Ceil(elapsed.Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}
