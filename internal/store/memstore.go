package store

import (
	"sort"
	"sync"
	"time"

	"kurumaya-backend/internal/models"

	"github.com/google/uuid"
)

// Store is the single shared in-memory record set for vehicles, rentals,
// users and messages. One RWMutex guards everything; the compound mutators
// (TransitionVehicleStatus, CreateRental, FinishRental) perform their
// check-then-set under the write lock so concurrent requests cannot observe a
// half-applied transition. No I/O happens while the lock is held.
type Store struct {
	mu       sync.RWMutex
	vehicles map[string]*models.Vehicle
	rentals  map[string]*models.Rental
	users    map[string]*models.User
	messages map[string]*models.Message
}

func New() *Store {
	return &Store{
		vehicles: make(map[string]*models.Vehicle),
		rentals:  make(map[string]*models.Rental),
		users:    make(map[string]*models.User),
		messages: make(map[string]*models.Message),
	}
}

// --- vehicles ---

func (s *Store) Vehicle(id string) (models.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.vehicles[id]
	if !ok {
		return models.Vehicle{}, models.ErrVehicleNotFound
	}
	return *v, nil
}

func (s *Store) VehicleByPlate(plate string) (models.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.vehicles {
		if v.Plate == plate {
			return *v, nil
		}
	}
	return models.Vehicle{}, models.ErrVehicleNotFound
}

func (s *Store) Vehicles() []models.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		out = append(out, *v)
	}
	sortVehicles(out)
	return out
}

func (s *Store) VehiclesByStatus(status string) []models.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Vehicle
	for _, v := range s.vehicles {
		if v.Status == status {
			out = append(out, *v)
		}
	}
	sortVehicles(out)
	return out
}

func sortVehicles(vs []models.Vehicle) {
	sort.Slice(vs, func(i, j int) bool {
		if vs[i].CreatedAt.Equal(vs[j].CreatedAt) {
			return vs[i].ID < vs[j].ID
		}
		return vs[i].CreatedAt.Before(vs[j].CreatedAt)
	})
}

func (s *Store) InsertVehicle(v models.Vehicle) (models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.vehicles {
		if existing.Plate == v.Plate {
			return models.Vehicle{}, models.ErrPlateTaken
		}
	}

	v.ID = uuid.NewString()
	cp := v
	s.vehicles[v.ID] = &cp
	return v, nil
}

// UpdateVehicle applies mutate to the named vehicle under the write lock.
// If mutate returns an error nothing is persisted.
func (s *Store) UpdateVehicle(id string, mutate func(*models.Vehicle) error) (models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vehicles[id]
	if !ok {
		return models.Vehicle{}, models.ErrVehicleNotFound
	}

	updated := *v
	if err := mutate(&updated); err != nil {
		return models.Vehicle{}, err
	}
	updated.ID = v.ID
	*v = updated
	return updated, nil
}

func (s *Store) DeleteVehicle(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vehicles[id]; !ok {
		return models.ErrVehicleNotFound
	}
	delete(s.vehicles, id)
	return nil
}

// TransitionVehicleStatus moves a vehicle from one of the expected statuses to
// the target status. The status check and the write are indivisible, which is
// what keeps two concurrent reservations from both succeeding.
func (s *Store) TransitionVehicleStatus(id, to string, at time.Time, from ...string) (models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vehicles[id]
	if !ok {
		return models.Vehicle{}, models.ErrVehicleNotFound
	}
	if !statusIn(v.Status, from) {
		return models.Vehicle{}, models.ErrVehicleNotAvailable
	}

	v.Status = to
	v.UpdatedAt = at
	return *v, nil
}

// --- rentals ---

func (s *Store) Rental(id string) (models.Rental, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rentals[id]
	if !ok {
		return models.Rental{}, models.ErrRentalNotFound
	}
	return *r, nil
}

func (s *Store) RentalsByRenter(renterID string) []models.Rental {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Rental
	for _, r := range s.rentals {
		if r.RenterID == renterID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out
}

// CreateRental inserts the rental and marks its vehicle as rented in a single
// step. The vehicle must currently be in one of the from statuses, otherwise
// nothing is written.
func (s *Store) CreateRental(rental models.Rental, from ...string) (models.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vehicles[rental.VehicleID]
	if !ok {
		return models.Rental{}, models.ErrVehicleNotFound
	}
	if !statusIn(v.Status, from) {
		return models.Rental{}, models.ErrVehicleNotAvailable
	}

	rental.ID = uuid.NewString()
	rental.Status = models.RentalOngoing

	v.Status = models.VehicleRented
	v.UpdatedAt = rental.StartedAt

	cp := rental
	s.rentals[rental.ID] = &cp
	return rental, nil
}

// FinishRental settles an ongoing rental owned by renterID. The finish
// callback fills in the settlement fields; the store then flips the rental to
// finished and releases the vehicle back to available, all under one lock.
func (s *Store) FinishRental(rentalID, renterID string, finish func(*models.Rental)) (models.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rentals[rentalID]
	if !ok {
		return models.Rental{}, models.ErrRentalNotFound
	}
	if r.RenterID != renterID {
		return models.Rental{}, models.ErrNotRentalOwner
	}
	if r.Status != models.RentalOngoing {
		return models.Rental{}, models.ErrRentalFinished
	}

	finish(r)
	r.Status = models.RentalFinished

	if v, ok := s.vehicles[r.VehicleID]; ok {
		v.Status = models.VehicleAvailable
		v.Odometer = r.EndOdometer
		if r.EndedAt != nil {
			v.UpdatedAt = *r.EndedAt
		}
	}

	return *r, nil
}

// --- users ---

func (s *Store) User(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return *u, nil
}

func (s *Store) UserByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return *u, nil
		}
	}
	return models.User{}, models.ErrUserNotFound
}

func (s *Store) InsertUser(u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return models.User{}, models.ErrEmailTaken
		}
	}

	u.ID = uuid.NewString()
	cp := u
	s.users[u.ID] = &cp
	return u, nil
}

// --- messages ---

func (s *Store) InsertMessage(m models.Message) models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = uuid.NewString()
	cp := m
	s.messages[m.ID] = &cp
	return m
}

func (s *Store) Messages() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Message, 0, len(s.messages))
	for _, m := range s.messages {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func statusIn(status string, allowed []string) bool {
	for _, a := range allowed {
		if status == a {
			return true
		}
	}
	return false
}
