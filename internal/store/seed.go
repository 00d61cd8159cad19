package store

import (
	"time"

	"kurumaya-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
)

type seedVehicle struct {
	plate    string
	model    string
	brand    string
	year     int
	category string
	price    float64
	status   string
}

var seedFleet = []seedVehicle{
	{"ABC-1234", "Corolla", "Toyota", 2022, "Sedan", 150, models.VehicleAvailable},
	{"XYZ-5678", "Civic", "Honda", 2023, "Sedan", 180, models.VehicleAvailable},
	{"DEF-9012", "HR-V", "Honda", 2021, "SUV", 200, models.VehicleAvailable},
	{"GHI-3456", "Onix", "Chevrolet", 2023, "Hatch", 120, models.VehicleAvailable},
	{"JKL-7890", "Compass", "Jeep", 2022, "SUV", 250, models.VehicleAvailable},
	{"MNO-1122", "Gol", "Volkswagen", 2020, "Hatch", 100, models.VehicleAvailable},
	{"PQR-3344", "Nivus", "Volkswagen", 2022, "SUV", 190, models.VehicleAvailable},
	{"STU-5566", "Tracker", "Chevrolet", 2021, "SUV", 210, models.VehicleAvailable},
	{"VWX-7788", "Argo", "Fiat", 2022, "Hatch", 115, models.VehicleAvailable},
	{"YZA-9900", "Cronos", "Fiat", 2021, "Sedan", 130, models.VehicleAvailable},
	{"BCA-2233", "Kicks", "Nissan", 2023, "SUV", 220, models.VehicleAvailable},
	{"DEF-4455", "Corolla Cross", "Toyota", 2023, "SUV", 260, models.VehicleAvailable},
	{"GHI-6677", "HB20", "Hyundai", 2021, "Hatch", 110, models.VehicleAvailable},
	{"JKL-8899", "Creta", "Hyundai", 2022, "SUV", 230, models.VehicleAvailable},
	{"MNO-1357", "Renegade", "Jeep", 2021, "SUV", 240, models.VehicleAvailable},
	{"PQR-2468", "Sandero", "Renault", 2020, "Hatch", 95, models.VehicleAvailable},
	{"STU-3691", "Logan", "Renault", 2021, "Sedan", 115, models.VehicleMaintenance},
	{"VWX-4826", "Yaris", "Toyota", 2022, "Hatch", 140, models.VehicleAvailable},
	{"YZA-5937", "City", "Honda", 2022, "Sedan", 170, models.VehicleAvailable},
	{"BCA-6048", "T-Cross", "Volkswagen", 2023, "SUV", 245, models.VehicleAvailable},
	{"DEF-7159", "Captur", "Renault", 2021, "SUV", 205, models.VehicleAvailable},
}

// Seed loads the demo fleet and the default staff account. It is meant for
// fresh stores only; plates already present are skipped.
func (s *Store) Seed(staffEmail, staffPassword string) error {
	now := time.Now()

	for _, sv := range seedFleet {
		v := models.Vehicle{
			Plate:      sv.plate,
			Model:      sv.model,
			Brand:      sv.brand,
			Year:       sv.year,
			Category:   sv.category,
			DailyPrice: sv.price,
			ImageURL:   "/static/img/default-car.jpg",
			Status:     sv.status,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if _, err := s.InsertVehicle(v); err != nil && err != models.ErrPlateTaken {
			return err
		}
	}

	if staffEmail == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(staffPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	staff := models.User{
		Name:      "Rental Desk",
		Email:     staffEmail,
		Password:  string(hash),
		Role:      models.RoleStaff,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.InsertUser(staff); err != nil && err != models.ErrEmailTaken {
		return err
	}
	return nil
}
