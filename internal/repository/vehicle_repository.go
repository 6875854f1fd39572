package repository

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"vehicle-policy-service/internal/models"
)

var ErrVehicleNotFound = errors.New("vehicle not found")

// VehicleRepository is an in-memory vehicle store. The process is the unit
// of persistence: nothing survives a restart. The repository also owns the
// per-vehicle locks that serialize renewal transactions, since advancing a
// due date is a read-modify-write spanning the quote and confirm steps.
type VehicleRepository struct {
	mu       sync.RWMutex
	vehicles map[uuid.UUID]models.Vehicle

	lockMu sync.Mutex
	locks  map[uuid.UUID]*sync.Mutex
}

func NewVehicleRepository() *VehicleRepository {
	return &VehicleRepository{
		vehicles: make(map[uuid.UUID]models.Vehicle),
		locks:    make(map[uuid.UUID]*sync.Mutex),
	}
}

func (r *VehicleRepository) Create(vehicle *models.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.vehicles[vehicle.ID]; exists {
		return errors.New("vehicle already registered")
	}

	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = vehicle.CreatedAt
	r.vehicles[vehicle.ID] = *vehicle

	slog.Info("Registered vehicle",
		"vehicle_id", vehicle.ID,
		"make", vehicle.Make,
		"model", vehicle.Model,
		"renewal_due_date", vehicle.Policy.RenewalDueDate)
	return nil
}

// GetByID returns a copy of the stored vehicle; callers mutate the copy and
// write it back through Update.
func (r *VehicleRepository) GetByID(id uuid.UUID) (*models.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vehicle, ok := r.vehicles[id]
	if !ok {
		return nil, ErrVehicleNotFound
	}
	return &vehicle, nil
}

func (r *VehicleRepository) Update(vehicle *models.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.vehicles[vehicle.ID]; !ok {
		return ErrVehicleNotFound
	}

	vehicle.UpdatedAt = time.Now()
	r.vehicles[vehicle.ID] = *vehicle
	return nil
}

// LockVehicle acquires the per-vehicle renewal lock, creating it on first
// use. Callers must pair it with UnlockVehicle.
func (r *VehicleRepository) LockVehicle(id uuid.UUID) {
	r.lockMu.Lock()
	lock, ok := r.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[id] = lock
	}
	r.lockMu.Unlock()
	lock.Lock()
}

func (r *VehicleRepository) UnlockVehicle(id uuid.UUID) {
	r.lockMu.Lock()
	lock, ok := r.locks[id]
	r.lockMu.Unlock()
	if ok {
		lock.Unlock()
	}
}
