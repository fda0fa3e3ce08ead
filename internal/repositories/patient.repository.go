package repositories

import (
	"context"
	"errors"
	"practice/internal/database"
	"practice/internal/logger"
	. "practice/internal/models"
	"practice/internal/services"
	"time"

	"gorm.io/gorm"
)

const (
	PATIENT_CACHE_EXPIRY = 24 * time.Hour
)

type PatientRepository interface {
	GetAll(ctx context.Context) ([]*Patient, error)
	GetByID(ctx context.Context, id string) (*Patient, error)
	Create(ctx context.Context, patient *Patient) error
	Update(ctx context.Context, patient *Patient) error
	Delete(ctx context.Context, id string) error
	GetRecent(ctx context.Context, limit int) ([]*Patient, error)
	Touch(ctx context.Context, id string, at time.Time) error
}

type patientRepository struct {
	db  database.DB
	log logger.Logger
}

func NewPatient(db database.DB) PatientRepository {
	return &patientRepository{
		db:  db,
		log: logger.New("patientRepository"),
	}
}

func (r *patientRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *patientRepository) GetAll(ctx context.Context) ([]*Patient, error) {
	log := r.log.Function("GetAll")

	var patients []*Patient
	if err := r.getDB(ctx).Find(&patients).Error; err != nil {
		return nil, log.Err("failed to get all patients", err)
	}

	return patients, nil
}

// GetByID returns (nil, nil) when no patient exists with the given id.
func (r *patientRepository) GetByID(ctx context.Context, id string) (*Patient, error) {
	log := r.log.Function("GetByID")

	var patient Patient
	if found, err := database.NewCacheBuilder(r.db.Cache.Patient, id).
		WithContext(ctx).Get(&patient); err == nil && found {
		return &patient, nil
	}

	if err := r.getDB(ctx).First(&patient, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, log.Err("failed to get patient by id", err, "id", id)
	}

	if err := r.addToCache(ctx, &patient); err != nil {
		log.Warn("failed to add patient to cache", "patientID", id, "error", err)
	}

	return &patient, nil
}

func (r *patientRepository) Create(ctx context.Context, patient *Patient) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(patient).Error; err != nil {
		return log.Err("failed to create patient", err, "patient", patient)
	}

	if err := r.addToCache(ctx, patient); err != nil {
		log.Warn("failed to add patient to cache", "patientID", patient.ID, "error", err)
	}

	return nil
}

func (r *patientRepository) Update(ctx context.Context, patient *Patient) error {
	log := r.log.Function("Update")

	if err := r.getDB(ctx).Save(patient).Error; err != nil {
		return log.Err("failed to update patient", err, "patient", patient)
	}

	if err := r.addToCache(ctx, patient); err != nil {
		log.Warn("failed to update patient in cache", "patientID", patient.ID, "error", err)
	}

	return nil
}

func (r *patientRepository) Delete(ctx context.Context, id string) error {
	log := r.log.Function("Delete")

	if err := r.getDB(ctx).Delete(&Patient{}, "id = ?", id).Error; err != nil {
		return log.Err("failed to delete patient", err, "id", id)
	}

	if err := database.NewCacheBuilder(r.db.Cache.Patient, id).Delete(); err != nil {
		log.Warn("failed to remove patient from cache", "patientID", id, "error", err)
	}

	return nil
}

func (r *patientRepository) GetRecent(ctx context.Context, limit int) ([]*Patient, error) {
	log := r.log.Function("GetRecent")

	var patients []*Patient
	if err := r.getDB(ctx).Order("updated_at DESC").Limit(limit).Find(&patients).Error; err != nil {
		return nil, log.Err("failed to get recent patients", err, "limit", limit)
	}

	return patients, nil
}

// Touch sets the patient's updated_at to the given time without running
// model hooks. A missing patient is not an error: zero rows are affected.
func (r *patientRepository) Touch(ctx context.Context, id string, at time.Time) error {
	log := r.log.Function("Touch")

	if err := r.getDB(ctx).Model(&Patient{}).Where("id = ?", id).
		UpdateColumn("updated_at", at).Error; err != nil {
		return log.Err("failed to touch patient", err, "id", id)
	}

	if err := database.NewCacheBuilder(r.db.Cache.Patient, id).Delete(); err != nil {
		log.Warn("failed to invalidate patient cache", "patientID", id, "error", err)
	}

	return nil
}

func (r *patientRepository) addToCache(ctx context.Context, patient *Patient) error {
	return database.NewCacheBuilder(r.db.Cache.Patient, patient.ID).
		WithStruct(patient).
		WithTTL(PATIENT_CACHE_EXPIRY).
		WithContext(ctx).
		Set()
}
