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
	VISIT_CACHE_EXPIRY = 24 * time.Hour
)

type VisitRepository interface {
	GetAll(ctx context.Context) ([]*Visit, error)
	GetByID(ctx context.Context, id string) (*Visit, error)
	Create(ctx context.Context, visit *Visit) error
	Update(ctx context.Context, visit *Visit) error
	Delete(ctx context.Context, id string) error
	GetByPatientID(ctx context.Context, patientID string) ([]*Visit, error)
	DeleteByPatientID(ctx context.Context, patientID string) error
	GetInRange(ctx context.Context, start, end time.Time) ([]*Visit, error)
	GetSince(ctx context.Context, since time.Time) ([]*Visit, error)
}

type visitRepository struct {
	db  database.DB
	log logger.Logger
}

func NewVisit(db database.DB) VisitRepository {
	return &visitRepository{
		db:  db,
		log: logger.New("visitRepository"),
	}
}

func (r *visitRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *visitRepository) GetAll(ctx context.Context) ([]*Visit, error) {
	log := r.log.Function("GetAll")

	var visits []*Visit
	if err := r.getDB(ctx).Find(&visits).Error; err != nil {
		return nil, log.Err("failed to get all visits", err)
	}

	return visits, nil
}

// GetByID returns (nil, nil) when no visit exists with the given id.
func (r *visitRepository) GetByID(ctx context.Context, id string) (*Visit, error) {
	log := r.log.Function("GetByID")

	var visit Visit
	if found, err := database.NewCacheBuilder(r.db.Cache.Visit, id).
		WithContext(ctx).Get(&visit); err == nil && found {
		return &visit, nil
	}

	if err := r.getDB(ctx).First(&visit, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, log.Err("failed to get visit by id", err, "id", id)
	}

	if err := r.addToCache(ctx, &visit); err != nil {
		log.Warn("failed to add visit to cache", "visitID", id, "error", err)
	}

	return &visit, nil
}

func (r *visitRepository) Create(ctx context.Context, visit *Visit) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(visit).Error; err != nil {
		return log.Err("failed to create visit", err, "visit", visit)
	}

	if err := r.addToCache(ctx, visit); err != nil {
		log.Warn("failed to add visit to cache", "visitID", visit.ID, "error", err)
	}

	return nil
}

func (r *visitRepository) Update(ctx context.Context, visit *Visit) error {
	log := r.log.Function("Update")

	if err := r.getDB(ctx).Save(visit).Error; err != nil {
		return log.Err("failed to update visit", err, "visit", visit)
	}

	if err := r.addToCache(ctx, visit); err != nil {
		log.Warn("failed to update visit in cache", "visitID", visit.ID, "error", err)
	}

	return nil
}

func (r *visitRepository) Delete(ctx context.Context, id string) error {
	log := r.log.Function("Delete")

	if err := r.getDB(ctx).Delete(&Visit{}, "id = ?", id).Error; err != nil {
		return log.Err("failed to delete visit", err, "id", id)
	}

	if err := database.NewCacheBuilder(r.db.Cache.Visit, id).Delete(); err != nil {
		log.Warn("failed to remove visit from cache", "visitID", id, "error", err)
	}

	return nil
}

func (r *visitRepository) GetByPatientID(ctx context.Context, patientID string) ([]*Visit, error) {
	log := r.log.Function("GetByPatientID")

	var visits []*Visit
	if err := r.getDB(ctx).Where("patient_id = ?", patientID).
		Order("visit_date DESC").Find(&visits).Error; err != nil {
		return nil, log.Err("failed to get visits by patient id", err, "patientID", patientID)
	}

	return visits, nil
}

// DeleteByPatientID removes every visit owned by the patient. Cache entries
// are dropped first so stale visits cannot be served after the delete.
func (r *visitRepository) DeleteByPatientID(ctx context.Context, patientID string) error {
	log := r.log.Function("DeleteByPatientID")

	var ids []string
	if err := r.getDB(ctx).Model(&Visit{}).Where("patient_id = ?", patientID).
		Pluck("id", &ids).Error; err != nil {
		return log.Err("failed to list visits for cascade delete", err, "patientID", patientID)
	}

	for _, id := range ids {
		if err := database.NewCacheBuilder(r.db.Cache.Visit, id).Delete(); err != nil {
			log.Warn("failed to remove visit from cache", "visitID", id, "error", err)
		}
	}

	if err := r.getDB(ctx).Delete(&Visit{}, "patient_id = ?", patientID).Error; err != nil {
		return log.Err("failed to delete visits by patient id", err, "patientID", patientID)
	}

	return nil
}

// GetInRange returns visits with start <= visit_date <= end, newest first.
func (r *visitRepository) GetInRange(ctx context.Context, start, end time.Time) ([]*Visit, error) {
	log := r.log.Function("GetInRange")

	var visits []*Visit
	if err := r.getDB(ctx).Where("visit_date >= ? AND visit_date <= ?", start, end).
		Order("visit_date DESC").Find(&visits).Error; err != nil {
		return nil, log.Err("failed to get visits in range", err, "start", start, "end", end)
	}

	return visits, nil
}

func (r *visitRepository) GetSince(ctx context.Context, since time.Time) ([]*Visit, error) {
	log := r.log.Function("GetSince")

	var visits []*Visit
	if err := r.getDB(ctx).Where("visit_date >= ?", since).
		Order("visit_date DESC").Find(&visits).Error; err != nil {
		return nil, log.Err("failed to get visits since", err, "since", since)
	}

	return visits, nil
}

func (r *visitRepository) addToCache(ctx context.Context, visit *Visit) error {
	return database.NewCacheBuilder(r.db.Cache.Visit, visit.ID).
		WithStruct(visit).
		WithTTL(VISIT_CACHE_EXPIRY).
		WithContext(ctx).
		Set()
}
