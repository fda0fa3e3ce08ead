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
	TEMPLATE_CACHE_EXPIRY = 24 * time.Hour
)

type TemplateRepository interface {
	GetAll(ctx context.Context) ([]*VisitTemplate, error)
	GetByID(ctx context.Context, id string) (*VisitTemplate, error)
	GetByCategory(ctx context.Context, category TemplateCategory) ([]*VisitTemplate, error)
	Create(ctx context.Context, template *VisitTemplate) error
	Update(ctx context.Context, template *VisitTemplate) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type templateRepository struct {
	db  database.DB
	log logger.Logger
}

func NewTemplate(db database.DB) TemplateRepository {
	return &templateRepository{
		db:  db,
		log: logger.New("templateRepository"),
	}
}

func (r *templateRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *templateRepository) GetAll(ctx context.Context) ([]*VisitTemplate, error) {
	log := r.log.Function("GetAll")

	var templates []*VisitTemplate
	if err := r.getDB(ctx).Order("name ASC").Find(&templates).Error; err != nil {
		return nil, log.Err("failed to get all templates", err)
	}

	return templates, nil
}

// GetByID returns (nil, nil) when no template exists with the given id.
func (r *templateRepository) GetByID(ctx context.Context, id string) (*VisitTemplate, error) {
	log := r.log.Function("GetByID")

	var template VisitTemplate
	if found, err := database.NewCacheBuilder(r.db.Cache.Template, id).
		WithContext(ctx).Get(&template); err == nil && found {
		return &template, nil
	}

	if err := r.getDB(ctx).First(&template, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, log.Err("failed to get template by id", err, "id", id)
	}

	if err := r.addToCache(ctx, &template); err != nil {
		log.Warn("failed to add template to cache", "templateID", id, "error", err)
	}

	return &template, nil
}

func (r *templateRepository) GetByCategory(ctx context.Context, category TemplateCategory) ([]*VisitTemplate, error) {
	log := r.log.Function("GetByCategory")

	var templates []*VisitTemplate
	if err := r.getDB(ctx).Where("category = ?", category).
		Order("name ASC").Find(&templates).Error; err != nil {
		return nil, log.Err("failed to get templates by category", err, "category", category)
	}

	return templates, nil
}

func (r *templateRepository) Create(ctx context.Context, template *VisitTemplate) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(template).Error; err != nil {
		return log.Err("failed to create template", err, "template", template)
	}

	if err := r.addToCache(ctx, template); err != nil {
		log.Warn("failed to add template to cache", "templateID", template.ID, "error", err)
	}

	return nil
}

func (r *templateRepository) Update(ctx context.Context, template *VisitTemplate) error {
	log := r.log.Function("Update")

	if err := r.getDB(ctx).Save(template).Error; err != nil {
		return log.Err("failed to update template", err, "template", template)
	}

	if err := r.addToCache(ctx, template); err != nil {
		log.Warn("failed to update template in cache", "templateID", template.ID, "error", err)
	}

	return nil
}

func (r *templateRepository) Delete(ctx context.Context, id string) error {
	log := r.log.Function("Delete")

	if err := r.getDB(ctx).Delete(&VisitTemplate{}, "id = ?", id).Error; err != nil {
		return log.Err("failed to delete template", err, "id", id)
	}

	if err := database.NewCacheBuilder(r.db.Cache.Template, id).Delete(); err != nil {
		log.Warn("failed to remove template from cache", "templateID", id, "error", err)
	}

	return nil
}

func (r *templateRepository) Count(ctx context.Context) (int64, error) {
	log := r.log.Function("Count")

	var count int64
	if err := r.getDB(ctx).Model(&VisitTemplate{}).Count(&count).Error; err != nil {
		return 0, log.Err("failed to count templates", err)
	}

	return count, nil
}

func (r *templateRepository) addToCache(ctx context.Context, template *VisitTemplate) error {
	return database.NewCacheBuilder(r.db.Cache.Template, template.ID).
		WithStruct(template).
		WithTTL(TEMPLATE_CACHE_EXPIRY).
		WithContext(ctx).
		Set()
}
