package catalog

import (
	"context"
	"errors"
	"fmt"

	"card-assets/feature/catalog/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a category or card does not exist.
var ErrNotFound = errors.New("not found")

// Repository reads the catalog tables.
type Repository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListCardsByCategory(ctx context.Context, slug string) ([]models.GiftCard, error)
	GetCard(ctx context.Context, id uint) (*models.GiftCard, error)
	ListAllCards(ctx context.Context) ([]models.GiftCard, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a gorm-backed repository.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// Migrate creates or updates the catalog tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{}, &models.GiftCard{})
}

func (r *gormRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("position, id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (r *gormRepository) ListCardsByCategory(ctx context.Context, slug string) ([]models.GiftCard, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("category %s: %w", slug, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category %s: %w", slug, err)
	}

	var cards []models.GiftCard
	if err := r.db.WithContext(ctx).Where("category_id = ?", category.ID).Order("id").Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to list cards for %s: %w", slug, err)
	}
	return cards, nil
}

func (r *gormRepository) GetCard(ctx context.Context, id uint) (*models.GiftCard, error) {
	var card models.GiftCard
	err := r.db.WithContext(ctx).First(&card, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("card %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card %d: %w", id, err)
	}
	return &card, nil
}

func (r *gormRepository) ListAllCards(ctx context.Context) ([]models.GiftCard, error) {
	var cards []models.GiftCard
	if err := r.db.WithContext(ctx).Select("id", "image_url").Order("id").Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}
