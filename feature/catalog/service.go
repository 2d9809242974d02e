package catalog

import (
	"context"

	"card-assets/core/reconcile"
	"card-assets/feature/assets"
	"card-assets/feature/catalog/models"

	"go.uber.org/zap"
)

// Service serves catalog reads with signed card images.
type Service struct {
	repo   Repository
	assets *assets.Service
	prefix string
	logger *zap.Logger
	audit  *reconcile.Spec
	cache  *reconcile.Cache
}

// NewService creates a new catalog service.
func NewService(repo Repository, assetSvc *assets.Service, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		assets: assetSvc,
		prefix: cfg.ImagePrefix,
		logger: logger,
		audit: &reconcile.Spec{
			Adapter:  newImageAdapter(repo, assetSvc.Storage(), cfg.ImagePrefix),
			CacheTTL: cfg.auditTTL(),
		},
		cache: reconcile.NewCache(),
	}
}

// ListCategories returns every category in display order.
func (s *Service) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.repo.ListCategories(ctx)
}

// ListCards returns the cards of a category with signed image URLs.
func (s *Service) ListCards(ctx context.Context, slug string) ([]models.CardView, error) {
	cards, err := s.repo.ListCardsByCategory(ctx, slug)
	if err != nil {
		return nil, err
	}

	views := make([]models.CardView, 0, len(cards))
	for i := range cards {
		views = append(views, s.view(ctx, &cards[i]))
	}
	return views, nil
}

// GetCard returns one card with a signed image URL.
func (s *Service) GetCard(ctx context.Context, id uint) (*models.CardView, error) {
	card, err := s.repo.GetCard(ctx, id)
	if err != nil {
		return nil, err
	}
	view := s.view(ctx, card)
	return &view, nil
}

// view signs the card image. A signing failure leaves ImageURL empty so the
// card itself still renders.
func (s *Service) view(ctx context.Context, card *models.GiftCard) models.CardView {
	v := models.CardView{
		ID:          card.ID,
		CategoryID:  card.CategoryID,
		Title:       card.Title,
		Description: card.Description,
		ValueCents:  card.ValueCents,
		Currency:    card.Currency,
		Claimed:     card.Claimed,
		CreatedAt:   card.CreatedAt,
	}
	if card.ImageURL == "" {
		return v
	}

	v.ImageKey = assets.KeyFromURL(card.ImageURL, s.prefix)
	signed, err := s.assets.ResolveSignedURL(ctx, v.ImageKey, 0)
	if err != nil {
		s.logger.Warn("Card image could not be signed",
			zap.Uint("card_id", card.ID), zap.String("image_key", v.ImageKey), zap.Error(err))
		return v
	}
	v.ImageURL = signed
	return v
}

// AuditImages compares the card images the catalog references with the objects
// in the bucket. refresh discards a cached snapshot first.
func (s *Service) AuditImages(ctx context.Context, refresh bool) (*reconcile.Report, error) {
	if refresh {
		s.cache.Invalidate(s.audit)
	}
	report, err := reconcile.ReconcileAll(ctx, s.audit, s.cache)
	if err != nil {
		return nil, err
	}
	if report.Summary.MissingStorage > 0 {
		s.logger.Warn("Card images missing from storage", zap.Int("missing", report.Summary.MissingStorage))
	}
	return report, nil
}

// AuditCard reports whether one card's image is present in storage.
func (s *Service) AuditCard(ctx context.Context, id uint) (*reconcile.Result, error) {
	card, err := s.repo.GetCard(ctx, id)
	if err != nil {
		return nil, err
	}
	key := assets.KeyFromURL(card.ImageURL, s.prefix)
	if key == "" {
		return &reconcile.Result{Refs: []string{}}, nil
	}
	return reconcile.ReconcileOne(ctx, s.audit, s.cache, key)
}
