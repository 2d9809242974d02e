// Package catalog implements the read-only gift card catalog.
//
// Categories and gift cards live in the catalog database (MySQL in production,
// SQLite for tests). Each card stores the object-store URL of its artwork; when a
// card is served, the filename is extracted from that URL, placed under the
// configured image prefix and signed through the assets service.
//
// A card whose image cannot be signed is still returned, with an empty image_url,
// and the failure is logged.
//
// # HTTP Endpoints
//
//   - GET /catalog/categories : categories in display order.
//   - GET /catalog/categories/:slug/cards : cards of a category.
//   - GET /catalog/cards/:id : a single card.
//   - GET /catalog/audit : card images missing from the bucket, and orphaned objects.
//   - GET /catalog/cards/:id/audit : whether one card's image is stored.
//
// The feature is disabled when no database connection is available.
package catalog
