package catalog

import (
	"context"
	"strconv"
	"strings"

	"card-assets/core/storage"
	"card-assets/feature/assets"
)

// imageAdapter reconciles card image references against the bucket.
type imageAdapter struct {
	repo   Repository
	store  *storage.Handle
	prefix string
}

func newImageAdapter(repo Repository, store *storage.Handle, prefix string) *imageAdapter {
	return &imageAdapter{repo: repo, store: store, prefix: prefix}
}

func (a *imageAdapter) Name() string {
	return "catalog"
}

// LoadReferences maps every card image key to the ids of the cards using it.
func (a *imageAdapter) LoadReferences(ctx context.Context) (map[string][]string, error) {
	cards, err := a.repo.ListAllCards(ctx)
	if err != nil {
		return nil, err
	}

	refs := make(map[string][]string)
	for _, card := range cards {
		key := assets.KeyFromURL(card.ImageURL, a.prefix)
		if key == "" {
			continue
		}
		refs[key] = append(refs[key], strconv.FormatUint(uint64(card.ID), 10))
	}
	return refs, nil
}

// LoadStorageSet lists the objects under the image prefix.
func (a *imageAdapter) LoadStorageSet(ctx context.Context) (map[string]struct{}, error) {
	client, err := a.store.Client()
	if err != nil {
		return nil, err
	}

	prefix := ""
	if a.prefix != "" {
		prefix = strings.TrimSuffix(a.prefix, "/") + "/"
	}

	keys, err := client.ListKeys(ctx, a.store.Bucket(), prefix)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return set, nil
}
