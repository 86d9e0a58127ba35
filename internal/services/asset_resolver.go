package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sachinkumar2222/Productr/domain"
)

// AssetResolverImpl implements domain.AssetResolver against a blob store.
type AssetResolverImpl struct {
	blobStore domain.BlobStore
}

// NewAssetResolver creates a new asset resolver.
func NewAssetResolver(blobStore domain.BlobStore) *AssetResolverImpl {
	return &AssetResolverImpl{blobStore: blobStore}
}

// Reconcile implements domain.AssetResolver. The output is always the
// already-stable references first, then the newly-uploaded ones, each group
// keeping its relative input order. Uploads run concurrently; any failure
// fails the whole call so callers never persist a half-reconciled list.
func (r *AssetResolverImpl) Reconcile(ctx context.Context, entries []domain.ImageEntry) ([]string, error) {
	existing := make([]string, 0, len(entries))
	var inline []domain.ImageEntry
	for _, e := range entries {
		if e.IsInline() {
			inline = append(inline, e)
		} else {
			existing = append(existing, e.Ref)
		}
	}

	uploaded := make([]string, len(inline))
	g, gctx := errgroup.WithContext(ctx)
	for i, e := range inline {
		i, e := i, e
		g.Go(func() error {
			ref, err := r.blobStore.Store(gctx, e.Data)
			if err != nil {
				return fmt.Errorf("%w: %v", domain.ErrAssetUploadFailed, err)
			}
			uploaded[i] = ref
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return append(existing, uploaded...), nil
}
