package cache

import (
	"context"
	"errors"
	"log"

	"loja_virtual/internal/domain/entities"
	"loja_virtual/internal/usecase/interfaces"
)

// CachedCartRepository decorates a cart repository with a write-through
// cache. The repository stays the source of truth: cache failures are
// logged and the call falls back to (or proceeds with) the repository.

type CachedCartRepository struct {
	repo  interfaces.ICartRepository
	cache CartCache
}

var _ interfaces.ICartRepository = (*CachedCartRepository)(nil)

func NewCachedCartRepository(repo interfaces.ICartRepository, cache CartCache) *CachedCartRepository {
	return &CachedCartRepository{repo: repo, cache: cache}
}

func (r *CachedCartRepository) Get(ctx context.Context, namespace string) (entities.Cart, error) {
	cart, err := r.cache.Get(ctx, namespace)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		log.Printf("[cart][cache] get failed namespace=%s err=%v", namespace, err)
	}

	cart, err = r.repo.Get(ctx, namespace)
	if err != nil {
		return entities.Cart{}, err
	}
	if err := r.cache.Set(ctx, cart); err != nil {
		log.Printf("[cart][cache] backfill failed namespace=%s err=%v", namespace, err)
	}
	return cart, nil
}

func (r *CachedCartRepository) Save(ctx context.Context, cart entities.Cart) error {
	if err := r.repo.Save(ctx, cart); err != nil {
		return err
	}
	if err := r.cache.Set(ctx, cart); err != nil {
		log.Printf("[cart][cache] set failed namespace=%s err=%v", cart.Namespace, err)
	}
	return nil
}

func (r *CachedCartRepository) Delete(ctx context.Context, namespace string) error {
	if err := r.repo.Delete(ctx, namespace); err != nil {
		return err
	}
	if err := r.cache.Delete(ctx, namespace); err != nil {
		log.Printf("[cart][cache] delete failed namespace=%s err=%v", namespace, err)
	}
	return nil
}
