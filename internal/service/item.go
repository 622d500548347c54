package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/wearcast/wearcast/internal/apperr"
	"github.com/wearcast/wearcast/internal/metrics"
	"github.com/wearcast/wearcast/internal/model"
	"github.com/wearcast/wearcast/internal/repository"
)

// ItemStore is the persistence contract the item service relies on.
// All mutations are single-round-trip, atomically-applied operations.
type ItemStore interface {
	CreateItem(ctx context.Context, item *model.Item) error
	GetItemByID(ctx context.Context, id string) (*model.Item, error)
	ListItems(ctx context.Context) ([]*model.Item, error)
	DeleteItem(ctx context.Context, id string) error
	AddLike(ctx context.Context, itemID, userID string) (*model.Item, error)
	RemoveLike(ctx context.Context, itemID, userID string) (*model.Item, error)
}

// FeedCache caches the public item feed.
type FeedCache interface {
	GetFeed(ctx context.Context) ([]*model.Item, error)
	SetFeed(ctx context.Context, items []*model.Item, ttl time.Duration) error
	InvalidateFeed(ctx context.Context) error
}

// ItemService handles wearable item business logic, including the
// ownership checks that guard deletion.
type ItemService struct {
	store   ItemStore
	cache   FeedCache
	feedTTL time.Duration
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewItemService creates a new ItemService.
// cache may be nil, in which case every list hits the store.
func NewItemService(store ItemStore, cache FeedCache, feedTTL time.Duration, logger *slog.Logger, recorder metrics.Recorder) *ItemService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ItemService{
		store:   store,
		cache:   cache,
		feedTTL: feedTTL,
		logger:  logger,
		metrics: recorder,
	}
}

// CreateItemInput defines input for creating an item.
type CreateItemInput struct {
	Name     string
	Weather  model.Weather
	ImageURL string
}

// CreateItem validates the payload and creates an item owned by ownerID.
func (s *ItemService) CreateItem(ctx context.Context, ownerID string, input CreateItemInput) (*model.Item, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}
	if !input.Weather.IsValid() {
		return nil, apperr.BadRequest("weather must be one of cold, warm or hot")
	}
	if err := validateURL(input.ImageURL, "image"); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := &model.Item{
		ID:        ulid.Make().String(),
		Name:      input.Name,
		Weather:   input.Weather,
		ImageURL:  input.ImageURL,
		OwnerID:   ownerID,
		Likes:     []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.CreateItem(ctx, item); err != nil {
		return nil, apperr.Internal("failed to create item", err)
	}

	s.metrics.IncItemCreated()
	s.invalidateFeed(ctx)

	return item, nil
}

// ListItems returns all items, served from the feed cache when possible.
// Cache failures degrade to a store read, never to a request failure.
func (s *ItemService) ListItems(ctx context.Context) ([]*model.Item, error) {
	if s.cache != nil {
		if items, err := s.cache.GetFeed(ctx); err == nil {
			s.metrics.IncFeedCacheHit()
			return items, nil
		}
		s.metrics.IncFeedCacheMiss()
	}

	items, err := s.store.ListItems(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list items", err)
	}

	if s.cache != nil {
		if err := s.cache.SetFeed(ctx, items, s.feedTTL); err != nil {
			s.logger.Warn("feed cache write failed", slog.String("error", err.Error()))
		}
	}

	return items, nil
}

// GetItem returns a single item by ID.
func (s *ItemService) GetItem(ctx context.Context, itemID string) (*model.Item, error) {
	if err := ValidateItemID(itemID); err != nil {
		return nil, err
	}

	item, err := s.store.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, apperr.NotFound("Item not found")
		}
		return nil, apperr.Internal("failed to get item", err)
	}

	return item, nil
}

// DeleteItem removes an item on behalf of callerID.
// The check order is load-bearing: identifier syntax, then existence, then
// ownership, then the delete itself. A non-owner probing an existing item
// sees forbidden; a missing item yields not found.
func (s *ItemService) DeleteItem(ctx context.Context, callerID, itemID string) error {
	if err := ValidateItemID(itemID); err != nil {
		return err
	}

	item, err := s.store.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return apperr.NotFound("Item not found")
		}
		return apperr.Internal("failed to get item", err)
	}

	if !item.OwnedBy(callerID) {
		return apperr.Forbidden("You don't have permission to delete this item")
	}

	if err := s.store.DeleteItem(ctx, itemID); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			// Deleted out from under us between the lookup and the delete.
			return apperr.NotFound("Item not found")
		}
		return apperr.Internal("failed to delete item", err)
	}

	s.metrics.IncItemDeleted()
	s.invalidateFeed(ctx)

	return nil
}

// LikeItem adds callerID to the item's like set.
// Any authenticated identity may like any item; liking twice is a no-op.
func (s *ItemService) LikeItem(ctx context.Context, callerID, itemID string) (*model.Item, error) {
	if err := ValidateItemID(itemID); err != nil {
		return nil, err
	}

	item, err := s.store.AddLike(ctx, itemID, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, apperr.NotFound("Item not found")
		}
		return nil, apperr.Internal("failed to like item", err)
	}

	s.metrics.IncLikeAdded()
	s.invalidateFeed(ctx)

	return item, nil
}

// UnlikeItem removes callerID from the item's like set.
// Unliking an item the caller never liked is a no-op.
func (s *ItemService) UnlikeItem(ctx context.Context, callerID, itemID string) (*model.Item, error) {
	if err := ValidateItemID(itemID); err != nil {
		return nil, err
	}

	item, err := s.store.RemoveLike(ctx, itemID, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, apperr.NotFound("Item not found")
		}
		return nil, apperr.Internal("failed to unlike item", err)
	}

	s.metrics.IncLikeRemoved()
	s.invalidateFeed(ctx)

	return item, nil
}

// invalidateFeed drops the cached feed after a mutation.
// Failures are logged, not surfaced - the TTL bounds staleness anyway.
func (s *ItemService) invalidateFeed(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFeed(ctx); err != nil {
		s.logger.Warn("feed cache invalidation failed", slog.String("error", err.Error()))
	}
}
