package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/tandem-ai/tandem-engine/pkg/apperrors"
	"github.com/tandem-ai/tandem-engine/pkg/repositories"
)

// uuidRe matches canonical UUID strings. Matching input is passed through
// verbatim with no store access.
var uuidRe = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// RestaurantResolver turns a caller-supplied restaurant reference (UUID,
// slug, domain, or fuzzy name) into a canonical restaurant id.
type RestaurantResolver interface {
	// Resolve returns the canonical id for ref, or apperrors.ErrNotFound
	// when nothing matches. Store connectivity failures surface as
	// apperrors.ErrUpstream, never as NotFound.
	Resolve(ctx context.Context, ref string) (string, error)
}

type restaurantResolver struct {
	// repo is nil when no store is configured; non-UUID references then
	// resolve to NotFound.
	repo   repositories.RestaurantRepository
	logger *zap.Logger
}

// NewRestaurantResolver creates a resolver backed by repo. Pass nil when no
// store is configured.
func NewRestaurantResolver(repo repositories.RestaurantRepository, logger *zap.Logger) RestaurantResolver {
	return &restaurantResolver{
		repo:   repo,
		logger: logger.Named("resolver"),
	}
}

var _ RestaurantResolver = (*restaurantResolver)(nil)

// Resolve tries, in order: UUID passthrough, slug equality, domain
// equality, then a case-insensitive name match with dashes treated as
// spaces. The first hit wins.
func (r *restaurantResolver) Resolve(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", apperrors.ErrNotFound
	}

	if uuidRe.MatchString(ref) {
		return ref, nil
	}

	if r.repo == nil {
		return "", apperrors.ErrNotFound
	}

	id, found, err := r.repo.FindIDBySlug(ctx, ref)
	if err != nil {
		return "", fmt.Errorf("%w: slug lookup: %v", apperrors.ErrUpstream, err)
	}
	if found {
		return id, nil
	}

	id, found, err = r.repo.FindIDByDomain(ctx, ref)
	if err != nil {
		return "", fmt.Errorf("%w: domain lookup: %v", apperrors.ErrUpstream, err)
	}
	if found {
		return id, nil
	}

	candidate := strings.ReplaceAll(ref, "-", " ")
	id, found, err = r.repo.FindIDByNameLike(ctx, candidate)
	if err != nil {
		return "", fmt.Errorf("%w: name lookup: %v", apperrors.ErrUpstream, err)
	}
	if found {
		return id, nil
	}

	r.logger.Debug("reference did not resolve", zap.String("ref", ref))
	return "", apperrors.ErrNotFound
}
