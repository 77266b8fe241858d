package directory

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/vetlyst/directory-api/internal/model"
	"github.com/vetlyst/directory-api/internal/repository"
	"github.com/vetlyst/directory-api/pkg/slug"
)

const citiesCacheKey = "cities"

type Servicer interface {
	ListClinics(ctx context.Context, filter model.ClinicFilter) ([]*model.Clinic, error)
	ListCities(ctx context.Context) ([]string, error)
	ResolveSlug(ctx context.Context, s string) (*model.Clinic, error)
}

// Service serves the read-mostly clinic directory. List and city queries are
// cached with a short TTL; the underlying rows only change on bulk import.
type Service struct {
	repo  repository.ClinicRepository
	cache *gocache.Cache
	ttl   time.Duration
}

func NewService(repo repository.ClinicRepository, ttl, cleanupInterval time.Duration) *Service {
	return &Service{
		repo:  repo,
		cache: gocache.New(ttl, cleanupInterval),
		ttl:   ttl,
	}
}

func (s *Service) ListClinics(ctx context.Context, filter model.ClinicFilter) ([]*model.Clinic, error) {
	key := listCacheKey(filter)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]*model.Clinic), nil
	}

	clinics, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list clinics: %w", err)
	}

	s.cache.Set(key, clinics, s.ttl)
	return clinics, nil
}

func (s *Service) ListCities(ctx context.Context) ([]string, error) {
	if cached, ok := s.cache.Get(citiesCacheKey); ok {
		return cached.([]string), nil
	}

	cities, err := s.repo.ListCities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}

	s.cache.Set(citiesCacheKey, cities, s.ttl)
	return cities, nil
}

// ResolveSlug maps an incoming path segment back to a clinic. Only the short
// place ID at the tail of the slug carries identity; the name portion is
// ignored, so stale or retitled slugs still resolve.
func (s *Service) ResolveSlug(ctx context.Context, incoming string) (*model.Clinic, error) {
	shortID := slug.ShortID(incoming)
	return s.repo.FindByPlaceIDPrefix(ctx, shortID)
}

func listCacheKey(filter model.ClinicFilter) string {
	return fmt.Sprintf("clinics|%s|%s|%s|%s", filter.Search, filter.ClinicType, filter.City, filter.SortBy)
}
