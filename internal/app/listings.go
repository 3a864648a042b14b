package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mwalali_homes/internal/domain"
)

const (
	SourceAI       = "ai"
	SourceCache    = "cache"
	SourceFallback = "fallback"
	SourceCatalog  = "catalog"
)

// DefaultAssistantTimeout bounds one model call including its retries. It must
// stay below the HTTP handler timeout so the fallback still gets written.
const DefaultAssistantTimeout = 20 * time.Second

var (
	ErrInvalidCategory  = errors.New("category must be Sale or Rent")
	errAssistantMissing = errors.New("assistant not configured")
)

type ListingService struct {
	catalog  domain.Catalog
	ai       domain.Assistant
	cache    domain.Cache
	cacheTTL time.Duration
	budget   time.Duration
}

// NewListingService wires the read side. ai and cache may be nil: search then
// always falls back and nothing is cached.
func NewListingService(c domain.Catalog, ai domain.Assistant, cache domain.Cache, ttl time.Duration) *ListingService {
	return &ListingService{catalog: c, ai: ai, cache: cache, cacheTTL: ttl, budget: DefaultAssistantTimeout}
}

// WithAssistantTimeout overrides how long Search waits for the model.
func (s *ListingService) WithAssistantTimeout(d time.Duration) *ListingService {
	if d > 0 {
		s.budget = d
	}
	return s
}

// ParseCategory accepts any casing; blank means all categories.
func ParseCategory(s string) (domain.Category, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return "", nil
	}
	c := domain.Category(cases.Title(language.English).String(s))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// List filters in catalog order: category first, then a case-insensitive
// substring match on title, city, description or address.
func (s *ListingService) List(q domain.ListingQuery) []domain.Property {
	needle := fold(strings.TrimSpace(q.Q))
	out := make([]domain.Property, 0)
	for _, p := range s.catalog.All() {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if needle != "" && !matches(p, needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matches(p domain.Property, needle string) bool {
	for _, field := range []string{p.Title, p.City, p.Description, p.Address} {
		if strings.Contains(fold(field), needle) {
			return true
		}
	}
	return false
}

// fold is Unicode case folding; a Caser is stateful so one is made per call.
func fold(s string) string { return cases.Fold().String(s) }

func (s *ListingService) Get(id string) (domain.Property, error) {
	return s.catalog.Get(id)
}

// Search ranks listings for a natural-language query with the assistant. Any
// failure degrades to the whole catalog, unranked.
func (s *ListingService) Search(ctx context.Context, query string) domain.SearchResult {
	q := strings.TrimSpace(query)
	if q == "" {
		return s.ordered(q, SourceCatalog, s.catalog.IDs())
	}

	key := searchKey(q)
	if s.cache != nil {
		var ids []string
		ok, err := s.cache.Get(ctx, key, &ids)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("search cache read failed")
		}
		if ok {
			if res := s.ordered(q, SourceCache, ids); len(res.MatchedIDs) > 0 || len(ids) == 0 {
				return res
			}
			// every cached id left the catalog
			if err := s.cache.Del(ctx, key); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("stale search cache delete failed")
			}
		}
	}

	ids, err := s.rank(ctx, q)
	if err != nil {
		log.Error().Err(err).Str("query", q).Msg("ai search failed, returning all listings")
		return s.ordered(q, SourceFallback, s.catalog.IDs())
	}

	res := s.ordered(q, SourceAI, ids)
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, res.MatchedIDs, int(s.cacheTTL.Seconds())); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("search cache write failed")
		}
	}
	return res
}

func (s *ListingService) rank(ctx context.Context, q string) ([]string, error) {
	if s.ai == nil {
		return nil, errAssistantMissing
	}
	ctx, cancel := context.WithTimeout(ctx, s.budget)
	defer cancel()
	return s.ai.RankProperties(ctx, q, Summaries(s.catalog.All()))
}

// ordered resolves ids against the catalog in the given order, dropping
// unknown and repeated ids.
func (s *ListingService) ordered(q, source string, ids []string) domain.SearchResult {
	res := domain.SearchResult{Query: q, Source: source, MatchedIDs: make([]string, 0, len(ids)), Items: make([]domain.Property, 0, len(ids))}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		p, err := s.catalog.Get(id)
		if err != nil {
			continue
		}
		seen[id] = struct{}{}
		res.MatchedIDs = append(res.MatchedIDs, id)
		res.Items = append(res.Items, p)
	}
	return res
}

func searchKey(q string) string {
	norm := strings.Join(strings.Fields(fold(q)), " ")
	sum := sha1.Sum([]byte(norm))
	return "search:v1:" + hex.EncodeToString(sum[:])
}
