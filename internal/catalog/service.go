package catalog

import (
	"context"
	"fmt"
	"log"
	"time"

	"bookshelf/internal/cache"
)

// featuredProbes are the fixed topic queries used to assemble the
// featured list. Each probe contributes at most featuredProbeSize
// records regardless of how many the caller asked for.
var featuredProbes = []string{
	"bestseller fiction",
	"popular science books",
	"classic literature",
	"modern romance novels",
	"business books",
	"self-help books",
}

const featuredProbeSize = 2

type Config struct {
	SearchTTL time.Duration // search result pages
	DetailTTL time.Duration // single-volume lookups
	Probes    []string
}

// Service orchestrates search, detail fetch, caching and persistence
// against the remote catalog. It holds no mutable state of its own; all
// shared state lives in the injected cache and repository.
type Service struct {
	api       VolumeAPI
	repo      Repository
	cache     cache.Cache
	searchTTL time.Duration
	detailTTL time.Duration
	probes    []string
}

func NewService(api VolumeAPI, repo Repository, c cache.Cache, cfg Config) *Service {
	if cfg.SearchTTL <= 0 {
		cfg.SearchTTL = time.Hour
	}
	if cfg.DetailTTL <= 0 {
		cfg.DetailTTL = 2 * time.Hour
	}
	if len(cfg.Probes) == 0 {
		cfg.Probes = featuredProbes
	}
	return &Service{
		api:       api,
		repo:      repo,
		cache:     c,
		searchTTL: cfg.SearchTTL,
		detailTTL: cfg.DetailTTL,
		probes:    cfg.Probes,
	}
}

func searchKey(query string, offset, pageSize int) string {
	return fmt.Sprintf("search:%s:%d:%d", query, offset, pageSize)
}

func detailKey(externalID string) string {
	return "detail:" + externalID
}

// Search runs one remote query, persisting every normalized record and
// caching the page. A warm cache entry is returned verbatim with no
// outbound call. Failures are reported through SearchResult.Err and are
// never cached.
func (s *Service) Search(ctx context.Context, query string, pageSize, offset int) SearchResult {
	key := searchKey(query, offset, pageSize)
	if v, ok := s.cache.Get(key); ok {
		if res, ok := v.(SearchResult); ok {
			return res
		}
	}

	resp, err := s.api.SearchVolumes(ctx, query, pageSize, offset)
	if err != nil {
		log.Printf("catalog search %q failed: %v", query, err)
		return SearchResult{Records: []Record{}, Err: err.Error()}
	}

	records := make([]Record, 0, len(resp.Items))
	for i := range resp.Items {
		rec := Normalize(&resp.Items[i])
		if rec.ExternalID == "" {
			log.Printf("catalog search %q: dropping item without id", query)
			continue
		}
		stored, err := s.repo.Upsert(ctx, &rec)
		if err != nil {
			log.Printf("catalog search %q: upsert %s failed: %v", query, rec.ExternalID, err)
			return SearchResult{Records: []Record{}, Err: err.Error()}
		}
		records = append(records, stored)
	}

	result := SearchResult{Records: records, TotalCount: resp.TotalItems}
	s.cache.Set(key, result, s.searchTTL)
	return result
}

// GetDetails fetches one volume by its external id. Any failure resolves
// to a nil record and a non-nil error; nothing is cached on failure.
func (s *Service) GetDetails(ctx context.Context, externalID string) (*Record, error) {
	key := detailKey(externalID)
	if v, ok := s.cache.Get(key); ok {
		if rec, ok := v.(Record); ok {
			return &rec, nil
		}
	}

	vol, err := s.api.GetVolume(ctx, externalID)
	if err != nil {
		log.Printf("catalog detail %s failed: %v", externalID, err)
		return nil, err
	}

	rec := Normalize(vol)
	if rec.ExternalID == "" {
		log.Printf("catalog detail %s: response missing volume id", externalID)
		return nil, ErrNotFound
	}

	stored, err := s.repo.Upsert(ctx, &rec)
	if err != nil {
		log.Printf("catalog detail %s: upsert failed: %v", externalID, err)
		return nil, err
	}

	s.cache.Set(key, stored, s.detailTTL)
	return &stored, nil
}

// GetFeatured aggregates a small fixed page from every probe query and
// deduplicates by external id. A record seen by several probes keeps its
// first position but the value written by the last probe that returned
// it. A failing probe only shrinks coverage; the others still count.
func (s *Service) GetFeatured(ctx context.Context, maxResults int) []Record {
	order := make([]string, 0, len(s.probes)*featuredProbeSize)
	byID := make(map[string]Record)

	for _, probe := range s.probes {
		res := s.Search(ctx, probe, featuredProbeSize, 0)
		if res.Err != "" {
			log.Printf("featured probe %q failed: %s", probe, res.Err)
			continue
		}
		for _, rec := range res.Records {
			if _, seen := byID[rec.ExternalID]; !seen {
				order = append(order, rec.ExternalID)
			}
			byID[rec.ExternalID] = rec
		}
	}

	out := make([]Record, 0, len(order))
	for _, id := range order {
		out = append(out, byID[id])
	}
	if len(out) > maxResults {
		out = out[:maxResults]
	}
	return out
}
