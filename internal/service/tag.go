package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"queryhub.app/api/internal/cache"
	"queryhub.app/api/internal/model"
	"queryhub.app/api/internal/store"
)

const defaultTrendingLimit = 4

// Trending scoring weights: a question counts fully, each of its upvotes
// counts half.
const (
	questionWeight = 1.0
	upvoteWeight   = 0.5
)

type TagService interface {
	// Trending returns the top tags by score, cache-aside. Score is
	// questionCount*1.0 + totalUpvotes*0.5; ties break alphabetically.
	Trending(ctx context.Context, limit int) ([]model.TagStat, error)
	// All returns every tag with its question count, most used first.
	All(ctx context.Context) ([]model.TagStat, error)
}

type tagService struct {
	questionStore store.QuestionStore
	trendingCache cache.TrendingCache
}

func NewTagService(questionStore store.QuestionStore, trendingCache cache.TrendingCache) TagService {
	return &tagService{
		questionStore: questionStore,
		trendingCache: trendingCache,
	}
}

func (s *tagService) Trending(ctx context.Context, limit int) ([]model.TagStat, error) {
	if limit < 1 {
		limit = defaultTrendingLimit
	}

	if stats, ok := s.trendingCache.Get(ctx); ok {
		return truncateStats(stats, limit), nil
	}

	stats, err := s.computeStats(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Score != stats[j].Score {
			return stats[i].Score > stats[j].Score
		}
		return stats[i].Name < stats[j].Name
	})

	s.trendingCache.Set(ctx, stats)
	slog.DebugContext(ctx, "trending tags recomputed", "tags", len(stats))
	return truncateStats(stats, limit), nil
}

func (s *tagService) All(ctx context.Context) ([]model.TagStat, error) {
	stats, err := s.computeStats(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Name < stats[j].Name
	})
	return stats, nil
}

func (s *tagService) computeStats(ctx context.Context) ([]model.TagStat, error) {
	sources, err := s.questionStore.TagSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tag sources: %w", err)
	}

	type tally struct {
		count   int
		upvotes int
	}
	tallies := make(map[string]*tally)
	for _, src := range sources {
		for _, tag := range src.Tags {
			tag = strings.ToLower(strings.TrimSpace(tag))
			if tag == "" {
				continue
			}
			t, ok := tallies[tag]
			if !ok {
				t = &tally{}
				tallies[tag] = t
			}
			t.count++
			t.upvotes += src.Upvotes
		}
	}

	stats := make([]model.TagStat, 0, len(tallies))
	for tag, t := range tallies {
		stats = append(stats, model.TagStat{
			Name:  displayTag(tag),
			Count: t.count,
			Score: float64(t.count)*questionWeight + float64(t.upvotes)*upvoteWeight,
		})
	}
	return stats, nil
}

func truncateStats(stats []model.TagStat, limit int) []model.TagStat {
	if len(stats) > limit {
		return stats[:limit]
	}
	return stats
}

// displayTag capitalizes the first character for display; tags stay
// lowercase in storage.
func displayTag(tag string) string {
	out := []rune(tag)
	if len(out) > 0 && out[0] >= 'a' && out[0] <= 'z' {
		out[0] -= 'a' - 'A'
	}
	return string(out)
}
