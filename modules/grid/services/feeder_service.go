package services

import (
	"context"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/blumenos/gridadmin/modules/grid/domain/entities/feeder"
)

type FeederService struct {
	repo feeder.Repository
}

func NewFeederService(repo feeder.Repository) *FeederService {
	return &FeederService{repo: repo}
}

func (s *FeederService) GetAll(ctx context.Context) ([]feeder.Feeder, error) {
	return s.repo.GetAll(ctx)
}

func (s *FeederService) GetByID(ctx context.Context, id uint) (feeder.Feeder, error) {
	return s.repo.GetByID(ctx, id)
}

// Search powers the type-ahead feeder picker. An empty query returns every
// feeder; otherwise matches are ranked fuzzily over code and name.
func (s *FeederService) Search(ctx context.Context, query string) ([]feeder.Feeder, error) {
	feeders, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return feeders, nil
	}
	type ranked struct {
		feeder feeder.Feeder
		rank   int
	}
	matches := make([]ranked, 0, len(feeders))
	for _, f := range feeders {
		best := fuzzy.RankMatchNormalizedFold(query, f.Code)
		if r := fuzzy.RankMatchNormalizedFold(query, f.Name); r != -1 && (best == -1 || r < best) {
			best = r
		}
		if best != -1 {
			matches = append(matches, ranked{feeder: f, rank: best})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].rank < matches[j].rank })
	result := make([]feeder.Feeder, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.feeder)
	}
	return result, nil
}
