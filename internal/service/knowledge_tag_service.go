package service

import (
	"context"
	"sort"
	"strings"

	"github.com/Riaraujo/testecrud/internal/model"
	"github.com/Riaraujo/testecrud/internal/util"
)

type KnowledgeTagService struct {
	Deps
}

func NewKnowledgeTagService(deps Deps) *KnowledgeTagService {
	return &KnowledgeTagService{Deps: deps}
}

// ListTags returns every knowledge tag in use, most used first and then
// alphabetically. A non-empty disciplina restricts the count to questões of
// that discipline, compared case-insensitively; only the full listing is
// cached.
func (s *KnowledgeTagService) ListTags(ctx context.Context, disciplina string) ([]model.Conhecimento, error) {
	disciplina = strings.TrimSpace(disciplina)
	if disciplina != "" {
		return s.countTags(ctx, disciplina)
	}
	return cachedList(ctx, s.Cache, util.CacheKeyConhecimentos, func(ctx context.Context) ([]model.Conhecimento, error) {
		return s.countTags(ctx, "")
	})
}

func (s *KnowledgeTagService) countTags(ctx context.Context, disciplina string) ([]model.Conhecimento, error) {
	questoes, err := s.Questions.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, q := range questoes {
		if disciplina != "" && !strings.EqualFold(strings.TrimSpace(q.Disciplina), disciplina) {
			continue
		}
		for _, tag := range model.NormalizeConhecimentos(q.Conhecimentos) {
			counts[tag]++
		}
	}

	tags := make([]model.Conhecimento, 0, len(counts))
	for nome, n := range counts {
		tags = append(tags, model.Conhecimento{Nome: nome, Questoes: n})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Questoes != tags[j].Questoes {
			return tags[i].Questoes > tags[j].Questoes
		}
		return tags[i].Nome < tags[j].Nome
	})
	return tags, nil
}
