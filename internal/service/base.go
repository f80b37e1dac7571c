package service

import (
	"context"
	"errors"

	"github.com/Riaraujo/testecrud/internal/repository"
	"github.com/Riaraujo/testecrud/internal/util"
	"github.com/Riaraujo/testecrud/pkg/cache"
	"github.com/Riaraujo/testecrud/pkg/logger"
	"github.com/Riaraujo/testecrud/pkg/monitoring"
	"go.uber.org/zap"
)

// Deps holds what every CRUD service needs.
type Deps struct {
	Folders    repository.FolderRepository
	Exams      repository.ExamRepository
	Questions  repository.QuestionRepository
	Transactor repository.Transactor
	Cache      cache.Cache
}

func NewDeps(store *repository.Store, c cache.Cache) Deps {
	if c == nil {
		c = cache.Nop{}
	}
	return Deps{
		Folders:    store.Folders,
		Exams:      store.Exams,
		Questions:  store.Questions,
		Transactor: store.Transactor,
		Cache:      c,
	}
}

// translate maps repository errors onto the errors the controllers know.
func translate(err error, notFound *util.NotFoundError) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return notFound
	case errors.Is(err, repository.ErrDuplicate):
		return &util.ConflictError{Message: "Já existe um registro com esse nome"}
	default:
		return err
	}
}

// invalidateLists drops every cached list. Lists are populated across
// entities, so any write can stale all of them.
func (d Deps) invalidateLists(ctx context.Context) {
	err := d.Cache.Delete(ctx,
		util.CacheKeyPastas,
		util.CacheKeyProvas,
		util.CacheKeyQuestoes,
		util.CacheKeyConhecimentos,
	)
	if err != nil {
		logger.Log.Warn("failed to invalidate list cache", zap.Error(err))
	}
}

// cachedList serves key from the cache, loading and storing it on a miss.
// Cache failures only cost a database round-trip.
func cachedList[T any](ctx context.Context, c cache.Cache, key string, load func(ctx context.Context) ([]T, error)) ([]T, error) {
	var cached []T
	hit, err := c.Get(ctx, key, &cached)
	if err != nil {
		logger.Log.Warn("list cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit {
		monitoring.CacheLookups.WithLabelValues("hit").Inc()
		return cached, nil
	}
	monitoring.CacheLookups.WithLabelValues("miss").Inc()

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.Set(ctx, key, items); err != nil {
		logger.Log.Warn("list cache write failed", zap.String("key", key), zap.Error(err))
	}
	return items, nil
}
