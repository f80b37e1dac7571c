package repository

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock

import (
	"context"
	"errors"

	"github.com/Riaraujo/testecrud/internal/model"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

// FolderRepository persists pastas. List results are ordered by creation
// time, newest first.
type FolderRepository interface {
	Create(ctx context.Context, pasta *model.Pasta) error
	FindByID(ctx context.Context, id string) (*model.Pasta, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.Pasta, error)
	// FindOrCreate returns the root pasta with the given name, inserting it
	// atomically when absent. The bool reports whether it was inserted.
	FindOrCreate(ctx context.Context, nome string) (*model.Pasta, bool, error)
	List(ctx context.Context) ([]model.Pasta, error)
	Update(ctx context.Context, pasta *model.Pasta) error
	Delete(ctx context.Context, id string) error

	AddProva(ctx context.Context, pastaID, provaID string) error
	// PullProva removes provaID from every pasta that references it.
	PullProva(ctx context.Context, provaID string) error
	AddSubpasta(ctx context.Context, parentID, childID string) error
	PullSubpasta(ctx context.Context, childID string) error
	// DetachChildren turns every child of parentID into a root pasta.
	DetachChildren(ctx context.Context, parentID string) error
	SetParent(ctx context.Context, id string, parentID *string) error
}

type ExamRepository interface {
	Create(ctx context.Context, prova *model.Prova) error
	FindByID(ctx context.Context, id string) (*model.Prova, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.Prova, error)
	FindByPasta(ctx context.Context, pastaID string) ([]model.Prova, error)
	// FindOrCreate returns the prova with the given title inside pastaID,
	// inserting it atomically when absent.
	FindOrCreate(ctx context.Context, titulo, pastaID string) (*model.Prova, bool, error)
	List(ctx context.Context) ([]model.Prova, error)
	Update(ctx context.Context, prova *model.Prova) error
	Delete(ctx context.Context, id string) error

	AddQuestao(ctx context.Context, provaID, questaoID string) error
	// PullQuestao removes questaoID from every prova that references it.
	PullQuestao(ctx context.Context, questaoID string) error
}

type QuestionRepository interface {
	Create(ctx context.Context, questao *model.Questao) error
	FindByID(ctx context.Context, id string) (*model.Questao, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.Questao, error)
	List(ctx context.Context) ([]model.Questao, error)
	Update(ctx context.Context, questao *model.Questao) error
	Delete(ctx context.Context, id string) error
	DeleteByProva(ctx context.Context, provaID string) (int64, error)
}

// Transactor runs fn so that every repository call made with the context it
// receives commits or rolls back together, when the driver supports it.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Ping reports database reachability for the status endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Store bundles one driver's repositories.
type Store struct {
	Driver     string
	Folders    FolderRepository
	Exams      ExamRepository
	Questions  QuestionRepository
	Transactor Transactor
	Pinger     Pinger
}

// OrderByIDs returns docs re-ordered to follow ids, skipping ids that have
// no document.
func OrderByIDs[T any](ids []string, docs []T, id func(T) string) []T {
	byID := make(map[string]T, len(docs))
	for _, d := range docs {
		byID[id(d)] = d
	}
	out := make([]T, 0, len(ids))
	for _, i := range ids {
		if d, ok := byID[i]; ok {
			out = append(out, d)
		}
	}
	return out
}
