package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Riaraujo/testecrud/internal/model"
	"github.com/Riaraujo/testecrud/internal/repository"
	"github.com/Riaraujo/testecrud/internal/util"
	"github.com/Riaraujo/testecrud/pkg/logger"
	"go.uber.org/zap"
)

type CreateProvaRequest struct {
	Titulo    string `json:"titulo" binding:"required,max=200"`
	Descricao string `json:"descricao" binding:"max=1000"`
	Pasta     string `json:"pasta" binding:"required"`
}

type UpdateProvaRequest struct {
	Titulo    *string `json:"titulo" binding:"omitempty,max=200"`
	Descricao *string `json:"descricao" binding:"omitempty,max=1000"`
	Pasta     *string `json:"pasta"`
}

type ExamService struct {
	Deps
}

func NewExamService(deps Deps) *ExamService {
	return &ExamService{Deps: deps}
}

func (s *ExamService) List(ctx context.Context) ([]model.ProvaDetalhe, error) {
	return cachedList(ctx, s.Cache, util.CacheKeyProvas, func(ctx context.Context) ([]model.ProvaDetalhe, error) {
		provas, err := s.Exams.List(ctx)
		if err != nil {
			return nil, err
		}
		return s.populateProvas(ctx, provas)
	})
}

func (s *ExamService) Get(ctx context.Context, id string) (*model.ProvaDetalhe, error) {
	prova, err := s.Exams.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, util.ErrProvaNotFound)
	}
	populated, err := s.populateProvas(ctx, []model.Prova{*prova})
	if err != nil {
		return nil, err
	}
	return &populated[0], nil
}

func (s *ExamService) Create(ctx context.Context, req *CreateProvaRequest) (*model.Prova, error) {
	titulo := strings.TrimSpace(req.Titulo)
	if titulo == "" {
		return nil, util.Invalid("titulo", "campo obrigatório")
	}
	pastaID := strings.TrimSpace(req.Pasta)
	if pastaID == "" {
		return nil, util.Invalid("pasta", "campo obrigatório")
	}

	prova := &model.Prova{
		Titulo:    titulo,
		Descricao: strings.TrimSpace(req.Descricao),
		Pasta:     pastaID,
		Questoes:  []string{},
	}

	err := s.Transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.Folders.FindByID(ctx, pastaID); err != nil {
			return translate(err, util.ErrPastaNotFound)
		}
		if err := s.Exams.Create(ctx, prova); err != nil {
			return translate(err, util.ErrProvaNotFound)
		}
		return translate(s.Folders.AddProva(ctx, pastaID, prova.ID), util.ErrPastaNotFound)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateLists(ctx)
	logger.Log.Info("prova created", zap.String("id", prova.ID), zap.String("pasta", pastaID))
	return prova, nil
}

// Update merges the given fields. Changing pasta moves the prova between
// the two pastas' lists.
func (s *ExamService) Update(ctx context.Context, id string, req *UpdateProvaRequest) (*model.Prova, error) {
	var updated *model.Prova
	err := s.Transactor.WithTransaction(ctx, func(ctx context.Context) error {
		prova, err := s.Exams.FindByID(ctx, id)
		if err != nil {
			return translate(err, util.ErrProvaNotFound)
		}

		if req.Titulo != nil {
			titulo := strings.TrimSpace(*req.Titulo)
			if titulo == "" {
				return util.Invalid("titulo", "campo obrigatório")
			}
			prova.Titulo = titulo
		}
		if req.Descricao != nil {
			prova.Descricao = strings.TrimSpace(*req.Descricao)
		}

		oldPasta := prova.Pasta
		if req.Pasta != nil {
			newPasta := strings.TrimSpace(*req.Pasta)
			if newPasta == "" {
				return util.Invalid("pasta", "campo obrigatório")
			}
			if newPasta != oldPasta {
				if _, err := s.Folders.FindByID(ctx, newPasta); err != nil {
					return translate(err, util.ErrPastaNotFound)
				}
				prova.Pasta = newPasta
			}
		}

		if err := s.Exams.Update(ctx, prova); err != nil {
			return translate(err, util.ErrProvaNotFound)
		}
		if prova.Pasta != oldPasta {
			if err := s.Folders.PullProva(ctx, prova.ID); err != nil {
				return err
			}
			if err := s.Folders.AddProva(ctx, prova.Pasta, prova.ID); err != nil {
				return translate(err, util.ErrPastaNotFound)
			}
		}
		updated = prova
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateLists(ctx)
	return updated, nil
}

// Delete removes the prova and its questoes and detaches it from pastas.
func (s *ExamService) Delete(ctx context.Context, id string) error {
	err := s.Transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.Exams.FindByID(ctx, id); err != nil {
			return translate(err, util.ErrProvaNotFound)
		}
		return deleteProvaCascade(ctx, s.Deps, id)
	})
	if err != nil {
		return err
	}

	s.invalidateLists(ctx)
	logger.Log.Info("prova deleted", zap.String("id", id))
	return nil
}

// deleteProvaCascade deletes a prova's questoes, pulls it from every pasta
// and deletes it. A prova already gone is not an error.
func deleteProvaCascade(ctx context.Context, d Deps, provaID string) error {
	n, err := d.Questions.DeleteByProva(ctx, provaID)
	if err != nil {
		return err
	}
	if err := d.Folders.PullProva(ctx, provaID); err != nil {
		return err
	}
	if err := d.Exams.Delete(ctx, provaID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	logger.Log.Debug("prova cascade", zap.String("prova", provaID), zap.Int64("questoes", n))
	return nil
}
