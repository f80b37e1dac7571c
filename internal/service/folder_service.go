package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Riaraujo/testecrud/internal/model"
	"github.com/Riaraujo/testecrud/internal/util"
	"github.com/Riaraujo/testecrud/pkg/logger"
	"go.uber.org/zap"
)

// maxFolderDepth bounds the parent walk when checking for cycles.
const maxFolderDepth = 1000

type CreatePastaRequest struct {
	Nome      string  `json:"nome" binding:"required,max=100"`
	Descricao string  `json:"descricao" binding:"max=500"`
	PastaPai  *string `json:"pastaPai"`
}

type UpdatePastaRequest struct {
	Nome      *string `json:"nome" binding:"omitempty,max=100"`
	Descricao *string `json:"descricao" binding:"omitempty,max=500"`
}

type MoverPastaRequest struct {
	PastaPai *string `json:"pastaPai"`
}

type FolderService struct {
	Deps
}

func NewFolderService(deps Deps) *FolderService {
	return &FolderService{Deps: deps}
}

func (s *FolderService) List(ctx context.Context) ([]model.PastaDetalhe, error) {
	return cachedList(ctx, s.Cache, util.CacheKeyPastas, func(ctx context.Context) ([]model.PastaDetalhe, error) {
		pastas, err := s.Folders.List(ctx)
		if err != nil {
			return nil, err
		}
		return s.populatePastas(ctx, pastas)
	})
}

func (s *FolderService) Get(ctx context.Context, id string) (*model.PastaDetalhe, error) {
	pasta, err := s.Folders.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, util.ErrPastaNotFound)
	}
	populated, err := s.populatePastas(ctx, []model.Pasta{*pasta})
	if err != nil {
		return nil, err
	}
	return &populated[0], nil
}

func (s *FolderService) Create(ctx context.Context, req *CreatePastaRequest) (*model.Pasta, error) {
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		return nil, util.Invalid("nome", "campo obrigatório")
	}
	parent := normalizeRef(req.PastaPai)

	pasta := &model.Pasta{
		Nome:      nome,
		Descricao: strings.TrimSpace(req.Descricao),
		PastaPai:  parent,
		Provas:    []string{},
		Subpastas: []string{},
	}

	err := s.Transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if parent != nil {
			if _, err := s.Folders.FindByID(ctx, *parent); err != nil {
				return translate(err, &util.NotFoundError{Message: "Pasta pai não encontrada"})
			}
		}
		if err := s.Folders.Create(ctx, pasta); err != nil {
			return translate(err, util.ErrPastaNotFound)
		}
		if parent != nil {
			if err := s.Folders.AddSubpasta(ctx, *parent, pasta.ID); err != nil {
				return translate(err, util.ErrPastaNotFound)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateLists(ctx)
	logger.Log.Info("pasta created", zap.String("id", pasta.ID), zap.String("nome", pasta.Nome))
	return pasta, nil
}

func (s *FolderService) Update(ctx context.Context, id string, req *UpdatePastaRequest) (*model.Pasta, error) {
	pasta, err := s.Folders.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, util.ErrPastaNotFound)
	}

	if req.Nome != nil {
		nome := strings.TrimSpace(*req.Nome)
		if nome == "" {
			return nil, util.Invalid("nome", "campo obrigatório")
		}
		pasta.Nome = nome
	}
	if req.Descricao != nil {
		pasta.Descricao = strings.TrimSpace(*req.Descricao)
	}

	if err := s.Folders.Update(ctx, pasta); err != nil {
		return nil, translate(err, util.ErrPastaNotFound)
	}
	s.invalidateLists(ctx)
	return pasta, nil
}

// Move re-parents a pasta. A nil parent makes it a root pasta.
func (s *FolderService) Move(ctx context.Context, id string, req *MoverPastaRequest) (*model.Pasta, error) {
	parent := normalizeRef(req.PastaPai)

	var moved *model.Pasta
	err := s.Transactor.WithTransaction(ctx, func(ctx context.Context) error {
		pasta, err := s.Folders.FindByID(ctx, id)
		if err != nil {
			return translate(err, util.ErrPastaNotFound)
		}
		if parent != nil {
			if *parent == id {
				return util.Invalid("pastaPai", "uma pasta não pode ser movida para dentro dela mesma")
			}
			if err := s.checkNotDescendant(ctx, id, *parent); err != nil {
				return err
			}
		}

		if err := s.Folders.PullSubpasta(ctx, id); err != nil {
			return err
		}
		if err := s.Folders.SetParent(ctx, id, parent); err != nil {
			return translate(err, util.ErrPastaNotFound)
		}
		if parent != nil {
			if err := s.Folders.AddSubpasta(ctx, *parent, id); err != nil {
				return translate(err, util.ErrPastaNotFound)
			}
		}
		pasta.PastaPai = parent
		moved = pasta
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateLists(ctx)
	return moved, nil
}

// checkNotDescendant walks up from target and fails when it meets id.
func (s *FolderService) checkNotDescendant(ctx context.Context, id, target string) error {
	current := target
	for depth := 0; depth < maxFolderDepth; depth++ {
		pasta, err := s.Folders.FindByID(ctx, current)
		if err != nil {
			return translate(err, &util.NotFoundError{Message: "Pasta pai não encontrada"})
		}
		if pasta.PastaPai == nil {
			return nil
		}
		if *pasta.PastaPai == id {
			return util.Invalid("pastaPai", "uma pasta não pode ser movida para dentro de uma subpasta")
		}
		current = *pasta.PastaPai
	}
	return errors.New("folder hierarchy too deep")
}

// Delete removes the pasta together with its provas and their questoes.
// Subpastas become root pastas.
func (s *FolderService) Delete(ctx context.Context, id string) error {
	err := s.Transactor.WithTransaction(ctx, func(ctx context.Context) error {
		pasta, err := s.Folders.FindByID(ctx, id)
		if err != nil {
			return translate(err, util.ErrPastaNotFound)
		}
		if err := s.checkDetachable(ctx, id); err != nil {
			return err
		}

		provas, err := s.Exams.FindByPasta(ctx, id)
		if err != nil {
			return err
		}
		provaIDs := append([]string(nil), pasta.Provas...)
		for _, p := range provas {
			provaIDs = model.AppendID(provaIDs, p.ID)
		}

		for _, provaID := range provaIDs {
			if err := deleteProvaCascade(ctx, s.Deps, provaID); err != nil {
				return err
			}
		}
		if err := s.Folders.DetachChildren(ctx, id); err != nil {
			return translate(err, util.ErrPastaNotFound)
		}
		if err := s.Folders.PullSubpasta(ctx, id); err != nil {
			return err
		}
		return translate(s.Folders.Delete(ctx, id), util.ErrPastaNotFound)
	})
	if err != nil {
		return err
	}

	s.invalidateLists(ctx)
	logger.Log.Info("pasta deleted", zap.String("id", id))
	return nil
}

// checkDetachable rejects the delete before anything is removed when a
// subpasta of id would collide with an existing root pasta of the same name.
func (s *FolderService) checkDetachable(ctx context.Context, id string) error {
	pastas, err := s.Folders.List(ctx)
	if err != nil {
		return err
	}
	roots := make(map[string]bool)
	for _, p := range pastas {
		if p.PastaPai == nil {
			roots[p.Nome] = true
		}
	}
	for _, p := range pastas {
		if p.PastaPai != nil && *p.PastaPai == id && roots[p.Nome] {
			return &util.ConflictError{
				Message: fmt.Sprintf("A subpasta %q tem o mesmo nome de uma pasta na raiz; renomeie ou mova antes de excluir", p.Nome),
			}
		}
	}
	return nil
}

// normalizeRef treats a blank reference as absent.
func normalizeRef(ref *string) *string {
	if ref == nil {
		return nil
	}
	v := strings.TrimSpace(*ref)
	if v == "" {
		return nil
	}
	return &v
}
