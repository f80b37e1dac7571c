package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Riaraujo/testecrud/internal/model"
	"github.com/Riaraujo/testecrud/internal/util"
	"github.com/Riaraujo/testecrud/pkg/logger"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// questaoPolicy strips scripts and event handlers from the HTML stored in
// enunciado and alternative texts.
var questaoPolicy = newQuestaoPolicy()

func newQuestaoPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("sub", "sup", "u", "figure", "figcaption")
	p.AllowAttrs("class").Globally()
	return p
}

type CreateQuestaoRequest struct {
	Disciplina    string              `json:"disciplina" binding:"required,max=100"`
	Materia       string              `json:"materia" binding:"max=100"`
	Assunto       string              `json:"assunto" binding:"max=200"`
	Enunciado     string              `json:"enunciado" binding:"required"`
	Alternativas  []model.Alternativa `json:"alternativas" binding:"max=5"`
	Resposta      string              `json:"resposta" binding:"required"`
	Prova         string              `json:"prova"`
	Ano           int                 `json:"ano" binding:"omitempty,gte=1900,lte=2100"`
	Indice        int                 `json:"indice" binding:"omitempty,gte=1"`
	Imagens       []string            `json:"imagens"`
	Files         []string            `json:"files"`
	Conhecimentos []string            `json:"conhecimentos"`
}

type UpdateQuestaoRequest struct {
	Disciplina    *string              `json:"disciplina" binding:"omitempty,max=100"`
	Materia       *string              `json:"materia" binding:"omitempty,max=100"`
	Assunto       *string              `json:"assunto" binding:"omitempty,max=200"`
	Enunciado     *string              `json:"enunciado"`
	Alternativas  *[]model.Alternativa `json:"alternativas"`
	Resposta      *string              `json:"resposta"`
	Prova         *string              `json:"prova"`
	Ano           *int                 `json:"ano" binding:"omitempty,gte=1900,lte=2100"`
	Indice        *int                 `json:"indice" binding:"omitempty,gte=1"`
	Imagens       *[]string            `json:"imagens"`
	Files         *[]string            `json:"files"`
	Conhecimentos *[]string            `json:"conhecimentos"`
}

type QuestionService struct {
	Deps
	provisioner *Provisioner
}

func NewQuestionService(deps Deps, provisioner *Provisioner) *QuestionService {
	return &QuestionService{Deps: deps, provisioner: provisioner}
}

func (s *QuestionService) List(ctx context.Context) ([]model.QuestaoDetalhe, error) {
	return cachedList(ctx, s.Cache, util.CacheKeyQuestoes, func(ctx context.Context) ([]model.QuestaoDetalhe, error) {
		questoes, err := s.Questions.List(ctx)
		if err != nil {
			return nil, err
		}
		return s.populateQuestoes(ctx, questoes)
	})
}

func (s *QuestionService) Get(ctx context.Context, id string) (*model.QuestaoDetalhe, error) {
	questao, err := s.Questions.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, util.ErrQuestaoNotFound)
	}
	populated, err := s.populateQuestoes(ctx, []model.Questao{*questao})
	if err != nil {
		return nil, err
	}
	return &populated[0], nil
}

// Create stores a questao. Without a prova, ano and indice pick (or create)
// the pasta and prova it belongs to.
func (s *QuestionService) Create(ctx context.Context, req *CreateQuestaoRequest) (*model.Questao, error) {
	questao := &model.Questao{
		Disciplina:    strings.TrimSpace(req.Disciplina),
		Materia:       strings.TrimSpace(req.Materia),
		Assunto:       strings.TrimSpace(req.Assunto),
		Enunciado:     req.Enunciado,
		Alternativas:  req.Alternativas,
		Resposta:      req.Resposta,
		Prova:         strings.TrimSpace(req.Prova),
		Ano:           req.Ano,
		Indice:        req.Indice,
		Imagens:       req.Imagens,
		Files:         req.Files,
		Conhecimentos: req.Conhecimentos,
	}
	if err := normalizeQuestao(questao); err != nil {
		return nil, err
	}

	err := s.Transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if questao.Prova == "" {
			prova, err := s.provisioner.Ensure(ctx, questao.Ano, questao.Indice)
			if err != nil {
				return err
			}
			questao.Prova = prova.ID
		} else if _, err := s.Exams.FindByID(ctx, questao.Prova); err != nil {
			return translate(err, util.ErrProvaNotFound)
		}

		if err := s.Questions.Create(ctx, questao); err != nil {
			return err
		}
		return translate(s.Exams.AddQuestao(ctx, questao.Prova, questao.ID), util.ErrProvaNotFound)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateLists(ctx)
	logger.Log.Info("questao created", zap.String("id", questao.ID), zap.String("prova", questao.Prova))
	return questao, nil
}

func (s *QuestionService) Update(ctx context.Context, id string, req *UpdateQuestaoRequest) (*model.Questao, error) {
	var updated *model.Questao
	err := s.Transactor.WithTransaction(ctx, func(ctx context.Context) error {
		questao, err := s.Questions.FindByID(ctx, id)
		if err != nil {
			return translate(err, util.ErrQuestaoNotFound)
		}
		oldProva := questao.Prova
		applyQuestaoUpdate(questao, req)
		if err := normalizeQuestao(questao); err != nil {
			return err
		}

		if questao.Prova == "" {
			return util.Invalid("prova", "campo obrigatório")
		}
		if questao.Prova != oldProva {
			if _, err := s.Exams.FindByID(ctx, questao.Prova); err != nil {
				return translate(err, util.ErrProvaNotFound)
			}
		}

		if err := s.Questions.Update(ctx, questao); err != nil {
			return translate(err, util.ErrQuestaoNotFound)
		}
		if questao.Prova != oldProva {
			if err := s.Exams.PullQuestao(ctx, questao.ID); err != nil {
				return err
			}
			if err := s.Exams.AddQuestao(ctx, questao.Prova, questao.ID); err != nil {
				return translate(err, util.ErrProvaNotFound)
			}
		}
		updated = questao
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateLists(ctx)
	return updated, nil
}

// Delete removes the questao and pulls it from every prova.
func (s *QuestionService) Delete(ctx context.Context, id string) error {
	err := s.Transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.Questions.FindByID(ctx, id); err != nil {
			return translate(err, util.ErrQuestaoNotFound)
		}
		if err := s.Exams.PullQuestao(ctx, id); err != nil {
			return err
		}
		return translate(s.Questions.Delete(ctx, id), util.ErrQuestaoNotFound)
	})
	if err != nil {
		return err
	}

	s.invalidateLists(ctx)
	logger.Log.Info("questao deleted", zap.String("id", id))
	return nil
}

func applyQuestaoUpdate(q *model.Questao, req *UpdateQuestaoRequest) {
	if req.Disciplina != nil {
		q.Disciplina = strings.TrimSpace(*req.Disciplina)
	}
	if req.Materia != nil {
		q.Materia = strings.TrimSpace(*req.Materia)
	}
	if req.Assunto != nil {
		q.Assunto = strings.TrimSpace(*req.Assunto)
	}
	if req.Enunciado != nil {
		q.Enunciado = *req.Enunciado
	}
	if req.Alternativas != nil {
		q.Alternativas = *req.Alternativas
	}
	if req.Resposta != nil {
		q.Resposta = *req.Resposta
	}
	if req.Prova != nil {
		q.Prova = strings.TrimSpace(*req.Prova)
	}
	if req.Ano != nil {
		q.Ano = *req.Ano
	}
	if req.Indice != nil {
		q.Indice = *req.Indice
	}
	if req.Imagens != nil {
		q.Imagens = *req.Imagens
	}
	if req.Files != nil {
		q.Files = *req.Files
	}
	if req.Conhecimentos != nil {
		q.Conhecimentos = *req.Conhecimentos
	}
}

// normalizeQuestao enforces the field rules shared by create and update.
// Alternatives without a letter take the one matching their position and
// correta follows resposta.
func normalizeQuestao(q *model.Questao) error {
	var details []util.FieldError

	q.Enunciado = questaoPolicy.Sanitize(q.Enunciado)
	if q.Disciplina == "" {
		details = append(details, util.FieldError{Field: "disciplina", Message: "campo obrigatório"})
	}
	if strings.TrimSpace(q.Enunciado) == "" {
		details = append(details, util.FieldError{Field: "enunciado", Message: "campo obrigatório"})
	}

	q.Resposta = strings.ToUpper(strings.TrimSpace(q.Resposta))
	if !model.IsLetra(q.Resposta) {
		details = append(details, util.FieldError{Field: "resposta", Message: "deve ser uma das letras A, B, C, D ou E"})
	}

	if len(q.Alternativas) > len(model.Letras) {
		details = append(details, util.FieldError{
			Field:   "alternativas",
			Message: fmt.Sprintf("no máximo %d alternativas", len(model.Letras)),
		})
	} else {
		seen := make(map[string]bool, len(q.Alternativas))
		for i := range q.Alternativas {
			alt := &q.Alternativas[i]
			alt.Texto = questaoPolicy.Sanitize(alt.Texto)
			alt.Letra = strings.ToUpper(strings.TrimSpace(alt.Letra))
			if alt.Letra == "" {
				alt.Letra = model.Letras[i]
			}
			field := fmt.Sprintf("alternativas[%d].letra", i)
			if !model.IsLetra(alt.Letra) {
				details = append(details, util.FieldError{Field: field, Message: "deve ser uma das letras A, B, C, D ou E"})
				continue
			}
			if seen[alt.Letra] {
				details = append(details, util.FieldError{Field: field, Message: "letra repetida"})
				continue
			}
			seen[alt.Letra] = true
			alt.Correta = alt.Letra == q.Resposta
		}
	}

	if len(details) > 0 {
		return util.NewValidationError("Erro de validação", details...)
	}

	q.Conhecimentos = model.NormalizeConhecimentos(q.Conhecimentos)
	return nil
}
