package database

import (
	"context"
	"errors"

	"github.com/Riaraujo/testecrud/internal/model"
	"github.com/Riaraujo/testecrud/internal/repository"
)

// SeedSample loads the sample pastas, provas and questao the mock server
// used to ship with. It is a no-op when any pasta exists.
func SeedSample(ctx context.Context, store *repository.Store) error {
	existing, err := store.Folders.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	enem := &model.Pasta{Nome: "ENEM 2023", Descricao: "Questões do ENEM 2023"}
	fuvest := &model.Pasta{Nome: "FUVEST 2023", Descricao: "Questões da FUVEST 2023"}
	for _, p := range []*model.Pasta{enem, fuvest} {
		if err := store.Folders.Create(ctx, p); err != nil && !errors.Is(err, repository.ErrDuplicate) {
			return err
		}
	}

	matematica := &model.Prova{Titulo: "Matemática", Descricao: "Questões de matemática", Pasta: enem.ID}
	portugues := &model.Prova{Titulo: "Português", Descricao: "Questões de português", Pasta: enem.ID}
	for _, p := range []*model.Prova{matematica, portugues} {
		if err := store.Exams.Create(ctx, p); err != nil {
			return err
		}
		if err := store.Folders.AddProva(ctx, enem.ID, p.ID); err != nil {
			return err
		}
	}

	q := &model.Questao{
		Disciplina: "Matemática",
		Materia:    "Álgebra",
		Assunto:    "Equações",
		Enunciado:  "<div>Resolva a equação x + 2 = 5</div>",
		Alternativas: []model.Alternativa{
			{Letra: "A", Texto: "x = 1"},
			{Letra: "B", Texto: "x = 2"},
			{Letra: "C", Texto: "x = 3", Correta: true},
			{Letra: "D", Texto: "x = 4"},
			{Letra: "E", Texto: "x = 5"},
		},
		Resposta: "C",
		Prova:    matematica.ID,
		Files:    []string{"https://example.com/image1.png"},
	}
	if err := store.Questions.Create(ctx, q); err != nil {
		return err
	}
	return store.Exams.AddQuestao(ctx, matematica.ID, q.ID)
}
