package service

import (
	"context"

	"github.com/Riaraujo/testecrud/internal/model"
	"github.com/Riaraujo/testecrud/internal/repository"
)

// The populate helpers resolve reference ids with one FindByIDs per
// collection, keeping the order of the reference lists.

func (d Deps) populatePastas(ctx context.Context, pastas []model.Pasta) ([]model.PastaDetalhe, error) {
	var provaIDs, childIDs []string
	for _, p := range pastas {
		provaIDs = append(provaIDs, p.Provas...)
		childIDs = append(childIDs, p.Subpastas...)
	}

	provas, err := d.Exams.FindByIDs(ctx, provaIDs)
	if err != nil {
		return nil, err
	}
	children, err := d.Folders.FindByIDs(ctx, childIDs)
	if err != nil {
		return nil, err
	}

	out := make([]model.PastaDetalhe, 0, len(pastas))
	for _, p := range pastas {
		out = append(out, model.PastaDetalhe{
			Pasta:     p,
			Provas:    repository.OrderByIDs(p.Provas, provas, func(x model.Prova) string { return x.ID }),
			Subpastas: repository.OrderByIDs(p.Subpastas, children, func(x model.Pasta) string { return x.ID }),
		})
	}
	return out, nil
}

func (d Deps) populateProvas(ctx context.Context, provas []model.Prova) ([]model.ProvaDetalhe, error) {
	var questaoIDs, pastaIDs []string
	for _, p := range provas {
		questaoIDs = append(questaoIDs, p.Questoes...)
		if p.Pasta != "" && !model.ContainsID(pastaIDs, p.Pasta) {
			pastaIDs = append(pastaIDs, p.Pasta)
		}
	}

	questoes, err := d.Questions.FindByIDs(ctx, questaoIDs)
	if err != nil {
		return nil, err
	}
	pastas, err := d.Folders.FindByIDs(ctx, pastaIDs)
	if err != nil {
		return nil, err
	}
	pastaByID := make(map[string]model.Pasta, len(pastas))
	for _, p := range pastas {
		pastaByID[p.ID] = p
	}

	out := make([]model.ProvaDetalhe, 0, len(provas))
	for _, p := range provas {
		det := model.ProvaDetalhe{
			Prova:    p,
			Questoes: repository.OrderByIDs(p.Questoes, questoes, func(x model.Questao) string { return x.ID }),
		}
		if pasta, ok := pastaByID[p.Pasta]; ok {
			det.Pasta = &pasta
		} else if p.Pasta != "" {
			// dangling reference: keep the stored id visible
			det.Pasta = &model.Pasta{Document: model.Document{ID: p.Pasta}}
		}
		out = append(out, det)
	}
	return out, nil
}

func (d Deps) populateQuestoes(ctx context.Context, questoes []model.Questao) ([]model.QuestaoDetalhe, error) {
	var provaIDs []string
	for _, q := range questoes {
		if q.Prova != "" && !model.ContainsID(provaIDs, q.Prova) {
			provaIDs = append(provaIDs, q.Prova)
		}
	}

	provas, err := d.Exams.FindByIDs(ctx, provaIDs)
	if err != nil {
		return nil, err
	}
	provaByID := make(map[string]model.Prova, len(provas))
	for _, p := range provas {
		provaByID[p.ID] = p
	}

	out := make([]model.QuestaoDetalhe, 0, len(questoes))
	for _, q := range questoes {
		det := model.QuestaoDetalhe{Questao: q}
		if prova, ok := provaByID[q.Prova]; ok {
			det.Prova = &prova
		} else if q.Prova != "" {
			det.Prova = &model.Prova{Document: model.Document{ID: q.Prova}}
		}
		out = append(out, det)
	}
	return out, nil
}
