package service_test

import (
	"context"
	"testing"

	"github.com/Riaraujo/testecrud/internal/config"
	"github.com/Riaraujo/testecrud/internal/model"
	"github.com/Riaraujo/testecrud/internal/repository"
	"github.com/Riaraujo/testecrud/internal/service"
	"github.com/Riaraujo/testecrud/internal/util"
	"github.com/Riaraujo/testecrud/pkg/cache"
	"github.com/stretchr/testify/require"
)

type memoryServices struct {
	store     *repository.Store
	folders   *service.FolderService
	exams     *service.ExamService
	questions *service.QuestionService
}

func newMemoryServices() *memoryServices {
	store := repository.NewMemory()
	deps := service.NewDeps(store, cache.Nop{})
	return &memoryServices{
		store:     store,
		folders:   service.NewFolderService(deps),
		exams:     service.NewExamService(deps),
		questions: service.NewQuestionService(deps, service.NewProvisioner(deps, config.ProvisioningConfig{})),
	}
}

func strPtr(s string) *string {
	return &s
}

func TestFolderService_CreateLinksParent(t *testing.T) {
	s := newMemoryServices()
	ctx := context.Background()

	parent, err := s.folders.Create(ctx, &service.CreatePastaRequest{Nome: "Vestibulares"})
	require.NoError(t, err)
	child, err := s.folders.Create(ctx, &service.CreatePastaRequest{Nome: "FUVEST", PastaPai: &parent.ID})
	require.NoError(t, err)

	got, err := s.folders.Get(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, got.Subpastas, 1)
	require.Equal(t, child.ID, got.Subpastas[0].ID)

	_, err = s.folders.Create(ctx, &service.CreatePastaRequest{Nome: "x", PastaPai: strPtr("missing")})
	require.ErrorIs(t, err, util.ErrNotFound)

	_, err = s.folders.Create(ctx, &service.CreatePastaRequest{Nome: "Vestibulares"})
	require.ErrorIs(t, err, util.ErrConflict)
}

func TestFolderService_UpdateChangesOnlyGivenFields(t *testing.T) {
	s := newMemoryServices()
	ctx := context.Background()

	pasta, err := s.folders.Create(ctx, &service.CreatePastaRequest{Nome: "ENEM", Descricao: "antiga"})
	require.NoError(t, err)

	updated, err := s.folders.Update(ctx, pasta.ID, &service.UpdatePastaRequest{Descricao: strPtr("nova")})
	require.NoError(t, err)
	require.Equal(t, "ENEM", updated.Nome)
	require.Equal(t, "nova", updated.Descricao)

	_, err = s.folders.Update(ctx, pasta.ID, &service.UpdatePastaRequest{Nome: strPtr(" ")})
	require.ErrorIs(t, err, util.ErrInvalid)
}

func TestFolderService_MoveRejectsCycles(t *testing.T) {
	s := newMemoryServices()
	ctx := context.Background()

	a, err := s.folders.Create(ctx, &service.CreatePastaRequest{Nome: "a"})
	require.NoError(t, err)
	b, err := s.folders.Create(ctx, &service.CreatePastaRequest{Nome: "b", PastaPai: &a.ID})
	require.NoError(t, err)
	c, err := s.folders.Create(ctx, &service.CreatePastaRequest{Nome: "c", PastaPai: &b.ID})
	require.NoError(t, err)

	_, err = s.folders.Move(ctx, a.ID, &service.MoverPastaRequest{PastaPai: &a.ID})
	require.ErrorIs(t, err, util.ErrInvalid)
	_, err = s.folders.Move(ctx, a.ID, &service.MoverPastaRequest{PastaPai: &c.ID})
	require.ErrorIs(t, err, util.ErrInvalid)

	moved, err := s.folders.Move(ctx, c.ID, &service.MoverPastaRequest{PastaPai: &a.ID})
	require.NoError(t, err)
	require.Equal(t, a.ID, *moved.PastaPai)

	gotB, err := s.store.Folders.FindByID(ctx, b.ID)
	require.NoError(t, err)
	require.Empty(t, gotB.Subpastas)
	gotA, err := s.store.Folders.FindByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, []string{b.ID, c.ID}, gotA.Subpastas)

	root, err := s.folders.Move(ctx, c.ID, &service.MoverPastaRequest{})
	require.NoError(t, err)
	require.Nil(t, root.PastaPai)
}

func TestFolderService_DeleteCascades(t *testing.T) {
	s := newMemoryServices()
	ctx := context.Background()

	parent, err := s.folders.Create(ctx, &service.CreatePastaRequest{Nome: "pai"})
	require.NoError(t, err)
	pasta, err := s.folders.Create(ctx, &service.CreatePastaRequest{Nome: "ENEM 2023", PastaPai: &parent.ID})
	require.NoError(t, err)
	child, err := s.folders.Create(ctx, &service.CreatePastaRequest{Nome: "simulados", PastaPai: &pasta.ID})
	require.NoError(t, err)
	prova, err := s.exams.Create(ctx, &service.CreateProvaRequest{Titulo: "1º Dia", Pasta: pasta.ID})
	require.NoError(t, err)
	req := validQuestao()
	req.Prova = prova.ID
	questao, err := s.questions.Create(ctx, req)
	require.NoError(t, err)

	require.NoError(t, s.folders.Delete(ctx, pasta.ID))

	_, err = s.folders.Get(ctx, pasta.ID)
	require.ErrorIs(t, err, util.ErrNotFound)
	_, err = s.exams.Get(ctx, prova.ID)
	require.ErrorIs(t, err, util.ErrNotFound)
	_, err = s.questions.Get(ctx, questao.ID)
	require.ErrorIs(t, err, util.ErrNotFound)

	gotChild, err := s.store.Folders.FindByID(ctx, child.ID)
	require.NoError(t, err)
	require.Nil(t, gotChild.PastaPai)
	gotParent, err := s.store.Folders.FindByID(ctx, parent.ID)
	require.NoError(t, err)
	require.Empty(t, gotParent.Subpastas)

	require.ErrorIs(t, s.folders.Delete(ctx, pasta.ID), util.ErrNotFound)
}

func TestExamService_CreateUpdateDelete(t *testing.T) {
	s := newMemoryServices()
	ctx := context.Background()

	a, err := s.folders.Create(ctx, &service.CreatePastaRequest{Nome: "a"})
	require.NoError(t, err)
	b, err := s.folders.Create(ctx, &service.CreatePastaRequest{Nome: "b"})
	require.NoError(t, err)

	_, err = s.exams.Create(ctx, &service.CreateProvaRequest{Titulo: "Matemática", Pasta: "missing"})
	require.ErrorIs(t, err, util.ErrNotFound)

	prova, err := s.exams.Create(ctx, &service.CreateProvaRequest{Titulo: "Matemática", Pasta: a.ID})
	require.NoError(t, err)
	gotA, err := s.folders.Get(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, gotA.Provas, 1)

	moved, err := s.exams.Update(ctx, prova.ID, &service.UpdateProvaRequest{Pasta: &b.ID})
	require.NoError(t, err)
	require.Equal(t, "Matemática", moved.Titulo)
	require.Equal(t, b.ID, moved.Pasta)

	gotA, err = s.folders.Get(ctx, a.ID)
	require.NoError(t, err)
	require.Empty(t, gotA.Provas)
	gotB, err := s.folders.Get(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, gotB.Provas, 1)

	require.NoError(t, s.exams.Delete(ctx, prova.ID))
	gotB, err = s.folders.Get(ctx, b.ID)
	require.NoError(t, err)
	require.Empty(t, gotB.Provas)
	require.Empty(t, gotB.Pasta.Provas)
}

func TestExamService_GetKeepsQuestaoOrder(t *testing.T) {
	s := newMemoryServices()
	ctx := context.Background()

	pasta, err := s.folders.Create(ctx, &service.CreatePastaRequest{Nome: "ENEM"})
	require.NoError(t, err)
	prova, err := s.exams.Create(ctx, &service.CreateProvaRequest{Titulo: "1º Dia", Pasta: pasta.ID})
	require.NoError(t, err)

	var ids []string
	for i := 0; i < 3; i++ {
		req := validQuestao()
		req.Prova = prova.ID
		q, err := s.questions.Create(ctx, req)
		require.NoError(t, err)
		ids = append(ids, q.ID)
	}

	got, err := s.exams.Get(ctx, prova.ID)
	require.NoError(t, err)
	require.Len(t, got.Questoes, 3)
	for i, q := range got.Questoes {
		require.Equal(t, ids[i], q.ID)
	}
	require.NotNil(t, got.Pasta)
	require.Equal(t, pasta.ID, got.Pasta.ID)
}

func TestQuestionService_ProvisioningIsIdempotent(t *testing.T) {
	s := newMemoryServices()
	ctx := context.Background()

	var provaIDs []string
	for _, indice := range []int{1, 45, 90, 91, 180} {
		req := validQuestao()
		req.Ano = 2023
		req.Indice = indice
		q, err := s.questions.Create(ctx, req)
		require.NoError(t, err)
		provaIDs = append(provaIDs, q.Prova)
	}

	require.Equal(t, provaIDs[0], provaIDs[1])
	require.Equal(t, provaIDs[0], provaIDs[2])
	require.Equal(t, provaIDs[3], provaIDs[4])
	require.NotEqual(t, provaIDs[0], provaIDs[3])

	pastas, err := s.folders.List(ctx)
	require.NoError(t, err)
	require.Len(t, pastas, 1)
	require.Equal(t, "ENEM 2023", pastas[0].Nome)
	require.Len(t, pastas[0].Provas, 2)

	dia1, err := s.exams.Get(ctx, provaIDs[0])
	require.NoError(t, err)
	require.Equal(t, "ENEM 2023 - 1º Dia", dia1.Titulo)
	require.Len(t, dia1.Questoes, 3)

	dia2, err := s.exams.Get(ctx, provaIDs[3])
	require.NoError(t, err)
	require.Equal(t, "ENEM 2023 - 2º Dia", dia2.Titulo)
	require.Len(t, dia2.Questoes, 2)
}

func TestQuestionService_UpdateMovesBetweenProvas(t *testing.T) {
	s := newMemoryServices()
	ctx := context.Background()

	pasta, err := s.folders.Create(ctx, &service.CreatePastaRequest{Nome: "ENEM"})
	require.NoError(t, err)
	p1, err := s.exams.Create(ctx, &service.CreateProvaRequest{Titulo: "1", Pasta: pasta.ID})
	require.NoError(t, err)
	p2, err := s.exams.Create(ctx, &service.CreateProvaRequest{Titulo: "2", Pasta: pasta.ID})
	require.NoError(t, err)

	req := validQuestao()
	req.Prova = p1.ID
	q, err := s.questions.Create(ctx, req)
	require.NoError(t, err)

	updated, err := s.questions.Update(ctx, q.ID, &service.UpdateQuestaoRequest{Prova: &p2.ID, Resposta: strPtr("c")})
	require.NoError(t, err)
	require.Equal(t, "C", updated.Resposta)
	require.Equal(t, "Matemática", updated.Disciplina)
	for _, alt := range updated.Alternativas {
		require.Equal(t, alt.Letra == "C", alt.Correta)
	}

	got1, err := s.exams.Get(ctx, p1.ID)
	require.NoError(t, err)
	require.Empty(t, got1.Questoes)
	got2, err := s.exams.Get(ctx, p2.ID)
	require.NoError(t, err)
	require.Len(t, got2.Questoes, 1)

	_, err = s.questions.Update(ctx, q.ID, &service.UpdateQuestaoRequest{Resposta: strPtr("X")})
	require.ErrorIs(t, err, util.ErrInvalid)
}

func TestLists_NewestFirst(t *testing.T) {
	s := newMemoryServices()
	ctx := context.Background()

	for _, nome := range []string{"1", "2", "3"} {
		_, err := s.folders.Create(ctx, &service.CreatePastaRequest{Nome: nome})
		require.NoError(t, err)
	}
	pastas, err := s.folders.List(ctx)
	require.NoError(t, err)
	var nomes []string
	for _, p := range pastas {
		nomes = append(nomes, p.Nome)
	}
	require.Equal(t, []string{"3", "2", "1"}, nomes)
}

func TestFolderService_DeleteRejectsChildNamedLikeRoot(t *testing.T) {
	s := newMemoryServices()
	ctx := context.Background()

	root, err := s.folders.Create(ctx, &service.CreatePastaRequest{Nome: "ENEM 2023"})
	require.NoError(t, err)
	parent, err := s.folders.Create(ctx, &service.CreatePastaRequest{Nome: "Arquivo"})
	require.NoError(t, err)
	_, err = s.folders.Create(ctx, &service.CreatePastaRequest{Nome: "ENEM 2023", PastaPai: &parent.ID})
	require.NoError(t, err)
	prova, err := s.exams.Create(ctx, &service.CreateProvaRequest{Titulo: "Simulado", Pasta: parent.ID})
	require.NoError(t, err)

	err = s.folders.Delete(ctx, parent.ID)
	require.ErrorIs(t, err, util.ErrConflict)

	// nothing was removed
	_, err = s.folders.Get(ctx, parent.ID)
	require.NoError(t, err)
	_, err = s.exams.Get(ctx, prova.ID)
	require.NoError(t, err)

	pastas, err := s.store.Folders.List(ctx)
	require.NoError(t, err)
	roots := 0
	for _, p := range pastas {
		if p.PastaPai == nil && p.Nome == "ENEM 2023" {
			roots++
		}
	}
	require.Equal(t, 1, roots)

	_, err = s.folders.Update(ctx, root.ID, &service.UpdatePastaRequest{Descricao: strPtr("Primeira aplicação")})
	require.NoError(t, err)
}

func TestPopulate_KeepsDanglingReferenceIDs(t *testing.T) {
	s := newMemoryServices()
	ctx := context.Background()

	pasta, err := s.folders.Create(ctx, &service.CreatePastaRequest{Nome: "ENEM"})
	require.NoError(t, err)
	prova, err := s.exams.Create(ctx, &service.CreateProvaRequest{Titulo: "1º Dia", Pasta: pasta.ID})
	require.NoError(t, err)
	req := validQuestao()
	req.Prova = prova.ID
	questao, err := s.questions.Create(ctx, req)
	require.NoError(t, err)

	// remove the referenced documents behind the services' back
	require.NoError(t, s.store.Folders.Delete(ctx, pasta.ID))
	require.NoError(t, s.store.Exams.Delete(ctx, prova.ID))

	q, err := s.questions.Get(ctx, questao.ID)
	require.NoError(t, err)
	require.NotNil(t, q.Prova)
	require.Equal(t, prova.ID, q.Prova.ID)

	require.NoError(t, s.store.Exams.Create(ctx, &model.Prova{Titulo: "órfã", Pasta: pasta.ID}))
	provas, err := s.exams.List(ctx)
	require.NoError(t, err)
	require.Len(t, provas, 1)
	require.NotNil(t, provas[0].Pasta)
	require.Equal(t, pasta.ID, provas[0].Pasta.ID)
}
