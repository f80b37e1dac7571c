package database_test

import (
	"context"
	"testing"

	"github.com/Riaraujo/testecrud/internal/repository"
	"github.com/Riaraujo/testecrud/pkg/database"
	"github.com/stretchr/testify/require"
)

func TestSeedSample(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemory()

	require.NoError(t, database.SeedSample(ctx, store))
	// a second run sees the existing pastas and leaves them alone
	require.NoError(t, database.SeedSample(ctx, store))

	pastas, err := store.Folders.List(ctx)
	require.NoError(t, err)
	require.Len(t, pastas, 2)

	provas, err := store.Exams.List(ctx)
	require.NoError(t, err)
	require.Len(t, provas, 2)

	questoes, err := store.Questions.List(ctx)
	require.NoError(t, err)
	require.Len(t, questoes, 1)
	require.Equal(t, "C", questoes[0].Resposta)

	prova, err := store.Exams.FindByID(ctx, questoes[0].Prova)
	require.NoError(t, err)
	require.Equal(t, []string{questoes[0].ID}, prova.Questoes)
}
