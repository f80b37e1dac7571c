package model_test

import (
	"encoding/json"
	"testing"

	"github.com/Riaraujo/testecrud/internal/model"
	"github.com/stretchr/testify/require"
)

func TestAlternativa_UnmarshalLegacyString(t *testing.T) {
	var alts []model.Alternativa
	err := json.Unmarshal([]byte(`["A) x = 1", "b. x = 2", "sem letra", "D) linha1\nlinha2"]`), &alts)
	require.NoError(t, err)
	require.Len(t, alts, 4)

	require.Equal(t, "A", alts[0].Letra)
	require.Equal(t, "x = 1", alts[0].Texto)
	require.Equal(t, "B", alts[1].Letra)
	require.Equal(t, "x = 2", alts[1].Texto)
	require.Empty(t, alts[2].Letra)
	require.Equal(t, "sem letra", alts[2].Texto)
	require.Equal(t, "D", alts[3].Letra)
	require.Equal(t, "linha1\nlinha2", alts[3].Texto)
}

func TestAlternativa_UnmarshalObject(t *testing.T) {
	var alt model.Alternativa
	err := json.Unmarshal([]byte(`{"letra":"C","texto":"x = 3","arquivo":"/uploads/c.png","correta":true}`), &alt)
	require.NoError(t, err)
	require.Equal(t, model.Alternativa{Letra: "C", Texto: "x = 3", Arquivo: "/uploads/c.png", Correta: true}, alt)
}

func TestAlternativa_UnmarshalInvalid(t *testing.T) {
	var alt model.Alternativa
	require.Error(t, json.Unmarshal([]byte(`42`), &alt))
}

func TestNormalizeConhecimentos(t *testing.T) {
	got := model.NormalizeConhecimentos([]string{" Álgebra ", "ALGEBRA", "álgebra", "", "Funções"})
	require.Equal(t, []string{"álgebra", "algebra", "funções"}, got)
	require.Nil(t, model.NormalizeConhecimentos(nil))
}

func TestIsLetra(t *testing.T) {
	for _, l := range []string{"A", "B", "C", "D", "E"} {
		require.True(t, model.IsLetra(l), l)
	}
	for _, l := range []string{"", "a", "F", "AB"} {
		require.False(t, model.IsLetra(l), l)
	}
}

func TestIDListHelpers(t *testing.T) {
	ids := model.AppendID(nil, "1")
	ids = model.AppendID(ids, "2")
	ids = model.AppendID(ids, "1")
	require.Equal(t, []string{"1", "2"}, ids)

	require.Equal(t, []string{"2"}, model.RemoveID(ids, "1"))
	require.Equal(t, []string{"1", "2"}, ids)
	require.Empty(t, model.RemoveID(nil, "1"))
}

func TestPastaKey(t *testing.T) {
	pai := "p1"
	require.NotEqual(t, model.PastaKey("ENEM 2023", nil), model.PastaKey("ENEM 2023", &pai))
	require.Equal(t, model.PastaKey("ENEM 2023", &pai), model.PastaKey("ENEM 2023", &pai))
}
