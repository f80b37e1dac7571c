package service_test

import (
	"context"
	"testing"

	"github.com/Riaraujo/testecrud/internal/config"
	"github.com/Riaraujo/testecrud/internal/model"
	"github.com/Riaraujo/testecrud/internal/repository/mock"
	"github.com/Riaraujo/testecrud/internal/service"
	"github.com/Riaraujo/testecrud/internal/util"
	"github.com/Riaraujo/testecrud/pkg/cache"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDia(t *testing.T) {
	tests := []struct {
		indice    int
		threshold int
		want      int
	}{
		{1, 90, 1},
		{90, 90, 1},
		{91, 90, 2},
		{180, 90, 2},
		{95, 95, 1},
		{96, 95, 2},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, service.Dia(tt.indice, tt.threshold), "indice %d threshold %d", tt.indice, tt.threshold)
	}
}

func TestProvisioner_Names(t *testing.T) {
	p := service.NewProvisioner(service.Deps{}, config.ProvisioningConfig{})

	pasta, prova := p.Names(2023, 45)
	require.Equal(t, "ENEM 2023", pasta)
	require.Equal(t, "ENEM 2023 - 1º Dia", prova)

	_, prova = p.Names(2023, 91)
	require.Equal(t, "ENEM 2023 - 2º Dia", prova)

	p.SetRules(config.ProvisioningConfig{
		FolderTemplate:     "Vestibular {ano}",
		ExamTemplate:       "Vestibular {ano} / dia {dia}",
		SecondDayThreshold: 95,
	})
	pasta, prova = p.Names(2022, 95)
	require.Equal(t, "Vestibular 2022", pasta)
	require.Equal(t, "Vestibular 2022 / dia 1", prova)
	_, prova = p.Names(2022, 96)
	require.Equal(t, "Vestibular 2022 / dia 2", prova)
}

func TestProvisioner_SetRulesFallsBackToDefaults(t *testing.T) {
	p := service.NewProvisioner(service.Deps{}, config.ProvisioningConfig{SecondDayThreshold: -1})
	rules := p.Rules()
	require.Equal(t, service.DefaultFolderTemplate, rules.FolderTemplate)
	require.Equal(t, service.DefaultExamTemplate, rules.ExamTemplate)
	require.Equal(t, service.DefaultSecondDayThreshold, rules.SecondDayThreshold)
}

func TestProvisioner_Ensure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	folders := mock.NewMockFolderRepository(ctrl)
	exams := mock.NewMockExamRepository(ctrl)
	p := service.NewProvisioner(service.Deps{Folders: folders, Exams: exams, Cache: cache.Nop{}}, config.ProvisioningConfig{})

	pasta := &model.Pasta{Document: model.Document{ID: "pasta-1"}, Nome: "ENEM 2023"}
	prova := &model.Prova{Document: model.Document{ID: "prova-2"}, Titulo: "ENEM 2023 - 2º Dia", Pasta: "pasta-1"}

	gomock.InOrder(
		folders.EXPECT().FindOrCreate(gomock.Any(), "ENEM 2023").Return(pasta, false, nil),
		exams.EXPECT().FindOrCreate(gomock.Any(), "ENEM 2023 - 2º Dia", "pasta-1").Return(prova, true, nil),
		folders.EXPECT().AddProva(gomock.Any(), "pasta-1", "prova-2").Return(nil),
	)

	got, err := p.Ensure(context.Background(), 2023, 120)
	require.NoError(t, err)
	require.Equal(t, "prova-2", got.ID)
}

func TestProvisioner_EnsureRequiresAnoAndIndice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	folders := mock.NewMockFolderRepository(ctrl)
	exams := mock.NewMockExamRepository(ctrl)
	p := service.NewProvisioner(service.Deps{Folders: folders, Exams: exams, Cache: cache.Nop{}}, config.ProvisioningConfig{})

	_, err := p.Ensure(context.Background(), 0, 10)
	require.ErrorIs(t, err, util.ErrInvalid)

	_, err = p.Ensure(context.Background(), 2023, 0)
	require.ErrorIs(t, err, util.ErrInvalid)
}
