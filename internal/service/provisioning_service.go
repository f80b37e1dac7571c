package service

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/Riaraujo/testecrud/internal/config"
	"github.com/Riaraujo/testecrud/internal/model"
	"github.com/Riaraujo/testecrud/internal/util"
	"github.com/Riaraujo/testecrud/pkg/logger"
	"github.com/Riaraujo/testecrud/pkg/monitoring"
	"github.com/Riaraujo/testecrud/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const (
	DefaultFolderTemplate     = "ENEM {ano}"
	DefaultExamTemplate       = "ENEM {ano} - {dia}º Dia"
	DefaultSecondDayThreshold = 90
)

// Provisioner resolves the pasta and prova a questao belongs to when it is
// posted with only ano and indice.
type Provisioner struct {
	Deps

	mu    sync.RWMutex
	rules config.ProvisioningConfig
}

func NewProvisioner(deps Deps, cfg config.ProvisioningConfig) *Provisioner {
	p := &Provisioner{Deps: deps}
	p.SetRules(cfg)
	return p
}

// SetRules swaps the naming rules. Empty fields fall back to the defaults.
func (p *Provisioner) SetRules(cfg config.ProvisioningConfig) {
	if strings.TrimSpace(cfg.FolderTemplate) == "" {
		cfg.FolderTemplate = DefaultFolderTemplate
	}
	if strings.TrimSpace(cfg.ExamTemplate) == "" {
		cfg.ExamTemplate = DefaultExamTemplate
	}
	if cfg.SecondDayThreshold < 1 {
		cfg.SecondDayThreshold = DefaultSecondDayThreshold
	}

	p.mu.Lock()
	p.rules = cfg
	p.mu.Unlock()
}

func (p *Provisioner) Rules() config.ProvisioningConfig {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.rules
}

// Dia classifies an item index into the exam day: items up to threshold
// belong to the first day, the rest to the second.
func Dia(indice, threshold int) int {
	if indice > threshold {
		return 2
	}
	return 1
}

func render(template string, ano, dia int) string {
	return strings.NewReplacer(
		"{ano}", strconv.Itoa(ano),
		"{dia}", strconv.Itoa(dia),
	).Replace(template)
}

// Names returns the pasta name and prova title for ano and indice.
func (p *Provisioner) Names(ano, indice int) (pasta, prova string) {
	r := p.Rules()
	dia := Dia(indice, r.SecondDayThreshold)
	return render(r.FolderTemplate, ano, dia), render(r.ExamTemplate, ano, dia)
}

// Ensure finds or creates the pasta and prova for ano and indice and links
// them. Repeated calls with the same year and day return the same prova.
// Callers run it inside the transaction that inserts the questao.
func (p *Provisioner) Ensure(ctx context.Context, ano, indice int) (*model.Prova, error) {
	if ano <= 0 {
		return nil, util.Invalid("ano", "obrigatório quando a prova não é informada")
	}
	if indice <= 0 {
		return nil, util.Invalid("indice", "obrigatório quando a prova não é informada")
	}

	nomePasta, tituloProva := p.Names(ano, indice)

	ctx, span := tracing.Tracer.Start(ctx, "provisioning.ensure")
	defer span.End()
	span.SetAttributes(
		attribute.Int("questao.ano", ano),
		attribute.Int("questao.indice", indice),
		attribute.String("pasta.nome", nomePasta),
		attribute.String("prova.titulo", tituloProva),
	)

	pasta, created, err := p.Folders.FindOrCreate(ctx, nomePasta)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	monitoring.ProvisionedTotal.WithLabelValues("pasta", outcome(created)).Inc()

	prova, created, err := p.Exams.FindOrCreate(ctx, tituloProva, pasta.ID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	monitoring.ProvisionedTotal.WithLabelValues("prova", outcome(created)).Inc()

	if err := p.Folders.AddProva(ctx, pasta.ID, prova.ID); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if created {
		logger.Log.Info("provisioned prova",
			zap.String("pasta", nomePasta),
			zap.String("prova", tituloProva),
			zap.String("id", prova.ID),
		)
	}
	return prova, nil
}

func outcome(created bool) string {
	if created {
		return "created"
	}
	return "reused"
}
