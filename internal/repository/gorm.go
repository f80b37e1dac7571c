package repository

import (
	"context"
	"errors"

	"github.com/Riaraujo/testecrud/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type txKey struct{}

// NewGorm wires the repositories on top of a relational database. Reference
// lists are stored as JSON columns.
func NewGorm(db *gorm.DB) *Store {
	tx := &gormTransactor{DB: db}
	return &Store{
		Driver:     "mysql",
		Folders:    &GormFolderRepository{DB: db},
		Exams:      &GormExamRepository{DB: db},
		Questions:  &GormQuestionRepository{DB: db},
		Transactor: tx,
		Pinger:     tx,
	}
}

// conn returns the transaction carried by ctx, or db.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

func gormErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

type gormTransactor struct {
	DB *gorm.DB
}

func (t *gormTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func (t *gormTransactor) Ping(ctx context.Context) error {
	sqlDB, err := t.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func jsonContains(column string) string {
	return "JSON_CONTAINS(" + column + ", JSON_QUOTE(?))"
}

type GormFolderRepository struct {
	DB *gorm.DB
}

func (r *GormFolderRepository) Create(ctx context.Context, pasta *model.Pasta) error {
	if pasta.Provas == nil {
		pasta.Provas = []string{}
	}
	if pasta.Subpastas == nil {
		pasta.Subpastas = []string{}
	}
	pasta.Chave = model.PastaKey(pasta.Nome, pasta.PastaPai)
	return gormErr(conn(ctx, r.DB).Create(pasta).Error)
}

func (r *GormFolderRepository) FindByID(ctx context.Context, id string) (*model.Pasta, error) {
	var pasta model.Pasta
	if err := conn(ctx, r.DB).First(&pasta, "id = ?", id).Error; err != nil {
		return nil, gormErr(err)
	}
	return &pasta, nil
}

func (r *GormFolderRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Pasta, error) {
	pastas := []model.Pasta{}
	if len(ids) == 0 {
		return pastas, nil
	}
	err := conn(ctx, r.DB).Where("id IN ?", ids).Order("created_at desc").Find(&pastas).Error
	return pastas, err
}

func (r *GormFolderRepository) FindOrCreate(ctx context.Context, nome string) (*model.Pasta, bool, error) {
	db := conn(ctx, r.DB)
	key := model.PastaKey(nome, nil)

	var pasta model.Pasta
	err := db.Where("chave = ?", key).First(&pasta).Error
	if err == nil {
		return &pasta, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	pasta = model.Pasta{Nome: nome, Chave: key, Provas: []string{}, Subpastas: []string{}}
	err = db.Create(&pasta).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// lost the race against a concurrent insert
		pasta = model.Pasta{}
		err = db.Where("chave = ?", key).First(&pasta).Error
		return &pasta, false, gormErr(err)
	}
	if err != nil {
		return nil, false, err
	}
	return &pasta, true, nil
}

func (r *GormFolderRepository) List(ctx context.Context) ([]model.Pasta, error) {
	pastas := []model.Pasta{}
	err := conn(ctx, r.DB).Order("created_at desc").Find(&pastas).Error
	return pastas, err
}

func (r *GormFolderRepository) Update(ctx context.Context, pasta *model.Pasta) error {
	db := conn(ctx, r.DB)
	if err := db.Select("id").First(&model.Pasta{}, "id = ?", pasta.ID).Error; err != nil {
		return gormErr(err)
	}
	pasta.Chave = model.PastaKey(pasta.Nome, pasta.PastaPai)
	return gormErr(db.Save(pasta).Error)
}

func (r *GormFolderRepository) Delete(ctx context.Context, id string) error {
	res := conn(ctx, r.DB).Delete(&model.Pasta{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// modify locks the row, applies fn and saves it.
func (r *GormFolderRepository) modify(ctx context.Context, id string, fn func(p *model.Pasta)) error {
	return (&gormTransactor{DB: r.DB}).WithTransaction(ctx, func(ctx context.Context) error {
		db := conn(ctx, r.DB)
		var pasta model.Pasta
		if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&pasta, "id = ?", id).Error; err != nil {
			return gormErr(err)
		}
		fn(&pasta)
		pasta.Chave = model.PastaKey(pasta.Nome, pasta.PastaPai)
		return gormErr(db.Save(&pasta).Error)
	})
}

func (r *GormFolderRepository) modifyWhere(ctx context.Context, query string, arg interface{}, fn func(p *model.Pasta)) error {
	var pastas []model.Pasta
	if err := conn(ctx, r.DB).Where(query, arg).Find(&pastas).Error; err != nil {
		return err
	}
	for _, p := range pastas {
		if err := r.modify(ctx, p.ID, fn); err != nil {
			return err
		}
	}
	return nil
}

func (r *GormFolderRepository) AddProva(ctx context.Context, pastaID, provaID string) error {
	return r.modify(ctx, pastaID, func(p *model.Pasta) { p.Provas = model.AppendID(p.Provas, provaID) })
}

func (r *GormFolderRepository) PullProva(ctx context.Context, provaID string) error {
	return r.modifyWhere(ctx, jsonContains("provas"), provaID, func(p *model.Pasta) {
		p.Provas = model.RemoveID(p.Provas, provaID)
	})
}

func (r *GormFolderRepository) AddSubpasta(ctx context.Context, parentID, childID string) error {
	return r.modify(ctx, parentID, func(p *model.Pasta) { p.Subpastas = model.AppendID(p.Subpastas, childID) })
}

func (r *GormFolderRepository) PullSubpasta(ctx context.Context, childID string) error {
	return r.modifyWhere(ctx, jsonContains("subpastas"), childID, func(p *model.Pasta) {
		p.Subpastas = model.RemoveID(p.Subpastas, childID)
	})
}

func (r *GormFolderRepository) DetachChildren(ctx context.Context, parentID string) error {
	return r.modifyWhere(ctx, "pasta_pai = ?", parentID, func(p *model.Pasta) { p.PastaPai = nil })
}

func (r *GormFolderRepository) SetParent(ctx context.Context, id string, parentID *string) error {
	return r.modify(ctx, id, func(p *model.Pasta) { p.PastaPai = parentID })
}

type GormExamRepository struct {
	DB *gorm.DB
}

func (r *GormExamRepository) Create(ctx context.Context, prova *model.Prova) error {
	if prova.Questoes == nil {
		prova.Questoes = []string{}
	}
	return gormErr(conn(ctx, r.DB).Create(prova).Error)
}

func (r *GormExamRepository) FindByID(ctx context.Context, id string) (*model.Prova, error) {
	var prova model.Prova
	if err := conn(ctx, r.DB).First(&prova, "id = ?", id).Error; err != nil {
		return nil, gormErr(err)
	}
	return &prova, nil
}

func (r *GormExamRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Prova, error) {
	provas := []model.Prova{}
	if len(ids) == 0 {
		return provas, nil
	}
	err := conn(ctx, r.DB).Where("id IN ?", ids).Order("created_at desc").Find(&provas).Error
	return provas, err
}

func (r *GormExamRepository) FindByPasta(ctx context.Context, pastaID string) ([]model.Prova, error) {
	provas := []model.Prova{}
	err := conn(ctx, r.DB).Where("pasta = ?", pastaID).Order("created_at desc").Find(&provas).Error
	return provas, err
}

func (r *GormExamRepository) FindOrCreate(ctx context.Context, titulo, pastaID string) (*model.Prova, bool, error) {
	db := conn(ctx, r.DB)

	var prova model.Prova
	err := db.Where("titulo = ? AND pasta = ?", titulo, pastaID).First(&prova).Error
	if err == nil {
		return &prova, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	prova = model.Prova{Titulo: titulo, Pasta: pastaID, Questoes: []string{}}
	err = db.Create(&prova).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		prova = model.Prova{}
		err = db.Where("titulo = ? AND pasta = ?", titulo, pastaID).First(&prova).Error
		return &prova, false, gormErr(err)
	}
	if err != nil {
		return nil, false, err
	}
	return &prova, true, nil
}

func (r *GormExamRepository) List(ctx context.Context) ([]model.Prova, error) {
	provas := []model.Prova{}
	err := conn(ctx, r.DB).Order("created_at desc").Find(&provas).Error
	return provas, err
}

func (r *GormExamRepository) Update(ctx context.Context, prova *model.Prova) error {
	db := conn(ctx, r.DB)
	if err := db.Select("id").First(&model.Prova{}, "id = ?", prova.ID).Error; err != nil {
		return gormErr(err)
	}
	return gormErr(db.Save(prova).Error)
}

func (r *GormExamRepository) Delete(ctx context.Context, id string) error {
	res := conn(ctx, r.DB).Delete(&model.Prova{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormExamRepository) modify(ctx context.Context, id string, fn func(p *model.Prova)) error {
	return (&gormTransactor{DB: r.DB}).WithTransaction(ctx, func(ctx context.Context) error {
		db := conn(ctx, r.DB)
		var prova model.Prova
		if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&prova, "id = ?", id).Error; err != nil {
			return gormErr(err)
		}
		fn(&prova)
		return gormErr(db.Save(&prova).Error)
	})
}

func (r *GormExamRepository) AddQuestao(ctx context.Context, provaID, questaoID string) error {
	return r.modify(ctx, provaID, func(p *model.Prova) { p.Questoes = model.AppendID(p.Questoes, questaoID) })
}

func (r *GormExamRepository) PullQuestao(ctx context.Context, questaoID string) error {
	var provas []model.Prova
	if err := conn(ctx, r.DB).Where(jsonContains("questoes"), questaoID).Find(&provas).Error; err != nil {
		return err
	}
	for _, p := range provas {
		err := r.modify(ctx, p.ID, func(p *model.Prova) { p.Questoes = model.RemoveID(p.Questoes, questaoID) })
		if err != nil {
			return err
		}
	}
	return nil
}

type GormQuestionRepository struct {
	DB *gorm.DB
}

func (r *GormQuestionRepository) Create(ctx context.Context, questao *model.Questao) error {
	return gormErr(conn(ctx, r.DB).Create(questao).Error)
}

func (r *GormQuestionRepository) FindByID(ctx context.Context, id string) (*model.Questao, error) {
	var questao model.Questao
	if err := conn(ctx, r.DB).First(&questao, "id = ?", id).Error; err != nil {
		return nil, gormErr(err)
	}
	return &questao, nil
}

func (r *GormQuestionRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Questao, error) {
	questoes := []model.Questao{}
	if len(ids) == 0 {
		return questoes, nil
	}
	err := conn(ctx, r.DB).Where("id IN ?", ids).Order("created_at desc").Find(&questoes).Error
	return questoes, err
}

func (r *GormQuestionRepository) List(ctx context.Context) ([]model.Questao, error) {
	questoes := []model.Questao{}
	err := conn(ctx, r.DB).Order("created_at desc").Find(&questoes).Error
	return questoes, err
}

func (r *GormQuestionRepository) Update(ctx context.Context, questao *model.Questao) error {
	db := conn(ctx, r.DB)
	if err := db.Select("id").First(&model.Questao{}, "id = ?", questao.ID).Error; err != nil {
		return gormErr(err)
	}
	return gormErr(db.Save(questao).Error)
}

func (r *GormQuestionRepository) Delete(ctx context.Context, id string) error {
	res := conn(ctx, r.DB).Delete(&model.Questao{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormQuestionRepository) DeleteByProva(ctx context.Context, provaID string) (int64, error) {
	res := conn(ctx, r.DB).Delete(&model.Questao{}, "prova = ?", provaID)
	return res.RowsAffected, res.Error
}
