package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Riaraujo/testecrud/internal/model"
)

// MemoryStore keeps every collection in process memory. It backs local
// development without a database and the HTTP tests.
type MemoryStore struct {
	mu       sync.RWMutex
	seq      int64
	order    map[string]int64
	pastas   map[string]model.Pasta
	provas   map[string]model.Prova
	questoes map[string]model.Questao
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		order:    make(map[string]int64),
		pastas:   make(map[string]model.Pasta),
		provas:   make(map[string]model.Prova),
		questoes: make(map[string]model.Questao),
		now:      time.Now,
	}
}

// NewMemory returns a Store backed by a fresh MemoryStore.
func NewMemory() *Store {
	s := NewMemoryStore()
	return &Store{
		Driver:     "memory",
		Folders:    &memoryFolderRepository{s: s},
		Exams:      &memoryExamRepository{s: s},
		Questions:  &memoryQuestionRepository{s: s},
		Transactor: s,
		Pinger:     s,
	}
}

// WithTransaction runs fn directly; the memory driver has no rollback.
func (s *MemoryStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// stamp must be called with mu held.
func (s *MemoryStore) stamp(d *model.Document) {
	if d.ID == "" {
		d.ID = model.GenerateID()
	}
	d.Touch(s.now())
	if _, ok := s.order[d.ID]; !ok {
		s.seq++
		s.order[d.ID] = s.seq
	}
}

func newestFirst[T any](s *MemoryStore, docs []T, doc func(T) model.Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		a, b := doc(docs[i]), doc(docs[j])
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return s.order[a.ID] > s.order[b.ID]
	})
}

func cloneIDs(ids []string) []string {
	if ids == nil {
		return nil
	}
	return append([]string(nil), ids...)
}

func clonePasta(p model.Pasta) model.Pasta {
	p.Provas = cloneIDs(p.Provas)
	p.Subpastas = cloneIDs(p.Subpastas)
	if p.PastaPai != nil {
		pai := *p.PastaPai
		p.PastaPai = &pai
	}
	return p
}

func cloneProva(p model.Prova) model.Prova {
	p.Questoes = cloneIDs(p.Questoes)
	return p
}

func cloneQuestao(q model.Questao) model.Questao {
	q.Alternativas = append([]model.Alternativa(nil), q.Alternativas...)
	q.Imagens = cloneIDs(q.Imagens)
	q.Files = cloneIDs(q.Files)
	q.Conhecimentos = cloneIDs(q.Conhecimentos)
	return q
}

type memoryFolderRepository struct {
	s *MemoryStore
}

func (r *memoryFolderRepository) Create(ctx context.Context, pasta *model.Pasta) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := model.PastaKey(pasta.Nome, pasta.PastaPai)
	for _, p := range r.s.pastas {
		if model.PastaKey(p.Nome, p.PastaPai) == key {
			return ErrDuplicate
		}
	}
	r.s.stamp(&pasta.Document)
	r.s.pastas[pasta.ID] = clonePasta(*pasta)
	return nil
}

func (r *memoryFolderRepository) FindByID(ctx context.Context, id string) (*model.Pasta, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.pastas[id]
	if !ok {
		return nil, ErrNotFound
	}
	p = clonePasta(p)
	return &p, nil
}

func (r *memoryFolderRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Pasta, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.Pasta, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.s.pastas[id]; ok {
			out = append(out, clonePasta(p))
		}
	}
	return out, nil
}

func (r *memoryFolderRepository) FindOrCreate(ctx context.Context, nome string) (*model.Pasta, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.pastas {
		if p.Nome == nome && p.PastaPai == nil {
			p = clonePasta(p)
			return &p, false, nil
		}
	}
	p := model.Pasta{Nome: nome, Provas: []string{}, Subpastas: []string{}}
	r.s.stamp(&p.Document)
	r.s.pastas[p.ID] = clonePasta(p)
	return &p, true, nil
}

func (r *memoryFolderRepository) List(ctx context.Context) ([]model.Pasta, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.Pasta, 0, len(r.s.pastas))
	for _, p := range r.s.pastas {
		out = append(out, clonePasta(p))
	}
	newestFirst(r.s, out, func(p model.Pasta) model.Document { return p.Document })
	return out, nil
}

func (r *memoryFolderRepository) Update(ctx context.Context, pasta *model.Pasta) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.pastas[pasta.ID]; !ok {
		return ErrNotFound
	}
	key := model.PastaKey(pasta.Nome, pasta.PastaPai)
	for id, p := range r.s.pastas {
		if id != pasta.ID && model.PastaKey(p.Nome, p.PastaPai) == key {
			return ErrDuplicate
		}
	}
	pasta.UpdatedAt = r.s.now()
	r.s.pastas[pasta.ID] = clonePasta(*pasta)
	return nil
}

func (r *memoryFolderRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.pastas[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.pastas, id)
	return nil
}

func (r *memoryFolderRepository) modify(id string, fn func(p *model.Pasta)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.pastas[id]
	if !ok {
		return ErrNotFound
	}
	fn(&p)
	p.UpdatedAt = r.s.now()
	r.s.pastas[id] = p
	return nil
}

func (r *memoryFolderRepository) modifyAll(match func(p model.Pasta) bool, fn func(p *model.Pasta)) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, p := range r.s.pastas {
		if match(p) {
			fn(&p)
			p.UpdatedAt = r.s.now()
			r.s.pastas[id] = p
		}
	}
}

func (r *memoryFolderRepository) AddProva(ctx context.Context, pastaID, provaID string) error {
	return r.modify(pastaID, func(p *model.Pasta) { p.Provas = model.AppendID(p.Provas, provaID) })
}

func (r *memoryFolderRepository) PullProva(ctx context.Context, provaID string) error {
	r.modifyAll(
		func(p model.Pasta) bool { return model.ContainsID(p.Provas, provaID) },
		func(p *model.Pasta) { p.Provas = model.RemoveID(p.Provas, provaID) },
	)
	return nil
}

func (r *memoryFolderRepository) AddSubpasta(ctx context.Context, parentID, childID string) error {
	return r.modify(parentID, func(p *model.Pasta) { p.Subpastas = model.AppendID(p.Subpastas, childID) })
}

func (r *memoryFolderRepository) PullSubpasta(ctx context.Context, childID string) error {
	r.modifyAll(
		func(p model.Pasta) bool { return model.ContainsID(p.Subpastas, childID) },
		func(p *model.Pasta) { p.Subpastas = model.RemoveID(p.Subpastas, childID) },
	)
	return nil
}

// DetachChildren fails with ErrDuplicate, changing nothing, when a child's
// name is already taken by a root pasta.
func (r *memoryFolderRepository) DetachChildren(ctx context.Context, parentID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	roots := make(map[string]bool)
	for _, p := range r.s.pastas {
		if p.PastaPai == nil {
			roots[p.Nome] = true
		}
	}
	var children []string
	for id, p := range r.s.pastas {
		if p.PastaPai != nil && *p.PastaPai == parentID {
			if roots[p.Nome] {
				return ErrDuplicate
			}
			children = append(children, id)
		}
	}
	now := r.s.now()
	for _, id := range children {
		p := r.s.pastas[id]
		p.PastaPai = nil
		p.UpdatedAt = now
		r.s.pastas[id] = p
	}
	return nil
}

func (r *memoryFolderRepository) SetParent(ctx context.Context, id string, parentID *string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.pastas[id]
	if !ok {
		return ErrNotFound
	}
	key := model.PastaKey(p.Nome, parentID)
	for other, q := range r.s.pastas {
		if other != id && model.PastaKey(q.Nome, q.PastaPai) == key {
			return ErrDuplicate
		}
	}
	if parentID != nil {
		pai := *parentID
		parentID = &pai
	}
	p.PastaPai = parentID
	p.UpdatedAt = r.s.now()
	r.s.pastas[id] = p
	return nil
}

type memoryExamRepository struct {
	s *MemoryStore
}

func (r *memoryExamRepository) conflicts(prova *model.Prova) bool {
	for id, p := range r.s.provas {
		if id != prova.ID && p.Titulo == prova.Titulo && p.Pasta == prova.Pasta {
			return true
		}
	}
	return false
}

func (r *memoryExamRepository) Create(ctx context.Context, prova *model.Prova) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.conflicts(prova) {
		return ErrDuplicate
	}
	r.s.stamp(&prova.Document)
	r.s.provas[prova.ID] = cloneProva(*prova)
	return nil
}

func (r *memoryExamRepository) FindByID(ctx context.Context, id string) (*model.Prova, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.provas[id]
	if !ok {
		return nil, ErrNotFound
	}
	p = cloneProva(p)
	return &p, nil
}

func (r *memoryExamRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Prova, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.Prova, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.s.provas[id]; ok {
			out = append(out, cloneProva(p))
		}
	}
	return out, nil
}

func (r *memoryExamRepository) FindByPasta(ctx context.Context, pastaID string) ([]model.Prova, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.Prova
	for _, p := range r.s.provas {
		if p.Pasta == pastaID {
			out = append(out, cloneProva(p))
		}
	}
	newestFirst(r.s, out, func(p model.Prova) model.Document { return p.Document })
	return out, nil
}

func (r *memoryExamRepository) FindOrCreate(ctx context.Context, titulo, pastaID string) (*model.Prova, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.provas {
		if p.Titulo == titulo && p.Pasta == pastaID {
			p = cloneProva(p)
			return &p, false, nil
		}
	}
	p := model.Prova{Titulo: titulo, Pasta: pastaID, Questoes: []string{}}
	r.s.stamp(&p.Document)
	r.s.provas[p.ID] = cloneProva(p)
	return &p, true, nil
}

func (r *memoryExamRepository) List(ctx context.Context) ([]model.Prova, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.Prova, 0, len(r.s.provas))
	for _, p := range r.s.provas {
		out = append(out, cloneProva(p))
	}
	newestFirst(r.s, out, func(p model.Prova) model.Document { return p.Document })
	return out, nil
}

func (r *memoryExamRepository) Update(ctx context.Context, prova *model.Prova) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.provas[prova.ID]; !ok {
		return ErrNotFound
	}
	if r.conflicts(prova) {
		return ErrDuplicate
	}
	prova.UpdatedAt = r.s.now()
	r.s.provas[prova.ID] = cloneProva(*prova)
	return nil
}

func (r *memoryExamRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.provas[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.provas, id)
	return nil
}

func (r *memoryExamRepository) AddQuestao(ctx context.Context, provaID, questaoID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.provas[provaID]
	if !ok {
		return ErrNotFound
	}
	p.Questoes = model.AppendID(p.Questoes, questaoID)
	p.UpdatedAt = r.s.now()
	r.s.provas[provaID] = p
	return nil
}

func (r *memoryExamRepository) PullQuestao(ctx context.Context, questaoID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, p := range r.s.provas {
		if model.ContainsID(p.Questoes, questaoID) {
			p.Questoes = model.RemoveID(p.Questoes, questaoID)
			p.UpdatedAt = r.s.now()
			r.s.provas[id] = p
		}
	}
	return nil
}

type memoryQuestionRepository struct {
	s *MemoryStore
}

func (r *memoryQuestionRepository) Create(ctx context.Context, questao *model.Questao) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.stamp(&questao.Document)
	r.s.questoes[questao.ID] = cloneQuestao(*questao)
	return nil
}

func (r *memoryQuestionRepository) FindByID(ctx context.Context, id string) (*model.Questao, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	q, ok := r.s.questoes[id]
	if !ok {
		return nil, ErrNotFound
	}
	q = cloneQuestao(q)
	return &q, nil
}

func (r *memoryQuestionRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Questao, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.Questao, 0, len(ids))
	for _, id := range ids {
		if q, ok := r.s.questoes[id]; ok {
			out = append(out, cloneQuestao(q))
		}
	}
	return out, nil
}

func (r *memoryQuestionRepository) List(ctx context.Context) ([]model.Questao, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.Questao, 0, len(r.s.questoes))
	for _, q := range r.s.questoes {
		out = append(out, cloneQuestao(q))
	}
	newestFirst(r.s, out, func(q model.Questao) model.Document { return q.Document })
	return out, nil
}

func (r *memoryQuestionRepository) Update(ctx context.Context, questao *model.Questao) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.questoes[questao.ID]; !ok {
		return ErrNotFound
	}
	questao.UpdatedAt = r.s.now()
	r.s.questoes[questao.ID] = cloneQuestao(*questao)
	return nil
}

func (r *memoryQuestionRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.questoes[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.questoes, id)
	return nil
}

func (r *memoryQuestionRepository) DeleteByProva(ctx context.Context, provaID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, q := range r.s.questoes {
		if q.Prova == provaID {
			delete(r.s.questoes, id)
			n++
		}
	}
	return n, nil
}
