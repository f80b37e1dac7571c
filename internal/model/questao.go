package model

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Letras are the valid answer letters, in display order.
var Letras = []string{"A", "B", "C", "D", "E"}

// IsLetra reports whether s is one of the answer letters A–E.
func IsLetra(s string) bool {
	for _, l := range Letras {
		if s == l {
			return true
		}
	}
	return false
}

// Alternativa is one answer choice of a questao.
type Alternativa struct {
	Letra   string `bson:"letra" json:"letra"`
	Texto   string `bson:"texto" json:"texto"`
	Arquivo string `bson:"arquivo,omitempty" json:"arquivo,omitempty"`
	Correta bool   `bson:"correta" json:"correta"`
}

var legacyChoice = regexp.MustCompile(`(?s)^\s*([A-Ea-e])\s*[)\.:\-]\s*(.*)$`)

// UnmarshalJSON accepts the structured form as well as the legacy plain
// string form ("C) x = 3").
func (a *Alternativa) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Alternativa{Texto: strings.TrimSpace(s)}
		if m := legacyChoice.FindStringSubmatch(s); m != nil {
			a.Letra = strings.ToUpper(m[1])
			a.Texto = strings.TrimSpace(m[2])
		}
		return nil
	}

	type plain Alternativa
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = Alternativa(p)
	return nil
}

// Questao is a single exam question.
// swagger:model Questao
type Questao struct {
	Document      `bson:",inline"`
	Disciplina    string        `gorm:"size:100;not null;index" bson:"disciplina" json:"disciplina"`
	Materia       string        `gorm:"size:100" bson:"materia,omitempty" json:"materia,omitempty"`
	Assunto       string        `gorm:"size:200" bson:"assunto,omitempty" json:"assunto,omitempty"`
	Enunciado     string        `gorm:"type:text;not null" bson:"enunciado" json:"enunciado"`
	Alternativas  []Alternativa `gorm:"serializer:json;type:json" bson:"alternativas" json:"alternativas"`
	Resposta      string        `gorm:"size:1;not null" bson:"resposta" json:"resposta"`
	Prova         string        `gorm:"size:36;index" bson:"prova" json:"prova"`
	Ano           int           `bson:"ano,omitempty" json:"ano,omitempty"`
	Indice        int           `bson:"indice,omitempty" json:"indice,omitempty"`
	Imagens       []string      `gorm:"serializer:json;type:json" bson:"imagens,omitempty" json:"imagens,omitempty"`
	Files         []string      `gorm:"serializer:json;type:json" bson:"files,omitempty" json:"files,omitempty"`
	Conhecimentos []string      `gorm:"serializer:json;type:json" bson:"conhecimentos,omitempty" json:"conhecimentos,omitempty"`
}

func (Questao) TableName() string {
	return "questoes"
}

// NormalizeConhecimentos trims, lower-cases and de-duplicates knowledge tags.
func NormalizeConhecimentos(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || ContainsID(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// swagger:model QuestaoDetalhe
type QuestaoDetalhe struct {
	Questao
	Prova *Prova `json:"prova"`
}
