package model

// Prova is an exam: an ordered list of questoes inside a pasta.
// swagger:model Prova
type Prova struct {
	Document  `bson:",inline"`
	Titulo    string   `gorm:"size:200;not null;uniqueIndex:idx_prova_titulo_pasta" bson:"titulo" json:"titulo"`
	Descricao string   `gorm:"size:1000" bson:"descricao,omitempty" json:"descricao,omitempty"`
	Questoes  []string `gorm:"serializer:json;type:json" bson:"questoes" json:"questoes"`
	Pasta     string   `gorm:"size:36;not null;uniqueIndex:idx_prova_titulo_pasta" bson:"pasta" json:"pasta"`
}

func (Prova) TableName() string {
	return "provas"
}

// swagger:model ProvaDetalhe
type ProvaDetalhe struct {
	Prova
	Questoes []Questao `json:"questoes"`
	Pasta    *Pasta    `json:"pasta"`
}
