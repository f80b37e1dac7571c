package model

// Pasta groups provas and may be nested under another pasta.
// swagger:model Pasta
type Pasta struct {
	Document  `bson:",inline"`
	Nome      string   `gorm:"size:100;not null" bson:"nome" json:"nome"`
	Descricao string   `gorm:"size:500" bson:"descricao,omitempty" json:"descricao,omitempty"`
	Provas    []string `gorm:"serializer:json;type:json" bson:"provas" json:"provas"`
	PastaPai  *string  `gorm:"size:36;index" bson:"pastaPai" json:"pastaPai"`
	Subpastas []string `gorm:"serializer:json;type:json" bson:"subpastas" json:"subpastas"`

	// Chave backs the unique (nome, pastaPai) constraint on SQL, where NULL
	// parents would otherwise never collide.
	Chave string `gorm:"size:150;uniqueIndex" bson:"-" json:"-"`
}

func (Pasta) TableName() string {
	return "pastas"
}

// PastaKey is the uniqueness key for a folder name within its parent.
func PastaKey(nome string, pastaPai *string) string {
	if pastaPai == nil {
		return nome + "|"
	}
	return nome + "|" + *pastaPai
}

// PastaDetalhe is a pasta with its references populated.
// swagger:model PastaDetalhe
type PastaDetalhe struct {
	Pasta
	Provas    []Prova `json:"provas"`
	Subpastas []Pasta `json:"subpastas"`
}
