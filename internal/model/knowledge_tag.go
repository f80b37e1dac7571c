package model

// Conhecimento is a knowledge tag with the number of questoes carrying it.
// swagger:model Conhecimento
type Conhecimento struct {
	Nome     string `json:"nome"`
	Questoes int    `json:"questoes"`
}
