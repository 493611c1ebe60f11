package models

import "time"

// PontoTuristico representa uma parada do roteiro de uma viagem, com custo
// estimado. Pertence a exatamente uma viagem. Na edição de uma viagem o
// conjunto inteiro é apagado e recriado pelo cliente (substituição total,
// não diff incremental).
type PontoTuristico struct {
	ID            int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	ViagemID      int64      `gorm:"not null;index" json:"viagemId" form:"viagemId"`
	Nome          string     `gorm:"not null" json:"nome" form:"nome"`
	Descricao     string     `gorm:"type:text" json:"descricao" form:"descricao"`
	CustoEstimado float64    `gorm:"not null;default:0" json:"custoEstimado" form:"custoEstimado"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

func (PontoTuristico) TableName() string {
	return "pontos_turisticos"
}

func (p PontoTuristico) MissingFields() string {
	if p.Nome == "" {
		return "nome"
	} else if p.ViagemID <= 0 {
		return "viagemId"
	}
	return ""
}
