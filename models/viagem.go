package models

import "time"

/************************************************
/**** MARK: TIPOS DE TRANSPORTE ****/
/************************************************/
const TIPO_TRANSPORTE_CARRO = "CARRO"
const TIPO_TRANSPORTE_AVIAO = "AVIAO"

// Viagem representa uma viagem planejada com sua composição de custos.
// Os campos de custo de entrada são opcionais (nil = não informado, vale 0 no
// cálculo). CustoCombustivel e ValorTotal são sempre recalculados no servidor
// a cada create/update — o cliente nunca define esses valores.
type Viagem struct {
	ID             int64     `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID         int64     `gorm:"not null;index" json:"userId"`
	Titulo         string    `gorm:"not null" json:"titulo" form:"titulo"`
	TipoTransporte string    `gorm:"not null" json:"tipoTransporte" form:"tipoTransporte"`
	DataInicio     time.Time `gorm:"not null" json:"dataInicio" form:"dataInicio"`
	DataFim        time.Time `gorm:"not null" json:"dataFim" form:"dataFim"`
	Trajeto        string    `gorm:"type:text" json:"trajeto" form:"trajeto"`
	Aeroporto      string    `json:"aeroporto" form:"aeroporto"`

	// Custos de entrada (opcionais)
	ValorPassagem   *float64 `json:"valorPassagem" form:"valorPassagem"`
	Km              *float64 `json:"km" form:"km"`
	Autonomia       *float64 `json:"autonomia" form:"autonomia"`
	ValorGasolina   *float64 `json:"valorGasolina" form:"valorGasolina"`
	Pedagio         *float64 `json:"pedagio" form:"pedagio"`
	AluguelCarro    *float64 `json:"aluguelCarro" form:"aluguelCarro"`
	CustoHospedagem *float64 `json:"custoHospedagem" form:"custoHospedagem"`

	// Hospedagem (descritivo, sem impacto no cálculo)
	NomeHospedagem     string `json:"nomeHospedagem" form:"nomeHospedagem"`
	EnderecoHospedagem string `json:"enderecoHospedagem" form:"enderecoHospedagem"`

	// Calculados no servidor
	CustoCombustivel float64 `gorm:"not null;default:0" json:"custoCombustivel"`
	ValorTotal       float64 `gorm:"not null;default:0" json:"valorTotal"`

	PontosTuristicos []PontoTuristico `gorm:"foreignkey:ViagemID" json:"pontosTuristicos,omitempty"`

	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// TableName evita a pluralização inglesa do gorm ("viagems").
func (Viagem) TableName() string {
	return "viagens"
}

func (v Viagem) MissingFields() string {
	if v.Titulo == "" {
		return "titulo"
	} else if v.TipoTransporte == "" {
		return "tipoTransporte"
	} else if v.DataInicio.IsZero() {
		return "dataInicio"
	} else if v.DataFim.IsZero() {
		return "dataFim"
	}
	return ""
}

func IsTipoTransporteValid(tipo string) bool {
	return tipo == TIPO_TRANSPORTE_CARRO || tipo == TIPO_TRANSPORTE_AVIAO
}

// RecalcularCustos atualiza CustoCombustivel e ValorTotal a partir dos campos
// de custo atuais da viagem.
func (v *Viagem) RecalcularCustos() {
	v.CustoCombustivel = CalcularCustoCombustivel(v.Km, v.Autonomia, v.ValorGasolina)
	v.ValorTotal = CalcularValorTotal(v.ValorPassagem, v.Pedagio, v.AluguelCarro, v.CustoHospedagem, v.CustoCombustivel)
}
