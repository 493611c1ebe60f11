package controllers

import (
	"net/http"
	"time"

	dbpkg "travel-organizer/db"
	"travel-organizer/models"

	"github.com/gin-gonic/gin"
)

// ViagemPayload é o corpo de create/update de viagem. Tudo é ponteiro para
// distinguir "não informado" de valor zero: no PUT, campo ausente mantém o
// valor já armazenado (merge campo a campo, não deep merge).
type ViagemPayload struct {
	Titulo         *string    `json:"titulo" form:"titulo"`
	TipoTransporte *string    `json:"tipoTransporte" form:"tipoTransporte"`
	DataInicio     *time.Time `json:"dataInicio" form:"dataInicio"`
	DataFim        *time.Time `json:"dataFim" form:"dataFim"`
	Trajeto        *string    `json:"trajeto" form:"trajeto"`
	Aeroporto      *string    `json:"aeroporto" form:"aeroporto"`

	ValorPassagem   *float64 `json:"valorPassagem" form:"valorPassagem"`
	Km              *float64 `json:"km" form:"km"`
	Autonomia       *float64 `json:"autonomia" form:"autonomia"`
	ValorGasolina   *float64 `json:"valorGasolina" form:"valorGasolina"`
	Pedagio         *float64 `json:"pedagio" form:"pedagio"`
	AluguelCarro    *float64 `json:"aluguelCarro" form:"aluguelCarro"`
	CustoHospedagem *float64 `json:"custoHospedagem" form:"custoHospedagem"`

	NomeHospedagem     *string `json:"nomeHospedagem" form:"nomeHospedagem"`
	EnderecoHospedagem *string `json:"enderecoHospedagem" form:"enderecoHospedagem"`
}

// sanitizeCusto descarta valores negativos: entrada numérica inválida nunca é
// erro, vira ausente (e portanto 0 no cálculo).
func sanitizeCusto(v *float64) *float64 {
	if v != nil && *v < 0 {
		return nil
	}
	return v
}

// apply sobrepõe na viagem somente os campos presentes no payload.
func (p ViagemPayload) apply(v *models.Viagem) {
	if p.Titulo != nil {
		v.Titulo = *p.Titulo
	}
	if p.TipoTransporte != nil {
		v.TipoTransporte = *p.TipoTransporte
	}
	if p.DataInicio != nil {
		v.DataInicio = *p.DataInicio
	}
	if p.DataFim != nil {
		v.DataFim = *p.DataFim
	}
	if p.Trajeto != nil {
		v.Trajeto = *p.Trajeto
	}
	if p.Aeroporto != nil {
		v.Aeroporto = *p.Aeroporto
	}
	if p.NomeHospedagem != nil {
		v.NomeHospedagem = *p.NomeHospedagem
	}
	if p.EnderecoHospedagem != nil {
		v.EnderecoHospedagem = *p.EnderecoHospedagem
	}

	if p.ValorPassagem != nil {
		v.ValorPassagem = sanitizeCusto(p.ValorPassagem)
	}
	if p.Km != nil {
		v.Km = sanitizeCusto(p.Km)
	}
	if p.Autonomia != nil {
		v.Autonomia = sanitizeCusto(p.Autonomia)
	}
	if p.ValorGasolina != nil {
		v.ValorGasolina = sanitizeCusto(p.ValorGasolina)
	}
	if p.Pedagio != nil {
		v.Pedagio = sanitizeCusto(p.Pedagio)
	}
	if p.AluguelCarro != nil {
		v.AluguelCarro = sanitizeCusto(p.AluguelCarro)
	}
	if p.CustoHospedagem != nil {
		v.CustoHospedagem = sanitizeCusto(p.CustoHospedagem)
	}
}

// POST /viagens
func CreateViagem(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	var payload ViagemPayload
	if err := c.Bind(&payload); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	viagem := models.Viagem{UserID: user.ID}
	payload.apply(&viagem)

	missing := viagem.MissingFields()
	if missing != "" {
		RespondError(c, "Faltando campo "+missing, http.StatusBadRequest)
		return
	}
	if !models.IsTipoTransporteValid(viagem.TipoTransporte) {
		RespondError(c, "tipoTransporte inválido (CARRO ou AVIAO)", http.StatusBadRequest)
		return
	}

	viagem.RecalcularCustos()

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}
	if err := db.Create(&viagem).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, viagem)
}

// GET /viagens
func GetViagens(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	viagens := []models.Viagem{}
	if err := db.Where("user_id = ?", user.ID).Order("id asc").Find(&viagens).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, viagens)
}

// GET /viagens/:id
// Devolve a viagem com seus pontos turísticos. Viagem de outro dono responde
// 404 (nunca 403, pra não vazar existência).
func GetViagemByID(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var viagem models.Viagem
	if err := db.
		Where("id = ? AND user_id = ?", id, user.ID).
		Preload("PontosTuristicos").
		First(&viagem).Error; err != nil {
		RespondError(c, "Viagem não encontrada", http.StatusNotFound)
		return
	}
	RespondSuccess(c, viagem)
}

// PUT /viagens/:id
// Ordem dos efeitos: busca o estado atual (escopado pelo dono), apaga todos os
// pontos turísticos da viagem, aplica o merge campo a campo, recalcula os
// custos e persiste — tudo numa transação. O cliente recria os pontos que
// quiser manter depois do PUT (substituição total do roteiro).
func UpdateViagem(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var payload ViagemPayload
	if err := c.Bind(&payload); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.TipoTransporte != nil && !models.IsTipoTransporteValid(*payload.TipoTransporte) {
		RespondError(c, "tipoTransporte inválido (CARRO ou AVIAO)", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		RespondError(c, tx.Error.Error(), http.StatusInternalServerError)
		return
	}

	var viagem models.Viagem
	if err := tx.Where("id = ? AND user_id = ?", id, user.ID).First(&viagem).Error; err != nil {
		tx.Rollback()
		RespondError(c, "Viagem não encontrada", http.StatusNotFound)
		return
	}

	// apaga todos pontos turísticos para depois criar os novos, caso haja
	// durante a edição (escopado também pelo dono)
	if err := tx.
		Where("viagem_id = ? AND viagem_id IN (SELECT id FROM viagens WHERE user_id = ?)", viagem.ID, user.ID).
		Delete(&models.PontoTuristico{}).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	payload.apply(&viagem)
	viagem.RecalcularCustos()

	if err := tx.Save(&viagem).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, viagem)
}

// DELETE /viagens/:id
func DeleteViagem(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		RespondError(c, tx.Error.Error(), http.StatusInternalServerError)
		return
	}

	var viagem models.Viagem
	if err := tx.Where("id = ? AND user_id = ?", id, user.ID).First(&viagem).Error; err != nil {
		tx.Rollback()
		RespondError(c, "Viagem não encontrada", http.StatusNotFound)
		return
	}

	// remoção em cascata dos pontos (sqlite sem FK ON DELETE CASCADE)
	if err := tx.Where("viagem_id = ?", viagem.ID).Delete(&models.PontoTuristico{}).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if err := tx.Delete(&viagem).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{"status": "deleted"})
}
