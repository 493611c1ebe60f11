package controllers

import (
	"net/http"

	dbpkg "travel-organizer/db"
	"travel-organizer/models"

	"github.com/gin-gonic/gin"
)

type PontoTuristicoPayload struct {
	Nome          string   `json:"nome" form:"nome"`
	Descricao     string   `json:"descricao" form:"descricao"`
	CustoEstimado *float64 `json:"custoEstimado" form:"custoEstimado"`
	ViagemID      int64    `json:"viagemId" form:"viagemId"`
}

// POST /pontos-turisticos
// Cria um ponto turístico vinculado a uma viagem do usuário autenticado.
// Viagem inexistente ou de outro dono responde 404.
func CreatePontoTuristico(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	var payload PontoTuristicoPayload
	if err := c.Bind(&payload); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	ponto := models.PontoTuristico{
		Nome:          payload.Nome,
		Descricao:     payload.Descricao,
		CustoEstimado: models.OrZero(sanitizeCusto(payload.CustoEstimado)),
		ViagemID:      payload.ViagemID,
	}

	missing := ponto.MissingFields()
	if missing != "" {
		RespondError(c, "Faltando campo "+missing, http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	// a viagem precisa existir e pertencer ao usuário
	var viagem models.Viagem
	if err := db.Where("id = ? AND user_id = ?", ponto.ViagemID, user.ID).First(&viagem).Error; err != nil {
		RespondError(c, "Viagem não encontrada", http.StatusNotFound)
		return
	}

	if err := db.Create(&ponto).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, ponto)
}

// GET /viagens/:id/pontos-turisticos
func GetPontosTuristicosByViagem(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}
	viagemID, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var viagem models.Viagem
	if err := db.Where("id = ? AND user_id = ?", viagemID, user.ID).First(&viagem).Error; err != nil {
		RespondError(c, "Viagem não encontrada", http.StatusNotFound)
		return
	}

	pontos := []models.PontoTuristico{}
	if err := db.Where("viagem_id = ?", viagem.ID).Order("id asc").Find(&pontos).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, pontos)
}

// DELETE /pontos-turisticos/:id
func DeletePontoTuristico(c *gin.Context) {
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

	// delete escopado pelo dono num único comando (sem janela check-then-use)
	result := db.
		Where("id = ? AND viagem_id IN (SELECT id FROM viagens WHERE user_id = ?)", id, user.ID).
		Delete(&models.PontoTuristico{})
	if result.Error != nil {
		RespondError(c, result.Error.Error(), http.StatusBadRequest)
		return
	}
	if result.RowsAffected == 0 {
		RespondError(c, "Ponto turístico não encontrado", http.StatusNotFound)
		return
	}
	RespondSuccess(c, gin.H{"status": "deleted"})
}
