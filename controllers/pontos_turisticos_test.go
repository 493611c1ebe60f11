package controllers_test

import (
	"fmt"
	"testing"

	"travel-organizer/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePontoTuristico(t *testing.T) {
	r, _ := setupServer(t)
	token := registerAndLogin(t, r, "maria@example.com")
	v := createViagem(t, r, token, viagemBody())

	w := doRequest(t, r, "POST", "/pontos-turisticos", token, gin.H{
		"nome":          "Museu Imperial",
		"descricao":     "Museu no centro histórico",
		"custoEstimado": 30.5,
		"viagemId":      v.ID,
	})
	require.Equal(t, 200, w.Code, w.Body.String())

	var ponto models.PontoTuristico
	decodeJSON(t, w, &ponto)
	assert.NotZero(t, ponto.ID)
	assert.Equal(t, v.ID, ponto.ViagemID)
	assert.Equal(t, 30.5, ponto.CustoEstimado)
}

func TestCreatePontoTuristico_ViagemDeOutroDono(t *testing.T) {
	r, _ := setupServer(t)
	tokenA := registerAndLogin(t, r, "a@example.com")
	tokenB := registerAndLogin(t, r, "b@example.com")
	v := createViagem(t, r, tokenA, viagemBody())

	w := doRequest(t, r, "POST", "/pontos-turisticos", tokenB, gin.H{
		"nome":          "Invasão",
		"custoEstimado": 10,
		"viagemId":      v.ID,
	})
	assert.Equal(t, 404, w.Code)
}

func TestCreatePontoTuristico_SemNome(t *testing.T) {
	r, _ := setupServer(t)
	token := registerAndLogin(t, r, "maria@example.com")
	v := createViagem(t, r, token, viagemBody())

	w := doRequest(t, r, "POST", "/pontos-turisticos", token, gin.H{
		"custoEstimado": 10,
		"viagemId":      v.ID,
	})
	assert.Equal(t, 400, w.Code)
}

func TestGetPontosTuristicosByViagem(t *testing.T) {
	r, _ := setupServer(t)
	token := registerAndLogin(t, r, "maria@example.com")
	v := createViagem(t, r, token, viagemBody())

	for i := 0; i < 3; i++ {
		w := doRequest(t, r, "POST", "/pontos-turisticos", token, gin.H{
			"nome":          fmt.Sprintf("Parada %d", i+1),
			"custoEstimado": 10,
			"viagemId":      v.ID,
		})
		require.Equal(t, 200, w.Code)
	}

	w := doRequest(t, r, "GET", fmt.Sprintf("/viagens/%d/pontos-turisticos", v.ID), token, nil)
	require.Equal(t, 200, w.Code)

	var pontos []models.PontoTuristico
	decodeJSON(t, w, &pontos)
	assert.Len(t, pontos, 3)
}

func TestDeletePontoTuristico(t *testing.T) {
	r, _ := setupServer(t)
	tokenA := registerAndLogin(t, r, "a@example.com")
	tokenB := registerAndLogin(t, r, "b@example.com")
	v := createViagem(t, r, tokenA, viagemBody())

	w := doRequest(t, r, "POST", "/pontos-turisticos", tokenA, gin.H{
		"nome":          "Mirante",
		"custoEstimado": 0,
		"viagemId":      v.ID,
	})
	require.Equal(t, 200, w.Code)
	var ponto models.PontoTuristico
	decodeJSON(t, w, &ponto)

	path := fmt.Sprintf("/pontos-turisticos/%d", ponto.ID)

	// outro usuário não enxerga o ponto
	w = doRequest(t, r, "DELETE", path, tokenB, nil)
	assert.Equal(t, 404, w.Code)

	w = doRequest(t, r, "DELETE", path, tokenA, nil)
	assert.Equal(t, 200, w.Code)

	// segunda remoção: já não existe
	w = doRequest(t, r, "DELETE", path, tokenA, nil)
	assert.Equal(t, 404, w.Code)
}
