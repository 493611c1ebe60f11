package controllers_test

import (
	"encoding/json"
	"testing"

	"travel-organizer/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginMe(t *testing.T) {
	r, _ := setupServer(t)

	w := doRequest(t, r, "POST", "/auth/register", "", gin.H{
		"name":     "Maria",
		"email":    "maria@example.com",
		"password": "segredo123",
	})
	require.Equal(t, 200, w.Code, w.Body.String())

	var created models.User
	decodeJSON(t, w, &created)
	assert.NotZero(t, created.ID)
	assert.Empty(t, created.Password)

	w = doRequest(t, r, "POST", "/auth/login", "", gin.H{
		"email":    "maria@example.com",
		"password": "segredo123",
	})
	require.Equal(t, 200, w.Code, w.Body.String())

	var login struct {
		Token        string      `json:"token"`
		RefreshToken string      `json:"refresh_token"`
		User         models.User `json:"user"`
	}
	decodeJSON(t, w, &login)
	assert.NotEmpty(t, login.Token)
	assert.NotEmpty(t, login.RefreshToken)
	assert.Equal(t, "maria@example.com", login.User.Email)

	w = doRequest(t, r, "GET", "/auth/me", login.Token, nil)
	require.Equal(t, 200, w.Code, w.Body.String())

	var me struct {
		User models.User `json:"user"`
	}
	decodeJSON(t, w, &me)
	assert.Equal(t, created.ID, me.User.ID)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	r, _ := setupServer(t)

	body := gin.H{"name": "Maria", "email": "maria@example.com", "password": "segredo123"}
	w := doRequest(t, r, "POST", "/auth/register", "", body)
	require.Equal(t, 200, w.Code)

	w = doRequest(t, r, "POST", "/auth/register", "", body)
	assert.Equal(t, 400, w.Code)
}

func TestRegister_CamposInvalidos(t *testing.T) {
	r, _ := setupServer(t)

	// sem password
	w := doRequest(t, r, "POST", "/auth/register", "", gin.H{"name": "Maria", "email": "maria@example.com"})
	assert.Equal(t, 400, w.Code)

	// password curto
	w = doRequest(t, r, "POST", "/auth/register", "", gin.H{"name": "Maria", "email": "maria@example.com", "password": "123"})
	assert.Equal(t, 400, w.Code)

	// email inválido
	w = doRequest(t, r, "POST", "/auth/register", "", gin.H{"name": "Maria", "email": "não-é-email", "password": "segredo123"})
	assert.Equal(t, 400, w.Code)
}

func TestLogin_SenhaErrada(t *testing.T) {
	r, _ := setupServer(t)
	registerAndLogin(t, r, "maria@example.com")

	w := doRequest(t, r, "POST", "/auth/login", "", gin.H{
		"email":    "maria@example.com",
		"password": "senha-errada",
	})
	assert.Equal(t, 401, w.Code)
}

func TestAuthRequired_SemToken(t *testing.T) {
	r, _ := setupServer(t)

	w := doRequest(t, r, "GET", "/viagens", "", nil)
	assert.Equal(t, 401, w.Code)

	w = doRequest(t, r, "GET", "/viagens", "token-invalido", nil)
	assert.Equal(t, 401, w.Code)
}

func TestRefresh_RotacionaTokens(t *testing.T) {
	r, _ := setupServer(t)
	registerAndLogin(t, r, "maria@example.com")

	w := doRequest(t, r, "POST", "/auth/login", "", gin.H{
		"email":    "maria@example.com",
		"password": "segredo123",
	})
	require.Equal(t, 200, w.Code)

	var login struct {
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	w = doRequest(t, r, "POST", "/auth/refresh", "", gin.H{"refresh_token": login.RefreshToken})
	require.Equal(t, 200, w.Code, w.Body.String())

	var refreshed struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	decodeJSON(t, w, &refreshed)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// o refresh token antigo foi revogado na rotação
	w = doRequest(t, r, "POST", "/auth/refresh", "", gin.H{"refresh_token": login.RefreshToken})
	assert.Equal(t, 401, w.Code)

	// o novo access token é aceito
	w = doRequest(t, r, "GET", "/auth/me", refreshed.AccessToken, nil)
	assert.Equal(t, 200, w.Code)
}
