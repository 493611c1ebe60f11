package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"travel-organizer/config"
	dbpkg "travel-organizer/db"
	"travel-organizer/router"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/require"
)

// setupServer levanta um gin + sqlite em arquivo temporário (isolamento por
// teste sem limpeza manual).
func setupServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	db.LogMode(false)
	require.NoError(t, dbpkg.AutoMigrate(db))
	t.Cleanup(func() { db.Close() })

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(db))
	router.Initialize(r, config.Configuration{})
	return r, db
}

// doRequest executa uma requisição JSON contra o engine de teste.
func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// registerAndLogin cria um usuário via API e devolve o access token.
func registerAndLogin(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	w := doRequest(t, r, "POST", "/auth/register", "", gin.H{
		"name":     "Viajante",
		"email":    email,
		"password": "segredo123",
	})
	require.Equal(t, 200, w.Code, w.Body.String())

	w = doRequest(t, r, "POST", "/auth/login", "", gin.H{
		"email":    email,
		"password": "segredo123",
	})
	require.Equal(t, 200, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
