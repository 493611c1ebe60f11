package controllers

import (
	"net/http"
	"strings"

	dbpkg "travel-organizer/db"
	"travel-organizer/models"

	"github.com/gin-gonic/gin"
)

const ctxUserKey = "auth_user"

// AuthRequired valida o Bearer token e carrega o usuário do DB no contexto.
// A expiração é checada pelo parse (golang-jwt valida exp por padrão).
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(strings.ToLower(h), "bearer ") {
			RespondError(c, "token não informado", http.StatusUnauthorized)
			c.Abort()
			return
		}
		tokenStr := strings.TrimSpace(h[len("Bearer "):])
		claims, err := parseAccessToken(tokenStr)
		if err != nil || claims.UserID <= 0 {
			RespondError(c, "token inválido ou expirado", http.StatusUnauthorized)
			c.Abort()
			return
		}

		db := dbpkg.DBInstance(c)
		if db == nil {
			RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
			c.Abort()
			return
		}
		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			RespondError(c, "user not found", http.StatusUnauthorized)
			c.Abort()
			return
		}

		c.Set(ctxUserKey, user)
		c.Next()
	}
}

// GetUserLogged devolve o usuário carregado pelo AuthRequired.
func GetUserLogged(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
