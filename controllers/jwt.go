package controllers

import (
	"time"

	"travel-organizer/config"

	"github.com/golang-jwt/jwt/v5"
)

var securityConf config.SecurityConfiguration

// SetSecurityConfigurations injeta a configuração de segurança (chamado no main).
func SetSecurityConfigurations(sc config.SecurityConfiguration) {
	securityConf = sc
}

// TokenClaims é o payload dos access tokens emitidos pelo Login/Refresh.
type TokenClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

func getJWTSecret() string {
	// env ganha do arquivo de config, pra trocar sem rebuild
	if s := getenv("JWT_SECRET", ""); s != "" {
		return s
	}
	if securityConf.JwtSecret != "" {
		return securityConf.JwtSecret
	}
	return "CHANGE_ME"
}

func accessTokenTTL() time.Duration {
	minutes := securityConf.AccessTTLMinutes
	if minutes <= 0 {
		minutes = 24 * 60
	}
	return time.Duration(minutes) * time.Minute
}

// signAccessToken assina um JWT HS256 para o usuário, devolvendo o token e a
// data de expiração.
func signAccessToken(userID int64, now time.Time) (string, time.Time, error) {
	exp := now.Add(accessTokenTTL())
	claims := &TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(getJWTSecret()))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// parseAccessToken valida assinatura e expiração e devolve as claims.
func parseAccessToken(tokenStr string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(getJWTSecret()), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
