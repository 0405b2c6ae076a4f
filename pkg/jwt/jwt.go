package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios del parqueadero.
// Role viaja en el token para que el middleware RBAC no consulte la DB.
type Claims struct {
	jwt.RegisteredClaims
	OperatorID string `json:"operator_id"`
	LotID      string `json:"lot_id"`
	Role       string `json:"role"` // "admin" | "operador"
}

// ErrMissingScope el token no identifica al operador o a su parqueadero.
var ErrMissingScope = errors.New("jwt: token sin operador o parqueadero")

// Generate genera un token JWT firmado que incluye operatorID, lotID y role.
// Todo token queda atado a un parqueadero: operatorID y lotID son obligatorios.
func Generate(secret, operatorID, lotID, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	if operatorID == "" || lotID == "" {
		return "", ErrMissingScope
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   operatorID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		OperatorID: operatorID,
		LotID:      lotID,
		Role:       role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve operatorID, lotID y role.
// Retorna error si el token es inválido, expirado, tiene firma incorrecta o no trae
// operador y parqueadero (ErrMissingScope). Un rol vacío lo resuelve RequireRole.
func Parse(secret, tokenString string) (operatorID, lotID, role string, err error) {
	if secret == "" {
		return "", "", "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", "", fmt.Errorf("claims inválidos")
	}
	if claims.OperatorID == "" || claims.LotID == "" {
		return "", "", "", ErrMissingScope
	}
	return claims.OperatorID, claims.LotID, claims.Role, nil
}
