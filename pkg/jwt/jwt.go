// Package jwt valida los tokens emitidos por el proveedor de autenticación.
// Esta API no emite tokens de sesión: el login ocurre contra el proveedor
// externo y aquí solo se verifica la firma HS256 y se extraen los claims
// propios (chain_id para aislamiento multi-tenant y role para RBAC).
// Generate existe para herramientas internas y fixtures de test.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Subject es el UUID del usuario en el proveedor de autenticación.
type Claims struct {
	jwt.RegisteredClaims
	ChainID int64  `json:"chain_id"` // cadena (tenant) a la que pertenece el usuario
	Role    string `json:"role"`     // "admin" | "manager" | "staff"
}

// Generate genera un token JWT firmado con los claims de la aplicación.
// Uso previsto: seeds, herramientas de soporte y tests.
func Generate(secret, userID string, chainID int64, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		ChainID: chainID,
		Role:    role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve userID (subject), chainID y role.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (userID string, chainID int64, role string, err error) {
	if secret == "" {
		return "", 0, "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", 0, "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", 0, "", fmt.Errorf("claims inválidos")
	}
	return claims.Subject, claims.ChainID, claims.Role, nil
}
