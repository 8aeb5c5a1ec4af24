// file: utils/jwt.go
package utils

import (
	"time"

	"RunClub/config"
	"RunClub/models"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	AdminID  uint32           `json:"admin_id"`
	Username string           `json:"username"`
	Role     models.AdminRole `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(admin models.AdminUser) (string, error) {
	claims := Claims{
		AdminID:  admin.ID,
		Username: admin.Username,
		Role:     admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.C.JWTSecret))
}

func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.C.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, err
}
