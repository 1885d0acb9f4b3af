package auth_service

import (
	"fmt"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
	"gitlab.com/paramountdax-exchange/psp_dashboard/model"
)

// Claims carried by a dashboard session token
type Claims struct {
	UserID string
	Role   model.Role
	Expiry time.Time
}

// CreateToken from Claims to JWT
func CreateToken(claims jwt.MapClaims, secret string, duration int) (string, error) {
	now := time.Now()
	if duration != 0 {
		claims["exp"] = now.Add(time.Duration(duration) * time.Hour).Unix()
	} else {
		claims["exp"] = now.Add(time.Hour).Unix() // 1 hour
	}
	claims["iat"] = now.Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// CreateUserToken issues a token for a demo account
func CreateUserToken(user model.User, secret string, duration int) (string, error) {
	return CreateToken(jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
	}, secret, duration)
}

// ParseToken from JWT to Claims
func ParseToken(tokenString string, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if token == nil {
		return jwt.MapClaims{}, errors.New("Invalid token")
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	if err == nil {
		err = errors.New("Invalid token")
	}
	return jwt.MapClaims{}, err
}

// ParseUserToken validates the token and decodes the dashboard claims
func ParseUserToken(tokenString, secret string) (Claims, error) {
	mc, err := ParseToken(tokenString, secret)
	if err != nil {
		return Claims{}, err
	}
	sub, _ := mc["sub"].(string)
	if sub == "" {
		return Claims{}, errors.New("missing 'sub' claim")
	}
	roleS, _ := mc["role"].(string)
	role, err := model.ParseRole(roleS)
	if err != nil {
		return Claims{}, errors.Wrap(err, "invalid 'role' claim")
	}
	claims := Claims{UserID: sub, Role: role}
	if exp, ok := mc["exp"].(float64); ok {
		claims.Expiry = time.Unix(int64(exp), 0)
	}
	return claims, nil
}
