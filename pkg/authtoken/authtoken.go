// Package authtoken выпуск и проверка JWT токенов владельцев (HS256).
package authtoken

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken возвращается, когда токен не прошел проверку
	ErrInvalidToken = errors.New("authtoken: invalid token")

	// ErrNoSecret возвращается, когда секрет подписи не сконфигурирован
	ErrNoSecret = errors.New("authtoken: signing secret is not configured")
)

// Claims полезная нагрузка токена
type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// Manager выпускает и проверяет токены
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager создает менеджер токенов
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Generate выпускает токен для владельца
func (m *Manager) Generate(userID int64) (string, error) {
	if len(m.secret) == 0 {
		return "", ErrNoSecret
	}

	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate проверяет токен и возвращает claims
func (m *Manager) Validate(tokenStr string) (*Claims, error) {
	if len(m.secret) == 0 {
		return nil, ErrNoSecret
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidToken, token.Header["alg"])
		}
		return m.secret, nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
