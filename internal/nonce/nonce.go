package nonce

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL 默认有效期
const DefaultTTL = 24 * time.Hour

// ErrInvalid nonce 无效
var ErrInvalid = errors.New("invalid nonce")

// Claims nonce 声明，绑定动作与会话
type Claims struct {
	Action string `json:"act"`
	jwt.RegisteredClaims
}

// Manager 表单防伪令牌签发与校验
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewManager 创建 nonce 管理器
func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Create 为动作和会话签发令牌
func (m *Manager) Create(action, subject string) (string, error) {
	now := m.now()
	claims := Claims{
		Action: action,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Check 校验令牌，返回具体错误
func (m *Manager) Check(tokenString, action, subject string) error {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return ErrInvalid
	}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return errors.Join(ErrInvalid, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return ErrInvalid
	}
	if claims.Action != action || claims.Subject != subject {
		return ErrInvalid
	}
	return nil
}

// Verify 校验令牌是否有效
func (m *Manager) Verify(tokenString, action, subject string) bool {
	return m.Check(tokenString, action, subject) == nil
}
