package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dujiao-next/gift-message/internal/cache"
	"github.com/dujiao-next/gift-message/internal/config"
	"github.com/dujiao-next/gift-message/internal/models"
	"github.com/dujiao-next/gift-message/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 24 * time.Hour

// JWTClaims 后台令牌声明
type JWTClaims struct {
	AdminID      uint   `json:"admin_id"`
	Username     string `json:"username"`
	TokenVersion uint64 `json:"token_version"`
	jwt.RegisteredClaims
}

// AuthService 后台账号登录与令牌校验
type AuthService struct {
	cfg       *config.Config
	adminRepo repository.AdminRepository
	now       func() time.Time
}

// NewAuthService 创建认证服务
func NewAuthService(cfg *config.Config, adminRepo repository.AdminRepository) *AuthService {
	return &AuthService{cfg: cfg, adminRepo: adminRepo, now: time.Now}
}

// HashPassword bcrypt 哈希
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

func (s *AuthService) secret() []byte {
	if s == nil || s.cfg == nil {
		return nil
	}
	return []byte(s.cfg.JWT.SecretKey)
}

func (s *AuthService) tokenTTL() time.Duration {
	if s.cfg != nil && s.cfg.JWT.ExpireHours > 0 {
		return time.Duration(s.cfg.JWT.ExpireHours) * time.Hour
	}
	return defaultTokenTTL
}

// GenerateJWT 签发 HS256 令牌
func (s *AuthService) GenerateJWT(admin *models.Admin) (string, time.Time, error) {
	key := s.secret()
	if len(key) == 0 {
		return "", time.Time{}, ErrTokenInvalid
	}
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.tokenTTL())
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, JWTClaims{
		AdminID:      admin.ID,
		Username:     admin.Username,
		TokenVersion: admin.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	})
	signed, err := token.SignedString(key)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseJWT 校验签名与有效期
func (s *AuthService) ParseJWT(raw string) (*JWTClaims, error) {
	key := s.secret()
	if len(key) == 0 {
		return nil, ErrTokenInvalid
	}
	claims := &JWTClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.AdminID == 0 {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// Login 校验账号密码并签发令牌
func (s *AuthService) Login(username, password string) (*models.Admin, string, time.Time, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	admin, err := s.adminRepo.GetByUsername(username)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if admin == nil || bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateJWT(admin)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	now := s.now()
	if err := s.adminRepo.TouchLogin(admin.ID, now); err != nil {
		return nil, "", time.Time{}, err
	}
	admin.LastLoginAt = &now
	_ = cache.SetAdminAuthState(context.Background(), cache.BuildAdminAuthState(admin))
	return admin, token, expiresAt, nil
}

// GetAdmin 按 ID 读取管理员
func (s *AuthService) GetAdmin(adminID uint) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByID(adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrNotFound
	}
	return admin, nil
}

// ResolveAuthState 管理员鉴权快照，缓存未命中时查库回填
func (s *AuthService) ResolveAuthState(ctx context.Context, adminID uint) (*cache.AdminAuthState, error) {
	if state, hit, err := cache.GetAdminAuthState(ctx, adminID); err == nil && hit && state != nil {
		return state, nil
	}
	admin, err := s.GetAdmin(adminID)
	if err != nil {
		return nil, err
	}
	state := cache.BuildAdminAuthState(admin)
	_ = cache.SetAdminAuthState(ctx, state)
	return state, nil
}

// Authenticate 校验 Bearer 令牌，并核对令牌版本与失效时间点
func (s *AuthService) Authenticate(ctx context.Context, raw string) (*cache.AdminAuthState, error) {
	if s == nil || s.adminRepo == nil {
		return nil, ErrTokenInvalid
	}
	claims, err := s.ParseJWT(raw)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	state, err := s.ResolveAuthState(ctx, claims.AdminID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, err
	}
	if claims.TokenVersion != state.TokenVersion || !issuedAfter(claims.IssuedAt, state.TokenInvalidBefore) {
		return nil, ErrTokenRevoked
	}
	return state, nil
}

func issuedAfter(issuedAt *jwt.NumericDate, invalidBeforeUnix int64) bool {
	if invalidBeforeUnix <= 0 {
		return true
	}
	return issuedAt != nil && issuedAt.Unix() >= invalidBeforeUnix
}
