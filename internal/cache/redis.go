package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dujiao-next/gift-message/internal/config"
	"github.com/dujiao-next/gift-message/internal/logger"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 2 * time.Second

// store Redis 客户端与 key 前缀，未启用时 client 为 nil，所有读写退化为空操作
type store struct {
	mu     sync.RWMutex
	client *redis.Client
	prefix string
}

var shared = &store{prefix: "gm"}

// InitRedis 按配置创建客户端；连接探测失败只记录告警，不阻止启动
func InitRedis(cfg *config.RedisConfig) error {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	if cfg == nil || !cfg.Enabled {
		shared.client = nil
		return nil
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	if prefix := strings.TrimSpace(cfg.Prefix); prefix != "" {
		shared.prefix = prefix
	}
	shared.client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := shared.client.Ping(ctx).Err(); err != nil {
		logger.Warnw("redis_ping_failed", "addr", shared.client.Options().Addr, "error", err)
	}
	return nil
}

// Close 关闭客户端
func Close() error {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	if shared.client == nil {
		return nil
	}
	err := shared.client.Close()
	shared.client = nil
	return err
}

// Enabled 是否启用了 Redis
func Enabled() bool {
	return Client() != nil
}

// Client 未启用时返回 nil，调用方需自行判空
func Client() *redis.Client {
	shared.mu.RLock()
	defer shared.mu.RUnlock()
	return shared.client
}

func buildKey(key string) string {
	shared.mu.RLock()
	prefix := shared.prefix
	shared.mu.RUnlock()
	if key = strings.TrimSpace(key); key == "" {
		return prefix
	}
	return prefix + ":" + key
}

// getJSON 命中时解码到 dest；未启用或未命中返回 false
func getJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	client := Client()
	if client == nil {
		return false, nil
	}
	raw, err := client.Get(ctx, buildKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode cache %s: %w", key, err)
	}
	return true, nil
}

func setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	client := Client()
	if client == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, buildKey(key), payload, ttl).Err()
}

func del(ctx context.Context, key string) error {
	client := Client()
	if client == nil {
		return nil
	}
	return client.Del(ctx, buildKey(key)).Err()
}
