package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/dujiao-next/gift-message/internal/config"
	"github.com/dujiao-next/gift-message/internal/constants"
	"github.com/dujiao-next/gift-message/internal/http/response"
	"github.com/dujiao-next/gift-message/internal/i18n"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// limitKeyFunc 从请求中提取限流维度
type limitKeyFunc func(*gin.Context) string

// 固定窗口计数，超限后写入封禁 key。
// KEYS: 计数 key, 封禁 key；ARGV: 窗口秒数, 上限, 封禁秒数。
// 返回 {当前计数, 剩余等待秒数}，封禁中计数为 -1
var fixedWindowScript = redis.NewScript(`
local blocked = redis.call("TTL", KEYS[2])
if blocked > 0 then
	return {-1, blocked}
end
local n = redis.call("INCR", KEYS[1])
if n == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
local block = tonumber(ARGV[3])
if n > tonumber(ARGV[2]) and block > 0 then
	redis.call("SET", KEYS[2], 1, "EX", block)
	return {n, block}
end
return {n, redis.call("TTL", KEYS[1])}
`)

// limiter 基于 redis 的固定窗口限流器，client 为空或规则无效时放行
type limiter struct {
	client *redis.Client
	prefix string
	rule   config.RateLimitRuleConfig
}

func newLimiter(client *redis.Client, prefix string, rule config.RateLimitRuleConfig) *limiter {
	return &limiter{client: client, prefix: prefix, rule: rule}
}

func (l *limiter) active() bool {
	return l != nil && l.client != nil && l.rule.WindowSeconds > 0 && l.rule.MaxRequests > 0
}

// hit 记录一次请求，返回是否放行以及需要等待的秒数
func (l *limiter) hit(ctx context.Context, key string) (bool, int, error) {
	full := l.prefix + ":" + key
	res, err := fixedWindowScript.Run(ctx, l.client, []string{full, full + ":blocked"},
		l.rule.WindowSeconds, l.rule.MaxRequests, l.rule.BlockSeconds).Int64Slice()
	if err != nil {
		return false, 0, err
	}
	if len(res) < 2 {
		return false, 0, errors.New("unexpected rate limit reply")
	}
	count, ttl := res[0], int(res[1])
	if count >= 0 && count <= int64(l.rule.MaxRequests) {
		return true, 0, nil
	}
	if ttl < 1 {
		ttl = max(l.rule.WindowSeconds, 1)
	}
	return false, ttl, nil
}

// middleware 超限时返回 429，redis 故障时返回 500
func (l *limiter) middleware(keyOf limitKeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.active() {
			c.Next()
			return
		}
		key := ""
		if keyOf != nil {
			key = strings.TrimSpace(keyOf(c))
		}
		if key == "" {
			key = c.ClientIP()
		}
		locale := i18n.ResolveLocale(c)
		ok, wait, err := l.hit(c.Request.Context(), key)
		switch {
		case err != nil:
			response.Error(c, response.CodeInternal, i18n.T(locale, "error.rate_limit_unavailable"))
			c.Abort()
		case !ok:
			response.Error(c, response.CodeTooManyRequests, i18n.Sprintf(locale, "error.rate_limited", wait))
			c.Abort()
		default:
			c.Next()
		}
	}
}

// keyByCartSession 按购物车会话限流，无会话时退回 IP
func keyByCartSession(c *gin.Context) string {
	if session, err := c.Cookie(constants.CookieCartSession); err == nil {
		if session = strings.TrimSpace(session); session != "" {
			return "session:" + session
		}
	}
	return c.ClientIP()
}

// keyByJSONFieldAndIP 按 JSON 字段值加 IP 限流，读取后恢复请求体
func keyByJSONFieldAndIP(field string) limitKeyFunc {
	return func(c *gin.Context) string {
		value := strings.ToLower(peekJSONString(c, field))
		if value == "" {
			return c.ClientIP()
		}
		return value + "|" + c.ClientIP()
	}
}

func peekJSONString(c *gin.Context, field string) string {
	if c.Request == nil || c.Request.Body == nil {
		return ""
	}
	body, err := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil || len(body) == 0 {
		return ""
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	var value string
	if err := json.Unmarshal(payload[field], &value); err != nil {
		return ""
	}
	return strings.TrimSpace(value)
}
