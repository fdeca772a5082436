package queue

import (
	"context"
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/dujiao-next/gift-message/internal/config"
	"github.com/dujiao-next/gift-message/internal/constants"

	"github.com/hibiken/asynq"
)

// DefaultQueue 未配置权重时使用的队列
const DefaultQueue = constants.QueueDefault

const (
	defaultConcurrency = 10
	emailMaxRetry      = 5
	emailTimeout       = 2 * time.Minute
	// 同一订单的邮件在保留期内只入队一次
	emailRetention = 24 * time.Hour
)

// Client 负责把异步任务投递到 asynq；未启用时所有投递都是空操作
type Client struct {
	inner *asynq.Client
	queue string
}

// NewClient 根据队列配置创建客户端
func NewClient(cfg *config.QueueConfig) (*Client, error) {
	if cfg == nil || !cfg.Enabled {
		return &Client{queue: DefaultQueue}, nil
	}
	return &Client{
		inner: asynq.NewClient(RedisOpt(cfg)),
		queue: DefaultQueue,
	}, nil
}

// Enabled 是否真正连接了队列
func (c *Client) Enabled() bool {
	return c != nil && c.inner != nil
}

// Close 释放底层连接
func (c *Client) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.inner.Close()
}

// EnqueueOrderReceivedEmail 投递下单成功邮件，同一订单重复投递会被忽略
func (c *Client) EnqueueOrderReceivedEmail(ctx context.Context, payload OrderReceivedEmailPayload) error {
	if !c.Enabled() {
		return nil
	}
	task, err := payload.Task()
	if err != nil {
		return err
	}
	_, err = c.inner.EnqueueContext(ctx, task,
		asynq.Queue(c.queue),
		asynq.TaskID(payload.taskID()),
		asynq.MaxRetry(emailMaxRetry),
		asynq.Timeout(emailTimeout),
		asynq.Retention(emailRetention),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	return err
}

// ServerConfig 生成 worker 端的 asynq 配置
func ServerConfig(cfg *config.QueueConfig) asynq.Config {
	out := asynq.Config{
		Concurrency: defaultConcurrency,
		Queues:      map[string]int{DefaultQueue: 1},
	}
	if cfg == nil {
		return out
	}
	if cfg.Concurrency > 0 {
		out.Concurrency = cfg.Concurrency
	}
	if len(cfg.Queues) > 0 {
		out.Queues = cfg.Queues
	}
	return out
}

// RedisOpt 队列使用的 redis 连接参数
func RedisOpt(cfg *config.QueueConfig) asynq.RedisClientOpt {
	host, port := "127.0.0.1", 6379
	opt := asynq.RedisClientOpt{}
	if cfg != nil {
		if h := strings.TrimSpace(cfg.Host); h != "" {
			host = h
		}
		if cfg.Port > 0 {
			port = cfg.Port
		}
		opt.Password = cfg.Password
		opt.DB = cfg.DB
	}
	opt.Addr = net.JoinHostPort(host, strconv.Itoa(port))
	return opt
}
