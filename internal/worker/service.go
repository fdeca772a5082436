package worker

import (
	"context"
	"errors"

	"github.com/dujiao-next/gift-message/internal/config"
	"github.com/dujiao-next/gift-message/internal/queue"

	"github.com/hibiken/asynq"
)

// ErrQueueDisabled 队列未启用，不启动 worker
var ErrQueueDisabled = errors.New("queue disabled")

// Service 订单邮件等异步任务的消费服务
type Service struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

// NewService 创建消费服务并登记任务处理器
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, ErrQueueDisabled
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.RedisOpt(cfg), queue.ServerConfig(cfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{server: asynq.NewServer(opt, serverCfg), mux: mux}, nil
}

// Name 服务名称
func (s *Service) Name() string { return "worker" }

// Start 启动消费并阻塞到 ctx 取消
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil {
		return errors.New("worker not initialized")
	}
	if err := s.server.Start(s.mux); err != nil {
		return err
	}
	<-ctx.Done()
	return nil
}

// Stop 等待进行中的任务完成后退出
func (s *Service) Stop(context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	s.server.Shutdown()
	return nil
}
