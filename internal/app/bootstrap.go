package app

import (
	"errors"
	"fmt"

	"github.com/dujiao-next/gift-message/internal/config"
	"github.com/dujiao-next/gift-message/internal/logger"
	"github.com/dujiao-next/gift-message/internal/provider"
	"github.com/dujiao-next/gift-message/internal/router"
	"github.com/dujiao-next/gift-message/internal/worker"
)

// BuildRunner 构建服务运行器
func BuildRunner(cfg *config.Config, mode string) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	container := provider.NewContainer(cfg)
	if err := LoadExtensions(container); err != nil {
		return nil, err
	}

	var services []Service

	// 初始化 HTTP 服务
	if mode == ModeAll || mode == ModeAPI {
		engine := router.SetupRouter(cfg, container)
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		httpService := NewHTTPService(addr, engine)
		services = append(services, httpService)
	}

	// 初始化 Worker 服务
	if mode == ModeAll || mode == ModeWorker {
		consumer := worker.NewConsumer(container.OrderService, container.EmailService)
		workerService, err := worker.NewService(&cfg.Queue, consumer)
		switch {
		case errors.Is(err, worker.ErrQueueDisabled) && mode == ModeAll:
			logger.Warnw("worker_skipped", "reason", "queue_disabled")
		case err != nil:
			return nil, err
		default:
			services = append(services, workerService)
		}
	}

	if len(services) == 0 {
		return nil, errors.New("no services initialized (check mode and config)")
	}

	return NewRunner(services...), nil
}

// LoadExtensions 启用并加载扩展；启用检查失败时中止启动，依赖缺失时只登记后台提示
func LoadExtensions(container *provider.Container) error {
	if container == nil || container.GiftMessage == nil {
		return nil
	}
	if err := container.GiftMessage.Activate(); err != nil {
		return fmt.Errorf("gift message activation failed: %w", err)
	}
	container.GiftMessage.Load()
	return nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(opts.Config, opts.Mode)
	if err != nil {
		return err
	}

	addr := opts.Config.Server.Host + ":" + opts.Config.Server.Port
	opts.Logger.Infow("app_start", "addr", addr, "mode", opts.Mode)
	return RunWithOptions(runner, opts)
}
