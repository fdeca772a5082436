package app

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service 可启停的后台服务
type Service interface {
	Name() string
	// Start 阻塞运行，ctx 取消后应尽快返回
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Runner 统一启动多个服务，任一服务退出即整体停止
type Runner struct {
	services []Service
}

// NewRunner 创建服务运行器，nil 服务会被忽略
func NewRunner(services ...Service) *Runner {
	r := &Runner{}
	for _, svc := range services {
		if svc != nil {
			r.services = append(r.services, svc)
		}
	}
	return r
}

// Services 已登记的服务
func (r *Runner) Services() []Service {
	return r.services
}

// RunWithOptions 监听系统信号并运行
func RunWithOptions(runner *Runner, opts Options) error {
	if runner == nil {
		return errors.New("runner is nil")
	}
	opts = normalizeOptions(opts)
	ctx := context.Background()
	if len(opts.Signals) > 0 {
		var cancel context.CancelFunc
		ctx, cancel = signal.NotifyContext(ctx, opts.Signals...)
		defer cancel()
	}
	return runner.Run(ctx, opts.ShutdownTimeout, opts.Logger)
}

// Run 启动全部服务直到 ctx 取消或某个服务退出，随后在 stopTimeout 内依次停止
func (r *Runner) Run(ctx context.Context, stopTimeout time.Duration, log *zap.SugaredLogger) error {
	if r == nil || len(r.services) == 0 {
		return errors.New("no services to run")
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if stopTimeout <= 0 {
		stopTimeout = 10 * time.Second
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, svc := range r.services {
		g.Go(func() error {
			log.Infow("service_start", "service", svc.Name())
			err := svc.Start(gctx)
			log.Infow("service_exit", "service", svc.Name(), "error", err)
			if err == nil && gctx.Err() == nil {
				return fmt.Errorf("service %s exited unexpectedly", svc.Name())
			}
			return err
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
		defer cancel()
		for _, svc := range r.services {
			if err := svc.Stop(stopCtx); err != nil {
				log.Errorw("service_stop_failed", "service", svc.Name(), "error", err)
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
