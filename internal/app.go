package internal

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"customer-manager/config"
	"customer-manager/internal/application/form"
	"customer-manager/internal/application/ports"
	"customer-manager/internal/application/usecases"
	"customer-manager/internal/infrastructure/jwt"
	"customer-manager/internal/infrastructure/metrics"
	"customer-manager/internal/infrastructure/mq"
	"customer-manager/internal/infrastructure/remote"
	remotecustomer "customer-manager/internal/infrastructure/remote/customer"
	"customer-manager/internal/interface/api/rest"
	"customer-manager/internal/interface/api/rest/middleware"
	"customer-manager/internal/interface/screens"
	"customer-manager/pkg/rmqconsumer"
)

type App struct {
	logger     *zap.Logger
	cfg        config.Config
	remote     *remote.Client
	httpSrv    *http.Server
	router     *gin.Engine
	mCounter   *prometheus.CounterVec
	events     ports.EventPublisher
	mq         ports.RabbitMQ
	mqConsumer ports.RMQConsumer
}

func NewApp(ctx context.Context) (*App, error) {
	// logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}

	// config
	if err = godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Fatal("error loading .env file", zap.Error(err))
	}
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config error", zap.Error(err))
	}

	// metrics
	mCounter := metrics.NewCounter()

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogGin(logger, mCounter))

	// httpServer
	httpSrv := &http.Server{
		Addr:    cfg.App.Host + ":" + cfg.App.Port,
		Handler: r,
	}

	// remote api
	client, err := remote.New(logger, cfg.Remote.BaseURL, cfg.Remote.Timeout)
	if err != nil {
		logger.Fatal("remote API config error", zap.Error(err))
	}

	app := &App{
		logger:   logger,
		cfg:      cfg,
		remote:   client,
		httpSrv:  httpSrv,
		router:   r,
		mCounter: mCounter,
		events:   mq.Discard{},
	}

	if !cfg.MQEnabled() {
		logger.Info("RABBITMQ_HOST not set, change events are discarded")
		return app, nil
	}

	// rabbitMQ
	rabbitDsn, err := cfg.AMQPDSN()
	if err != nil {
		logger.Fatal("RabbitMQ config error", zap.Error(err))
	}
	rbMQ := mq.New(cfg.MQ, logger)
	if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
		logger.Fatal("failed to connect to rabbitMQ", zap.Error(err))
	}
	if err = rbMQ.Init(); err != nil {
		logger.Fatal("failed init rabbitMQ", zap.Error(err))
	}
	// rmqConsumer
	rmqConsumer := rmqconsumer.New(cfg.MQ, logger, rbMQ.GetConn())
	if err = rmqConsumer.Connect(rabbitDsn); err != nil {
		logger.Fatal("failed to connect rabbitMQ consumer", zap.Error(err))
	}
	if err = rmqConsumer.Init(); err != nil {
		logger.Fatal("failed to init rabbitMQ consumer", zap.Error(err))
	}

	app.events = rbMQ
	app.mq = rbMQ
	app.mqConsumer = rmqConsumer

	return app, nil
}

func (a *App) Close() {
	if a.mq != nil && a.mq.GetConn() != nil {
		_ = a.mq.GetConn().Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run - The central place to launch and manage our application and
// parallel processes through a single context.
func (a *App) Run(ctx context.Context) error {
	// context with os signals cancel chan
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name,
			zap.String("addr", a.httpSrv.Addr),
			zap.String("remote", a.remote.BaseURL()),
		)
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	if a.mq != nil {
		g.Go(func() error {
			a.mq.PublisherWorker(ctx)
			return nil
		})
	}

	if a.mqConsumer != nil {
		g.Go(func() error {
			a.mqConsumer.DeliveryWorker(ctx)
			return nil
		})
	}

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
		return err
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() {
	// repos
	customerRepo := remotecustomer.NewRepository(a.remote)

	// use cases
	deps := screens.Deps{
		UseCases: screens.UseCases{
			List:   usecases.NewListCustomers(customerRepo),
			Get:    usecases.NewGetCustomer(customerRepo),
			Create: usecases.NewCreateCustomer(customerRepo),
			Update: usecases.NewUpdateCustomer(customerRepo),
			Delete: usecases.NewDeleteCustomer(customerRepo),
		},
		Rules:  form.NewRules(nil),
		Logger: a.logger,
	}

	// mutations stay open when no secret is configured
	var jwtService *jwt.Service
	if a.cfg.App.JWTSecret != "" {
		jwtService = jwt.New(a.cfg.App.JWTSecret)
	}

	// controllers
	rest.NewCustomerController(a.router, deps, a.events, a.mCounter, a.logger, jwtService)

	// ops
	a.router.GET(rest.RouteHealth, func(c *gin.Context) { c.Status(http.StatusOK) })
	a.router.GET(rest.RouteMetrics, gin.WrapH(promhttp.Handler()))
}

func (a *App) Logger() *zap.Logger { return a.logger }
