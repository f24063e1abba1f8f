package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/muhammadchandra19/candlecache/pkg/errors"
	"github.com/muhammadchandra19/candlecache/pkg/grpclib/health"
	"github.com/muhammadchandra19/candlecache/pkg/logger"
	"github.com/muhammadchandra19/candlecache/pkg/questdb"
	"github.com/muhammadchandra19/candlecache/pkg/redis"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/internal/bootstrap"
	barArchive "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/infrastructure/questdb/bar"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/pkg/config"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

const (
	serviceName        = "candle-cache"
	healthWatchPeriod  = 10 * time.Second
	readHeaderTimeout  = 5 * time.Second
	questdbInitTimeout = 15 * time.Second
)

// Server runs the HTTP API and the gRPC health endpoint of the candle cache.
type Server struct {
	HTTP   *http.Server
	GRPC   *grpc.Server
	Health *health.Server

	logger    logger.Interface
	config    config.Config
	redis     redis.Client
	questdb   questdb.QuestDBClient
	bootstrap *bootstrap.Bootstrap
}

// NewServer connects the backing stores and wires the service.
func NewServer(ctx context.Context, cfg config.Config) (*Server, error) {
	log, err := logger.NewLogger(logger.WithLoggingLevel(logger.ParseLevel(cfg.App.LogLevel)))
	if err != nil {
		return nil, err
	}

	s := &Server{
		logger: log,
		config: cfg,
		GRPC:   grpc.NewServer(),
		Health: health.NewServer(),
	}

	if err := s.initRedis(ctx); err != nil {
		return nil, err
	}
	if err := s.initQuestDB(ctx); err != nil {
		return nil, err
	}

	b := &bootstrap.Bootstrap{}
	s.bootstrap, err = b.Init(bootstrap.BoostrapConfig{
		Config:     cfg,
		Redis:      s.redis,
		QuestDB:    s.questdb,
		HTTPClient: &http.Client{},
		Logger:     log,
	})
	if err != nil {
		return nil, err
	}

	s.HTTP = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           s.bootstrap.Rest.Router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	s.Health.Register(s.GRPC)
	s.Health.InitService(serviceName)
	if cfg.App.Environment == "development" {
		reflection.Register(s.GRPC)
	}

	return s, nil
}

// Bootstrap exposes the wired usecases, used by tools that share the service setup.
func (s *Server) Bootstrap() *bootstrap.Bootstrap {
	return s.bootstrap
}

// Logger returns the service logger.
func (s *Server) Logger() logger.Interface {
	return s.logger
}

// Run serves HTTP and gRPC until ctx is cancelled or one of the listeners fails.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.config.App.GRPCPort))
	if err != nil {
		return errors.NewTracer("grpc_listen_error").Wrap(err)
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("HTTP server listening", logger.NewField("addr", s.HTTP.Addr))
		if err := s.HTTP.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return errors.NewTracer("http_serve_error").Wrap(err)
		}
		return nil
	})

	g.Go(func() error {
		s.logger.Info("gRPC server listening", logger.NewField("addr", lis.Addr().String()))
		if err := s.GRPC.Serve(lis); err != nil && err != grpc.ErrServerStopped {
			return errors.NewTracer("grpc_serve_error").Wrap(err)
		}
		return nil
	})

	g.Go(func() error {
		s.Health.Watch(ctx, serviceName, healthWatchPeriod, s.probe)
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.shutdown()
		return nil
	})

	return g.Wait()
}

func (s *Server) probe(ctx context.Context) error {
	if err := s.redis.Ping(ctx); err != nil {
		return err
	}
	if s.questdb != nil {
		return s.questdb.Ping(ctx)
	}
	return nil
}

func (s *Server) shutdown() {
	s.logger.Info("Shutting down candle cache", logger.NewField("timeout", s.config.App.ShutdownTimeout))

	ctx, cancel := context.WithTimeout(context.Background(), s.config.App.ShutdownTimeout)
	defer cancel()

	s.Health.Shutdown()
	if err := s.HTTP.Shutdown(ctx); err != nil {
		s.logger.Error(errors.TracerFromError(err))
	}

	stopped := make(chan struct{})
	go func() {
		s.GRPC.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-ctx.Done():
		s.GRPC.Stop()
	}

	s.Close(ctx)
}

// Close releases the stores. It is safe to call after a failed Run.
func (s *Server) Close(ctx context.Context) {
	if s.bootstrap != nil {
		if err := s.bootstrap.Close(); err != nil {
			s.logger.Error(errors.TracerFromError(err))
		}
	}
	if s.questdb != nil {
		s.questdb.Close()
	}
	if s.redis != nil {
		if err := s.redis.Disconnect(ctx); err != nil {
			s.logger.Error(errors.TracerFromError(err))
		}
	}
	_ = s.logger.Sync()
}

func (s *Server) initRedis(ctx context.Context) error {
	cfg := s.config.Redis
	client := redis.NewClient(s.logger, &cfg)

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	err := client.Connect(connectCtx)
	cancel()
	if err != nil {
		s.logger.Error(errors.TracerFromError(err))
		if !client.Reconnect(ctx) {
			return errors.NewTracer("redis_connect_error").Wrap(err)
		}
	}

	s.redis = client
	return nil
}

func (s *Server) initQuestDB(ctx context.Context) error {
	if !s.config.QuestDB.Enabled {
		return nil
	}

	initCtx, cancel := context.WithTimeout(ctx, questdbInitTimeout)
	defer cancel()

	client, err := questdb.NewClient(initCtx, s.config.QuestDB)
	if err != nil {
		return err
	}

	if err := barArchive.NewArchive(client, s.logger).EnsureSchema(initCtx); err != nil {
		client.Close()
		return err
	}

	s.logger.Info("QuestDB archive ready", logger.NewField("host", s.config.QuestDB.Host))
	s.questdb = client
	return nil
}
