package main

import (
	"context"
	"fmt"
	"github.com/QuangTung97/mailing-scheduler/config"
	"github.com/QuangTung97/mailing-scheduler/pkg/cacheclient"
	"github.com/QuangTung97/mailing-scheduler/pkg/grpclib"
	"github.com/QuangTung97/mailing-scheduler/pkg/keylock"
	"github.com/QuangTung97/mailing-scheduler/pkg/memtable"
	"github.com/QuangTung97/mailing-scheduler/pkg/otellib"
	"github.com/QuangTung97/mailing-scheduler/repository"
	"github.com/QuangTung97/mailing-scheduler/service/api"
	"github.com/QuangTung97/mailing-scheduler/service/batchgen"
	"github.com/QuangTung97/mailing-scheduler/service/lifecycle"
	"github.com/QuangTung97/mailing-scheduler/service/orchestrator"
	"github.com/QuangTung97/mailing-scheduler/service/relay"
	"github.com/QuangTung97/mailing-scheduler/service/resolver"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

const serviceName = "mailing-scheduler"

type services struct {
	controller   lifecycle.IController
	generator    batchgen.IGenerator
	orchestrator *orchestrator.Orchestrator
	closeFn      func()
}

func newLocker(conf config.Config) (keylock.Locker, func()) {
	if conf.Generation.LockType == config.GenerationLockTypeMemcache {
		client := cacheclient.New(conf.Memcache.Addr(), conf.Memcache.NumConns, serviceName+":lock:")
		return client, func() { _ = client.Close() }
	}
	return keylock.NewLocal(), func() {}
}

func buildServices(conf config.Config, tp *tracesdk.TracerProvider) *services {
	db := conf.MySQL.MustConnect()
	provider := repository.NewProvider(db)

	campaignRepo := repository.NewCampaign()
	weekRepo := repository.NewIterationWeek()
	batchRepo := repository.NewBatch()
	eventRepo := repository.NewEvent()

	targetResolver := resolver.NewResolver(repository.NewTarget(), repository.NewProspect())
	locker, closeLocker := newLocker(conf)
	hint := memtable.New(conf.Scheduler.HintCacheSize, conf.Scheduler.HintTTL)

	tracer := tp.Tracer(serviceName)

	var generator batchgen.IGenerator = batchgen.NewGenerator(
		provider, campaignRepo, weekRepo, batchRepo, eventRepo,
		targetResolver, locker, conf.Generation.ChunkSize,
	)
	generator = batchgen.NewIGeneratorWrapper(generator, tracer, "batchgen::")

	var controller lifecycle.IController = lifecycle.NewController(
		provider, campaignRepo, weekRepo, batchRepo, eventRepo, targetResolver, hint,
	)
	controller = lifecycle.NewIControllerWrapper(controller, tracer, "lifecycle::")

	orch := orchestrator.NewOrchestrator(
		provider, campaignRepo, weekRepo, batchRepo,
		generator, controller, hint,
		orchestrator.NewMetrics(prometheus.DefaultRegisterer),
		conf.Scheduler.NumWorkers,
	)

	return &services{
		controller:   controller,
		generator:    generator,
		orchestrator: orch,
		closeFn: func() {
			closeLocker()
			_ = db.Close()
		},
	}
}

func initOtel(conf config.Config) (*tracesdk.TracerProvider, func()) {
	tracerProvider, shutdown := otellib.InitOtel(serviceName, "local", conf.Jaeger)

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tracerProvider, shutdown
}

func startServer() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	tracerProvider, shutdown := initOtel(conf)
	defer shutdown()

	svc := buildServices(conf, tracerProvider)
	defer svc.closeFn()

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(grpclib.RecoveryHandlerFunc)),
			grpc_ctxtags.UnaryServerInterceptor(),
			grpc_prometheus.UnaryServerInterceptor,

			otellib.UnaryServerInterceptor(tracerProvider),
			otellib.SetTraceInfoInterceptor(logger),

			grpc_zap.UnaryServerInterceptor(logger),
			grpc_zap.PayloadUnaryServerInterceptor(logger, payloadLogDecider),
		),
		grpc.ChainStreamInterceptor(
			grpc_recovery.StreamServerInterceptor(),
			grpc_ctxtags.StreamServerInterceptor(),
			grpc_prometheus.StreamServerInterceptor,
			grpc_zap.StreamServerInterceptor(logger),
		),
	)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	grpc_prometheus.EnableHandlingTimeHistogram()
	grpc_prometheus.Register(grpcServer)

	mux := runtime.NewServeMux()
	err := api.NewServer(svc.controller, svc.generator).Register(mux)
	if err != nil {
		panic(err)
	}

	loopCtx, cancelLoop := context.WithCancel(otellib.ToContext(context.Background(), logger))
	var loopWg sync.WaitGroup
	loopWg.Add(1)
	go func() {
		defer loopWg.Done()

		healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
		defer healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)

		svc.orchestrator.Run(loopCtx, conf.Scheduler.Interval)
	}()

	httpHandler := otellib.HTTPMiddleware(logger, tracerProvider, newHTTPMux(mux))
	startHTTPAndGRPCServers(conf, grpcServer, httpHandler, func() {
		cancelLoop()
		loopWg.Wait()
	})
}

func runOnce() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	tracerProvider, shutdown := initOtel(conf)
	defer shutdown()

	svc := buildServices(conf, tracerProvider)
	defer svc.closeFn()

	ctx := otellib.ToContext(context.Background(), logger)
	summary, err := svc.orchestrator.RunOnce(ctx)
	if err != nil {
		logger.Error("scheduler run", zap.Error(err))
		return
	}
	fmt.Printf("campaigns: %d, generated: %d, skipped: %d, completed: %d, failed: %d\n",
		summary.Campaigns, summary.Generated, summary.Skipped, summary.Completed, summary.Failed)
}

func runRelay() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	db := conf.MySQL.MustConnect()
	defer func() { _ = db.Close() }()

	publisher, err := relay.DialAMQP(conf.AMQP.URL, conf.AMQP.Exchange)
	if err != nil {
		panic(err)
	}
	defer func() { _ = publisher.Close() }()

	r := relay.NewRelay(repository.NewProvider(db), repository.NewEvent(), publisher, conf.AMQP.BatchSize)

	ctx, cancel := context.WithCancel(otellib.ToContext(context.Background(), logger))
	defer cancel()

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt)
		<-stop
		cancel()
	}()

	logger.Info("relay started", zap.String("exchange", conf.AMQP.Exchange))
	r.Run(ctx, conf.AMQP.PollInterval)
	fmt.Println("Shutdown relay successfully")
}

func main() {
	rootCmd := cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
		runOnceCommand(),
		relayCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func payloadLogDecider(_ context.Context, _ string, _ interface{}) bool {
	return true
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the api servers and the scheduler loop",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}
}

func runOnceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run-once",
		Short: "generate the due batches of every active campaign, then exit",
		Run: func(cmd *cobra.Command, args []string) {
			runOnce()
		},
	}
}

func relayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "relay",
		Short: "publish campaign events to the message broker",
		Run: func(cmd *cobra.Command, args []string) {
			runRelay()
		},
	}
}

func newHTTPMux(apiMux *runtime.ServeMux) *http.ServeMux {
	httpMux := http.NewServeMux()
	httpMux.Handle("/metrics", promhttp.Handler())
	httpMux.Handle("/", apiMux)
	return httpMux
}

func startHTTPAndGRPCServers(
	conf config.Config, grpcServer *grpc.Server, httpHandler http.Handler, stopBackground func(),
) {
	fmt.Println("GRPC:", conf.Server.GRPC.ListenString())
	fmt.Println("HTTP:", conf.Server.HTTP.ListenString())

	httpServer := &http.Server{
		Addr:    conf.Server.HTTP.ListenString(),
		Handler: httpHandler,
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
		fmt.Println("Shutdown HTTP server successfully")
	}()

	go func() {
		defer wg.Done()

		listener, err := net.Listen("tcp", conf.Server.GRPC.ListenString())
		if err != nil {
			panic(err)
		}

		err = grpcServer.Serve(listener)
		if err != nil {
			panic(err)
		}
		fmt.Println("Shutdown gRPC server successfully")
	}()

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	stopBackground()
	fmt.Println("Shutdown scheduler loop successfully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	grpcServer.GracefulStop()
	err := httpServer.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	wg.Wait()
}
