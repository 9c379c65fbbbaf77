// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/joho/godotenv"

	eventsv1 "taskmanager/api/proto/events/v1/generated"
	ent "taskmanager/ent/generated"
	"taskmanager/ent/generated/migrate"
	"taskmanager/internal/config"
	"taskmanager/internal/database"
	"taskmanager/internal/mention"
	"taskmanager/internal/queue"
	"taskmanager/internal/service"
	"taskmanager/pkg/push"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Validate configuration
	if err := cfg.ValidateConfig(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Connect to database with Ent
	log.Println("Connecting to PostgreSQL with Ent...")
	dbConfig := database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
		Debug:    cfg.IsDevelopment(),
	}
	entClient, err := database.NewEntClient(dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := entClient.Close(); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
	}()

	// Secondary handle for the sweep's raw batch reads
	sweepDB, err := database.NewSQLXDB(dbConfig)
	if err != nil {
		log.Fatalf("Failed to open sweep database handle: %v", err)
	}
	defer func() {
		if err := sweepDB.Close(); err != nil {
			log.Printf("Failed to close sweep database handle: %v", err)
		}
	}()

	// Run auto migration
	if cfg.Server.AutoMigrate {
		if err := runAutoMigration(context.Background(), entClient); err != nil {
			log.Fatalf("Failed to run auto migration: %v", err)
		}
	}

	// Initialize push client
	var pushClient push.Client
	if cfg.Push.TestingMode || cfg.IsDevelopment() {
		log.Println("Using mock push client for development/testing")
		pushClient = push.NewMockClient()
	} else {
		log.Println("Using Expo push client")
		pushClient = push.NewExpoClient(push.Config{
			BaseURL: cfg.Push.BaseURL,
			Timeout: cfg.Push.Timeout,
		})
	}

	// Start the notification queue
	q := queue.New(queue.Config{
		Workers:     cfg.Queue.Workers,
		BufferSize:  cfg.Queue.BufferSize,
		MaxAttempts: cfg.Queue.MaxAttempts,
		RetryDelay:  cfg.Queue.RetryDelay,
		JobTimeout:  cfg.Queue.JobTimeout,
	})
	q.Start()
	defer q.Close()

	// Initialize services
	dispatcher := service.NewDispatcher(pushClient, q)
	reconciler := mention.NewReconciler(entClient)
	triggers := service.NewEventTriggers(entClient, reconciler, dispatcher)
	sweep := service.NewDueDateSweep(sweepDB, dispatcher)

	eventService := service.NewEventService(triggers, sweep)

	// Create gRPC server with request logging
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			loggingInterceptor,
		),
	)

	// Register services
	eventsv1.RegisterEventServiceServer(grpcServer, eventService)

	// Register health check
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("events.v1.EventService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING) // For overall health

	// Register reflection for development
	if cfg.Server.EnableReflection {
		reflection.Register(grpcServer)
		log.Println("gRPC reflection enabled (disable in production)")
	}

	// Create listener
	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Server.GRPCPort))
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	// Start the daily due-date scheduler
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	if cfg.Sweep.Enabled {
		go startSweepScheduler(schedulerCtx, sweep, cfg.Sweep.Hour)
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Notification server listening on port %s", cfg.Server.GRPCPort)
		if err := grpcServer.Serve(listener); err != nil {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("📴 Shutting down server...")
	stopScheduler()
	grpcServer.GracefulStop()
	log.Println("✅ Server shutdown complete")
}

// runAutoMigration runs the auto migration
func runAutoMigration(ctx context.Context, client *ent.Client) error {
	log.Println("🔄 Running auto migration...")
	err := client.Schema.Create(
		ctx,
		migrate.WithDropIndex(true),
		migrate.WithDropColumn(true),
		migrate.WithForeignKeys(true),
	)
	if err != nil {
		return fmt.Errorf("run auto migration: %w", err)
	}
	log.Println("✅ Auto migration completed")
	return nil
}

// startSweepScheduler runs the due-date sweep once per day at the configured
// hour. The sweep itself never self-schedules; this is its external cron.
func startSweepScheduler(ctx context.Context, sweep *service.DueDateSweep, hour int) {
	log.Printf("⏰ Due-date sweep scheduled daily at %02d:00", hour)
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
		if !next.After(now) {
			next = next.AddDate(0, 0, 1)
		}

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			if err := sweep.Run(ctx); err != nil {
				log.Printf("Due-date sweep failed: %v", err)
			}
		}
	}
}

// loggingInterceptor logs incoming requests
func loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	duration := time.Since(start)
	logLevel := "INFO"
	if err != nil {
		logLevel = "ERROR"
	}
	log.Printf("[%s] %s completed in %v", logLevel, info.FullMethod, duration)
	if err != nil {
		log.Printf("[ERROR] %s error: %v", info.FullMethod, err)
	}
	return resp, err
}
