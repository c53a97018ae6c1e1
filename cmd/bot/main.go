package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/Fripe070/experienced/internal/cache"
	"github.com/Fripe070/experienced/internal/config"
	"github.com/Fripe070/experienced/internal/db"
	"github.com/Fripe070/experienced/internal/db/repositories"
	"github.com/Fripe070/experienced/internal/handlers"
	"github.com/Fripe070/experienced/internal/logging"
	"github.com/Fripe070/experienced/internal/metrics"
	"github.com/Fripe070/experienced/internal/models/dtos"
	"github.com/Fripe070/experienced/internal/providers"
	"github.com/Fripe070/experienced/internal/routes"
	"github.com/Fripe070/experienced/internal/services"
	"github.com/Fripe070/experienced/internal/workers"
)

// buildSHA is injected with -ldflags "-X main.buildSHA=$(git rev-parse --short HEAD)".
var buildSHA = "unknown"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.Close()

	logging.Info("Experienced starting up",
		"environment", cfg.AppEnv,
		"build_sha", buildSHA,
	)

	if err := db.InitPostgres(cfg.PostgresDSN()); err != nil {
		logging.Fatal("Failed to connect to Postgres (sqlx)", "error", err.Error())
	}
	logging.Info("Connected to Postgres (sqlx)")

	if _, err := db.InitPostgresORM(cfg.PostgresDSN()); err != nil {
		logging.Fatal("Failed to connect to Postgres (GORM)", "error", err.Error())
	}
	logging.Info("Connected to Postgres (GORM)")

	reg := metrics.NewMetricsRegistry()

	redisClient := cache.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword)
	userCache := cache.NewUserCache(redisClient, reg)

	levelsRepo := repositories.NewLevelsRepository(db.DB)
	cardRepo := repositories.NewCardRepository(db.DB)
	banRepo := repositories.NewGuildBanRepository(db.PgDB)
	guildConfigRepo := repositories.NewGuildConfigRepository(db.PgDB)
	roleRewardRepo := repositories.NewRoleRewardRepository(db.PgDB)

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		logging.Fatal("Failed to create Discord session", "error", err.Error())
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

	rankService := services.NewRankService(levelsRepo)
	cardService := services.NewCardService(cardRepo, providers.NewRenderProvider(cfg.RenderBaseURL), reg)
	adminService := services.NewAdminService(cfg.ControlGuildID(), cfg.OwnerIDs(), levelsRepo, banRepo, session, buildSHA)
	configService := services.NewGuildConfigService(guildConfigRepo, roleRewardRepo)

	importQueue := workers.NewImportQueue(reg)
	importWorker := workers.NewImportWorker(importQueue, providers.NewMee6Provider(cfg.Mee6BaseURL), levelsRepo, reg)

	router := handlers.NewRouter(rankService, cardService, adminService, configService, importQueue, banRepo, reg)
	session.AddHandler(router.HandleInteraction)
	session.AddHandler(memberChunkHandler(userCache))

	if err := session.Open(); err != nil {
		logging.Fatal("Failed to open Discord gateway", "error", err.Error())
	}
	defer session.Close()
	logging.Info("Discord gateway connected", "user", session.State.User.Username)

	if err := handlers.Register(session, session.State.User.ID); err != nil {
		logging.Fatal("Failed to register commands", "error", err.Error())
	}
	logging.Info("Commands registered")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.OpsPort),
		Handler: routes.RegisterRoutes(levelsRepo, buildSHA, time.Now()),
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		importWorker.Start(groupCtx)
		return nil
	})
	group.Go(func() error {
		logging.Info("Ops server starting", "port", cfg.OpsPort)
		if err := opsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return opsServer.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logging.Fatal("Shutdown error", "error", err.Error())
	}
	logging.Info("Shut down cleanly")
}

// memberChunkHandler feeds the write-through display-name cache as member
// chunks arrive from the gateway.
func memberChunkHandler(userCache *cache.UserCache) func(*discordgo.Session, *discordgo.GuildMembersChunk) {
	return func(_ *discordgo.Session, chunk *discordgo.GuildMembersChunk) {
		infos := make([]dtos.MemberDisplayInfo, 0, len(chunk.Members))
		for _, member := range chunk.Members {
			info, err := dtos.DisplayInfoFromMember(member)
			if err != nil {
				continue
			}
			infos = append(infos, info)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := userCache.SetBatch(ctx, infos); err != nil {
			logging.Error("Failed to cache member chunk",
				"guild_id", chunk.GuildID,
				"count", len(infos),
				"error", err.Error(),
			)
		}
	}
}
