package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/discord"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/logger"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/middleware"
)

// botConfig is read from the environment. The JWT settings must match the API's.
type botConfig struct {
	Token       string        `env:"DISCORD_TOKEN,required"`
	AppID       string        `env:"DISCORD_APP_ID,required"`
	APIURL      string        `env:"API_URL" envDefault:"http://localhost:8080"`
	HealthPort  string        `env:"DISCORD_HEALTH_PORT" envDefault:"8082"`
	ForceUpdate bool          `env:"DISCORD_FORCE_COMMAND_UPDATE" envDefault:"false"`
	JWTSecret   string        `env:"JWT_SECRET,required"`
	JWTIssuer   string        `env:"JWT_ISSUER" envDefault:"vespr"`
	JWTTTL      time.Duration `env:"JWT_TTL" envDefault:"15m"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string        `env:"LOG_FORMAT" envDefault:"text"`
	Environment string        `env:"ENVIRONMENT" envDefault:"dev"`
	Version     string        `env:"VERSION" envDefault:"dev"`
}

// CommandFactory creates a Discord command and its handler.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	_ = godotenv.Load()

	var cfg botConfig
	if err := env.Parse(&cfg); err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, "vespr-discord", cfg.Version, cfg.Environment, false))
	slog.Info("Configured API URL", "url", cfg.APIURL)

	auth, err := middleware.NewAuthenticator(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	if err != nil {
		slog.Error("Failed to create token issuer", "error", err)
		os.Exit(1)
	}

	bot, err := discord.New(discord.Config{
		Token:  cfg.Token,
		AppID:  cfg.AppID,
		APIURL: cfg.APIURL,
		Tokens: auth,
	})
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	httpServer := discord.NewHTTPServer(cfg.HealthPort, bot)
	httpServer.Start()
	defer httpServer.Stop()

	registerCommands(bot, getCommandFactories())

	if cfg.ForceUpdate {
		slog.Info("Force command update enabled via environment variable")
	}
	if err := bot.RegisterCommands(bot.Registry, cfg.ForceUpdate); err != nil {
		// Commands registered by an earlier run keep working
		slog.Error("Failed to register commands", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bot.Run(ctx); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

// getCommandFactories returns every slash command the bot offers
func getCommandFactories() []CommandFactory {
	return []CommandFactory{
		// Player commands
		discord.InventoryCommand,
		discord.StatsCommand,
		discord.UseItemCommand,
		discord.EquipCommand,
		discord.UnequipCommand,
		discord.DiscardCommand,

		// Admin commands
		discord.GiveCommand,
	}
}

// registerCommands adds each factory's command and handler to the bot's registry
func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
}
