package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"

	"github.com/Fripe070/experienced/internal/common"
)

// Config is the full process configuration, parsed once at startup. Request
// paths never read the environment directly.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"development"`

	DiscordToken string `env:"DISCORD_TOKEN,required"`
	// ControlGuild gates every admin command; Owners is the comma-separated
	// set of user IDs allowed to run them.
	ControlGuild string   `env:"CONTROL_GUILD,required"`
	Owners       []string `env:"OWNERS,required" envSeparator:","`

	PGHost     string `env:"PG_HOST" envDefault:"localhost"`
	PGPort     string `env:"PG_PORT" envDefault:"5432"`
	PGUser     string `env:"PG_USER,required"`
	PGPassword string `env:"PG_PASSWORD,required"`
	PGDatabase string `env:"PG_DB,required"`

	RedisHost     string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort     string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	Mee6BaseURL   string `env:"MEE6_API_BASE_URL" envDefault:"https://mee6.xyz/api/plugins/levels"`
	RenderBaseURL string `env:"RENDER_BASE_URL,required"`

	OpsPort int `env:"OPS_PORT" envDefault:"8080"`

	controlGuildID uint64
	ownerIDs       map[uint64]struct{}
	ownerIDList    []uint64
}

// Load parses and validates the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	guildID, err := common.ParseID(cfg.ControlGuild)
	if err != nil {
		return nil, fmt.Errorf("CONTROL_GUILD: %w", err)
	}
	cfg.controlGuildID = guildID

	cfg.ownerIDs = make(map[uint64]struct{}, len(cfg.Owners))
	for _, raw := range cfg.Owners {
		id, err := common.ParseID(raw)
		if err != nil {
			return nil, fmt.Errorf("OWNERS: %w", err)
		}
		cfg.ownerIDs[id] = struct{}{}
		cfg.ownerIDList = append(cfg.ownerIDList, id)
	}
	return cfg, nil
}

// PostgresDSN builds the connection string for both the sqlx and GORM layers.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase)
}

// ControlGuildID returns the parsed control guild snowflake.
func (c *Config) ControlGuildID() uint64 {
	return c.controlGuildID
}

// OwnerIDs returns the parsed owner snowflakes.
func (c *Config) OwnerIDs() []uint64 {
	return c.ownerIDList
}

// IsOwner reports whether the user is in the configured owner set.
func (c *Config) IsOwner(userID uint64) bool {
	_, ok := c.ownerIDs[userID]
	return ok
}
