// ABOUTME: Main entry point for the runebot lookup CLI
// ABOUTME: Wires together all components and runs one query against the wiki or hiscores

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"runebot-api/core/domain"
	"runebot-api/core/extract"
	"runebot-api/core/hiscores"
	"runebot-api/core/interfaces"
	"runebot-api/core/prices"
	"runebot-api/core/services"
	"runebot-api/core/wiki"
	"runebot-api/infrastructure/cache/memory"
	"runebot-api/infrastructure/cache/redis"
	stdhttp "runebot-api/infrastructure/http/standard"
	logrusLogger "runebot-api/infrastructure/logger/logrus"
	"runebot-api/infrastructure/store/sqlite"
	"runebot-api/pkg/config"
)

const usage = `usage: runebot <command> <args>

commands:
  wiki <query>             resolve a wiki article
  alch <query>             alchemy values and margin for an item
  price <query>            live price report for an item
  monster <query>          bestiary data for a monster
  quest <query>            quest metadata
  minigame <query>         minigame metadata
  hiscores <mode> <name>   hiscores lookup
  combat <mode> <name>     combat level and experience
  colour <guild> <owner> <query>
                           embed tint for an article in a guild
  setcolour <guild> <on|off>
                           toggle colour extraction for a guild
  register <user> <name> <mode>
                           store a player identity
`

func main() {
	if len(os.Args) < 3 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logrusLogger.NewLogrusLogger(logrusLogger.Options{
		Level: os.Getenv("LOG_LEVEL"),
		JSON:  os.Getenv("LOG_FORMAT") == "json",
	})

	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(cfg.Cache.Memory)
		} else {
			defer redisCache.Close()
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache(cfg.Cache.Memory)
	}

	httpClient := stdhttp.NewStandardHTTPClient(stdhttp.Options{
		Timeout:           time.Duration(cfg.Wiki.FetchTimeoutSeconds) * time.Second,
		RequestsPerSecond: cfg.Wiki.RequestsPerSecond,
		UserAgent:         cfg.Wiki.UserAgent,
	})

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	store, err := sqlite.NewStore(cfg.Store.Path)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	app := &app{
		cfg:      cfg,
		deps:     deps,
		store:    store,
		wiki:     wiki.NewService(deps, store, cfg.Wiki),
		hiscores: hiscores.NewService(deps, cfg.Hiscores),
		prices:   prices.NewService(deps, cfg.Prices),
		colors:   services.NewThumbnailColorService(deps, store, cfg.Wiki.UserAgent),
	}

	ctx := context.Background()
	result, err := app.run(ctx, os.Args[1], os.Args[2:])
	if err != nil {
		logger.Error("Command failed", map[string]interface{}{
			"command": os.Args[1],
			"error":   err.Error(),
		})
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
	fmt.Println(string(out))
}

type app struct {
	cfg      *config.Config
	deps     interfaces.Dependencies
	store    *sqlite.Store
	wiki     *wiki.Service
	hiscores *hiscores.Service
	prices   *prices.Service
	colors   *services.ThumbnailColorService
}

func (a *app) run(ctx context.Context, command string, args []string) (interface{}, error) {
	switch command {
	case "wiki":
		return a.wiki.Search(ctx, args[0])

	case "alch":
		page, err := a.wiki.GetPage(ctx, args[0])
		if err != nil {
			return nil, err
		}
		record, err := extract.Alchemy(page)
		if err != nil {
			return nil, err
		}
		margin, err := a.prices.AlchMargin(ctx, *record)
		if err != nil {
			return nil, err
		}
		return struct {
			*domain.AlchemyRecord
			Margin string
		}{record, margin}, nil

	case "price":
		page, err := a.wiki.GetPage(ctx, args[0])
		if err != nil {
			return nil, err
		}
		record, err := extract.Price(page)
		if err != nil {
			return nil, err
		}
		return a.prices.BuildReport(ctx, *record)

	case "monster":
		page, err := a.wiki.GetPage(ctx, args[0])
		if err != nil {
			return nil, err
		}
		return extract.Monster(page)

	case "quest":
		page, err := a.wiki.GetPage(ctx, args[0])
		if err != nil {
			return nil, err
		}
		return extract.Quest(page)

	case "minigame":
		page, err := a.wiki.GetPage(ctx, args[0])
		if err != nil {
			return nil, err
		}
		icons := extract.NewIconResolver(
			a.cfg.Wiki.BaseURL+"Minigames",
			siteURL(a.cfg.Wiki.BaseURL),
			a.cfg.Wiki.UserAgent,
			a.deps.Logger,
		)
		return extract.Minigame(ctx, page, icons, a.cfg.Wiki.Icons.Minigame)

	case "hiscores":
		if len(args) < 2 {
			return nil, fmt.Errorf("hiscores requires a mode and a username")
		}
		row, err := a.hiscores.Lookup(ctx, domain.GameMode(args[0]), args[1])
		if err != nil {
			return nil, err
		}
		entries := make(map[string]domain.SkillEntry)
		for _, field := range hiscores.FieldOrder {
			if entry, ok := row.Get(field); ok {
				entries[field] = entry
			}
		}
		return struct {
			Username string
			GameMode domain.GameMode
			Entries  map[string]domain.SkillEntry
		}{row.Username, row.GameMode, entries}, nil

	case "combat":
		if len(args) < 2 {
			return nil, fmt.Errorf("combat requires a mode and a username")
		}
		row, err := a.hiscores.Lookup(ctx, domain.GameMode(args[0]), args[1])
		if err != nil {
			return nil, err
		}
		level, err := hiscores.CombatLevel(hiscores.CombatLevelsFromRow(row))
		if err != nil {
			return nil, err
		}
		exp := hiscores.CombatExperience(domain.CombatSkills, row)
		return struct {
			Username   string
			Level      int64
			Experience string
		}{row.Username, level, exp.String()}, nil

	case "colour":
		if len(args) < 3 {
			return nil, fmt.Errorf("colour requires a guild id, an owner id and a query")
		}
		record, err := a.wiki.Search(ctx, args[2])
		if err != nil {
			return nil, err
		}
		color, err := a.colors.EmbedColor(ctx, args[0], args[1], record.ThumbnailURL)
		if err != nil {
			return nil, err
		}
		return struct {
			Title  string
			Colour domain.RGBColor
		}{record.Title, color}, nil

	case "setcolour":
		if len(args) < 2 {
			return nil, fmt.Errorf("setcolour requires a guild id and on/off")
		}
		// The CLI runs with operator credentials; frontends pass the
		// caller's real permission bit here.
		if err := services.RequireAdministrator("cli", true); err != nil {
			return nil, err
		}
		if err := a.store.SetColourMode(ctx, args[0], args[1] == "on"); err != nil {
			return nil, err
		}
		return map[string]string{"guild": args[0], "colour_mode": args[1]}, nil

	case "register":
		if len(args) < 3 {
			return nil, fmt.Errorf("register requires a user id, a username and a mode")
		}
		identity := domain.PlayerIdentity{
			UserID:      args[0],
			Username:    args[1],
			AccountType: domain.GameMode(args[2]),
		}
		if err := a.store.SetPlayer(ctx, identity); err != nil {
			return nil, err
		}
		return identity, nil

	default:
		return nil, fmt.Errorf("unknown command %q", command)
	}
}

// siteURL strips the article path from the base URL for resolving
// root-relative links.
func siteURL(baseURL string) string {
	const articlePath = "/w/"
	if idx := len(baseURL) - len(articlePath); idx > 0 && baseURL[idx:] == articlePath {
		return baseURL[:idx]
	}
	return baseURL
}
