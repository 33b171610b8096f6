package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"gary-bot/internal/utils"

	"go.uber.org/zap"
)

// GuildConfig holds the per-guild settings. Channel and role fields keep the
// zero value when not configured.
type GuildConfig struct {
	Prefix         string `json:"prefix"`
	WelcomeChannel int64  `json:"welcome_channel"`
	LogChannel     int64  `json:"log_channel"`
	TicketCategory int64  `json:"ticket_category"`
	AdminRole      int64  `json:"admin_role"`
	AntiLink       bool   `json:"anti_link"`
	WelcomeMessage string `json:"welcome_message"`
	LeaveMessage   string `json:"leave_message"`
}

func DefaultGuildConfig() GuildConfig {
	return GuildConfig{
		Prefix:         "C!",
		AntiLink:       true,
		WelcomeMessage: "Welcome to the server, {user}!",
		LeaveMessage:   "Goodbye, {user}!",
	}
}

// GuildStore keeps every guild's settings in memory and rewrites the whole
// backing JSON file on each mutation. Mutations hold the lock across the file
// write so concurrent writers never interleave.
type GuildStore struct {
	mu     sync.Mutex
	path   string
	logger *zap.Logger
	guilds map[string]*GuildConfig
}

// Open loads the store from path. A missing or unreadable file degrades to an
// empty store; it never fails the process.
func Open(path string, logger *zap.Logger) *GuildStore {
	store := &GuildStore{
		path:   path,
		logger: logger,
		guilds: make(map[string]*GuildConfig),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("guild store unreadable, starting empty", zap.String("path", path), zap.Error(err))
		}
		return store
	}
	if err := json.Unmarshal(data, &store.guilds); err != nil {
		logger.Warn("guild store corrupt, starting empty", zap.String("path", path), zap.Error(err))
		store.guilds = make(map[string]*GuildConfig)
	}
	return store
}

// EnsureGuild inserts a default entry for the guild and persists it. Calling
// it again for a known guild is a no-op and does not touch the file.
func (s *GuildStore) EnsureGuild(guildID, guildName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.guilds[guildID]; ok {
		return nil
	}
	cfg := DefaultGuildConfig()
	s.guilds[guildID] = &cfg
	if err := s.saveLocked(); err != nil {
		return err
	}
	s.logger.Info("guild config created", zap.String("guild_id", guildID), zap.String("guild_name", guildName))
	return nil
}

// Guild returns a copy of the guild's settings, or the defaults when the
// guild has not been seen yet.
func (s *GuildStore) Guild(guildID string) GuildConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cfg, ok := s.guilds[guildID]; ok {
		return *cfg
	}
	return DefaultGuildConfig()
}

// Set updates one recognized setting from its raw text form and persists the
// store. Unknown keys and values of the wrong shape are usage errors.
func (s *GuildStore) Set(guildID, key, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, ok := s.guilds[guildID]
	if !ok {
		fresh := DefaultGuildConfig()
		cfg = &fresh
		s.guilds[guildID] = cfg
	}

	switch key {
	case "prefix":
		if raw == "" {
			return utils.Usagef("prefix must not be empty")
		}
		cfg.Prefix = raw
	case "welcome_channel", "log_channel", "ticket_category", "admin_role":
		id, err := parseID(raw)
		if err != nil {
			return utils.Usagef("%s expects a numeric id, got %q", key, raw)
		}
		switch key {
		case "welcome_channel":
			cfg.WelcomeChannel = id
		case "log_channel":
			cfg.LogChannel = id
		case "ticket_category":
			cfg.TicketCategory = id
		case "admin_role":
			cfg.AdminRole = id
		}
	case "anti_link":
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.Usagef("anti_link expects true or false, got %q", raw)
		}
		cfg.AntiLink = enabled
	case "welcome_message":
		cfg.WelcomeMessage = raw
	case "leave_message":
		cfg.LeaveMessage = raw
	default:
		return utils.Usagef("unknown configuration key %q", key)
	}

	return s.saveLocked()
}

// Get returns the raw stored value for a recognized key.
func (s *GuildStore) Get(guildID, key string) (any, bool) {
	cfg := s.Guild(guildID)
	switch key {
	case "prefix":
		return cfg.Prefix, true
	case "welcome_channel":
		return cfg.WelcomeChannel, true
	case "log_channel":
		return cfg.LogChannel, true
	case "ticket_category":
		return cfg.TicketCategory, true
	case "admin_role":
		return cfg.AdminRole, true
	case "anti_link":
		return cfg.AntiLink, true
	case "welcome_message":
		return cfg.WelcomeMessage, true
	case "leave_message":
		return cfg.LeaveMessage, true
	default:
		return nil, false
	}
}

// saveLocked rewrites the whole store, pretty-printed for hand inspection.
// Callers must hold s.mu. The temp-file rename keeps a crashed write from
// truncating the previous state.
func (s *GuildStore) saveLocked() error {
	data, err := json.MarshalIndent(s.guilds, "", "    ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".guilds-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

func parseID(raw string) (int64, error) {
	if raw == "" {
		return 0, strconv.ErrSyntax
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.ParseInt(raw, 10, 64)
}
