package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"gary-bot/internal/utils"

	"go.uber.org/zap"
)

func newTestStore(t *testing.T) (*GuildStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "guilds.json")
	return Open(path, zap.NewNop()), path
}

func TestEnsureGuildDefaults(t *testing.T) {
	store, _ := newTestStore(t)

	if err := store.EnsureGuild("g1", "Test Guild"); err != nil {
		t.Fatalf("ensure guild: %v", err)
	}

	value, ok := store.Get("g1", "prefix")
	if !ok || value != "C!" {
		t.Fatalf("expected prefix C!, got %v", value)
	}
	value, ok = store.Get("g1", "anti_link")
	if !ok || value != true {
		t.Fatalf("expected anti_link true, got %v", value)
	}
	value, ok = store.Get("g1", "welcome_channel")
	if !ok || value != int64(0) {
		t.Fatalf("expected unset welcome channel, got %v", value)
	}
}

func TestEnsureGuildIdempotent(t *testing.T) {
	store, path := newTestStore(t)

	if err := store.EnsureGuild("g1", "Test Guild"); err != nil {
		t.Fatalf("ensure guild: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read store: %v", err)
	}

	if err := store.EnsureGuild("g1", "Test Guild"); err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read store: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatalf("second EnsureGuild rewrote the file")
	}
}

func TestSetCoercion(t *testing.T) {
	store, _ := newTestStore(t)
	if err := store.EnsureGuild("g1", ""); err != nil {
		t.Fatalf("ensure guild: %v", err)
	}

	if err := store.Set("g1", "log_channel", "123456789"); err != nil {
		t.Fatalf("set log_channel: %v", err)
	}
	value, _ := store.Get("g1", "log_channel")
	if value != int64(123456789) {
		t.Fatalf("expected int64 123456789, got %v", value)
	}

	if err := store.Set("g1", "welcome_message", "Hi {user}"); err != nil {
		t.Fatalf("set welcome_message: %v", err)
	}
	value, _ = store.Get("g1", "welcome_message")
	if value != "Hi {user}" {
		t.Fatalf("expected template stored as text, got %v", value)
	}

	if err := store.Set("g1", "log_channel", "not-a-number"); !utils.IsUsage(err) {
		t.Fatalf("expected usage error for non-numeric id, got %v", err)
	}
	if err := store.Set("g1", "anti_link", "maybe"); !utils.IsUsage(err) {
		t.Fatalf("expected usage error for bad bool, got %v", err)
	}
}

func TestSetUnknownKey(t *testing.T) {
	store, _ := newTestStore(t)
	if err := store.Set("g1", "color_scheme", "dark"); !utils.IsUsage(err) {
		t.Fatalf("expected usage error for unknown key, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	store, path := newTestStore(t)
	if err := store.EnsureGuild("g1", ""); err != nil {
		t.Fatalf("ensure guild: %v", err)
	}
	if err := store.Set("g1", "prefix", "!"); err != nil {
		t.Fatalf("set prefix: %v", err)
	}
	if err := store.Set("g1", "admin_role", "42"); err != nil {
		t.Fatalf("set admin_role: %v", err)
	}
	if err := store.Set("g1", "anti_link", "false"); err != nil {
		t.Fatalf("set anti_link: %v", err)
	}

	reloaded := Open(path, zap.NewNop())
	cfg := reloaded.Guild("g1")
	if cfg.Prefix != "!" {
		t.Fatalf("expected prefix !, got %q", cfg.Prefix)
	}
	if cfg.AdminRole != 42 {
		t.Fatalf("expected admin role 42, got %d", cfg.AdminRole)
	}
	if cfg.AntiLink {
		t.Fatalf("expected anti_link false after reload")
	}
	if cfg.LeaveMessage != "Goodbye, {user}!" {
		t.Fatalf("expected default leave message, got %q", cfg.LeaveMessage)
	}
}

func TestOpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guilds.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	store := Open(path, zap.NewNop())
	cfg := store.Guild("g1")
	if cfg.Prefix != "C!" {
		t.Fatalf("expected defaults from empty store, got %q", cfg.Prefix)
	}
}
