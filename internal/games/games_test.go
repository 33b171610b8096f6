package games

import (
	"strings"
	"testing"

	"gary-bot/internal/utils"
)

func TestEightBallDrawsFromFixedSet(t *testing.T) {
	valid := map[string]bool{"Yes": true, "No": true, "Maybe": true, "Definitely": true, "I don't know": true}
	for i := 0; i < 50; i++ {
		if answer := EightBall(); !valid[answer] {
			t.Fatalf("unexpected answer %q", answer)
		}
	}
}

func TestCoinflip(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		result := Coinflip()
		if result != "Heads" && result != "Tails" {
			t.Fatalf("unexpected result %q", result)
		}
		seen[result] = true
	}
	if len(seen) != 2 {
		t.Fatalf("expected both faces over 100 flips, got %v", seen)
	}
}

func TestRollRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		if got := Roll(); got < 1 || got > 6 {
			t.Fatalf("roll out of range: %d", got)
		}
	}
}

func TestRPSOutcome(t *testing.T) {
	cases := []struct {
		player, bot, want string
	}{
		{"rock", "rock", "It's a tie!"},
		{"rock", "scissors", "You win!"},
		{"paper", "rock", "You win!"},
		{"scissors", "paper", "You win!"},
		{"rock", "paper", "You lose!"},
		{"scissors", "rock", "You lose!"},
	}
	for _, tt := range cases {
		if got := RPSOutcome(tt.player, tt.bot); got != tt.want {
			t.Fatalf("RPSOutcome(%s, %s) = %q, want %q", tt.player, tt.bot, got, tt.want)
		}
	}
}

func TestRPSValidation(t *testing.T) {
	if _, err := RPS("lizard"); !utils.IsUsage(err) {
		t.Fatalf("expected usage error for invalid choice, got %v", err)
	}

	result, err := RPS("  Rock ")
	if err != nil {
		t.Fatalf("rps: %v", err)
	}
	if !strings.HasPrefix(result, "🪨 Rock vs ") {
		t.Fatalf("unexpected result line %q", result)
	}
}
