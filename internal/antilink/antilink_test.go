package antilink

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

type fakeChannel struct {
	deleted []string
	embeds  []*discordgo.MessageEmbed
}

func (f *fakeChannel) ChannelMessageDelete(channelID, messageID string, _ ...discordgo.RequestOption) error {
	f.deleted = append(f.deleted, messageID)
	return nil
}

func (f *fakeChannel) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.embeds = append(f.embeds, embed)
	return &discordgo.Message{}, nil
}

func testEmbed(title, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{Title: title, Description: description}
}

func TestMatches(t *testing.T) {
	if !Matches("check https://example.com out") {
		t.Fatalf("expected https link to match")
	}
	if !Matches("HTTP://SHOUTY.example") {
		t.Fatalf("expected uppercase link to match")
	}
	if Matches("nothing suspicious here") {
		t.Fatalf("expected plain text not to match")
	}
}

func TestHandleDeletesAndWarns(t *testing.T) {
	channel := &fakeChannel{}
	filter := New(channel, zap.NewNop(), testEmbed)

	consumed := filter.Handle("c1", "m1", "u1", "spam https://example.com/page")
	if !consumed {
		t.Fatalf("expected message to be consumed")
	}
	if len(channel.deleted) != 1 || channel.deleted[0] != "m1" {
		t.Fatalf("expected m1 deleted, got %v", channel.deleted)
	}
	if len(channel.embeds) != 1 {
		t.Fatalf("expected one warning, got %d", len(channel.embeds))
	}
	warning := channel.embeds[0]
	if !strings.Contains(warning.Description, "<@u1>") {
		t.Fatalf("expected mention in warning, got %q", warning.Description)
	}
	if !strings.Contains(warning.Description, "example.com") {
		t.Fatalf("expected host named in warning, got %q", warning.Description)
	}
}

func TestHandleIgnoresPlainText(t *testing.T) {
	channel := &fakeChannel{}
	filter := New(channel, zap.NewNop(), testEmbed)

	if filter.Handle("c1", "m1", "u1", "just chatting") {
		t.Fatalf("expected plain message to pass through")
	}
	if len(channel.deleted) != 0 || len(channel.embeds) != 0 {
		t.Fatalf("expected no platform calls")
	}
}

func TestHandleRateLimitsWarnings(t *testing.T) {
	channel := &fakeChannel{}
	filter := New(channel, zap.NewNop(), testEmbed)

	for i := 0; i < 10; i++ {
		filter.Handle("c1", "m", "u1", "https://example.com")
	}
	if len(channel.deleted) != 10 {
		t.Fatalf("expected every message deleted, got %d", len(channel.deleted))
	}
	if len(channel.embeds) >= 10 {
		t.Fatalf("expected warnings to be rate limited, got %d", len(channel.embeds))
	}
	if len(channel.embeds) == 0 {
		t.Fatalf("expected at least one warning")
	}
}
