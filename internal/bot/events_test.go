package bot

import (
	"strings"
	"testing"

	"gary-bot/internal/antilink"
	"gary-bot/internal/storage"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

type fakeMessageChannel struct {
	deleted  []string
	warnings []*discordgo.MessageEmbed
}

func (f *fakeMessageChannel) ChannelMessageDelete(channelID, messageID string, _ ...discordgo.RequestOption) error {
	f.deleted = append(f.deleted, messageID)
	return nil
}

func (f *fakeMessageChannel) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.warnings = append(f.warnings, embed)
	return &discordgo.Message{}, nil
}

type pipelineRun struct {
	sent       []string
	dispatched []string
}

func newPipelineBot(t *testing.T) (*Bot, *fakeMessageChannel) {
	t.Helper()
	b, _ := newTestBot(t)
	channel := &fakeMessageChannel{}
	b.filter = antilink.New(channel, zap.NewNop(), b.dangerEmbed)
	return b, channel
}

func runPipeline(b *Bot, cfg storage.GuildConfig, admin bool, content string) *pipelineRun {
	run := &pipelineRun{}
	msg := inboundMessage{channelID: "c1", messageID: "m1", authorID: "u1", content: content}
	b.processMessage(cfg, admin, msg,
		func(content string) { run.sent = append(run.sent, content) },
		func(name string, args []string) { run.dispatched = append(run.dispatched, name) })
	return run
}

func TestPipelineLinkGate(t *testing.T) {
	cases := []struct {
		name        string
		antiLink    bool
		admin       bool
		wantDeleted bool
	}{
		{"enabled non-admin", true, false, true},
		{"enabled admin", true, true, false},
		{"disabled non-admin", false, false, false},
		{"disabled admin", false, true, false},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			b, channel := newPipelineBot(t)
			cfg := storage.DefaultGuildConfig()
			cfg.AntiLink = tt.antiLink

			run := runPipeline(b, cfg, tt.admin, "look at http://spam.example")

			if tt.wantDeleted {
				if len(channel.deleted) != 1 || len(channel.warnings) != 1 {
					t.Fatalf("expected delete and one warning, got deleted=%v warnings=%d", channel.deleted, len(channel.warnings))
				}
			} else if len(channel.deleted) != 0 || len(channel.warnings) != 0 {
				t.Fatalf("expected message untouched, got deleted=%v warnings=%d", channel.deleted, len(channel.warnings))
			}
			if len(run.dispatched) != 0 || len(run.sent) != 0 {
				t.Fatalf("plain link message should not dispatch or reply, got %+v", run)
			}
		})
	}
}

func TestPipelineConsumedMessageSkipsCommands(t *testing.T) {
	b, channel := newPipelineBot(t)

	run := runPipeline(b, storage.DefaultGuildConfig(), false, "C!ping http://spam.example")

	if len(channel.deleted) != 1 {
		t.Fatalf("expected link message deleted, got %v", channel.deleted)
	}
	if len(run.dispatched) != 0 {
		t.Fatalf("consumed message should not reach command dispatch, got %v", run.dispatched)
	}
}

func TestPipelineConsumedMessageSkipsTrivia(t *testing.T) {
	b, channel := newPipelineBot(t)
	question := b.trivia.Begin("c1")

	run := runPipeline(b, storage.DefaultGuildConfig(), false, question.Answer+" http://spam.example")

	if len(channel.deleted) != 1 {
		t.Fatalf("expected link message deleted, got %v", channel.deleted)
	}
	if len(run.sent) != 0 {
		t.Fatalf("consumed message should not be judged as a guess, got %v", run.sent)
	}
	if !b.trivia.Active("c1") {
		t.Fatalf("expected the round to survive a consumed message")
	}
}

func TestPipelineCommandSkipsTrivia(t *testing.T) {
	b, _ := newPipelineBot(t)
	b.trivia.Begin("c1")

	run := runPipeline(b, storage.DefaultGuildConfig(), false, "C!ping")

	if len(run.dispatched) != 1 || run.dispatched[0] != "ping" {
		t.Fatalf("expected ping dispatched, got %v", run.dispatched)
	}
	if len(run.sent) != 0 {
		t.Fatalf("command should not be judged as a guess, got %v", run.sent)
	}
	if !b.trivia.Active("c1") {
		t.Fatalf("expected the round to survive a command message")
	}
}

func TestPipelineJudgesOpenRound(t *testing.T) {
	b, _ := newPipelineBot(t)
	question := b.trivia.Begin("c1")

	run := runPipeline(b, storage.DefaultGuildConfig(), false, "definitely not it")
	if len(run.sent) != 1 || !strings.HasPrefix(run.sent[0], "❌ Incorrect.") {
		t.Fatalf("expected reveal reply, got %v", run.sent)
	}
	if !strings.Contains(run.sent[0], question.Answer) {
		t.Fatalf("expected answer in reveal, got %q", run.sent[0])
	}

	question = b.trivia.Begin("c1")
	run = runPipeline(b, storage.DefaultGuildConfig(), false, strings.ToLower(question.Answer))
	if len(run.sent) != 1 || !strings.HasPrefix(run.sent[0], "🎉 Correct!") {
		t.Fatalf("expected correct reply, got %v", run.sent)
	}
}

func TestPipelineBlankPrefixFallsBack(t *testing.T) {
	b, _ := newPipelineBot(t)
	cfg := storage.DefaultGuildConfig()
	cfg.Prefix = ""

	run := runPipeline(b, cfg, false, "C!ping")

	if len(run.dispatched) != 1 || run.dispatched[0] != "ping" {
		t.Fatalf("expected default prefix to apply, got %v", run.dispatched)
	}
}
