package bot

import (
	"sync"
	"time"

	"gary-bot/internal/antilink"
	"gary-bot/internal/config"
	"gary-bot/internal/moderation"
	"gary-bot/internal/storage"
	"gary-bot/internal/trivia"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Bot ties the gateway session to the guild store and the feature modules.
type Bot struct {
	cfg     config.Config
	logger  *zap.Logger
	store   *storage.GuildStore
	session *discordgo.Session

	actions *moderation.Actions
	filter  *antilink.Filter
	trivia  *trivia.Sessions
	latency func() time.Duration

	presenceOnce   sync.Once
	presenceCancel func()
}

func New(cfg config.Config, logger *zap.Logger, store *storage.GuildStore) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, err
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildBans |
		discordgo.IntentsMessageContent

	b := &Bot{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		session: session,
		latency: session.HeartbeatLatency,
	}
	b.actions = moderation.New(session, logger)
	b.filter = antilink.New(session, logger, b.dangerEmbed)
	b.trivia = trivia.NewSessions(logger)

	return b, nil
}

func (b *Bot) Start() error {
	b.session.AddHandler(b.onReady)
	b.session.AddHandler(b.onGuildCreate)
	b.session.AddHandler(b.onGuildMemberAdd)
	b.session.AddHandler(b.onGuildMemberRemove)
	b.session.AddHandler(b.onMessageCreate)
	b.session.AddHandler(b.onMessageDelete)
	b.session.AddHandler(b.onInteractionCreate)

	if err := b.session.Open(); err != nil {
		return err
	}

	return b.registerCommands()
}

func (b *Bot) Close() {
	if b.presenceCancel != nil {
		b.presenceCancel()
	}
	if b.session != nil {
		_ = b.session.Close()
	}
}

// GuildCount reports how many guilds the session currently sees.
func (b *Bot) GuildCount() int {
	return len(b.session.State.Guilds)
}
