package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gary-bot/internal/presence"
	"gary-bot/internal/storage"
	"gary-bot/internal/trivia"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

func (b *Bot) onReady(session *discordgo.Session, event *discordgo.Ready) {
	b.logger.Info("gateway ready",
		zap.String("user", session.State.User.Username),
		zap.Int("guilds", len(event.Guilds)))

	for _, guild := range event.Guilds {
		if guild == nil {
			continue
		}
		if err := b.store.EnsureGuild(guild.ID, guild.Name); err != nil {
			b.logger.Warn("guild config init failed", zap.String("guild_id", guild.ID), zap.Error(err))
		}
	}

	b.presenceOnce.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		b.presenceCancel = cancel
		rotator := presence.New(
			session,
			b.GuildCount,
			b.cfg.Presence.Statuses,
			time.Duration(b.cfg.Presence.IntervalSeconds)*time.Second,
			b.logger,
		)
		go rotator.Run(ctx)
	})
}

func (b *Bot) onGuildCreate(session *discordgo.Session, event *discordgo.GuildCreate) {
	if event.Guild == nil {
		return
	}
	if err := b.store.EnsureGuild(event.ID, event.Name); err != nil {
		b.logger.Warn("guild config init failed", zap.String("guild_id", event.ID), zap.Error(err))
	}
}

func (b *Bot) onGuildMemberAdd(session *discordgo.Session, event *discordgo.GuildMemberAdd) {
	cfg := b.store.Guild(event.GuildID)
	if cfg.WelcomeChannel == 0 || event.User == nil {
		return
	}
	channelID := strconv.FormatInt(cfg.WelcomeChannel, 10)
	message := strings.ReplaceAll(cfg.WelcomeMessage, "{user}", event.Mention())
	if _, err := session.ChannelMessageSendEmbed(channelID, b.successEmbed("Welcome!", message)); err != nil {
		b.logger.Warn("welcome message failed", zap.String("guild_id", event.GuildID), zap.Error(err))
	}
}

func (b *Bot) onGuildMemberRemove(session *discordgo.Session, event *discordgo.GuildMemberRemove) {
	cfg := b.store.Guild(event.GuildID)
	if cfg.WelcomeChannel == 0 || event.User == nil {
		return
	}
	channelID := strconv.FormatInt(cfg.WelcomeChannel, 10)
	message := strings.ReplaceAll(cfg.LeaveMessage, "{user}", event.User.Username)
	if _, err := session.ChannelMessageSendEmbed(channelID, b.dangerEmbed("Farewell!", message)); err != nil {
		b.logger.Warn("leave message failed", zap.String("guild_id", event.GuildID), zap.Error(err))
	}
}

func (b *Bot) onMessageDelete(session *discordgo.Session, event *discordgo.MessageDelete) {
	if event.GuildID == "" {
		return
	}
	cfg := b.store.Guild(event.GuildID)
	if cfg.LogChannel == 0 {
		return
	}

	content := "(content unavailable)"
	embed := b.embed("🗑️ Message Deleted", "", b.cfg.EmbedColors.Warning)
	if cached := event.BeforeDelete; cached != nil {
		if cached.Content != "" {
			content = cached.Content
		}
		if cached.Author != nil {
			embed.Author = &discordgo.MessageEmbedAuthor{
				Name:    cached.Author.Username,
				IconURL: cached.Author.AvatarURL("64"),
			}
		}
	}
	embed.Description = fmt.Sprintf("**Content:** %s", content)
	embed.Footer.Text = fmt.Sprintf("%s | Channel: <#%s>", b.cfg.EmbedFooter, event.ChannelID)

	channelID := strconv.FormatInt(cfg.LogChannel, 10)
	if _, err := session.ChannelMessageSendEmbed(channelID, embed); err != nil {
		b.logger.Warn("delete log failed", zap.String("guild_id", event.GuildID), zap.Error(err))
	}
}

// inboundMessage is the slice of a message-create event the pipeline
// decides on.
type inboundMessage struct {
	channelID string
	messageID string
	authorID  string
	content   string
}

// processMessage applies the gate and ordering rules: link filter first, then
// prefix commands, then open trivia rounds. The caller resolves the guild
// config and the author's admin standing and supplies the reply and dispatch
// capabilities.
func (b *Bot) processMessage(cfg storage.GuildConfig, admin bool, msg inboundMessage, send func(content string), dispatch func(name string, args []string)) {
	if cfg.AntiLink && !admin && b.filter.Handle(msg.channelID, msg.messageID, msg.authorID, msg.content) {
		return
	}

	if name, args, ok := splitPrefixCommand(msg.content, b.prefixFrom(cfg)); ok {
		dispatch(name, args)
		return
	}

	outcome, question := b.trivia.Answer(msg.channelID, msg.content)
	switch outcome {
	case trivia.OutcomeCorrect:
		send(fmt.Sprintf("🎉 Correct! The answer is **%s**.", question.Answer))
	case trivia.OutcomeRevealed:
		send(fmt.Sprintf("❌ Incorrect. The correct answer was: %s.", question.Answer))
	}
}

func (b *Bot) onMessageCreate(session *discordgo.Session, msg *discordgo.MessageCreate) {
	if msg.Author == nil || msg.Author.Bot || msg.GuildID == "" {
		return
	}

	cfg := b.store.Guild(msg.GuildID)
	admin := b.messageAuthorIsAdmin(msg)

	inbound := inboundMessage{
		channelID: msg.ChannelID,
		messageID: msg.ID,
		authorID:  msg.Author.ID,
		content:   msg.Content,
	}
	b.processMessage(cfg, admin, inbound,
		func(content string) {
			if _, err := session.ChannelMessageSend(msg.ChannelID, content); err != nil {
				b.logger.Warn("trivia reply failed", zap.String("channel_id", msg.ChannelID), zap.Error(err))
			}
		},
		func(name string, args []string) {
			b.dispatchPrefix(session, msg, name, args, admin)
		})
}

// dispatchPrefix maps positional tokens onto the shared command contract.
func (b *Bot) dispatchPrefix(session *discordgo.Session, msg *discordgo.MessageCreate, name string, args []string, admin bool) {
	req := request{
		guildID:   msg.GuildID,
		channelID: msg.ChannelID,
		author:    msg.Author,
		admin:     admin,
		options:   make(map[string]string),
	}

	takeTarget := func() {
		if len(args) == 0 {
			return
		}
		if id, ok := parseUserToken(args[0]); ok {
			req.target = &discordgo.User{ID: id}
			args = args[1:]
		}
	}

	switch name {
	case "8ball":
		req.options["question"] = strings.Join(args, " ")
	case "ban", "kick", "mute":
		takeTarget()
		req.options["reason"] = strings.Join(args, " ")
	case "unmute", "untimeout":
		takeTarget()
	case "unban":
		if len(args) > 0 {
			req.options["user_id"] = args[0]
			req.options["reason"] = strings.Join(args[1:], " ")
		}
	case "timeout":
		takeTarget()
		if len(args) > 0 {
			req.options["duration"] = args[0]
			req.options["reason"] = strings.Join(args[1:], " ")
		}
	case "rps":
		if len(args) > 0 {
			req.options["choice"] = args[0]
		}
	case "config":
		if len(args) > 0 {
			req.options["key"] = args[0]
			req.options["value"] = strings.Join(args[1:], " ")
		}
	case "pfp_steal":
		if len(args) > 0 {
			if id, ok := parseUserToken(args[0]); ok {
				user, err := session.User(id)
				if err != nil {
					b.replyError(&channelResponder{session: session, channelID: msg.ChannelID, logger: b.logger}, err)
					return
				}
				req.target = user
			}
		}
	}

	b.runCommand(name, req, &channelResponder{session: session, channelID: msg.ChannelID, logger: b.logger})
}

func (b *Bot) onInteractionCreate(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	if interaction.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := interaction.ApplicationCommandData()

	req := request{
		guildID:   interaction.GuildID,
		channelID: interaction.ChannelID,
		options:   make(map[string]string),
	}
	if interaction.Member != nil && interaction.Member.User != nil {
		req.author = interaction.Member.User
		req.admin = b.isAdmin(interaction.GuildID, interaction.Member.User.ID, interaction.Member, interaction.Member.Permissions)
	} else if interaction.User != nil {
		req.author = interaction.User
	}

	for _, opt := range data.Options {
		if opt == nil {
			continue
		}
		switch opt.Type {
		case discordgo.ApplicationCommandOptionUser:
			req.target = opt.UserValue(session)
		case discordgo.ApplicationCommandOptionString:
			req.options[opt.Name] = opt.StringValue()
		}
	}

	b.runCommand(data.Name, req, &interactionResponder{session: session, interaction: interaction, logger: b.logger})
}

// isAdmin treats the administrator permission, guild ownership and the
// configured admin role as equivalent.
func (b *Bot) isAdmin(guildID, userID string, member *discordgo.Member, perms int64) bool {
	if perms&discordgo.PermissionAdministrator != 0 {
		return true
	}
	if guild, err := b.session.State.Guild(guildID); err == nil && guild.OwnerID == userID {
		return true
	}
	adminRole := b.store.Guild(guildID).AdminRole
	if adminRole != 0 && member != nil {
		roleID := strconv.FormatInt(adminRole, 10)
		for _, role := range member.Roles {
			if role == roleID {
				return true
			}
		}
	}
	return false
}

func (b *Bot) messageAuthorIsAdmin(msg *discordgo.MessageCreate) bool {
	perms, err := b.session.UserChannelPermissions(msg.Author.ID, msg.ChannelID)
	if err != nil {
		perms = 0
	}
	return b.isAdmin(msg.GuildID, msg.Author.ID, msg.Member, perms)
}
