package bot

import (
	"fmt"
	"regexp"
	"strings"

	"gary-bot/internal/games"
	"gary-bot/internal/moderation"
	"gary-bot/internal/storage"
	"gary-bot/internal/utils"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Responder hides which surface a command arrived on. The slash adapter
// answers the interaction, the prefix adapter posts to the channel.
type Responder interface {
	Reply(content string)
	ReplyEmbed(embed *discordgo.MessageEmbed)
}

type interactionResponder struct {
	session     *discordgo.Session
	interaction *discordgo.InteractionCreate
	logger      *zap.Logger
}

func (r *interactionResponder) Reply(content string) {
	err := r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		r.logger.Warn("interaction reply failed", zap.Error(err))
	}
}

func (r *interactionResponder) ReplyEmbed(embed *discordgo.MessageEmbed) {
	err := r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}},
	})
	if err != nil {
		r.logger.Warn("interaction reply failed", zap.Error(err))
	}
}

type channelResponder struct {
	session   *discordgo.Session
	channelID string
	logger    *zap.Logger
}

func (r *channelResponder) Reply(content string) {
	if _, err := r.session.ChannelMessageSend(r.channelID, content); err != nil {
		r.logger.Warn("channel reply failed", zap.String("channel_id", r.channelID), zap.Error(err))
	}
}

func (r *channelResponder) ReplyEmbed(embed *discordgo.MessageEmbed) {
	if _, err := r.session.ChannelMessageSendEmbed(r.channelID, embed); err != nil {
		r.logger.Warn("channel reply failed", zap.String("channel_id", r.channelID), zap.Error(err))
	}
}

// request carries everything a command handler needs, already normalized
// away from its surface of origin.
type request struct {
	guildID   string
	channelID string
	author    *discordgo.User
	admin     bool
	target    *discordgo.User
	options   map[string]string
}

func (req request) opt(name string) string { return req.options[name] }

var adminOnly = map[string]bool{
	"ban": true, "kick": true, "unban": true,
	"mute": true, "unmute": true,
	"timeout": true, "untimeout": true,
	"config": true,
}

// runCommand is the single entry point for both surfaces.
func (b *Bot) runCommand(name string, req request, r Responder) {
	if adminOnly[name] && !req.admin {
		r.Reply("🚫 You need administrator permissions to use this command.")
		return
	}

	switch name {
	case "ping":
		r.Reply(fmt.Sprintf("🏓 Pong! Latency: **%dms**", b.latency().Milliseconds()))
	case "8ball":
		question := req.opt("question")
		if question == "" {
			r.Reply("Usage: 8ball <question>")
			return
		}
		description := fmt.Sprintf("Question: %s\nAnswer: %s", question, games.EightBall())
		r.ReplyEmbed(b.successEmbed("🎱 Magic 8-Ball", description))
	case "ban":
		target, ok := requireTarget(req, r, "ban <user> [reason]")
		if !ok {
			return
		}
		b.replyModeration(r)(b.actions.Ban(req.guildID, target, req.opt("reason")))
	case "kick":
		target, ok := requireTarget(req, r, "kick <user> [reason]")
		if !ok {
			return
		}
		b.replyModeration(r)(b.actions.Kick(req.guildID, target, req.opt("reason")))
	case "unban":
		userID := req.opt("user_id")
		if userID == "" {
			r.Reply("Usage: unban <user_id> [reason]")
			return
		}
		b.replyModeration(r)(b.actions.Unban(req.guildID, userID, req.opt("reason")))
	case "mute":
		target, ok := requireTarget(req, r, "mute <user> [reason]")
		if !ok {
			return
		}
		b.replyModeration(r)(b.actions.Mute(req.guildID, target, req.opt("reason")))
	case "unmute":
		target, ok := requireTarget(req, r, "unmute <user>")
		if !ok {
			return
		}
		b.replyModeration(r)(b.actions.Unmute(req.guildID, target))
	case "timeout":
		target, ok := requireTarget(req, r, "timeout <user> <duration> [reason]")
		if !ok {
			return
		}
		b.replyModeration(r)(b.actions.Timeout(req.guildID, target, req.opt("duration"), req.opt("reason")))
	case "untimeout":
		target, ok := requireTarget(req, r, "untimeout <user>")
		if !ok {
			return
		}
		b.replyModeration(r)(b.actions.Untimeout(req.guildID, target))
	case "rps":
		result, err := games.RPS(req.opt("choice"))
		if err != nil {
			b.replyError(r, err)
			return
		}
		r.Reply(result)
	case "coinflip":
		r.Reply(fmt.Sprintf("🪙 Coin flip: **%s**", games.Coinflip()))
	case "roll":
		r.Reply(fmt.Sprintf("🎲 You rolled a **%d**!", games.Roll()))
	case "trivia":
		question := b.trivia.Begin(req.channelID)
		r.Reply(fmt.Sprintf("❓ %s\n*(Type your answer below)*", question.Prompt))
	case "config":
		key, value := req.opt("key"), req.opt("value")
		if key == "" || value == "" {
			r.Reply("Usage: config <key> <value>")
			return
		}
		if err := b.store.Set(req.guildID, key, value); err != nil {
			b.replyError(r, err)
			return
		}
		r.Reply(fmt.Sprintf("✅ Configuration updated: %s = %s", key, value))
	case "pfp_steal":
		if req.target == nil {
			r.Reply("Usage: pfp_steal <user>")
			return
		}
		embed := b.embed(
			fmt.Sprintf("🖼️ %s's Profile Picture", req.target.Username),
			fmt.Sprintf("Here's %s's profile picture:", req.target.Username),
			0xFF69B4,
		)
		embed.Image = &discordgo.MessageEmbedImage{URL: req.target.AvatarURL("1024")}
		r.ReplyEmbed(embed)
	case "help":
		r.ReplyEmbed(b.helpEmbed(req.guildID))
	default:
		b.logger.Debug("unknown command", zap.String("name", name))
	}
}

func requireTarget(req request, r Responder, usage string) (moderation.Target, bool) {
	if req.target == nil {
		r.Reply("Usage: " + usage)
		return moderation.Target{}, false
	}
	return moderation.Target{ID: req.target.ID, Name: req.target.Username}, true
}

func (b *Bot) replyModeration(r Responder) func(moderation.Result, error) {
	return func(result moderation.Result, err error) {
		if err != nil {
			b.replyError(r, err)
			return
		}
		r.ReplyEmbed(b.dangerEmbed(result.Title, result.Description))
	}
}

func (b *Bot) replyError(r Responder, err error) {
	if utils.IsUsage(err) {
		r.Reply(err.Error())
		return
	}
	r.Reply("Error: " + err.Error())
}

// prefixFrom falls back to the process default when a guild's stored prefix
// is blank (hand-edited store files).
func (b *Bot) prefixFrom(cfg storage.GuildConfig) string {
	if cfg.Prefix != "" {
		return cfg.Prefix
	}
	return b.cfg.DefaultPrefix
}

func (b *Bot) guildPrefix(guildID string) string {
	return b.prefixFrom(b.store.Guild(guildID))
}

func (b *Bot) helpEmbed(guildID string) *discordgo.MessageEmbed {
	prefix := b.guildPrefix(guildID)

	prefixList := fmt.Sprintf(
		"`%[1]sping` - Check the bot's latency.\n"+
			"`%[1]s8ball [question]` - Ask the magic 8-ball a question.\n"+
			"`%[1]sban [user] [reason]` - Ban a user.\n"+
			"`%[1]skick [user] [reason]` - Kick a user.\n"+
			"`%[1]smute [user] [reason]` - Mute a user.\n"+
			"`%[1]sunmute [user]` - Unmute a user.\n"+
			"`%[1]sunban [user_id] [reason]` - Unban a user.\n"+
			"`%[1]stimeout [user] [duration] [reason]` - Timeout a user.\n"+
			"`%[1]suntimeout [user]` - Remove timeout from a user.\n"+
			"`%[1]srps [choice]` - Play Rock, Paper, Scissors.\n"+
			"`%[1]scoinflip` - Flip a coin.\n"+
			"`%[1]sroll` - Roll a 6-sided dice.\n"+
			"`%[1]strivia` - Answer a random trivia question.\n"+
			"`%[1]sconfig [key] [value]` - Update bot configuration.\n"+
			"`%[1]spfp_steal [user]` - Steal someone's profile picture.",
		prefix,
	)
	slashList := strings.ReplaceAll(prefixList, "`"+prefix, "`/")

	embed := b.infoEmbed("Help", "Every command works with the prefix and as a slash command.")
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: fmt.Sprintf("Prefix Commands (%s)", prefix), Value: prefixList},
		{Name: "Slash Commands (/)", Value: slashList},
	}
	return embed
}

var mentionPattern = regexp.MustCompile(`^<@!?(\d+)>$`)

// parseUserToken accepts a raw mention like <@123> or a bare numeric id.
func parseUserToken(token string) (string, bool) {
	if m := mentionPattern.FindStringSubmatch(token); m != nil {
		return m[1], true
	}
	if token == "" {
		return "", false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return token, true
}

// splitPrefixCommand tokenizes "<prefix><name> args...". The prefix match is
// case-insensitive.
func splitPrefixCommand(content, prefix string) (string, []string, bool) {
	if prefix == "" || len(content) <= len(prefix) {
		return "", nil, false
	}
	if !strings.EqualFold(content[:len(prefix)], prefix) {
		return "", nil, false
	}
	fields := strings.Fields(content[len(prefix):])
	if len(fields) == 0 {
		return "", nil, false
	}
	return strings.ToLower(fields[0]), fields[1:], true
}
