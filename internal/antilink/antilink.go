package antilink

import (
	"fmt"
	"strings"
	"sync"

	"gary-bot/internal/utils"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Channel is the slice of the chat platform the filter needs.
// *discordgo.Session satisfies it.
type Channel interface {
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Filter deletes link-bearing messages from non-admins in guilds that have the
// protection enabled. Warning embeds are rate limited per channel so a paste
// flood does not turn into a warning flood.
type Filter struct {
	channel Channel
	logger  *zap.Logger
	embed   func(title, description string) *discordgo.MessageEmbed

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func New(channel Channel, logger *zap.Logger, embed func(title, description string) *discordgo.MessageEmbed) *Filter {
	return &Filter{
		channel:  channel,
		logger:   logger,
		embed:    embed,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Matches reports whether the message content carries a link.
func Matches(content string) bool {
	return strings.Contains(strings.ToLower(content), "http")
}

// Handle deletes the offending message and warns the channel. It returns true
// when the message was consumed, which stops all further processing of it.
func (f *Filter) Handle(channelID, messageID, authorID, content string) bool {
	if !Matches(content) {
		return false
	}

	if err := f.channel.ChannelMessageDelete(channelID, messageID); err != nil {
		f.logger.Warn("link message delete failed", zap.String("channel_id", channelID), zap.String("message_id", messageID), zap.Error(err))
		return true
	}
	f.logger.Info("link message deleted", zap.String("channel_id", channelID), zap.String("author_id", authorID))

	if !f.limiter(channelID).Allow() {
		return true
	}

	description := fmt.Sprintf("<@%s>, links are not allowed!", authorID)
	if urls := utils.ExtractURLs(content); len(urls) > 0 {
		if host := utils.NormalizeHost(urls[0]); host != "" {
			description = fmt.Sprintf("<@%s>, links are not allowed! (%s)", authorID, host)
		}
	}
	warning := f.embed("🚫 Anti-Link Protection", description)
	if _, err := f.channel.ChannelMessageSendEmbed(channelID, warning); err != nil {
		f.logger.Warn("link warning send failed", zap.String("channel_id", channelID), zap.Error(err))
	}
	return true
}

func (f *Filter) limiter(channelID string) *rate.Limiter {
	f.mu.Lock()
	defer f.mu.Unlock()

	limiter, ok := f.limiters[channelID]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(0.5), 3)
		f.limiters[channelID] = limiter
	}
	return limiter
}
