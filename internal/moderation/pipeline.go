package moderation

import (
	"fmt"
	"strconv"
	"time"

	"gary-bot/internal/utils"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	DefaultReason = "No reason provided"
	mutedRoleName = "Muted"
)

// Platform is the slice of the chat platform the pipeline acts through.
// *discordgo.Session satisfies it.
type Platform interface {
	GuildBanCreateWithReason(guildID, userID, reason string, days int, options ...discordgo.RequestOption) error
	GuildMemberDeleteWithReason(guildID, userID, reason string, options ...discordgo.RequestOption) error
	GuildBanDelete(guildID, userID string, options ...discordgo.RequestOption) error
	User(userID string, options ...discordgo.RequestOption) (*discordgo.User, error)
	GuildRoles(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Role, error)
	GuildRoleCreate(guildID string, data *discordgo.RoleParams, options ...discordgo.RequestOption) (*discordgo.Role, error)
	GuildMemberRoleAdd(guildID, userID, roleID string, options ...discordgo.RequestOption) error
	GuildMemberRoleRemove(guildID, userID, roleID string, options ...discordgo.RequestOption) error
	GuildMemberTimeout(guildID, userID string, until *time.Time, options ...discordgo.RequestOption) error
}

// Target identifies the member or user an action applies to.
type Target struct {
	ID   string
	Name string
}

func (t Target) Mention() string { return "<@" + t.ID + ">" }

// Result is the surface-independent confirmation for a completed action.
// The invoking surface renders it as an embed.
type Result struct {
	Title       string
	Description string
}

// Actions translates moderation intents into platform calls. It has no
// notion of which surface invoked it.
type Actions struct {
	platform Platform
	logger   *zap.Logger
}

func New(platform Platform, logger *zap.Logger) *Actions {
	return &Actions{platform: platform, logger: logger}
}

func (a *Actions) Ban(guildID string, target Target, reason string) (Result, error) {
	reason = orDefault(reason)
	if err := a.platform.GuildBanCreateWithReason(guildID, target.ID, reason, 0); err != nil {
		return Result{}, fmt.Errorf("ban failed: %w", err)
	}
	a.logger.Info("member banned", zap.String("guild_id", guildID), zap.String("user_id", target.ID), zap.String("reason", reason))
	return Result{
		Title:       "🔨 User Banned",
		Description: fmt.Sprintf("Banned %s for: %s", target.Mention(), reason),
	}, nil
}

func (a *Actions) Kick(guildID string, target Target, reason string) (Result, error) {
	reason = orDefault(reason)
	if err := a.platform.GuildMemberDeleteWithReason(guildID, target.ID, reason); err != nil {
		return Result{}, fmt.Errorf("kick failed: %w", err)
	}
	a.logger.Info("member kicked", zap.String("guild_id", guildID), zap.String("user_id", target.ID), zap.String("reason", reason))
	return Result{
		Title:       "👢 User Kicked",
		Description: fmt.Sprintf("Kicked %s for: %s", target.Mention(), reason),
	}, nil
}

// Unban resolves the user by raw id first so the confirmation can name them.
func (a *Actions) Unban(guildID, rawID, reason string) (Result, error) {
	reason = orDefault(reason)
	if _, err := strconv.ParseUint(rawID, 10, 64); err != nil {
		return Result{}, utils.Usagef("unban expects a numeric user id, got %q", rawID)
	}
	user, err := a.platform.User(rawID)
	if err != nil {
		return Result{}, fmt.Errorf("user lookup failed: %w", err)
	}
	if err := a.platform.GuildBanDelete(guildID, user.ID); err != nil {
		return Result{}, fmt.Errorf("unban failed: %w", err)
	}
	a.logger.Info("member unbanned", zap.String("guild_id", guildID), zap.String("user_id", user.ID))
	return Result{
		Title:       "🔓 User Unbanned",
		Description: fmt.Sprintf("Unbanned %s for: %s", user.Mention(), reason),
	}, nil
}

func (a *Actions) Mute(guildID string, target Target, reason string) (Result, error) {
	reason = orDefault(reason)
	roleID, err := a.findMutedRole(guildID)
	if err != nil {
		return Result{}, err
	}
	if roleID == "" {
		perms := int64(0)
		role, err := a.platform.GuildRoleCreate(guildID, &discordgo.RoleParams{
			Name:        mutedRoleName,
			Permissions: &perms,
		})
		if err != nil {
			return Result{}, fmt.Errorf("creating %s role failed: %w", mutedRoleName, err)
		}
		roleID = role.ID
	}
	if err := a.platform.GuildMemberRoleAdd(guildID, target.ID, roleID); err != nil {
		return Result{}, fmt.Errorf("mute failed: %w", err)
	}
	a.logger.Info("member muted", zap.String("guild_id", guildID), zap.String("user_id", target.ID), zap.String("reason", reason))
	return Result{
		Title:       "🔇 User Muted",
		Description: fmt.Sprintf("Muted %s for: %s", target.Mention(), reason),
	}, nil
}

// Unmute removes the muted role when present. A target without the role is a
// silent no-op and still gets a confirmation.
func (a *Actions) Unmute(guildID string, target Target) (Result, error) {
	roleID, err := a.findMutedRole(guildID)
	if err != nil {
		return Result{}, err
	}
	if roleID != "" {
		if err := a.platform.GuildMemberRoleRemove(guildID, target.ID, roleID); err != nil {
			return Result{}, fmt.Errorf("unmute failed: %w", err)
		}
	}
	a.logger.Info("member unmuted", zap.String("guild_id", guildID), zap.String("user_id", target.ID))
	return Result{
		Title:       "🔊 User Unmuted",
		Description: fmt.Sprintf("Unmuted %s", target.Mention()),
	}, nil
}

func (a *Actions) Timeout(guildID string, target Target, durationToken, reason string) (Result, error) {
	reason = orDefault(reason)
	duration, err := ParseDuration(durationToken)
	if err != nil {
		return Result{}, err
	}
	until := time.Now().Add(duration)
	if err := a.platform.GuildMemberTimeout(guildID, target.ID, &until); err != nil {
		return Result{}, fmt.Errorf("timeout failed: %w", err)
	}
	a.logger.Info("member timed out", zap.String("guild_id", guildID), zap.String("user_id", target.ID), zap.String("duration", durationToken))
	return Result{
		Title:       "⏲️ User Timed Out",
		Description: fmt.Sprintf("Timed out %s for %s. Reason: %s", target.Mention(), durationToken, reason),
	}, nil
}

func (a *Actions) Untimeout(guildID string, target Target) (Result, error) {
	if err := a.platform.GuildMemberTimeout(guildID, target.ID, nil); err != nil {
		return Result{}, fmt.Errorf("untimeout failed: %w", err)
	}
	a.logger.Info("member timeout cleared", zap.String("guild_id", guildID), zap.String("user_id", target.ID))
	return Result{
		Title:       "✅ User Untimed Out",
		Description: fmt.Sprintf("Removed timeout from %s.", target.Mention()),
	}, nil
}

func (a *Actions) findMutedRole(guildID string) (string, error) {
	roles, err := a.platform.GuildRoles(guildID)
	if err != nil {
		return "", fmt.Errorf("listing roles failed: %w", err)
	}
	for _, role := range roles {
		if role != nil && role.Name == mutedRoleName {
			return role.ID, nil
		}
	}
	return "", nil
}

func orDefault(reason string) string {
	if reason == "" {
		return DefaultReason
	}
	return reason
}
