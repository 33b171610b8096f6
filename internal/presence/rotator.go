package presence

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Updater is the slice of the gateway session the rotator pushes presence
// through. *discordgo.Session satisfies it.
type Updater interface {
	UpdateStatusComplex(data discordgo.UpdateStatusData) error
}

// GuildCounter reports how many guilds the bot currently serves.
type GuildCounter func() int

// Rotator cycles the bot's custom status through a fixed list, substituting
// the live guild count into each line.
type Rotator struct {
	updater  Updater
	counter  GuildCounter
	logger   *zap.Logger
	statuses []string
	interval time.Duration
}

func New(updater Updater, counter GuildCounter, statuses []string, interval time.Duration, logger *zap.Logger) *Rotator {
	return &Rotator{
		updater:  updater,
		counter:  counter,
		logger:   logger,
		statuses: statuses,
		interval: interval,
	}
}

// Render fills the guild count into a status line.
func (r *Rotator) Render(status string) string {
	return strings.ReplaceAll(status, "{guild_count}", strconv.Itoa(r.counter()))
}

// Apply pushes one status line to the gateway.
func (r *Rotator) Apply(status string) error {
	text := r.Render(status)
	return r.updater.UpdateStatusComplex(discordgo.UpdateStatusData{
		Status: string(discordgo.StatusDoNotDisturb),
		Activities: []*discordgo.Activity{{
			Name:  text,
			Type:  discordgo.ActivityTypeCustom,
			State: text,
		}},
	})
}

// Run rotates through the status list until the context is cancelled. The
// first status goes out immediately.
func (r *Rotator) Run(ctx context.Context) {
	if len(r.statuses) == 0 {
		return
	}

	idx := 0
	if err := r.Apply(r.statuses[idx]); err != nil {
		r.logger.Warn("presence update failed", zap.Error(err))
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			idx = (idx + 1) % len(r.statuses)
			if err := r.Apply(r.statuses[idx]); err != nil {
				r.logger.Warn("presence update failed", zap.Error(err))
			}
		}
	}
}
