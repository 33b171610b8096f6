package bot

import "github.com/bwmarrin/discordgo"

func commandDefinitions() []*discordgo.ApplicationCommand {
	userOption := func(description string) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: description,
			Required:    true,
		}
	}
	reasonOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "reason",
		Description: "Reason for the action",
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "ping",
			Description: "Check the bot's latency.",
		},
		{
			Name:        "8ball",
			Description: "Ask the magic 8-ball a question.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "question",
					Description: "Your question",
					Required:    true,
				},
			},
		},
		{
			Name:        "ban",
			Description: "Ban a user from the server.",
			Options:     []*discordgo.ApplicationCommandOption{userOption("User to ban"), reasonOption},
		},
		{
			Name:        "kick",
			Description: "Kick a user from the server.",
			Options:     []*discordgo.ApplicationCommandOption{userOption("User to kick"), reasonOption},
		},
		{
			Name:        "unban",
			Description: "Unban a user by their id.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "user_id",
					Description: "Numeric id of the banned user",
					Required:    true,
				},
				reasonOption,
			},
		},
		{
			Name:        "mute",
			Description: "Mute a user.",
			Options:     []*discordgo.ApplicationCommandOption{userOption("User to mute"), reasonOption},
		},
		{
			Name:        "unmute",
			Description: "Unmute a user.",
			Options:     []*discordgo.ApplicationCommandOption{userOption("User to unmute")},
		},
		{
			Name:        "timeout",
			Description: "Timeout a user for a specific duration.",
			Options: []*discordgo.ApplicationCommandOption{
				userOption("User to time out"),
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "duration",
					Description: "Duration like 10s, 5m or 2h",
					Required:    true,
				},
				reasonOption,
			},
		},
		{
			Name:        "untimeout",
			Description: "Remove a timeout from a user.",
			Options:     []*discordgo.ApplicationCommandOption{userOption("User to release")},
		},
		{
			Name:        "rps",
			Description: "Play Rock, Paper, Scissors.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "choice",
					Description: "Your pick",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "rock", Value: "rock"},
						{Name: "paper", Value: "paper"},
						{Name: "scissors", Value: "scissors"},
					},
				},
			},
		},
		{
			Name:        "coinflip",
			Description: "Flip a coin.",
		},
		{
			Name:        "roll",
			Description: "Roll a 6-sided dice.",
		},
		{
			Name:        "trivia",
			Description: "Answer a random trivia question.",
		},
		{
			Name:        "config",
			Description: "Update bot settings for this server.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "key",
					Description: "Setting to change",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "prefix", Value: "prefix"},
						{Name: "welcome_channel", Value: "welcome_channel"},
						{Name: "log_channel", Value: "log_channel"},
						{Name: "ticket_category", Value: "ticket_category"},
						{Name: "admin_role", Value: "admin_role"},
						{Name: "anti_link", Value: "anti_link"},
						{Name: "welcome_message", Value: "welcome_message"},
						{Name: "leave_message", Value: "leave_message"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "value",
					Description: "New value",
					Required:    true,
				},
			},
		},
		{
			Name:        "pfp_steal",
			Description: "Steal someone's profile picture.",
			Options:     []*discordgo.ApplicationCommandOption{userOption("Whose picture to grab")},
		},
		{
			Name:        "help",
			Description: "Show help for commands.",
		},
	}
}

// registerCommands reconciles the global slash registry with the desired set:
// edit what exists, create what is missing, delete what is stale.
func (b *Bot) registerCommands() error {
	commands := commandDefinitions()

	appID := b.session.State.User.ID
	existing, err := b.session.ApplicationCommands(appID, "")
	if err != nil {
		for _, cmd := range commands {
			if _, err := b.session.ApplicationCommandCreate(appID, "", cmd); err != nil {
				return err
			}
		}
		return nil
	}

	existingByName := make(map[string]*discordgo.ApplicationCommand)
	for _, cmd := range existing {
		existingByName[cmd.Name] = cmd
	}

	desired := make(map[string]struct{})
	for _, cmd := range commands {
		desired[cmd.Name] = struct{}{}
		if current, ok := existingByName[cmd.Name]; ok {
			if _, err := b.session.ApplicationCommandEdit(appID, "", current.ID, cmd); err != nil {
				return err
			}
			continue
		}
		if _, err := b.session.ApplicationCommandCreate(appID, "", cmd); err != nil {
			return err
		}
	}

	for _, cmd := range existing {
		if _, ok := desired[cmd.Name]; ok {
			continue
		}
		_ = b.session.ApplicationCommandDelete(appID, "", cmd.ID)
	}

	return nil
}
