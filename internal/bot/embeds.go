package bot

import "github.com/bwmarrin/discordgo"

func (b *Bot) embed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer:      &discordgo.MessageEmbedFooter{Text: b.cfg.EmbedFooter},
	}
}

func (b *Bot) successEmbed(title, description string) *discordgo.MessageEmbed {
	return b.embed(title, description, b.cfg.EmbedColors.Success)
}

func (b *Bot) dangerEmbed(title, description string) *discordgo.MessageEmbed {
	return b.embed(title, description, b.cfg.EmbedColors.Danger)
}

func (b *Bot) infoEmbed(title, description string) *discordgo.MessageEmbed {
	return b.embed(title, description, b.cfg.EmbedColors.Info)
}
