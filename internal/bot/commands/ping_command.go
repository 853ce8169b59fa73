package commands

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// PingCommand answers with the round-trip latency to Discord.
type PingCommand struct{}

func NewPingCommand() *PingCommand {
	return &PingCommand{}
}

func (c *PingCommand) Help() string {
	return "ping - reports the bot's latency"
}

func (c *PingCommand) Execute(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	start := time.Now()
	msg, err := s.ChannelMessageSend(m.ChannelID, "Pinging...")
	if err != nil {
		return
	}

	text := "Pong! Latency: " + time.Since(start).Round(time.Millisecond).String()
	if _, err := s.ChannelMessageEdit(m.ChannelID, msg.ID, text); err != nil {
		_, _ = s.ChannelMessageSend(m.ChannelID, text)
	}
}
