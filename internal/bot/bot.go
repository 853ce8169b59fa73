package bot

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"smartCampusReco/internal/bot/commands"
)

// Bot answers recommendation commands in Discord channels.
type Bot struct {
	session  *discordgo.Session
	log      *zap.Logger
	commands *commands.Registry
}

func New(token, prefix string, service commands.Recommender, log *zap.Logger) (*Bot, error) {
	if token == "" {
		return nil, errors.New("discord token is required")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	b := &Bot{
		session:  session,
		log:      log.Named("bot"),
		commands: commands.NewRegistry(prefix, log),
	}

	b.commands.Register("ping", commands.NewPingCommand())
	b.commands.Register("recommend", commands.NewRecommendCommand(log, service, prefix))

	session.AddHandler(b.onReady)
	session.AddHandler(b.onMessageCreate)
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	return b, nil
}

// Start connects and blocks until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}

	b.log.Info("Bot is running")
	<-ctx.Done()

	return b.Close()
}

func (b *Bot) Close() error {
	if err := b.session.Close(); err != nil {
		return fmt.Errorf("failed to close discord session: %w", err)
	}
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.log.Info("Bot logged in", zap.String("username", r.User.Username))

	if err := s.UpdateGameStatus(0, "!recommend <user_id>"); err != nil {
		b.log.Error("Failed to set status", zap.Error(err))
	}
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	b.commands.Handle(s, m)
}
