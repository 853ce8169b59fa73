package commands

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Command represents a bot command
type Command interface {
	Execute(s *discordgo.Session, m *discordgo.MessageCreate, args []string)
	Help() string
}

// Registry manages all bot commands
type Registry struct {
	prefix   string
	commands map[string]Command
	log      *zap.Logger
}

func NewRegistry(prefix string, log *zap.Logger) *Registry {
	return &Registry{
		prefix:   prefix,
		commands: make(map[string]Command),
		log:      log.Named("commands"),
	}
}

func (r *Registry) Register(name string, cmd Command) {
	r.commands[strings.ToLower(name)] = cmd
	r.log.Info("Registered command", zap.String("name", name))
}

// Handle runs the command named in the message, if any.
func (r *Registry) Handle(s *discordgo.Session, m *discordgo.MessageCreate) {
	cmd, name, args, ok := r.Lookup(m.Content)
	if !ok {
		return
	}

	r.log.Info("Executing command", zap.String("name", name), zap.String("user_id", m.Author.ID))
	cmd.Execute(s, m, args)
}

// Lookup parses "<prefix><name> args..." and finds the command.
func (r *Registry) Lookup(content string) (Command, string, []string, bool) {
	if !strings.HasPrefix(content, r.prefix) {
		return nil, "", nil, false
	}

	parts := strings.Fields(strings.TrimPrefix(content, r.prefix))
	if len(parts) == 0 {
		return nil, "", nil, false
	}

	name := strings.ToLower(parts[0])
	cmd, ok := r.commands[name]
	if !ok {
		return nil, "", nil, false
	}

	return cmd, name, parts[1:], true
}

func (r *Registry) GetCommands() map[string]Command {
	return r.commands
}
