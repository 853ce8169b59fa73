package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"smartCampusReco/domain"
)

type Recommender interface {
	Recommend(ctx context.Context, userID domain.ID) (domain.RecommendationResponse, error)
}

// RecommendCommand posts a user's food and parking recommendations as an embed.
type RecommendCommand struct {
	log     *zap.Logger
	service Recommender
	prefix  string
	timeout time.Duration
}

func NewRecommendCommand(log *zap.Logger, service Recommender, prefix string) *RecommendCommand {
	return &RecommendCommand{
		log:     log.Named("recommend-command"),
		service: service,
		prefix:  prefix,
		timeout: 15 * time.Second,
	}
}

func (c *RecommendCommand) Help() string {
	return "recommend <user_id> - top foods and parking slots for a campus user"
}

func (c *RecommendCommand) Execute(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) != 1 {
		_, _ = s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Usage: %s%s", c.prefix, c.Help()))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	userID := domain.NewID(args[0])
	resp, err := c.service.Recommend(ctx, userID)
	if err != nil {
		c.log.Error("Failed to get recommendations", zap.String("user_id", userID.String()), zap.Error(err))
		_, _ = s.ChannelMessageSend(m.ChannelID, "Could not compute recommendations right now.")
		return
	}

	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, RecommendationEmbed(userID, resp, m.Author.Username)); err != nil {
		c.log.Error("Failed to send embed", zap.Error(err))
	}
}

// RecommendationEmbed renders a response as a Discord embed.
func RecommendationEmbed(userID domain.ID, resp domain.RecommendationResponse, requester string) *discordgo.MessageEmbed {
	foods := make([]string, 0, len(resp.Foods))
	for i, f := range resp.Foods {
		foods = append(foods, fmt.Sprintf("%d. **%s** (%.2f) - %s", i+1, f.Name, f.Price, f.Reason))
	}
	if len(foods) == 0 {
		foods = append(foods, "No food suggestions yet")
	}

	parking := make([]string, 0, len(resp.Parking))
	for i, p := range resp.Parking {
		parking = append(parking, fmt.Sprintf("%d. Slot **%s** - %s", i+1, p.Slot, p.Reason))
	}

	footer := fmt.Sprintf("Algorithm: %s", resp.Algorithm)
	if resp.Cached {
		footer += " (cached)"
	}
	if requester != "" {
		footer += fmt.Sprintf(" | Requested by %s", requester)
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Recommendations for %s", userID),
		Color: 0x2E8B57,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Food", Value: strings.Join(foods, "\n")},
			{Name: "Parking", Value: strings.Join(parking, "\n")},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: footer},
		Timestamp: resp.LastUpdated.Format(time.RFC3339),
	}
}
