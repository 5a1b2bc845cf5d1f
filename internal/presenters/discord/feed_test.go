package discord_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-battle/internal/battle"
	"github.com/KirkDiggler/rpg-battle/internal/presenters/discord"
	mockdiscord "github.com/KirkDiggler/rpg-battle/internal/presenters/discord/mock"
)

var _ battle.Presenter = (*discord.Feed)(nil)

func runFeed(t *testing.T, feed *discord.Feed, lines ...string) {
	t.Helper()
	for _, line := range lines {
		feed.ShowMessage(line)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go feed.Run(ctx)
	cancel()

	select {
	case <-feed.Done():
	case <-time.After(time.Second):
		t.Fatal("feed did not stop")
	}
}

func TestFeed_FlushesOnStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mockdiscord.NewMockSender(ctrl)
	feed := discord.NewFeed(&discord.FeedConfig{Sender: sender, ChannelID: "chan-1", FlushInterval: time.Hour})

	sender.EXPECT().ChannelMessageSendComplex("chan-1", gomock.Any()).DoAndReturn(
		func(_ string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			require.NotNil(t, data.Embed)
			assert.Equal(t, "⚔️ Battle Log", data.Embed.Title)
			assert.Equal(t, "--- Round 1 ---\nknight used Slash on goblin for 12 damage.\n", data.Embed.Description)
			return &discordgo.Message{}, nil
		})

	feed.Highlight("knight", true)
	feed.RemoveEntity("goblin")
	runFeed(t, feed, "--- Round 1 ---", "knight used Slash on goblin for 12 damage.")

	feed.ShowMessage("after stop")
}

func TestFeed_SplitsLongBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mockdiscord.NewMockSender(ctrl)
	feed := discord.NewFeed(&discord.FeedConfig{Sender: sender, ChannelID: "chan-1", Title: "Wolf Den"})

	long := strings.Repeat("x", 1500)
	var sizes []int
	sender.EXPECT().ChannelMessageSendComplex("chan-1", gomock.Any()).DoAndReturn(
		func(_ string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			assert.Equal(t, "Wolf Den", data.Embed.Title)
			sizes = append(sizes, strings.Count(data.Embed.Description, "\n"))
			return &discordgo.Message{}, nil
		}).Times(2)

	runFeed(t, feed, long, long, long, long)
	assert.Equal(t, []int{2, 2}, sizes)
}

func TestFeed_SendFailureIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mockdiscord.NewMockSender(ctrl)
	feed := discord.NewFeed(&discord.FeedConfig{Sender: sender, ChannelID: "chan-1"})

	sender.EXPECT().ChannelMessageSendComplex("chan-1", gomock.Any()).Return(nil, errors.New("rate limited"))

	runFeed(t, feed, "The battle is over: victory after 3 rounds.")
}

func TestNewFeed_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mockdiscord.NewMockSender(ctrl)

	assert.Panics(t, func() { discord.NewFeed(nil) })
	assert.Panics(t, func() { discord.NewFeed(&discord.FeedConfig{ChannelID: "chan-1"}) })
	assert.Panics(t, func() { discord.NewFeed(&discord.FeedConfig{Sender: sender}) })
}
