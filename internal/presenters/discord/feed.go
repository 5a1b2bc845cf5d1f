// Package discord mirrors battle text into a Discord channel
package discord

//go:generate mockgen -destination=mock/mock_sender.go -package=mockdiscord -source=feed.go

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

const (
	// embed descriptions are capped at 4096 characters
	maxDescription = 4000
	defaultFlush   = 2 * time.Second
	queueSize      = 256
	feedColor      = 0x8B0000
)

// Sender is the part of *discordgo.Session the feed uses
type Sender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Feed implements battle.Presenter by batching lines into embeds. Lines
// are queued without blocking the battle; a full queue drops lines.
type Feed struct {
	sender        Sender
	channelID     string
	title         string
	flushInterval time.Duration

	queue chan string
	done  chan struct{}

	mu      sync.Mutex
	started bool
	stopped bool
}

// FeedConfig holds feed options
type FeedConfig struct {
	Sender    Sender // Required
	ChannelID string // Required
	// Title heads every embed
	Title         string
	FlushInterval time.Duration
}

// NewFeed creates a channel feed. Call Run to start sending.
func NewFeed(cfg *FeedConfig) *Feed {
	if cfg == nil {
		panic("config is required")
	}
	if cfg.Sender == nil {
		panic("sender is required")
	}
	if cfg.ChannelID == "" {
		panic("channel ID is required")
	}

	f := &Feed{
		sender:        cfg.Sender,
		channelID:     cfg.ChannelID,
		title:         cfg.Title,
		flushInterval: cfg.FlushInterval,
		queue:         make(chan string, queueSize),
		done:          make(chan struct{}),
	}
	if f.title == "" {
		f.title = "⚔️ Battle Log"
	}
	if f.flushInterval <= 0 {
		f.flushInterval = defaultFlush
	}
	return f
}

// ShowMessage implements battle.Presenter
func (f *Feed) ShowMessage(text string) {
	f.enqueue(text)
}

// Highlight implements battle.Presenter. Turn markers are not mirrored.
func (f *Feed) Highlight(string, bool) {}

// RemoveEntity implements battle.Presenter. Removals already arrive as
// messages.
func (f *Feed) RemoveEntity(string) {}

func (f *Feed) enqueue(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stopped {
		return
	}

	select {
	case f.queue <- text:
	default:
		log.Printf("Discord: feed queue full, dropping %q", text)
	}
}

// Run sends queued lines every flush interval until ctx is done, then
// sends whatever is left. It returns once the final batch is out.
func (f *Feed) Run(ctx context.Context) {
	f.mu.Lock()
	if f.started {
		f.mu.Unlock()
		return
	}
	f.started = true
	f.mu.Unlock()
	defer close(f.done)

	ticker := time.NewTicker(f.flushInterval)
	defer ticker.Stop()

	var pending []string
	for {
		select {
		case line := <-f.queue:
			pending = append(pending, line)
		case <-ticker.C:
			pending = f.flush(pending)
			if len(pending) > queueSize {
				log.Printf("Discord: dropping %d unsent lines", len(pending)-queueSize)
				pending = pending[len(pending)-queueSize:]
			}
		case <-ctx.Done():
			f.mu.Lock()
			f.stopped = true
			f.mu.Unlock()
			for {
				select {
				case line := <-f.queue:
					pending = append(pending, line)
				default:
					f.flush(pending)
					return
				}
			}
		}
	}
}

// Done is closed when Run has returned
func (f *Feed) Done() <-chan struct{} {
	return f.done
}

// flush sends lines as one or more embeds and returns the unsent tail,
// which is empty unless Discord refused a message
func (f *Feed) flush(lines []string) []string {
	for len(lines) > 0 {
		var b strings.Builder
		n := 0
		for n < len(lines) {
			line := lines[n]
			if len(line) > maxDescription {
				line = line[:maxDescription]
			}
			if b.Len()+len(line)+1 > maxDescription && n > 0 {
				break
			}
			b.WriteString(line)
			b.WriteString("\n")
			n++
		}

		_, err := f.sender.ChannelMessageSendComplex(f.channelID, &discordgo.MessageSend{
			Embed: &discordgo.MessageEmbed{
				Title:       f.title,
				Description: b.String(),
				Color:       feedColor,
			},
		})
		if err != nil {
			log.Printf("Discord: failed to send %d lines to %s: %v", n, f.channelID, err)
			return lines
		}
		lines = lines[n:]
	}
	return nil
}
