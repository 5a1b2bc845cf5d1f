// Package console runs battles on a terminal. It implements both
// battle.Presenter and battle.InputProvider over plain reader/writer pairs.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/KirkDiggler/rpg-battle/internal/battle"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	dnderr "github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/progression"
)

// Console reads commands from In and writes battle text to Out
type Console struct {
	out     io.Writer
	in      io.Reader
	printer *message.Printer

	outMu sync.Mutex

	readOnce sync.Once
	lines    chan string
	readErr  error
}

// Config holds console options
type Config struct {
	In  io.Reader // Required
	Out io.Writer // Required
	// Language controls number formatting, English when unset
	Language language.Tag
}

// New creates a console presenter and input provider
func New(cfg *Config) *Console {
	if cfg == nil {
		panic("config is required")
	}
	if cfg.In == nil {
		panic("input reader is required")
	}
	if cfg.Out == nil {
		panic("output writer is required")
	}

	tag := cfg.Language
	if tag == language.Und {
		tag = language.English
	}

	return &Console{
		out:     cfg.Out,
		in:      cfg.In,
		printer: message.NewPrinter(tag),
		lines:   make(chan string),
	}
}

// ShowMessage implements battle.Presenter
func (c *Console) ShowMessage(text string) {
	c.println(text)
}

// Highlight implements battle.Presenter
func (c *Console) Highlight(entityID string, on bool) {
	if on {
		c.println("  > " + entityID)
	}
}

// RemoveEntity implements battle.Presenter
func (c *Console) RemoveEntity(entityID string) {
	c.println("  (" + entityID + " leaves the field)")
}

// RequestAction implements battle.InputProvider. Lines that cannot be
// parsed are asked again; commands that parse but break battle rules are
// left for the battle to reject.
func (c *Console) RequestAction(ctx context.Context, req *battle.ActionRequest) (*battle.Intent, error) {
	if req == nil || req.Actor == nil {
		return nil, dnderr.InvalidArgument("action request is required")
	}

	c.printRequest(req)
	for {
		line, err := c.prompt(ctx, "> ")
		if err != nil {
			return nil, err
		}

		intent, err := parseIntent(line, req)
		if err == nil {
			return intent, nil
		}
		c.println("  " + err.Error())
	}
}

// RequestMoveReplacement implements battle.InputProvider
func (c *Console) RequestMoveReplacement(ctx context.Context, current []string, newMove string) (battle.ReplaceChoice, error) {
	c.println(fmt.Sprintf("Learning %s needs a free slot. Forget which move?", newMove))
	return c.choose(ctx, current)
}

// RequestRosterReplacement implements battle.InputProvider
func (c *Console) RequestRosterReplacement(ctx context.Context, roster []string, recruit string) (battle.ReplaceChoice, error) {
	c.println(fmt.Sprintf("The party is full. Who makes room for %s?", recruit))
	return c.choose(ctx, roster)
}

// choose lists options from 1 and reads a pick; 0 declines
func (c *Console) choose(ctx context.Context, options []string) (battle.ReplaceChoice, error) {
	for i, opt := range options {
		c.println(fmt.Sprintf("  %d) %s", i+1, opt))
	}
	c.println("  0) keep everything")

	for {
		line, err := c.prompt(ctx, "> ")
		if err != nil {
			return battle.ReplaceChoice{}, err
		}

		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < 0 || n > len(options) {
			c.println(fmt.Sprintf("  pick a number from 0 to %d", len(options)))
			continue
		}
		if n == 0 {
			return progression.Decline(), nil
		}
		return battle.ReplaceChoice{Index: n - 1}, nil
	}
}

func (c *Console) printRequest(req *battle.ActionRequest) {
	actor := req.Actor
	var b strings.Builder
	b.WriteString(c.printer.Sprintf("Round %d: %s (Lv %d, HP %d/%d)\n",
		req.Round, actor.Name(), actor.Level, actor.CurrentHP, actor.MaxHP))
	if req.Problem != "" {
		b.WriteString("  rejected: " + req.Problem + "\n")
	}

	b.WriteString("  Moves:")
	for i, move := range req.Moves {
		b.WriteString(c.printer.Sprintf(" %d) %s", i+1, move.Name))
		if move.UsageCap > 0 {
			b.WriteString(c.printer.Sprintf(" [%d left]", move.UsageCap-actor.UsesOf(move.Name)))
		}
	}
	if req.CanPersuade {
		b.WriteString(" p) Persuade")
	}
	b.WriteString("\n")

	b.WriteString(c.describe("  Targets:", req.Targets))
	b.WriteString(c.describe("  Allies: ", req.Allies))
	b.WriteString("  Enter a move number and a target number, e.g. \"1 2\".")
	c.println(b.String())
}

func (c *Console) describe(label string, rs []*entities.Runtime) string {
	var b strings.Builder
	b.WriteString(label)
	for i, r := range rs {
		b.WriteString(c.printer.Sprintf(" %d) %s %d/%d", i+1, r.Name(), r.CurrentHP, r.MaxHP))
	}
	b.WriteString("\n")
	return b.String()
}

// parseIntent reads "<move> [target]" where both are 1-based numbers or
// names, or "p" to persuade. Heal moves pick their target from the allies.
func parseIntent(line string, req *battle.ActionRequest) (*battle.Intent, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, dnderr.InvalidCommand("enter a command")
	}

	if strings.EqualFold(fields[0], "p") || strings.EqualFold(fields[0], "persuade") {
		return battle.Persuade(), nil
	}

	move, err := pickMove(fields[0], req.Moves)
	if err != nil {
		return nil, err
	}

	pool := req.Targets
	if move.Heal {
		pool = req.Allies
	}
	if len(fields) < 2 {
		switch {
		case move.MultiTarget && !move.Heal:
			return battle.UseMove(move.Name, ""), nil
		case move.Heal:
			return battle.UseMove(move.Name, req.Actor.ID), nil
		case len(pool) == 1:
			return battle.UseMove(move.Name, pool[0].ID), nil
		}
		return nil, dnderr.InvalidCommandf("%s needs a target", move.Name)
	}

	target, err := pickTarget(fields[1], pool)
	if err != nil {
		return nil, err
	}
	return battle.UseMove(move.Name, target.ID), nil
}

func pickMove(token string, moves []*entities.MoveDefinition) (*entities.MoveDefinition, error) {
	if n, err := strconv.Atoi(token); err == nil {
		if n < 1 || n > len(moves) {
			return nil, dnderr.InvalidCommandf("no move %d", n)
		}
		return moves[n-1], nil
	}
	for _, m := range moves {
		if strings.EqualFold(m.Name, token) || strings.EqualFold(m.Key, token) {
			return m, nil
		}
	}
	return nil, dnderr.InvalidCommandf("unknown move %q", token)
}

func pickTarget(token string, pool []*entities.Runtime) (*entities.Runtime, error) {
	if n, err := strconv.Atoi(token); err == nil {
		if n < 1 || n > len(pool) {
			return nil, dnderr.InvalidCommandf("no target %d", n)
		}
		return pool[n-1], nil
	}
	for _, r := range pool {
		if strings.EqualFold(r.ID, token) || strings.EqualFold(r.Name(), token) {
			return r, nil
		}
	}
	return nil, dnderr.InvalidCommandf("unknown target %q", token)
}

// prompt writes label and waits for the next input line
func (c *Console) prompt(ctx context.Context, label string) (string, error) {
	c.readOnce.Do(func() { go c.readLines() })

	c.outMu.Lock()
	_, _ = io.WriteString(c.out, label)
	c.outMu.Unlock()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			if c.readErr != nil {
				return "", dnderr.Wrap(c.readErr, "failed to read input")
			}
			return "", dnderr.Wrap(io.EOF, "input closed")
		}
		return line, nil
	}
}

// readLines feeds input lines to prompts until the reader is exhausted.
// It outlives any single prompt so a cancelled prompt loses no input.
func (c *Console) readLines() {
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		c.lines <- scanner.Text()
	}
	c.readErr = scanner.Err()
	close(c.lines)
}

func (c *Console) println(text string) {
	c.outMu.Lock()
	defer c.outMu.Unlock()
	_, _ = fmt.Fprintln(c.out, text)
}
