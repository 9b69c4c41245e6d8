// Package main provides the interactive terminal client: it loads a level or
// campaign and advances the simulation one key press at a time.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/delve/internal/config"
	"github.com/cory-johannsen/delve/internal/game/campaign"
	"github.com/cory-johannsen/delve/internal/game/level"
	"github.com/cory-johannsen/delve/internal/game/session"
	"github.com/cory-johannsen/delve/internal/game/turn"
	"github.com/cory-johannsen/delve/internal/observability"
	"github.com/cory-johannsen/delve/internal/render"
	"github.com/cory-johannsen/delve/internal/terminal"
)

const keyQuit = 'q'

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	levelPath := flag.String("level", "", "level file to play (overrides config)")
	campaignPath := flag.String("campaign", "", "campaign manifest to play (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *levelPath != "" {
		cfg.Game.LevelFile = *levelPath
		cfg.Game.CampaignFile = ""
	}
	if *campaignPath != "" {
		cfg.Game.CampaignFile = *campaignPath
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	keys, raw := openKeys(logger)
	defer keys.Close()

	g := &game{
		cfg:      cfg,
		logger:   logger,
		keys:     keys,
		renderer: render.New(cfg.Display.Color),
		raw:      raw,
	}
	if err := g.run(); err != nil {
		keys.Close()
		logger.Fatal("game ended abnormally", zap.Error(err))
	}
}

// openKeys tries raw-mode stdin first, falling back to buffered reads when
// stdin is not a terminal (pipes, tests).
func openKeys(logger *zap.Logger) (*terminal.KeyReader, bool) {
	keys, err := terminal.Open()
	if err != nil {
		logger.Warn("raw mode unavailable, using buffered input", zap.Error(err))
		return terminal.NewKeyReader(os.Stdin), false
	}
	return keys, true
}

type game struct {
	cfg      config.Config
	logger   *zap.Logger
	keys     *terminal.KeyReader
	renderer *render.Renderer
	raw      bool
}

// run plays the configured campaign, or the single configured level.
func (g *game) run() error {
	if g.cfg.Game.CampaignFile == "" {
		_, err := g.playLevel(g.cfg.Game.LevelFile, "")
		return err
	}

	c, err := campaign.LoadFromFile(g.cfg.Game.CampaignFile)
	if err != nil {
		return err
	}
	base := filepath.Dir(g.cfg.Game.CampaignFile)

	lvl := c.First()
	for {
		status, err := g.playLevel(filepath.Join(base, lvl.File), lvl.Name)
		if err != nil || status != session.StatusEscaped {
			return err
		}
		next, ok := c.LevelAfter(lvl.ID)
		if !ok {
			g.println("You have conquered %s!", c.Name)
			return nil
		}
		lvl = next
	}
}

// playLevel runs one session to completion or quit.
func (g *game) playLevel(path, name string) (session.Status, error) {
	grid, player, err := level.LoadFile(path)
	if err != nil {
		return session.StatusActive, err
	}
	sess := session.New(grid, player, g.logger)

	if name != "" {
		g.println("-- %s --", name)
	}
	for {
		g.print(g.renderer.Frame(sess.Grid(), sess.Player(), sess.Rounds()))

		key, err := g.keys.ReadKey()
		if errors.Is(err, io.EOF) || key == keyQuit {
			g.println("Farewell, adventurer.")
			return sess.Status(), nil
		}
		if err != nil {
			return sess.Status(), fmt.Errorf("reading input: %w", err)
		}

		round, err := sess.Advance(key)
		if err != nil {
			return sess.Status(), err
		}
		g.describe(round)

		switch sess.Status() {
		case session.StatusEscaped:
			g.print(g.renderer.Frame(sess.Grid(), sess.Player(), sess.Rounds()))
			g.println("You escaped with %d treasure!", sess.Player().Treasure)
			return sess.Status(), nil
		case session.StatusCaptured:
			g.print(g.renderer.Frame(sess.Grid(), sess.Player(), sess.Rounds()))
			g.println("A monster caught you. Game over.")
			return sess.Status(), nil
		}
	}
}

func (g *game) describe(round session.Round) {
	switch round.Outcome {
	case turn.CollectedTreasure:
		g.println("You pick up a glittering treasure.")
	case turn.CollectedAmulet:
		g.println("You slip an ancient amulet around your neck.")
	case turn.LeftRoom:
		g.println("You push through the door; the dungeon sprawls wider.")
	}
}

// print writes to stdout, fixing newlines when the terminal is in raw mode.
func (g *game) print(s string) {
	if g.raw {
		s = strings.ReplaceAll(s, "\n", "\r\n")
	}
	fmt.Print(s)
}

func (g *game) println(format string, args ...any) {
	g.print(fmt.Sprintf(format, args...) + "\n")
}
