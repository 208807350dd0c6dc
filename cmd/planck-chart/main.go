package main

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/Atlinx/planck-scribe/config"
	"github.com/Atlinx/planck-scribe/gm"
	"github.com/Atlinx/planck-scribe/music"
	"github.com/Atlinx/planck-scribe/planck"
)

// settings merges the config file with the command line flags.
func settings(c *cli.Command) (config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return cfg, err
	}
	if c.IsSet("base") {
		cfg.BaseKey = c.String("base")
	}
	if c.IsSet("base-pitch") {
		cfg.BasePitch = c.Int("base-pitch")
	}
	if c.IsSet("style") {
		cfg.LabelStyle = c.String("style")
	}
	if c.Bool("debug") {
		cfg.LogLevel = "debug"
	}
	if c.IsSet("quantize") {
		cfg.Quantize = c.Bool("quantize")
	}
	if c.IsSet("first-track") {
		cfg.FirstTrackOnly = c.Bool("first-track")
	}
	if c.IsSet("skip-percussion") {
		cfg.SkipPercussion = c.Bool("skip-percussion")
	}
	return cfg, cfg.Validate()
}

func notesAction(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected one MIDI file, got %d arguments", c.Args().Len())
	}
	cfg, err := settings(c)
	if err != nil {
		return err
	}
	logger := cfg.Logger("notes")
	mapping, _ := cfg.Mapping()
	style, _ := cfg.Style()

	path := c.Args().First()
	score, err := music.Load(path, music.Options{
		Quantize:       cfg.Quantize,
		FirstTrackOnly: cfg.FirstTrackOnly,
	})
	if err != nil {
		return err
	}
	lo, hi := mapping.Range()
	logger.Debug("loaded", "path", path, "format", score.Format, "resolution", score.Resolution,
		"tempo", score.Tempo, "tracks", len(score.Tracks), "range", fmt.Sprintf("%d-%d", lo, hi))

	transcripts := music.Transcribe(score, mapping, music.TranscribeOptions{
		SkipPercussion: cfg.SkipPercussion,
		SkipEmpty:      cfg.SkipEmpty,
	})
	for _, t := range transcripts {
		if n := t.Unmapped(); n > 0 {
			logger.Warn("notes off the board", "track", t.Track.Index+1, "count", n)
		}
	}
	fmt.Fprintln(c.Root().Writer, renderNotes(transcripts, style))
	return nil
}

func layoutAction(ctx context.Context, c *cli.Command) error {
	cfg, err := settings(c)
	if err != nil {
		return err
	}
	mapping, _ := cfg.Mapping()
	style, _ := cfg.Style()
	fmt.Fprintln(c.Root().Writer, renderLayout(mapping, style))
	return nil
}

func instrumentsAction(ctx context.Context, c *cli.Command) error {
	family := ""
	for p, name := range gm.Programs() {
		if f := gm.Family(uint8(p)); f != family {
			family = f
			fmt.Fprintln(c.Root().Writer, headerStyle.Render(family))
		}
		fmt.Fprintf(c.Root().Writer, "%4d  %s\n", p, name)
	}
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "planck-chart",
		Usage: "Map the notes of MIDI files onto a Planck keyboard",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "YAML config file",
			},
			&cli.StringFlag{
				Name:  "base",
				Value: planck.DefaultBase.String(),
				Usage: "key playing the base pitch, as R<row>C<col>",
			},
			&cli.IntFlag{
				Name:  "base-pitch",
				Value: planck.MiddleC,
				Usage: "MIDI pitch of the base key",
			},
			&cli.StringFlag{
				Name:  "style",
				Value: planck.LabelLegend.String(),
				Usage: "key labels: legend or position",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "notes",
				Usage:     "print the keys to play for every track of a MIDI file",
				ArgsUsage: "<file.mid>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "quantize", Usage: "snap notes to the grid first"},
					&cli.BoolFlag{Name: "first-track", Usage: "only read the first track"},
					&cli.BoolFlag{Name: "skip-percussion", Usage: "leave out channel 10 tracks"},
				},
				Action: notesAction,
			},
			{
				Name:   "layout",
				Usage:  "draw the keyboard with the pitch of every key",
				Action: layoutAction,
			},
			{
				Name:   "instruments",
				Usage:  "list the General MIDI programs",
				Action: instrumentsAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		charmlog.Error(err)
		os.Exit(1)
	}
}
