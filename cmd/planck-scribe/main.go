package main

import (
	"context"
	"flag"
	"os"

	. "github.com/Atlinx/planck-scribe/shared"

	charmlog "github.com/charmbracelet/log"

	"github.com/Atlinx/planck-scribe/config"
	"github.com/Atlinx/planck-scribe/music"
	"github.com/Atlinx/planck-scribe/planck"
	"github.com/Atlinx/planck-scribe/ui"
)

func main() {
	configFile := flag.String("config", "config.yaml", "config file")
	fileName := flag.String("file", "", "MIDI file to open on start")
	prefsFile := flag.String("prefs", ui.PreferencesPath(), "preferences file (recent files)")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if *debug {
		cfg.LogLevel = "debug"
	}
	logger := cfg.Logger("main")
	if err != nil {
		logger.Fatal("bad config", "file", *configFile, "err", err)
	}

	prefs, err := ui.LoadPreferences(*prefsFile)
	if err != nil && !os.IsNotExist(err) {
		logger.Warn("could not read preferences", "file", *prefsFile, "err", err)
	}

	mapping, _ := cfg.Mapping()
	style, _ := cfg.Style()
	if prefs.BaseKey != "" {
		if base, err := planck.ParsePosition(prefs.BaseKey); err == nil {
			if m, err := planck.NewMapping(mapping.Layout(), base, mapping.BasePitch()); err == nil {
				mapping = m
			}
		}
	}
	if prefs.Positions {
		style = planck.LabelPosition
	}

	state := music.NewState(mapping, style)
	state.Options = music.Options{
		Quantize:       cfg.Quantize,
		FirstTrackOnly: cfg.FirstTrackOnly,
	}
	state.Transcribe = music.TranscribeOptions{
		SkipPercussion: cfg.SkipPercussion,
		SkipEmpty:      cfg.SkipEmpty,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = charmlog.WithContext(ctx, logger)

	SinkUI := make(chan Message, 16)
	SinkLoop := make(chan Message, 16)
	loopDone := make(chan struct{})
	go func() {
		music.Run(ctx, state, SinkUI, SinkLoop)
		close(loopDone)
	}()

	if *fileName != "" {
		SinkLoop <- Message{Type: LoadFile, String: *fileName}
	}

	ui.Run(ctx, cancel, ui.Settings{Base: mapping.Base(), Style: style}, prefs, SinkUI, SinkLoop)
	cancel()
	<-loopDone
	logger.Info("bye")
}
