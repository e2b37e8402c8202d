package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/battlesnakeio/arcade/api"
	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/engine"
	"github.com/battlesnakeio/arcade/highscore"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/term"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "starts a game in the terminal",
	Run: func(*cobra.Command, []string) {
		if err := play(); err != nil {
			log.WithError(err).Error("game aborted")
			fmt.Fprintln(os.Stderr, "snake:", err)
			os.Exit(1)
		}
	},
}

func play() error {
	closeLog, err := setupLogging(config.LogPath(dataDir, logFile), logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	store := highscore.New(dataDir, highscore.SystemClock{})
	log.WithField("path", store.Path()).Info("using high score file")

	if metricsAddr != "" {
		srv := api.New(metricsAddr, store)
		go srv.WaitForExit()
		defer srv.Close()
	}

	renderer, input, err := term.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open terminal")
	}
	defer term.Close()

	if w, h := term.Size(); w < rules.CanvasWidth || h < rules.CanvasHeight {
		log.WithFields(log.Fields{
			"width":  w,
			"height": h,
		}).Warnf("terminal is smaller than %dx%d", rules.CanvasWidth, rules.CanvasHeight)
	}

	input.Interrupt = func() {
		term.Close()
		log.Info("interrupted")
		closeLog()
		os.Exit(130)
	}

	e := engine.New(renderer, input, rules.NewRandom(time.Now().UnixNano()), highscore.SystemClock{})
	e.Scores = highscore.Instrument(store)
	e.MinTickInterval = minTick

	return e.Run()
}

// setupLogging sends logrus output to path, since the terminal belongs to the
// game while it runs.
func setupLogging(path, level string) (func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrapf(err, "failed to create log directory for %s", path)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open log file %s", path)
	}

	log.SetOutput(f)
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})

	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}
