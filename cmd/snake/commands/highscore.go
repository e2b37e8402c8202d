package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/battlesnakeio/arcade/highscore"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var highScoreCmd = &cobra.Command{
	Use:   "highscore",
	Short: "inspects the saved high score",
}

var highScoreShowCmd = &cobra.Command{
	Use:   "show",
	Short: "prints the saved high score record",
	Run: func(c *cobra.Command, _ []string) {
		if err := showHighScore(c.OutOrStdout(), highscore.New(dataDir, nil)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

var highScorePathCmd = &cobra.Command{
	Use:   "path",
	Short: "prints where the high score is kept",
	Run: func(c *cobra.Command, _ []string) {
		fmt.Fprintln(c.OutOrStdout(), highscore.New(dataDir, nil).Path())
	},
}

func init() {
	highScoreCmd.AddCommand(highScoreShowCmd)
	highScoreCmd.AddCommand(highScorePathCmd)
}

func showHighScore(w io.Writer, store *highscore.Store) error {
	rec, err := store.Record()
	if err == highscore.ErrNoRecord {
		fmt.Fprintln(w, "no high score yet")
		return nil
	}
	if err != nil {
		return err
	}
	spew.Fdump(w, rec)
	return nil
}
