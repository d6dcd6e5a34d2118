// Package main implements the pomodoro terminal timer.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/RohitRai1141/pomodoro/internal/notify"
	"github.com/RohitRai1141/pomodoro/internal/sound"
	"github.com/RohitRai1141/pomodoro/internal/timer"
	"github.com/RohitRai1141/pomodoro/internal/tui"
)

var (
	flagWork     int
	flagShort    int
	flagLong     int
	flagSessions int
	flagNoSound  bool
	flagDebug    bool
)

var rootCmd = &cobra.Command{
	Use:   "pomodoro",
	Short: "A Pomodoro session timer for the terminal",
	Long: `A terminal Pomodoro timer that alternates timed work sessions with
short and long breaks. Flags seed the setup screen; the timer itself is
controlled live with the keyboard (pause, skip, adjust).`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	defaults := timer.DefaultConfig()
	rootCmd.Flags().IntVarP(&flagWork, "work", "w", defaults.WorkMinutes, "work session length in minutes")
	rootCmd.Flags().IntVarP(&flagShort, "short-break", "s", defaults.ShortBreakMinutes, "short break length in minutes")
	rootCmd.Flags().IntVarP(&flagLong, "long-break", "l", defaults.LongBreakMinutes, "long break length in minutes")
	rootCmd.Flags().IntVarP(&flagSessions, "sessions", "n", defaults.TotalSessions, "work sessions per long-break cycle")
	rootCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "disable the completion chime")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "log to debug.log and show the event panel")
}

func run(cmd *cobra.Command, args []string) error {
	defaults := timer.Config{
		WorkMinutes:       flagWork,
		ShortBreakMinutes: flagShort,
		LongBreakMinutes:  flagLong,
		TotalSessions:     flagSessions,
	}
	if err := defaults.Validate(); err != nil {
		return err
	}

	if flagDebug {
		f, err := tea.LogToFile("debug.log", "pomodoro")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
	} else {
		// Collaborators log failures; without a log file that would
		// scribble over the alternate screen.
		log.SetOutput(io.Discard)
	}

	var chimer tui.Chimer = sound.NewSilentPlayer()
	if !flagNoSound {
		chimer = sound.NewPlayer()
	}

	p := tea.NewProgram(
		tui.NewModel(defaults, notify.New(), chimer, flagDebug),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
