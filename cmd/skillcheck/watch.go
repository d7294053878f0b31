package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/skillforge/skillcheck/report"
	"github.com/skillforge/skillcheck/skill"
)

func watchCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the skills directory and re-validate on change",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, engine, err := setup(opts)
			if err != nil {
				return err
			}

			watcher, err := skill.NewWatcher(skill.WatcherConfig{Dir: cfg.Skills.Dir})
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			if err := watcher.Start(ctx); err != nil {
				return fmt.Errorf("start watcher: %w", err)
			}
			defer watcher.Stop()

			fmt.Printf("Watching %s for changes (Ctrl-C to stop)...\n", cfg.Skills.Dir)

			for {
				select {
				case <-ctx.Done():
					fmt.Println("\nStopped.")
					return nil
				case path := <-watcher.Changes():
					res, err := engine.ValidateFile(path)
					if err != nil {
						fmt.Fprintf(os.Stderr, "Error: %v\n", err)
						continue
					}
					fmt.Println(report.FormatResult(res))
				}
			}
		},
	}
}
