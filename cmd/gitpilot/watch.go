package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	gitpilot "github.com/randalmurphal/gitpilot"
	"github.com/randalmurphal/gitpilot/notify"
)

var notifyURL string

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Commit and push on the configured interval",
	Long: `watch runs the commit pipeline every interval_minutes until
interrupted. Each completed or failed run is logged; pass --notify-url
to also POST run events to a webhook.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&notifyURL, "notify-url", "",
		"POST commit events to this URL as JSON")
}

func runWatch(cmd *cobra.Command, args []string) error {
	path, err := repoPath(args)
	if err != nil {
		return err
	}

	cfg := store.Get()
	if cfg.IntervalMinutes <= 0 {
		return fmt.Errorf("interval must be positive, got %d", cfg.IntervalMinutes)
	}
	cfg.RepoPath = path
	store.Replace(cfg)

	p, err := newPipeline(path)
	if err != nil {
		return err
	}

	notifiers := []notify.Notifier{notify.NewLogNotifier(slog.Default())}
	if notifyURL != "" {
		notifiers = append(notifiers, notify.NewWebhookNotifier(notifyURL, nil))
	}
	sched := gitpilot.NewScheduler(store, p,
		gitpilot.WithNotifier(notify.NewMultiNotifier(notifiers...)))

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := sched.Start(ctx); err != nil {
		return err
	}
	fmt.Printf("Watching %s, committing every %d minute(s). Ctrl-C to stop.\n",
		path, cfg.IntervalMinutes)

	<-ctx.Done()
	sched.Stop()
	fmt.Println("Stopped.")
	return nil
}
