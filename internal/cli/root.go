// Package cli implements tapctl, a terminal client that plays EmojiKombat
// against a local file or sqlite store.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/osse101/EmojiKombat_Go/internal/domain"
)

type rootOptions struct {
	configPath string
	playerID   string
	dataDir    string
	backend    string
	noColor    bool

	settings Settings
}

// intent runs one service call for the configured player and returns the new view
type intent func(ctx context.Context, sess *session, playerID string) (domain.View, error)

// NewRootCommand builds the tapctl command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "tapctl",
		Short:         "Play EmojiKombat from the terminal",
		Long:          "tapctl plays EmojiKombat against a local store. Every command loads the player, applies idle earnings since the last run, performs one action and saves.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", DefaultSettingsPath(), "settings file")
	flags.StringVarP(&opts.playerID, "player", "p", "", "player id (overrides settings)")
	flags.StringVar(&opts.dataDir, "data-dir", "", "directory for the file backend")
	flags.StringVar(&opts.backend, "backend", "", "storage backend: file or sqlite")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		opts.viewCommand("status", "Show the current balance, rank and yields", cobra.NoArgs,
			func(ctx context.Context, sess *session, id string) (domain.View, error) {
				return sess.svc.GetState(ctx, id)
			}),
		opts.tapCommand(),
		opts.buyCommand(),
		opts.upgradesCommand(),
		opts.ranksCommand(),
		opts.tasksCommand(),
		opts.claimCommand(),
		opts.completeCommand(),
		opts.earnCommand(),
		opts.viewCommand("refer", "Record a successful referral", cobra.NoArgs,
			func(ctx context.Context, sess *session, id string) (domain.View, error) {
				return sess.svc.IncrementReferral(ctx, id)
			}),
		opts.resetCommand(),
	)
	return root
}

// Execute runs tapctl and exits non-zero on failure
func Execute() {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		var shown reportedError
		if !errors.As(err, &shown) {
			fmt.Fprintln(os.Stderr, "tapctl:", err)
		}
		os.Exit(1)
	}
}

func (o *rootOptions) resolve() error {
	s, err := LoadSettings(o.configPath)
	if err != nil {
		return err
	}
	if o.playerID != "" {
		s.PlayerID = o.playerID
	}
	if o.dataDir != "" {
		s.DataDir = o.dataDir
	}
	if o.backend != "" {
		s.Backend = o.backend
	}
	if o.noColor || os.Getenv("NO_COLOR") != "" {
		s.NoColor = true
	}
	if err := s.Validate(); err != nil {
		return err
	}
	o.settings = s
	return nil
}

func (o *rootOptions) printer(cmd *cobra.Command) printer {
	return printer{w: cmd.OutOrStdout(), color: !o.settings.NoColor}
}

// run opens a session, calls fn and always saves before returning
func (o *rootOptions) run(cmd *cobra.Command, fn func(ctx context.Context, sess *session) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	sess, err := openSession(ctx, o.settings)
	if err != nil {
		return err
	}
	runErr := fn(ctx, sess)
	if err := sess.finish(ctx); err != nil {
		return errors.Join(runErr, fmt.Errorf("save: %w", err))
	}
	return runErr
}

// act runs an intent and prints the resulting view. Rejections print the
// unchanged view along with the reason.
func (o *rootOptions) act(cmd *cobra.Command, success string, fn intent) error {
	p := o.printer(cmd)
	return o.run(cmd, func(ctx context.Context, sess *session) error {
		view, err := fn(ctx, sess, o.settings.PlayerID)
		if err != nil {
			p.failure("%s", describe(err))
			if rejected(err) {
				p.view(view)
			}
			return reportedError{err}
		}
		if success != "" {
			p.success("%s", success)
		}
		p.view(view)
		return nil
	})
}

func (o *rootOptions) viewCommand(use, short string, args cobra.PositionalArgs, fn intent) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.act(cmd, "", fn)
		},
	}
}

func (o *rootOptions) tapCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tap [count]",
		Short: "Tap once, or count times",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid tap count %q", args[0])
				}
				count = n
			}
			return o.act(cmd, "", func(ctx context.Context, sess *session, id string) (domain.View, error) {
				return sess.svc.Tap(ctx, id, count)
			})
		},
	}
}

func (o *rootOptions) buyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <upgrade>",
		Short: "Purchase one level of an upgrade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			return o.act(cmd, "Bought "+id, func(ctx context.Context, sess *session, player string) (domain.View, error) {
				return sess.svc.PurchaseUpgrade(ctx, player, id)
			})
		},
	}
}

func (o *rootOptions) upgradesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrades",
		Short: "List upgrades with owned counts and next cost",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd, func(ctx context.Context, sess *session) error {
				offers, err := sess.svc.Offers(ctx, o.settings.PlayerID)
				if err != nil {
					return err
				}
				o.printer(cmd).offers(offers)
				return nil
			})
		},
	}
}

func (o *rootOptions) ranksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ranks",
		Short: "Show the rank table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd, func(ctx context.Context, sess *session) error {
				view, err := sess.svc.GetState(ctx, o.settings.PlayerID)
				if err != nil {
					return err
				}
				o.printer(cmd).ranks(sess.svc.Catalog().Ranks.All(), view.Rank.Name)
				return nil
			})
		},
	}
}

func (o *rootOptions) tasksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List tasks and whether they can be claimed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd, func(ctx context.Context, sess *session) error {
				tasks, err := sess.svc.Tasks(ctx, o.settings.PlayerID)
				if err != nil {
					return err
				}
				o.printer(cmd).tasks(tasks)
				return nil
			})
		},
	}
}

func (o *rootOptions) claimCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "claim <task>",
		Short: "Claim a catalog task's reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			return o.act(cmd, "Claimed "+id, func(ctx context.Context, sess *session, player string) (domain.View, error) {
				return sess.svc.ClaimTask(ctx, player, id)
			})
		},
	}
}

func (o *rootOptions) completeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <task> <reward>",
		Short: "Complete an ad-hoc task with a reward, once per id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reward, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid reward %q", args[1])
			}
			id := args[0]
			return o.act(cmd, "", func(ctx context.Context, sess *session, player string) (domain.View, error) {
				return sess.svc.CompleteTask(ctx, player, id, reward)
			})
		},
	}
}

func (o *rootOptions) earnCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "earn <amount>",
		Short: "Credit a minigame payout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || amount <= 0 {
				return fmt.Errorf("invalid amount %q, want a positive integer", args[0])
			}
			return o.act(cmd, "", func(ctx context.Context, sess *session, player string) (domain.View, error) {
				return sess.svc.EarnFromMinigame(ctx, player, amount)
			})
		},
	}
}

func (o *rootOptions) resetCommand() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all progress for the player",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("reset discards all progress; pass --yes to confirm")
			}
			return o.act(cmd, "Progress reset", func(ctx context.Context, sess *session, player string) (domain.View, error) {
				return sess.svc.Reset(ctx, player)
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the reset")
	return cmd
}

// reportedError has already been printed to the user
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error { return e.error }

func rejected(err error) bool {
	return errors.Is(err, domain.ErrInsufficientFunds) ||
		errors.Is(err, domain.ErrMaxLevelReached) ||
		errors.Is(err, domain.ErrTaskAlreadyCompleted) ||
		errors.Is(err, domain.ErrTaskRequirementNotMet)
}

func describe(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "Not enough coins"
	case errors.Is(err, domain.ErrMaxLevelReached):
		return "Upgrade is at max level"
	case errors.Is(err, domain.ErrUnknownUpgrade):
		return "No such upgrade (see 'tapctl upgrades')"
	case errors.Is(err, domain.ErrTaskNotFound):
		return "No such task (see 'tapctl tasks')"
	case errors.Is(err, domain.ErrTaskAlreadyCompleted):
		return "Task already claimed"
	case errors.Is(err, domain.ErrTaskRequirementNotMet):
		return "Task requirement not met yet"
	default:
		return err.Error()
	}
}
