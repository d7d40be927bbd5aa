package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/spacerover/spacerover-go/internal/adapters/metrics"
	"github.com/spacerover/spacerover-go/internal/application/simulation"
	"github.com/spacerover/spacerover-go/internal/domain/game"
	"github.com/spacerover/spacerover-go/internal/domain/hex"
	"github.com/spacerover/spacerover-go/internal/domain/navigation"
)

const playHelp = `Commands:
  e, ne, nw, w, sw, se   thrust in a direction (launch when landed)
  coast, stay, -         no thrust; a landed ship stays put
  land                   land on the body you orbit
  yes, no                answer a half gravity question
  ok                     acknowledge a crash
  options                list the moves open to your ship
  status                 show every racer
  destruct               self destruct
  save                   save now
  quit                   save and leave`

// NewPlayCommand creates the play command
func NewPlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play [game-id]",
		Short: "Play a game at the terminal",
		Long: `Resume a saved game and take turns at the terminal. Without an id the
last game played is resumed.

The game is saved whenever a turn starts. Quitting partway through a
move keeps that save, so the move is played again on resume.

` + playHelp,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx, stop := signal.NotifyContext(a.context(), os.Interrupt)
			defer stop()

			var arg string
			if len(args) > 0 {
				arg = args[0]
			}
			g, err := loadGame(ctx, a, arg)
			if err != nil {
				return err
			}
			rememberGame(g.ID())

			out := newConsole(os.Stdout)
			opts := []simulation.Option{
				simulation.WithObserver(out),
				simulation.WithLogger(a.logger),
				simulation.WithRepository(a.repo),
				simulation.WithBurn(a.cfg.Game.Burn),
			}
			if a.metrics != nil {
				opts = append(opts, simulation.WithMetrics(a.metrics))
				server := metrics.NewServer(a.cfg.Metrics.Listen, a.cfg.Metrics.Path, a.logger)
				if err := server.Start(); err != nil {
					return err
				}
				defer func() {
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
					defer cancel()
					_ = server.Shutdown(shutdownCtx)
				}()
			}

			out.printf("Game %s, %s. Type help for commands.\n", g.ID().Short(), g.Summary())
			session, err := simulation.NewSession(g, opts...)
			if err != nil {
				return err
			}
			return play(ctx, session, simulation.NewRunner(session, a.cfg.Game.TickRate), os.Stdin, out)
		},
	}
}

// play runs the session until the game ends, input runs out or the user
// quits. Ticks happen on the runner goroutine; commands are applied here.
func play(ctx context.Context, session *simulation.Session, runner *simulation.Runner, in io.Reader, out *console) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case err := <-done:
			if errors.Is(err, context.Canceled) {
				return leave(session, out)
			}
			return err

		case line, ok := <-lines:
			if !ok {
				cancel()
				<-done
				return leave(session, out)
			}
			quit, err := execute(ctx, session, strings.ToLower(strings.TrimSpace(line)), out)
			if err != nil {
				out.printf("%v\n> ", err)
			}
			if quit {
				cancel()
				<-done
				return leave(session, out)
			}
		}
	}
}

// leave saves on the way out. Partway through a move the save made when
// the turn started is kept, and the move is played again on resume.
func leave(session *simulation.Session, out *console) error {
	if !session.CanSave() {
		out.printf("Move not finished; the game resumes at the start of this turn.\n")
		return nil
	}
	if err := session.Save(context.Background()); err != nil {
		return err
	}
	out.printf("Saved.\n")
	return nil
}

// execute applies one line of input. It reports whether the player asked
// to leave.
func execute(ctx context.Context, session *simulation.Session, line string, out *console) (bool, error) {
	switch line {
	case "":
		out.printf("> ")
		return false, nil
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		out.printf("%s\n> ", playHelp)
		return false, nil
	case "status":
		snap := session.Snapshot()
		out.printf("Round %d, %s's turn (%s)\n%s\n> ", snap.Round, snap.Player, snap.State, indent(snap.Information))
		return false, nil
	case "options":
		return false, printOptions(session, out)
	case "save":
		if err := session.Save(ctx); err != nil {
			return false, err
		}
		out.printf("Saved.\n> ")
		return false, nil
	case "land":
		return false, session.Land()
	case "destruct":
		return false, session.SelfDestruct()
	case "yes", "y":
		return false, session.ResolveGravity(true)
	case "no", "n":
		return false, session.ResolveGravity(false)
	case "ok":
		_, more, err := session.Dismiss()
		if err == nil && more {
			if n := session.Snapshot().Notification; n != nil {
				out.printf("!! %s\n> ", n.Message)
			}
		}
		return false, err
	case "coast", "stay", "-":
		return false, session.Accelerate(hex.None)
	}

	d, err := hex.ParseDirection(line)
	if err != nil {
		return false, fmt.Errorf("unknown command %q, type help for commands", line)
	}
	if session.Snapshot().ShipState == navigation.ShipLanded && d != hex.None {
		return false, session.Launch(d)
	}
	return false, session.Accelerate(d)
}

func printOptions(session *simulation.Session, out *console) error {
	options := session.Options()
	if len(options) == 0 {
		return fmt.Errorf("no moves to choose right now (%s)", session.State())
	}
	var b strings.Builder
	for _, opt := range options {
		fmt.Fprintf(&b, "   %-10s -> %-10s %s", opt.Direction, opt.Target, opt.Action)
		if opt.Body != nil && (opt.Action == game.ActionLand || opt.Action == game.ActionCrash) {
			fmt.Fprintf(&b, " %s", opt.Body.Name())
		}
		b.WriteString("\n")
	}
	out.printf("%s> ", b.String())
	return nil
}
