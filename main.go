package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"agenda/src-cli/handler"
	"agenda/src-cli/handler/event_handler"
	"agenda/src-cli/metric"
	"agenda/src-cli/utils"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v2"
)

func init() {
	if err := godotenv.Load(); err != nil {
		slog.Info(err.Error())
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      utils.ParseLogLevel(os.Getenv("LOG_LEVEL")),
			TimeFormat: time.RFC1123Z,
		}),
	))
}

func main() {
	app := &cli.App{
		Name:  "agenda",
		Usage: "An in-memory event scheduler with an interactive session.",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "seed", Usage: "Preload the sample events before the session starts."},
		},
		Action: func(c *cli.Context) error {
			return runSession(c.Bool("seed"))
		},
		Commands: []*cli.Command{
			demoCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("app failed", "error", err)
		os.Exit(1)
	}
}

// Build the AppState and register every command into its maps.
func newWiredAppState() *utils.AppState {
	as := utils.NewAppState()

	event_handler.Init(as)
	handler.Help(as)
	handler.Stats(as)
	handler.Seed(as)
	handler.Export(as)

	return as
}

func runSession(seed bool) error {
	as := newWiredAppState()
	metric.Init(as)

	if seed {
		if err := handler.SeedData(as); err != nil {
			return err
		}
		slog.Info("sample events loaded", "total", as.Scheduler.GetTotalEvents())
	}

	signal.Notify(as.AppCloseSignalChan, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(as.In)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	fmt.Fprintln(as.Out, `Type "help" for the command overview, "quit" to leave.`)
	for {
		fmt.Fprint(as.Out, "> ")
		var line string
		var open bool
		select {
		case <-as.AppCloseSignalChan:
			fmt.Fprintln(as.Out)
			as.GracefulShutdown()
			return nil
		case line, open = <-lines:
			if !open {
				as.GracefulShutdown()
				return nil
			}
		}

		cmd, args := splitCommand(line)
		switch {
		case cmd == "":
			continue
		case cmd == "quit" || cmd == "exit":
			as.GracefulShutdown()
			return nil
		default:
			if h, ok := as.GetAppCmdHandler(cmd); ok {
				if err := h(args); err != nil {
					slog.Error("handler error", "command", cmd, "error", err.Error())
				}
				continue
			}
			fmt.Fprintf(as.Out, "Unknown command %q, try \"help\".\n", cmd)
		}
	}
}

// First word is the command id, the rest is the argument tail handed to
// the handler.
func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	cmd, args, found := strings.Cut(line, " ")
	if !found {
		return line, ""
	}
	return cmd, strings.TrimSpace(args)
}

func demoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Seed the sample events, render the standard views and exit.",
		Action: func(c *cli.Context) error {
			as := newWiredAppState()
			metric.Init(as)
			defer as.GracefulShutdown()

			if err := handler.SeedData(as); err != nil {
				return err
			}

			for _, id := range []string{"list", "today", "people", "export", "stats"} {
				fmt.Fprintf(as.Out, "--- %s ---\n", id)
				h, ok := as.GetAppCmdHandler(id)
				if !ok {
					return fmt.Errorf("demo: no handler for %q", id)
				}
				if err := h(""); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
