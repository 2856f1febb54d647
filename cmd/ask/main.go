package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/Vovarama1992/mi-crypto-assistant/internal/ai"
	"github.com/Vovarama1992/mi-crypto-assistant/internal/chat"
	"github.com/Vovarama1992/mi-crypto-assistant/internal/config"
	"github.com/Vovarama1992/mi-crypto-assistant/internal/logging"
)

var errRemoteFailed = errors.New("no answer from gemini")

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newCommand(cfg, os.Stdout).Run(ctx, os.Args); err != nil {
		slog.Default().Error("ask failed", "err", err)
		os.Exit(1)
	}
}

func newCommand(cfg config.Config, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "ask",
		Usage:     "ask the MI crypto assistant a single question",
		ArgsUsage: "<prompt...>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "key",
				Usage:   "Gemini API key; without it a mock answer is printed",
				Value:   cfg.GeminiAPIKey,
				Sources: cli.EnvVars("GEMINI_API_KEY"),
			},
			&cli.StringFlag{
				Name:  "model",
				Value: cfg.GeminiModel,
			},
			&cli.StringFlag{
				Name:  "base-url",
				Value: cfg.GeminiBaseURL,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "debug logging",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			level := cfg.SlogLevel()
			if cmd.Bool("verbose") {
				level = slog.LevelDebug
			}
			log := logging.Setup(os.Stderr, level)

			prompt := strings.Join(cmd.Args().Slice(), " ")
			if strings.TrimSpace(prompt) == "" {
				return cli.ShowAppHelp(cmd)
			}

			gemini := ai.NewGeminiClient(
				ai.WithBaseURL(cmd.String("base-url")),
				ai.WithTimeout(cfg.GeminiTimeout()),
				ai.WithLogger(log),
			)
			svc := chat.NewService(chat.NewRepo(), gemini, cmd.String("key"), cmd.String("model"), log)

			res, err := svc.Send(ctx, chat.SendRequest{Message: prompt})
			if err != nil {
				return err
			}
			return printReply(out, res.Reply)
		},
	}
}

func printReply(out io.Writer, reply chat.Message) error {
	fmt.Fprintln(out, reply.Content)

	switch reply.Source {
	case chat.SourceError:
		return errRemoteFailed
	case chat.SourceFallback:
		color.New(color.FgYellow).Fprintf(out, "confidence: %d%% (mock)\n", reply.Confidence)
	default:
		color.New(color.FgGreen).Fprintf(out, "confidence: %d%%\n", reply.Confidence)
	}
	return nil
}
