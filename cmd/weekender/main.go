// Command weekender is the conversational agent CLI. It spawns the funtools
// MCP server, connects a local Ollama model, and runs a line-oriented chat
// loop on stdin/stdout.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/germanamz/weekender/pkg/agent"
	"github.com/germanamz/weekender/pkg/engine"
	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "weekender.yaml", "path to configuration file (ignored if missing)")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	verbose := flag.Bool("verbose", false, "log decisions and tool calls to stderr")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(*configPath, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadDotEnv loads environment variables from path. If the file does not
// exist it is silently ignored so that .env files remain optional.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// loadConfig reads the config file, falling back to defaults when the file
// does not exist so the CLI runs without any setup.
func loadConfig(path string) (engine.Config, error) {
	cfg, err := engine.LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		return engine.DefaultConfig(), nil
	}
	return cfg, err
}

// run starts the engine and enters the chat loop.
func run(configPath string, verbose bool) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	eng, err := engine.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = eng.Close() }()

	if verbose {
		eng.Agent.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	fmt.Println(bannerStyle.Render("Connected tools: " + strings.Join(eng.ToolNames(), ", ")))

	return chatLoop(ctx, eng.Agent)
}

// chatLoop reads one line per turn. Empty input or exit/quit (any case) ends
// the session without consulting the model or any tool.
func chatLoop(ctx context.Context, a *agent.Agent) error {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(promptStyle.Render("You: "))

		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" || isExit(input) {
			break
		}

		if agent.IsTriviaRequest(input) {
			quiz, err := a.TriviaTurn(ctx, input)
			if err != nil {
				fmt.Println("\n" + agentPrefixStyle.Render("Agent:") + " " + errorStyle.Render(err.Error()))
				continue
			}
			printQuiz(quiz)
			continue
		}

		reply := a.Turn(ctx, input)
		fmt.Println("\n" + agentPrefixStyle.Render("Agent:") + "\n" + reply)
	}

	return scanner.Err()
}

func isExit(input string) bool {
	switch strings.ToLower(input) {
	case "exit", "quit":
		return true
	}
	return false
}

func printQuiz(q agent.Quiz) {
	fmt.Println("\n" + agentPrefixStyle.Render("Agent:"))
	fmt.Println(quizHeaderStyle.Render("🧠 Trivia Question:"))

	question := q.Question
	if question == "" {
		question = "No question received."
	}
	fmt.Println(question)

	for i, c := range q.Choices {
		fmt.Printf("%d. %s\n", i+1, c)
	}
}
