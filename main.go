package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"scamgame/internal/config"
	"scamgame/internal/gemini"
	"scamgame/internal/scenario"

	"go.uber.org/zap"
)

// Playground: reads one prompt from stdin and prints the validated scenario,
// going through the same service the HTTP endpoint uses.
func main() {
	if err := config.Load(); err != nil {
		log.Println("no .env loaded:", err)
	}
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	client, err := gemini.New(ctx, gemini.Config{APIKey: config.APIKey(), Model: cfg.GeminiModel})
	if err != nil {
		log.Fatal(err)
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	svc := scenario.NewService(client, logger, scenario.Options{Temperature: cfg.GeminiTemperature})

	fmt.Println("Enter prompt")
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	prompt := strings.TrimRight(line, "\r\n")

	sc, err := svc.Generate(ctx, prompt)
	if err != nil {
		var gerr *scenario.Error
		if errors.As(err, &gerr) {
			fmt.Fprintf(os.Stderr, "%s: %s\n", gerr.Kind, gerr.Message)
			if d := gerr.Details(); d != "" {
				fmt.Fprintln(os.Stderr, d)
			}
			if gerr.Raw != "" {
				fmt.Fprintln(os.Stderr, gerr.Raw)
			}
			os.Exit(1)
		}
		log.Fatal(err)
	}
	out, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}
