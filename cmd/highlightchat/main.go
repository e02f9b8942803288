package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/csheth/highlightchat/internal/answer"
	"github.com/csheth/highlightchat/internal/tui"
)

func main() {
	envFile := flag.String("env-file", ".env", "dotenv file with HIGHLIGHT_* settings (missing file is ignored)")
	apiURL := flag.String("api-url", "", "answer service base URL (default $HIGHLIGHT_API_URL, $VITE_API_URL or /api; use http://localhost:8000 for a backend serving /chat at its root)")
	apiOrigin := flag.String("api-origin", "", "origin used to resolve a relative api url (default http://localhost:8000)")
	topK := flag.Int("top-k", 0, "number of matches to request (1-20, default 5)")
	transcriptPath := flag.String("transcript", "", "JSON file that Ctrl+S exports exchanges to")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	debugLog := flag.String("debug-log", "", "write debug logs to this file (default $HIGHLIGHT_DEBUG_LOG)")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Println("failed to load env file:", err)
		os.Exit(1)
	}

	logPath := *debugLog
	if logPath == "" {
		logPath = os.Getenv("HIGHLIGHT_DEBUG_LOG")
	}
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "highlightchat")
		if err != nil {
			fmt.Println("failed to open debug log:", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	client, err := answer.NewFromEnv(answer.Config{
		BaseURL: *apiURL,
		Origin:  *apiOrigin,
	})
	if err != nil {
		fmt.Println("invalid answer service configuration:", err)
		os.Exit(1)
	}

	exportPath := *transcriptPath
	if exportPath != "" {
		if abs, err := filepath.Abs(exportPath); err == nil {
			exportPath = abs
		}
	}

	limit := answer.TopKFromEnv(*topK)
	log.Printf("[main] asking %s (top_k=%d)", client.Endpoint(), limit)
	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if !*noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Client:         client,
			TopK:           limit,
			TranscriptPath: exportPath,
		}),
		opts...,
	)

	if _, err := program.Run(); err != nil {
		fmt.Println("program error:", err)
		os.Exit(1)
	}
}
