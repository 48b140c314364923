package main

import (
	"fmt"
	"os"

	"macswap/internal/config"
	"macswap/internal/logger"
	"macswap/internal/pipeline"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func main() {
	cfg, err := config.LoadConfig("configs/config.toml")
	if err != nil {
		fail("Failed to load config", err)
	}

	summary, err := pipeline.Run(cfg)
	if err != nil {
		fail("Swap report failed", err)
	}

	logger.Info("Swap report completed",
		"workbook", summary.Workbook,
		"prework_rows", summary.Prework,
		"tech_rows", summary.Tech,
		"joined_rows", summary.Joined,
		"blocks", summary.Blocks)

	fmt.Println(successStyle.Render("Data processed and saved in new tab on workbook."))
}

func fail(msg string, err error) {
	logger.Error(msg, "error", err)
	fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("%s: %v", msg, err)))
	os.Exit(1)
}
