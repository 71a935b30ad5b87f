package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/vigil/internal/config"
	"github.com/rileyhilliard/vigil/internal/dashboard"
	"github.com/rileyhilliard/vigil/internal/errors"
	"github.com/rileyhilliard/vigil/internal/logger"
	"github.com/rileyhilliard/vigil/internal/status"
)

// watchCommand starts the TUI dashboard with a background poller.
func watchCommand(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	// The TUI owns the terminal; anything the poller has to say goes
	// through the status line, not a log stream.
	log := logger.Noop()

	mailbox := status.NewMailbox()
	client := status.NewClient(cfg.Feed, log)
	poller := status.NewPoller(client, mailbox, cfg.Poll.Interval, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go poller.Run(ctx)

	model := dashboard.NewModel(cfg, mailbox)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	return err
}

// loadConfig finds, loads, and validates the config file.
func loadConfig(explicit string) (*config.Config, error) {
	path, err := config.Find(explicit)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, errors.New(errors.ErrConfig,
			"No config file found",
			"Run 'vigil init' to create one, or pass --config")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
