// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/internal/service"
	"github.com/MKhiriev/go-vmind/models"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("wrong arguments")
)

// App dispatches one CLI command per run.
type App struct {
	auth    service.ClientAuthService
	tracker service.ClientTrackerService

	buildInfo models.AppBuildInfo
	out       io.Writer

	logger *logger.Logger
}

// NewApp builds the CLI on top of the client services. Command output is
// written to out.
func NewApp(services *service.ClientServices, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) *App {
	return &App{
		auth:      services.AuthService,
		tracker:   services.TrackerService,
		buildInfo: buildInfo,
		out:       out,
		logger:    logger,
	}
}

// Run implements [Client]. With no args it prints the command list.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" {
		a.print(a.usage())
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		a.print(a.usage())
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")

	output, err := cmd.run(ctx, a, args[1:])
	if err != nil {
		if errors.Is(err, ErrUsage) {
			a.print(helpStyle.Render("usage: vmind "+args[0]+" "+cmd.usage) + "\n")
		}
		a.logger.Err(err).Str("command", args[0]).Msg("command failed")
		a.print(renderError(err))
		return err
	}

	a.print(output)
	return nil
}

func (a *App) print(s string) {
	_, _ = io.WriteString(a.out, s)
}

func (a *App) usage() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%-11s %s\n", name, commands[name].usage)
	}

	return renderPage("USAGE: vmind <command> [args]", b.String())
}
