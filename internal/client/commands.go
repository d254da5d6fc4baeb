// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-vmind/models"
)

type command struct {
	usage string
	run   func(ctx context.Context, a *App, args []string) (string, error)
}

var commands = map[string]command{
	"register":   {usage: "-email E -password P -username U [-name N]", run: runRegister},
	"login":      {usage: "-email E -password P", run: runLogin},
	"logout":     {usage: "", run: runLogout},
	"profile":    {usage: "", run: runProfile},
	"stats":      {usage: "", run: runStats},
	"tasks":      {usage: "[-roadmap ID] [-level ID] [-status pending|in_progress|completed]", run: runTasks},
	"progress":   {usage: "", run: runProgress},
	"complete":   {usage: "TASK_ID", run: taskAction("Task completed", (*App).complete)},
	"uncomplete": {usage: "TASK_ID", run: taskAction("Task marked as incomplete", (*App).uncomplete)},
	"start":      {usage: "TASK_ID", run: taskAction("Task started", (*App).start)},
	"roadmaps":   {usage: "", run: runRoadmaps},
	"enroll":     {usage: "ROADMAP_ID", run: runEnroll},
	"version":    {usage: "", run: runVersion},
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func runRegister(ctx context.Context, a *App, args []string) (string, error) {
	var req models.RegisterRequest

	fs := newFlagSet("register")
	fs.StringVar(&req.Email, "email", "", "account email")
	fs.StringVar(&req.Password, "password", "", "account password")
	fs.StringVar(&req.Username, "username", "", "unique username")
	fs.StringVar(&req.Name, "name", "", "display name")
	if err := fs.Parse(args); err != nil || req.Email == "" || req.Password == "" || req.Username == "" {
		return "", ErrUsage
	}
	if req.Name == "" {
		req.Name = req.Username
	}

	user, err := a.auth.Register(ctx, req)
	if err != nil {
		return "", err
	}

	return successStyle.Render("Registered and logged in as "+user.Email) + "\n", nil
}

func runLogin(ctx context.Context, a *App, args []string) (string, error) {
	var req models.LoginRequest

	fs := newFlagSet("login")
	fs.StringVar(&req.Email, "email", "", "account email")
	fs.StringVar(&req.Password, "password", "", "account password")
	if err := fs.Parse(args); err != nil || req.Email == "" || req.Password == "" {
		return "", ErrUsage
	}

	user, err := a.auth.Login(ctx, req)
	if err != nil {
		return "", err
	}

	return successStyle.Render("Logged in as "+user.Email) + "\n", nil
}

func runLogout(ctx context.Context, a *App, _ []string) (string, error) {
	if err := a.auth.Logout(ctx); err != nil {
		return "", err
	}

	return successStyle.Render("Logged out") + "\n", nil
}

func runProfile(ctx context.Context, a *App, _ []string) (string, error) {
	user, err := a.tracker.Profile(ctx)
	if err != nil {
		return "", err
	}

	return renderProfile(user), nil
}

func runStats(ctx context.Context, a *App, _ []string) (string, error) {
	stats, err := a.tracker.Stats(ctx)
	if err != nil {
		return "", err
	}

	return renderStats(stats), nil
}

func runTasks(ctx context.Context, a *App, args []string) (string, error) {
	var (
		filter models.TaskFilter
		status string
	)

	fs := newFlagSet("tasks")
	fs.Int64Var(&filter.RoadmapID, "roadmap", 0, "roadmap id")
	fs.Int64Var(&filter.LevelID, "level", 0, "level id")
	fs.StringVar(&status, "status", "", "task status")
	if err := fs.Parse(args); err != nil {
		return "", ErrUsage
	}
	filter.Status = models.TaskStatus(status)

	tasks, err := a.tracker.Tasks(ctx, filter)
	if err != nil {
		return "", err
	}

	return renderTasks(tasks), nil
}

func runProgress(ctx context.Context, a *App, _ []string) (string, error) {
	progress, err := a.tracker.Progress(ctx)
	if err != nil {
		return "", err
	}

	return renderProgress(progress), nil
}

func (a *App) complete(ctx context.Context, taskID int64) (models.ProgressResult, error) {
	return a.tracker.Complete(ctx, taskID)
}

func (a *App) uncomplete(ctx context.Context, taskID int64) (models.ProgressResult, error) {
	return a.tracker.Uncomplete(ctx, taskID)
}

func (a *App) start(ctx context.Context, taskID int64) (models.ProgressResult, error) {
	return a.tracker.Start(ctx, taskID)
}

func taskAction(done string, call func(a *App, ctx context.Context, taskID int64) (models.ProgressResult, error)) func(context.Context, *App, []string) (string, error) {
	return func(ctx context.Context, a *App, args []string) (string, error) {
		taskID, err := parseID(args)
		if err != nil {
			return "", err
		}

		result, err := call(a, ctx, taskID)
		if err != nil {
			return "", err
		}

		return renderProgressResult(done, result), nil
	}
}

func runRoadmaps(ctx context.Context, a *App, _ []string) (string, error) {
	roadmaps, err := a.tracker.Roadmaps(ctx)
	if err != nil {
		return "", err
	}

	return renderRoadmaps(roadmaps), nil
}

func runEnroll(ctx context.Context, a *App, args []string) (string, error) {
	roadmapID, err := parseID(args)
	if err != nil {
		return "", err
	}

	if err = a.tracker.Enroll(ctx, roadmapID); err != nil {
		return "", err
	}

	return successStyle.Render(fmt.Sprintf("Enrolled in roadmap #%d", roadmapID)) + "\n", nil
}

func runVersion(ctx context.Context, a *App, _ []string) (string, error) {
	serverVersion, err := a.tracker.ServerVersion(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("server version unavailable")
		serverVersion = "unavailable"
	}

	return renderBuildInfo(a.buildInfo, serverVersion), nil
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, ErrUsage
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrUsage
	}

	return id, nil
}
