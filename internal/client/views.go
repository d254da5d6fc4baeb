// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vmind/models"
	"github.com/charmbracelet/lipgloss"
)

func renderPage(title, body string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		boxStyle.Render(strings.TrimRight(body, "\n")),
	) + "\n"
}

func renderField(label, value string) string {
	return labelStyle.Render(label) + value + "\n"
}

func renderBar(percent int) string {
	percent = max(0, min(100, percent))
	filled := percent * barWidth / 100

	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled) + fmt.Sprintf(" %3d%%", percent)
}

func renderStatus(status string) string {
	style, ok := taskStatusStyles[status]
	if !ok {
		return status
	}
	return style.Render(status)
}

func renderProfile(user models.User) string {
	var b strings.Builder
	b.WriteString(renderField("Name", user.Name))
	b.WriteString(renderField("Email", user.Email))
	b.WriteString(renderField("Username", user.Username))
	b.WriteString(renderField("Role", string(user.Role)))
	b.WriteString(renderField("Level", fmt.Sprintf("%d (%s)", user.CurrentLevel, models.LevelForXP(user.CurrentXP).Title)))
	b.WriteString(renderField("XP", fmt.Sprintf("%d", user.CurrentXP)))

	return renderPage("PROFILE", b.String())
}

func renderStats(stats models.UserStats) string {
	var b strings.Builder
	b.WriteString(renderField("User", stats.User.Name))
	b.WriteString(renderField("Level", fmt.Sprintf("%d %s", stats.User.CurrentLevel, stats.User.LevelTitle)))
	b.WriteString(renderField("XP", fmt.Sprintf("%d", stats.TotalXP)))
	b.WriteString(renderField("Progress", renderBar(stats.CompletionPercentage)))
	b.WriteString(renderField("Tasks", fmt.Sprintf("%d/%d completed, %d in progress, %d pending",
		stats.Tasks.Completed, stats.Tasks.Total, stats.Tasks.InProgress, stats.Tasks.Pending)))
	b.WriteString(renderField("Streak", fmt.Sprintf("%d days (best %d)",
		stats.Streak.CurrentStreakDays, stats.Streak.LongestStreakDays)))

	return renderPage("STATS", b.String())
}

func renderTasks(tasks []models.Task) string {
	if len(tasks) == 0 {
		return renderPage("TASKS", helpStyle.Render("no tasks"))
	}

	var b strings.Builder
	for _, task := range tasks {
		fmt.Fprintf(&b, "#%-5d %-40s %4d XP  %s\n", task.TaskID, task.Title, task.XPReward, renderStatus(string(task.Status)))
	}

	return renderPage("TASKS", b.String())
}

func renderProgress(progress []models.RoadmapProgress) string {
	if len(progress) == 0 {
		return renderPage("PROGRESS", helpStyle.Render("not enrolled in any roadmap"))
	}

	var b strings.Builder
	for _, p := range progress {
		fmt.Fprintf(&b, "%s\n", titleStyle.Render(p.Title))
		b.WriteString(renderField("  Levels", fmt.Sprintf("%d/%d", p.CompletedLevels, p.TotalLevels)))
		b.WriteString(renderField("  Tasks", fmt.Sprintf("%d/%d", p.CompletedTasks, p.TotalTasks)))
		b.WriteString(renderField("  XP", fmt.Sprintf("%d", p.EarnedXP)))
		b.WriteString(renderField("  Done", renderBar(p.CompletionPercentage)))
	}

	return renderPage("PROGRESS", b.String())
}

func renderRoadmaps(roadmaps []models.Roadmap) string {
	if len(roadmaps) == 0 {
		return renderPage("ROADMAPS", helpStyle.Render("no roadmaps"))
	}

	var b strings.Builder
	for _, r := range roadmaps {
		fmt.Fprintf(&b, "#%-3d %-32s %-12s %d levels, %d tasks\n", r.RoadmapID, r.Title, r.Difficulty, r.LevelCount, r.TaskCount)
	}

	return renderPage("ROADMAPS", b.String())
}

func renderProgressResult(action string, result models.ProgressResult) string {
	var b strings.Builder

	if result.AlreadyApplied {
		b.WriteString(helpStyle.Render("nothing changed") + "\n")
	} else {
		b.WriteString(successStyle.Render(action) + "\n")
	}
	b.WriteString(renderField("Task", fmt.Sprintf("#%d %s", result.TaskID, renderStatus(string(result.TaskStatus)))))
	b.WriteString(renderField("Level", fmt.Sprintf("#%d %s", result.LevelID, result.LevelStatus)))
	if result.UnlockedLevel != nil {
		b.WriteString(renderField("Unlocked", fmt.Sprintf("level #%d", *result.UnlockedLevel)))
	}
	b.WriteString(renderField("XP", fmt.Sprintf("%+d (now %d, level %d)", result.XPDelta, result.CurrentXP, result.CurrentLevel)))

	return renderPage("TASK", b.String())
}

func renderBuildInfo(info models.AppBuildInfo, serverVersion string) string {
	var b strings.Builder
	b.WriteString(renderField("Client", info.BuildVersion()))
	b.WriteString(renderField("Build date", info.BuildDate()))
	b.WriteString(renderField("Commit", info.BuildCommit()))
	b.WriteString(renderField("Server", serverVersion))

	return renderPage("V-MIND", b.String())
}

func renderError(err error) string {
	return errorStyle.Render("error: ") + err.Error() + "\n"
}
