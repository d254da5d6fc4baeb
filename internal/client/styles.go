// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	labelStyle   = lipgloss.NewStyle().Width(14)
)

var taskStatusStyles = map[string]lipgloss.Style{
	"completed":   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	"in_progress": lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	"pending":     lipgloss.NewStyle().Faint(true),
}

const barWidth = 20
