package view

import (
	"context"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/aerooffers/internal/catalog"
)

const dbTimeout = 5 * time.Second

// FormatTime formats a time.Time into YYYY-MM-DD HH:MM.
func FormatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// FormatCategory renders an empty category as a dash.
func FormatCategory(c catalog.Category) string {
	return orDash(string(c))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func errorStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(s)
}

func successStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render(s)
}
