package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/handlers"
	"github.com/Zachkp/portfolio/internal/repository"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	methodStyles = map[string]lipgloss.Style{
		"GET":    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Width(7),
		"POST":   lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Width(7),
		"PUT":    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Width(7),
		"DELETE": lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Width(7),
	}
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List every HTTP route",
	RunE: func(cmd *cobra.Command, args []string) error {
		// routes are registered without touching the database
		srv, err := handlers.New(handlers.Options{
			Config: cfg,
			Repo:   &repository.Repository{},
			Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		})
		if err != nil {
			return err
		}

		fmt.Println(titleStyle.Render("Routes"))
		for _, r := range srv.Engine().Routes() {
			style, ok := methodStyles[r.Method]
			if !ok {
				style = valueStyle.Width(7)
			}
			fmt.Printf("  %s %s\n", style.Render(r.Method), valueStyle.Render(r.Path))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
