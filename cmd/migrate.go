package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close(db)

		fmt.Println(titleStyle.Render("Database migrated"))
		fmt.Printf("  %s %s\n", labelStyle.Render("Dialect:"), valueStyle.Render(db.Dialector.Name()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
