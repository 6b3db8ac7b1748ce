package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/database"
	"github.com/Zachkp/portfolio/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed [file]",
	Short: "Load portfolio content from a YAML file",
	Long: `Load categories, skills, experience, education, certificates, the
projects overview and projects from a YAML file. Tables that already hold
rows are left untouched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "data/seed.yaml"
		if len(args) == 1 {
			path = args[0]
		}

		f, err := seed.Load(path)
		if err != nil {
			return err
		}

		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close(db)

		sum, err := seed.Apply(cmd.Context(), db, f)
		if err != nil {
			return err
		}

		fmt.Println(titleStyle.Render("Seeded " + path))
		for _, row := range []struct {
			label string
			n     int
		}{
			{"Skill categories", sum.Categories},
			{"Skills", sum.Skills},
			{"Experience", sum.Experiences},
			{"Education", sum.Educations},
			{"Certificates", sum.Certificates},
			{"Overview", sum.Overviews},
			{"Projects", sum.Projects},
		} {
			fmt.Printf("  %s %s\n", labelStyle.Render(row.label+":"), valueStyle.Render(fmt.Sprint(row.n)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
