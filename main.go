package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"movesched-backend/config"
	"movesched-backend/database"
	"movesched-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "movesched",
	Short: "Moving company scheduling backend",
	Long: `Movesched is the scheduling backend for a moving company: customers,
crews, crew members and appointments, with seeding and health tooling.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data for development and testing",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := connect(); err != nil {
			return err
		}
		fmt.Println("Seeding database with sample data...")
		result, err := database.SeedAll(config.DB)
		if err != nil {
			return fmt.Errorf("error seeding database: %w", err)
		}
		fmt.Printf("Database seeded successfully!\nCreated: %d customers, %d crew members, %d crews, %d appointments\n",
			result.Customers, result.CrewMembers, result.Crews, result.Appointments)
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all data from the database (use with caution!)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !skipConfirm && !confirm("This will delete ALL data from the database. Are you sure?") {
			fmt.Println("Operation cancelled.")
			return nil
		}
		if err := connect(); err != nil {
			return err
		}
		fmt.Println("Clearing database...")
		if err := database.ClearAll(config.DB); err != nil {
			return fmt.Errorf("error clearing database: %w", err)
		}
		fmt.Println("Database cleared successfully!")
		return nil
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Run comprehensive database health checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := connect(); err != nil {
			return err
		}
		report := database.GetDatabaseHealth(config.DB)

		if healthJSON {
			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
		} else {
			fmt.Printf("Overall Status: %s\n", strings.ToUpper(report.OverallStatus))
			fmt.Printf("Timestamp: %s\n\n", report.Timestamp.Format("2006-01-02 15:04:05"))
			fmt.Println("Detailed Results:")
			for _, name := range []string{"connection", "tables", "data_integrity", "performance", "activity"} {
				result := report.Checks[name]
				fmt.Printf("  %s: %s - %s\n", strings.ReplaceAll(name, "_", " "), result.Status, result.Message)
			}
			summary := report.Summary
			fmt.Printf("\nSummary: %d healthy, %d warnings, %d unhealthy\n",
				summary.Healthy, summary.Warnings, summary.Unhealthy)
		}

		if report.OverallStatus == database.StatusUnhealthy {
			return fmt.Errorf("database is unhealthy")
		}
		return nil
	},
}

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Initialize the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := connect(); err != nil {
			return err
		}
		fmt.Println("Initializing database...")
		if err := database.Migrate(config.DB); err != nil {
			return fmt.Errorf("error initializing database: %w", err)
		}
		fmt.Println("Database initialized successfully!")
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the database (clear and re-initialize)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !skipConfirm && !confirm("This will reset the entire database. Are you sure?") {
			fmt.Println("Operation cancelled.")
			return nil
		}
		if err := connect(); err != nil {
			return err
		}
		fmt.Println("Resetting database...")
		if err := database.ClearAll(config.DB); err != nil {
			return fmt.Errorf("error clearing database: %w", err)
		}
		fmt.Println("Data cleared")
		if err := database.Migrate(config.DB); err != nil {
			return fmt.Errorf("error re-creating tables: %w", err)
		}
		fmt.Println("Tables re-created")
		fmt.Println("Database reset successfully!")
		return nil
	},
}

var (
	skipConfirm bool
	healthJSON  bool
)

func init() {
	clearCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "skip the confirmation prompt")
	resetCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "skip the confirmation prompt")
	healthCmd.Flags().BoolVar(&healthJSON, "json", false, "output the report as JSON")

	rootCmd.AddCommand(serveCmd, seedCmd, clearCmd, healthCmd, initDBCmd, resetCmd)
}

func connect() error {
	return config.ConnectDB()
}

func runServe() error {
	if err := connect(); err != nil {
		return err
	}
	if err := database.Migrate(config.DB); err != nil {
		return err
	}

	port := viper.GetString("PORT")
	r := routes.SetupRouter()
	printRoutes(r)
	return r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
