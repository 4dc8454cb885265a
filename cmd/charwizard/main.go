// Package main is the entry point for the character wizard CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "charwizard",
	Short: "Guided character builder",
	Long:  `charwizard walks a player through building a level-1 character: race, class, ability scores, spells, skills and equipment, with draft save and resume.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(rosterCmd)
}
