// Package cmd implements animctl's command-line surface: a small manual
// argument parser plus a command registry, rather than a flag-parsing
// library.
package cmd

import (
	"fmt"
	"os"
)

// Command describes one animctl subcommand.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var commands = map[string]*Command{}

var rootCmd = &Command{
	Name:  "animctl",
	Short: "Drive the timeline engine headlessly",
	Long:  "animctl loads a declarative scene and a named instruction script and drives a Player headlessly, printing committed frames.",
	Usage: "animctl <command> [arguments]",
}

// RegisterCommand adds cmd to the registry. Subcommand packages call this
// from an init func.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
}

// Execute parses os.Args and dispatches to the matching subcommand.
func Execute() error {
	args := os.Args[1:]

	if len(args) == 0 {
		printHelp()
		return nil
	}

	cmdName := args[0]
	cmdArgs := args[1:]

	if cmdName == "-h" || cmdName == "--help" || cmdName == "help" {
		printHelp()
		return nil
	}

	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "animctl: unknown command %q\n\n", cmdName)
		printHelp()
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	for _, a := range cmdArgs {
		if a == "-h" || a == "--help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

func printHelp() {
	fmt.Println(rootCmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", rootCmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, c := range commands {
		fmt.Printf("  %-8s %s\n", c.Name, c.Short)
	}
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
