package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches to the requested command and returns an exit code.
func run(args []string) int {
	// Local .env overrides (ROD_BROWSER_BIN, CVSNAP_*) before anything
	// reads the environment. A missing file is the normal case.
	_ = godotenv.Load()

	env := DefaultEnv()

	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[0] {
	case "snapshot":
		return runSnapshotCmd(args[1:], env)
	case "doctor":
		return runDoctorCmd(args[1:], env)
	case "version":
		fmt.Fprintf(env.Stdout, "cvsnap %s\n", Version)
		return ExitSuccess
	case "help", "--help", "-h":
		printHelpCmd(args[1:], env)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// runSnapshotCmd parses flags and executes the snapshot command.
func runSnapshotCmd(args []string, env *Environment) int {
	flags, err := parseSnapshotFlags(args)
	if err != nil {
		return ExitUsage
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.common.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, a ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", a...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	if err := runSnapshot(context.Background(), flags, newService, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// printHelpCmd prints help for a specific command, or general usage.
func printHelpCmd(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}
	switch args[0] {
	case "snapshot":
		printSnapshotUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	default:
		printUsage(env.Stdout)
	}
}
