package main

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/poi2/cargo-recent/internal/workspace"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment for common issues",
		Args:  cobra.NoArgs,
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	ok := true

	// Check git.
	fmt.Print("Checking git... ")
	gitPath, err := exec.LookPath("git")
	if err != nil {
		fmt.Println("NOT FOUND")
		fmt.Println("  git is required. Install it from https://git-scm.com/")
		ok = false
	} else {
		fmt.Printf("found at %s\n", gitPath)
	}

	// Check git version.
	if err == nil {
		fmt.Print("Checking git version... ")
		out, verr := exec.Command("git", "version").Output()
		if verr != nil {
			fmt.Println("ERROR")
			ok = false
		} else {
			fmt.Println(strings.TrimSpace(string(out)))
		}
	}

	// Check cargo. Missing cargo only breaks forwarded commands, path/show
	// still work, so this is a warning rather than a failure.
	fmt.Print("Checking cargo... ")
	if cargoPath, cerr := exec.LookPath("cargo"); cerr != nil {
		fmt.Println("NOT FOUND (forwarded commands will fail)")
	} else {
		fmt.Printf("found at %s\n", cargoPath)
	}

	// Check the repository and the selection pipeline.
	root, _ := cmd.Flags().GetString("root")
	fmt.Print("Checking repository... ")
	ctx, loadErr := workspace.Load(root)
	if loadErr != nil {
		fmt.Println("NOT A REPOSITORY")
		ok = false
	} else {
		fmt.Println(ctx.Root)
		fmt.Print("Checking changed crates... ")
		cands, cerr := ctx.Changed()
		if cerr != nil {
			fmt.Printf("ERROR: %v\n", cerr)
			ok = false
		} else {
			fmt.Printf("%d changed build input(s)\n", len(cands))
		}
	}

	if ok {
		fmt.Println("\nAll checks passed.")
		return nil
	}
	fmt.Println("\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}
