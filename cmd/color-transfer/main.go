package main

import (
	"fmt"
	"log"
	"os"

	"github.com/walkoncross/color-transfer/internal/session"
	"github.com/walkoncross/color-transfer/internal/transfer"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: color-transfer reference-image target-image [output-image]

Reshapes the target image's per-channel color statistics to match the
reference image, then reads interactive commands from stdin (type "help").
If output-image is supplied, it is overwritten with the current result of
the transfer when the session ends.
`)
}

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("color-transfer %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			usage()
			return
		}
	}

	if len(os.Args) < 3 || len(os.Args) > 4 {
		usage()
		os.Exit(1)
	}

	// Command responses go to stdout; diagnostics to stderr.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	logLevel := os.Getenv("COLOR_TRANSFER_LOG_LEVEL")
	if logLevel == "debug" {
		log.Printf("color-transfer v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	refPath, targetPath := os.Args[1], os.Args[2]
	outPath := ""
	if len(os.Args) == 4 {
		outPath = os.Args[3]
	}

	ref, err := session.LoadImage(refPath)
	if err != nil {
		log.Fatalf("reference image: %v", err)
	}
	target, err := session.LoadImage(targetPath)
	if err != nil {
		log.Fatalf("target image: %v", err)
	}
	if logLevel == "debug" {
		log.Printf("reference %dx%d, target %dx%d", ref.Width, ref.Height, target.Width, target.Height)
	}

	ctrl, err := transfer.NewController(ref, target)
	if err != nil {
		log.Fatalf("setup: %v", err)
	}

	// Initial space matches the original tool: Lab, all rates at 100%.
	if err := ctrl.SetMode(transfer.Lab); err != nil {
		log.Fatalf("initial transfer: %v", err)
	}

	sess := session.New(ctrl, os.Stdout)
	if err := sess.Run(os.Stdin); err != nil {
		log.Fatalf("session error: %v", err)
	}

	if outPath != "" {
		if err := session.SaveImage(ctrl.Output(), outPath); err != nil {
			log.Fatalf("save: %v", err)
		}
	}
}
