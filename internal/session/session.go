// Package session provides the interactive command surface over the
// transfer controller: a line-oriented loop that reads mode and rate
// commands, reports state, and saves results.
package session

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/walkoncross/color-transfer/internal/transfer"
)

// Session wires a command stream to a transfer controller.
//
// Commands arrive one per line; each is handled to completion before the
// next is read, so the controller is only ever driven from this loop.
type Session struct {
	ctrl *transfer.Controller
	out  io.Writer
}

// New creates a session that writes responses to out.
func New(ctrl *transfer.Controller, out io.Writer) *Session {
	return &Session{ctrl: ctrl, out: out}
}

// Run reads commands from in until "quit" or EOF.
func (s *Session) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		quit, err := s.handleCommand(line)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}
	return nil
}

// handleCommand dispatches one command line. The returned bool reports
// whether the session should end.
func (s *Session) handleCommand(line string) (bool, error) {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "mode":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: mode <lab|rgb|hsv|xyz>")
		}
		return false, s.handleMode(args[0])
	case "rate":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: rate <channel 0-2> <percent 0-100>")
		}
		return false, s.handleRate(args[0], args[1])
	case "rates":
		return false, s.handleRates()
	case "stats":
		return false, s.handleStats()
	case "save":
		if len(args) > 1 {
			return false, fmt.Errorf("usage: save <path>")
		}
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		return false, s.handleSave(path)
	case "help":
		s.printHelp()
		return false, nil
	case "quit", "exit":
		return true, nil
	}
	return false, fmt.Errorf("unknown command %q (try help)", cmd)
}

func (s *Session) handleMode(arg string) error {
	space, err := transfer.ParseSpace(arg)
	if err != nil {
		return err
	}
	if err := s.ctrl.SetMode(space); err != nil {
		return err
	}
	names := s.ctrl.ChannelNames()
	fmt.Fprintf(s.out, "mode %s (%s / %s / %s)\n", space, names[0], names[1], names[2])
	return nil
}

func (s *Session) handleRate(channelArg, percentArg string) error {
	channel, err := strconv.Atoi(channelArg)
	if err != nil {
		return fmt.Errorf("channel must be an integer 0-2: %w", err)
	}
	percent, err := strconv.Atoi(percentArg)
	if err != nil {
		return fmt.Errorf("percent must be an integer 0-100: %w", err)
	}
	if err := s.ctrl.SetRate(channel, percent); err != nil {
		return err
	}
	return s.handleRates()
}

func (s *Session) handleRates() error {
	space, ok := s.ctrl.Space()
	if !ok {
		return fmt.Errorf("no color space selected")
	}
	names := s.ctrl.ChannelNames()
	percents := s.ctrl.RatePercents()
	fmt.Fprintf(s.out, "mode %s:", space)
	for i := 0; i < 3; i++ {
		fmt.Fprintf(s.out, " %s=%d%%", names[i], percents[i])
	}
	fmt.Fprintln(s.out)
	return nil
}

func (s *Session) handleStats() error {
	ref, target, err := s.ctrl.Stats()
	if err != nil {
		return err
	}
	names := s.ctrl.ChannelNames()
	fmt.Fprintf(s.out, "log-domain statistics (mean / stddev):\n")
	for i := 0; i < 3; i++ {
		fmt.Fprintf(s.out, "  %-10s reference %8.4f / %-8.4f target %8.4f / %-8.4f\n",
			names[i], ref.Mean[i], ref.StdDev[i], target.Mean[i], target.StdDev[i])
	}
	return nil
}

func (s *Session) handleSave(path string) error {
	if path == "" {
		return fmt.Errorf("usage: save <path>")
	}
	out := s.ctrl.Output()
	if out == nil {
		return fmt.Errorf("nothing computed yet")
	}
	if err := SaveImage(out, path); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "saved %s\n", path)
	return nil
}

func (s *Session) printHelp() {
	fmt.Fprint(s.out, `commands:
  mode <lab|rgb|hsv|xyz>       switch working color space (resets rates to 100%)
  rate <channel> <percent>     set one channel's blend rate (channel 0-2)
  rates                        show channel names and current rates
  stats                        show per-channel log-domain statistics
  save <path>                  write the current output image
  quit                         exit (output path given on the command line is saved)
`)
}
