// Package console runs 2048 as a line-oriented turn loop on plain streams.
// It is used for pipes, dumb terminals and the --plain play mode.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vovakirdan/tui-2048/internal/game"
)

const (
	welcome         = "Welcome to 2048!"
	goal            = "The goal of this game is to combine numbers to make 2048 by sliding tiles on the board."
	promptDirection = "Choose a direction (U, D, L, or R)."
	promptInvalid   = "Invalid direction typed. Please try again (U, D, L, or R)."
	msgWin          = "You win!"
	msgLose         = "You lose!"
)

// Options controls the console loop.
type Options struct {
	Color bool // Wrap tiles in ANSI colors
	Intro bool // Print the welcome banner before the first turn
}

// Run plays g until it wins or loses, reading one direction per line from in.
// g must already be Reset. Input ending before the game does returns a
// wrapped io.ErrUnexpectedEOF; a cancelled ctx returns ctx.Err().
func Run(ctx context.Context, in io.Reader, out io.Writer, g *game.Game, opts Options) (game.Outcome, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := readLines(ctx, in)

	if opts.Intro {
		fmt.Fprintln(out, welcome)
		fmt.Fprintln(out, goal)
	}

	for !g.Outcome().Terminal() {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Turn %d\n", g.Turns()+1)
		fmt.Fprintln(out, game.Text(g.Cells(), opts.Color))
		fmt.Fprintln(out, promptDirection)

		dir, err := readDirection(ctx, lines, out)
		if err != nil {
			return g.Outcome(), err
		}

		if _, err := g.Turn(dir); err != nil && !errors.Is(err, game.ErrGameOver) {
			return g.Outcome(), fmt.Errorf("console: turn failed: %w", err)
		}
	}

	fmt.Fprintln(out, game.Text(g.Cells(), opts.Color))

	outcome := g.Outcome()
	switch {
	case outcome.Lose:
		fmt.Fprintln(out, msgLose)
	case outcome.Win:
		fmt.Fprintln(out, msgWin)
	}
	return outcome, nil
}

// readDirection consumes lines until one parses as a direction.
func readDirection(ctx context.Context, lines <-chan line, out io.Writer) (game.Direction, error) {
	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return 0, fmt.Errorf("console: input closed before the game ended: %w", io.ErrUnexpectedEOF)
			}
			if l.err != nil {
				return 0, fmt.Errorf("console: read input: %w", l.err)
			}

			dir, err := game.ParseDirection(l.text)
			if err == nil {
				return dir, nil
			}
			fmt.Fprintln(out, promptInvalid)
		}
	}
}

type line struct {
	text string
	err  error
}

// readLines scans in on its own goroutine so a blocked read never holds up
// cancellation. The channel is closed at end of input.
func readLines(ctx context.Context, in io.Reader) <-chan line {
	ch := make(chan line)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case ch <- line{text: sc.Text()}:
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			select {
			case ch <- line{err: err}:
			case <-ctx.Done():
			}
		}
	}()
	return ch
}
