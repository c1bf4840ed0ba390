package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
)

func newGame(t *testing.T, cells *game.Cells) *game.Game {
	t.Helper()
	g := game.New(config.Default())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 7})
	if cells != nil {
		g.Load(*cells)
	}
	return g
}

func TestRunWin(t *testing.T) {
	g := newGame(t, &game.Cells{{1024, 1024}})
	var out bytes.Buffer

	outcome, err := Run(context.Background(), strings.NewReader("L\n"), &out, g, Options{Intro: true})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !outcome.Win {
		t.Errorf("outcome = %+v, want win", outcome)
	}

	text := out.String()
	for _, want := range []string{welcome, "Turn 1", promptDirection, "2048", msgWin} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, msgLose) {
		t.Error("win should not print the lose message")
	}
}

func TestRunLose(t *testing.T) {
	g := newGame(t, &game.Cells{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 0},
	})
	var out bytes.Buffer

	outcome, err := Run(context.Background(), strings.NewReader("r\n"), &out, g, Options{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !outcome.Lose {
		t.Errorf("outcome = %+v, want lose", outcome)
	}
	if !strings.HasSuffix(out.String(), msgLose+"\n") {
		t.Errorf("output should end with %q:\n%s", msgLose, out.String())
	}
	if strings.Contains(out.String(), welcome) {
		t.Error("banner should only print with Intro")
	}
}

func TestRunRepromptsOnInvalidInput(t *testing.T) {
	g := newGame(t, &game.Cells{{1024, 1024}})
	var out bytes.Buffer

	_, err := Run(context.Background(), strings.NewReader("x\n\nnorth\nL\n"), &out, g, Options{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if n := strings.Count(out.String(), promptInvalid); n != 3 {
		t.Errorf("invalid prompt printed %d times, want 3", n)
	}
	if g.Turns() != 1 {
		t.Errorf("turns = %d, want 1", g.Turns())
	}
}

func TestRunCountsTurns(t *testing.T) {
	g := newGame(t, &game.Cells{{512, 512, 1024}})
	var out bytes.Buffer

	if _, err := Run(context.Background(), strings.NewReader("L\nL\n"), &out, g, Options{}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Turn 2") {
		t.Errorf("second turn header missing:\n%s", out.String())
	}
}

func TestRunEOF(t *testing.T) {
	g := newGame(t, nil)
	var out bytes.Buffer

	_, err := Run(context.Background(), strings.NewReader("U\n"), &out, g, Options{})
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Run with short input = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestRunCancelled(t *testing.T) {
	g := newGame(t, nil)
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, pr, io.Discard, g, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run with cancelled context = %v, want context.Canceled", err)
	}
}

func TestRunColor(t *testing.T) {
	g := newGame(t, &game.Cells{{1024, 1024}})
	var out bytes.Buffer

	if _, err := Run(context.Background(), strings.NewReader("L\n"), &out, g, Options{Color: true}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), core.ANSIReset) {
		t.Error("color output should contain ANSI codes")
	}
}
