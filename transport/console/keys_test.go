package console

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/wricardo/slidepuzzle/game/engine"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		key     rune
		want    Command
		wantDir engine.Direction
		valid   bool
		moves   bool
	}{
		{'w', CommandUp, engine.Up, true, true},
		{'a', CommandLeft, engine.Left, true, true},
		{'s', CommandDown, engine.Down, true, true},
		{'d', CommandRight, engine.Right, true, true},
		{'q', CommandQuit, 0, true, false},
		{'W', 0, 0, false, false},
		{'x', 0, 0, false, false},
		{'1', 0, 0, false, false},
		{' ', 0, 0, false, false},
		{'\n', 0, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			cmd, ok := ParseKey(tt.key)
			if ok != tt.valid {
				t.Fatalf("ParseKey(%q) valid = %v, want %v", tt.key, ok, tt.valid)
			}
			if !ok {
				return
			}
			if cmd != tt.want {
				t.Errorf("ParseKey(%q) = %s, want %s", tt.key, cmd, tt.want)
			}

			d, moves := cmd.Direction()
			if moves != tt.moves {
				t.Errorf("%s: expected direction presence %v", cmd, tt.moves)
			}
			if moves && d != tt.wantDir {
				t.Errorf("%s: expected direction %s, got %s", cmd, tt.wantDir, d)
			}
		})
	}
}

func TestCommand_String(t *testing.T) {
	if CommandQuit.String() != "quit" || CommandLeft.String() != "left" {
		t.Errorf("Unexpected command names %s %s", CommandQuit, CommandLeft)
	}
	if Command(42).String() != "unknown" {
		t.Errorf("Expected unknown, got %s", Command(42))
	}
}

func TestKeyMap_Help(t *testing.T) {
	help := Keys.Help()
	for _, want := range []string{"w up", "a left", "s down", "d right", "q quit"} {
		if !strings.Contains(help, want) {
			t.Errorf("Help %q missing %q", help, want)
		}
	}

	km := Keys
	km.Quit.SetEnabled(false)
	if strings.Contains(km.Help(), "quit") {
		t.Error("Disabled bindings should not show in help")
	}
	if _, ok := km.Parse('q'); ok {
		t.Error("Disabled bindings should not match")
	}
}

func TestKeyReader(t *testing.T) {
	kr, err := NewKeyReader(strings.NewReader("wa\x03d"))
	if err != nil {
		t.Fatalf("NewKeyReader failed: %v", err)
	}
	defer kr.Close()

	if kr.Raw() {
		t.Error("A plain reader must not be put in raw mode")
	}

	for _, want := range []rune{'w', 'a'} {
		got, err := kr.ReadKey()
		if err != nil {
			t.Fatalf("ReadKey failed: %v", err)
		}
		if got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}

	if _, err := kr.ReadKey(); !errors.Is(err, io.EOF) {
		t.Errorf("Expected Ctrl-C to end input, got %v", err)
	}
}

func TestKeyReader_EndOfInput(t *testing.T) {
	kr, _ := NewKeyReader(strings.NewReader(""))
	if _, err := kr.ReadKey(); !errors.Is(err, io.EOF) {
		t.Errorf("Expected io.EOF, got %v", err)
	}
	if err := kr.Close(); err != nil {
		t.Errorf("Close on a plain reader should be a no-op, got %v", err)
	}
}
