package hostio

import (
	"os"
	"testing"
)

func TestMockTerminal_ReadByteReplaysInput(t *testing.T) {
	t.Parallel()

	term := NewMockTransport("ab\r")
	for _, want := range []byte("ab\r") {
		got, err := term.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte: %v", err)
		}
		if got != want {
			t.Errorf("ReadByte = %q, want %q", got, want)
		}
	}

	if _, err := term.ReadByte(); err == nil {
		t.Error("expected io.EOF once input is exhausted")
	}
}

func TestMockTerminal_WriteIsRecovered(t *testing.T) {
	t.Parallel()

	m := NewMockTransport("").(*mockTransport)
	if err := m.SetRaw(); err != nil {
		t.Fatalf("SetRaw: %v", err)
	}
	if !m.rawMode {
		t.Error("expected rawMode true after SetRaw")
	}

	if _, err := m.Write([]byte("hello")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := m.Output(); got != "hello" {
		t.Errorf("Output() = %q, want %q", got, "hello")
	}

	if err := m.Restore(); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if m.rawMode {
		t.Error("expected rawMode false after Restore")
	}
}

func TestRealTerminal_Open(t *testing.T) {
	if os.Getenv("GITHUB_ACTIONS") == "" {
		t.Skip("skipping real terminal test outside CI")
	}

	term, err := Open()
	if err != nil {
		t.Skipf("cannot open a real terminal in this environment: %v", err)
	}
	defer term.Close()

	if err := term.SetRaw(); err != nil {
		t.Errorf("SetRaw: %v", err)
	}
	if err := term.Restore(); err != nil {
		t.Errorf("Restore: %v", err)
	}
}
