package main

import (
	"testing"

	"github.com/charmbracelet/ssh"
)

func TestWindowSize(t *testing.T) {
	ws := newWindowSize(ssh.Window{Width: 80, Height: 24})
	if w, h, err := ws.get(); err != nil || w != 80 || h != 24 {
		t.Fatalf("get = %d, %d, %v; want 80, 24", w, h, err)
	}

	ws.set(ssh.Window{Width: 213, Height: 57})
	if w, h, _ := ws.get(); w != 213 || h != 57 {
		t.Fatalf("after resize get = %d, %d; want 213, 57", w, h)
	}
}
