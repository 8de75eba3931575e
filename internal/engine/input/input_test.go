package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  Event
		ok    bool
	}{
		{
			name:  "quit",
			event: &sdl.QuitEvent{Type: sdl.QUIT},
			want:  Event{Type: EventQuit},
			ok:    true,
		},
		{
			name:  "resize",
			event: &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED, Data1: 1024, Data2: 768},
			want:  Event{Type: EventWindowResize, Width: 1024, Height: 768},
			ok:    true,
		},
		{
			name:  "window moved is ignored",
			event: &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_MOVED},
			ok:    false,
		},
		{
			name:  "key down",
			event: &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_LEFT}},
			want:  Event{Type: EventKeyDown, Key: sdl.SCANCODE_LEFT},
			ok:    true,
		},
		{
			name:  "key repeat",
			event: &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_W}},
			want:  Event{Type: EventKeyDown, Key: sdl.SCANCODE_W, Repeat: true},
			ok:    true,
		},
		{
			name:  "key up",
			event: &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_SPACE}},
			want:  Event{Type: EventKeyUp, Key: sdl.SCANCODE_SPACE},
			ok:    true,
		},
		{
			name:  "wheel",
			event: &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 2},
			want:  Event{Type: EventMouseWheel, Wheel: 2},
			ok:    true,
		},
		{
			name:  "flipped wheel",
			event: &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 1, Direction: sdl.MOUSEWHEEL_FLIPPED},
			want:  Event{Type: EventMouseWheel, Wheel: -1},
			ok:    true,
		},
		{
			name:  "horizontal wheel is ignored",
			event: &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, X: 3},
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.event)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("translate = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIsKeyPressed(t *testing.T) {
	i := New()
	i.events = append(i.events,
		Event{Type: EventKeyUp, Key: sdl.SCANCODE_A},
		Event{Type: EventKeyDown, Key: sdl.SCANCODE_D},
	)

	if !i.IsKeyPressed(sdl.SCANCODE_D) {
		t.Error("expected D to be pressed")
	}
	if i.IsKeyPressed(sdl.SCANCODE_A) {
		t.Error("key up should not count as pressed")
	}
	if len(i.Events()) != 2 {
		t.Errorf("Events() = %d, want 2", len(i.Events()))
	}
}
