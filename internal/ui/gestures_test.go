package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
)

func touchAt(x, y float32) *mobile.TouchEvent {
	return &mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestGestureHandler(t *testing.T) {
	tests := []struct {
		name     string
		from     fyne.Position
		to       fyne.Position
		held     time.Duration
		expected GestureType
	}{
		{"tap", fyne.NewPos(10, 10), fyne.NewPos(12, 11), 50 * time.Millisecond, GestureTap},
		{"long press", fyne.NewPos(10, 10), fyne.NewPos(10, 10), 700 * time.Millisecond, GestureLongPress},
		{"swipe left", fyne.NewPos(200, 10), fyne.NewPos(20, 15), 100 * time.Millisecond, GestureSwipeLeft},
		{"swipe right", fyne.NewPos(20, 10), fyne.NewPos(200, 15), 100 * time.Millisecond, GestureSwipeRight},
		{"swipe down", fyne.NewPos(20, 10), fyne.NewPos(25, 200), 100 * time.Millisecond, GestureSwipeDown},
		{"swipe up", fyne.NewPos(20, 200), fyne.NewPos(25, 10), 100 * time.Millisecond, GestureSwipeUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got []GestureType
			handler := NewGestureHandler(func(g GestureType) { got = append(got, g) })

			clock := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
			handler.now = func() time.Time { return clock }

			handler.TouchDown(touchAt(tc.from.X, tc.from.Y))
			clock = clock.Add(tc.held)
			handler.TouchUp(touchAt(tc.to.X, tc.to.Y))

			if len(got) != 1 || got[0] != tc.expected {
				t.Errorf("Expected gesture %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestGestureHandler_CancelSuppressesGesture(t *testing.T) {
	fired := false
	handler := NewGestureHandler(func(GestureType) { fired = true })

	handler.TouchDown(touchAt(0, 0))
	handler.TouchCancel(touchAt(0, 0))
	handler.TouchUp(touchAt(100, 0))

	if fired {
		t.Error("No gesture expected after TouchCancel")
	}
}
