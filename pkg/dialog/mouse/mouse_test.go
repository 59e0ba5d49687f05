package mouse

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}

	cases := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},  // Top-left corner
		{29, 10, true},  // Top-right edge (exclusive width)
		{10, 19, true},  // Bottom-left edge (exclusive height)
		{15, 15, true},  // Center
		{9, 10, false},  // Just left
		{30, 10, false}, // Just right (exclusive)
		{10, 9, false},  // Just above
		{10, 20, false}, // Just below (exclusive)
	}

	for _, tc := range cases {
		got := r.Contains(tc.x, tc.y)
		if got != tc.expected {
			t.Errorf("Rect(%+v).Contains(%d, %d) = %v, want %v", r, tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestHitMapPriority(t *testing.T) {
	hm := NewHitMap()

	hm.AddRect("backdrop", 0, 0, 100, 100, nil)
	hm.AddRect("dialog", 10, 10, 80, 80, nil)
	hm.AddRect("close", 80, 11, 3, 1, nil)

	tests := []struct {
		x, y int
		want string
	}{
		{81, 11, "close"},
		{15, 15, "dialog"},
		{5, 5, "backdrop"},
	}
	for _, tt := range tests {
		r := hm.Test(tt.x, tt.y)
		if r == nil || r.ID != tt.want {
			t.Errorf("Test(%d, %d) = %v, want %s", tt.x, tt.y, r, tt.want)
		}
	}

	if r := hm.Test(200, 200); r != nil {
		t.Errorf("expected miss, got %v", r)
	}
}

func TestHitMapClear(t *testing.T) {
	hm := NewHitMap()
	hm.AddRect("a", 0, 0, 5, 5, nil)
	hm.AddRect("b", 5, 0, 5, 5, nil)

	if len(hm.Regions()) != 2 {
		t.Errorf("expected 2 regions, got %d", len(hm.Regions()))
	}

	hm.Clear()

	if len(hm.Regions()) != 0 {
		t.Errorf("expected 0 regions after clear, got %d", len(hm.Regions()))
	}
}

func TestHandlerDoubleClick(t *testing.T) {
	h := NewHandler()
	clock := time.Unix(0, 0)
	h.now = func() time.Time { return clock }
	h.HitMap.AddRect("close", 10, 10, 3, 1, nil)

	if res := h.HandleClick(11, 10); res.Region == nil || res.IsDoubleClick {
		t.Fatalf("first click = %+v", res)
	}
	clock = clock.Add(100 * time.Millisecond)
	if res := h.HandleClick(11, 10); !res.IsDoubleClick {
		t.Error("second quick click should be double-click")
	}
	clock = clock.Add(100 * time.Millisecond)
	if res := h.HandleClick(11, 10); res.IsDoubleClick {
		t.Error("third click should not be double-click")
	}
	clock = clock.Add(time.Second)
	if res := h.HandleClick(11, 10); res.IsDoubleClick {
		t.Error("slow click should not be double-click")
	}
}

func TestHandleMouseActions(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.MouseMsg
		want ActionType
		hit  bool
	}{
		{
			name: "left press",
			msg:  tea.MouseMsg{X: 11, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			want: ActionClick,
			hit:  true,
		},
		{
			name: "motion",
			msg:  tea.MouseMsg{X: 12, Y: 10, Action: tea.MouseActionMotion},
			want: ActionHover,
			hit:  true,
		},
		{
			name: "wheel up",
			msg:  tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp},
			want: ActionScrollUp,
		},
		{
			name: "wheel down",
			msg:  tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown},
			want: ActionScrollDown,
		},
		{
			name: "release",
			msg:  tea.MouseMsg{X: 11, Y: 10, Action: tea.MouseActionRelease},
			want: ActionNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler()
			h.HitMap.AddRect("close", 10, 10, 3, 1, nil)

			action := h.HandleMouse(tt.msg)
			if action.Type != tt.want {
				t.Errorf("Type = %v, want %v", action.Type, tt.want)
			}
			if tt.hit && (action.Region == nil || action.Region.ID != "close") {
				t.Errorf("expected region close, got %v", action.Region)
			}
		})
	}
}

func TestHandlerClear(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("close", 10, 10, 3, 1, nil)

	h.Clear()

	if len(h.HitMap.Regions()) != 0 {
		t.Errorf("expected 0 regions after Clear, got %d", len(h.HitMap.Regions()))
	}
}
