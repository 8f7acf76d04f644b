package drill

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/jonboulle/clockwork"

	dr "github.com/abhisek/kuku/internal/drill"
	"github.com/abhisek/kuku/internal/problemgen"
	"github.com/abhisek/kuku/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testDrillScreen(t *testing.T, settings dr.Settings) (*DrillScreen, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	ctrl := dr.New(dr.Options{
		Settings: settings,
		Clock:    clock,
		Rand:     rand.New(rand.NewPCG(1, 2)),
	})
	s := New(ctrl)
	t.Cleanup(s.Close)
	return s, clock
}

func autoSettings() dr.Settings {
	st := dr.DefaultSettings()
	st.Mode = dr.ModeAuto
	return st
}

func press(s screen.Screen, msgs ...tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	for _, m := range msgs {
		s, cmd = s.Update(m)
	}
	return s, cmd
}

func TestDrillScreen_Title(t *testing.T) {
	s, _ := testDrillScreen(t, dr.DefaultSettings())
	if s.Title() != "フラッシュ九九" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestDrillScreen_DigitSelectsSegment(t *testing.T) {
	s, _ := testDrillScreen(t, dr.DefaultSettings())

	press(s, specialKey(tea.KeyEnter), specialKey(tea.KeyEnter), keyPress('7'))

	snap := s.ctrl.Snapshot()
	if snap.Settings.Segment != 7 {
		t.Errorf("segment = %d, want 7", snap.Settings.Segment)
	}
	if snap.Index != 0 || snap.AnswerVisible {
		t.Errorf("expected fresh position after segment change, got index=%d visible=%v", snap.Index, snap.AnswerVisible)
	}
	if !strings.Contains(s.View(80, 24), "7の段") {
		t.Error("expected segment badge in view")
	}
}

func TestDrillScreen_EnterRevealsThenAdvances(t *testing.T) {
	s, _ := testDrillScreen(t, dr.DefaultSettings())
	press(s, keyPress('3'))

	view := s.View(100, 40)
	if !strings.Contains(view, "3 × 1") || !strings.Contains(view, "答えを見る") {
		t.Errorf("unexpected initial view:\n%s", view)
	}

	press(s, specialKey(tea.KeyEnter))
	view = s.View(100, 40)
	if !strings.Contains(view, "= 3") {
		t.Error("expected revealed answer")
	}
	if !strings.Contains(view, "次へ") {
		t.Error("expected next button after reveal")
	}

	press(s, specialKey(tea.KeyEnter))
	if got := s.ctrl.Snapshot().Problem; got != (problemgen.Problem{Multiplicand: 3, Multiplier: 2}) {
		t.Errorf("problem = %v, want 3 × 2", got)
	}
	if !strings.Contains(s.View(100, 40), "2/9") {
		t.Error("expected position badge 2/9")
	}
}

func TestDrillScreen_SpeedOnlyInAuto(t *testing.T) {
	s, _ := testDrillScreen(t, dr.DefaultSettings())

	press(s, keyPress('s'))
	if s.ctrl.Settings().Speed != dr.DefaultSpeed {
		t.Error("speed must not change in manual mode")
	}
	if strings.Contains(s.View(100, 40), "速さ") {
		t.Error("speed selector must be hidden in manual mode")
	}

	press(s, keyPress('m'), keyPress('s'))
	if s.ctrl.Settings().Mode != dr.ModeAuto {
		t.Fatal("expected auto mode")
	}
	if s.ctrl.Settings().Speed != 2 {
		t.Errorf("speed = %v, want 2", s.ctrl.Settings().Speed)
	}
	if !strings.Contains(s.View(100, 40), "速さ") {
		t.Error("expected speed selector in auto mode")
	}
}

func TestDrillScreen_PlayIgnoredInManual(t *testing.T) {
	s, _ := testDrillScreen(t, dr.DefaultSettings())

	_, cmd := press(s, keyPress(' '))
	if cmd != nil {
		t.Error("space must not arm auto-play in manual mode")
	}
	if s.ctrl.Snapshot().Playing {
		t.Error("expected playback off")
	}
}

func TestDrillScreen_AutoPlayTick(t *testing.T) {
	s, clock := testDrillScreen(t, autoSettings())

	_, cmd := press(s, keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a wait command after starting playback")
	}
	if !strings.Contains(s.View(100, 40), "一時停止") {
		t.Error("expected pause button while playing")
	}

	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := clock.BlockUntilContext(ctx, 1); err != nil {
		t.Fatal(err)
	}
	clock.Advance(time.Second)

	var msg tea.Msg
	select {
	case msg = <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("tick did not fire")
	}
	if _, ok := msg.(autoplayTickMsg); !ok {
		t.Fatalf("expected autoplayTickMsg, got %T", msg)
	}

	_, next := s.Update(msg)
	if !s.ctrl.Snapshot().AnswerVisible {
		t.Error("expected tick to reveal the answer")
	}
	if next == nil {
		t.Error("expected the next tick to be armed")
	}
}

func TestDrillScreen_PauseCancelsWait(t *testing.T) {
	s, _ := testDrillScreen(t, autoSettings())

	_, cmd := press(s, keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a wait command")
	}
	press(s, keyPress(' '))

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		if msg != nil {
			t.Errorf("cancelled wait should yield no message, got %T", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled wait did not return")
	}
}

func TestDrillScreen_SoundToggle(t *testing.T) {
	s, _ := testDrillScreen(t, dr.DefaultSettings())
	if !strings.Contains(s.Status(), "音あり") {
		t.Errorf("Status = %q", s.Status())
	}
	press(s, keyPress('v'))
	if s.Status() != "音なし" {
		t.Errorf("Status = %q, want 音なし", s.Status())
	}
}

func TestDrillScreen_OrderCycles(t *testing.T) {
	s, _ := testDrillScreen(t, dr.DefaultSettings())

	press(s, keyPress('o'))
	if s.ctrl.Settings().Order != problemgen.OrderDescending {
		t.Fatalf("order = %v, want descending", s.ctrl.Settings().Order)
	}
	if got := s.ctrl.Snapshot().Problem.Multiplier; got != 9 {
		t.Errorf("first multiplier = %d, want 9", got)
	}
}

func TestDrillScreen_Reset(t *testing.T) {
	s, _ := testDrillScreen(t, dr.DefaultSettings())
	press(s, specialKey(tea.KeyEnter), specialKey(tea.KeyEnter), specialKey(tea.KeyEnter))
	press(s, keyPress('r'))

	snap := s.ctrl.Snapshot()
	if snap.Index != 0 || snap.AnswerVisible {
		t.Errorf("expected reset position, got index=%d visible=%v", snap.Index, snap.AnswerVisible)
	}
}

func TestDrillScreen_HelpToggle(t *testing.T) {
	s, _ := testDrillScreen(t, dr.DefaultSettings())
	if strings.Contains(s.View(100, 40), "終了") {
		t.Error("full help should start hidden")
	}
	press(s, keyPress('?'))
	if !strings.Contains(s.View(100, 40), "終了") {
		t.Error("expected full help after ?")
	}
}

func TestDrillScreen_KeyHints(t *testing.T) {
	s, _ := testDrillScreen(t, dr.DefaultSettings())
	manual := s.KeyHints()
	if len(manual) == 0 {
		t.Fatal("expected key hints")
	}
	for _, h := range manual {
		if h.Key == "Space" {
			t.Error("play hint must be hidden in manual mode")
		}
	}

	press(s, keyPress('m'))
	found := false
	for _, h := range s.KeyHints() {
		if h.Key == "Space" {
			found = true
		}
	}
	if !found {
		t.Error("expected play hint in auto mode")
	}
}

func TestDrillScreen_QuitKey(t *testing.T) {
	s, _ := testDrillScreen(t, dr.DefaultSettings())
	_, cmd := press(s, keyPress('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestDrillScreen_CloseStopsPlayback(t *testing.T) {
	s, _ := testDrillScreen(t, autoSettings())
	press(s, keyPress(' '))
	if !s.ctrl.Pending() {
		t.Fatal("expected pending tick")
	}
	s.Close()
	if s.ctrl.Pending() {
		t.Error("expected Close to cancel the pending tick")
	}
}
