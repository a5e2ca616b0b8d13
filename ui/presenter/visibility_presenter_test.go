package presenter

import "testing"

type mockVisibility struct{ visible bool }

func (m *mockVisibility) Visible() bool { return m.visible }
func (m *mockVisibility) SetVisible(b bool) bool {
	changed := m.visible != b
	m.visible = b
	return changed
}

type mockSwitch struct {
	shown, hidden, cancelled int
}

func (s *mockSwitch) SetVisible(b bool) {
	if b {
		s.shown++
	} else {
		s.hidden++
	}
}
func (s *mockSwitch) Cancel() { s.cancelled++ }

type mockVisibilityView struct {
	calls int
	last  bool
}

func (v *mockVisibilityView) OverlayShown(b bool) { v.calls++; v.last = b }

func TestVisibilityPresenter_ShowHide_Idempotent(t *testing.T) {
	m := &mockVisibility{}
	sw := &mockSwitch{}
	view := &mockVisibilityView{}
	p := NewVisibilityPresenter(m, sw, view)

	p.Show()
	if !m.Visible() || sw.shown != 1 || view.calls != 1 || !view.last {
		t.Fatalf("show failed: visible=%v shown=%d calls=%d last=%v", m.Visible(), sw.shown, view.calls, view.last)
	}
	p.Show()
	if sw.shown != 1 || view.calls != 1 {
		t.Fatalf("show not idempotent: shown=%d calls=%d", sw.shown, view.calls)
	}

	p.Hide()
	if m.Visible() || sw.hidden != 1 || sw.cancelled != 1 || view.last || view.calls != 2 {
		t.Fatalf("hide failed: visible=%v hidden=%d cancelled=%d calls=%d", m.Visible(), sw.hidden, sw.cancelled, view.calls)
	}
	p.Hide()
	if sw.hidden != 1 || sw.cancelled != 1 {
		t.Fatalf("hide not idempotent: hidden=%d cancelled=%d", sw.hidden, sw.cancelled)
	}
}

func TestVisibilityPresenter_Toggle(t *testing.T) {
	m := &mockVisibility{visible: true}
	sw := &mockSwitch{}
	view := &mockVisibilityView{}
	p := NewVisibilityPresenter(m, sw, view)
	p.Toggle() // hide path
	if m.Visible() || sw.hidden != 1 {
		t.Fatalf("toggle hide failed")
	}
	p.Toggle() // show path
	if !m.Visible() || sw.shown != 1 {
		t.Fatalf("toggle show failed")
	}
}
