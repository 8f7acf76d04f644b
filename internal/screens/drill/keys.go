package drill

import (
	"charm.land/bubbles/v2/key"

	dr "github.com/abhisek/kuku/internal/drill"
	"github.com/abhisek/kuku/internal/ui/layout"
)

type keyMap struct {
	Segment key.Binding
	Advance key.Binding
	Play    key.Binding
	Mode    key.Binding
	Order   key.Binding
	Speed   key.Binding
	Sound   key.Binding
	Reset   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Segment: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "段"),
		),
		Advance: key.NewBinding(key.WithKeys("enter", "n", "right"), key.WithHelp("Enter", "答えを見る/次へ")),
		Play:    key.NewBinding(key.WithKeys("space", "p"), key.WithHelp("Space", "開始/一時停止")),
		Mode:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "モード")),
		Order:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "順番")),
		Speed:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "速さ")),
		Sound:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "音")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "リセット")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "ヘルプ")),
		Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "終了")),
	}
}

// forMode enables the bindings that apply in mode. Speed and Play only
// act in auto mode.
func (k keyMap) forMode(mode dr.DisplayMode) keyMap {
	auto := mode == dr.ModeAuto
	k.Speed.SetEnabled(auto)
	k.Play.SetEnabled(auto)
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Advance, k.Play, k.Segment, k.Mode, k.Reset, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Advance, k.Play, k.Reset},
		{k.Segment, k.Order, k.Mode, k.Speed},
		{k.Sound, k.Help, k.Quit},
	}
}

// hints converts the enabled short-help bindings to footer hints.
func (k keyMap) hints() []layout.KeyHint {
	var out []layout.KeyHint
	for _, b := range k.ShortHelp() {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return out
}
