package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Back     key.Binding
	Delete   key.Binding
	Filter   key.Binding
	Month    key.Binding
	Sort     key.Binding
	Order    key.Binding
	Classify key.Binding
	Reason   key.Binding
	Brand    key.Binding
	Toggle   key.Binding
	Reload   key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "다음 메뉴")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "이전 메뉴")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "위")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "아래")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "그룹 대시보드")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "뒤로")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "키워드 삭제")),
		Filter:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "분류 필터")),
		Month:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "월 선택")),
		Sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "정렬 기준")),
		Order:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "오름/내림")),
		Classify: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "분류 수정")),
		Reason:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "분류 이유")),
		Brand:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "브랜드")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "캠페인 선택")),
		Reload:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "새로고침")),
		Confirm:  key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "확인")),
		Cancel:   key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "취소")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "도움말")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "종료")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Up, k.Down, k.Open, k.Reload, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Up, k.Down, k.Open, k.Back},
		{k.Delete, k.Filter, k.Month, k.Sort, k.Order, k.Classify, k.Reason},
		{k.Brand, k.Toggle, k.Reload, k.Help, k.Quit},
	}
}
