package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pinball/internal/config"
	"github.com/vovakirdan/tui-pinball/internal/storage"
)

func pressMenu(m MenuModel, keys ...string) MenuModel {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(MenuModel)
	}
	return m
}

func TestMenuListsTables(t *testing.T) {
	m := NewMenuModel(nil, testRuntime())

	ids := make([]string, len(m.items))
	for i, item := range m.items {
		ids[i] = item.GameID
	}
	joined := strings.Join(ids, ",")
	if !strings.Contains(joined, "pinball") || !strings.Contains(joined, "pinball_practice") {
		t.Errorf("menu items = %v, expected both pinball tables", ids)
	}
}

func TestMenuSelect(t *testing.T) {
	m := pressMenu(NewMenuModel(nil, testRuntime()), "j", "enter")

	res := m.Result()
	if res.Quit || res.GameID != m.items[1].GameID {
		t.Errorf("Result() = %+v, expected selection of %s", res, m.items[1].GameID)
	}
}

func TestMenuDifficultyCycle(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want config.DifficultyPreset
	}{
		{"default", nil, ""},
		{"one right", []string{"right"}, config.DifficultyEasy},
		{"three right", []string{"right", "right", "right"}, config.DifficultyHard},
		{"wrap left", []string{"left"}, config.DifficultyFixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pressMenu(NewMenuModel(nil, testRuntime()), tt.keys...)
			if got := m.Difficulty(); got != tt.want {
				t.Errorf("Difficulty() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	if res := pressMenu(NewMenuModel(nil, testRuntime()), "tab").Result(); !res.WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}
	if res := pressMenu(NewMenuModel(nil, testRuntime()), "q").Result(); !res.Quit {
		t.Error("q should quit")
	}
}

func TestMenuShowsHighScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveScore("pinball", 4200)

	m := NewMenuModel(store, testRuntime())
	if !strings.Contains(m.View(), "best 4200") {
		t.Error("expected high score in menu view")
	}
}

func TestScoreboardRows(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveRun(storage.Run{GameID: "pinball", Score: 900, Drained: 3, Ticks: 120 * 75})

	m := NewScoreboardModel(store, 100, 30)
	for m.boards[m.cursor].ID != "pinball" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
	}

	if len(m.scores) != 1 {
		t.Fatalf("loaded %d scores, expected 1", len(m.scores))
	}
	if got := m.playTime(m.scores[0].Ticks); got != "1m15s" {
		t.Errorf("playTime = %s, expected 1m15s", got)
	}
	if !strings.Contains(m.statsLine(), "Games: 1") {
		t.Errorf("statsLine = %q, expected one game", m.statsLine())
	}
}

func TestScoreboardAutopilotBoardAndOrder(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveRun(storage.Run{GameID: "pinball_autopilot", Score: 300})
	store.SaveRun(storage.Run{GameID: "pinball_autopilot", Score: 100})
	store.SaveRun(storage.Run{GameID: "unknown_autopilot", Score: 50})

	m := NewScoreboardModel(store, 120, 30)

	idx := -1
	for i, b := range m.boards {
		if b.ID == "unknown_autopilot" {
			t.Error("autopilot board without a registered table should be hidden")
		}
		if b.ID == "pinball_autopilot" {
			idx = i
		}
	}
	if idx < 0 {
		t.Fatal("expected a pinball_autopilot board")
	}

	for m.cursor != idx {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
	}
	if len(m.scores) != 2 || m.scores[0].Score != 300 {
		t.Fatalf("best order rows = %v, expected 300 first", m.scores)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})
	m = next.(ScoreboardModel)
	if m.order != orderRecent {
		t.Fatalf("order = %v, expected recent", m.order)
	}
	if m.scores[0].Score != 100 {
		t.Errorf("recent order first score = %d, expected 100", m.scores[0].Score)
	}
	if !strings.Contains(m.View(), "autopilot") {
		t.Error("expected the autopilot board title in the view")
	}
}
