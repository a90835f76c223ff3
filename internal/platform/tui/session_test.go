package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func updateSession(m SessionModel, msgs ...tea.Msg) SessionModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(SessionModel)
	}
	return m
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), "tester")

	m = updateSession(m, keyMsg("enter"))
	if m.gameModel == nil {
		t.Fatal("expected a running table after selecting")
	}
	if !strings.Contains(m.View(), "Score") {
		t.Error("expected the table HUD in the session view")
	}

	// Esc pauses first, a second Esc leaves the paused game.
	m = updateSession(m, keyMsg("esc"))
	m = updateSession(m, TickMsg{})
	if !m.gameModel.gameState.Paused {
		t.Fatal("expected the first esc to pause")
	}
	m = updateSession(m, keyMsg("esc"))
	if m.gameModel != nil {
		t.Error("expected the second esc to return to the menu")
	}
	if m.quitting {
		t.Error("session should still be running")
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := updateSession(NewSessionModel(nil, testRuntime(), "tester"), keyMsg("q"))
	if !m.quitting {
		t.Error("q in the menu should end the session")
	}
	if m.View() != "" {
		t.Error("expected empty view after quitting")
	}
}

func TestSessionScoreboardKeepsMenu(t *testing.T) {
	m := updateSession(NewSessionModel(nil, testRuntime(), "tester"), keyMsg("tab"))
	if m.quitting || m.gameModel != nil {
		t.Error("tab should keep the session in the menu")
	}
}
