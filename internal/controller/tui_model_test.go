package controller

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func update(t *testing.T, model traceModel, msgs ...tea.Msg) traceModel {
	t.Helper()

	for _, msg := range msgs {
		next, _ := model.Update(msg)

		tm, ok := next.(traceModel)
		if !ok {
			t.Fatalf("Update() returned %T, want traceModel", next)
		}

		model = tm
	}

	return model
}

func TestTraceModel_Stages(t *testing.T) {
	model := update(t, newTraceModel(ModeTrace),
		runInfoMsg{source: "peaks.yaml", peaks: 40, threads: 3},
		stageStartedMsg{stage: "globularize", index: 1, total: 4},
		stageCompletedMsg{stage: "globularize", items: 40, elapsed: time.Millisecond},
		stageStartedMsg{stage: "contacts", index: 2, total: 4},
	)

	if model.completed != 1 || model.total != 4 {
		t.Fatalf("completed/total = %d/%d, want 1/4", model.completed, model.total)
	}

	if got := model.percent(); got != 0.25 {
		t.Fatalf("percent() = %v, want 0.25", got)
	}

	if model.current != "contacts" {
		t.Fatalf("current = %q, want contacts", model.current)
	}

	view := model.View()
	for _, want := range []string{"Main Chain Tracing", "peaks.yaml", "globularize", "contacts"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\nview:\n%s", want, view)
		}
	}

	if strings.Contains(view, "Press q to quit") {
		t.Fatalf("View() shows the quit hint before the run finished")
	}
}

func TestTraceModel_CompletedStageCountedOnce(t *testing.T) {
	model := update(t, newTraceModel(ModeTrace),
		stageStartedMsg{stage: "grow", index: 1, total: 2},
		stageCompletedMsg{stage: "grow", items: 5},
		stageCompletedMsg{stage: "grow", items: 5},
		stageCompletedMsg{stage: "unknown", items: 1},
	)

	if model.completed != 1 {
		t.Fatalf("completed = %d, want 1", model.completed)
	}

	if got := newTraceModel(ModeTrace).percent(); got != 0 {
		t.Fatalf("percent() of an idle model = %v, want 0", got)
	}
}

func TestTraceModel_ModelResult(t *testing.T) {
	chains := make([]chainRow, maxTableRows+2)
	for i := range chains {
		chains[i] = chainRow{id: fmt.Sprintf("C%d", i), residues: 4, score: 1.5}
	}

	model := update(t, newTraceModel(ModeTrace), modelMsg{chains: chains, residues: 4 * len(chains), saved: "out/model.yaml"})

	view := model.View()
	for _, want := range []string{"finished", "C0", "… 2 more", "17 chains, 68 residues", "out/model.yaml", "Press q to quit"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\nview:\n%s", want, view)
		}
	}
}

func TestTraceModel_LinksResult(t *testing.T) {
	model := update(t, newTraceModel(ModeScore), linksMsg{links: [][]string{{"1", "3", "4", "2.500", "-", "90"}}})

	view := model.View()
	for _, want := range []string{"Link Scoring", "Rank", "2.500"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\nview:\n%s", want, view)
		}
	}
}

func TestTraceModel_Error(t *testing.T) {
	model := update(t, newTraceModel(ModeTrace), modelMsg{err: errors.New("nothing fits")})

	if view := model.View(); !strings.Contains(view, "Error: nothing fits") {
		t.Fatalf("View() missing error\nview:\n%s", view)
	}
}

func TestTraceModel_KeysAndResize(t *testing.T) {
	model := newTraceModel(ModeTrace)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("q should quit")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q returned %T, want tea.QuitMsg", cmd())
	}

	resized := update(t, model, tea.WindowSizeMsg{Width: 200, Height: 40})
	if resized.width != 200 || resized.progressBar.Width != 60 {
		t.Fatalf("width/bar = %d/%d, want 200/60", resized.width, resized.progressBar.Width)
	}

	narrow := model.resize(15)
	if narrow.progressBar.Width != 10 {
		t.Fatalf("narrow bar = %d, want 10", narrow.progressBar.Width)
	}
}
