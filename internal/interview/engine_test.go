package interview

import (
	"fmt"
	"strings"
	"testing"
)

func testQuestions() []string {
	return []string{
		"What is your name?",
		"What is your professional background?",
		"What are your technical skills?",
		"What are your strengths?",
		"What are your weaknesses?",
		"Describe a challenging project you completed.",
		"What are your career goals?",
		"How do you handle stress?",
		"How do you work in a team?",
		"Why should we hire you?",
	}
}

func TestAskQuestion_AppendsNumberedQuestion(t *testing.T) {
	e := NewEngine(testQuestions())
	s := e.NewSession()

	e.AskQuestion(s)

	if len(s.Transcript) != 1 {
		t.Fatalf("transcript length = %d, want 1", len(s.Transcript))
	}
	if s.Transcript[0].Role != RoleBot {
		t.Errorf("role = %q, want bot", s.Transcript[0].Role)
	}
	if s.Transcript[0].Content != "Q1: What is your name?" {
		t.Errorf("content = %q, want Q1 with verbatim question text", s.Transcript[0].Content)
	}
	if !s.Started {
		t.Error("asking the first question should mark the session started")
	}
	if len(s.Answers) != 0 {
		t.Error("asking a question must not touch answers")
	}
}

func TestAskQuestion_IdempotentForSameCount(t *testing.T) {
	e := NewEngine(testQuestions())
	s := e.NewSession()

	e.AskQuestion(s)
	e.AskQuestion(s)
	e.AskQuestion(s)

	if len(s.Transcript) != 1 {
		t.Errorf("repeated AskQuestion for the same count appended %d entries, want 1", len(s.Transcript))
	}
}

func TestAskQuestion_EveryQuestionVerbatimAndUnique(t *testing.T) {
	questions := testQuestions()
	e := NewEngine(questions)
	s := e.NewSession()

	for i := range questions {
		e.AskQuestion(s)
		e.AskQuestion(s) // повторный вызов не должен дублировать
		e.CollectAnswer(s, fmt.Sprintf("answer %d", i+1))
	}

	var botEntries []string
	for _, entry := range s.Transcript {
		if entry.Role == RoleBot {
			botEntries = append(botEntries, entry.Content)
		}
	}

	if len(botEntries) != len(questions) {
		t.Fatalf("bot entries = %d, want %d", len(botEntries), len(questions))
	}
	for i, q := range questions {
		want := fmt.Sprintf("Q%d: %s", i+1, q)
		if botEntries[i] != want {
			t.Errorf("bot entry %d = %q, want %q", i, botEntries[i], want)
		}
	}
}

func TestAskQuestion_NoQuestionAfterLastAnswer(t *testing.T) {
	e := NewEngine(testQuestions())
	s := e.NewSession()

	for i := 0; i < e.Total(); i++ {
		e.AskQuestion(s)
		e.CollectAnswer(s, "answer")
	}

	before := len(s.Transcript)
	e.AskQuestion(s)
	if len(s.Transcript) != before {
		t.Error("AskQuestion after the last answer must not append anything")
	}
}

func TestCollectAnswer_TrimsWhitespace(t *testing.T) {
	e := NewEngine(testQuestions())
	s := e.NewSession()

	if !e.CollectAnswer(s, "  Alex  \n") {
		t.Fatal("non-empty answer should be collected")
	}
	if s.Answers[0] != "Alex" {
		t.Errorf("answer = %q, want %q", s.Answers[0], "Alex")
	}
	if last, _ := s.LastEntry(); last.Role != RoleUser || last.Content != "Alex" {
		t.Errorf("last entry = %+v, want trimmed user entry", last)
	}
}

func TestCollectAnswer_EmptySubmissionsIgnored(t *testing.T) {
	e := NewEngine(testQuestions())
	s := e.NewSession()

	for _, input := range []string{"", "   ", "\t\n", "  \r\n  "} {
		if e.CollectAnswer(s, input) {
			t.Errorf("input %q should be ignored", input)
		}
	}

	if len(s.Answers) != 0 {
		t.Errorf("answers = %d, want 0 after empty submissions", len(s.Answers))
	}
	if len(s.Transcript) != 0 {
		t.Errorf("transcript = %d entries, want 0 after empty submissions", len(s.Transcript))
	}
}

func TestCollectAnswer_NeverExceedsTotal(t *testing.T) {
	e := NewEngine(testQuestions())
	s := e.NewSession()

	for i := 0; i < 15; i++ {
		e.CollectAnswer(s, "answer")
		if len(s.Answers) > e.Total() {
			t.Fatalf("answers = %d, must never exceed %d", len(s.Answers), e.Total())
		}
	}

	if len(s.Answers) != e.Total() {
		t.Errorf("answers = %d, want %d", len(s.Answers), e.Total())
	}
}

func TestCheckCompletion(t *testing.T) {
	tests := []struct {
		answered int
		want     Phase
	}{
		{0, PhaseAskQuestion},
		{5, PhaseAskQuestion},
		{9, PhaseAskQuestion},
		{10, PhaseGenerateReport},
		{11, PhaseGenerateReport},
	}

	for _, tt := range tests {
		if got := CheckCompletion(tt.answered, 10); got != tt.want {
			t.Errorf("CheckCompletion(%d, 10) = %q, want %q", tt.answered, got, tt.want)
		}
	}
}

func TestPhase_AfterTenAnswers(t *testing.T) {
	e := NewEngine(testQuestions())
	s := e.NewSession()

	for i := 0; i < e.Total(); i++ {
		e.AskQuestion(s)
		e.CollectAnswer(s, "answer")
	}

	if got := e.Phase(s); got != PhaseGenerateReport {
		t.Errorf("phase after %d answers = %q, want generate_report", e.Total(), got)
	}
}

func TestState_Transitions(t *testing.T) {
	e := NewEngine(testQuestions())
	s := e.NewSession()

	if got := e.State(s); got != StateNotStarted {
		t.Errorf("initial state = %q, want not_started", got)
	}

	e.AskQuestion(s)
	if got := e.State(s); got != StateAsking {
		t.Errorf("state after first question = %q, want asking", got)
	}

	for i := 0; i < e.Total(); i++ {
		e.CollectAnswer(s, "answer")
		e.AskQuestion(s)
	}
	if got := e.State(s); got != StateReportPending {
		t.Errorf("state after last answer = %q, want report_pending", got)
	}

	s.ReportGenerated = true
	s.Complete = true
	if got := e.State(s); got != StateDone {
		t.Errorf("state after report = %q, want done", got)
	}
}

func TestReset_RestoresInitialState(t *testing.T) {
	e := NewEngine(testQuestions())
	s := e.NewSession()
	oldID := s.ID

	for i := 0; i < e.Total(); i++ {
		e.AskQuestion(s)
		e.CollectAnswer(s, "answer")
	}
	s.Complete = true
	s.ReportGenerated = true

	e.Reset(s)

	if len(s.Answers) != 0 {
		t.Errorf("answers after reset = %d, want 0", len(s.Answers))
	}
	if len(s.Transcript) != 0 {
		t.Errorf("transcript after reset = %d, want 0", len(s.Transcript))
	}
	if s.Started || s.Complete || s.ReportGenerated {
		t.Error("all flags must be false after reset")
	}
	if s.ID == oldID || s.ID == "" {
		t.Error("reset should assign a fresh session ID")
	}
	if e.State(s) != StateNotStarted {
		t.Errorf("state after reset = %q, want not_started", e.State(s))
	}
}

func TestLastEntry(t *testing.T) {
	s := &Session{}
	if _, ok := s.LastEntry(); ok {
		t.Error("empty transcript should report no last entry")
	}

	s.AppendBot("hello")
	s.AppendUser("world")
	last, ok := s.LastEntry()
	if !ok || last.Role != RoleUser || !strings.Contains(last.Content, "world") {
		t.Errorf("last entry = %+v, want user/world", last)
	}
}
