package prompts

import (
	"strings"
	"testing"
)

func TestFormatAnswers(t *testing.T) {
	questions := []string{"What is your name?", "What are your strengths?"}
	answers := []string{"Alex", "Fast learner"}

	got := FormatAnswers(questions, answers)
	want := "Q1: What is your name?\nA1: Alex\nQ2: What are your strengths?\nA2: Fast learner"
	if got != want {
		t.Errorf("FormatAnswers = %q, want %q", got, want)
	}
}

func TestFormatAnswers_PartialAnswers(t *testing.T) {
	questions := []string{"Q one", "Q two", "Q three"}
	answers := []string{"A one"}

	got := FormatAnswers(questions, answers)
	if strings.Contains(got, "Q2") || strings.Contains(got, "Q3") {
		t.Errorf("unanswered questions must not appear in %q", got)
	}
}

func TestGenerateReportPrompt_Structure(t *testing.T) {
	schema := DefaultReportSchema()
	prompt := GenerateReportPrompt(schema, []string{"What is your name?"}, []string{"Alex"})

	if !strings.HasPrefix(prompt, schema.Persona) {
		t.Error("prompt should begin with the persona instruction")
	}
	if !strings.Contains(prompt, "Please ensure the report includes:") {
		t.Error("prompt is missing the section list header")
	}
	if !strings.Contains(prompt, "Interview Responses:\nQ1: What is your name?\nA1: Alex") {
		t.Error("prompt is missing the responses block")
	}
}

func TestDefaultReportSchema_FiveSections(t *testing.T) {
	schema := DefaultReportSchema()
	if len(schema.Sections) != 5 {
		t.Fatalf("sections = %d, want 5", len(schema.Sections))
	}

	wantTitles := []string{
		"Introduction",
		"Strengths",
		"Weaknesses or Areas for Improvement",
		"Overall Impression",
		"Recommendation",
	}
	for i, want := range wantTitles {
		if schema.Sections[i].Title != want {
			t.Errorf("section %d title = %q, want %q", i+1, schema.Sections[i].Title, want)
		}
	}
}

func TestParseReportSchema(t *testing.T) {
	data := []byte(`
persona: "You are a reviewer."
sections:
  - title: "Summary"
    instruction: "Summarize the interview."
`)

	schema, err := ParseReportSchema(data)
	if err != nil {
		t.Fatalf("ParseReportSchema returned error: %v", err)
	}
	if schema.Persona != "You are a reviewer." {
		t.Errorf("persona = %q", schema.Persona)
	}
	if len(schema.Sections) != 1 || schema.Sections[0].Title != "Summary" {
		t.Errorf("sections = %+v", schema.Sections)
	}
}

func TestParseReportSchema_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing persona", "sections:\n  - title: \"A\"\n    instruction: \"B\""},
		{"no sections", "persona: \"P\""},
		{"section without title", "persona: \"P\"\nsections:\n  - instruction: \"B\""},
		{"section without instruction", "persona: \"P\"\nsections:\n  - title: \"A\""},
	}

	for _, tt := range tests {
		if _, err := ParseReportSchema([]byte(tt.data)); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}
