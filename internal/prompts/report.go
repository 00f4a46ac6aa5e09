package prompts

import (
	"fmt"
	"strings"
)

// GenerateReportPrompt создает промпт для генерации итогового отчета.
// Вопросы и ответы нумеруются попарно и встраиваются в инструкцию с
// фиксированной структурой разделов.
func GenerateReportPrompt(schema *ReportSchema, questions, answers []string) string {
	var prompt strings.Builder

	prompt.WriteString(schema.Persona)
	prompt.WriteString("\n\n")

	prompt.WriteString("Please ensure the report includes:\n\n")
	for i, section := range schema.Sections {
		prompt.WriteString(fmt.Sprintf("%d. **%s** — %s\n", i+1, section.Title, section.Instruction))
	}
	prompt.WriteString("\n")

	prompt.WriteString("Interview Responses:\n")
	prompt.WriteString(FormatAnswers(questions, answers))

	return prompt.String()
}

// FormatAnswers нумерует пары вопрос/ответ для вставки в промпт
func FormatAnswers(questions, answers []string) string {
	pairs := make([]string, 0, len(answers))
	for i := range answers {
		if i >= len(questions) {
			break
		}
		pairs = append(pairs, fmt.Sprintf("Q%d: %s\nA%d: %s", i+1, questions[i], i+1, answers[i]))
	}
	return strings.Join(pairs, "\n")
}
