package report

import (
	"hr-interview-bot/internal/interview"
	"hr-interview-bot/internal/prompts"
)

// Completer описывает клиент модели для генерации отчета
type Completer interface {
	Complete(prompt string) (string, error)
}

// Generator создает итоговый отчет по собранным ответам
type Generator struct {
	client    Completer
	schema    *prompts.ReportSchema
	questions []string
}

// NewGenerator создает генератор отчетов
func NewGenerator(client Completer, schema *prompts.ReportSchema, questions []string) *Generator {
	return &Generator{
		client:    client,
		schema:    schema,
		questions: questions,
	}
}

// BuildPrompt возвращает промпт отчета для собранных ответов сессии
func (g *Generator) BuildPrompt(s *interview.Session) string {
	return prompts.GenerateReportPrompt(g.schema, g.questions, s.Answers)
}

// Generate генерирует отчет и добавляет его в транскрипт сессии.
// Ошибка вызова модели не прерывает поток интервью: вместо отчета в
// транскрипт добавляется запись с текстом ошибки, а сессия все равно
// помечается завершенной. Возвращаемая ошибка нужна только для
// логирования и метрик.
func (g *Generator) Generate(s *interview.Session) error {
	if len(s.Answers) == 0 {
		s.AppendBot("No answers collected. Cannot generate report.")
		return nil
	}

	content, err := g.client.Complete(g.BuildPrompt(s))
	if err != nil {
		s.AppendBot("Error generating report: " + err.Error())
	} else {
		s.AppendBot("### Final Evaluation Report:\n" + content)
	}

	s.ReportGenerated = true
	s.Complete = true
	return err
}
