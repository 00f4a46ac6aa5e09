package console

import (
	"bufio"
	"fmt"
	"os"

	"hr-interview-bot/internal/interview"
	"hr-interview-bot/internal/report"
)

// Runner проводит интервью в терминале
type Runner struct {
	engine    *interview.Engine
	generator *report.Generator
}

// NewRunner создает консольный раннер интервью
func NewRunner(engine *interview.Engine, generator *report.Generator) *Runner {
	return &Runner{
		engine:    engine,
		generator: generator,
	}
}

// Run проводит одно интервью: задает вопросы по одному, читает ответы
// со стандартного ввода и печатает итоговый отчет
func (r *Runner) Run() error {
	scanner := bufio.NewScanner(os.Stdin)
	session := r.engine.NewSession()

	fmt.Println("--- AI Interview Chatbot ---")
	fmt.Printf("Questions: %d. Press Ctrl+D to abort.\n", r.engine.Total())

	for r.engine.Phase(session) == interview.PhaseAskQuestion {
		before := len(session.Transcript)
		r.engine.AskQuestion(session)
		if len(session.Transcript) > before {
			last, _ := session.LastEntry()
			fmt.Printf("\n🤖 %s\n", last.Content)
		}

		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		// Пустой ввод игнорируется: тот же вопрос остается активным
		r.engine.CollectAnswer(session, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("ошибка чтения ввода: %w", err)
	}

	fmt.Println("\n⏳ Generating interview report...")
	if err := r.generator.Generate(session); err != nil {
		fmt.Fprintf(os.Stderr, "report generation failed: %v\n", err)
	}

	if last, ok := session.LastEntry(); ok {
		fmt.Printf("\n%s\n", last.Content)
	}

	return nil
}
