package interview

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Engine управляет линейным потоком интервью по фиксированному списку вопросов
type Engine struct {
	questions []string
}

// NewEngine создает движок интервью для списка вопросов
func NewEngine(questions []string) *Engine {
	return &Engine{questions: questions}
}

// Total возвращает общее количество вопросов
func (e *Engine) Total() int {
	return len(e.questions)
}

// Questions возвращает список вопросов
func (e *Engine) Questions() []string {
	return e.questions
}

// Question возвращает текст вопроса с номером n (начиная с 1)
func (e *Engine) Question(n int) string {
	return e.questions[n-1]
}

// NewSession создает пустую сессию интервью
func (e *Engine) NewSession() *Session {
	return &Session{
		ID:           uuid.New().String(),
		LastActivity: time.Now(),
	}
}

// AskQuestion добавляет следующий вопрос в транскрипт.
// Повторный вызов для того же количества ответов не дублирует вопрос:
// если последняя запись транскрипта уже содержит этот вопрос, ничего не происходит.
// Ответы при этом не изменяются.
func (e *Engine) AskQuestion(s *Session) {
	num := len(s.Answers)
	if num >= len(e.questions) {
		return
	}

	s.Started = true
	text := fmt.Sprintf("Q%d: %s", num+1, e.questions[num])

	if last, ok := s.LastEntry(); ok && last.Role == RoleBot && last.Content == text {
		return
	}
	s.AppendBot(text)
}

// CollectAnswer записывает ответ пользователя. Пробельные символы по краям
// обрезаются; пустой ответ молча игнорируется. Следующий вопрос здесь
// не задается — это ответственность вызывающего кода.
func (e *Engine) CollectAnswer(s *Session, raw string) bool {
	answer := strings.TrimSpace(raw)
	if answer == "" {
		return false
	}
	if len(s.Answers) >= len(e.questions) {
		return false
	}

	s.Answers = append(s.Answers, answer)
	s.AppendUser(answer)
	s.LastActivity = time.Now()
	return true
}

// CheckCompletion определяет следующую фазу интервью.
// Единственное ветвление во всем потоке.
func CheckCompletion(answered, total int) Phase {
	if answered < total {
		return PhaseAskQuestion
	}
	return PhaseGenerateReport
}

// Phase возвращает фазу для текущего состояния сессии
func (e *Engine) Phase(s *Session) Phase {
	return CheckCompletion(len(s.Answers), len(e.questions))
}

// State вычисляет состояние сессии. Состояние всегда является
// детерминированной функцией собранных ответов и флагов.
func (e *Engine) State(s *Session) State {
	switch {
	case !s.Started:
		return StateNotStarted
	case len(s.Answers) < len(e.questions):
		return StateAsking
	case !s.ReportGenerated:
		return StateReportPending
	default:
		return StateDone
	}
}

// Reset возвращает сессию в исходное состояние с новым идентификатором
func (e *Engine) Reset(s *Session) {
	s.ID = uuid.New().String()
	s.Answers = nil
	s.Transcript = nil
	s.Started = false
	s.Complete = false
	s.ReportGenerated = false
	s.LastActivity = time.Now()
}
