package interview

import "time"

// Role определяет автора записи в транскрипте
type Role string

const (
	RoleBot  Role = "bot"
	RoleUser Role = "user"
)

// Entry представляет одну запись в транскрипте
type Entry struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Phase определяет следующий шаг интервью
type Phase string

const (
	PhaseAskQuestion    Phase = "ask_question"
	PhaseGenerateReport Phase = "generate_report"
)

// State представляет состояние сессии
type State string

const (
	StateNotStarted    State = "not_started"
	StateAsking        State = "asking"
	StateReportPending State = "report_pending"
	StateDone          State = "done"
)

// Session представляет одну изолированную сессию интервью
type Session struct {
	ID              string    `json:"id"`
	Answers         []string  `json:"answers"`
	Transcript      []Entry   `json:"transcript"`
	Started         bool      `json:"started"`
	Complete        bool      `json:"complete"`
	ReportGenerated bool      `json:"report_generated"`
	LastActivity    time.Time `json:"last_activity"`
}

// AppendBot добавляет запись бота в транскрипт
func (s *Session) AppendBot(content string) {
	s.Transcript = append(s.Transcript, Entry{Role: RoleBot, Content: content})
}

// AppendUser добавляет запись пользователя в транскрипт
func (s *Session) AppendUser(content string) {
	s.Transcript = append(s.Transcript, Entry{Role: RoleUser, Content: content})
}

// LastEntry возвращает последнюю запись транскрипта
func (s *Session) LastEntry() (Entry, bool) {
	if len(s.Transcript) == 0 {
		return Entry{}, false
	}
	return s.Transcript[len(s.Transcript)-1], true
}
