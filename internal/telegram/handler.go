package telegram

import (
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"hr-interview-bot/internal/interview"
	"hr-interview-bot/internal/metrics"
	"hr-interview-bot/internal/report"
	"hr-interview-bot/internal/storage"
)

// Максимальная длина одного сообщения Telegram с запасом на форматирование
const maxMessageSize = 3500

const restartCallback = "restart_interview"

// Handler обрабатывает обновления Telegram и ведет интервью по сессиям
type Handler struct {
	bot         *tgbotapi.BotAPI
	engine      *interview.Engine
	generator   *report.Generator
	store       *storage.Store
	metrics     *metrics.Metrics
	rateLimiter *RateLimiter
}

// NewHandler создает обработчик обновлений
func NewHandler(bot *tgbotapi.BotAPI, engine *interview.Engine, generator *report.Generator, store *storage.Store, m *metrics.Metrics) *Handler {
	return &Handler{
		bot:         bot,
		engine:      engine,
		generator:   generator,
		store:       store,
		metrics:     m,
		rateLimiter: NewRateLimiter(10, time.Minute),
	}
}

// Run запускает цикл обработки обновлений. Обновления обрабатываются
// последовательно: все изменения сессии происходят синхронно внутри
// одной итерации.
func (h *Handler) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := h.bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil {
			h.handleMessage(update.Message)
		} else if update.CallbackQuery != nil {
			h.handleCallback(update.CallbackQuery)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (h *Handler) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		return
	}
	chatID := message.Chat.ID

	if !h.rateLimiter.IsAllowed(message.From.ID) {
		h.send(chatID, "⏳ Too many messages. Please wait a minute.")
		return
	}

	if message.IsCommand() {
		h.handleCommand(chatID, message.Command())
		return
	}
	h.handleUserInput(chatID, message.Text)
}

// handleCallback обрабатывает нажатия inline кнопок
func (h *Handler) handleCallback(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		return
	}

	// Подтверждаем нажатие, чтобы убрать индикатор загрузки
	if _, err := h.bot.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		log.Printf("Ошибка подтверждения callback: %v", err)
	}

	if query.Data == restartCallback {
		h.startInterview(query.Message.Chat.ID)
	}
}

// handleCommand обрабатывает команды бота
func (h *Handler) handleCommand(chatID int64, command string) {
	switch command {
	case "start":
		h.handleStartCommand(chatID)
	case "help":
		h.handleHelpCommand(chatID)
	case "status":
		h.handleStatusCommand(chatID)
	case "restart":
		h.startInterview(chatID)
	default:
		h.send(chatID, "Unknown command. Use /help for the list of commands.")
	}
}

// handleStartCommand обрабатывает команду /start
func (h *Handler) handleStartCommand(chatID int64) {
	session := h.store.GetOrCreate(chatID)
	if h.engine.State(session) == interview.StateAsking {
		h.send(chatID, "An interview is already in progress. Use /status to check your progress or /restart to start over.")
		return
	}
	h.startInterview(chatID)
}

// handleHelpCommand обрабатывает команду /help
func (h *Handler) handleHelpCommand(chatID int64) {
	helpText := `🤖 *AI Interview Chatbot*

*Commands:*
/start - Start a new interview
/status - Check interview progress
/restart - Restart the interview (no confirmation)
/help - Show this message

*How it works:*
1. The bot asks %d fixed questions, one at a time
2. Answer each question with a plain text message
3. Empty messages are ignored
4. After the last answer the bot generates a formal evaluation report`

	h.sendf(chatID, helpText, h.engine.Total())
}

// handleStatusCommand показывает прогресс интервью
func (h *Handler) handleStatusCommand(chatID int64) {
	session := h.store.GetOrCreate(chatID)

	switch h.engine.State(session) {
	case interview.StateNotStarted:
		h.send(chatID, "The interview has not started yet. Use /start to begin.")
	case interview.StateAsking:
		h.sendf(chatID, "📊 *Interview progress*\n\n🆔 ID: `%s`\n❓ Answered: %d/%d",
			session.ID, len(session.Answers), h.engine.Total())
	case interview.StateReportPending:
		h.send(chatID, "All questions answered. The report is being generated...")
	case interview.StateDone:
		h.sendf(chatID, "✅ Interview completed!\n🆔 ID: `%s`\n\nUse /restart to start a new one.", session.ID)
	}
}

// startInterview сбрасывает сессию и начинает новое интервью
func (h *Handler) startInterview(chatID int64) {
	session := h.store.Reset(chatID)
	h.metrics.IncrementInterviewsStarted()

	welcomeText := fmt.Sprintf(`🧠 *AI Interview Chatbot*

🆔 *Interview ID:* `+"`%s`"+`
❓ *Questions:* %d

Answer each question honestly and in as much detail as you like.
After the last answer I will write a formal evaluation report.`,
		session.ID, h.engine.Total())

	h.send(chatID, welcomeText)
	h.askNextQuestion(chatID, session)
}

// askNextQuestion добавляет следующий вопрос в транскрипт и отправляет его.
// Если вопрос уже был задан для текущего количества ответов, повторная
// отправка не происходит.
func (h *Handler) askNextQuestion(chatID int64, session *interview.Session) {
	before := len(session.Transcript)
	h.engine.AskQuestion(session)
	if len(session.Transcript) == before {
		return
	}

	h.metrics.IncrementQuestionsAsked()
	if last, ok := session.LastEntry(); ok {
		h.send(chatID, last.Content)
	}
}

// validateUserInput проверяет пользовательский ввод
func (h *Handler) validateUserInput(text string) error {
	if len(text) > 4000 {
		return fmt.Errorf("the message is too long (4000 characters max)")
	}

	// Проверка на спам из повторяющихся символов
	if len(text) > 10 && strings.Count(text, text[:1]) > len(text)*8/10 {
		return fmt.Errorf("the message contains too many repeated characters")
	}

	return nil
}

// handleUserInput обрабатывает ответ пользователя
func (h *Handler) handleUserInput(chatID int64, text string) {
	session := h.store.GetOrCreate(chatID)

	switch h.engine.State(session) {
	case interview.StateNotStarted:
		h.send(chatID, "Send /start to begin the interview!")
		return
	case interview.StateReportPending, interview.StateDone:
		h.send(chatID, "The interview is complete. Use /restart to start a new one.")
		return
	}

	if err := h.validateUserInput(text); err != nil {
		h.send(chatID, "❌ "+err.Error())
		return
	}

	// Пустые и пробельные ответы молча игнорируются
	if !h.engine.CollectAnswer(session, text) {
		return
	}
	h.metrics.IncrementAnswersCollected()

	if h.engine.Phase(session) == interview.PhaseAskQuestion {
		h.askNextQuestion(chatID, session)
		return
	}
	h.finishInterview(chatID, session)
}

// finishInterview генерирует отчет и завершает интервью
func (h *Handler) finishInterview(chatID int64, session *interview.Session) {
	h.send(chatID, "⏳ Generating interview report...")

	err := h.generator.Generate(session)
	h.metrics.IncrementAPICall(err == nil)
	if err != nil {
		log.Printf("Ошибка генерации отчета для сессии %s: %v", session.ID, err)
	} else {
		h.metrics.IncrementReportsGenerated()
	}
	h.metrics.IncrementInterviewsCompleted()

	if last, ok := session.LastEntry(); ok {
		h.sendLong(chatID, last.Content)
	}

	completion := tgbotapi.NewMessage(chatID, "🎉 Interview completed! Scroll up to see the report.")
	completion.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Start New Interview", restartCallback),
		),
	)
	if _, err := h.bot.Send(completion); err != nil {
		log.Printf("Ошибка отправки сообщения: %v", err)
	}
}

// send отправляет текстовое сообщение в чат
func (h *Handler) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := h.bot.Send(msg); err != nil {
		// Повторяем без разметки: отчеты модели не всегда валидный Markdown
		plain := tgbotapi.NewMessage(chatID, text)
		if _, err := h.bot.Send(plain); err != nil {
			log.Printf("Ошибка отправки сообщения: %v", err)
		}
	}
}

// sendf отправляет форматированное сообщение
func (h *Handler) sendf(chatID int64, format string, args ...interface{}) {
	h.send(chatID, fmt.Sprintf(format, args...))
}

// sendLong отправляет длинный текст по частям с учетом лимита Telegram
func (h *Handler) sendLong(chatID int64, text string) {
	if len(text) <= maxMessageSize {
		h.send(chatID, text)
		return
	}

	runes := []rune(text)
	for start := 0; start < len(runes); start += maxMessageSize {
		end := start + maxMessageSize
		if end > len(runes) {
			end = len(runes)
		}
		h.send(chatID, string(runes[start:end]))
	}
}
