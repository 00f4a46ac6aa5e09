package cli

import (
	"fmt"
	"log"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"hr-interview-bot/internal/config"
	"hr-interview-bot/internal/interview"
	"hr-interview-bot/internal/llm"
	"hr-interview-bot/internal/metrics"
	"hr-interview-bot/internal/prompts"
	"hr-interview-bot/internal/report"
	"hr-interview-bot/internal/server"
	"hr-interview-bot/internal/storage"
	"hr-interview-bot/internal/telegram"
)

// Version задается при сборке
var Version = "dev"

var (
	flagConfig       string
	flagReportSchema string
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hr-interview-bot",
		Short: "Telegram бот, проводящий структурированное HR интервью с генерацией отчета",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot()
		},
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "config/interview.yaml", "путь к YAML файлу с вопросами")
	cmd.PersistentFlags().StringVar(&flagReportSchema, "report-schema", "config/report.yaml", "путь к YAML схеме отчета")

	cmd.AddCommand(newConsoleCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadDependencies загружает конфигурацию и собирает общие сервисы
func loadDependencies() (*interview.Engine, *report.Generator, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используются переменные окружения")
	}

	appCfg := config.LoadAppConfig()
	if err := appCfg.Groq.Validate(); err != nil {
		return nil, nil, fmt.Errorf("ошибка конфигурации Groq: %w", err)
	}

	cfg, err := config.LoadOrDefault(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка загрузки конфигурации интервью: %w", err)
	}

	schema, err := prompts.LoadReportSchema(flagReportSchema)
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка загрузки схемы отчета: %w", err)
	}

	engine := interview.NewEngine(cfg.Questions)
	client := llm.NewClient(appCfg.Groq)
	generator := report.NewGenerator(client, schema, cfg.Questions)

	return engine, generator, nil
}

// runBot запускает Telegram бота и служебный HTTP сервер
func runBot() error {
	engine, generator, err := loadDependencies()
	if err != nil {
		return err
	}

	appCfg := config.LoadAppConfig()
	if appCfg.Telegram.Token == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN не установлен")
	}

	bot, err := tgbotapi.NewBotAPI(appCfg.Telegram.Token)
	if err != nil {
		return fmt.Errorf("ошибка подключения к Telegram: %w", err)
	}
	bot.Debug = appCfg.Telegram.Debug
	log.Printf("Авторизован как %s", bot.Self.UserName)

	store := storage.NewStore(engine)
	m := metrics.NewMetrics()

	srv := server.New(appCfg.Server, m, store)
	go func() {
		if err := srv.Run(); err != nil {
			log.Printf("Служебный сервер остановлен: %v", err)
		}
	}()

	log.Printf("Бот запущен: %d вопросов в интервью", engine.Total())
	handler := telegram.NewHandler(bot, engine, generator, store, m)
	handler.Run()

	return nil
}
