package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load загружает конфигурацию интервью из YAML файла
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла %s: %w", filename, err)
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга YAML: %w", err)
	}

	// Валидация конфигурации
	err = validateConfig(&config)
	if err != nil {
		return nil, fmt.Errorf("ошибка валидации конфигурации: %w", err)
	}

	return &config, nil
}

// LoadOrDefault загружает конфигурацию из файла, а при его отсутствии
// возвращает встроенный список вопросов
func LoadOrDefault(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(filename)
}

// validateConfig проверяет корректность конфигурации
func validateConfig(config *Config) error {
	if config.InterviewConfig.TotalQuestions <= 0 {
		return fmt.Errorf("total_questions должно быть больше 0")
	}

	if len(config.Questions) == 0 {
		return fmt.Errorf("список questions не может быть пустым")
	}

	if len(config.Questions) != config.InterviewConfig.TotalQuestions {
		return fmt.Errorf("количество вопросов (%d) не соответствует total_questions (%d)",
			len(config.Questions), config.InterviewConfig.TotalQuestions)
	}

	for i, question := range config.Questions {
		if strings.TrimSpace(question) == "" {
			return fmt.Errorf("вопрос %d не может быть пустым", i+1)
		}
	}

	return nil
}
