package config

// Config представляет конфигурацию интервью
type Config struct {
	InterviewConfig InterviewConfig `yaml:"interview_config"`
	Questions       []string        `yaml:"questions"`
}

// InterviewConfig содержит общие настройки интервью
type InterviewConfig struct {
	TotalQuestions int `yaml:"total_questions"`
}

// GetTotalQuestions возвращает количество вопросов интервью
func (c *Config) GetTotalQuestions() int {
	return c.InterviewConfig.TotalQuestions
}

// Default возвращает встроенный список из десяти вопросов.
// Используется, когда YAML файл конфигурации отсутствует.
func Default() *Config {
	questions := []string{
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
	return &Config{
		InterviewConfig: InterviewConfig{TotalQuestions: len(questions)},
		Questions:       questions,
	}
}
