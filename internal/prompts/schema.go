package prompts

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Section представляет один раздел итогового отчета
type Section struct {
	Title       string `yaml:"title"`
	Instruction string `yaml:"instruction"`
}

// ReportSchema определяет структуру итогового отчета
type ReportSchema struct {
	Persona  string    `yaml:"persona"`
	Sections []Section `yaml:"sections"`
}

// ParseReportSchema парсит схему отчета из YAML
func ParseReportSchema(data []byte) (*ReportSchema, error) {
	var schema ReportSchema
	err := yaml.Unmarshal(data, &schema)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга схемы отчета: %w", err)
	}

	if schema.Persona == "" {
		return nil, fmt.Errorf("схема отчета должна содержать persona")
	}

	if len(schema.Sections) == 0 {
		return nil, fmt.Errorf("схема отчета должна содержать хотя бы один раздел")
	}

	for i, section := range schema.Sections {
		if section.Title == "" {
			return nil, fmt.Errorf("раздел %d должен иметь title", i+1)
		}
		if section.Instruction == "" {
			return nil, fmt.Errorf("раздел %d должен иметь instruction", i+1)
		}
	}

	return &schema, nil
}

// LoadReportSchema загружает схему отчета из файла, а при его отсутствии
// возвращает встроенную схему из пяти разделов
func LoadReportSchema(filename string) (*ReportSchema, error) {
	data, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return DefaultReportSchema(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла %s: %w", filename, err)
	}
	return ParseReportSchema(data)
}

// DefaultReportSchema возвращает встроенную пятичастную структуру отчета
func DefaultReportSchema() *ReportSchema {
	return &ReportSchema{
		Persona: "You are an experienced HR specialist responsible for evaluating job candidates after structured interviews. " +
			"Below are the candidate's responses to a series of interview questions. " +
			"Your task is to write a well-structured, formal 5-paragraph evaluation report. " +
			"This report should reflect the candidate's communication skills, professional experience, critical thinking, and cultural fit for the role.",
		Sections: []Section{
			{
				Title:       "Introduction",
				Instruction: "Briefly introduce the candidate and the interview context.",
			},
			{
				Title:       "Strengths",
				Instruction: "Highlight key strengths observed from the responses.",
			},
			{
				Title:       "Weaknesses or Areas for Improvement",
				Instruction: "Mention any concerns or gaps noted during the interview.",
			},
			{
				Title:       "Overall Impression",
				Instruction: "Summarize how the candidate presented themselves professionally.",
			},
			{
				Title:       "Recommendation",
				Instruction: "Conclude with your recommendation on the candidate's suitability for the role (e.g., move forward to next round, strong hire, needs more evaluation, etc.).",
			},
		},
	}
}
