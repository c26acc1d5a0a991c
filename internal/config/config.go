package config

import (
	_ "embed"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/kozaktomas/skin-advisor/internal/constants"
)

//go:embed rules.yaml
var rulesYAML []byte

type Config struct {
	Web       WebConfig
	Catalog   CatalogConfig
	Analyzer  AnalyzerConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Ollama    OllamaConfig
	Recommend RecommendConfig
	Rules     RulesConfig
}

type WebConfig struct {
	Port           int
	Host           string
	AllowedOrigins string // comma-separated CORS whitelist, localhost is always allowed
}

type CatalogConfig struct {
	Path string // path to the products JSON file
}

type AnalyzerConfig struct {
	Backend string // heuristic (default), openai, gemini or ollama
}

type OpenAIConfig struct {
	Token string
}

type GeminiConfig struct {
	APIKey string
}

type OllamaConfig struct {
	URL   string // defaults to http://localhost:11434
	Model string // defaults to llama3.2-vision:11b
}

type RecommendConfig struct {
	TopN int // maximum number of recommended products (default 5)
}

// RulesConfig holds the embedded mapping rules between analyzer indicators,
// skin issues and follow-up questions.
type RulesConfig struct {
	Quiz                QuizRules      `yaml:"quiz"`
	ConfidenceThreshold float64        `yaml:"confidence_threshold"`
	Issues              []IssueRule    `yaml:"issues"`
	Questions           []QuestionRule `yaml:"questions"`
}

type QuizRules struct {
	OpeningQuestion string `yaml:"opening_question"`
}

// IssueRule maps analyzer indicators to one issue label.
// Issues marked Always appear in every scan result.
type IssueRule struct {
	Name       string   `yaml:"name"`
	Indicators []string `yaml:"indicators"`
	Always     bool     `yaml:"always"`
}

// QuestionRule declares one follow-up question tied to an issue.
// Weights boost the recommendation score of products tagged with the
// linked issue when the user picks the matching answer.
type QuestionRule struct {
	ID      string         `yaml:"id"`
	Issue   string         `yaml:"issue"`
	Text    string         `yaml:"text"`
	Type    string         `yaml:"type"`
	Options []string       `yaml:"options"`
	Weights map[string]int `yaml:"weights"`
}

// QuestionForIssue returns the question rule linked to an issue, if any.
func (r *RulesConfig) QuestionForIssue(issue string) (QuestionRule, bool) {
	for _, q := range r.Questions {
		if q.Issue == issue {
			return q, true
		}
	}
	return QuestionRule{}, false
}

// QuestionByID returns the question rule with the given id, if any.
func (r *RulesConfig) QuestionByID(id string) (QuestionRule, bool) {
	for _, q := range r.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return QuestionRule{}, false
}

// Vocabulary returns all issue names in rule order.
func (r *RulesConfig) Vocabulary() []string {
	names := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		names = append(names, issue.Name)
	}
	return names
}

// Indicators returns every indicator name referenced by the issue rules,
// in rule order and without duplicates.
func (r *RulesConfig) Indicators() []string {
	var names []string
	seen := map[string]struct{}{}
	for _, issue := range r.Issues {
		for _, ind := range issue.Indicators {
			if _, ok := seen[ind]; ok {
				continue
			}
			seen[ind] = struct{}{}
			names = append(names, ind)
		}
	}
	return names
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envString reads an environment variable with a fallback default.
func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

func Load() *Config {
	var rules RulesConfig
	if err := yaml.Unmarshal(rulesYAML, &rules); err != nil {
		// This is an embedded file so this error should never happen in practice
		panic("failed to unmarshal embedded rules.yaml: " + err.Error())
	}

	return &Config{
		Web: WebConfig{
			Port:           envInt("WEB_PORT", 8000),
			Host:           envString("WEB_HOST", "0.0.0.0"),
			AllowedOrigins: os.Getenv("WEB_ALLOWED_ORIGINS"),
		},
		Catalog: CatalogConfig{
			Path: envString("PRODUCT_FILE_PATH", "data/products.json"),
		},
		Analyzer: AnalyzerConfig{
			Backend: envString("ANALYZER", "heuristic"),
		},
		OpenAI: OpenAIConfig{
			Token: os.Getenv("OPENAI_TOKEN"),
		},
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
		},
		Ollama: OllamaConfig{
			URL:   os.Getenv("OLLAMA_URL"),
			Model: os.Getenv("OLLAMA_MODEL"),
		},
		Recommend: RecommendConfig{
			TopN: envInt("RECOMMEND_TOP_N", constants.DefaultTopN),
		},
		Rules: rules,
	}
}
