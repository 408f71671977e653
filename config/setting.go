package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3/log"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type serverConfig struct {
	Port        int    `koanf:"port" validate:"required"`
	Mode        string `koanf:"mode" validate:"required"`
	Concurrency int    `koanf:"concurrency" validate:"required"`
	BodyLimit   int    `koanf:"body_limit" validate:"required"`
	AppName     string `koanf:"app_name" validate:"required"`
}

type logLevel string

const (
	Debug logLevel = "debug"
	Info  logLevel = "info"
	Warn  logLevel = "warn"
	Error logLevel = "error"
	Fatal logLevel = "fatal"
	Panic logLevel = "panic"
)

type Module string

const (
	ModuleServer     Module = "server"
	ModuleSetting    Module = "setting"
	ModuleOpenAI     Module = "openai"
	ModuleCors       Module = "cors"
	ModuleAnalyze    Module = "analyze"
	ModuleVision     Module = "vision"
	ModuleConcept    Module = "concept"
	ModuleCurriculum Module = "curriculum"
	ModuleQuestion   Module = "question"
	ModuleFeedback   Module = "feedback"
	ModuleHealth     Module = "health"
)

type openaiConfig struct {
	// Key is an optional server-side fallback. Callers normally supply
	// their own key per request; it is never stored.
	Key               string  `koanf:"key"`
	Model             string  `koanf:"model" validate:"required"`
	VisionModel       string  `koanf:"vision_model" validate:"required"`
	VisionMaxTokens   int     `koanf:"vision_max_tokens" validate:"required"`
	VisionTemp        float64 `koanf:"vision_temperature"`
	CompletionTemp    float64 `koanf:"completion_temperature"`
	QuestionTokens    int     `koanf:"question_max_tokens" validate:"required"`
	SpecializedTokens int     `koanf:"specialized_max_tokens" validate:"required"`
	FeedbackTokens    int     `koanf:"feedback_max_tokens" validate:"required"`
}

type corsConfig struct {
	AllowOrigins []string `koanf:"allow_origins" validate:"required"`
	AllowMethods []string `koanf:"allow_methods" validate:"required"`
	AllowHeaders []string `koanf:"allow_headers" validate:"required"`
}

type uploadConfig struct {
	// MaxImageBytes bounds the multipart image accepted by analyze-image.
	MaxImageBytes int `koanf:"max_image_bytes" validate:"required"`
}

type config struct {
	Server   serverConfig `koanf:"server"`
	OpenAI   openaiConfig `koanf:"openai"`
	Cors     corsConfig   `koanf:"cors"`
	Upload   uploadConfig `koanf:"upload"`
	LogLevel logLevel     `koanf:"log_level"`
}

var defaultConfig = config{
	Server: serverConfig{
		Port:        3001,
		Mode:        "release",
		Concurrency: 256,
		BodyLimit:   50 * 1024 * 1024,
		AppName:     "ai-math-tutor",
	},
	OpenAI: openaiConfig{
		Key:               "",
		Model:             "gpt-4",
		VisionModel:       "gpt-4o-mini",
		VisionMaxTokens:   1000,
		VisionTemp:        0.1,
		CompletionTemp:    0.7,
		QuestionTokens:    800,
		SpecializedTokens: 2000,
		FeedbackTokens:    1000,
	},
	Cors: corsConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	},
	Upload: uploadConfig{
		MaxImageBytes: 10 * 1024 * 1024,
	},
	LogLevel: Info,
}

var (
	Cfg  = defaultConfig
	once sync.Once
)

func init() {
	path := "config.yaml"

	once.Do(func() {
		k := koanf.New(".")

		validate := validator.New()
		// defaults
		Cfg = defaultConfig

		// file
		if e := k.Load(file.Provider(path), yaml.Parser()); e != nil && !os.IsNotExist(e) {
			return
		}

		// env APP_SERVER_PORT
		if e := k.Load(env.Provider("APP_", ".", func(s string) string {
			return strings.ToLower(strings.TrimPrefix(s, "APP_"))
		}), nil); e != nil {
			return
		}

		// bind
		if e := k.Unmarshal("", &Cfg); e != nil {
			log.Errorf("failed to unmarshal config: %v", e)
		}

		// validate config
		if err := validate.Struct(Cfg); err != nil {
			if errs, ok := err.(validator.ValidationErrors); ok {
				var sb strings.Builder
				sb.WriteString(fmt.Sprintf("%v Config validation failed:\n", ModuleSetting))

				for _, e := range errs {
					sb.WriteString(
						fmt.Sprintf("  • %s: failed '%s' (value: %v)\n", e.Field(), e.Tag(), e.Value()),
					)
				}

				log.Error(sb.String())
			} else {
				log.Errorf("config validation failed: %v", err)
			}
		}
	})

}
