package configuration

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const Production = "production"

var singleton = sync.OnceValue(func() *Configuration {
	c := &Configuration{}
	if err := c.load([]string{".env", ".env.local"}); err != nil {
		c.Unload()
		panic(err)
	}
	return c
})

func Use() *Configuration {
	return singleton()
}

// LoadEnv loads the given env files, walking up to the go.mod root when
// none exist in the working directory. Returns the number of files loaded.
func LoadEnv(envFiles []string) (int, error) {
	existing := collectExisting(envFiles)
	if len(existing) == 0 {
		if root, ok := findModuleRoot(); ok {
			rooted := make([]string, 0, len(envFiles))
			for _, f := range envFiles {
				rooted = append(rooted, filepath.Join(root, f))
			}
			existing = collectExisting(rooted)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}

func collectExisting(files []string) []string {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	return existing
}

func findModuleRoot() (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

type DatabaseOptions struct {
	Opts     string `env:"-"`
	Name     string `env:"DB_NAME" envDefault:"zhiguan"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
}

func (d *DatabaseOptions) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Name, d.Password,
	)
}

type Configuration struct {
	Database DatabaseOptions

	Address          string   `env:"ADDRESS" envDefault:"localhost:8080"`
	GoAppEnvironment string   `env:"GO_APP_ENV" envDefault:"development"`
	AllowedOrigins   []string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:8000" envSeparator:","`
	RequestIDHeader  string   `env:"REQUEST_ID_HEADER" envDefault:"X-Request-ID"`
	LogLevel         string   `env:"LOG_LEVEL" envDefault:"info"`
	LogPath          string   `env:"LOG_PATH" envDefault:""`

	logger  *logrus.Logger
	logFile *os.File
}

func (c *Configuration) Logger() *logrus.Logger {
	return c.logger
}

func (c *Configuration) load(envFiles []string) error {
	n, err := LoadEnv(envFiles)
	if err != nil {
		return err
	}
	if n == 0 && len(envFiles) > 0 {
		log.Println("no .env files found, using environment variables only")
	}
	if err := env.Parse(c); err != nil {
		return err
	}
	if err := env.Parse(&c.Database); err != nil {
		return err
	}
	c.Database.Opts = c.Database.ConnectionString()
	return c.setupLogger()
}

func (c *Configuration) setupLogger() error {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}

	logger := logrus.New()
	logger.SetLevel(level)

	if c.GoAppEnvironment == Production {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var out io.Writer = os.Stdout
	if c.LogPath != "" {
		if err := os.MkdirAll(filepath.Dir(c.LogPath), 0o755); err != nil {
			return err
		}
		f, err := os.OpenFile(c.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		c.logFile = f
		out = io.MultiWriter(os.Stdout, f)
	}
	logger.SetOutput(out)

	c.logger = logger
	return nil
}

// Unload releases resources held by the configuration.
func (c *Configuration) Unload() {
	if c.logFile != nil {
		_ = c.logFile.Close()
		c.logFile = nil
	}
}
