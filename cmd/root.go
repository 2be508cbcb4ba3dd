package cmd

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/careerise/internal/knowledge"
	"github.com/spigell/careerise/internal/logger"
	"github.com/spigell/careerise/internal/profile"
	"github.com/spigell/careerise/internal/recommend"
	"github.com/spigell/careerise/internal/server"
	"github.com/spigell/careerise/internal/store"
)

const (
	app       = "careerise"
	envPrefix = "CAREERISE"
)

type Config struct {
	Store     *StoreConfig         `mapstructure:"store"`
	Server    *server.Config       `mapstructure:"server"`
	Recommend *RecommendConfig     `mapstructure:"recommend"`
	Knowledge *knowledge.Overrides `mapstructure:"knowledge"`
}

type StoreConfig struct {
	Path string `mapstructure:"path"`
}

type RecommendConfig struct {
	ExamLimit int `mapstructure:"exam-limit"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "careerise extracts candidate profiles from resumes and recommends careers and exams",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is careerise.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	viper.SetDefault("store.path", "data/profiles.json")
	viper.SetDefault("server.addr", server.DefaultAddr)
	viper.SetDefault("server.read-timeout", server.DefaultReadTimeout)
	viper.SetDefault("server.write-timeout", server.DefaultWriteTimeout)
	viper.SetDefault("server.max-upload-bytes", server.DefaultMaxUploadBytes)
	viper.SetDefault("recommend.exam-limit", recommend.DefaultExamLimit)
}

func initConfig() {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	err := viper.ReadInConfig()
	if err == nil {
		return
	}

	// The default config file is optional, an explicitly requested one is not.
	var notFound viper.ConfigFileNotFoundError
	if cfgFile == "" && errors.As(err, &notFound) {
		return
	}
	log.Fatal(err)
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config == nil {
		config = &Config{}
	}
	if config.Store == nil {
		config.Store = &StoreConfig{}
	}
	if config.Server == nil {
		config.Server = &server.Config{}
	}
	if config.Recommend == nil {
		config.Recommend = &RecommendConfig{}
	}

	return config, nil
}

// deps holds everything a command needs after configuration is resolved.
type deps struct {
	logger    *zap.Logger
	config    *Config
	base      *knowledge.Base
	store     *store.Store
	assembler *profile.Assembler
}

func setup() (*deps, error) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return nil, fmt.Errorf("creating a logger: %w", err)
	}

	config, err := getConfig()
	if err != nil {
		return nil, fmt.Errorf("getting a config: %w", err)
	}

	base, err := knowledge.Load(config.Knowledge)
	if err != nil {
		return nil, fmt.Errorf("loading knowledge bases: %w", err)
	}

	logger.Debug("configuration loaded",
		zap.String("store_path", config.Store.Path),
		zap.Int("skills", base.Vocabulary.Len()),
		zap.Int("careers", len(base.Careers)),
		zap.Int("exams", len(base.Exams)),
	)

	return &deps{
		logger:    logger,
		config:    config,
		base:      base,
		store:     store.New(config.Store.Path, logger),
		assembler: profile.NewAssembler(base, logger),
	}, nil
}
