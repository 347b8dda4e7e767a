package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/myjobmatch/recommender/config"
	"github.com/myjobmatch/recommender/logger"
	"github.com/myjobmatch/recommender/recommender"
	"github.com/myjobmatch/recommender/service"
)

const (
	app       = "jobrank"
	envPrefix = "JOBRANK"
)

// Actual version can be specified in build command.
var version = "unknown"

// cliConfig is the viper view of flags and JOBRANK_* variables.
type cliConfig struct {
	Debug       bool   `mapstructure:"debug"`
	JSON        bool   `mapstructure:"json"`
	Input       string `mapstructure:"input"`
	K           int    `mapstructure:"k"`
	DefaultK    int    `mapstructure:"default-k"`
	MaxK        int    `mapstructure:"max-k"`
	Explain     bool   `mapstructure:"explain"`
	Policy      string `mapstructure:"policy"`
	ExcludeSelf bool   `mapstructure:"exclude-self"`
	JobID       string `mapstructure:"job-id"`
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("exclude-self", true)

	root := &cobra.Command{
		Use:           app,
		Short:         "jobrank ranks job postings for job seekers from JSON request files",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	root.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	root.PersistentFlags().StringP("input", "i", "-", "request file, - for stdin")
	root.PersistentFlags().Int("k", 0, "number of results (0 uses --default-k)")
	root.PersistentFlags().Int("default-k", 3, "result count when the request sets none")
	root.PersistentFlags().Int("max-k", 100, "upper bound for the request's k and --k")
	root.PersistentFlags().Bool("explain", false, "include skill, salary and distance scores")
	root.PersistentFlags().String("policy", config.PolicyZero, "missing field policy: zero or strict")

	for _, name := range []string{"debug", "json", "input", "k", "default-k", "max-k", "explain", "policy"} {
		_ = v.BindPFlag(name, root.PersistentFlags().Lookup(name))
	}

	root.AddCommand(
		newRecommendCommand(v),
		newBatchCommand(v),
		newSimilarCommand(v),
		newVersionCommand(),
	)
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", app, version)
		},
	}
}

func getConfig(v *viper.Viper) (*cliConfig, error) {
	var cfg cliConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("reading flags: %w", err)
	}
	cfg.Policy = strings.ToLower(cfg.Policy)
	return &cfg, nil
}

// newRecommender builds the ranking stack for one CLI invocation. Logs go to
// stderr so stdout stays valid JSON.
func newRecommender(cfg *cliConfig) (*service.Recommender, *zap.Logger, error) {
	log, err := logger.NewWithOutput(cfg.JSON, cfg.Debug, "stderr")
	if err != nil {
		return nil, nil, fmt.Errorf("creating a logger: %w", err)
	}

	svcCfg := &config.Config{
		DefaultK:           cfg.DefaultK,
		MaxK:               cfg.MaxK,
		BatchConcurrency:   1,
		MissingFieldPolicy: cfg.Policy,
	}
	if err := svcCfg.Validate(); err != nil {
		return nil, nil, err
	}

	opts := recommender.DefaultOptions()
	opts.ExcludeSelf = cfg.ExcludeSelf
	opts.Observer = logger.NewRankingObserver(log.Named("engine"))

	engine, err := recommender.NewEngine(opts)
	if err != nil {
		return nil, nil, err
	}

	return service.NewRecommender(svcCfg, engine, nil, log), log, nil
}

func readRequest(cmd *cobra.Command, path string, v interface{}) error {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" && path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("%w: decoding request: %v", recommender.ErrInvalidInput, err)
	}
	return nil
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
