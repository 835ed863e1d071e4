package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Rana718/carga/internal/config"
	"github.com/Rana718/carga/internal/dataset"
	"github.com/Rana718/carga/internal/export"
	"github.com/Rana718/carga/internal/log"
	"github.com/Rana718/carga/internal/metrics"
	"github.com/Rana718/carga/internal/seeder"
)

var (
	cfgFile   string
	configErr error
)

var rootCmd = &cobra.Command{
	Use:   "carga",
	Short: "Load synthetic professors records into a relational database",
	Long: `
carga fills the professors schema with synthetic but referentially valid
records. It applies the embedded schema migrations, then walks a fixed
dependency plan so every row only references rows stored before it.

Records the database refuses are counted and skipped; the run only stops on
fatal errors such as a lost connection or a missing DATABASE_URL.

Database Support:
- MySQL (default)
- PostgreSQL
- SQLite`,
	Example: `  carga                 # 1000 samples per independent table
  carga -c 50 --seed 7  # small reproducible load
  carga migrate         # only apply the schema`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runLoad,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./carga.config.json)")
	pf.String("migrations", "", "directory with .sql migrations (default: embedded schema)")
	pf.String("log-level", "info", "diagnostic log level (trace, debug, info, warn, error)")
	pf.Bool("log-json", false, "emit diagnostic logs as JSON")

	f := rootCmd.Flags()
	f.IntP("cantidad", "c", config.DefaultCantidad, "sample count for independent tables")
	f.Int64("seed", 0, "random seed (0 picks one from the clock)")
	f.Int("workers", 1, "concurrent inserts per stage")
	f.String("datasets", "", "directory with provincias.csv, universidades.csv and idiomas.csv (default: embedded)")
	f.Bool("skip-migrations", false, "do not apply migrations before loading")
	f.String("metrics-file", "", "write Prometheus metrics to this file when the run ends")
	f.String("summary-file", "", "write the run summary to this file (.json, .csv or .yaml)")

	bindFlags(pf, map[string]string{
		"migrations_path": "migrations",
		"log.level":       "log-level",
		"log.json":        "log-json",
	})
	bindFlags(f, map[string]string{
		"cantidad":        "cantidad",
		"seed":            "seed",
		"workers":         "workers",
		"datasets_path":   "datasets",
		"skip_migrations": "skip-migrations",
		"metrics_file":    "metrics-file",
		"summary_file":    "summary-file",
	})
}

// bindFlags maps config keys onto flags so a set flag wins over env and file.
func bindFlags(fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := viper.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("carga.config")
	}

	viper.SetEnvPrefix("CARGA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			configErr = fmt.Errorf("failed to read config file: %w", err)
		}
	}
}

// loadConfig resolves flags, environment and config file, and sets up logging.
func loadConfig() (*config.Config, error) {
	if configErr != nil {
		return nil, configErr
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := log.Init(cfg.Log.Level, cfg.Log.JSON); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runLoad(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	m := metrics.New()
	log.Log.Logger.AddHook(metrics.NewLogHook(m))

	adapter, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer adapter.Close()

	if cfg.SkipMigrations {
		color.Yellow("⚠️  Skipping migrations")
	} else if err := applyMigrations(ctx, cfg, adapter); err != nil {
		return err
	}

	data, err := dataset.Load(cfg.DatasetsPath)
	if err != nil {
		return fmt.Errorf("failed to load reference datasets: %w", err)
	}

	s, err := seeder.NewSeeder(adapter, data,
		seeder.SeedConfig{Count: cfg.Cantidad, Workers: cfg.Workers, Seed: cfg.Seed},
		seeder.WithMetrics(m),
		seeder.WithReporter(seeder.NewReporter(os.Stdout)),
	)
	if err != nil {
		return err
	}
	log.WithRun(s.RunID())

	color.Cyan("🌱 Loading %d samples per independent table (run %s)", cfg.Cantidad, s.RunID())
	summary, seedErr := s.Seed(ctx)

	if cfg.SummaryFile != "" {
		if err := export.WriteSummary(cfg.SummaryFile, summary); err != nil {
			log.Log.WithError(err).Error("could not export summary")
		}
	}

	if cfg.MetricsFile != "" {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Log.WithError(err).Error("could not export metrics")
		}
	}
	return seedErr
}
