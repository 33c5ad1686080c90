package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/c9s/bbgo-wallet/pkg/cmd/cmdutil"
	"github.com/c9s/bbgo-wallet/pkg/config"
	"github.com/c9s/bbgo-wallet/pkg/types"
)

const defaultLogFile = "log/binance-wallet.log"

// userConfig is loaded by the PersistentPreRunE of the root command
var userConfig *config.Config

// newWalletService builds the wallet service for the sub-commands, tests replace it with a mock.
var newWalletService = func(ctx context.Context, c *config.Config) (types.ExchangeWalletService, error) {
	return cmdutil.NewExchange(ctx, types.ExchangeBinance, c)
}

var RootCmd = &cobra.Command{
	Use:   "binance-wallet",
	Short: "binance wallet query tool",
	Long:  "query the coin configuration, asset details and deposit addresses of a binance account",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	// assigned here to avoid an initialization cycle through requiresConfig
	RootCmd.PersistentPreRunE = persistentPreRunE
	cmdutil.PersistentFlags(RootCmd.PersistentFlags())
}

func persistentPreRunE(cmd *cobra.Command, args []string) error {
	if !requiresConfig(cmd) {
		return nil
	}

	dotenvFile, err := cmd.Flags().GetString("dotenv")
	if err != nil {
		return err
	}

	if len(dotenvFile) > 0 {
		if _, err := os.Stat(dotenvFile); err == nil {
			if err := godotenv.Load(dotenvFile); err != nil {
				return errors.Wrapf(err, "error loading dotenv file %s", dotenvFile)
			}
		}
	}

	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	v := viper.New()
	if err := cmdutil.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}

	userConfig, err = config.Load(v, configFile)
	if err != nil {
		return err
	}

	setupLogging(&userConfig.Logging)

	if len(userConfig.Metrics.Listen) > 0 {
		go serveMetrics(userConfig.Metrics.Listen)
	}

	return nil
}

// requiresConfig reports whether the command queries the exchange, the root
// command, help, version and shell completion run without credentials.
func requiresConfig(cmd *cobra.Command) bool {
	if cmd == RootCmd || cmd == VersionCmd {
		return false
	}

	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}

	return true
}

func setupLogging(c *config.LoggingConfig) {
	log.SetFormatter(&prefixed.TextFormatter{})

	logger := log.StandardLogger()
	if c.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	logFile := c.File
	environment := os.Getenv("BINANCE_WALLET_ENV")
	switch environment {
	case "production", "prod":
		if len(logFile) == 0 {
			logFile = defaultLogFile
		}
	}

	if len(logFile) == 0 {
		return
	}

	writer := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		Compress:   true,
	}

	logger.AddHook(
		lfshook.NewHook(
			lfshook.WriterMap{
				log.DebugLevel: writer,
				log.InfoLevel:  writer,
				log.WarnLevel:  writer,
				log.ErrorLevel: writer,
				log.FatalLevel: writer,
			},
			&log.JSONFormatter{},
		),
	)
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Infof("serving metrics on %s/metrics", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Errorf("metrics server error")
	}
}

func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
