package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ThomasCrouzet/tierview/internal/collector"
	"github.com/ThomasCrouzet/tierview/internal/config"
	"github.com/ThomasCrouzet/tierview/internal/inventory"
	"github.com/ThomasCrouzet/tierview/internal/logging"
	"github.com/ThomasCrouzet/tierview/internal/server"
	"github.com/ThomasCrouzet/tierview/internal/ui"
)

// browserDelay gives the listener a moment before the browser hits it.
const browserDelay = time.Second

var (
	cfgFile     string
	useAWS      bool
	fixturesDir string
	logLevel    string

	noBrowser  bool
	listenPort int
	listenHost string
)

var rootCmd = &cobra.Command{
	Use:   "tierview",
	Short: "Live dashboard of a 3-tier AWS architecture",
	Long: `tierview discovers the VPCs, subnets, instances, security groups and
internet gateways of a 3-tier AWS deployment and serves them as a layered
dashboard that is rebuilt on every page load.

By default it queries a LocalStack emulator at http://localhost:4566.
Pass --aws to query real AWS with the default credential chain.`,
	SilenceUsage: true,
	RunE:         runDashboard,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: tierview.yml)")
	rootCmd.PersistentFlags().BoolVar(&useAWS, "aws", false, "query real AWS instead of LocalStack")
	rootCmd.PersistentFlags().StringVar(&fixturesDir, "fixtures", "", "read describe-*.json files from this directory instead of calling aws")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.Flags().BoolVar(&noBrowser, "no-browser", false, "do not open a browser")
	rootCmd.Flags().IntVar(&listenPort, "port", 0, "port to listen on (default: 8080)")
	rootCmd.Flags().StringVar(&listenHost, "host", "", "address to listen on (default: localhost)")
}

func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tierview")
		viper.SetConfigType("yml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		}
	}
}

// loadConfig decodes the config and applies the persistent flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "run 'tierview init' to create a config file"))
		return nil, err
	}
	if useAWS {
		cfg.Mode = string(inventory.ModeAWS)
	}
	if fixturesDir != "" {
		cfg.Query.FixturesDir = fixturesDir
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.ExpandPaths(); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Invalid path in config", err.Error(), "use an absolute path or one starting with ~/"))
		return nil, err
	}
	return cfg, nil
}

// setup loads the config and installs the global logger. The returned
// func flushes and restores the logger.
func setup() (*config.Config, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	restore, err := logging.Initialize(cfg.Log)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to set up logging", err.Error(), "check log.level, log.format and log.output"))
		return nil, nil, err
	}
	return cfg, restore, nil
}

func collectorOptions(cfg *config.Config, src inventory.Source) collector.Options {
	return collector.Options{
		Mode:       src.Label(),
		Concurrent: cfg.Query.Concurrent,
		Deadline:   cfg.Query.Deadline,
	}
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, restore, err := setup()
	if err != nil {
		return err
	}
	defer restore()

	if listenPort != 0 {
		cfg.Server.Port = listenPort
	}
	if listenHost != "" {
		cfg.Server.Host = listenHost
	}
	if noBrowser {
		cfg.Server.OpenBrowser = false
	}

	src := inventory.NewSource(cfg.InventoryOptions())

	ui.Banner("3-Tier Architecture Dashboard")
	ui.Mode(src.Label())

	if err := preflight(cmd.Context(), src); err != nil {
		return err
	}

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Cannot listen on "+addr, err.Error(), "pick another port with --port"))
		return err
	}

	srv := server.New(
		collector.NewBuilder(src, collectorOptions(cfg, src)),
		server.Config{StaticDir: cfg.Server.StaticDir, Metrics: cfg.Server.Metrics},
		listener,
	)

	url := "http://" + addr
	ui.Serving(url)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Server.OpenBrowser {
		timer := time.AfterFunc(browserDelay, func() {
			if err := openBrowser(url); err != nil {
				zap.S().Named("cmd").Warnw("cannot open browser", "url", url, "error", err)
			}
		})
		defer timer.Stop()
	}

	err = srv.Run(ctx)
	fmt.Fprintln(ui.Out, "\n  Dashboard stopped.")
	return err
}

// preflight runs the source's startup check and prints its outcome.
func preflight(ctx context.Context, src inventory.Source) error {
	err := src.Preflight(ctx)
	if err == nil {
		ui.CheckOK(preflightLabel(src))
		return nil
	}

	var pe *inventory.PreflightError
	if errors.As(err, &pe) {
		ui.CheckFailed(pe.Check)
		fmt.Fprint(os.Stderr, ui.FormatError(pe.Check+" is not usable", pe.Err.Error(), pe.Hint))
		return err
	}
	ui.CheckFailed(preflightLabel(src))
	fmt.Fprint(os.Stderr, ui.FormatError("Pre-flight check failed", err.Error(), ""))
	return err
}

func preflightLabel(src inventory.Source) string {
	switch src.Label() {
	case inventory.ModeAWS.Label():
		return "AWS credentials"
	case inventory.ModeLocalStack.Label():
		return "LocalStack"
	}
	return "fixtures directory"
}

func openBrowser(url string) error {
	var cmd string
	var args []string
	switch runtime.GOOS {
	case "darwin":
		cmd = "open"
	case "windows":
		cmd, args = "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		cmd = "xdg-open"
	}

	path, err := findExecutable(cmd)
	if err != nil {
		return err
	}
	return execCommand(path, append(args, url)...).Start()
}
