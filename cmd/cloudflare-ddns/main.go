package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/qdm12/cloudflare-ddns/internal/cloudflare"
	"github.com/qdm12/cloudflare-ddns/internal/config"
	"github.com/qdm12/cloudflare-ddns/internal/models"
	"github.com/qdm12/cloudflare-ddns/internal/shoutrrr"
	"github.com/qdm12/cloudflare-ddns/internal/update"
	"github.com/qdm12/cloudflare-ddns/pkg/publicip"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	ctx, cancel := context.WithCancel(ctx)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, reader, os.Args, os.Stdout, logger, buildInfo)
	}()

	select {
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, shutting down")
	case err := <-errorCh:
		stop()
		close(errorCh)
		if err == nil {
			os.Exit(0)
		}
		logger.Error(err.Error())
		cancel()
		os.Exit(1)
	}

	const shutdownGracePeriod = 5 * time.Second
	timer := time.NewTimer(shutdownGracePeriod)
	select {
	case err := <-errorCh:
		if !timer.Stop() {
			<-timer.C
		}
		if err != nil {
			logger.Error(err.Error())
		}
		logger.Info("Shutdown successful")
	case <-timer.C:
		logger.Warn("Shutdown timed out")
	}
	cancel()

	os.Exit(1)
}

func _main(ctx context.Context, reader config.Reader, args []string, stdout io.Writer,
	logger log.LoggerInterface, buildInfo models.BuildInformation) (err error) {
	flags, err := parseFlags(args, stdout)
	switch {
	case errors.Is(err, errHelpRequested):
		return nil
	case err != nil:
		return err
	case flags.version:
		fmt.Fprintln(stdout, buildInfo.VersionString())
		return nil
	}

	printSplash(stdout, buildInfo)

	level, err := config.ParseLogLevel(flags.logLevel)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	logger.Patch(log.SetLevel(level))

	config, err := readConfig(flags.configPath, reader)
	if err != nil {
		return err
	}
	logger.Info(config.String())

	shoutrrrSettings := shoutrrr.Settings{
		Addresses: config.Notifications,
		Logger:    logger.New(log.SetComponent("shoutrrr")),
	}
	shoutrrrClient, err := shoutrrr.New(shoutrrrSettings)
	if err != nil {
		return fmt.Errorf("setting up Shoutrrr: %w", err)
	}

	client := &http.Client{Timeout: config.Client.Timeout}
	defer client.CloseIdleConnections()

	err = run(ctx, config, flags.verifyToken, client, level, logger, shoutrrrClient)
	if err != nil {
		shoutrrrClient.Notify(err.Error())
		return err
	}
	return nil
}

func readConfig(path string, reader config.Reader) (
	settings config.Config, err error) {
	settings, err = config.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("reading settings: %w", err)
	}

	err = settings.Read(reader)
	if err != nil {
		return settings, fmt.Errorf("reading settings: %w", err)
	}

	settings.SetDefaults()
	err = settings.Validate()
	if err != nil {
		return settings, fmt.Errorf("settings validation: %w", err)
	}

	return settings, nil
}

func run(ctx context.Context, settings config.Config, verifyToken bool,
	client *http.Client, level log.Level, logger log.LoggerInterface,
	notifier update.Notifier) (err error) {
	cloudflareLogger := logger.New(log.SetComponent("cloudflare"))
	var cloudflareOptions []cloudflare.Option
	if level == log.LevelDebug {
		cloudflareOptions = append(cloudflareOptions, cloudflare.SetDebugLogger(cloudflareLogger))
	}
	cloudflareClient := cloudflare.New(client, *settings.APIToken, cloudflareOptions...)

	if verifyToken {
		err = cloudflareClient.VerifyToken(ctx)
		if err != nil {
			return fmt.Errorf("verifying API token: %w", err)
		}
		cloudflareLogger.Info("API token is valid and active")
		return nil
	}

	publicIPLogger := logger.New(log.SetComponent("public ip"))
	ipFetcher, err := publicip.NewFetcher(settings.Resolvers.Settings(client, publicIPLogger))
	if err != nil {
		return fmt.Errorf("creating public IP fetcher: %w", err)
	}

	ips := ipFetcher.IPs(ctx, *settings.IPv4, *settings.IPv6)
	if len(ips) == 0 {
		logger.Warn("no public IP address found, no record to update")
		return nil
	}
	for _, ip := range ips {
		publicIPLogger.Info("public IP address is " + ip.String())
	}

	updater := update.New(cloudflareClient, logger.New(log.SetComponent("updater")), notifier)
	errs := make([]error, 0, len(settings.Records))
	for _, record := range settings.Records {
		err = updater.UpsertRecords(ctx, record.ZoneID, record.Subdomain, record.Proxied, ips)
		if err != nil {
			errs = append(errs, fmt.Errorf("zone %s subdomain %s: %w",
				record.ZoneID, record.Subdomain, err))
		}
	}
	return errors.Join(errs...)
}

func printSplash(w io.Writer, buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "qdm12",
		Repository: "cloudflare-ddns",
		Emails:     []string{"quentin.mcgaw@gmail.com"},
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
		// Sponsor information
		PaypalUser:    "qmcgaw",
		GithubSponsor: "qdm12",
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Fprintln(w, line)
	}
}
