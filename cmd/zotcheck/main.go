package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"emperror.dev/errors"
	"github.com/je4/zotdata/pkg/filesystem"
	"github.com/je4/zotdata/pkg/zotapi"
	"github.com/op/go-logging"
	"github.com/spf13/pflag"
)

var _logformat = logging.MustStringFormatter(
	`%{time:2006-01-02T15:04:05.000} %{module}::%{shortfunc} [%{shortfile}] > %{level:.5s} - %{message}`,
)

func CreateLogger(module string, logfile string, loglevel string) (log *logging.Logger, lf *os.File) {
	log = logging.MustGetLogger(module)
	var err error
	if logfile != "" {
		lf, err = os.OpenFile(logfile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Errorf("Cannot open logfile %v: %v", logfile, err)
			lf = os.Stderr
		}
	} else {
		lf = os.Stderr
	}
	level, err := logging.LogLevel(loglevel)
	if err != nil {
		level = logging.INFO
	}
	backend := logging.NewLogBackend(lf, "", 0)
	backendLeveled := logging.AddModuleLevel(backend)
	backendLeveled.SetLevel(level, "")

	logging.SetFormatter(_logformat)
	logging.SetBackend(backendLeveled)

	return
}

func openStore(store Store, logger *logging.Logger) (filesystem.FileSystem, error) {
	switch store.Type {
	case StoreLocal:
		return filesystem.NewLocalFs(store.Path, logger)
	case StoreGit:
		return filesystem.NewGitFs(store.Path, logger)
	case StoreS3:
		return filesystem.NewS3Fs(store.Endpoint, store.AccessKeyId, store.SecretAccessKey, store.UseSSL)
	}
	return nil, errors.Errorf("unknown store type %q", store.Type)
}

func report(results []Result, logger *logging.Logger) (failed int) {
	for _, result := range results {
		if result.OK() {
			logger.Info(result.String())
			continue
		}
		failed++
		logger.Error(result.String())
	}
	return
}

func run(cfg *Config, remote, normalize bool, logger *logging.Logger) (int, error) {
	fixtures, err := openStore(cfg.Fixtures, logger)
	if err != nil {
		return 0, errors.Wrap(err, "cannot open fixture store")
	}
	var output filesystem.FileSystem
	if normalize {
		if cfg.Output.Type == "" {
			return 0, errors.New("--normalize needs an [output] store")
		}
		if output, err = openStore(cfg.Output, logger); err != nil {
			return 0, errors.Wrap(err, "cannot open output store")
		}
		if err := output.FolderCreate(cfg.Output.Folder); err != nil {
			return 0, err
		}
	}

	results, err := checkStore(fixtures, cfg.Fixtures.Folder, output, cfg.Output.Folder, logger)
	failed := report(results, logger)
	if err != nil {
		return failed, err
	}

	if remote {
		exp, err := time.ParseDuration(cfg.Remote.CacheExpiration)
		if err != nil {
			exp = time.Hour
		}
		client := zotapi.NewClient(cfg.Remote.Endpoint, cfg.Remote.ApiKey, exp, logger)
		results, err := checkRemote(client, cfg.Remote, output, cfg.Output.Folder, logger)
		failed += report(results, logger)
		if err != nil {
			return failed, err
		}
	}

	if committer, ok := output.(filesystem.Committer); ok {
		msg := fmt.Sprintf("zotcheck normalize %s", time.Now().Format(time.RFC3339))
		if err := committer.Commit(msg, cfg.Commit.Name, cfg.Commit.Email); err != nil {
			return failed, errors.Wrap(err, "cannot commit normalized fixtures")
		}
	}
	return failed, nil
}

func main() {
	flags := pflag.NewFlagSet("zotcheck", pflag.ExitOnError)
	cfgfile := flags.StringP("config", "c", "zotcheck.toml", "location of config file")
	remote := flags.Bool("remote", false, "compare the item type schemas with the zotero api and check the configured items")
	normalize := flags.Bool("normalize", false, "write the canonical encoding of every fixture to the output store")
	flags.Parse(os.Args[1:])

	cfg, err := LoadConfig(*cfgfile)
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger, lf := CreateLogger(cfg.Service, cfg.Logfile, cfg.Loglevel)

	failed, err := run(cfg, *remote, *normalize, logger)
	if err != nil {
		logger.Errorf("%+v", err)
	}
	if failed > 0 {
		logger.Errorf("%v fixtures failed", failed)
	}
	if lf != os.Stderr {
		lf.Close()
	}
	if err != nil || failed > 0 {
		os.Exit(1)
	}
}
