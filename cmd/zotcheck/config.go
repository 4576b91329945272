package main

import (
	"os"
	"regexp"
	"time"

	"emperror.dev/errors"
	"github.com/BurntSushi/toml"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/je4/zotdata/pkg/zotero"
	"github.com/joho/godotenv"
)

const (
	StoreLocal = "local"
	StoreGit   = "git"
	StoreS3    = "s3"
)

var libraryPattern = regexp.MustCompile(`^(users|groups)/[0-9]+$`)

type Store struct {
	Type            string `toml:"type"`
	Path            string `toml:"path"`
	Folder          string `toml:"folder"`
	Endpoint        string `toml:"endpoint"`
	AccessKeyId     string `toml:"accessKeyId"`
	SecretAccessKey string `toml:"secretAccessKey"`
	UseSSL          bool   `toml:"useSSL"`
}

func (s *Store) Validate() error {
	local := s.Type == StoreLocal || s.Type == StoreGit
	return validation.ValidateStruct(s,
		validation.Field(&s.Type, validation.Required, validation.In(StoreLocal, StoreGit, StoreS3)),
		validation.Field(&s.Path, validation.When(local, validation.Required)),
		validation.Field(&s.Folder, validation.When(s.Type == StoreS3, validation.Required)),
		validation.Field(&s.Endpoint, validation.When(s.Type == StoreS3, validation.Required)),
	)
}

type Remote struct {
	Endpoint        string   `toml:"endpoint"`
	ApiKey          string   `toml:"apikey"`
	Library         string   `toml:"library"`
	Items           []string `toml:"items"`
	CacheExpiration string   `toml:"cacheexpiration"`
}

func (r *Remote) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Endpoint, validation.Required),
		validation.Field(&r.Library, validation.When(len(r.Items) > 0, validation.Required), validation.Match(libraryPattern)),
		validation.Field(&r.Items, validation.Each(validation.By(func(value interface{}) error {
			if !zotero.ValidKey(value.(string)) {
				return errors.New("not a zotero key")
			}
			return nil
		}))),
		validation.Field(&r.CacheExpiration, validation.By(func(value interface{}) error {
			if value.(string) == "" {
				return nil
			}
			exp, err := time.ParseDuration(value.(string))
			if err != nil {
				return err
			}
			if exp <= 0 {
				return errors.New("must be a positive duration")
			}
			return nil
		})),
	)
}

type Commit struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

type Config struct {
	Service  string `toml:"service"`
	Logfile  string `toml:"logfile"`
	Loglevel string `toml:"loglevel"`
	Fixtures Store  `toml:"fixtures"`
	Output   Store  `toml:"output"`
	Remote   Remote `toml:"remote"`
	Commit   Commit `toml:"commit"`
}

func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Loglevel, validation.In("CRITICAL", "ERROR", "WARNING", "NOTICE", "INFO", "DEBUG")),
	); err != nil {
		return err
	}
	if err := c.Fixtures.Validate(); err != nil {
		return errors.Wrap(err, "fixtures")
	}
	// no output store means no --normalize
	if c.Output.Type != "" {
		if err := c.Output.Validate(); err != nil {
			return errors.Wrap(err, "output")
		}
	}
	if err := c.Remote.Validate(); err != nil {
		return errors.Wrap(err, "remote")
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		Service:  "zotcheck",
		Loglevel: "INFO",
		Remote: Remote{
			Endpoint:        "https://api.zotero.org",
			CacheExpiration: "1h",
		},
		Commit: Commit{Name: "zotcheck", Email: "zotcheck@localhost"},
	}
}

// LoadConfig reads the toml file. The api key may also come from ZOTERO_APIKEY, read from
// the environment or a .env file next to the working directory.
func LoadConfig(filepath string) (*Config, error) {
	conf := defaultConfig()
	if _, err := toml.DecodeFile(filepath, &conf); err != nil {
		return nil, errors.Wrapf(err, "cannot load config %s", filepath)
	}
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "cannot load .env")
	}
	if key := os.Getenv("ZOTERO_APIKEY"); key != "" {
		conf.Remote.ApiKey = key
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", filepath)
	}
	return &conf, nil
}
