package utils

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	location   *time.Location
	logLevel   slog.Level
	dateFormat string
}

func NewConfig() *Config {
	return &Config{
		location: func() *time.Location {
			timezoneStr := os.Getenv("TIMEZONE")
			var loc *time.Location
			var err error
			switch timezoneStr {
			case "":
				loc = time.Local
			case "UTC":
				loc = time.UTC
			default:
				loc, err = time.LoadLocation(timezoneStr)
				if err != nil {
					slog.Error("invalid timezone", "timezone", timezoneStr, "error", err)
					os.Exit(1)
				}
			}
			slog.Debug("env", "TIMEZONE", timezoneStr)
			return loc
		}(),

		logLevel: func() slog.Level {
			logLevel := os.Getenv("LOG_LEVEL")
			if logLevel == "" {
				logLevel = "info"
			}
			slog.Debug("env", "LOG_LEVEL", logLevel)
			return ParseLogLevel(logLevel)
		}(),

		dateFormat: func() string {
			dateFormat := os.Getenv("DATE_FORMAT")
			if dateFormat == "" {
				dateFormat = "Mon, 02 Jan 2006 15:04"
			}
			slog.Debug("env", "DATE_FORMAT", dateFormat)
			return dateFormat
		}(),
	}
}

func (c *Config) GetLocation() *time.Location {
	return c.location
}

func (c *Config) GetLogLevel() slog.Level {
	return c.logLevel
}

func (c *Config) GetDateFormat() string {
	return c.dateFormat
}

// Map a LOG_LEVEL value to a slog level; anything unrecognized is info.
func ParseLogLevel(raw string) slog.Level {
	switch raw {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
