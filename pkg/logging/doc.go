// Package logging configures the slog loggers used across mockdb.
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.ParseLevel("debug"),
//	    Format: logging.FormatJSON,
//	})
//	logger.Info("mounted document", "path", "/db")
//
// Components take a *slog.Logger through their constructor or an option and
// fall back to logging.Nop() when none is given.
package logging
