package main

import (
	"log"
	"os"
	"strings"
)

/* ==================================================================================== *\
    logging.go

    Plain-log logging setup: a two-level info/debug switch over the
    standard log package, with no timestamp prefix.
\* ==================================================================================== */

type log_level int

const (
	level_info log_level = iota
	level_debug
)

var g_log_level = level_info

// init_logging configures the process-wide log level from, in order of
// precedence, the CLI -v flags (applied by the caller after parsing) and
// the FDTS_LOG_LEVEL environment variable.
func init_logging(verbosity int) {
	log.SetFlags(0)
	if env := strings.ToLower(strings.TrimSpace(os.Getenv("FDTS_LOG_LEVEL"))); env != "" {
		switch env {
		case "debug", "verbose":
			g_log_level = level_debug
		case "info", "warn", "error":
			g_log_level = level_info
		}
	}
	if verbosity > 0 {
		g_log_level = level_debug
	}
}

func log_info(format string, args ...interface{}) {
	log.Printf(format, args...)
}

func log_debug(format string, args ...interface{}) {
	if g_log_level == level_debug {
		log.Printf("[debug] "+format, args...)
	}
}

// fatalf is the single point where an argument error or invariant
// violation is turned into a process-ending log line.
func fatalf(format string, args ...interface{}) {
	log.Fatalf(format, args...)
}
