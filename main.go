package main

import (
	"os"
	"path/filepath"
)

/* ==================================================================================== *\
    main.go

    CLI entry point: parse arguments, set up logging, load or compute the
    requested FDTS through the planner, and exit non-zero on failure.
\* ==================================================================================== */

func main() {
	args := handle_args(os.Args[1:])
	init_logging(args.verbose)

	if err := os.MkdirAll(args.output_dir, 0o755); err != nil {
		fatalf("creating output dir %s: %v", args.output_dir, err)
	}

	store, err := build_cache_store(args)
	if err != nil {
		log_info("error: %v", err)
		os.Exit(1)
	}

	p := new_planner(store, func() progressObserver {
		if args.verbose > 0 {
			return new_logging_observer()
		}
		return noop_observer{}
	})

	f, err := p.load_or_compute(args.sizes, args.fair_up_to)
	if err != nil {
		log_info("error: %v", err)
		os.Exit(1)
	}

	log_info("FDTS %s fair up to %d: %d dice tuples, %d prefixes", f.sizes_string(), f.fair_up_to, len(f.dice), f.prefixes.len())
}

func build_cache_store(args cliArgs) (cacheStore, error) {
	switch args.cache_backend {
	case "", "json":
		return new_json_cache_store(args.output_dir), nil
	case "sqlite":
		return new_sqlite_cache_store(filepath.Join(args.output_dir, "fdts_cache.sqlite3"))
	default:
		fatalf("unknown --cache-backend %q (expected json or sqlite)", args.cache_backend)
		return nil, nil
	}
}
