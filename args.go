package main

/* ==================================================================================== *\
    args.go

    Command-line argument parsing: dice sizes as positional arguments,
    fairness degree, verbosity, output directory, and cache backend as
    flags.
\* ==================================================================================== */

import (
	"flag"
	"os"
	"strconv"
)

type cliArgs struct {
	sizes         []int
	fair_up_to    int
	verbose       int
	output_dir    string
	cache_backend string
}

func handle_args(argv []string) cliArgs {
	cmd := flag.NewFlagSet("fdts", flag.ExitOnError)

	var a cliArgs
	var fair_up_to int
	var verbose_count boolCounter

	cmd.IntVar(&fair_up_to, "f", -1, "Limit permutation fairness to all k-tuples (default: number of sizes)")
	cmd.IntVar(&fair_up_to, "fair-up-to", -1, "Limit permutation fairness to all k-tuples (default: number of sizes)")
	cmd.Var(&verbose_count, "v", "Increase verbosity (repeatable)")
	cmd.Var(&verbose_count, "verbose", "Increase verbosity (repeatable)")
	cmd.StringVar(&a.output_dir, "o", "fdts_data", "The output directory where FDTS cache artifacts are stored")
	cmd.StringVar(&a.output_dir, "output-dir", "fdts_data", "The output directory where FDTS cache artifacts are stored")
	cmd.StringVar(&a.cache_backend, "cache-backend", "json", "Cache backend to use: json or sqlite")

	cmd.Parse(argv)

	a.sizes = parse_sizes(cmd.Args())
	if len(a.sizes) == 0 {
		println("Missing arguments")
		println("Usage: fdts [-f K] [-v] [-o DIR] [--cache-backend json|sqlite] SIZE [SIZE...]")
		os.Exit(-1)
	}
	if !is_sorted(a.sizes) {
		fatalf("sizes must be non-descending, got %v", a.sizes)
	}

	a.fair_up_to = fair_up_to
	if a.fair_up_to < 0 {
		a.fair_up_to = len(a.sizes)
	}
	if a.fair_up_to > len(a.sizes) {
		fatalf("--fair-up-to %d exceeds the number of dice (%d)", a.fair_up_to, len(a.sizes))
	}
	a.verbose = int(verbose_count)

	return a
}

func parse_sizes(args []string) []int {
	sizes := make([]int, 0, len(args))
	for _, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			fatalf("invalid dice size %q: must be a positive integer", s)
		}
		sizes = append(sizes, v)
	}
	return sizes
}

// boolCounter implements flag.Value so that -v may be given repeatedly
// (-v -v); each occurrence increments the count. The flag package does not
// accept a combined -vv. init_logging distinguishes only zero from nonzero:
// any count above zero selects debug logging.
type boolCounter int

func (b *boolCounter) String() string {
	if b == nil {
		return "0"
	}
	return strconv.Itoa(int(*b))
}

func (b *boolCounter) Set(string) error {
	*b++
	return nil
}

func (b *boolCounter) IsBoolFlag() bool {
	return true
}
