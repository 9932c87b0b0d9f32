package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	wfq "wfqsched"
)

var (
	runInput  string
	runOutput string
	runConfig string
	runTrace  string
	runStats  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the WFQ scheduler over a trace of packet arrivals.",
	Long: `run reads arrivals from stdin (or --input), emits the ` +
		`scheduled transmission order to stdout (or --output), and with no ` +
		`flags at all reproduces exactly the stdin/stdout transducer contract.`,
	Run: func(cmd *cobra.Command, args []string) {
		runScheduler()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runInput, "input", "", "input trace file (default stdin)")
	runCmd.Flags().StringVar(&runOutput, "output", "", "output schedule file (default stdout)")
	runCmd.Flags().StringVar(&runConfig, "config", "", "run configuration file (YAML or JSON)")
	runCmd.Flags().StringVar(&runTrace, "trace", "", "write an execution trace to this file")
	runCmd.Flags().BoolVar(&runStats, "stats", false, "print a fairness report to stderr after the run")
}

func runScheduler() {
	cfg := wfq.DefaultConfig()
	if runConfig != "" {
		loaded, err := wfq.LoadConfig(runConfig)
		if err != nil {
			log.Fatalf("wfqsched: loading config %q: %v", runConfig, err)
		}
		cfg = loaded
	}

	in := io.Reader(os.Stdin)
	if runInput != "" {
		f, err := os.Open(runInput)
		if err != nil {
			log.Fatalf("wfqsched: opening input %q: %v", runInput, err)
		}
		defer f.Close()
		in = f
	}

	out := io.Writer(os.Stdout)
	if runOutput != "" {
		f, err := os.Create(runOutput)
		if err != nil {
			log.Fatalf("wfqsched: creating output %q: %v", runOutput, err)
		}
		defer f.Close()
		out = f
	}

	sched := wfq.NewScheduler(in, cfg)

	tracePath := runTrace
	if tracePath == "" {
		tracePath = cfg.TracePath
	}
	trace := wfq.NewRunTrace(tracePath != "")
	sched.SetTrace(trace)

	if err := sched.RunToCompletion(out); err != nil {
		if mle, ok := err.(*wfq.MalformedLineError); ok {
			fmt.Fprintln(os.Stderr, "wfqsched: "+mle.Error())
			os.Exit(1)
		}
		log.Fatalf("wfqsched: %v", err)
	}

	if tracePath != "" {
		if err := trace.WriteToFile(tracePath); err != nil {
			log.Fatalf("wfqsched: writing trace %q: %v", tracePath, err)
		}
	}

	if runStats || cfg.Stats {
		report := wfq.BuildFairnessReport(sched.Channels(), sched.BytesServed())
		if err := report.WriteTo(os.Stderr); err != nil {
			log.Fatalf("wfqsched: writing fairness report: %v", err)
		}
	}
}
