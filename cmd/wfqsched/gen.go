package main

import (
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	wfq "wfqsched"
)

var (
	genChannels      int
	genMeanLength    float64
	genRatePerSec    float64
	genCountPerFlow  int
	genDefaultWeight float64
	genSeed          string
	genOutput        string
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a synthetic arrival trace for exercising run.",
	Run: func(cmd *cobra.Command, args []string) {
		generateTrace()
	},
}

func init() {
	rootCmd.AddCommand(genCmd)
	genCmd.Flags().IntVar(&genChannels, "channels", 2, "number of synthetic channels")
	genCmd.Flags().Float64Var(&genMeanLength, "mean-length", 100, "mean packet length")
	genCmd.Flags().Float64Var(&genRatePerSec, "rate", 1.0, "arrival rate per channel, packets per time unit")
	genCmd.Flags().IntVar(&genCountPerFlow, "count", 10, "packets to generate per channel")
	genCmd.Flags().Float64Var(&genDefaultWeight, "default-weight", 1.0, "default channel weight")
	genCmd.Flags().StringVar(&genSeed, "seed", "wfqsched", "random seed label")
	genCmd.Flags().StringVar(&genOutput, "output", "", "output trace file (default stdout)")
}

func generateTrace() {
	spec := wfq.GenSpec{
		MeanLength:    genMeanLength,
		DefaultWeight: genDefaultWeight,
		Seed:          genSeed,
	}
	for i := 0; i < genChannels; i++ {
		spec.Channels = append(spec.Channels, wfq.GenChannelSpec{
			SrcAddr: "10.0.0.1",
			SrcPort: strconv.Itoa(i),
			DstAddr: "10.0.0.2",
			DstPort: "80",
			Rate:    genRatePerSec,
			Count:   genCountPerFlow,
		})
	}

	out := os.Stdout
	if genOutput != "" {
		f, err := os.Create(genOutput)
		if err != nil {
			log.Fatalf("wfqsched: creating output %q: %v", genOutput, err)
		}
		defer f.Close()
		out = f
	}

	if err := wfq.GenerateTrace(out, spec); err != nil {
		log.Fatalf("wfqsched: generating trace: %v", err)
	}
}

