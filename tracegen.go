package wfq

// tracegen.go implements the synthetic arrival trace generator: it
// produces a conformant trace on an io.Writer without anyone having to
// hand-write input. Modeled on this codebase's own packet-arrival driver
// (bgfPcktArrivals in flow.go) and its exponential inter-arrival sampler
// (expRV/sampleExpRV in flow-sim.go), but driven by a plain loop instead of
// an event manager, since there is no simulated wall clock here — only the
// arrival-time sequence being written out.

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/iti/rngstream"
)

// GenChannelSpec describes one synthetic channel for the trace generator.
type GenChannelSpec struct {
	SrcAddr, SrcPort, DstAddr, DstPort string
	Weight                             float64 // 0 means "use GenSpec.DefaultWeight"
	Rate                               float64 // packets per time unit
	Count                              int     // number of packets to generate
}

// GenSpec is the full parameter set for GenerateTrace.
type GenSpec struct {
	Channels      []GenChannelSpec
	MeanLength    float64
	DefaultWeight float64
	Seed          string
}

// expRV returns a sample of an exponentially distributed random variable
// with the given rate, driven by a U(0,1) sample u01.
func expRV(u01, rate float64) float64 {
	return -math.Log(1.0-u01) / rate
}

// GenerateTrace writes a conformant arrival trace to w: for each channel
// in spec, an independent reproducible rngstream (keyed by seed+channel
// index) draws exponential inter-arrival times and emits one arrival per
// draw, with length rounded from spec.MeanLength. The first packet on a
// channel carries its configured weight explicitly; later packets omit W.
// All channels' arrivals are merged into one non-decreasing-by-T stream.
func GenerateTrace(w io.Writer, spec GenSpec) error {
	length := uint64(math.Round(spec.MeanLength))
	if length == 0 {
		length = 1
	}
	defaultWeight := spec.DefaultWeight
	if defaultWeight <= 0 {
		defaultWeight = 1.0
	}

	var arrivals []Arrival
	for idx, ch := range spec.Channels {
		weight := ch.Weight
		if weight <= 0 {
			weight = defaultWeight
		}
		rng := rngstream.New(fmt.Sprintf("%s-%d", spec.Seed, idx))

		t := uint64(0)
		for k := 0; k < ch.Count; k++ {
			if k > 0 {
				u01 := rng.RandU01()
				t += uint64(math.Round(expRV(u01, ch.Rate)))
			}
			a := Arrival{
				Time:    t,
				SrcAddr: ch.SrcAddr,
				SrcPort: ch.SrcPort,
				DstAddr: ch.DstAddr,
				DstPort: ch.DstPort,
				Length:  length,
			}
			if k == 0 {
				a.Weight = weight
				a.HasWeight = true
			}
			arrivals = append(arrivals, a)
		}
	}

	sort.SliceStable(arrivals, func(i, j int) bool {
		return arrivals[i].Time < arrivals[j].Time
	})

	bw := bufio.NewWriter(w)
	for _, a := range arrivals {
		if a.HasWeight {
			if _, err := fmt.Fprintf(bw, "%d %s %s %s %s %d %.2f\n",
				a.Time, a.SrcAddr, a.SrcPort, a.DstAddr, a.DstPort, a.Length, a.Weight); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(bw, "%d %s %s %s %s %d\n",
			a.Time, a.SrcAddr, a.SrcPort, a.DstAddr, a.DstPort, a.Length); err != nil {
			return err
		}
	}
	return bw.Flush()
}
