package wfq

// stats.go holds the end-of-run fairness report: a read-only summary,
// computed once transmission is complete, of how evenly served bytes were
// distributed relative to weight. It never feeds back into scheduling.

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/stat"
)

// ChannelShare is one channel's entry in the fairness report.
type ChannelShare struct {
	Index       int
	Bytes       uint64
	FinalWeight float64
	Share       float64 // Bytes / FinalWeight
}

// FairnessReport summarizes a completed run: one ChannelShare per channel
// that served a nonzero number of bytes, plus the mean and population
// standard deviation of Share across those channels.
type FairnessReport struct {
	Channels []ChannelShare
	Mean     float64
	StdDev   float64
}

// BuildFairnessReport computes the fairness report for channels, given the
// number of bytes served per channel (indexed by Channel.Index()).
func BuildFairnessReport(channels []*Channel, bytesServed []uint64) FairnessReport {
	shares := make([]float64, 0, len(channels))
	report := FairnessReport{}

	for _, c := range channels {
		if c.index >= len(bytesServed) || bytesServed[c.index] == 0 {
			continue
		}
		share := float64(bytesServed[c.index]) / c.weight
		report.Channels = append(report.Channels, ChannelShare{
			Index:       c.index,
			Bytes:       bytesServed[c.index],
			FinalWeight: c.weight,
			Share:       share,
		})
		shares = append(shares, share)
	}

	if len(shares) > 0 {
		report.Mean, report.StdDev = stat.PopMeanStdDev(shares, nil)
	}
	return report
}

// WriteTo renders the fairness report to w, one line per channel followed
// by the summary line. It is the form wfqsched run --stats writes to
// stderr.
func (fr FairnessReport) WriteTo(w io.Writer) error {
	for _, c := range fr.Channels {
		if _, err := fmt.Fprintf(w, "channel %d: bytes=%d weight=%.4f share=%.4f\n",
			c.Index, c.Bytes, c.FinalWeight, c.Share); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "mean share=%.4f stddev=%.4f\n", fr.Mean, fr.StdDev)
	return err
}
