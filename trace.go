package wfq

// trace.go holds the optional execution trace: a record, for each emitted
// packet, of the scheduling decision that produced it. Modeled on this
// codebase's own TraceManager (an inactive trace short-circuits every
// call so the scheduler pays nothing for tracing it didn't ask for).

import (
	"encoding/json"
	"os"
	"path"

	"github.com/iti/evt/vrtime"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// PacketTrace is one emitted-packet record, keyed by a monotonically
// increasing sequence number assigned in emission order.
type PacketTrace struct {
	Seq        int     `json:"seq" yaml:"seq"`
	ChannelIdx int     `json:"channelidx" yaml:"channelidx"`
	FinishTag  float64 `json:"finishtag" yaml:"finishtag"`
	Time       float64 `json:"time" yaml:"time"`
	Ticks      int64   `json:"ticks" yaml:"ticks"`
	Priority   int64   `json:"priority" yaml:"priority"`
}

// RunTrace accumulates PacketTrace records across a run. The zero value is
// inactive; use NewRunTrace to obtain one that actually records.
type RunTrace struct {
	InUse   bool          `json:"inuse" yaml:"inuse"`
	Records []PacketTrace `json:"records" yaml:"records"`
	next    int
}

// NewRunTrace is a constructor. active controls whether record calls do
// anything at all, so call sites can embed tracing calls unconditionally
// and rely on this flag to make them free when tracing isn't wanted.
func NewRunTrace(active bool) *RunTrace {
	return &RunTrace{InUse: active, Records: make([]PacketTrace, 0)}
}

// Active tells the caller whether this trace is actually recording.
func (rt *RunTrace) Active() bool {
	return rt.InUse
}

// record stores one PacketTrace using the simulated-now tau as the
// timestamp basis. tau is converted through vrtime's value type purely for
// its seconds/ticks/priority decomposition; no virtual-time *clock*
// machinery from that package is used here.
func (rt *RunTrace) record(channelIdx int, finishTag float64, tau uint64) {
	if !rt.InUse {
		return
	}
	vt := vrtime.SecondsToTime(float64(tau))
	rt.Records = append(rt.Records, PacketTrace{
		Seq:        rt.next,
		ChannelIdx: channelIdx,
		FinishTag:  finishTag,
		Time:       vt.Seconds(),
		Ticks:      vt.Ticks(),
		Priority:   vt.Pri(),
	})
	rt.next++
}

// WriteToFile serializes the trace to filename, choosing YAML or JSON by
// extension, the same dispatch-by-extension convention this codebase's own
// TraceManager uses. It is a no-op returning nil if the trace is inactive.
func (rt *RunTrace) WriteToFile(filename string) error {
	if !rt.InUse {
		return nil
	}

	var bytes []byte
	var err error

	switch ext := path.Ext(filename); {
	case slices.Contains(jsonExts, ext):
		bytes, err = json.MarshalIndent(*rt, "", "\t")
	default:
		bytes, err = yaml.Marshal(*rt)
	}
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(bytes)
	return err
}
