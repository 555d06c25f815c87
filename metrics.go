package zb8

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentedCodec wraps Compress/Decompress with Prometheus counters and
// summaries of the time each call takes, the way ejoy/goscon's metric.go tracks connection
// counters alongside the plain connection-handling code. It is entirely
// optional: nothing in the core encoder or decoder depends on it, and
// multiple InstrumentedCodecs may run concurrently the same as bare
// Compress/Decompress calls (spec §5).
type InstrumentedCodec struct {
	framesCompressed   prometheus.Counter
	framesDecompressed prometheus.Counter
	verbatimFallbacks  prometheus.Counter
	bytesIn            prometheus.Counter
	bytesOut           prometheus.Counter
	compressSeconds    prometheus.Summary
	decompressSeconds  prometheus.Summary
}

// NewInstrumentedCodec builds an InstrumentedCodec and registers its
// collectors with reg. Passing prometheus.NewRegistry() keeps the
// collectors out of the default global registry; passing
// prometheus.DefaultRegisterer matches goscon's MustRegister-at-init-time
// style.
func NewInstrumentedCodec(reg prometheus.Registerer, namespace string) *InstrumentedCodec {
	c := &InstrumentedCodec{
		framesCompressed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_compressed_total",
			Help:      "number of frames produced by Compress",
		}),
		framesDecompressed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_decompressed_total",
			Help:      "number of frames consumed by Decompress",
		}),
		verbatimFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verbatim_fallbacks_total",
			Help:      "number of frames emitted with the verbatim flag set",
		}),
		bytesIn: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compress_bytes_in_total",
			Help:      "total uncompressed bytes passed to Compress",
		}),
		bytesOut: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compress_bytes_out_total",
			Help:      "total bytes produced by Compress",
		}),
		compressSeconds: prometheus.NewSummary(prometheus.SummaryOpts{
			Namespace:  namespace,
			Name:       "compress_seconds",
			Help:       "time spent in Compress",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}),
		decompressSeconds: prometheus.NewSummary(prometheus.SummaryOpts{
			Namespace:  namespace,
			Name:       "decompress_seconds",
			Help:       "time spent in Decompress",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}),
	}

	reg.MustRegister(
		c.framesCompressed,
		c.framesDecompressed,
		c.verbatimFallbacks,
		c.bytesIn,
		c.bytesOut,
		c.compressSeconds,
		c.decompressSeconds,
	)
	return c
}

// Compress behaves like the package-level Compress, recording counters
// and timing around the call.
func (c *InstrumentedCodec) Compress(dst, src []byte) ([]byte, error) {
	start := time.Now()
	frame, err := Compress(dst, src)
	c.compressSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	c.framesCompressed.Inc()
	c.bytesIn.Add(float64(len(src)))
	c.bytesOut.Add(float64(len(frame)))

	if hdr, err := ReadHeader(frame); err == nil && hdr.Verbatim {
		c.verbatimFallbacks.Inc()
	}
	return frame, nil
}

// Decompress behaves like the package-level Decompress, recording
// counters and timing around the call.
func (c *InstrumentedCodec) Decompress(dst, src []byte) ([]byte, error) {
	start := time.Now()
	out, err := Decompress(dst, src)
	c.decompressSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}
	c.framesDecompressed.Inc()
	return out, nil
}
