package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lumibag"

// Wire-layer metrics.
var (
	DatagramsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sdp",
		Name:      "datagrams_processed_total",
		Help:      "Inbound datagrams decoded and routed into reassembly.",
	})

	DatagramsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sdp",
		Name:      "datagrams_dropped_total",
		Help:      "Inbound datagrams dropped (malformed or out-of-range offset).",
	})

	DatagramsSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sdp",
		Name:      "datagrams_sent_total",
		Help:      "Outbound datagrams emitted through the sink.",
	})

	MessagesAssembled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sdp",
		Name:      "messages_assembled_total",
		Help:      "Inbound messages fully reassembled from fragments.",
	})

	AssemblersEvicted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sdp",
		Name:      "assemblers_evicted_total",
		Help:      "Incomplete assemblers evicted by the pending-message bound.",
	})

	PendingAssemblers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "sdp",
		Name:      "pending_assemblers",
		Help:      "In-flight inbound assemblers awaiting missing fragments.",
	})
)

// Show-clock metrics.
var (
	TicksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "show",
		Name:      "ticks_total",
		Help:      "Choreography ticks executed.",
	})

	TickOverruns = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "show",
		Name:      "tick_overruns_total",
		Help:      "Ticks whose work finished after their deadline.",
	})

	DriftSeconds = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "show",
		Name:      "drift_seconds_total",
		Help:      "Accumulated phase lag behind the nominal tick schedule.",
	})
)

// Player metrics.
var (
	PlayerPlaying = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "player",
		Name:      "playing",
		Help:      "1 while a show is playing, 0 while idle.",
	})
)
