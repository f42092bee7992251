package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PromptsRenderedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devguide_prompts_rendered_total",
		Help: "Prompts rendered, by surface (web, api, cli).",
	}, []string{"surface"})

	PromptCopiesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devguide_prompt_copies_total",
		Help: "Clipboard writes of rendered prompts, by result.",
	}, []string{"result"})

	CompletionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devguide_completions_total",
		Help: "AI completion requests, by status.",
	}, []string{"status"})

	CompletionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "devguide_completion_duration_seconds",
		Help:    "Time spent waiting for the AI completion provider.",
		Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 60},
	})

	TypeSelectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devguide_type_selections_total",
		Help: "Project type selections in the wizard.",
	}, []string{"type"})

	SnapshotErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devguide_snapshot_errors_total",
		Help: "Per-type snapshot load and save failures.",
	}, []string{"op"})
)
