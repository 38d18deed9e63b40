package consumer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mTriplesStreamed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "owlrdf_triples_streamed",
		Help: "Number of triples translated while streaming.",
	})
	mTriplesDeferred = promauto.NewCounter(prometheus.CounterOpts{
		Name: "owlrdf_triples_deferred",
		Help: "Number of triples added to the working set.",
	})
	mTriplesSwept = promauto.NewCounter(prometheus.CounterOpts{
		Name: "owlrdf_triples_swept",
		Help: "Number of triples translated by a sweep.",
	})

	mSweeps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "owlrdf_sweeps",
		Help: "Number of sweeps over working sets.",
	})
	mSweepSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "owlrdf_sweep_seconds",
		Help: "Time to sweep a working set once.",
	})

	mAxioms = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "owlrdf_axioms",
		Help: "Number of distinct axioms emitted.",
	}, []string{"type"})
	mResidue = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "owlrdf_residue",
		Help: "Number of triples left untranslated.",
	}, []string{"reason"})

	mStoreBloomHit = promauto.NewCounter(prometheus.CounterOpts{
		Name: "owlrdf_store_bloom_hits",
		Help: "Number of times the working set bloom filter returned a negative result.",
	})
	mStoreBloomMiss = promauto.NewCounter(prometheus.CounterOpts{
		Name: "owlrdf_store_bloom_miss",
		Help: "Number of times the working set bloom filter returned a positive result.",
	})
)
