package master_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/boxdiff/internal/lattice"
	"github.com/san-kum/boxdiff/internal/master"
	"github.com/san-kum/boxdiff/internal/metrics"
	"github.com/san-kum/boxdiff/internal/scenario"
)

var _ = Describe("forward-Euler master equation", func() {
	run := func(initial lattice.Dist, cfg lattice.Config) *lattice.Result {
		result, err := master.New().Run(context.Background(), initial, cfg)
		Expect(err).NotTo(HaveOccurred())
		return result
	}

	Describe("conservation", func() {
		It("preserves total probability across every column", func() {
			initial, err := scenario.Point(41)
			Expect(err).NotTo(HaveOccurred())

			result := run(initial, lattice.DefaultConfig(41, 2000))
			for t := 0; t < result.Field.Steps(); t++ {
				Expect(result.Field.Column(t).Sum()).To(BeNumerically("~", 1.0, 1e-9))
			}
		})

		It("conserves mass even for unstable parameters", func() {
			initial, err := scenario.Point(21)
			Expect(err).NotTo(HaveOccurred())

			cfg := lattice.DefaultConfig(21, 100)
			cfg.Dt = 0.51 // k*dt just past the bound, oscillatory but conservative
			result := run(initial, cfg)
			Expect(result.Field.Last().Sum()).To(BeNumerically("~", 1.0, 1e-9))
		})
	})

	Describe("non-negativity", func() {
		It("keeps all entries non-negative while k*dt < 0.5", func() {
			initial, err := scenario.FRAP(40, 8)
			Expect(err).NotTo(HaveOccurred())

			cfg := lattice.DefaultConfig(40, 3000)
			cfg.K = 2.0
			cfg.Dt = 0.2 // k*dt = 0.4, just inside the bound

			integ := master.New()
			neg := metrics.NewNegativity()
			integ.AddMetric(neg)

			result, err := integ.Run(context.Background(), initial, cfg)
			Expect(err).NotTo(HaveOccurred())

			for t := 0; t < result.Field.Steps(); t++ {
				Expect(result.Field.Column(t).Min()).To(BeNumerically(">=", 0))
			}
			Expect(result.Metrics["negativity"]).To(BeZero())
		})
	})

	Describe("symmetry", func() {
		It("stays mirror-symmetric from a centered point source on an odd domain", func() {
			n := 41
			initial, err := scenario.Point(n)
			Expect(err).NotTo(HaveOccurred())

			result := run(initial, lattice.DefaultConfig(n, 500))
			last := result.Field.Last()
			for i := 0; i < n/2; i++ {
				Expect(last[i]).To(BeNumerically("~", last[n-1-i], 1e-12))
			}
		})
	})

	Describe("reflecting boundaries", func() {
		It("moves no probability past the walls in a single step", func() {
			// All mass at the left wall: one step populates only box 1.
			initial := lattice.Dist{1, 0, 0, 0, 0}
			cfg := lattice.DefaultConfig(5, 2)

			result := run(initial, cfg)
			col := result.Field.Column(1)
			Expect(col[0]).To(BeNumerically("~", 1-cfg.K*cfg.Dt, 1e-12))
			Expect(col[1]).To(BeNumerically("~", cfg.K*cfg.Dt, 1e-12))
			Expect(col[2]).To(BeZero())
			Expect(col.Sum()).To(BeNumerically("~", 1.0, 1e-12))
		})
	})

	Describe("FRAP recovery", func() {
		It("converges toward the uniform distribution", func() {
			initial, err := scenario.FRAP(40, 8)
			Expect(err).NotTo(HaveOccurred())
			before := initial.MaxDeviation()

			result := run(initial, lattice.DefaultConfig(40, 5000))
			after := result.Field.Last().MaxDeviation()

			Expect(after).To(BeNumerically("<", 0.005))
			Expect(after).To(BeNumerically("<", before/5))
		})
	})
})
