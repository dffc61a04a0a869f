package figure_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lissa/internal/figure"
)

var _ = Describe("Params", func() {
	It("clamps every field into its valid range", func() {
		p := figure.Params{
			LeftFreq:  50,
			RightFreq: 9000,
			PhaseDeg:  -10,
			Speed:     12,
			Trail:     3,
		}
		c := p.Clamp()
		Expect(c.LeftFreq).To(Equal(figure.MinFreq))
		Expect(c.RightFreq).To(Equal(figure.MaxFreq))
		Expect(c.PhaseDeg).To(Equal(figure.MinPhase))
		Expect(c.Speed).To(Equal(figure.MaxSpeed))
		Expect(c.Trail).To(Equal(figure.MinTrail))
	})

	It("leaves in-range values untouched", func() {
		p := figure.Defaults()
		Expect(p.Clamp()).To(Equal(p))
	})
})

var _ = Describe("Store", func() {
	It("clamps on update and returns whole snapshots", func() {
		s := figure.NewStore(figure.Defaults())
		got := s.Update(func(p *figure.Params) { p.Trail = 999999 })
		Expect(got.Trail).To(Equal(figure.MaxTrail))
		Expect(s.Snapshot().Trail).To(Equal(figure.MaxTrail))
	})

	It("hands out copies, not aliases", func() {
		s := figure.NewStore(figure.Defaults())
		snap := s.Snapshot()
		snap.LeftFreq = 4242
		Expect(s.Snapshot().LeftFreq).To(Equal(figure.Defaults().LeftFreq))
	})
})
