package collision

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/ccd/geometry"
	"github.com/sarchlab/ccd/kinematics"
	"go.uber.org/mock/gomock"
)

type recordingProbe struct {
	times       []float32
	separations []float32
}

func (p *recordingProbe) Sample(t, separation float32) {
	p.times = append(p.times, t)
	p.separations = append(p.separations, separation)
}

func movingCircle(x, vx, start float32) *kinematics.LinearBody {
	return kinematics.MakeLinearBodyBuilder().
		WithShape(geometry.Circle{
			Center: geometry.Vec2{X: x},
			Radius: 0.1,
		}).
		WithStartTime(start).
		WithVelocity(geometry.Vec2{X: vx}).
		Build()
}

func separationAt(t float32, b1, b2 kinematics.Body) float32 {
	return b1.InstantShape(t).PerimeterDistance(b2.InstantShape(t))
}

var _ = Describe("DistancePairDetector", func() {
	var (
		detector *DistancePairDetector
		band     *DistanceBand
		interval geometry.ClosedInterval
		body1    *kinematics.LinearBody
		body2    *kinematics.LinearBody
	)

	BeforeEach(func() {
		detector = NewDistancePairDetector()
		band = MustNewDistanceBand(0.00001, 0.01)
		interval = geometry.MustNewClosedInterval(0, 2)
		body1 = movingCircle(0, 0.5, 0)
		body2 = movingCircle(1.2, -0.5, 0)
	})

	It("should find the time of impact of two closing circles", func() {
		t, found := detector.TestCollision(interval, band, true, body1, body2)

		Expect(found).To(BeTrue())
		Expect(t).To(BeNumerically("~", 0.99, 1e-4))
		Expect(band.Contains(separationAt(t, body1, body2))).To(BeTrue())
	})

	It("should not have sampled inside the band before the impact", func() {
		probe := &recordingProbe{}

		t, found := detector.WithProbe(probe).
			TestCollision(interval, band, true, body1, body2)

		Expect(found).To(BeTrue())
		Expect(probe.times).NotTo(BeEmpty())
		Expect(probe.times[len(probe.times)-1]).To(Equal(t))

		for i := 0; i < len(probe.times)-1; i++ {
			Expect(probe.times[i]).To(BeNumerically("<", probe.times[i+1]))
			Expect(band.Contains(probe.separations[i])).To(BeFalse())
		}
	})

	It("should return the same result for the same inputs", func() {
		before := body1.InstantShape(0.5)

		t1, found1 := detector.TestCollision(interval, band, true, body1, body2)
		t2, found2 := detector.TestCollision(interval, band, true, body1, body2)

		Expect(found1).To(Equal(found2))
		Expect(t1).To(Equal(t2))
		Expect(body1.InstantShape(0.5)).To(Equal(before))
	})

	It("should return an instant before contact when exclusive", func() {
		hit, _ := detector.TestCollision(interval, band, true, body1, body2)

		t, found := detector.TestCollision(interval, band, false, body1, body2)

		Expect(found).To(BeTrue())
		Expect(t).To(BeNumerically(">", 0))
		Expect(t).To(BeNumerically("<", hit))
		Expect(separationAt(t, body1, body2)).To(BeNumerically(">", band.Max()))

		first := separationAt(0, body1, body2)
		swept := body1.MaxDistanceTraveled(geometry.ClosedInterval{Min: 0, Max: t}) +
			body2.MaxDistanceTraveled(geometry.ClosedInterval{Min: 0, Max: t})
		Expect(first - swept).To(BeNumerically(">", band.Max()))
	})

	It("should find an approach from below the band", func() {
		apart := MustNewDistanceBand(0.1, 0.2)
		overlapping1 := movingCircle(0, -0.5, 0)
		overlapping2 := movingCircle(0, 0.5, 0)

		t, found := detector.TestCollision(
			interval, apart, true, overlapping1, overlapping2)

		Expect(found).To(BeTrue())
		Expect(t).To(BeNumerically("~", 0.3, 1e-4))
		Expect(apart.Contains(separationAt(t, overlapping1, overlapping2))).
			To(BeTrue())
	})

	It("should not find a collision for separating bodies", func() {
		away1 := movingCircle(0, -0.5, 0)
		away2 := movingCircle(1.2, 0.5, 0)

		_, found := detector.TestCollision(interval, band, true, away1, away2)

		Expect(found).To(BeFalse())
	})

	It("should not find a collision beyond the interval", func() {
		short := geometry.MustNewClosedInterval(0, 0.5)

		_, found := detector.TestCollision(short, band, true, body1, body2)

		Expect(found).To(BeFalse())
	})

	It("should clip the interval to the latest start time", func() {
		late := movingCircle(0.5, 0.5, 1)
		probe := &recordingProbe{}

		_, _ = detector.WithProbe(probe).
			TestCollision(interval, band, true, body1, late)

		Expect(probe.times[0]).To(Equal(float32(1)))
	})

	It("should report nothing when bodies start after the interval", func() {
		late1 := movingCircle(0, 0.5, 2)
		late2 := movingCircle(1.2, -0.5, 2)

		_, found := detector.TestCollision(interval, band, true, late1, late2)

		Expect(found).To(BeFalse())
	})

	It("should report an instant of a zero-length window inside the band", func() {
		touching1 := movingCircle(0, 0, 0)
		touching2 := movingCircle(0.205, 0, 0)
		window := geometry.MustNewClosedInterval(3, 3)

		t, found := detector.Search(window, band, true, touching1, touching2)

		Expect(found).To(BeTrue())
		Expect(t).To(Equal(float32(3)))
	})

	It("should find a pre-contact instant right after the start", func() {
		close1 := movingCircle(0, 0.5, 0)
		close2 := movingCircle(0.215, -0.5, 0)

		hit, _ := detector.TestCollision(interval, band, true, close1, close2)
		t, found := detector.TestCollision(interval, band, false, close1, close2)

		Expect(found).To(BeTrue())
		Expect(t).To(BeNumerically(">", 0))
		Expect(t).To(BeNumerically("<", hit))
		Expect(separationAt(t, close1, close2)).
			To(BeNumerically(">", band.Max()))
	})

	It("should return the hit unchanged when exclusive but starting in band", func() {
		touching1 := movingCircle(0, 0, 0)
		touching2 := movingCircle(0.205, 0, 0)

		t, found := detector.TestCollision(interval, band, false, touching1, touching2)

		Expect(found).To(BeTrue())
		Expect(t).To(Equal(float32(0)))
	})

	It("should panic on nil arguments", func() {
		Expect(func() {
			detector.TestCollision(interval, nil, true, body1, body2)
		}).To(PanicWith(MatchError(ErrNilArgument)))

		Expect(func() {
			detector.TestCollision(interval, band, true, nil, body2)
		}).To(PanicWith(MatchError(ErrNilArgument)))

		Expect(func() {
			detector.Search(interval, band, true, body1, nil)
		}).To(PanicWith(MatchError(ErrNilArgument)))
	})

	It("should panic on an invalid interval", func() {
		Expect(func() {
			detector.TestCollision(
				geometry.ClosedInterval{Min: 2, Max: 1}, band, true, body1, body2)
		}).To(PanicWith(MatchError(geometry.ErrInvalidInterval)))
	})

	Context("with mocked bodies", func() {
		var (
			mockCtrl *gomock.Controller
			mock1    *MockBody
			mock2    *MockBody
			shape    *MockShape
		)

		BeforeEach(func() {
			mockCtrl = gomock.NewController(GinkgoT())
			mock1 = NewMockBody(mockCtrl)
			mock2 = NewMockBody(mockCtrl)
			shape = NewMockShape(mockCtrl)
		})

		AfterEach(func() {
			mockCtrl.Finish()
		})

		It("should report nothing for incomplete bodies", func() {
			mock1.EXPECT().IsComplete().Return(true).AnyTimes()
			mock2.EXPECT().IsComplete().Return(false)

			_, found := detector.TestCollision(interval, band, true, mock1, mock2)

			Expect(found).To(BeFalse())
		})

		It("should give up on a motion bound that never shrinks", func() {
			mock1.EXPECT().IsComplete().Return(true).AnyTimes()
			mock2.EXPECT().IsComplete().Return(true).AnyTimes()
			mock1.EXPECT().StartTime().Return(float32(0)).AnyTimes()
			mock2.EXPECT().StartTime().Return(float32(0)).AnyTimes()
			mock1.EXPECT().InstantShape(gomock.Any()).Return(shape).AnyTimes()
			mock2.EXPECT().InstantShape(gomock.Any()).Return(shape).AnyTimes()
			shape.EXPECT().PerimeterDistance(shape).Return(float32(2)).AnyTimes()
			mock1.EXPECT().MaxDistanceTraveled(gomock.Any()).
				Return(float32(1)).AnyTimes()
			mock2.EXPECT().MaxDistanceTraveled(gomock.Any()).
				Return(float32(1)).AnyTimes()

			_, found := detector.WithMaxIterations(20).
				TestCollision(interval, band, true, mock1, mock2)

			Expect(found).To(BeFalse())
		})
	})
})
