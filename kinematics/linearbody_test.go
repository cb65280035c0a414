package kinematics

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/ccd/geometry"
)

var _ = Describe("LinearBody", func() {
	var body *LinearBody

	BeforeEach(func() {
		body = MakeLinearBodyBuilder().
			WithShape(geometry.Circle{Radius: 0.5}).
			WithStartTime(1).
			WithEndTime(3).
			WithVelocity(geometry.Vec2{X: 3, Y: 4}).
			Build()
	})

	It("should be complete with a shape", func() {
		Expect(body.IsComplete()).To(BeTrue())
		Expect(MakeLinearBodyBuilder().Build().IsComplete()).To(BeFalse())
	})

	It("should place the shape along its velocity", func() {
		shape := body.InstantShape(2).(geometry.Circle)

		Expect(shape.Center.X).To(BeNumerically("~", 3, 1e-6))
		Expect(shape.Center.Y).To(BeNumerically("~", 4, 1e-6))
		Expect(shape.Radius).To(Equal(float32(0.5)))
	})

	It("should stay still outside the motion window", func() {
		before := body.InstantShape(0).(geometry.Circle)
		after := body.InstantShape(10).(geometry.Circle)

		Expect(before.Center).To(Equal(geometry.Vec2{}))
		Expect(after.Center.X).To(BeNumerically("~", 6, 1e-6))
		Expect(after.Center.Y).To(BeNumerically("~", 8, 1e-6))
	})

	It("should bound the distance traveled", func() {
		Expect(body.MaxDistanceTraveled(geometry.MustNewClosedInterval(1, 2))).
			To(BeNumerically("~", 5, 1e-6))
		Expect(body.MaxDistanceTraveled(geometry.MustNewClosedInterval(0, 10))).
			To(BeNumerically("~", 10, 1e-6))
		Expect(body.MaxDistanceTraveled(geometry.MustNewClosedInterval(4, 5))).
			To(Equal(float32(0)))
		Expect(body.MaxDistanceTraveled(geometry.MustNewClosedInterval(2, 2))).
			To(Equal(float32(0)))
	})

	It("should not share the shape with the builder", func() {
		circle := geometry.Circle{Radius: 1}
		builder := MakeLinearBodyBuilder().WithShape(circle)
		b1 := builder.Build()
		b2 := builder.WithVelocity(geometry.Vec2{X: 1}).Build()

		Expect(b1.InstantShape(1)).To(Equal(circle))
		Expect(b2.InstantShape(1).(geometry.Circle).Center.X).
			To(BeNumerically("~", 1, 1e-6))
	})

	It("should panic when asked for the shape of an incomplete body", func() {
		Expect(func() { MakeLinearBodyBuilder().Build().InstantShape(0) }).
			To(Panic())
	})

	It("should panic when ending before starting", func() {
		Expect(func() {
			MakeLinearBodyBuilder().WithStartTime(2).WithEndTime(1).Build()
		}).To(Panic())
	})
})
