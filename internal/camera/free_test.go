package camera_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orrery/internal/camera"
	"github.com/san-kum/orrery/internal/input"
)

var _ = Describe("Free", func() {
	var c *camera.Free

	none := func() (input.Vector, float64, input.Vector) {
		return input.Vector{}, 0, input.Vector{}
	}

	BeforeEach(func() {
		c = camera.NewFree(100)
	})

	It("holds still with no input and no inertia", func() {
		before := c.Position()
		for i := 0; i < 100; i++ {
			c.Update(none())
		}
		Expect(c.Position()).To(Equal(before))
	})

	It("coasts after a drag and then settles", func() {
		c.Update(input.Vector{X: 50}, 0, input.Vector{})
		Expect(c.Moving()).To(BeTrue())
		azAfterDrag := c.Azimuth

		c.Update(none())
		Expect(c.Azimuth).ToNot(Equal(azAfterDrag), "inertia should keep rotating")

		for i := 0; i < 2000 && c.Moving(); i++ {
			c.Update(none())
		}
		Expect(c.Moving()).To(BeFalse())

		settled := c.Position()
		c.Update(none())
		Expect(c.Position()).To(Equal(settled))
	})

	It("clamps zoom to the distance bounds", func() {
		for i := 0; i < 500; i++ {
			c.Update(input.Vector{}, 10, input.Vector{})
		}
		Expect(c.Distance).To(Equal(c.MinDistance))

		for i := 0; i < 500; i++ {
			c.Update(input.Vector{}, -10, input.Vector{})
		}
		Expect(c.Distance).To(Equal(c.MaxDistance))
	})

	It("keeps the polar angle inside the open interval under sustained drag", func() {
		for i := 0; i < 10000; i++ {
			c.Update(input.Vector{Y: 100}, 0, input.Vector{})
			Expect(math.Abs(c.Polar)).To(BeNumerically("<=", camera.MaxPolar))
		}
	})

	It("bounds the pan target", func() {
		for i := 0; i < 10000; i++ {
			c.Update(input.Vector{}, 0, input.Vector{X: 100, Y: 100})
		}
		Expect(math.Abs(c.Target.X)).To(BeNumerically("<=", c.PanBound))
		Expect(math.Abs(c.Target.Y)).To(BeNumerically("<=", c.PanBound))
		Expect(math.Abs(c.Target.Z)).To(BeNumerically("<=", c.PanBound))
	})

	It("looks at the panned target", func() {
		c.Update(input.Vector{}, 0, input.Vector{X: 10})
		Expect(c.LookAt()).To(Equal(c.Target))
		Expect(c.Position().Sub(c.Target).Length()).To(BeNumerically("~", c.Distance, 1e-9))
	})
})
