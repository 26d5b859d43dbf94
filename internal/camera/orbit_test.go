package camera_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orrery/internal/camera"
	"github.com/san-kum/orrery/internal/input"
)

var _ = Describe("Orbit", func() {
	var c *camera.Orbit

	BeforeEach(func() {
		c = camera.NewOrbit(100)
	})

	It("holds still under zero input", func() {
		before := c.Position()
		for i := 0; i < 100; i++ {
			c.Update(input.Vector{})
		}
		Expect(c.Position()).To(Equal(before))
	})

	It("decreases azimuth for rightward stick input", func() {
		c.Update(input.Vector{X: 1})
		Expect(c.Azimuth).To(BeNumerically("~", -0.05, 1e-12))
		Expect(c.Polar).To(BeZero())
	})

	It("keeps the radius fixed while orbiting", func() {
		c.Update(input.Vector{X: 1, Y: 0.5})
		Expect(c.Position().Sub(c.Target).Length()).To(BeNumerically("~", 100, 1e-9))
	})

	It("raises the camera for upward stick input", func() {
		c.Update(input.Vector{Y: 1})
		Expect(c.Polar).To(BeNumerically(">", 0))
		Expect(c.Position().Y).To(BeNumerically(">", 0))
	})

	It("never reaches the poles, even under adversarial input", func() {
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 10000; i++ {
			// Mostly shove the stick straight up, with occasional noise.
			y := 1.0
			if i%17 == 0 {
				y = rng.Float64()*2 - 1
			}
			c.Update(input.Vector{Y: y})
			Expect(math.Abs(c.Polar)).To(BeNumerically("<=", camera.MaxPolar))
		}
		for i := 0; i < 10000; i++ {
			c.Update(input.Vector{Y: -1})
			Expect(math.Abs(c.Polar)).To(BeNumerically("<=", camera.MaxPolar))
		}
	})

	It("matches the spherical conversion", func() {
		c.Azimuth = 0.3
		c.Polar = 0.2
		p := c.Position()
		Expect(p.X).To(BeNumerically("~", 100*math.Cos(0.2)*math.Sin(0.3), 1e-9))
		Expect(p.Y).To(BeNumerically("~", 100*math.Sin(0.2), 1e-9))
		Expect(p.Z).To(BeNumerically("~", 100*math.Cos(0.2)*math.Cos(0.3), 1e-9))
	})

	It("updates only the aspect ratio on resize", func() {
		c.SetViewport(800, 600)
		before := c.Position()

		c.SetViewport(1600, 900)
		Expect(c.Aspect()).To(BeNumerically("~", 1600.0/900.0, 1e-12))
		Expect(c.Position()).To(Equal(before))
	})
})
