package game_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rollrec/internal/dice"
	"github.com/san-kum/rollrec/internal/game"
)

var _ = Describe("Completed games", func() {
	const games = 200

	DescribeTable("hold their invariants",
		func(threshold int) {
			for seed := int64(1); seed <= games; seed++ {
				res, err := game.Play(context.Background(), dice.NewSource(seed), threshold)
				Expect(err).NotTo(HaveOccurred())
				Expect(res.Check()).To(Succeed())

				a, b := res.Rolls(game.PlayerA), res.Rolls(game.PlayerB)
				Expect(len(a) - len(b)).To(BeElementOf(-1, 0, 1))
				Expect(len(a) + len(b)).To(Equal(res.Turns))
				Expect(res.Turns).To(BeNumerically("<=", game.New(nil, game.WithThreshold(threshold)).MaxTurns()))

				for _, h := range [][]int{a, b} {
					Expect(h).To(HaveEach(SatisfyAll(
						BeNumerically(">=", dice.MinSum),
						BeNumerically("<=", dice.MaxSum),
					)))
				}

				Expect(game.ProfileOf(res.Rolls(res.Winner)).Max()).To(BeNumerically(">=", res.Threshold))
				Expect(game.ProfileOf(res.Rolls(res.Winner.Other())).Max()).To(BeNumerically("<", res.Threshold))
			}
		},
		Entry("threshold 2", 2),
		Entry("threshold 5", 5),
		Entry("default threshold", game.DefaultThreshold),
		Entry("threshold 10", 10),
	)

	It("ends on the winner's final roll", func() {
		res, err := game.Play(context.Background(), dice.NewSource(2024), game.DefaultThreshold)
		Expect(err).NotTo(HaveOccurred())

		winning := res.Rolls(res.Winner)
		last := winning[len(winning)-1]
		Expect(res.Profile(res.Winner).Count(last)).To(Equal(res.Threshold))

		before := game.ProfileOf(winning[:len(winning)-1])
		Expect(before.Max()).To(BeNumerically("<", res.Threshold))
	})

	It("is reproducible for a fixed seed", func() {
		first, err := game.Play(context.Background(), dice.NewSource(77), game.DefaultThreshold)
		Expect(err).NotTo(HaveOccurred())
		second, err := game.Play(context.Background(), dice.NewSource(77), game.DefaultThreshold)
		Expect(err).NotTo(HaveOccurred())

		Expect(second).To(Equal(first))
	})
})

var _ = Describe("All snake eyes", func() {
	It("gives player A the win on turn 14", func() {
		res, err := game.Play(context.Background(), dice.NewSequence(1), 8)
		Expect(err).NotTo(HaveOccurred())

		Expect(res.Winner).To(Equal(game.PlayerA))
		Expect(res.Rolls(game.PlayerA)).To(HaveLen(8))
		Expect(res.Rolls(game.PlayerB)).To(HaveLen(7))
		Expect(res.Turns).To(Equal(15))
		Expect(res.Profile(game.PlayerB).Count(2)).To(Equal(7))
	})
})
