package reduce_test

import (
	"fmt"
	"slices"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"algebra/monoid"
	"algebra/option"
	"algebra/reduce"
)

// partial is the per-partition result of a distributed aggregation.
type partial struct {
	sum   monoid.Sum[int]
	set   monoid.Set[int]
	seq   monoid.Seq[int]
	max   monoid.Max[int]
	min   monoid.Min[int]
	words monoid.Map[string, monoid.Sum[int]]
}

func aggregate(values []int, words string, counter *monoid.Combiner[monoid.Sum[int]]) partial {
	var p partial
	var err error
	p.sum, err = monoid.SumOf(values...)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	p.set = monoid.NewSet(values...)
	p.seq = monoid.NewSeq(values...)
	p.max, err = monoid.MaxOf(values...)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	p.min, err = monoid.MinOf(values...)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())

	counts := map[string]monoid.Sum[int]{}
	for _, w := range strings.Fields(words) {
		counts[w] = monoid.NewSum(counts[w].Value() + 1)
	}
	p.words = monoid.NewMapWith(counts, counter)
	return p
}

func (p partial) merge(other partial) partial {
	var res partial
	var err error
	res.sum, err = p.sum.Combine(other.sum)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	res.set, err = p.set.Combine(other.set)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	res.seq, err = p.seq.Combine(other.seq)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	res.max, err = p.max.Combine(other.max)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	res.min, err = p.min.Combine(other.min)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	res.words, err = p.words.Combine(other.words)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return res
}

func wordCounts(m monoid.Map[string, monoid.Sum[int]]) map[string]int {
	res := map[string]int{}
	for k, v := range m.All() {
		res[k] = v.Value()
	}
	return res
}

var _ = Describe("Partitioned aggregation", func() {
	var (
		counter    *monoid.Combiner[monoid.Sum[int]]
		partitions []partial
		orders     [][]int
	)

	BeforeEach(func() {
		counter = monoid.MonoidCombiner[monoid.Sum[int]]("count")
		partitions = []partial{
			aggregate([]int{3, 1, 4}, "hello world hello", counter),
			aggregate([]int{1, 5, 9}, "hello data", counter),
			aggregate([]int{2, 6, 5}, "world of data", counter),
		}
		orders = [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	})

	Describe("combining partitions in every order", func() {
		It("should agree on the commutative aggregates", func() {
			for _, order := range orders {
				By(fmt.Sprintf("combining in order %v", order))
				res := partitions[order[0]].merge(partitions[order[1]]).merge(partitions[order[2]])

				Expect(res.sum.Value()).To(Equal(36))
				Expect(res.max.Value()).To(Equal(9))
				Expect(res.min.Value()).To(Equal(1))
				Expect(res.set.Value()).To(HaveLen(7))
				Expect(res.set.Equal(monoid.NewSet(1, 2, 3, 4, 5, 6, 9))).To(BeTrue())
				Expect(wordCounts(res.words)).To(Equal(map[string]int{
					"hello": 3, "world": 2, "data": 2, "of": 1,
				}))
			}
		})

		It("should keep sequence contents but follow the combination order", func() {
			for _, order := range orders {
				res := partitions[order[0]].merge(partitions[order[1]]).merge(partitions[order[2]])
				Expect(res.seq.Value()).To(ConsistOf(3, 1, 4, 1, 5, 9, 2, 6, 5))

				var want []int
				for _, i := range order {
					want = append(want, partitions[i].seq.Value()...)
				}
				Expect(res.seq.Value()).To(Equal(want))
			}
		})

		It("should not depend on grouping", func() {
			left := partitions[0].merge(partitions[1]).merge(partitions[2])
			right := partitions[0].merge(partitions[1].merge(partitions[2]))
			Expect(right.sum).To(Equal(left.sum))
			Expect(right.seq.Value()).To(Equal(left.seq.Value()))
			Expect(wordCounts(right.words)).To(Equal(wordCounts(left.words)))
		})
	})

	Describe("late partitions", func() {
		It("should treat an empty partition as the identity", func() {
			empty := aggregate(nil, "", counter)
			res := partitions[0].merge(empty).merge(partitions[1])
			Expect(res.sum.Value()).To(Equal(23))
			Expect(res.min.Value()).To(Equal(1))
			Expect(res.seq.Value()).To(Equal([]int{3, 1, 4, 1, 5, 9}))
		})

		It("should reject a partition built with a different combiner", func() {
			rogue := aggregate([]int{7}, "hello", monoid.MonoidCombiner[monoid.Sum[int]]("count"))
			_, err := partitions[0].words.Combine(rogue.words)
			Expect(err).To(MatchError(monoid.ErrConfigurationMismatch))
		})
	})
})

var _ = Describe("Reduction strategies", func() {
	var values []monoid.Sum[int]

	BeforeEach(func() {
		values = sums(10, 20, 30, 40)
	})

	It("should sum to 100 whichever way the fold is shaped", func() {
		left, err := reduce.Reduce(values)
		Expect(err).NotTo(HaveOccurred())
		right, err := reduce.ReduceRight(values)
		Expect(err).NotTo(HaveOccurred())
		tree, err := reduce.TreeReduce(values)
		Expect(err).NotTo(HaveOccurred())
		parallel, err := reduce.ParallelReduce(values, reduce.WithMinParallel(0), reduce.WithWorkers(3),
			reduce.WithLogger(GinkgoLogr))
		Expect(err).NotTo(HaveOccurred())

		for _, got := range []monoid.Sum[int]{left, right, tree, parallel} {
			Expect(got.Value()).To(Equal(100))
		}
	})

	It("should produce the same running totals incrementally", func() {
		var totals []int
		for acc, err := range reduce.Scan(slices.Values(values)) {
			Expect(err).NotTo(HaveOccurred())
			totals = append(totals, acc.Value())
		}
		Expect(totals).To(Equal([]int{10, 30, 60, 100}))
	})

	DescribeTable("first non-empty option wins",
		func(in []option.Option[int], want option.Option[int]) {
			got, err := reduce.Reduce(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(option.Equal(got, want)).To(BeTrue(), "got %v, want %v", got, want)
		},
		Entry("some, none, some", []option.Option[int]{option.Some(5), option.None[int](), option.Some(3)}, option.Some(5)),
		Entry("leading none", []option.Option[int]{option.None[int](), option.Some(3)}, option.Some(3)),
		Entry("all none", []option.Option[int]{option.None[int](), option.None[int]()}, option.None[int]()),
		Entry("empty", []option.Option[int]{}, option.None[int]()),
	)

	It("should report mixed types in a dynamic fold", func() {
		_, err := reduce.ReduceValues(nil, []monoid.Value{monoid.NewMax(3), monoid.NewMin(3)})
		Expect(err).To(MatchError(monoid.ErrTypeMismatch))
	})
})
