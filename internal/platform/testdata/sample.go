package sample

import "github.com/gotruth/truth"

func checks(t truth.TestingT, opt truth.Optional[int], values []int) {
	truth.AssertThat(t, len(values)).IsEqualTo(3)
	truth.ThatOptional(truth.Assert(t), opt).HasValue(42)
	truth.Assert(t).
		ThatSlice(values).
		ContainsExactly(1, 2, 3)
	truth.ThatSeq[int](truth.Assert(t), seq(values)).IsEmpty()
	truth.ExpectFailure(t, nil)
	plain := 4
	_ = plain
	truth.AssertThat(t, []int{-1}).IsEmpty()
	truth.AssertThat(t, -1).IsEqualTo(1)
}
