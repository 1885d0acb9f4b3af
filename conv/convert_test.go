package conv_test

import (
	"testing"

	"github.com/go-playground/assert/v2"
	. "github.com/smartystreets/goconvey/convey"
	"gitlab.com/paramountdax-exchange/psp_dashboard/conv"
)

func BenchmarkParseAmount(b *testing.B) {
	for i := 0; i < b.N; i++ {
		conv.ParseAmount("101000101.33")
	}
}

func TestParseAmount(t *testing.T) {
	Convey("Given a string representation of an amount", t, func() {
		Convey("Finite decimals are accepted", func() {
			_, ok := conv.ParseAmount("100")
			So(ok, ShouldBeTrue)
			_, ok = conv.ParseAmount("15750.50")
			So(ok, ShouldBeTrue)
			_, ok = conv.ParseAmount(" 0.01 ")
			So(ok, ShouldBeTrue)
		})
		Convey("Anything else is rejected", func() {
			for _, s := range []string{"", "abc", "NaN", "12.3.4"} {
				_, ok := conv.ParseAmount(s)
				So(ok, ShouldBeFalse)
			}
		})
	})
}

func TestSumAmounts(t *testing.T) {
	Convey("Given a list of amounts", t, func() {
		Convey("The sum is exact", func() {
			total, err := conv.SumAmounts("0.1", "0.2")
			So(err, ShouldBeNil)
			So(conv.FormatAmount(total), ShouldEqual, "0.30")

			total, err = conv.SumAmounts("15420.50", "8750.25", "22100.75")
			So(err, ShouldBeNil)
			So(conv.FormatAmount(total), ShouldEqual, "46271.50")
		})
		Convey("An invalid amount is an error", func() {
			_, err := conv.SumAmounts("1", "x")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, `invalid amount "x"`)
		})
	})
}

func TestIsPositiveAmount(t *testing.T) {
	assert.Equal(t, true, conv.IsPositiveAmount("1"))
	assert.Equal(t, false, conv.IsPositiveAmount("0"))
	assert.Equal(t, false, conv.IsPositiveAmount("-5"))
	assert.Equal(t, false, conv.IsPositiveAmount("Inf"))
}
