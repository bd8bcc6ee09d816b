package vtc_test

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/kzmdstu/vtc"
)

func ExampleWithFrames() {
	tc, err := vtc.WithFrames(vtc.Text("00:01:00;02"), vtc.Rate29_97DF)
	if err != nil {
		panic(err)
	}
	fmt.Println(tc.Frames())
	fmt.Println(tc.Runtime(9))
	fmt.Println(tc.FeetAndFrames(vtc.FF35mm4perf))
	// Output:
	// 1800
	// 00:01:00.06
	// 112+08
}

func ExampleWithSeconds() {
	tc, err := vtc.WithSeconds(vtc.Text("01:00:03.6"), vtc.Rate23_98)
	if err != nil {
		panic(err)
	}
	fmt.Println(tc)
	fmt.Println(tc.PremiereTicks())
	// Output:
	// [01:00:00:00 @ [23.98 NTSC NDF]]
	// 915372057600000
}

func ExampleWithPlayback() {
	rate, err := vtc.WithPlayback(vtc.Text("30000/1001"), vtc.DropFrame)
	if err != nil {
		panic(err)
	}
	fmt.Println(rate, rate.Timebase().RatString())

	_, err = vtc.WithPlayback(vtc.Float(23.98), vtc.NotNtsc)
	fmt.Println(errors.Is(err, vtc.ErrImprecise))
	// Output:
	// [29.97 NTSC DF] 30
	// true
}

func ExampleTimecode_DivideFloor() {
	tc, _ := vtc.WithFrames(vtc.Text("01:00:00:04"), vtc.Rate24)
	n := big.NewRat(3, 2)
	fmt.Println(tc.DivideFloor(n).Timecode(), tc.Remainder(n).Frames())
	// Output:
	// 00:40:00:02 1
}
