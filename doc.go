// Package vtc converts between the representations of a point in a video or
// film sequence: SMPTE timecode, frame counts, real-world seconds, Premiere
// Pro ticks and feet+frames.
//
// Framerates are exact rationals. NTSC rates are n*1000/1001 and drop-frame
// rates skip frame numbers to track wall-clock time:
//
//	rate := vtc.Rate29_97DF
//	tc, err := vtc.WithFrames(vtc.Text("00:01:00;02"), rate)
//	if err != nil {
//		// errors.Is(err, vtc.ErrDropFrameValue) ...
//	}
//	fmt.Println(tc.Frames())  // 1800
//	fmt.Println(tc.Runtime(9)) // 00:01:00.06
//
// Framerate and Timecode values are immutable and safe for concurrent use.
package vtc
