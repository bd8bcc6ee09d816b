package vtc

// Common framerates.
var (
	// Rate23_98 is 23.98 NTSC non-drop-frame.
	Rate23_98 = Framerate{num: 24000, den: 1001, ntsc: NonDropFrame}
	// Rate24 is 24 fps.
	Rate24 = Framerate{num: 24, den: 1, ntsc: NotNtsc}
	// Rate29_97NDF is 29.97 NTSC non-drop-frame.
	Rate29_97NDF = Framerate{num: 30000, den: 1001, ntsc: NonDropFrame}
	// Rate29_97DF is 29.97 NTSC drop-frame.
	Rate29_97DF = Framerate{num: 30000, den: 1001, ntsc: DropFrame}
	// Rate30 is 30 fps.
	Rate30 = Framerate{num: 30, den: 1, ntsc: NotNtsc}
	// Rate47_95 is 47.95 NTSC non-drop-frame.
	Rate47_95 = Framerate{num: 48000, den: 1001, ntsc: NonDropFrame}
	// Rate48 is 48 fps.
	Rate48 = Framerate{num: 48, den: 1, ntsc: NotNtsc}
	// Rate59_94NDF is 59.94 NTSC non-drop-frame.
	Rate59_94NDF = Framerate{num: 60000, den: 1001, ntsc: NonDropFrame}
	// Rate59_94DF is 59.94 NTSC drop-frame.
	Rate59_94DF = Framerate{num: 60000, den: 1001, ntsc: DropFrame}
	// Rate60 is 60 fps.
	Rate60 = Framerate{num: 60, den: 1, ntsc: NotNtsc}
)
