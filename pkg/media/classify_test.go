package media

import "testing"

// TestClassify pins the exact decision table. The codec, the previews, and
// the CLI all route through this one function, so every row here is a
// contract, not an implementation detail.
func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Type
	}{
		{"Empty", "", TypeText},
		{"PlainText", "hello world", TypeText},
		{"TextWithDot", "see attachment.", TypeText},
		{"UnknownExtension", "notes.docx", TypeText},

		{"DataURIImage", "data:image/png;base64,AAA", TypeImage},
		{"DataURIVideo", "data:video/mp4;base64,AAA", TypeVideo},
		{"DataURIAudio", "data:audio/mpeg;base64,AAA", TypeAudio},
		// The prefix wins before any extension check runs.
		{"DataURIBeatsExtension", "data:image/svg+xml;base64,clip.mp3", TypeImage},

		{"ImageJPEG", "https://example.com/photo.jpeg", TypeImage},
		{"ImageJPG", "photo.jpg", TypeImage},
		{"ImageGIF", "anim.gif", TypeImage},
		{"ImagePNG", "shot.png", TypeImage},
		{"ImageWebP", "pic.webp", TypeImage},
		{"ImageSVG", "diagram.svg", TypeImage},

		{"VideoMP4", "clip.mp4", TypeVideo},
		{"VideoUppercaseExtension", "https://x.com/a.MP4", TypeVideo},
		{"VideoWebM", "clip.webm", TypeVideo},
		{"VideoMOV", "clip.mov", TypeVideo},
		{"VideoAVI", "clip.avi", TypeVideo},
		{"VideoMKV", "clip.mkv", TypeVideo},
		{"VideoOGV", "clip.ogv", TypeVideo},

		{"AudioMP3", "song.mp3", TypeAudio},
		{"AudioWAV", "song.wav", TypeAudio},
		{"AudioM4A", "song.m4a", TypeAudio},
		{"AudioFLAC", "song.flac", TypeAudio},
		// .ogg lives only in the audio list (.ogv covers video), so the
		// earlier video check passes it by.
		{"AudioOGG", "clip.ogg", TypeAudio},
		{"AudioUppercase", "SONG.FLAC", TypeAudio},

		// Extension must terminate the string.
		{"ExtensionMidString", "clip.mp4.txt", TypeText},
		{"QueryAfterExtension", "clip.mp4?x=1", TypeText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.content); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}
