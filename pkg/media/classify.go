// Package media classifies clue content into media types and turns local
// files or URLs into data-URI content strings.
//
// Classification is pure and deterministic: the same function backs the
// editor preview, the card preview, and the snapshot codec, so a clue can
// never render as an image in one place and text in another. The media type
// is never stored - it is recomputed from content wherever needed.
package media

import (
	"regexp"
	"strings"
)

// Type is the derived media classification of a clue's content.
type Type string

const (
	TypeText  Type = "text"
	TypeImage Type = "image"
	TypeVideo Type = "video"
	TypeAudio Type = "audio"
)

// Extension sets, matched case-insensitively at the end of the content
// string. The video list carries ogv and the audio list ogg, so "clip.ogg"
// classifies as audio: the video check runs first but does not match.
var (
	imageExtRe = regexp.MustCompile(`(?i)\.(jpeg|jpg|gif|png|webp|svg)$`)
	videoExtRe = regexp.MustCompile(`(?i)\.(mp4|webm|mov|avi|mkv|ogv)$`)
	audioExtRe = regexp.MustCompile(`(?i)\.(mp3|wav|m4a|flac|ogg)$`)
)

// Classify derives the media type of a clue content string.
//
// Decision order, first match wins:
//  1. data-URI prefix: data:image/, data:video/, data:audio/
//  2. image file extension
//  3. video file extension
//  4. audio file extension
//  5. everything else (including empty content) is text
func Classify(content string) Type {
	if content == "" {
		return TypeText
	}

	switch {
	case strings.HasPrefix(content, "data:image/"):
		return TypeImage
	case strings.HasPrefix(content, "data:video/"):
		return TypeVideo
	case strings.HasPrefix(content, "data:audio/"):
		return TypeAudio
	}

	switch {
	case imageExtRe.MatchString(content):
		return TypeImage
	case videoExtRe.MatchString(content):
		return TypeVideo
	case audioExtRe.MatchString(content):
		return TypeAudio
	}

	return TypeText
}
