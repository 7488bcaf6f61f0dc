// Package main provides localization for the termshow CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Play MP4 video as character art in the terminal.": "MP4動画をターミナルで文字アートとして再生します。",

		// Play command
		"Play an MP4 video as character art in the terminal.": "MP4動画をターミナルで文字アートとして再生",

		// Image command
		"Convert a still image to character art on stdout.": "静止画を文字アートに変換して標準出力へ",

		// Snapshot command
		"Export one video frame as a character-art PNG.": "動画の1フレームを文字アートPNGとして書き出し",
		"Snapshot saved to %s":                           "スナップショットを %s に保存しました",

		// Version command
		"Show version information.": "バージョン情報を表示",
		"termshow version %s":       "termshow バージョン %s",
	})
}
