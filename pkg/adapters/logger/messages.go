package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Opening video: %s":                              "動画を開いています: %s",
		"Video info: %dx%d, %.1f fps, %d frames":         "動画情報: %dx%d, %.1f fps, %d フレーム",
		"Terminal size: %dx%d":                           "ターミナルサイズ: %dx%d",
		"Extracting frames...":                           "フレームを抽出中...",
		"Extracted %d frames":                            "%d フレームを抽出しました",
		"Character frame size: %dx%d":                    "文字フレームサイズ: %dx%d",
		"Converting to text with width %d characters...": "幅 %d 文字でテキストに変換中...",
		"Playing at %.1f fps (press Ctrl+C to stop)":     "%.1f fps で再生中 (Ctrl+C で停止)",
		"Playback finished":                              "再生が終了しました",
		"Interrupted, shutting down...":                  "中断されました。シャットダウン中...",

		// Convert stage
		"Converting %d frames with %d workers": "%d フレームを %d ワーカーで変換中",
		"Converted %d/%d frames":               "フレーム変換中 %d/%d",
		"Conversion completed":                 "変換が完了しました",

		// Player
		"No frames to play":        "再生するフレームがありません",
		"Playback stopped by user": "ユーザーにより再生が停止されました",

		// Decoder
		"Decoding %s with ffmpeg": "ffmpeg で %s をデコード中",
		"Decoded %d frames":       "%d フレームをデコードしました",

		// Errors
		"Failed to open video: %s":     "動画を開けませんでした: %s",
		"Failed to decode video: %s":   "動画のデコードに失敗しました: %s",
		"Failed to convert frames: %s": "フレームの変換に失敗しました: %s",
	})
}
