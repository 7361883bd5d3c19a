// Package main provides localization for the calchistory CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Keep a calculator history in a CSV file": "計算履歴をCSVファイルに保存します",

		// Flags
		"YAML configuration file":              "YAML設定ファイル",
		"History CSV file":                     "履歴CSVファイル",
		"Listing format (text, markdown)":      "一覧の形式（text, markdown）",
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "全てのログ出力を抑制",

		// Commands
		"Show the stored calculations":       "保存された計算を表示",
		"Perform a calculation and store it": "計算を実行して保存",
		"Remove the most recent calculation": "最後の計算を取り消す",
		"Delete the history file":            "履歴ファイルを削除",
		"Show version information":           "バージョン情報を表示",

		// Output
		"Undid %s":               "%s を取り消しました",
		"calchistory version %s": "calchistory バージョン %s",
	})
}
