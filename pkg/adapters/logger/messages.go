package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// File store
		"File '%s' not found.":         "ファイル '%s' が見つかりません。",
		"File '%s' is empty.":          "ファイル '%s' は空です。",
		"File '%s' has no rows.":       "ファイル '%s' にはデータ行がありません。",
		"Error parsing row %d %s: %v":  "%d 行目 %s の解析に失敗しました: %v",
		"Read %d of %d rows from '%s'": "%[3]s から %[2]d 行中 %[1]d 行を読み込みました",
		"Wrote %d rows to '%s'":        "%[2]s に %[1]d 行を書き込みました",
		"File '%s' has been deleted.":  "ファイル '%s' を削除しました。",
		"File '%s' does not exist.":    "ファイル '%s' は存在しません。",
		"Error deleting file '%s': %v": "ファイル '%s' の削除に失敗しました: %v",

		// History
		"Loaded %d calculations":            "%d 件の計算を読み込みました",
		"Added %s":                          "%s を追加しました",
		"Removed %s":                        "%s を削除しました",
		"History is empty, nothing to undo": "履歴が空のため取り消せません",
		"Clearing history at '%s'":          "'%s' の履歴を消去します",
	})
}
