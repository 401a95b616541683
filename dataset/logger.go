package dataset

import (
	"log/slog"
	"os"
)

// Logger は読み込みと保存の記録に使う slog.Logger です。
type Logger struct {
	*slog.Logger
}

// NewLogger は handler に書く Logger を作ります。handler が nil なら標準エラー出力に info 以上をテキストで書きます。
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, nil)
	}
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger は何も書かない Logger です。
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithSplit は split フィールドを付けた Logger を返します。
func (l *Logger) WithSplit(split string) *Logger {
	return &Logger{Logger: l.With("split", split)}
}

// LogSkip は読み飛ばしたエントリを記録します。
func (l *Logger) LogSkip(path, reason string) {
	l.Debug("entry skipped", "path", path, "reason", reason)
}

// LogLoad はデータセットの読み込み結果を記録します。
func (l *Logger) LogLoad(dir string, layout Layout, rows, cols int, err error) {
	if err != nil {
		l.Error("load failed", "dir", dir, "layout", layout.String(), "error", err)
		return
	}
	l.Info("dataset loaded",
		"dir", dir,
		"layout", layout.String(),
		"samples", rows,
		"features", cols,
	)
}

// LogSave は保存結果を記録します。成功時のメッセージが保存完了の通知になります。
func (l *Logger) LogSave(dir string, format Format, files []string, err error) {
	if err != nil {
		l.Error("save failed", "dir", dir, "format", format.String(), "error", err)
		return
	}
	l.Info("dataset saved to "+dir, "format", format.String(), "files", files)
}
