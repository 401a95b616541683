package dataset

// DefaultExtensions は画像として扱う拡張子です。大文字小文字は区別します。
var DefaultExtensions = []string{".png", ".jpg", ".jpeg"}

// DefaultOutputDir は Save に空文字を渡したときの保存先です。
const DefaultOutputDir = "output"

type options struct {
	logger      *Logger
	extensions  []string
	width       int
	height      int
	nativeOrder bool
}

func newOptions(opts []Option) options {
	o := options{
		logger:     NewLogger(nil),
		extensions: DefaultExtensions,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o *options) resize() bool {
	return o.width > 0 && o.height > 0
}

// Option は Load / Walk / DecodeImage の挙動を設定します。
type Option func(*options)

// WithLogger は使用する Logger を設定します。nil なら NoopLogger になります。
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithExtensions は画像として扱う拡張子を差し替えます。
func WithExtensions(exts ...string) Option {
	return func(o *options) {
		o.extensions = exts
	}
}

// WithResize は全ての画像を width x height に拡大縮小してから平坦化します。
// サイズの揃っていない画像を含むディレクトリを読み込む場合に使います。
func WithResize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithNativeOrder はファイルを名前順に並べ替えず、ファイルシステムが返した順に読みます。
// クラスディレクトリ自体は常に名前順です。
func WithNativeOrder() Option {
	return func(o *options) {
		o.nativeOrder = true
	}
}

type saveOptions struct {
	logger *Logger
	format Format
}

func newSaveOptions(opts []SaveOption) saveOptions {
	o := saveOptions{
		logger: NewLogger(nil),
		format: FormatNpy,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// SaveOption は Save / LoadSaved の挙動を設定します。
type SaveOption func(*saveOptions)

// WithFormat は保存形式を設定します。
func WithFormat(f Format) SaveOption {
	return func(o *saveOptions) {
		o.format = f
	}
}

// WithSaveLogger は保存時に使う Logger を設定します。nil なら NoopLogger になります。
func WithSaveLogger(l *Logger) SaveOption {
	return func(o *saveOptions) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
