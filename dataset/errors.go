package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrDirectoryNotFound は root/split が存在しない場合に返されます。
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrLabelParse はクラスディレクトリ名、またはファイル名の接頭辞が整数でない場合に返されます。
	ErrLabelParse = errors.New("label parse error")

	// ErrImageDecode は画像ファイルを開けない、またはデコードできない場合に返されます。
	ErrImageDecode = errors.New("image decode error")

	// ErrFeatureSizeMismatch は画像サイズが揃っておらず、特徴ベクトルの長さが一致しない場合に返されます。
	ErrFeatureSizeMismatch = errors.New("feature size mismatch")

	// ErrLabelOutOfRange は OneHot でクラス数の範囲外のラベルを見つけた場合に返されます。
	ErrLabelOutOfRange = errors.New("label out of range")
)

// LabelError はラベルとして解釈できなかった名前と、その原因を保持します。
type LabelError struct {
	Name  string
	cause error
}

func (e *LabelError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("%v: %q", ErrLabelParse, e.Name)
	}
	return fmt.Sprintf("%v: %q: %v", ErrLabelParse, e.Name, e.cause)
}

func (e *LabelError) Unwrap() error { return e.cause }

func (e *LabelError) Is(target error) bool { return target == ErrLabelParse }

// DecodeError は読み込みに失敗した画像のパスと、その原因を保持します。
type DecodeError struct {
	Path  string
	cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrImageDecode, e.Path, e.cause)
}

func (e *DecodeError) Unwrap() error { return e.cause }

func (e *DecodeError) Is(target error) bool { return target == ErrImageDecode }
