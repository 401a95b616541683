package dataset

import (
	"path/filepath"
)

// Sample は一枚の画像から作った特徴ベクトルとラベルの組です。
type Sample struct {
	Features []float64
	Label    int
	Path     string
}

// WalkFunc は Walk が見つけた Sample ごとに呼ばれます。エラーを返すと Walk はそこで止まり、そのエラーを返します。
type WalkFunc func(s Sample) error

// Walk は root/split を走査し、見つけた画像を一枚ずつ fn に渡します。
// データセット全体をメモリに載せないので、大きな split でも使えます。何度呼んでも同じ順で走査します。
func Walk(root, split string, fn WalkFunc, opts ...Option) error {
	o := newOptions(opts)
	_, err := walk(filepath.Join(root, split), &o, fn)
	return err
}

func walk(dir string, o *options, fn WalkFunc) (Layout, error) {
	if err := checkDir(dir); err != nil {
		return LayoutFilename, err
	}

	layout, err := DetectLayout(dir)
	if err != nil {
		return layout, err
	}

	switch layout {
	case LayoutClassDirs:
		return layout, walkClassDirs(dir, o, fn)
	default:
		return layout, walkFilenames(dir, o, fn)
	}
}

func walkClassDirs(dir string, o *options, fn WalkFunc) error {
	// クラスディレクトリは常に名前順
	classes, err := readNames(dir, false)
	if err != nil {
		return err
	}

	for _, class := range classes {
		classPath := filepath.Join(dir, class)
		ok, err := isDir(classPath)
		if err != nil {
			return err
		}
		if !ok {
			o.logger.LogSkip(classPath, "not a class directory")
			continue
		}

		label, err := ParseLabel(class)
		if err != nil {
			return err
		}

		names, err := readNames(classPath, o.nativeOrder)
		if err != nil {
			return err
		}

		for _, name := range names {
			path := filepath.Join(classPath, name)
			if !hasExtension(name, o.extensions) {
				o.logger.LogSkip(path, "not an image")
				continue
			}
			nested, err := isDir(path)
			if err != nil {
				return err
			}
			if nested {
				o.logger.LogSkip(path, "nested directory")
				continue
			}
			if err := emit(path, label, o, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

func walkFilenames(dir string, o *options, fn WalkFunc) error {
	names, err := readNames(dir, o.nativeOrder)
	if err != nil {
		return err
	}

	for _, name := range names {
		path := filepath.Join(dir, name)
		ok, err := isRegular(path)
		if err != nil {
			return err
		}
		if !ok || !hasExtension(name, o.extensions) {
			o.logger.LogSkip(path, "not an image file")
			continue
		}

		label, err := ParseFilenameLabel(name)
		if err != nil {
			return err
		}
		if err := emit(path, label, o, fn); err != nil {
			return err
		}
	}
	return nil
}

func emit(path string, label int, o *options, fn WalkFunc) error {
	x, err := decodeImage(path, o)
	if err != nil {
		return err
	}
	return fn(Sample{Features: x, Label: label, Path: path})
}
