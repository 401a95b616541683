package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Layout は split ディレクトリの構成です。
type Layout int

const (
	// LayoutFilename は "<label>_<任意>.<ext>" という画像が split 直下に並ぶ構成です。
	LayoutFilename Layout = iota
	// LayoutClassDirs は split/<label>/ の下に画像が入っている構成です。
	LayoutClassDirs
)

func (l Layout) String() string {
	switch l {
	case LayoutFilename:
		return "filename"
	case LayoutClassDirs:
		return "class-dirs"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// DetectLayout は dir 直下にディレクトリが一つでもあれば LayoutClassDirs、なければ LayoutFilename を返します。
func DetectLayout(dir string) (Layout, error) {
	names, err := readNames(dir, true)
	if err != nil {
		return LayoutFilename, err
	}
	for _, name := range names {
		ok, err := isDir(filepath.Join(dir, name))
		if err != nil {
			return LayoutFilename, err
		}
		if ok {
			return LayoutClassDirs, nil
		}
	}
	return LayoutFilename, nil
}

// ParseLabel はクラスディレクトリ名を整数ラベルとして解釈します。
func ParseLabel(name string) (int, error) {
	return parseLabel(name, name)
}

// ParseFilenameLabel はファイル名の最初の "_" より前を整数ラベルとして解釈します。
func ParseFilenameLabel(name string) (int, error) {
	prefix, _, found := strings.Cut(name, "_")
	if !found {
		return 0, &LabelError{Name: name, cause: errors.New("missing '_' separator")}
	}
	return parseLabel(name, prefix)
}

func parseLabel(name, s string) (int, error) {
	label, err := strconv.Atoi(s)
	if err != nil {
		return 0, &LabelError{Name: name, cause: err}
	}
	if label < 0 {
		return 0, &LabelError{Name: name, cause: errors.New("negative label")}
	}
	return label, nil
}

func hasExtension(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// readNames は dir 直下のエントリ名を返します。native が false なら名前順に並べ替えます。
func readNames(dir string, native bool) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, err
	}
	if !native {
		slices.Sort(names)
	}
	return names, nil
}

// シンボリックリンクは辿ります。リンク切れはディレクトリでもファイルでもない扱いです。
func isDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func isRegular(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

func checkDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, dir)
	}
	return nil
}
