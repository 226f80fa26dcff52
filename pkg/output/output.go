// Package output turns rendered documents into tool responses, either
// inline or as files in an output directory.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/matzehuels/plotsvg/pkg/chart"
	"github.com/matzehuels/plotsvg/pkg/errors"
)

const (
	slugLen  = 30
	tokenLen = 8
	// maxSuffix bounds the -N retries after a filename collision.
	maxSuffix = 1000
)

// Output is the response payload of a tool call. Exactly one of SVG and
// SVGPath is set.
type Output struct {
	SVG     string `json:"svg,omitempty"`
	SVGPath string `json:"svg_path,omitempty"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	ViewBox string `json:"viewBox"`
}

// Marker returns the fenced local_image block that chat clients resolve to
// an inline image. It is empty for inline output.
func (o Output) Marker() string {
	if o.SVGPath == "" {
		return ""
	}
	return "```local_image\n" + o.SVGPath + "\n```"
}

// Formatter writes documents. The zero value returns inline output.
type Formatter struct {
	// Dir is the output directory; empty means inline.
	Dir string
	// Now and NewToken default to the wall clock and a random UUID.
	Now      func() time.Time
	NewToken func() string
}

// Format returns doc as an Output, saving it under Dir when set. kind and
// title name the file. The document bytes are written unmodified.
func (f Formatter) Format(kind chart.Kind, title string, doc chart.Document) (Output, error) {
	out := Output{Width: doc.Width, Height: doc.Height, ViewBox: doc.ViewBox}
	if f.Dir == "" {
		out.SVG = string(doc.SVG)
		return out, nil
	}

	path, err := f.write(f.filename(kind, title), doc.SVG)
	if err != nil {
		return Output{}, err
	}
	out.SVGPath = path
	return out, nil
}

func (f Formatter) filename(kind chart.Kind, title string) string {
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}
	name := Slug(title)
	if name == "" {
		name = f.token()
	}
	return fmt.Sprintf("%s_%s_%s", kind, now().Format("20060102_150405"), name)
}

func (f Formatter) token() string {
	if f.NewToken != nil {
		return f.NewToken()
	}
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:tokenLen]
}

// write creates base.svg in Dir without overwriting, trying base-1.svg,
// base-2.svg, ... when the name is taken.
func (f Formatter) write(base string, data []byte) (string, error) {
	dir, err := filepath.Abs(f.Dir)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve output directory %q", f.Dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "create output directory")
	}

	for i := 0; i < maxSuffix; i++ {
		name := base + ".svg"
		if i > 0 {
			name = fmt.Sprintf("%s-%d.svg", base, i)
		}
		path := filepath.Join(dir, name)
		fh, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if os.IsExist(err) {
			continue
		}
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal, err, "create %s", name)
		}
		if _, err := fh.Write(data); err != nil {
			fh.Close()
			os.Remove(path)
			return "", errors.Wrap(errors.ErrCodeInternal, err, "write %s", name)
		}
		if err := fh.Close(); err != nil {
			os.Remove(path)
			return "", errors.Wrap(errors.ErrCodeInternal, err, "write %s", name)
		}
		return path, nil
	}
	return "", errors.New(errors.ErrCodeInternal, "no free filename for %s after %d attempts", base, maxSuffix)
}

// Slug maps title to a filename fragment: every rune that is not an ASCII
// letter or digit becomes '_' and the result is cut to 30 runes.
func Slug(title string) string {
	var b strings.Builder
	n := 0
	for _, r := range title {
		if n == slugLen {
			break
		}
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
		n++
	}
	return b.String()
}
