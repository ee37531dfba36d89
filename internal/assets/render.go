package assets

import (
	"fmt"
	"io"
	"os"

	"github.com/valyala/fasttemplate"
	"github.com/virtbuild/guestprep/internal/log"
)

const (
	tmplStartTag = "{{"
	tmplEndTag   = "}}"
)

// RenderString substitutes {{name}} placeholders in template with vars.
// Unknown placeholders are an error so a typo in an install description
// cannot silently reach the guest.
func RenderString(template string, vars map[string]string) (string, error) {
	t, err := fasttemplate.NewTemplate(template, tmplStartTag, tmplEndTag)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	rendered, err := t.ExecuteFuncStringWithErr(func(w io.Writer, tag string) (int, error) {
		value, ok := vars[tag]
		if !ok {
			return 0, fmt.Errorf("unknown template variable %q", tag)
		}
		return w.Write([]byte(value))
	})
	if err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return rendered, nil
}

// RenderFile copies src to dst substituting {{name}} placeholders.
func RenderFile(src, dst string, vars map[string]string) error {
	content, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read template %s: %w", src, err)
	}

	rendered, err := RenderString(string(content), vars)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", src, err)
	}

	if err := os.WriteFile(dst, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}

	log.Debugf("Rendered %s -> %s (%d vars)", src, dst, len(vars))
	return nil
}
