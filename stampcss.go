package cvsnap

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// cssInjector defines the contract for CSS injection into HTML.
type cssInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// cssInjection injects CSS as a <style> block into HTML content.
type cssInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// CSS content is sanitized to prevent injection attacks.
func (s *cssInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	// Check for cancellation
	if ctx.Err() != nil {
		return htmlContent
	}

	sanitizedCSS := sanitizeCSS(cssContent)
	styleBlock := "<style>" + sanitizedCSS + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	// Try inserting before </head>
	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	// Try inserting after <body>
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	// Fallback: prepend
	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// StampCSS replaces every StampPlaceholder occurrence with the short snapshot
// ID. Stylesheets that don't carry the placeholder pass through unchanged and
// rely on the PDF footer stamp instead.
func StampCSS(css, shortID string) string {
	return strings.ReplaceAll(css, StampPlaceholder, shortID)
}

// loadStampCSS reads the stylesheet at path and stamps it with the short ID.
// A missing stylesheet is not an error: the footer stamp guarantees the
// identifier is visible even for bare repositories.
func loadStampCSS(path, shortID string) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- stylesheet path comes from the repo or the user
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading stylesheet %s: %w", path, err)
	}
	return StampCSS(string(content), shortID), nil
}
