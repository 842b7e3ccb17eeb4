package sheets

import (
	"fmt"
	"regexp"
	"strings"
)

const directViewURL = "https://drive.google.com/uc?id=%s&export=view"

var (
	fileIDPattern = regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]+)`)
	openIDPattern = regexp.MustCompile(`id=([a-zA-Z0-9_-]+)`)
)

// NormalizePhotoURL rewrites a Google Drive sharing link into a URL that can
// be used directly as an image source. Anything it does not recognise is
// returned unchanged.
func NormalizePhotoURL(shareURL string) (normalized string) {
	if shareURL == "" {
		return ""
	}
	defer func() {
		if recover() != nil {
			normalized = shareURL
		}
	}()

	var fileID string
	switch {
	case strings.Contains(shareURL, "/file/d/"):
		fileID = firstGroup(fileIDPattern, shareURL)
	case strings.Contains(shareURL, "open?id="):
		fileID = firstGroup(openIDPattern, shareURL)
	case strings.Contains(shareURL, "googleusercontent.com"), strings.Contains(shareURL, "uc?id="):
		return shareURL
	}

	if fileID == "" {
		return shareURL
	}
	return fmt.Sprintf(directViewURL, fileID)
}

func firstGroup(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}
