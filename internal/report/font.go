package report

import (
	"fmt"
	"os"
)

// fpdf's built-in fonts cover Latin only, so the report needs a CJK
// TrueType font from the host. These are the usual install locations;
// a config-pinned path always wins over probing.
var fontCandidates = []string{
	"/usr/share/fonts/truetype/fonts-japanese-gothic.ttf",
	"/usr/share/fonts/truetype/takao-gothic/TakaoGothic.ttf",
	"/usr/share/fonts/truetype/takao-gothic/TakaoPGothic.ttf",
	"/usr/share/fonts/truetype/ipafont-gothic/ipag.ttf",
	"/usr/share/fonts/truetype/ipafont-gothic/ipagp.ttf",
	"/usr/share/fonts/ipa-gothic/ipag.ttf",
	"/usr/share/fonts/truetype/noto/NotoSansMonoCJKjp-Regular.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
}

func resolveFont(pinned string) (string, error) {
	if pinned != "" {
		if _, err := os.Stat(pinned); err != nil {
			return "", fmt.Errorf("configured font %s is not readable: %w", pinned, err)
		}
		return pinned, nil
	}
	for _, candidate := range fontCandidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no Japanese-capable TrueType font found; install fonts-ipafont-gothic or set the font path in the config")
}
