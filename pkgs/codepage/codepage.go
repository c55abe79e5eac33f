package codepage

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// CodePage is a console code page identifier
type CodePage uint32

const (
	IBM437      CodePage = 437
	IBM850      CodePage = 850
	IBM866      CodePage = 866
	ShiftJIS    CodePage = 932
	GBK         CodePage = 936
	EUCKR       CodePage = 949
	Big5        CodePage = 950
	Windows1250 CodePage = 1250
	Windows1251 CodePage = 1251
	Windows1252 CodePage = 1252
	ISO88591    CodePage = 28591
	UTF8        CodePage = 65001
)

// names maps well-known code pages to their IANA charset names
var names = map[CodePage]string{
	IBM437:      "IBM437",
	IBM850:      "IBM850",
	IBM866:      "IBM866",
	ShiftJIS:    "Shift_JIS",
	GBK:         "GBK",
	EUCKR:       "EUC-KR",
	Big5:        "Big5",
	Windows1250: "windows-1250",
	Windows1251: "windows-1251",
	Windows1252: "windows-1252",
	ISO88591:    "ISO-8859-1",
	UTF8:        "UTF-8",
}

// Name returns the IANA charset name of a well-known code page, or "" when unknown
func (cp CodePage) Name() string {
	return names[cp]
}

func (cp CodePage) String() string {
	if name := cp.Name(); name != "" {
		return fmt.Sprintf("%d (%s)", uint32(cp), name)
	}
	return strconv.FormatUint(uint64(cp), 10)
}

// Parse reads a code page given as a number ("65001"), a cp-prefixed number ("cp1252")
// or a charset name ("utf-8", "Windows-1252")
func Parse(raw string) (CodePage, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("empty code page")
	}

	digits := s
	if len(s) > 2 && strings.EqualFold(s[:2], "cp") {
		digits = s[2:]
	}
	if num, err := strconv.ParseUint(digits, 10, 32); err == nil {
		if num == 0 {
			return 0, fmt.Errorf("invalid code page %q: must be greater than zero", raw)
		}
		return CodePage(num), nil
	}

	enc, err := ianaindex.IANA.Encoding(s)
	if err != nil || enc == nil {
		return 0, fmt.Errorf("unknown code page %q", raw)
	}
	canonical, err := ianaindex.IANA.Name(enc)
	if err != nil {
		return 0, fmt.Errorf("unknown code page %q: %w", raw, err)
	}
	for cp, name := range names {
		if strings.EqualFold(name, canonical) {
			return cp, nil
		}
	}

	return 0, fmt.Errorf("charset %q has no known console code page", canonical)
}
