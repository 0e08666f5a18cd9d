package shell

import (
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncoding is used when detection fails.
const DefaultEncoding = "UTF-8"

const utf16LE = "UTF-16LE"

// DetectEncoding guesses the charset of the given bytes.
//
// wsl.exe writes UTF-16LE without a BOM which chardet does not recognize,
// so that case is checked first by looking for the NUL high bytes. Valid
// UTF-8 is taken as is; chardet only sees legacy code page output.
func DetectEncoding(b []byte) string {
	if len(b) == 0 {
		return DefaultEncoding
	}
	if looksUTF16LE(b) {
		return utf16LE
	}
	if utf8.Valid(b) {
		return DefaultEncoding
	}
	res, err := chardet.NewTextDetector().DetectBest(b)
	if err != nil || res == nil || res.Charset == "" {
		return DefaultEncoding
	}
	return res.Charset
}

func looksUTF16LE(b []byte) bool {
	if len(b) < 2 || len(b)%2 != 0 {
		return false
	}
	if b[0] == 0xff && b[1] == 0xfe {
		return true
	}
	var zeros int
	for i := 1; i < len(b); i += 2 {
		if b[i] == 0 && b[i-1] != 0 {
			zeros++
		}
	}
	// most code units of mostly-ASCII text have a zero high byte
	return zeros*10 >= (len(b)/2)*9
}

func lookupEncoding(name string) encoding.Encoding {
	switch strings.ToUpper(name) {
	case utf16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case "UTF-16BE":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	}
	if enc, err := htmlindex.Get(name); err == nil {
		return enc
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc
	}
	return nil
}

// Decode converts captured command output to a string using the detected
// encoding, falling back to UTF-8.
func Decode(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	out := string(b)
	if enc := lookupEncoding(DetectEncoding(b)); enc != nil {
		if dec, err := enc.NewDecoder().Bytes(b); err == nil {
			out = string(dec)
		}
	}
	return strings.TrimPrefix(out, "\ufeff")
}
