package token

// Encoding identifies the byte encoding of the input stream.
type Encoding int

const (
	AnyEncoding Encoding = iota
	UTF8Encoding
	UTF16LEEncoding
	UTF16BEEncoding
	UTF32LEEncoding
	UTF32BEEncoding
)

func (e Encoding) String() string {
	switch e {
	case AnyEncoding:
		return "any"
	case UTF8Encoding:
		return "utf-8"
	case UTF16LEEncoding:
		return "utf-16le"
	case UTF16BEEncoding:
		return "utf-16be"
	case UTF32LEEncoding:
		return "utf-32le"
	case UTF32BEEncoding:
		return "utf-32be"
	}
	return "<unknown encoding>"
}
