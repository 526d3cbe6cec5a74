package extension

import (
	"github.com/apache/arrow-go/v18/arrow"
)

// StringMethods is the per-operation string vtable a string-backed extension
// array exposes to the host's string-accessor dispatch layer. The contract
// is the full method set: an array may implement any subset behaviorally,
// but every entry must be present and an unimplemented entry must fail with
// the not-implemented error kind rather than silently no-op.
//
// Predicate and measurement methods return dense arrow vectors; transforming
// methods return a new extension array.
type StringMethods interface {
	StrCount(pat string) (arrow.Array, error)
	StrPad(width int, side string, fillChar rune) (Array, error)
	StrContains(pat string, regex bool) (arrow.Array, error)
	StrStartsWith(pat string) (arrow.Array, error)
	StrEndsWith(pat string) (arrow.Array, error)
	StrReplace(pat, repl string, n int, regex bool) (Array, error)
	StrRepeat(repeats int) (Array, error)
	StrMatch(pat string) (arrow.Array, error)
	StrFullMatch(pat string) (arrow.Array, error)
	StrEncode(encoding string) (Array, error)
	StrFind(sub string, start, end int) (arrow.Array, error)
	StrRFind(sub string, start, end int) (arrow.Array, error)
	StrFindAll(pat string) (Array, error)
	StrGet(i int) (Array, error)
	StrIndex(sub string, start, end int) (arrow.Array, error)
	StrRIndex(sub string, start, end int) (arrow.Array, error)
	StrJoin(sep string) (Array, error)
	StrPartition(sep string, expand bool) (Array, error)
	StrRPartition(sep string, expand bool) (Array, error)
	StrLen() (arrow.Array, error)
	StrSlice(start, stop, step int) (Array, error)
	StrSliceReplace(start, stop int, repl string) (Array, error)
	StrTranslate(table map[rune]rune) (Array, error)
	StrWrap(width int) (Array, error)
	StrGetDummies(sep string) (Array, error)
	StrIsAlnum() (arrow.Array, error)
	StrIsAlpha() (arrow.Array, error)
	StrIsDecimal() (arrow.Array, error)
	StrIsDigit() (arrow.Array, error)
	StrIsLower() (arrow.Array, error)
	StrIsNumeric() (arrow.Array, error)
	StrIsSpace() (arrow.Array, error)
	StrIsTitle() (arrow.Array, error)
	StrIsUpper() (arrow.Array, error)
	StrCapitalize() (Array, error)
	StrCasefold() (Array, error)
	StrTitle() (Array, error)
	StrSwapcase() (Array, error)
	StrLower(ascii bool) (Array, error)
	StrUpper() (Array, error)
	StrNormalize(form string) (Array, error)
	StrStrip(cutset string) (Array, error)
	StrLStrip(cutset string) (Array, error)
	StrRStrip(cutset string) (Array, error)
	StrSplit(pat string, n int) (Array, error)
	StrRSplit(pat string, n int) (Array, error)
}
