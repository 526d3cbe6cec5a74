package stringarray

import (
	"github.com/apache/arrow-go/v18/arrow"

	"github.com/lemur-data/lemur/internal/errors"
	"github.com/lemur-data/lemur/internal/extension"
	"github.com/lemur-data/lemur/internal/kernels"
)

// The string-method vtable. Only substring containment and case lowering are
// implemented against the storage kernels; every other entry fails with the
// not-implemented error kind so the host can tell unsupported operations
// apart from bad input.

// StrContains reports, per element, whether the element contains pat as a
// literal substring. Null elements produce null results. Regex matching is
// not implemented.
func (a *StringArray) StrContains(pat string, regex bool) (arrow.Array, error) {
	if regex {
		return nil, errors.NewNotImplementedError("StrContains with regex")
	}
	return kernels.MatchSubstring(a.mem, a.data, pat), nil
}

// StrLower lowers every element, producing a new StringArray. With ascii,
// only ASCII letters are lowered; otherwise the full UTF-8 value is.
func (a *StringArray) StrLower(ascii bool) (extension.Array, error) {
	var lowered *arrow.Chunked
	if ascii {
		lowered = kernels.AsciiLower(a.mem, a.data)
	} else {
		lowered = kernels.Utf8Lower(a.mem, a.data)
	}
	return &StringArray{data: lowered, mem: a.mem}, nil
}

func (a *StringArray) StrCount(pat string) (arrow.Array, error) {
	return nil, errors.NewNotImplementedError("StrCount")
}

func (a *StringArray) StrPad(width int, side string, fillChar rune) (extension.Array, error) {
	return nil, errors.NewNotImplementedError("StrPad")
}

func (a *StringArray) StrStartsWith(pat string) (arrow.Array, error) {
	return nil, errors.NewNotImplementedError("StrStartsWith")
}

func (a *StringArray) StrEndsWith(pat string) (arrow.Array, error) {
	return nil, errors.NewNotImplementedError("StrEndsWith")
}

func (a *StringArray) StrReplace(pat, repl string, n int, regex bool) (extension.Array, error) {
	return nil, errors.NewNotImplementedError("StrReplace")
}

func (a *StringArray) StrRepeat(repeats int) (extension.Array, error) {
	return nil, errors.NewNotImplementedError("StrRepeat")
}

func (a *StringArray) StrMatch(pat string) (arrow.Array, error) {
	return nil, errors.NewNotImplementedError("StrMatch")
}

func (a *StringArray) StrFullMatch(pat string) (arrow.Array, error) {
	return nil, errors.NewNotImplementedError("StrFullMatch")
}

func (a *StringArray) StrEncode(encoding string) (extension.Array, error) {
	return nil, errors.NewNotImplementedError("StrEncode")
}

func (a *StringArray) StrFind(sub string, start, end int) (arrow.Array, error) {
	return nil, errors.NewNotImplementedError("StrFind")
}

func (a *StringArray) StrRFind(sub string, start, end int) (arrow.Array, error) {
	return nil, errors.NewNotImplementedError("StrRFind")
}

func (a *StringArray) StrFindAll(pat string) (extension.Array, error) {
	return nil, errors.NewNotImplementedError("StrFindAll")
}

func (a *StringArray) StrGet(i int) (extension.Array, error) {
	return nil, errors.NewNotImplementedError("StrGet")
}

func (a *StringArray) StrIndex(sub string, start, end int) (arrow.Array, error) {
	return nil, errors.NewNotImplementedError("StrIndex")
}

func (a *StringArray) StrRIndex(sub string, start, end int) (arrow.Array, error) {
	return nil, errors.NewNotImplementedError("StrRIndex")
}

func (a *StringArray) StrJoin(sep string) (extension.Array, error) {
	return nil, errors.NewNotImplementedError("StrJoin")
}

func (a *StringArray) StrPartition(sep string, expand bool) (extension.Array, error) {
	return nil, errors.NewNotImplementedError("StrPartition")
}

func (a *StringArray) StrRPartition(sep string, expand bool) (extension.Array, error) {
	return nil, errors.NewNotImplementedError("StrRPartition")
}

func (a *StringArray) StrLen() (arrow.Array, error) {
	return nil, errors.NewNotImplementedError("StrLen")
}

func (a *StringArray) StrSlice(start, stop, step int) (extension.Array, error) {
	return nil, errors.NewNotImplementedError("StrSlice")
}

func (a *StringArray) StrSliceReplace(start, stop int, repl string) (extension.Array, error) {
	return nil, errors.NewNotImplementedError("StrSliceReplace")
}

func (a *StringArray) StrTranslate(table map[rune]rune) (extension.Array, error) {
	return nil, errors.NewNotImplementedError("StrTranslate")
}

func (a *StringArray) StrWrap(width int) (extension.Array, error) {
	return nil, errors.NewNotImplementedError("StrWrap")
}

func (a *StringArray) StrGetDummies(sep string) (extension.Array, error) {
	return nil, errors.NewNotImplementedError("StrGetDummies")
}

func (a *StringArray) StrIsAlnum() (arrow.Array, error) {
	return nil, errors.NewNotImplementedError("StrIsAlnum")
}

func (a *StringArray) StrIsAlpha() (arrow.Array, error) {
	return nil, errors.NewNotImplementedError("StrIsAlpha")
}

func (a *StringArray) StrIsDecimal() (arrow.Array, error) {
	return nil, errors.NewNotImplementedError("StrIsDecimal")
}

func (a *StringArray) StrIsDigit() (arrow.Array, error) {
	return nil, errors.NewNotImplementedError("StrIsDigit")
}

func (a *StringArray) StrIsLower() (arrow.Array, error) {
	return nil, errors.NewNotImplementedError("StrIsLower")
}

func (a *StringArray) StrIsNumeric() (arrow.Array, error) {
	return nil, errors.NewNotImplementedError("StrIsNumeric")
}

func (a *StringArray) StrIsSpace() (arrow.Array, error) {
	return nil, errors.NewNotImplementedError("StrIsSpace")
}

func (a *StringArray) StrIsTitle() (arrow.Array, error) {
	return nil, errors.NewNotImplementedError("StrIsTitle")
}

func (a *StringArray) StrIsUpper() (arrow.Array, error) {
	return nil, errors.NewNotImplementedError("StrIsUpper")
}

func (a *StringArray) StrCapitalize() (extension.Array, error) {
	return nil, errors.NewNotImplementedError("StrCapitalize")
}

func (a *StringArray) StrCasefold() (extension.Array, error) {
	return nil, errors.NewNotImplementedError("StrCasefold")
}

func (a *StringArray) StrTitle() (extension.Array, error) {
	return nil, errors.NewNotImplementedError("StrTitle")
}

func (a *StringArray) StrSwapcase() (extension.Array, error) {
	return nil, errors.NewNotImplementedError("StrSwapcase")
}

func (a *StringArray) StrUpper() (extension.Array, error) {
	return nil, errors.NewNotImplementedError("StrUpper")
}

func (a *StringArray) StrNormalize(form string) (extension.Array, error) {
	return nil, errors.NewNotImplementedError("StrNormalize")
}

func (a *StringArray) StrStrip(cutset string) (extension.Array, error) {
	return nil, errors.NewNotImplementedError("StrStrip")
}

func (a *StringArray) StrLStrip(cutset string) (extension.Array, error) {
	return nil, errors.NewNotImplementedError("StrLStrip")
}

func (a *StringArray) StrRStrip(cutset string) (extension.Array, error) {
	return nil, errors.NewNotImplementedError("StrRStrip")
}

func (a *StringArray) StrSplit(pat string, n int) (extension.Array, error) {
	return nil, errors.NewNotImplementedError("StrSplit")
}

func (a *StringArray) StrRSplit(pat string, n int) (extension.Array, error) {
	return nil, errors.NewNotImplementedError("StrRSplit")
}

var _ extension.StringMethods = (*StringArray)(nil)
