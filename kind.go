// SPDX-License-Identifier: Apache-2.0

package nibble

import "strconv"

// Kind identifies which class of parser produced an error.
//
// Kinds carry stable numeric codes so errors can cross process
// boundaries (logs, traces, wire formats) and be matched on the far
// side. The codes are frozen: new kinds get new codes, existing codes
// are never reused or renumbered. Gaps in the sequence are codes that
// were retired before this module froze the set.
type Kind uint32

const (
	// KindTag means a literal prefix did not match.
	KindTag Kind = 1
	// KindMapRes means a conversion on a parser result failed.
	KindMapRes Kind = 2
	// KindMapOpt means an optional conversion produced nothing.
	KindMapOpt Kind = 3
	// KindAlt means every alternative failed.
	KindAlt Kind = 4
	// KindIsNot means the input began with a forbidden element.
	KindIsNot Kind = 5
	// KindIsA means the input began outside the accepted set.
	KindIsA Kind = 6
	// KindSeparatedList means a separated list failed to parse.
	KindSeparatedList Kind = 7
	// KindSeparatedNonEmptyList means a separated list matched nothing.
	KindSeparatedNonEmptyList Kind = 8
	// KindMany1 means a repetition required at least one match.
	KindMany1 Kind = 9
	// KindCount means a counted repetition fell short.
	KindCount Kind = 10
	// KindTakeUntilAndConsume means a delimiter was not found.
	KindTakeUntilAndConsume Kind = 11
	// KindTakeUntil means a substring was not found.
	KindTakeUntil Kind = 12
	// KindTakeUntilEitherAndConsume means none of several delimiters
	// were found.
	KindTakeUntilEitherAndConsume Kind = 13
	// KindTakeUntilEither means none of several substrings were found.
	KindTakeUntilEither Kind = 14
	// KindLengthValue means a length-prefixed value was truncated.
	KindLengthValue Kind = 15
	// KindTagClosure means a computed literal did not match.
	KindTagClosure Kind = 16
	// KindAlpha means an alphabetic run was required.
	KindAlpha Kind = 17
	// KindDigit means a digit run was required.
	KindDigit Kind = 18
	// KindAlphaNumeric means an alphanumeric run was required.
	KindAlphaNumeric Kind = 19
	// KindSpace means whitespace was required.
	KindSpace Kind = 20
	// KindMultiSpace means a whitespace run was required.
	KindMultiSpace Kind = 21
	// KindLengthValueFn means a computed length-prefixed value failed.
	KindLengthValueFn Kind = 22
	// KindEof means the input ended before the parser was satisfied.
	KindEof Kind = 23
	// KindExprOpt means an optional expression produced nothing.
	KindExprOpt Kind = 24
	// KindExprRes means an expression evaluation failed.
	KindExprRes Kind = 25
	// KindCondReduce means a conditional reduction did not apply.
	KindCondReduce Kind = 26
	// KindSwitch means no switch arm matched.
	KindSwitch Kind = 27
	// KindTagBits means a bit-level literal did not match.
	KindTagBits Kind = 28
	// KindOneOf means none of the accepted elements matched.
	KindOneOf Kind = 29
	// KindNoneOf means a forbidden element matched.
	KindNoneOf Kind = 30
	// KindChar means a specific character was required.
	KindChar Kind = 40
	// KindCrLf means a CRLF line ending was required.
	KindCrLf Kind = 41
	// KindRegexpMatch means a regular expression did not match.
	KindRegexpMatch Kind = 42
	// KindRegexpMatches means repeated regexp matching failed.
	KindRegexpMatches Kind = 43
	// KindRegexpFind means a regexp search found nothing.
	KindRegexpFind Kind = 44
	// KindRegexpCapture means a regexp capture group failed.
	KindRegexpCapture Kind = 45
	// KindRegexpCaptures means repeated regexp capturing failed.
	KindRegexpCaptures Kind = 46
	// KindTakeWhile1 means a predicate run matched nothing.
	KindTakeWhile1 Kind = 47
	// KindComplete means a streaming parser demanded more input.
	KindComplete Kind = 48
	// KindFix means a fixed point failed to converge.
	KindFix Kind = 49
	// KindEscaped means an escaped sequence was malformed.
	KindEscaped Kind = 50
	// KindEscapedTransform means an escape transformation failed.
	KindEscapedTransform Kind = 51
	// KindNonEmpty means input was required but absent.
	KindNonEmpty Kind = 56
	// KindManyMN means a bounded repetition fell outside its bounds.
	KindManyMN Kind = 57
	// KindHexDigit means a hexadecimal digit run was required.
	KindHexDigit Kind = 59
	// KindOctDigit means an octal digit run was required.
	KindOctDigit Kind = 61
	// KindMany0 means an unbounded repetition failed.
	KindMany0 Kind = 62
	// KindNot means a negative lookahead matched.
	KindNot Kind = 63
	// KindPermutation means a permutation of parsers failed.
	KindPermutation Kind = 64
	// KindManyTill means a terminated repetition never terminated.
	KindManyTill Kind = 65
	// KindVerify means a post-parse predicate rejected the output.
	KindVerify Kind = 66
	// KindTakeTill1 means input began with a stop element.
	KindTakeTill1 Kind = 67
	// KindTakeUntilAndConsume1 means a non-empty delimited take failed.
	KindTakeUntilAndConsume1 Kind = 68
	// KindTakeWhileMN means a bounded predicate run fell outside its
	// bounds.
	KindTakeWhileMN Kind = 69
	// KindParseTo means a string-to-value conversion failed.
	KindParseTo Kind = 70
	// KindTooLarge means a requested size exceeded a limit.
	KindTooLarge Kind = 71
	// KindMany0Count means counting repetitions failed.
	KindMany0Count Kind = 72
	// KindMany1Count means counting non-empty repetitions failed.
	KindMany1Count Kind = 73
)

var kindDescriptions = map[Kind]string{
	KindTag:                       "Tag",
	KindMapRes:                    "Map on Result",
	KindMapOpt:                    "Map on Option",
	KindAlt:                       "Alternative",
	KindIsNot:                     "IsNot",
	KindIsA:                       "IsA",
	KindSeparatedList:             "Separated list",
	KindSeparatedNonEmptyList:     "Separated non empty list",
	KindMany1:                     "Many1",
	KindCount:                     "Count",
	KindTakeUntilAndConsume:       "Take until and consume",
	KindTakeUntil:                 "Take until",
	KindTakeUntilEitherAndConsume: "Take until either and consume",
	KindTakeUntilEither:           "Take until either",
	KindLengthValue:               "Length followed by value",
	KindTagClosure:                "Tag closure",
	KindAlpha:                     "Alphabetic",
	KindDigit:                     "Digit",
	KindAlphaNumeric:              "AlphaNumeric",
	KindSpace:                     "Space",
	KindMultiSpace:                "Multiple spaces",
	KindLengthValueFn:             "LengthValueFn",
	KindEof:                       "End of file",
	KindExprOpt:                   "Evaluate Option",
	KindExprRes:                   "Evaluate Result",
	KindCondReduce:                "Condition reduce",
	KindSwitch:                    "Switch",
	KindTagBits:                   "Tag on bitstream",
	KindOneOf:                     "OneOf",
	KindNoneOf:                    "NoneOf",
	KindChar:                      "Char",
	KindCrLf:                      "CrLf",
	KindRegexpMatch:               "RegexpMatch",
	KindRegexpMatches:             "RegexpMatches",
	KindRegexpFind:                "RegexpFind",
	KindRegexpCapture:             "RegexpCapture",
	KindRegexpCaptures:            "RegexpCaptures",
	KindTakeWhile1:                "TakeWhile1",
	KindComplete:                  "Complete",
	KindFix:                       "Fix",
	KindEscaped:                   "Escaped",
	KindEscapedTransform:          "EscapedTransform",
	KindNonEmpty:                  "NonEmpty",
	KindManyMN:                    "Many(m, n)",
	KindHexDigit:                  "Hexadecimal Digit",
	KindOctDigit:                  "Octal digit",
	KindMany0:                     "Many0",
	KindNot:                       "Negation",
	KindPermutation:               "Permutation",
	KindManyTill:                  "ManyTill",
	KindVerify:                    "predicate verification",
	KindTakeTill1:                 "TakeTill1",
	KindTakeUntilAndConsume1:      "Take at least 1 until and consume",
	KindTakeWhileMN:               "TakeWhileMN",
	KindParseTo:                   "Parse string to the specified type",
	KindTooLarge:                  "Needed data size is too large",
	KindMany0Count:                "Count occurrence of >=0 patterns",
	KindMany1Count:                "Count occurrence of >=1 patterns",
}

// String returns the kind's human-readable description, or "Kind(n)"
// for codes this module does not know.
func (k Kind) String() string {
	if d, ok := kindDescriptions[k]; ok {
		return d
	}
	return "Kind(" + strconv.FormatUint(uint64(k), 10) + ")"
}

// Code returns the kind's stable numeric code.
func (k Kind) Code() uint32 {
	return uint32(k)
}
