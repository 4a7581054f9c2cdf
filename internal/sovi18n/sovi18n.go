// Package sovi18n provides the message catalog and error-kind tagging used
// by every component that returns an error across the sovtoken core.
package sovi18n

import (
	"context"
	"fmt"
	"regexp"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// MessageKey is the lookup string for a registered message.
type MessageKey string

// ErrorKind is the closed taxonomy of failures a core API can surface.
// The set is fixed: programmatic callers dispatch on it, FFI callers get
// its numeric Code().
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindMalformedStructure
	KindInvalidState
	KindInsufficientFunds
	KindSourceDoesNotExist
	KindInvalidParam
	KindWalletSignFailed
)

// Code returns the stable numeric code surfaced across the FFI boundary.
func (k ErrorKind) Code() int32 {
	switch k {
	case KindMalformedStructure:
		return 112
	case KindInvalidState:
		return 113
	case KindInsufficientFunds:
		return 204
	case KindSourceDoesNotExist:
		return 205
	case KindInvalidParam:
		return 115
	case KindWalletSignFailed:
		return 206
	default:
		return 1
	}
}

func (k ErrorKind) String() string {
	switch k {
	case KindMalformedStructure:
		return "MalformedStructure"
	case KindInvalidState:
		return "InvalidState"
	case KindInsufficientFunds:
		return "InsufficientFunds"
	case KindSourceDoesNotExist:
		return "SourceDoesNotExist"
	case KindInvalidParam:
		return "InvalidParam"
	case KindWalletSignFailed:
		return "WalletSignFailed"
	default:
		return "Unknown"
	}
}

// MsgDef binds a registered message to the error kind it represents.
type MsgDef struct {
	Key  MessageKey
	Kind ErrorKind
}

// CoreError is the concrete error type returned by every exported sovtoken
// core function. It carries both the closed ErrorKind (for programmatic
// dispatch) and a human-readable, translated message (for logging).
type CoreError struct {
	Kind ErrorKind
	msg  string
}

func (e *CoreError) Error() string { return e.msg }

// KindOf returns the ErrorKind carried by err if it is a *CoreError, and
// KindUnknown otherwise. ErrorKind is not an error value, so errors.Is
// cannot match on it; KindOf is the way to dispatch on the kind.
func KindOf(err error) ErrorKind {
	if ce, ok := err.(*CoreError); ok {
		return ce.Kind
	}
	return KindUnknown
}

var msgIDUniq = map[string]bool{}
var fallbackLangPrinter = message.NewPrinter(language.AmericanEnglish)
var defaultLangPrinter *message.Printer
var prefixValidator = regexp.MustCompile(`^SVT\d{4}$`)

type ctxLangKey struct{}

// WithLang sets the language on the context, mirroring how a host can
// request translated diagnostics without changing the ErrorKind contract.
func WithLang(ctx context.Context, lang language.Tag) context.Context {
	return context.WithValue(ctx, ctxLangKey{}, lang)
}

func pFor(ctx context.Context) *message.Printer {
	if lang, ok := ctx.Value(ctxLangKey{}).(language.Tag); ok {
		return message.NewPrinter(lang)
	}
	return defaultLangPrinter
}

func init() {
	defaultLangPrinter = message.NewPrinter(language.AmericanEnglish)
}

// Def registers a new message under a SVT#### key bound to an ErrorKind.
// Panics on a malformed or duplicate key - these are programmer errors
// caught at package init time, not runtime conditions.
func Def(key, translation string, kind ErrorKind) MsgDef {
	if !prefixValidator.MatchString(key) {
		panic(fmt.Sprintf("invalid message key %q: must match SVT####", key))
	}
	if msgIDUniq[key] {
		panic(fmt.Sprintf("duplicate message key %q", key))
	}
	msgIDUniq[key] = true
	_ = message.Set(language.AmericanEnglish, key, catalog.String(translation))
	return MsgDef{Key: MessageKey(key), Kind: kind}
}

// NewError builds a *CoreError for the given message definition, expanding
// its translation (falling back to American English) with inserts.
func NewError(ctx context.Context, def MsgDef, inserts ...interface{}) error {
	translation := pFor(ctx).Sprintf(string(def.Key), inserts...)
	if translation == string(def.Key) {
		translation = fallbackLangPrinter.Sprintf(string(def.Key), inserts...)
	}
	return &CoreError{
		Kind: def.Kind,
		msg:  fmt.Sprintf("%s: %s", def.Key, translation),
	}
}

// WrapError is used where an underlying error (e.g. JSON parse failure)
// should be folded into a CoreError of the given kind without losing the
// low-level detail in the message text.
func WrapError(ctx context.Context, def MsgDef, cause error, inserts ...interface{}) error {
	inserts = append(inserts, cause)
	return NewError(ctx, def, inserts...)
}
