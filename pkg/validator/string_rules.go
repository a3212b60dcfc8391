package validator

import (
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultEmailMaxLength is the longest address allowed by RFC 5321.
	DefaultEmailMaxLength = 254
	// DefaultURLMaxLength keeps URLs within what common browsers accept.
	DefaultURLMaxLength = 2000
)

var textOptions = []string{optAllowNull, optAllowBlank, optMinLength, optMaxLength}

// Text accepts strings only and trims surrounding whitespace.
func Text(opts ...Option) Validator {
	return newTextValidator("text", opts, 0, nil)
}

// Email is Text with a structural address check. MaxLength defaults to 254.
func Email(opts ...Option) Validator {
	return newTextValidator("email", opts, DefaultEmailMaxLength, validEmail)
}

// URL is Text that requires an absolute URL with scheme and host.
// MaxLength defaults to 2000.
func URL(opts ...Option) Validator {
	return newTextValidator("url", opts, DefaultURLMaxLength, validURL)
}

type textValidator struct {
	typeName   string
	allowNull  bool
	allowBlank bool
	minLength  int
	maxLength  int
	check      func(string) bool
}

func newTextValidator(kind string, opts []Option, defaultMax int, check func(string) bool) textValidator {
	o := buildOptions(kind, textOptions, opts)
	v := textValidator{
		typeName:   kind,
		allowNull:  o.allowNull,
		allowBlank: o.blankAllowed(false),
		maxLength:  defaultMax,
		check:      check,
	}
	if o.minLength != nil {
		v.minLength = *o.minLength
	}
	if o.maxLength != nil {
		v.maxLength = *o.maxLength
	}
	return v
}

func (v textValidator) Validate(raw any) (any, error) {
	if isNull(raw) {
		if v.allowNull {
			return nil, nil
		}
		return nil, NewError(KindNull, nil)
	}

	s, ok := raw.(string)
	if !ok {
		return nil, typeError("string")
	}

	s = strings.TrimSpace(s)
	if s == "" {
		switch {
		case v.allowBlank:
			return "", nil
		case v.allowNull:
			return nil, nil
		}
		return nil, NewError(KindBlank, nil)
	}

	length := utf8.RuneCountInString(s)
	if v.minLength > 0 && length < v.minLength {
		return nil, NewError(KindMinLength, map[string]any{"min_length": v.minLength})
	}
	if v.maxLength > 0 && length > v.maxLength {
		return nil, NewError(KindMaxLength, map[string]any{"max_length": v.maxLength})
	}

	if v.check != nil && !v.check(s) {
		return nil, valueError(v.typeName)
	}
	return s, nil
}

// validEmail accepts a bare addr-spec whose domain has at least two labels.
func validEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || addr.Name != "" {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

func validURL(value string) bool {
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
