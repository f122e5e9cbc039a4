package contact

import (
	"context"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// EncodeComponent percent-encodes s as a URI component. Letters, digits
// and -_.!~*'() pass through; every other UTF-8 byte becomes %XX. A space
// is %20, never '+'.
func EncodeComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !unreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// Subject is the mail subject for a form.
func Subject(f Form) string {
	return "Contact from " + f.Name
}

// Body is the mail body for a form.
func Body(f Form) string {
	return "Name: " + f.Name + "\nEmail: " + f.Email + "\nMessage: " + f.Message
}

// Opener hands a URI to whatever can open it. For the site that is the
// visitor's browser, which passes mailto links on to the mail client.
type Opener interface {
	Open(ctx context.Context, uri string) error
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(ctx context.Context, uri string) error

// Open calls fn.
func (fn OpenerFunc) Open(ctx context.Context, uri string) error {
	return fn(ctx, uri)
}

// Encoder builds mailto links to a fixed address.
type Encoder struct {
	address string
}

// NewEncoder returns an encoder for address. The address is placed in
// the link as given.
func NewEncoder(address string) *Encoder {
	return &Encoder{address: address}
}

// URI returns mailto:<address>?subject=...&body=... for f.
func (e *Encoder) URI(f Form) string {
	return "mailto:" + e.address +
		"?subject=" + EncodeComponent(Subject(f)) +
		"&body=" + EncodeComponent(Body(f))
}

// Submit builds the link for f, passes it to open and clears f. The
// form is cleared whether or not open succeeds: there is no way to know
// if the mail client actually appeared.
func (e *Encoder) Submit(ctx context.Context, f *Form, open Opener) (string, error) {
	uri := e.URI(*f)
	var err error
	if open != nil {
		err = open.Open(ctx, uri)
	}
	f.Reset()
	return uri, err
}
