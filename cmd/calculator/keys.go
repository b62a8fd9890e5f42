package main

import (
	"strconv"
	"unicode"
)

type key struct {
	text string
	kind keyKind
	pos  int
}

func (k key) String() string {
	return k.kind.String() + ":" + k.text + "@" + strconv.Itoa(k.pos)
}

type keyKind int

const (
	keyNone keyKind = iota
	// keyDigits is a run of digit and decimal point keys.
	keyDigits
	// keyOp is an operation symbol.
	keyOp
	// keyVar is a variable reference.
	keyVar
	// keyStore stores the display into the variable named by text.
	keyStore
	// keyBack is backspace: remove a typed digit or undo a step.
	keyBack
	// keyClear clears the brain and all variables.
	keyClear
)

func (k keyKind) String() string {
	switch k {
	case keyNone:
		return "None"
	case keyDigits:
		return "Digits"
	case keyOp:
		return "Op"
	case keyVar:
		return "Var"
	case keyStore:
		return "Store"
	case keyBack:
		return "Back"
	case keyClear:
		return "Clear"
	default:
		return "keyKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// aliases maps typeable spellings to operation symbols.
var aliases = map[string]string{
	"*":    "×",
	"/":    "÷",
	"-":    "−",
	"^":    "xʸ",
	"pow":  "xʸ",
	"sqrt": "√",
	"pi":   "π",
	"neg":  "+/-",
}

// commands maps identifiers to non-operation keys.
var commands = map[string]keyKind{
	"undo":  keyBack,
	"back":  keyBack,
	"clear": keyClear,
	"C":     keyClear,
}

// keyLexer scans a line of input into key presses.
type keyLexer struct {
	src  []rune
	pos  int
	syms []string
}

func lexKeys(line string, syms []string) *keyLexer {
	return &keyLexer{src: []rune(line), syms: syms}
}

// next scans the next key. At the end of the input, the result is a key of
// kind keyNone.
func (l *keyLexer) next() (key, error) {
	for l.pos < len(l.src) && unicode.IsSpace(l.src[l.pos]) {
		l.pos++
	}
	k := key{pos: l.pos + 1}
	if l.pos >= len(l.src) {
		return k, nil
	}
	r := l.src[l.pos]
	switch {
	case '0' <= r && r <= '9', r == '.':
		k.text = l.scan(func(r rune) bool { return '0' <= r && r <= '9' || r == '.' })
		k.kind = keyDigits
		return k, nil
	case r == '_', unicode.IsLetter(r):
		k.text = l.scan(func(r rune) bool { return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) })
		k.kind = l.ident(k.text)
		if s, ok := aliases[k.text]; ok {
			k.text = s
		}
		return k, nil
	case r == '→', r == '>':
		l.pos++
		name := l.scan(func(r rune) bool { return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) })
		if name == "" || unicode.IsDigit([]rune(name)[0]) {
			return key{pos: k.pos}, &KeyError{Col: k.pos, Text: string(r) + name}
		}
		k.text = name
		k.kind = keyStore
		return k, nil
	case r == '←':
		l.pos++
		k.text = "←"
		k.kind = keyBack
		return k, nil
	}
	// Longest matching operation symbol.
	var best string
	for _, s := range l.syms {
		if len(s) > len(best) && l.hasPrefix(s) {
			best = s
		}
	}
	if best == "" {
		if s, ok := aliases[string(r)]; ok {
			l.pos++
			k.text = s
			k.kind = keyOp
			return k, nil
		}
		l.pos++
		return key{pos: k.pos}, &KeyError{Col: k.pos, Text: string(r)}
	}
	l.pos += len([]rune(best))
	k.text = best
	k.kind = keyOp
	return k, nil
}

// all scans the remaining keys. Keys that can't be scanned are skipped, and
// the first error is returned alongside the valid keys.
func (l *keyLexer) all() ([]key, error) {
	var keys []key
	var first error
	for {
		k, err := l.next()
		if err != nil {
			if first == nil {
				first = err
			}
			continue
		}
		if k.kind == keyNone {
			return keys, first
		}
		keys = append(keys, k)
	}
}

func (l *keyLexer) scan(ok func(rune) bool) string {
	start := l.pos
	for l.pos < len(l.src) && ok(l.src[l.pos]) {
		l.pos++
	}
	return string(l.src[start:l.pos])
}

func (l *keyLexer) hasPrefix(s string) bool {
	p := l.pos
	for _, r := range s {
		if p >= len(l.src) || l.src[p] != r {
			return false
		}
		p++
	}
	return true
}

// ident decides the kind of an identifier.
func (l *keyLexer) ident(s string) keyKind {
	if k, ok := commands[s]; ok {
		return k
	}
	if _, ok := aliases[s]; ok {
		return keyOp
	}
	for _, sym := range l.syms {
		if sym == s {
			return keyOp
		}
	}
	return keyVar
}

// KeyError indicates input that doesn't correspond to any key.
type KeyError struct {
	// Col is the 1-based rune column of the invalid input.
	Col int
	// Text is the invalid input.
	Text string
}

func (err *KeyError) Error() string {
	return "invalid key at column " + strconv.Itoa(err.Col) + ": " + strconv.Quote(err.Text)
}
