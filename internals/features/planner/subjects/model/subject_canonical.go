package model

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Default teacher/room kalau tidak diisi.
const Unspecified = "None"

var upper = cases.Upper(language.Und)

// TitleCase: huruf pertama tiap kata kapital, sisanya kecil.
// Kata dipisah oleh karakter non-huruf, jadi "o'neil" → "O'Neil", "3d art" → "3D Art".
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToTitle(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func CanonicalName(name string) string {
	return TitleCase(clean(name))
}

func CanonicalTeacher(teacher string) string {
	t := clean(teacher)
	if t == "" {
		return Unspecified
	}
	return TitleCase(t)
}

func CanonicalRoom(room string) string {
	r := clean(room)
	if r == "" {
		return Unspecified
	}
	return upper.String(r)
}

// Canonicalize mengisi name/teacher/room dalam bentuk kanonik.
func (s *SubjectModel) Canonicalize() {
	s.SubjectName = CanonicalName(s.SubjectName)
	s.SubjectTeacher = CanonicalTeacher(s.SubjectTeacher)
	s.SubjectRoom = CanonicalRoom(s.SubjectRoom)
	if s.SubjectColour != nil {
		c := strings.ToLower(strings.TrimSpace(*s.SubjectColour))
		if c == "" {
			s.SubjectColour = nil
		} else {
			s.SubjectColour = &c
		}
	}
}
