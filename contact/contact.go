// Package contact validates and normalizes customer contact fields. Both
// cleaners are strict: a value that cannot be normalized to a valid form is
// rejected to "" rather than passed through malformed.
package contact

import (
	"regexp"
	"strings"
)

var (
	phoneCharsRe = regexp.MustCompile(`[^\d+]`)
	mobileRe     = regexp.MustCompile(`^628[1-9]\d{6,11}$`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	emailRe      = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)
)

// Normalizer cleans phone numbers and email addresses against injected
// reference tables.
type Normalizer struct {
	// MobilePrefixes whitelists the valid 3-digit operator prefixes, the
	// digits following the leading "62".
	MobilePrefixes map[string]bool
	// DomainCorrections rewrites common email domain typos.
	DomainCorrections map[string]string
}

// NewNormalizer returns a Normalizer loaded with the production reference
// tables: the Indonesian mobile operator prefixes and the common domain
// typo corrections.
func NewNormalizer() *Normalizer {
	prefixes := []string{
		"811", "812", "813", "821", "822", "823", "851", "852", "853",
		"814", "815", "816", "855", "856", "857", "858",
		"895", "896", "897", "898", "899",
		"817", "818", "819", "859", "877", "878", "879",
		"831", "832", "833", "838",
		"881", "882", "883", "884", "885", "886", "887", "888", "889",
	}
	mp := make(map[string]bool, len(prefixes))
	for _, p := range prefixes {
		mp[p] = true
	}
	return &Normalizer{
		MobilePrefixes: mp,
		DomainCorrections: map[string]string{
			"gamil.com":   "gmail.com",
			"gmil.com":    "gmail.com",
			"gnail.com":   "gmail.com",
			"yaho.com":    "yahoo.com",
			"yhoo.com":    "yahoo.com",
			"hotnail.com": "hotmail.com",
			"outlok.com":  "outlook.com",
		},
	}
}

// CleanPhone normalizes an Indonesian mobile number to its canonical 62...
// form, or returns "" when the input is not a valid mobile number. The
// rewrite chain handles the country/trunk prefix variants seen in production
// exports; order matters.
func (n *Normalizer) CleanPhone(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = phoneCharsRe.ReplaceAllString(s, "")

	switch {
	case strings.HasPrefix(s, "+62"):
		s = "62" + s[3:]
	case strings.HasPrefix(s, "620"):
		s = "62" + s[3:]
	case strings.HasPrefix(s, "62+"):
		s = "62" + s[3:]
	case strings.HasPrefix(s, "0062"):
		s = "62" + s[4:]
	case strings.HasPrefix(s, "0"):
		s = "62" + s[1:]
	case strings.HasPrefix(s, "68"):
		s = "62" + s[1:]
	case strings.HasPrefix(s, "608"):
		s = "62" + s[2:]
	case strings.HasPrefix(s, "6262"):
		s = "62" + s[4:]
	case strings.HasPrefix(s, "6228"):
		s = "62" + s[3:]
	case strings.HasPrefix(s, "8"):
		s = "62" + s
	}

	if !strings.HasPrefix(s, "62") {
		return ""
	}
	if !mobileRe.MatchString(s) {
		return ""
	}
	if !n.MobilePrefixes[s[2:5]] {
		return ""
	}
	return s
}

// CleanEmail lowercases and despaces an email address, corrects known domain
// typos, and validates the result. Returns "" when the address is invalid.
func (n *Normalizer) CleanEmail(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	s = whitespaceRe.ReplaceAllString(s, "")
	if !strings.Contains(s, "@") {
		return ""
	}

	at := strings.Index(s, "@")
	username, domain := s[:at], s[at+1:]
	if fixed, ok := n.DomainCorrections[domain]; ok {
		domain = fixed
	}
	s = username + "@" + domain

	if !emailRe.MatchString(s) {
		return ""
	}
	return s
}
