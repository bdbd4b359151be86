// Package anonymize replaces personal names in exported reports with
// stable pseudonyms. A Session holds its own pseudonym maps, assigned
// in first-seen order, and is created per export and discarded after,
// so repeated exports over the same data produce the same output.
package anonymize

import "fmt"

// Session assigns pseudonyms within a single export. It is not safe
// for concurrent use; each export builds its own.
type Session struct {
	technicians map[string]string
	cities      map[string]string
	clients     map[string]string
	suppliers   map[string]string
}

// NewSession returns an empty pseudonym session.
func NewSession() *Session {
	return &Session{
		technicians: make(map[string]string),
		cities:      make(map[string]string),
		clients:     make(map[string]string),
		suppliers:   make(map[string]string),
	}
}

// Technician maps a technician name to "Técnico A", "Técnico B", ...
// in first-seen order.
func (s *Session) Technician(name string) string {
	return assign(s.technicians, name, func(n int) string {
		return "Técnico " + letterLabel(n)
	})
}

// City maps a city name to "Cidade X", "Cidade Y", ... continuing
// through the alphabet from X in first-seen order.
func (s *Session) City(name string) string {
	return assign(s.cities, name, func(n int) string {
		return "Cidade " + letterLabel(n+23)
	})
}

// Client maps a client name to "Cliente 001", "Cliente 002", ...
func (s *Session) Client(name string) string {
	return assign(s.clients, name, func(n int) string {
		return fmt.Sprintf("Cliente %03d", n+1)
	})
}

// Supplier maps a supplier name to "Empresa Alpha", "Empresa Beta", ...
func (s *Session) Supplier(name string) string {
	return assign(s.suppliers, name, func(n int) string {
		if n < len(greekLabels) {
			return "Empresa " + greekLabels[n]
		}
		return fmt.Sprintf("Empresa %d", n+1)
	})
}

func assign(m map[string]string, name string, label func(n int) string) string {
	if name == "" {
		return ""
	}
	if p, ok := m[name]; ok {
		return p
	}
	p := label(len(m))
	m[name] = p
	return p
}

// letterLabel yields A..Z, then AA, AB, ... like spreadsheet columns.
func letterLabel(n int) string {
	label := ""
	for {
		label = string(rune('A'+n%26)) + label
		n = n/26 - 1
		if n < 0 {
			return label
		}
	}
}

var greekLabels = []string{
	"Alpha", "Beta", "Gamma", "Delta", "Epsilon",
	"Zeta", "Eta", "Theta", "Iota", "Kappa",
}
