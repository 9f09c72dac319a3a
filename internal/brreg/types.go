// Package brreg provides a client for the Brønnøysundregistrene
// (enhetsregisteret) company search API and the record types it returns.
package brreg

import "fmt"

// Naeringskode is an industry classification code with its registry description.
type Naeringskode struct {
	Kode        string `json:"kode"`
	Beskrivelse string `json:"beskrivelse"`
}

// Organisasjonsform is the legal form of a registered unit (AS, ENK, NUF, ...).
type Organisasjonsform struct {
	Kode        string `json:"kode"`
	Beskrivelse string `json:"beskrivelse,omitempty"`
}

// Enhet is a single unit record from the enhetsregisteret search API.
// Records are treated as immutable once fetched.
type Enhet struct {
	Organisasjonsnummer string `json:"organisasjonsnummer"`
	Navn                string `json:"navn"`

	// Up to three industry codes; absent slots are nil.
	Naeringskode1 *Naeringskode `json:"naeringskode1,omitempty"`
	Naeringskode2 *Naeringskode `json:"naeringskode2,omitempty"`
	Naeringskode3 *Naeringskode `json:"naeringskode3,omitempty"`

	Aktivitet                          []string `json:"aktivitet,omitempty"`
	VedtektsfestetFormaal              []string `json:"vedtektsfestetFormaal,omitempty"`
	FrivilligMvaRegistrertBeskrivelser []string `json:"frivilligMvaRegistrertBeskrivelser,omitempty"`

	Organisasjonsform *Organisasjonsform `json:"organisasjonsform,omitempty"`

	Konkurs                                   bool   `json:"konkurs,omitempty"`
	UnderAvvikling                            bool   `json:"underAvvikling,omitempty"`
	UnderTvangsavviklingEllerTvangsopplosning bool   `json:"underTvangsavviklingEllerTvangsopplosning,omitempty"`
	Nedleggelsesdato                          string `json:"nedleggelsesdato,omitempty"`
}

// Naeringskoder returns the unit's industry codes in slot order,
// omitting absent slots.
func (e *Enhet) Naeringskoder() []Naeringskode {
	var koder []Naeringskode
	for _, nk := range []*Naeringskode{e.Naeringskode1, e.Naeringskode2, e.Naeringskode3} {
		if nk != nil && nk.Kode != "" {
			koder = append(koder, *nk)
		}
	}
	return koder
}

// HasNaeringskoder reports whether the unit carries at least one industry code.
func (e *Enhet) HasNaeringskoder() bool {
	return len(e.Naeringskoder()) > 0
}

// Active reports whether the unit appears to be operating: not bankrupt,
// not under liquidation or forced dissolution, and without a closure date.
func (e *Enhet) Active() bool {
	if e.Konkurs || e.UnderAvvikling || e.UnderTvangsavviklingEllerTvangsopplosning {
		return false
	}
	return e.Nedleggelsesdato == ""
}

// OrgFormKode returns the legal-form code, or "" when absent.
func (e *Enhet) OrgFormKode() string {
	if e.Organisasjonsform == nil {
		return ""
	}
	return e.Organisasjonsform.Kode
}

// FormatKoder renders industry codes as "kode: beskrivelse" display strings.
func FormatKoder(koder []Naeringskode) []string {
	out := make([]string, 0, len(koder))
	for _, nk := range koder {
		out = append(out, fmt.Sprintf("%s: %s", nk.Kode, nk.Beskrivelse))
	}
	return out
}
