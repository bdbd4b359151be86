package anonymize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_FirstSeenOrder(t *testing.T) {
	s := NewSession()

	assert.Equal(t, "Técnico A", s.Technician("Carlos"))
	assert.Equal(t, "Técnico B", s.Technician("Roberta"))
	assert.Equal(t, "Técnico A", s.Technician("Carlos"))

	assert.Equal(t, "Cliente 001", s.Client("Maria Souza"))
	assert.Equal(t, "Cliente 002", s.Client("João Lima"))
	assert.Equal(t, "Cliente 001", s.Client("Maria Souza"))
}

func TestSession_CityLabelsStartAtX(t *testing.T) {
	s := NewSession()

	assert.Equal(t, "Cidade X", s.City("Brasília"))
	assert.Equal(t, "Cidade Y", s.City("Goiânia"))
	assert.Equal(t, "Cidade Z", s.City("Anápolis"))
	assert.Equal(t, "Cidade AA", s.City("Luziânia"))
}

func TestSession_SupplierLabels(t *testing.T) {
	s := NewSession()

	assert.Equal(t, "Empresa Alpha", s.Supplier("SatCom Ltda"))
	assert.Equal(t, "Empresa Beta", s.Supplier("TeleParts SA"))
}

func TestSession_EmptyNamePassesThrough(t *testing.T) {
	s := NewSession()

	assert.Equal(t, "", s.Technician(""))
	assert.Equal(t, "Técnico A", s.Technician("Carlos"))
}

func TestSessionsAreIndependent(t *testing.T) {
	a := NewSession()
	b := NewSession()

	a.Technician("Carlos")
	assert.Equal(t, "Técnico A", b.Technician("Roberta"))
}

func TestLetterLabel_WrapsPastZ(t *testing.T) {
	assert.Equal(t, "A", letterLabel(0))
	assert.Equal(t, "Z", letterLabel(25))
	assert.Equal(t, "AA", letterLabel(26))
	assert.Equal(t, "AB", letterLabel(27))
}
