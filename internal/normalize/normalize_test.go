package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold_Case(t *testing.T) {
	assert.Equal(t, "acme limited", Fold("ACME Limited"))
}

func TestFold_Accents(t *testing.T) {
	assert.Equal(t, "societe generale", Fold("Société Générale"))
	assert.Equal(t, "gesellschaft", Fold("GESELLSCHAFT"))
	assert.Equal(t, "munchen", Fold("München"))
}

func TestFold_Compatibility(t *testing.T) {
	// Fullwidth and ligature forms decompose under NFKD.
	assert.Equal(t, "ltd", Fold("Ｌｔｄ"))
	assert.Equal(t, "strasse", Fold("Straße"))
}

func TestFold_PreservesTokenCount(t *testing.T) {
	assert.Equal(t, "a b c", Fold("A B C"))
	assert.Equal(t, "cafe du monde", Fold("Café du Monde"))
}

func TestStripPunct(t *testing.T) {
	assert.Equal(t, "llc", StripPunct("l.l.c."))
	assert.Equal(t, "acme co", StripPunct("acme, co."))
	assert.Equal(t, "ptyltd", StripPunct("pty-ltd"))
	assert.Equal(t, "a b", StripPunct("a b"))
}

func TestStripTail(t *testing.T) {
	assert.Equal(t, "Acme Inc.", StripTail("Acme Inc."))
	assert.Equal(t, "Acme Inc", StripTail("Acme Inc,"))
	assert.Equal(t, "Acme", StripTail("Acme !?&"))
	assert.Equal(t, "", StripTail("   "))
	assert.Equal(t, "", StripTail("&-,"))
	assert.Equal(t, "  Acme", StripTail("  Acme  "))
}

func TestIsAlnum(t *testing.T) {
	assert.True(t, IsAlnum('a'))
	assert.True(t, IsAlnum('7'))
	assert.True(t, IsAlnum('é'))
	assert.False(t, IsAlnum('&'))
	assert.False(t, IsAlnum(' '))
	assert.False(t, IsAlnum('.'))
}
