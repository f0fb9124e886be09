package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := map[string]string{
		"Trapez Çatı Paneli":       "trapez-cati-paneli",
		"  ÇATI KAPLAMA ÜRÜNLERİ ": "cati-kaplama-urunleri",
		"Mahya / Yan Kapama":       "mahya-yan-kapama",
		"A--B":                     "a-b",
		"şğüöçı":                   "sguoci",
	}

	for in, want := range cases {
		assert.Equal(t, want, Make(in), in)
	}
}
