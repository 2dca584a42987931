package shared

import (
	"github.com/go-playground/form"
)

// Decoder binds url.Values (query strings, form posts) onto structs.
var Decoder = newDecoder()

func newDecoder() *form.Decoder {
	d := form.NewDecoder()
	d.SetTagName("form")
	return d
}
