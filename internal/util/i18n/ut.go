package i18n

import (
	ut "github.com/go-playground/universal-translator"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
)

// UT holds the translators validation messages can be rendered in; English is the fallback.
var UT = ut.New(en.New(), en.New(), es.New())
