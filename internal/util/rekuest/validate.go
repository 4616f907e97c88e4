package rekuest

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	esTranslations "github.com/go-playground/validator/v10/translations/es"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/mergington/activities/internal/constant"
	"github.com/mergington/activities/internal/pkg/apierr"
	"github.com/mergington/activities/internal/util"
	"github.com/mergington/activities/internal/util/i18n"
)

var Validate = util.NewValidator()

func init() {
	entr, _ := i18n.UT.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(Validate, entr); err != nil {
		log.Warn().Err(err).Str("locale", "en").Msg("could not register translation")
	}

	estr, _ := i18n.UT.GetTranslator("es")
	if err := esTranslations.RegisterDefaultTranslations(Validate, estr); err != nil {
		log.Warn().Err(err).Str("locale", "es").Msg("could not register translation")
	}
}

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

// TranslatorFromCtx returns the translator injected by middlewares.InjectI18n, or the fallback one.
func TranslatorFromCtx(ctx *fiber.Ctx) ut.Translator {
	if ctx != nil {
		if t, ok := ctx.Locals(constant.ContextKeyTranslator).(ut.Translator); ok {
			return t
		}
	}
	return i18n.UT.GetFallback()
}

func translate(utt ut.Translator, ve validator.ValidationErrors) []*ErrorResponse {
	trans := make([]*ErrorResponse, 0, len(ve))
	for _, fe := range ve {
		trans = append(trans, &ErrorResponse{
			Field:     fe.Field(),
			Violation: fe.Tag(),
			Message:   strings.TrimSpace(fe.Translate(utt)),
		})
	}
	return trans
}

// Struct validates s and returns the translated violations, if any.
func Struct(utt ut.Translator, s any) ([]*ErrorResponse, error) {
	err := Validate.Struct(s)
	if err == nil {
		return nil, nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, err
	}
	return translate(utt, errs), nil
}

func validStruct(ctx *fiber.Ctx, dest any) error {
	violations, err := Struct(TranslatorFromCtx(ctx), dest)
	if err != nil {
		return err
	}
	if violations != nil {
		return apierr.NewInvalidViolations(violations)
	}
	return nil
}

// ValidQuery parses the query string of ctx into dest using fiber#QueryParser and validates it
// with the validator singleton. dest shall always be a pointer.
func ValidQuery(ctx *fiber.Ctx, dest any) error {
	if err := ctx.QueryParser(dest); err != nil {
		return apierr.ErrInvalidReq.Msg("invalid request: %s", err)
	}
	return validStruct(ctx, dest)
}
