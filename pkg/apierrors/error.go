package apierrors

import (
	"encoding/json"
	"fmt"

	"taskmanager/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
)

// Err is an API error. It is written to clients as a bare JSON string
// holding the translated message.
type Err struct {
	Code    int
	Message string
}

// Error implements the error interface for Err.
func (e Err) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.Code, e.Message)
}

func (e Err) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Message)
}

// CreateError generates an Err with a translated message.
func CreateError(code int, msgKey string, lang string) Err {
	return Err{Code: code, Message: GetTransErrorMsg(msgKey, lang)}
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string) string {
	l := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn)
	m := i18n.LocalizeConfig{}
	m.MessageID = msgKey
	msg, err := l.Localize(&m)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
