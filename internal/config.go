package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

// Config is read from the environment. The defaults point at a chat service
// running locally, so the client starts without any variable set.
type Config struct {
	ServerHost      string        `env:"CHAT_SERVER_HOST,default=http://localhost:8080" validate:"required,url"`
	HTTPTimeout     time.Duration `env:"CHAT_HTTP_TIMEOUT,default=10s" validate:"gt=0"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO" validate:"required"`
	Colours         bool          `env:"CHAT_COLOURS,default=true"`
	CensoredWords   string        `env:"CHAT_CENSORED_WORDS"`
	CensorCharacter string        `env:"CHAT_CENSOR_CHARACTER,default=*"`
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	_, err := CharacterRune(c.CensorCharacter)
	return err
}

// CensoredWordList splits CHAT_CENSORED_WORDS on commas, dropping blanks.
func (c Config) CensoredWordList() []string {
	words := lo.Map(strings.Split(c.CensoredWords, ","), func(word string, _ int) string {
		return strings.TrimSpace(word)
	})
	return lo.Uniq(lo.Compact(words))
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHAT_CENSOR_CHARACTER must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
