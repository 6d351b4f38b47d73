package grassplain

import (
	"github.com/napalu/grassplain/emitter"
	"github.com/napalu/grassplain/schema"
)

// Generate emits parser source for cfg in its target language. It fails with
// an *errs.UnsupportedTargetError when no backend exists for the language and
// with an *errs.EmissionError when the backend can not represent cfg.
func Generate(cfg *schema.ConfigurationFile, configs ...emitter.ConfigureEmitterFunc) (string, error) {
	e, err := emitter.GetEmitter(cfg.Meta.TargetLanguage, configs...)
	if err != nil {
		return "", err
	}

	return e.Emit(cfg)
}

// LoadAndGenerate runs the whole pipeline on text
func LoadAndGenerate(text string, loaderConfigs []ConfigureLoaderFunc, emitterConfigs ...emitter.ConfigureEmitterFunc) (string, error) {
	cfg, err := Load(text, loaderConfigs...)
	if err != nil {
		return "", err
	}

	return Generate(cfg, emitterConfigs...)
}
