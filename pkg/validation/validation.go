package validation

import (
	"context"
	"sync"

	"github.com/go-playground/mold/v4"
	"github.com/go-playground/mold/v4/modifiers"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	conform      *mold.Transformer
	onceValidate sync.Once
	onceConform  sync.Once
)

func Validate() *validator.Validate {
	onceValidate.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

func Conform() *mold.Transformer {
	onceConform.Do(func() {
		conform = modifiers.New()
	})

	return conform
}

// Struct trims and normalises s using its `mod` tags, then validates it.
func Struct(ctx context.Context, s interface{}) error {
	if err := Conform().Struct(ctx, s); err != nil {
		return err
	}

	return Validate().StructCtx(ctx, s)
}
