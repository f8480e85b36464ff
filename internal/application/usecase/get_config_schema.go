package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/bnema/scanclip/internal/application/port"
	"github.com/bnema/scanclip/internal/domain/entity"
)

// GetConfigSchemaUseCase lists configuration keys with their metadata.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{provider: provider}
}

// GetConfigSchemaInput filters the listed keys.
type GetConfigSchemaInput struct {
	// Section keeps only keys of this section (case-insensitive). Empty lists all.
	Section string
}

// GetConfigSchemaOutput contains the schema information.
type GetConfigSchemaOutput struct {
	Keys []entity.ConfigKeyInfo
}

// Execute returns the matching keys sorted by key.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, input GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	all := uc.provider.GetSchema()

	keys := make([]entity.ConfigKeyInfo, 0, len(all))
	for _, k := range all {
		if input.Section != "" && !strings.EqualFold(k.Section, input.Section) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Key < keys[j].Key })

	return &GetConfigSchemaOutput{Keys: keys}, nil
}
