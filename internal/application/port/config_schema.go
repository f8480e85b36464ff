package port

import "github.com/bnema/scanclip/internal/domain/entity"

// ConfigSchemaProvider describes the configuration keys.
type ConfigSchemaProvider interface {
	GetSchema() []entity.ConfigKeyInfo
}
