package registry

import (
	"sync"

	"github.com/mmrzaf/tabgen/internal/domain"
	"github.com/mmrzaf/tabgen/internal/generators"
)

type GeneratorRegistry struct {
	mu         sync.RWMutex
	generators map[domain.DataType]generators.Generator
}

func NewGeneratorRegistry() *GeneratorRegistry {
	return &GeneratorRegistry{
		generators: make(map[domain.DataType]generators.Generator),
	}
}

func (r *GeneratorRegistry) Register(t domain.DataType, gen generators.Generator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generators[t] = gen
}

func (r *GeneratorRegistry) Get(t domain.DataType) (generators.Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	gen, ok := r.generators[t]
	if !ok {
		return nil, &domain.UnsupportedTypeError{Type: t}
	}
	return gen, nil
}

func (r *GeneratorRegistry) List() []domain.DataType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]domain.DataType, 0, len(r.generators))
	for t := range r.generators {
		types = append(types, t)
	}
	return types
}

func DefaultGeneratorRegistry() *GeneratorRegistry {
	r := NewGeneratorRegistry()
	r.Register(domain.DataTypeName, &generators.NameGenerator{})
	r.Register(domain.DataTypeEmail, &generators.EmailGenerator{})
	r.Register(domain.DataTypePhone, &generators.PhoneGenerator{})
	r.Register(domain.DataTypeAddress, &generators.AddressGenerator{})
	r.Register(domain.DataTypeCompany, &generators.CompanyGenerator{})
	r.Register(domain.DataTypeJob, &generators.JobGenerator{})
	r.Register(domain.DataTypeDate, &generators.DateGenerator{})
	r.Register(domain.DataTypeInteger, &generators.IntegerGenerator{})
	r.Register(domain.DataTypeFloat, &generators.FloatGenerator{})
	r.Register(domain.DataTypeBoolean, &generators.BooleanGenerator{})
	r.Register(domain.DataTypeText, &generators.TextGenerator{})
	r.Register(domain.DataTypeURL, &generators.URLGenerator{})
	r.Register(domain.DataTypeIPAddress, &generators.IPAddressGenerator{})
	r.Register(domain.DataTypeUUID, &generators.UUIDGenerator{})
	r.Register(domain.DataTypeCreditCard, &generators.CreditCardGenerator{})
	return r
}
