package generators

import (
	"fmt"
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/mmrzaf/tabgen/internal/domain"
)

type NameGenerator struct{}

func (g *NameGenerator) Generate(rng *rand.Rand, col domain.ColumnSpec) (any, error) {
	return faker.Name(), nil
}

type EmailGenerator struct{}

func (g *EmailGenerator) Generate(rng *rand.Rand, col domain.ColumnSpec) (any, error) {
	return faker.Email(), nil
}

type PhoneGenerator struct{}

func (g *PhoneGenerator) Generate(rng *rand.Rand, col domain.ColumnSpec) (any, error) {
	return faker.Phonenumber(), nil
}

type AddressGenerator struct{}

func (g *AddressGenerator) Generate(rng *rand.Rand, col domain.ColumnSpec) (any, error) {
	a := faker.GetRealAddress()
	return fmt.Sprintf("%s, %s, %s %s", a.Address, a.City, a.State, a.PostalCode), nil
}

type CompanyGenerator struct{}

func (g *CompanyGenerator) Generate(rng *rand.Rand, col domain.ColumnSpec) (any, error) {
	suffixes := []string{"Inc", "LLC", "Group", "Ltd", "Corp", "Labs", "Holdings", "Partners"}
	return faker.LastName() + " " + suffixes[rng.Intn(len(suffixes))], nil
}

type JobGenerator struct{}

func (g *JobGenerator) Generate(rng *rand.Rand, col domain.ColumnSpec) (any, error) {
	titles := []string{
		"Software Engineer", "Data Analyst", "Product Manager", "Account Executive",
		"Operations Manager", "Marketing Specialist", "Financial Analyst", "HR Coordinator",
		"Sales Representative", "Customer Success Manager", "DevOps Engineer", "UX Designer",
		"Project Manager", "Business Analyst", "Technical Writer", "QA Engineer",
		"Support Specialist", "Research Scientist", "Security Analyst", "Accountant",
	}
	return titles[rng.Intn(len(titles))], nil
}

type DateGenerator struct{}

func (g *DateGenerator) Generate(rng *rand.Rand, col domain.ColumnSpec) (any, error) {
	return faker.Date(), nil
}

type URLGenerator struct{}

func (g *URLGenerator) Generate(rng *rand.Rand, col domain.ColumnSpec) (any, error) {
	return faker.URL(), nil
}

type IPAddressGenerator struct{}

func (g *IPAddressGenerator) Generate(rng *rand.Rand, col domain.ColumnSpec) (any, error) {
	return faker.IPv4(), nil
}

type CreditCardGenerator struct{}

func (g *CreditCardGenerator) Generate(rng *rand.Rand, col domain.ColumnSpec) (any, error) {
	return faker.CCNumber(), nil
}
